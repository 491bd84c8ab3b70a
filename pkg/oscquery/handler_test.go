package oscquery

import (
	"strings"
	"testing"

	"github.com/hypebeast/go-osc/osc"
)

func replyStrings(t *testing.T, m *osc.Message) []string {
	t.Helper()
	out := make([]string, len(m.Arguments))
	for i, a := range m.Arguments {
		s, ok := a.(string)
		if !ok {
			t.Fatalf("reply argument %d is %T", i, a)
		}
		out[i] = s
	}
	return out
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name      string
		msg       *osc.Message
		wantAddr  string
		wantNotes string
	}{
		{"major chord", osc.NewMessage(AddrChord, "Eb"), "/solfa/chord/reply", "Eb G Bb"},
		{"minor chord", osc.NewMessage(AddrChord, "c#", "m"), "/solfa/chord/reply", "C# E G#"},
		{"scale", osc.NewMessage(AddrScale, "F", "lydian"), "/solfa/scale/reply", "F G A B C D E F"},
		{"scale descending", osc.NewMessage(AddrScale, "A", "melodic_minor", "down"), "/solfa/scale/reply", "A G F E D C B A"},
		{"transpose up", osc.NewMessage(AddrTranspose, "D", "P5"), "/solfa/transpose/reply", "A"},
		{"transpose down bool", osc.NewMessage(AddrTranspose, "C", "m2", true), "/solfa/transpose/reply", "B"},
		{"transpose down int", osc.NewMessage(AddrTranspose, "F", "A4", int32(1)), "/solfa/transpose/reply", "Cb"},
		{"transpose up string", osc.NewMessage(AddrTranspose, "F", "A4", "up"), "/solfa/transpose/reply", "B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := Handle(tt.msg)
			if reply.Address != tt.wantAddr {
				t.Fatalf("Address = %s (%v), want %s", reply.Address, reply.Arguments, tt.wantAddr)
			}
			if got := strings.Join(replyStrings(t, reply), " "); got != tt.wantNotes {
				t.Errorf("notes = %q, want %q", got, tt.wantNotes)
			}
		})
	}
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name    string
		msg     *osc.Message
		wantErr string
	}{
		{"no args", osc.NewMessage(AddrChord), "1 or 2 arguments"},
		{"non-string root", osc.NewMessage(AddrChord, int32(3)), "want string"},
		{"bad note", osc.NewMessage(AddrChord, "X"), "invalid note"},
		{"bad quality", osc.NewMessage(AddrChord, "C", "sus"), "invalid chord quality"},
		{"bad kind", osc.NewMessage(AddrScale, "C", "bebop"), "invalid scale kind"},
		{"bad direction", osc.NewMessage(AddrScale, "C", "major", "around"), "invalid scale direction"},
		{"unspellable scale", osc.NewMessage(AddrScale, "E#", "whole_tone"), "cannot be spelled"},
		{"bad interval", osc.NewMessage(AddrTranspose, "C", "P9"), "invalid interval"},
		{"bad down flag", osc.NewMessage(AddrTranspose, "C", "P5", "sideways"), "want down or up"},
		{"unknown address", osc.NewMessage("/solfa/nope", "C"), "unknown address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reply := Handle(tt.msg)
			if reply.Address != AddrError {
				t.Fatalf("Address = %s, want %s", reply.Address, AddrError)
			}
			args := replyStrings(t, reply)
			if len(args) != 2 {
				t.Fatalf("error reply args = %v", args)
			}
			if args[0] != tt.msg.Address {
				t.Errorf("error reply echoes %q, want %q", args[0], tt.msg.Address)
			}
			if !strings.Contains(args[1], tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", args[1], tt.wantErr)
			}
		})
	}
}
