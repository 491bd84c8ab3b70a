package commands

import (
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestTheoryCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"note", []string{"note", "Eb"}, "Eb: letter E, flat, pitch class 7, enharmonic with D# Fbb\n"},
		{"note lowercase", []string{"note", "f##"}, "F##: letter F, double_sharp, pitch class 11, enharmonic with Abb G\n"},
		{"chord name", []string{"chord", "Eb"}, "Eb\n"},
		{"chord minor", []string{"chord", "f#", "m"}, "F#m\n"},
		{"chord notes", []string{"chord", "F#", "dim", "--notes"}, "F# A C\n"},
		{"chord augmented notes", []string{"chord", "C", "aug", "--notes"}, "C E G#\n"},
		{"transpose up", []string{"transpose", "E", "m3"}, "G\n"},
		{"transpose down", []string{"transpose", "C", "M3", "--down"}, "Ab\n"},
		{"transpose by name", []string{"transpose", "F", "augmented_fourth"}, "B\n"},
		{"scale", []string{"scale", "C", "major"}, "C D E F G A B C\n"},
		{"scale descending", []string{"scale", "A", "melodic_minor", "-d", "down"}, "A G F E D C B A\n"},
		{"scale both ways", []string{"scale", "A", "melodic_minor", "--direction", "up_down"},
			"A B C D E F# G# A G F E D C B A\n"},
		{"scale harmonic minor", []string{"scale", "G", "harmonic_minor"}, "G A Bb C D Eb F# G\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnv(t)
			stdout, stderr, code := runCmd(t, tt.args...)
			if code != 0 {
				t.Fatalf("exit %d: %s", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestTheoryCommandErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad note", []string{"note", "H"}, "letter must be A-G"},
		{"bad quality", []string{"chord", "C", "sus4"}, "invalid chord quality"},
		{"unspellable chord", []string{"chord", "B#", "aug"}, "cannot be spelled"},
		{"bad interval", []string{"transpose", "C", "P9"}, "invalid interval"},
		{"unspellable transpose", []string{"transpose", "Fb", "d4"}, "cannot be spelled"},
		{"bad kind", []string{"scale", "C", "bebop"}, "invalid scale kind"},
		{"bad direction", []string{"scale", "C", "major", "-d", "sideways"}, "invalid scale direction"},
		{"unspellable scale", []string{"scale", "E#", "whole_tone"}, "cannot be spelled"},
		{"bad format", []string{"chord", "C", "-o", "xml"}, "unsupported output format"},
		{"missing args", []string{"transpose", "C"}, "accepts 2 arg(s)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnv(t)
			_, stderr, code := runCmd(t, tt.args...)
			if code == 0 {
				t.Fatal("expected non-zero exit")
			}
			if !strings.Contains(stderr, tt.want) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.want)
			}
		})
	}
}

func TestIntervalCommand(t *testing.T) {
	setupTestEnv(t)

	stdout, _, code := runCmd(t, "interval")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 21 {
		t.Fatalf("got %d interval lines, want 21:\n%s", len(lines), stdout)
	}
	if !strings.HasPrefix(lines[0], "P1") || !strings.HasPrefix(lines[20], "d8") {
		t.Errorf("unexpected order: %q ... %q", lines[0], lines[20])
	}

	stdout, _, code = runCmd(t, "interval", "A4")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"augmented_fourth", "6 semitones", "3 steps", "inverts to d5"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("interval A4 output missing %q: %s", want, stdout)
		}
	}
}

func TestOutputFormats(t *testing.T) {
	setupTestEnv(t)

	stdout, _, code := runCmd(t, "scale", "D", "dorian", "-o", "json")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	var got struct {
		Root      string   `json:"root"`
		Kind      string   `json:"kind"`
		Direction string   `json:"direction"`
		Notes     []string `json:"notes"`
	}
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if got.Root != "D" || got.Kind != "dorian" || got.Direction != "ascending" || strings.Join(got.Notes, " ") != "D E F G A B C D" {
		t.Errorf("json = %+v", got)
	}

	stdout, _, code = runCmd(t, "chord", "Ab", "minor", "-o", "yaml")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"name: Abm", "quality: minor", "- Cb"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("yaml output missing %q:\n%s", want, stdout)
		}
	}

	stdout, _, code = runCmd(t, "scale", "C", "major", "-o", "table")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	for _, want := range []string{"C major", "[ascending]", "C D E F G A B C", "M2 M2 m2 M2 M2 M2 m2"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("table output missing %q:\n%s", want, stdout)
		}
	}
}

func TestQueryFlag(t *testing.T) {
	setupTestEnv(t)

	stdout, stderr, code := runCmd(t, "scale", "C", "major_pentatonic", "-o", "json", "--query", ".notes | length")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	if strings.TrimSpace(stdout) != "6" {
		t.Errorf("stdout = %q, want 6", stdout)
	}
}

func TestOutputFile(t *testing.T) {
	setupTestEnv(t)
	path := writeTestFile(t, "out.txt", "")

	stdout, _, code := runCmd(t, "chord", "G", "--output-file", path)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want nothing", stdout)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "G\n" {
		t.Errorf("file = %q, want %q", data, "G\n")
	}
}

func TestVoiceCommands(t *testing.T) {
	setupTestEnv(t)

	stdout, stderr, code := runCmd(t, "voice", "chord", "A", "minor", "--octave", "4")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines:\n%s", len(lines), stdout)
	}
	for i, want := range []string{"A4", "C5", "E5"} {
		if !strings.HasPrefix(lines[i], want+" ") {
			t.Errorf("line %d = %q, want pitch %s", i, lines[i], want)
		}
	}
	if !strings.Contains(lines[0], "440.00 Hz") || !strings.Contains(lines[0], " 69 ") {
		t.Errorf("A4 line = %q", lines[0])
	}

	stdout, _, code = runCmd(t, "voice", "scale", "C", "major", "--octave", "4", "-d", "up_down", "-o", "json", "--query", "[.pitches[].pitch] | join(\" \")")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	want := `"C4 D4 E4 F4 G4 A4 B4 C5 B4 A4 G4 F4 E4 D4 C4"`
	if strings.TrimSpace(stdout) != want {
		t.Errorf("voice scale = %s, want %s", stdout, want)
	}

	stdout, _, code = runCmd(t, "voice", "chord", "A", "--a4", "432", "-o", "json", "--query", ".pitches[0].hz")
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if strings.TrimSpace(stdout) != "432" {
		t.Errorf("A4 at 432 = %s", stdout)
	}

	_, stderr, code = runCmd(t, "voice", "chord", "C", "--octave", "12")
	if code == 0 || !strings.Contains(stderr, "out of range") {
		t.Errorf("octave 12: exit %d, stderr %q", code, stderr)
	}
}
