package pitch

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/haivivi/solfa/pkg/theory"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
		key   int
	}{
		{"C4", "C4", 60},
		{"A4", "A4", 69},
		{"bb3", "Bb3", 58},
		{"F#5", "F#5", 78},
		{"B#3", "B#3", 60},
		{"Cb4", "Cb4", 59},
		{"C-1", "C-1", 0},
		{"G##2", "G##2", 45},
	}

	for _, tt := range tests {
		p, err := Parse(tt.input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", tt.input, err)
			continue
		}
		if p.String() != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.input, p, tt.want)
		}
		if p.Key() != tt.key {
			t.Errorf("Parse(%q).Key() = %d, want %d", tt.input, p.Key(), tt.key)
		}
	}

	for _, bad := range []string{"", "C", "4", "H4", "C#x"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("Parse(%q) expected error", bad)
		}
	}
	if _, err := Parse("C"); !errors.Is(err, ErrInvalidPitch) {
		t.Errorf("Parse(C) error = %v, want ErrInvalidPitch", err)
	}
}

func TestFrequency(t *testing.T) {
	tests := []struct {
		pitch string
		hz    float64
	}{
		{"A4", 440},
		{"A3", 220},
		{"A5", 880},
		{"C4", 261.63},
		{"Eb4", 311.13},
		{"D#4", 311.13},
		{"C6", 1046.50},
	}

	for _, tt := range tests {
		p, err := Parse(tt.pitch)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.Frequency(); math.Abs(got-tt.hz) > 0.01 {
			t.Errorf("%s.Frequency() = %.3f, want %.2f", tt.pitch, got, tt.hz)
		}
	}

	a4 := New(theory.MustParse("A"), 4)
	if got := a4.FrequencyAt(432); got != 432 {
		t.Errorf("FrequencyAt(432) = %v", got)
	}
}

func TestUpDown(t *testing.T) {
	tests := []struct {
		from     string
		interval theory.Interval
		up       string
		down     string
	}{
		{"C4", theory.MinorThird, "Eb4", "A3"},
		{"B3", theory.MinorSecond, "C4", "A#3"},
		{"C4", theory.AugmentedUnison, "C#4", "Cb4"},
		{"C4", theory.DiminishedOctave, "Cb5", "C#3"},
		{"G4", theory.PerfectFifth, "D5", "C4"},
		{"E4", theory.AugmentedFourth, "A#4", "Bb3"},
	}

	for _, tt := range tests {
		p, _ := Parse(tt.from)
		up, err := Up(p, tt.interval)
		if err != nil {
			t.Fatal(err)
		}
		if up.String() != tt.up {
			t.Errorf("Up(%s, %s) = %s, want %s", tt.from, tt.interval, up, tt.up)
		}
		if up.Key()-p.Key() != tt.interval.Semitones() {
			t.Errorf("Up(%s, %s) moved %d keys", tt.from, tt.interval, up.Key()-p.Key())
		}
		down, err := Down(p, tt.interval)
		if err != nil {
			t.Fatal(err)
		}
		if down.String() != tt.down {
			t.Errorf("Down(%s, %s) = %s, want %s", tt.from, tt.interval, down, tt.down)
		}
	}
}

func TestVoiceScale(t *testing.T) {
	tests := []struct {
		root      string
		kind      theory.ScaleKind
		direction theory.ScaleDirection
		want      string
	}{
		{"C", theory.MajorScale, theory.Ascending, "C4 D4 E4 F4 G4 A4 B4 C5"},
		{"C", theory.MajorScale, theory.Descending, "C4 B3 A3 G3 F3 E3 D3 C3"},
		{"A", theory.MinorPentatonic, theory.Ascending, "A4 C5 D5 E5 G5 A5"},
		{"G", theory.MelodicMinor, theory.AscendingThenDescending, "G4 A4 Bb4 C5 D5 E5 F#5 G5 F5 Eb5 D5 C5 Bb4 A4 G4"},
		{"C", theory.MajorScale, theory.DescendingThenAscending, "C4 B3 A3 G3 F3 E3 D3 C3 D3 E3 F3 G3 A3 B3 C4"},
		{"C#", theory.MajorScale, theory.Ascending, "C#4 D#4 E#4 F#4 G#4 A#4 B#4 C#5"},
		{"C", theory.HalfWhole, theory.Ascending, "C4 Db4 Eb4 E4 F#4 G4 A4 Bb4 C5"},
	}

	for _, tt := range tests {
		s := theory.NewScale(theory.MustParse(tt.root), tt.kind, tt.direction)
		voiced := VoiceScale(s, 4)
		parts := make([]string, len(voiced))
		for i, p := range voiced {
			parts[i] = p.String()
		}
		if got := strings.Join(parts, " "); got != tt.want {
			t.Errorf("VoiceScale(%s %s %s) = %q, want %q", tt.root, tt.kind, tt.direction, got, tt.want)
		}
	}
}

func TestVoiceChord(t *testing.T) {
	tests := []struct {
		root    string
		quality theory.ChordQuality
		want    []string
	}{
		{"C", theory.Major, []string{"C4", "E4", "G4"}},
		{"A", theory.Minor, []string{"A4", "C5", "E5"}},
		{"B", theory.Diminished, []string{"B4", "D5", "F5"}},
		{"G", theory.Augmented, []string{"G4", "B4", "D#5"}},
	}

	for _, tt := range tests {
		voiced, err := VoiceChord(theory.NewChord(theory.MustParse(tt.root), tt.quality), 4)
		if err != nil {
			t.Fatal(err)
		}
		for i, p := range voiced {
			if p.String() != tt.want[i] {
				t.Errorf("VoiceChord(%s %s)[%d] = %s, want %s", tt.root, tt.quality, i, p, tt.want[i])
			}
		}
	}

	if _, err := VoiceChord(theory.NewChord(theory.MustParse("B#"), theory.Augmented), 4); !errors.Is(err, theory.ErrUnspellable) {
		t.Errorf("VoiceChord(B#aug) error = %v, want ErrUnspellable", err)
	}
}

func TestKeyNaturals(t *testing.T) {
	want := map[theory.NoteName]int{
		theory.C: 60, theory.D: 62, theory.E: 64, theory.F: 65,
		theory.G: 67, theory.A: 69, theory.B: 71,
	}
	for _, name := range theory.NoteNames() {
		p := New(theory.NewNote(name, theory.Natural), 4)
		if p.Key() != want[name] {
			t.Errorf("%s.Key() = %d, want %d", p, p.Key(), want[name])
		}
	}
}
