package theory

import (
	"errors"
	"testing"
)

func TestScalePrint(t *testing.T) {
	tests := []struct {
		root      string
		kind      ScaleKind
		direction ScaleDirection
		want      string
	}{
		{"C", MajorScale, Ascending, "C D E F G A B C"},
		{"C", MinorScale, Ascending, "C D Eb F G Ab Bb C"},
		{"G", MelodicMinor, Ascending, "G A Bb C D E F# G"},
		{"G", MelodicMinor, Descending, "G F Eb D C Bb A G"},
		{"C", HarmonicMinor, Ascending, "C D Eb F G Ab B C"},
		{"A", HarmonicMinor, Ascending, "A B C D E F G# A"},
		{"F#", HarmonicMinor, Ascending, "F# G# A B C# D E# F#"},
		{"C", MajorPentatonic, Ascending, "C D E G A C"},
		{"A", MinorPentatonic, Ascending, "A C D E G A"},
		{"C", WholeTone, Ascending, "C D E F# G# A# C"},
		{"C", WholeTone, Descending, "C A# G# F# E D C"},
		{"C", HalfWhole, Ascending, "C Db Eb E F# G A Bb C"},
		{"C", WholeHalf, Ascending, "C D Eb F Gb Ab A B C"},
		{"C", Ionian, Ascending, "C D E F G A B C"},
		{"D", Dorian, Ascending, "D E F G A B C D"},
		{"E", Phrygian, Ascending, "E F G A B C D E"},
		{"F", Lydian, Ascending, "F G A B C D E F"},
		{"G", Mixolydian, Ascending, "G A B C D E F G"},
		{"A", Aeolian, Ascending, "A B C D E F G A"},
		{"B", Locrian, Ascending, "B C D E F G A B"},
		{"Eb", MajorScale, Descending, "Eb D C Bb Ab G F Eb"},
		{"C", MajorScale, AscendingThenDescending, "C D E F G A B C B A G F E D C"},
		{"C", MajorScale, DescendingThenAscending, "C B A G F E D C D E F G A B C"},
		{"G", MelodicMinor, AscendingThenDescending, "G A Bb C D E F# G F Eb D C Bb A G"},
		{"Bb", MelodicMinor, AscendingThenDescending, "Bb C Db Eb F G A Bb Ab Gb F Eb Db C Bb"},
	}

	for _, tt := range tests {
		s := NewScale(MustParse(tt.root), tt.kind, tt.direction)
		if got := s.Print(); got != tt.want {
			t.Errorf("%s %s %s = %q, want %q", tt.root, tt.kind, tt.direction, got, tt.want)
		}
		if s.String() != s.Print() {
			t.Errorf("String() and Print() differ")
		}
	}
}

func TestScaleInvariants(t *testing.T) {
	wholeToneGaps := map[Note]bool{
		MustParse("A#"): true,
		MustParse("B#"): true,
		MustParse("E#"): true,
	}

	for _, root := range allNotes() {
		if root.Variant() < Flat || root.Variant() > Sharp {
			continue
		}
		for _, kind := range ScaleKinds() {
			for _, dir := range ScaleDirections() {
				s, err := BuildScale(root, kind, dir)
				if kind == WholeTone && wholeToneGaps[root] {
					if !errors.Is(err, ErrUnspellable) {
						t.Errorf("%s %s %s: error = %v, want ErrUnspellable", root, kind, dir, err)
					}
					continue
				}
				if err != nil {
					t.Errorf("%s %s %s: %v", root, kind, dir, err)
					continue
				}

				notes := s.Notes()
				n := len(kind.Pattern())
				want := n + 1
				if dir == AscendingThenDescending || dir == DescendingThenAscending {
					want = 2*n + 1
				}
				if len(notes) != want || s.Len() != want {
					t.Errorf("%s %s %s has %d notes, want %d", root, kind, dir, len(notes), want)
					continue
				}
				if notes[0] != root || notes[len(notes)-1] != root {
					t.Errorf("%s %s %s = %s, want first and last %s", root, kind, dir, s, root)
				}
				if s.Root() != root || s.Kind() != kind || s.Direction() != dir {
					t.Errorf("%s %s %s accessors do not round trip", root, kind, dir)
				}
			}
		}
	}
}

func TestScaleDescendingMirrorsAscending(t *testing.T) {
	for _, root := range []string{"C", "F#", "Bb", "E"} {
		for _, kind := range ScaleKinds() {
			if kind == MelodicMinor {
				continue
			}
			up := NewScale(MustParse(root), kind, Ascending).Notes()
			down := NewScale(MustParse(root), kind, Descending).Notes()
			for i := range up {
				if up[i] != down[len(down)-1-i] {
					t.Errorf("%s %s: descending is not the ascending reversed: %v vs %v", root, kind, up, down)
					break
				}
			}
		}
	}
}

func TestScalePatterns(t *testing.T) {
	for _, kind := range ScaleKinds() {
		semitones, steps := 0, 0
		for _, i := range kind.Pattern() {
			semitones += i.Semitones()
			steps += i.Steps()
		}
		if semitones != 12 {
			t.Errorf("%s pattern spans %d semitones, want 12", kind, semitones)
		}
		if steps%7 != 0 {
			t.Errorf("%s pattern spans %d steps, want a multiple of 7", kind, steps)
		}
		if l := len(kind.Pattern()); l < 5 || l > 8 {
			t.Errorf("%s pattern length %d", kind, l)
		}
	}

	// Pattern must hand out copies.
	p := MajorScale.Pattern()
	p[0] = AugmentedSecond
	if MajorScale.Pattern()[0] != MajorSecond {
		t.Error("Pattern() exposes the shared table")
	}

	s := NewScale(MustParse("C"), MajorScale, Ascending)
	notes := s.Notes()
	notes[1] = MustParse("C#")
	if s.Notes()[1] != MustParse("D") {
		t.Error("Notes() exposes internal state")
	}
}

func TestParseScaleKindAndDirection(t *testing.T) {
	kinds := map[string]ScaleKind{
		"major":          MajorScale,
		"Harmonic Minor": HarmonicMinor,
		"melodic-minor":  MelodicMinor,
		"whole_tone":     WholeTone,
		"aeolian":        Aeolian,
	}
	for input, want := range kinds {
		got, err := ParseScaleKind(input)
		if err != nil || got != want {
			t.Errorf("ParseScaleKind(%q) = %v, %v; want %s", input, got, err, want)
		}
	}
	if _, err := ParseScaleKind("bebop"); !errors.Is(err, ErrInvalidScaleKind) {
		t.Errorf("ParseScaleKind(bebop) error = %v", err)
	}

	dirs := map[string]ScaleDirection{
		"ascending":                 Ascending,
		"down":                      Descending,
		"up_down":                   AscendingThenDescending,
		"descending then ascending": DescendingThenAscending,
	}
	for input, want := range dirs {
		got, err := ParseScaleDirection(input)
		if err != nil || got != want {
			t.Errorf("ParseScaleDirection(%q) = %v, %v; want %s", input, got, err, want)
		}
	}
	if _, err := ParseScaleDirection("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseScaleDirection(sideways) error = %v", err)
	}
}

func TestNewScalePanicsWhenUnspellable(t *testing.T) {
	defer func() {
		r := recover()
		if _, ok := r.(*SpellingError); !ok {
			t.Fatalf("recover() = %v, want *SpellingError", r)
		}
	}()
	NewScale(MustParse("E#"), WholeTone, Ascending)
}
