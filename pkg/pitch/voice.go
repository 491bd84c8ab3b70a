package pitch

import "github.com/haivivi/solfa/pkg/theory"

// VoiceScale places every note of s in a register, starting with the root
// in octave. Ascending legs climb and descending legs fall, so a
// bidirectional scale returns to the starting pitch.
func VoiceScale(s *theory.Scale, octave int) []Pitch {
	notes := s.Notes()
	if len(notes) == 0 {
		return nil
	}
	steps := len(s.Kind().Pattern())

	out := make([]Pitch, len(notes))
	out[0] = New(notes[0], octave)
	for i := 1; i < len(notes); i++ {
		prev, next := out[i-1], notes[i]
		gap := next.PitchClass() - prev.Note.PitchClass()
		if ascendingAt(s.Direction(), i, steps) {
			out[i] = at(next, prev.Key()+mod12(gap))
		} else {
			out[i] = at(next, prev.Key()-mod12(-gap))
		}
	}
	return out
}

// ascendingAt reports whether the step arriving at index i goes up.
func ascendingAt(d theory.ScaleDirection, i, steps int) bool {
	switch d {
	case theory.Ascending:
		return true
	case theory.Descending:
		return false
	case theory.AscendingThenDescending:
		return i <= steps
	case theory.DescendingThenAscending:
		return i > steps
	}
	return true
}

// VoiceChord stacks the triad in close root position above the root in
// octave.
func VoiceChord(c theory.Chord, octave int) ([]Pitch, error) {
	notes, err := c.Triad()
	if err != nil {
		return nil, err
	}
	root := New(notes[0], octave)
	return []Pitch{
		root,
		at(notes[1], root.Key()+c.Quality().ThirdInterval().Semitones()),
		at(notes[2], root.Key()+c.Quality().FifthInterval().Semitones()),
	}, nil
}

func mod12(n int) int {
	n %= 12
	if n < 0 {
		n += 12
	}
	return n
}
