package theory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNote is returned when text is not a legal note spelling.
	ErrInvalidNote = errors.New("theory: invalid note")

	// ErrInvalidInterval is returned when text names no known interval.
	ErrInvalidInterval = errors.New("theory: invalid interval")

	// ErrInvalidQuality is returned when text names no chord quality.
	ErrInvalidQuality = errors.New("theory: invalid chord quality")

	// ErrInvalidScaleKind is returned when text names no scale kind.
	ErrInvalidScaleKind = errors.New("theory: invalid scale kind")

	// ErrInvalidDirection is returned when text names no scale direction.
	ErrInvalidDirection = errors.New("theory: invalid scale direction")

	// ErrUnspellable is matched by every *SpellingError.
	ErrUnspellable = errors.New("theory: note cannot be spelled")
)

// ParseError describes malformed note text. Offending holds the substring
// that could not be accepted.
type ParseError struct {
	Input     string
	Offending string
	Reason    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v %q: %s %q", ErrInvalidNote, e.Input, e.Reason, e.Offending)
}

// Unwrap lets errors.Is match ErrInvalidNote.
func (e *ParseError) Unwrap() error {
	return ErrInvalidNote
}

// SpellingError reports a transposition whose target letter would need more
// than two accidentals to reach the target pitch class.
type SpellingError struct {
	From       Note
	Interval   Interval
	Letter     NoteName
	PitchClass int
}

func (e *SpellingError) Error() string {
	return fmt.Sprintf("%v: %s up a %s needs letter %s at pitch class %d",
		ErrUnspellable, e.From, e.Interval.Name(), e.Letter, e.PitchClass)
}

// Unwrap lets errors.Is match ErrUnspellable.
func (e *SpellingError) Unwrap() error {
	return ErrUnspellable
}
