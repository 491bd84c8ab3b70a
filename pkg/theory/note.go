package theory

import (
	"strings"
	"unicode/utf8"
)

// Note is a spelled note: a letter plus an accidental. Two notes are equal
// only when both parts match, so Note values can be compared with == and
// used as map keys; C# != Db even though they sound the same.
type Note struct {
	name    NoteName
	variant PitchVariant
}

// NewNote builds a note from its parts. It panics if either part is out of
// range.
func NewNote(name NoteName, variant PitchVariant) Note {
	if !name.Valid() || !variant.Valid() {
		panic("theory: note name or variant out of range")
	}
	return Note{name: name, variant: variant}
}

// Parse reads a note spelling: one letter A-G in either case, optionally
// followed by "b", "bb", "#" or "##".
func Parse(text string) (Note, error) {
	if text == "" {
		return Note{}, &ParseError{Input: text, Offending: text, Reason: "empty note"}
	}
	if len(text) > 3 {
		return Note{}, &ParseError{Input: text, Offending: text, Reason: "too long"}
	}
	name, ok := ParseNoteName(text[0])
	if !ok {
		_, size := utf8.DecodeRuneInString(text)
		return Note{}, &ParseError{Input: text, Offending: text[:size], Reason: "letter must be A-G"}
	}
	variant, ok := parsePitchVariant(text[1:])
	if !ok {
		return Note{}, &ParseError{Input: text, Offending: text[1:], Reason: "accidental must be b, bb, # or ##"}
	}
	return Note{name: name, variant: variant}, nil
}

// MustParse is like Parse but panics on malformed text. It is meant for
// literals in tests and tables.
func MustParse(text string) Note {
	n, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return n
}

// Name returns the letter.
func (n Note) Name() NoteName {
	return n.name
}

// Variant returns the accidental.
func (n Note) Variant() PitchVariant {
	return n.variant
}

// Accidentals returns the signed accidental count: -2 for a double flat,
// 2 for a double sharp.
func (n Note) Accidentals() int {
	return n.variant.Offset()
}

// PitchClass returns the sounding pitch class 0..11 on the A=1 .. G=11 scale.
func (n Note) PitchClass() int {
	return mod(n.name.NaturalPitchClass()+n.variant.Offset(), 12)
}

// IsEnharmonic reports whether n and o sound the same, whatever their
// spelling.
func (n Note) IsEnharmonic(o Note) bool {
	return n.PitchClass() == o.PitchClass()
}

// Enharmonics returns the other spellings of n's pitch class, in letter
// order.
func (n Note) Enharmonics() []Note {
	var out []Note
	for _, name := range NoteNames() {
		for _, v := range PitchVariants() {
			o := Note{name: name, variant: v}
			if o != n && o.IsEnharmonic(n) {
				out = append(out, o)
			}
		}
	}
	return out
}

// String formats the note as an uppercase letter followed by its accidental.
func (n Note) String() string {
	var b strings.Builder
	b.WriteString(n.name.String())
	b.WriteString(n.variant.Symbol())
	return b.String()
}

// Transpose moves n by interval, upwards when ascending is true. A
// descending move ascends by the inverted interval, so the new letter is
// always chosen by forward step arithmetic.
//
// Transpose panics with a *SpellingError when the target letter would need
// a triple accidental. That cannot happen for natural or single-accidental
// notes moved by a perfect, major or minor interval; use TryTranspose when
// the input may be more exotic.
func (n Note) Transpose(interval Interval, ascending bool) Note {
	out, err := n.TryTranspose(interval, ascending)
	if err != nil {
		panic(err)
	}
	return out
}

// TryTranspose is Transpose returning the spelling failure as an error.
func (n Note) TryTranspose(interval Interval, ascending bool) (Note, error) {
	if !ascending {
		interval = interval.Invert()
	}
	return n.up(interval)
}

func (n Note) up(interval Interval) (Note, error) {
	letter := n.name.Step(interval.Steps())
	pc := mod(n.PitchClass()+interval.Semitones(), 12)
	variant, ok := reconcile(letter, pc)
	if !ok {
		return Note{}, &SpellingError{From: n, Interval: interval, Letter: letter, PitchClass: pc}
	}
	return Note{name: letter, variant: variant}, nil
}

// reconcile finds the accidental that puts letter on pitch class pc.
func reconcile(letter NoteName, pc int) (PitchVariant, bool) {
	diff := mod(pc-letter.NaturalPitchClass(), 12)
	if diff > 6 {
		diff -= 12
	}
	v := PitchVariant(diff)
	if !v.Valid() {
		return 0, false
	}
	return v, true
}
