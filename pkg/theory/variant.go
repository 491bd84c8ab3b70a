package theory

// PitchVariant is an accidental, stored as its semitone offset from the
// natural letter.
type PitchVariant int8

// Accidentals, ordered by offset.
const (
	DoubleFlat  PitchVariant = -2
	Flat        PitchVariant = -1
	Natural     PitchVariant = 0
	Sharp       PitchVariant = 1
	DoubleSharp PitchVariant = 2
)

// PitchVariants returns the five accidentals from DoubleFlat to DoubleSharp.
func PitchVariants() []PitchVariant {
	return []PitchVariant{DoubleFlat, Flat, Natural, Sharp, DoubleSharp}
}

// Valid reports whether v is within DoubleFlat..DoubleSharp.
func (v PitchVariant) Valid() bool {
	return v >= DoubleFlat && v <= DoubleSharp
}

// Offset returns the semitone offset.
func (v PitchVariant) Offset() int {
	return int(v)
}

// Symbol returns the suffix written after the letter: "bb", "b", "", "#"
// or "##".
func (v PitchVariant) Symbol() string {
	switch v {
	case DoubleFlat:
		return "bb"
	case Flat:
		return "b"
	case Natural:
		return ""
	case Sharp:
		return "#"
	case DoubleSharp:
		return "##"
	}
	return "?"
}

func (v PitchVariant) String() string {
	switch v {
	case DoubleFlat:
		return "double_flat"
	case Flat:
		return "flat"
	case Natural:
		return "natural"
	case Sharp:
		return "sharp"
	case DoubleSharp:
		return "double_sharp"
	}
	return "invalid"
}

// parsePitchVariant maps an accidental suffix to its variant. Mixed or
// longer suffixes are rejected.
func parsePitchVariant(s string) (PitchVariant, bool) {
	switch s {
	case "bb":
		return DoubleFlat, true
	case "b":
		return Flat, true
	case "":
		return Natural, true
	case "#":
		return Sharp, true
	case "##":
		return DoubleSharp, true
	}
	return 0, false
}
