package theory

// NoteName is one of the seven diatonic letters A through G.
type NoteName uint8

// Letters in diatonic order. The ordinal is the letter's position in the
// seven-step cycle.
const (
	A NoteName = iota
	B
	C
	D
	E
	F
	G

	numNoteNames = 7
)

// naturalPitch is the pitch class of each natural letter. Adjacent letters
// are a whole step apart except B-C and E-F.
var naturalPitch = [numNoteNames]int{
	A: 1,
	B: 3,
	C: 4,
	D: 6,
	E: 8,
	F: 9,
	G: 11,
}

var noteNameLetters = [numNoteNames]byte{
	A: 'A',
	B: 'B',
	C: 'C',
	D: 'D',
	E: 'E',
	F: 'F',
	G: 'G',
}

// NoteNames returns all letters in diatonic order starting from A.
func NoteNames() []NoteName {
	return []NoteName{A, B, C, D, E, F, G}
}

// ParseNoteName returns the letter for c, accepting either case.
func ParseNoteName(c byte) (NoteName, bool) {
	if c >= 'a' && c <= 'g' {
		c -= 'a' - 'A'
	}
	if c < 'A' || c > 'G' {
		return 0, false
	}
	return NoteName(c - 'A'), true
}

// Valid reports whether n is one of the seven letters.
func (n NoteName) Valid() bool {
	return n < numNoteNames
}

// Index returns the letter's position 0..6 in the A..G cycle.
func (n NoteName) Index() int {
	return int(n)
}

// NaturalPitchClass returns the pitch class of the unaltered letter.
func (n NoteName) NaturalPitchClass() int {
	return naturalPitch[n]
}

// Step moves the letter by steps positions around the cycle. Negative steps
// move downwards.
func (n NoteName) Step(steps int) NoteName {
	return NoteName(mod(int(n)+steps, numNoteNames))
}

func (n NoteName) String() string {
	if !n.Valid() {
		return "?"
	}
	return string(noteNameLetters[n])
}

// mod returns the non-negative remainder of a divided by m.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
