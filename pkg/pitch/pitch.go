package pitch

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/haivivi/solfa/pkg/theory"
)

// Reference tuning.
const (
	// A4 is the reference frequency in Hz.
	A4 = 440.0

	// A4Key is the key number of A4 (C4 = 60).
	A4Key = 69
)

// ErrInvalidPitch is returned when pitch text has no valid octave.
var ErrInvalidPitch = errors.New("pitch: invalid pitch")

// letterOffset is each letter's distance above C within its octave.
var letterOffset = [7]int{
	theory.C: 0,
	theory.D: 2,
	theory.E: 4,
	theory.F: 5,
	theory.G: 7,
	theory.A: 9,
	theory.B: 11,
}

// Pitch is a spelled note in a specific octave.
type Pitch struct {
	Note   theory.Note `json:"note" yaml:"note"`
	Octave int         `json:"octave" yaml:"octave"`
}

// New returns the pitch of n in octave.
func New(n theory.Note, octave int) Pitch {
	return Pitch{Note: n, Octave: octave}
}

// Parse reads a note spelling followed by an octave number, e.g. "C#4",
// "bb3" or "A-1".
func Parse(text string) (Pitch, error) {
	i := strings.IndexFunc(text, func(r rune) bool {
		return r == '-' || (r >= '0' && r <= '9')
	})
	if i <= 0 {
		return Pitch{}, fmt.Errorf("%w: %q has no octave", ErrInvalidPitch, text)
	}
	n, err := theory.Parse(text[:i])
	if err != nil {
		return Pitch{}, err
	}
	octave, err := strconv.Atoi(text[i:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: octave %q: %v", ErrInvalidPitch, text[i:], err)
	}
	return Pitch{Note: n, Octave: octave}, nil
}

// Key returns the key number, with C4 = 60 and A4 = 69.
func (p Pitch) Key() int {
	return 12*(p.Octave+1) + letterOffset[p.Note.Name()] + p.Note.Variant().Offset()
}

// Frequency returns the equal-tempered frequency against A4 = 440 Hz.
func (p Pitch) Frequency() float64 {
	return p.FrequencyAt(A4)
}

// FrequencyAt returns the equal-tempered frequency for a custom A4.
func (p Pitch) FrequencyAt(a4 float64) float64 {
	return a4 * math.Pow(2, float64(p.Key()-A4Key)/12)
}

func (p Pitch) String() string {
	return p.Note.String() + strconv.Itoa(p.Octave)
}

// at returns the pitch spelled as n whose key number is key. The key must
// be reachable by n, which holds whenever key's pitch class matches n.
func at(n theory.Note, key int) Pitch {
	base := key - letterOffset[n.Name()] - n.Variant().Offset()
	return Pitch{Note: n, Octave: floorDiv(base, 12) - 1}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Up transposes p upwards by interval, keeping track of the octave.
func Up(p Pitch, interval theory.Interval) (Pitch, error) {
	n, err := p.Note.TryTranspose(interval, true)
	if err != nil {
		return Pitch{}, err
	}
	return at(n, p.Key()+interval.Semitones()), nil
}

// Down transposes p downwards by interval, keeping track of the octave.
func Down(p Pitch, interval theory.Interval) (Pitch, error) {
	n, err := p.Note.TryTranspose(interval, false)
	if err != nil {
		return Pitch{}, err
	}
	return at(n, p.Key()-interval.Semitones()), nil
}
