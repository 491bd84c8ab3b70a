package theory

import "fmt"

// ChordQuality describes the triad built on a chord's root.
type ChordQuality uint8

// Chord qualities.
const (
	Major ChordQuality = iota
	Minor
	Diminished
	Augmented

	numChordQualities
)

type qualityInfo struct {
	third  Interval
	fifth  Interval
	suffix string
	name   string
}

var qualityTable = [numChordQualities]qualityInfo{
	Major:      {MajorThird, PerfectFifth, "", "major"},
	Minor:      {MinorThird, PerfectFifth, "m", "minor"},
	Diminished: {MinorThird, DiminishedFifth, "dim", "diminished"},
	Augmented:  {MajorThird, AugmentedFifth, "aug", "augmented"},
}

// ChordQualities returns all qualities.
func ChordQualities() []ChordQuality {
	return []ChordQuality{Major, Minor, Diminished, Augmented}
}

// Valid reports whether q is a known quality.
func (q ChordQuality) Valid() bool {
	return q < numChordQualities
}

// ThirdInterval returns the interval from root to third.
func (q ChordQuality) ThirdInterval() Interval {
	return qualityTable[q].third
}

// FifthInterval returns the interval from root to fifth.
func (q ChordQuality) FifthInterval() Interval {
	return qualityTable[q].fifth
}

// Suffix returns the chord-symbol suffix: "", "m", "dim" or "aug".
func (q ChordQuality) Suffix() string {
	return qualityTable[q].suffix
}

func (q ChordQuality) String() string {
	if !q.Valid() {
		return "invalid"
	}
	return qualityTable[q].name
}

// ParseChordQuality accepts long names and common chord-symbol suffixes.
// The empty string means major.
func ParseChordQuality(text string) (ChordQuality, error) {
	switch text {
	case "M", "":
		return Major, nil
	case "m":
		return Minor, nil
	case "o":
		return Diminished, nil
	case "+":
		return Augmented, nil
	}
	switch normalizeName(text) {
	case "major", "maj":
		return Major, nil
	case "minor", "min":
		return Minor, nil
	case "diminished", "dim":
		return Diminished, nil
	case "augmented", "aug":
		return Augmented, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, text)
}

// Chord is a triad identified by its root and quality. The third and fifth
// are computed on demand.
type Chord struct {
	root    Note
	quality ChordQuality
}

// NewChord returns the chord with the given root and quality.
func NewChord(root Note, quality ChordQuality) Chord {
	return Chord{root: root, quality: quality}
}

// Root returns the chord's root.
func (c Chord) Root() Note {
	return c.root
}

// Quality returns the chord's quality.
func (c Chord) Quality() ChordQuality {
	return c.quality
}

// Third returns the note a third above the root. Like Note.Transpose it
// panics if the third needs a triple accidental.
func (c Chord) Third() Note {
	return c.root.Transpose(c.quality.ThirdInterval(), true)
}

// Fifth returns the note a fifth above the root.
func (c Chord) Fifth() Note {
	return c.root.Transpose(c.quality.FifthInterval(), true)
}

// Notes returns root, third and fifth.
func (c Chord) Notes() []Note {
	return []Note{c.root, c.Third(), c.Fifth()}
}

// Triad is Notes without the panic: it reports a spelling failure as an
// error.
func (c Chord) Triad() ([]Note, error) {
	third, err := c.root.TryTranspose(c.quality.ThirdInterval(), true)
	if err != nil {
		return nil, err
	}
	fifth, err := c.root.TryTranspose(c.quality.FifthInterval(), true)
	if err != nil {
		return nil, err
	}
	return []Note{c.root, third, fifth}, nil
}

// Name returns the chord symbol, e.g. "Eb", "F#m", "Bdim", "Caug".
func (c Chord) Name() string {
	return c.root.String() + c.quality.Suffix()
}

func (c Chord) String() string {
	return c.Name()
}
