package theory

import (
	"fmt"
	"slices"
	"strings"
)

// ScaleKind identifies a scale or mode.
type ScaleKind uint8

// Scale kinds. Major and Ionian share a pattern, as do Minor and Aeolian.
const (
	MajorScale ScaleKind = iota
	MinorScale
	Ionian
	Dorian
	Phrygian
	Lydian
	Mixolydian
	Aeolian
	Locrian
	HarmonicMinor
	MelodicMinor
	MajorPentatonic
	MinorPentatonic
	HalfWhole
	WholeHalf
	WholeTone

	numScaleKinds
)

var (
	ionianPattern  = []Interval{MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond}
	aeolianPattern = []Interval{MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond}
)

type scaleInfo struct {
	name    string
	pattern []Interval
}

// scaleTable holds the ascending pattern of every kind: the intervals
// between successive degrees, tonic to tonic.
var scaleTable = [numScaleKinds]scaleInfo{
	MajorScale: {"major", ionianPattern},
	MinorScale: {"minor", aeolianPattern},
	Ionian:     {"ionian", ionianPattern},
	Dorian: {"dorian", []Interval{
		MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond,
	}},
	Phrygian: {"phrygian", []Interval{
		MinorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond,
	}},
	Lydian: {"lydian", []Interval{
		MajorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond,
	}},
	Mixolydian: {"mixolydian", []Interval{
		MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond,
	}},
	Aeolian: {"aeolian", aeolianPattern},
	Locrian: {"locrian", []Interval{
		MinorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond,
	}},
	HarmonicMinor: {"harmonic_minor", []Interval{
		MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond, AugmentedSecond, MinorSecond,
	}},
	MelodicMinor: {"melodic_minor", []Interval{
		MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond,
	}},
	MajorPentatonic: {"major_pentatonic", []Interval{
		MajorSecond, MajorSecond, MinorThird, MajorSecond, MinorThird,
	}},
	MinorPentatonic: {"minor_pentatonic", []Interval{
		MinorThird, MajorSecond, MajorSecond, MinorThird, MajorSecond,
	}},
	HalfWhole: {"half_whole", []Interval{
		MinorSecond, MajorSecond, AugmentedUnison, MajorSecond, MinorSecond, MajorSecond, MinorSecond, MajorSecond,
	}},
	WholeHalf: {"whole_half", []Interval{
		MajorSecond, MinorSecond, MajorSecond, MinorSecond, MajorSecond, AugmentedUnison, MajorSecond, MinorSecond,
	}},
	WholeTone: {"whole_tone", []Interval{
		MajorSecond, MajorSecond, MajorSecond, MajorSecond, MajorSecond, DiminishedThird,
	}},
}

// ScaleKinds returns every kind in table order.
func ScaleKinds() []ScaleKind {
	out := make([]ScaleKind, numScaleKinds)
	for i := range out {
		out[i] = ScaleKind(i)
	}
	return out
}

// Valid reports whether k is a known kind.
func (k ScaleKind) Valid() bool {
	return k < numScaleKinds
}

// Pattern returns a copy of the ascending interval pattern.
func (k ScaleKind) Pattern() []Interval {
	return slices.Clone(scaleTable[k].pattern)
}

// DescendingPattern returns the intervals walked from the top tonic down,
// in walking order. It is the ascending pattern reversed, except for
// MelodicMinor, which descends as natural minor.
func (k ScaleKind) DescendingPattern() []Interval {
	src := scaleTable[k].pattern
	if k == MelodicMinor {
		src = aeolianPattern
	}
	out := slices.Clone(src)
	slices.Reverse(out)
	return out
}

func (k ScaleKind) String() string {
	if !k.Valid() {
		return "invalid"
	}
	return scaleTable[k].name
}

// ParseScaleKind accepts the snake_case name of a kind; spaces and dashes
// are folded to underscores.
func ParseScaleKind(text string) (ScaleKind, error) {
	norm := normalizeName(text)
	for i := range scaleTable {
		if scaleTable[i].name == norm {
			return ScaleKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidScaleKind, text)
}

// ScaleDirection selects how a scale is traversed.
type ScaleDirection uint8

// Directions.
const (
	Ascending ScaleDirection = iota
	Descending
	AscendingThenDescending
	DescendingThenAscending

	numScaleDirections
)

var directionNames = [numScaleDirections]string{
	Ascending:               "ascending",
	Descending:              "descending",
	AscendingThenDescending: "ascending_then_descending",
	DescendingThenAscending: "descending_then_ascending",
}

var directionAliases = map[string]ScaleDirection{
	"up":      Ascending,
	"down":    Descending,
	"up_down": AscendingThenDescending,
	"down_up": DescendingThenAscending,
}

// ScaleDirections returns all directions.
func ScaleDirections() []ScaleDirection {
	return []ScaleDirection{Ascending, Descending, AscendingThenDescending, DescendingThenAscending}
}

// Valid reports whether d is a known direction.
func (d ScaleDirection) Valid() bool {
	return d < numScaleDirections
}

func (d ScaleDirection) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return directionNames[d]
}

// ParseScaleDirection accepts a direction name or one of the aliases
// "up", "down", "up_down" and "down_up".
func ParseScaleDirection(text string) (ScaleDirection, error) {
	norm := normalizeName(text)
	for i, name := range directionNames {
		if name == norm {
			return ScaleDirection(i), nil
		}
	}
	if d, ok := directionAliases[norm]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, text)
}

// Scale is the note sequence of a scale kind walked from a root in a given
// direction. It is computed once by NewScale and never changes.
type Scale struct {
	root      Note
	kind      ScaleKind
	direction ScaleDirection
	notes     []Note
}

// NewScale builds the scale. Each degree is transposed from the previous
// one, not from the root, so an augmented second in harmonic minor is
// spelled against its neighbour. NewScale panics if a degree would need a
// triple accidental; BuildScale reports that as an error instead.
func NewScale(root Note, kind ScaleKind, direction ScaleDirection) *Scale {
	s, err := BuildScale(root, kind, direction)
	if err != nil {
		panic(err)
	}
	return s
}

// BuildScale is NewScale returning spelling failures as errors.
func BuildScale(root Note, kind ScaleKind, direction ScaleDirection) (*Scale, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScaleKind, kind)
	}
	var (
		notes []Note
		err   error
	)
	switch direction {
	case Ascending:
		notes, err = walk(root, kind.Pattern(), true)
	case Descending:
		notes, err = walk(root, kind.DescendingPattern(), false)
	case AscendingThenDescending:
		notes, err = walkBoth(root, kind, true)
	case DescendingThenAscending:
		notes, err = walkBoth(root, kind, false)
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, direction)
	}
	if err != nil {
		return nil, err
	}
	return &Scale{root: root, kind: kind, direction: direction, notes: notes}, nil
}

// walk chains transpositions from root, one interval at a time.
func walk(root Note, pattern []Interval, ascending bool) ([]Note, error) {
	notes := make([]Note, 0, len(pattern)+1)
	notes = append(notes, root)
	for _, interval := range pattern {
		next, err := notes[len(notes)-1].TryTranspose(interval, ascending)
		if err != nil {
			return nil, err
		}
		notes = append(notes, next)
	}
	return notes, nil
}

// walkBoth joins two one-directional walks, dropping the second walk's
// first note so the turnaround is not repeated.
func walkBoth(root Note, kind ScaleKind, upFirst bool) ([]Note, error) {
	up, err := walk(root, kind.Pattern(), true)
	if err != nil {
		return nil, err
	}
	down, err := walk(root, kind.DescendingPattern(), false)
	if err != nil {
		return nil, err
	}
	first, second := up, down
	if !upFirst {
		first, second = down, up
	}
	return append(first, second[1:]...), nil
}

// Root returns the scale's tonic.
func (s *Scale) Root() Note {
	return s.root
}

// Kind returns the scale kind.
func (s *Scale) Kind() ScaleKind {
	return s.kind
}

// Direction returns the traversal direction.
func (s *Scale) Direction() ScaleDirection {
	return s.direction
}

// Notes returns a copy of the note sequence.
func (s *Scale) Notes() []Note {
	return slices.Clone(s.notes)
}

// Len returns the number of notes in the sequence.
func (s *Scale) Len() int {
	return len(s.notes)
}

// Print returns the notes joined by single spaces.
func (s *Scale) Print() string {
	parts := make([]string, len(s.notes))
	for i, n := range s.notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func (s *Scale) String() string {
	return s.Print()
}
