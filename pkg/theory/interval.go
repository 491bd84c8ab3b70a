package theory

import (
	"fmt"
	"strings"
)

// Interval is a named diatonic interval within one octave.
type Interval uint8

// Intervals ordered by step count, then semitones.
const (
	PerfectUnison Interval = iota
	AugmentedUnison
	MinorSecond
	MajorSecond
	AugmentedSecond
	DiminishedThird
	MinorThird
	MajorThird
	DiminishedFourth
	PerfectFourth
	AugmentedFourth
	DiminishedFifth
	PerfectFifth
	AugmentedFifth
	MinorSixth
	MajorSixth
	AugmentedSixth
	DiminishedSeventh
	MinorSeventh
	MajorSeventh
	DiminishedOctave

	numIntervals
)

type intervalInfo struct {
	semitones int
	steps     int
	inverse   Interval
	symbol    string
	name      string
}

// intervalTable is indexed by Interval. Every entry must be filled in; the
// tests walk the whole table, so a missing row fails there rather than
// producing a wrong spelling.
var intervalTable = [numIntervals]intervalInfo{
	PerfectUnison:     {0, 0, PerfectUnison, "P1", "perfect_unison"},
	AugmentedUnison:   {1, 0, DiminishedOctave, "A1", "augmented_unison"},
	MinorSecond:       {1, 1, MajorSeventh, "m2", "minor_second"},
	MajorSecond:       {2, 1, MinorSeventh, "M2", "major_second"},
	AugmentedSecond:   {3, 1, DiminishedSeventh, "A2", "augmented_second"},
	DiminishedThird:   {2, 2, AugmentedSixth, "d3", "diminished_third"},
	MinorThird:        {3, 2, MajorSixth, "m3", "minor_third"},
	MajorThird:        {4, 2, MinorSixth, "M3", "major_third"},
	DiminishedFourth:  {4, 3, AugmentedFifth, "d4", "diminished_fourth"},
	PerfectFourth:     {5, 3, PerfectFifth, "P4", "perfect_fourth"},
	AugmentedFourth:   {6, 3, DiminishedFifth, "A4", "augmented_fourth"},
	DiminishedFifth:   {6, 4, AugmentedFourth, "d5", "diminished_fifth"},
	PerfectFifth:      {7, 4, PerfectFourth, "P5", "perfect_fifth"},
	AugmentedFifth:    {8, 4, DiminishedFourth, "A5", "augmented_fifth"},
	MinorSixth:        {8, 5, MajorThird, "m6", "minor_sixth"},
	MajorSixth:        {9, 5, MinorThird, "M6", "major_sixth"},
	AugmentedSixth:    {10, 5, DiminishedThird, "A6", "augmented_sixth"},
	DiminishedSeventh: {9, 6, AugmentedSecond, "d7", "diminished_seventh"},
	MinorSeventh:      {10, 6, MajorSecond, "m7", "minor_seventh"},
	MajorSeventh:      {11, 6, MinorSecond, "M7", "major_seventh"},
	DiminishedOctave:  {11, 0, AugmentedUnison, "d8", "diminished_octave"},
}

// Intervals returns every interval in table order.
func Intervals() []Interval {
	out := make([]Interval, numIntervals)
	for i := range out {
		out[i] = Interval(i)
	}
	return out
}

// Valid reports whether i is a known interval.
func (i Interval) Valid() bool {
	return i < numIntervals
}

// Semitones returns the chromatic distance 0..11.
func (i Interval) Semitones() int {
	return intervalTable[i].semitones
}

// Steps returns how many letters the interval advances, 0..6.
func (i Interval) Steps() int {
	return intervalTable[i].steps
}

// Invert returns the complementary interval used for the opposite
// direction. Augmented and diminished intervals swap quality, so
// AugmentedFourth inverts to DiminishedFifth.
func (i Interval) Invert() Interval {
	return intervalTable[i].inverse
}

// Symbol returns the short form, e.g. "m3" or "A4".
func (i Interval) Symbol() string {
	if !i.Valid() {
		return "?"
	}
	return intervalTable[i].symbol
}

// Name returns the long snake_case form, e.g. "minor_third".
func (i Interval) Name() string {
	if !i.Valid() {
		return "invalid"
	}
	return intervalTable[i].name
}

func (i Interval) String() string {
	return i.Symbol()
}

// ParseInterval accepts a short symbol ("M3") or a long name
// ("major_third", case-insensitive, spaces or dashes allowed).
func ParseInterval(text string) (Interval, error) {
	symbol := strings.TrimSpace(text)
	for i := range intervalTable {
		if intervalTable[i].symbol == symbol {
			return Interval(i), nil
		}
	}
	norm := normalizeName(text)
	for i := range intervalTable {
		if intervalTable[i].name == norm {
			return Interval(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInterval, text)
}

// normalizeName lowercases s and folds spaces and dashes to underscores.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
