// Package theory computes notes, intervals, chords and scales with
// enharmonic correctness.
//
// A Note is a (letter, accidental) pair, so C# and Db are different values
// even though they share a pitch class. Transposing by an Interval picks the
// target letter from the interval's diatonic step count and then finds the
// accidental that lands on the target pitch class; this is what makes C up a
// minor third come out as Eb rather than D#.
//
// Example usage:
//
//	c, _ := theory.Parse("C")
//	eb := c.Transpose(theory.MinorThird, true) // Eb
//
//	chord := theory.NewChord(c, theory.Diminished)
//	fmt.Println(chord.Third(), chord.Fifth()) // Eb Gb
//
//	scale := theory.NewScale(c, theory.HarmonicMinor, theory.Ascending)
//	fmt.Println(scale.Print()) // C D Eb F G Ab B C
//
// All values are immutable and every function is pure, so the package is
// safe for concurrent use without locking.
package theory
