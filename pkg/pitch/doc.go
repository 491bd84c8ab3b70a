// Package pitch places spelled notes in a register and computes their
// equal-tempered frequencies.
//
// Octaves follow scientific pitch notation and change by letter between B
// and C, so B#3 and C4 share a key number while Cb4 sounds a semitone below
// C4.
//
// Example usage:
//
//	p, _ := pitch.Parse("Eb4")
//	fmt.Printf("%.2f\n", p.Frequency()) // 311.13
//
//	s := theory.NewScale(theory.MustParse("G"), theory.MelodicMinor, theory.AscendingThenDescending)
//	for _, p := range pitch.VoiceScale(s, 4) {
//		fmt.Println(p, p.Frequency())
//	}
package pitch
