package cli

import (
	"fmt"
	"strconv"
)

// FormatHz formats a frequency with two decimals, e.g. "440.00 Hz".
func FormatHz(hz float64) string {
	return strconv.FormatFloat(hz, 'f', 2, 64) + " Hz"
}

// FormatSemitones formats a semitone count, e.g. "1 semitone", "4 semitones".
func FormatSemitones(n int) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d semitone", n)
	}
	return fmt.Sprintf("%d semitones", n)
}
