package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/pkg/pitch"
	"github.com/haivivi/solfa/pkg/theory"
)

var (
	voiceOctave int
	voiceA4     float64
)

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Place a scale or chord in octaves, with frequencies",
	Long: `Voice a scale or chord starting from a given octave (C4 is middle C) and
show each pitch with its key number and equal-tempered frequency.

Examples:
  solfa voice scale G harmonic_minor --octave 3
  solfa voice chord A minor --octave 4 --a4 432 -o table`,
}

var voiceScaleCmd = &cobra.Command{
	Use:   "scale <root> <kind>",
	Short: "Voice a scale",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a4, err := voiceReference(cmd)
		if err != nil {
			return err
		}
		s, err := buildScale(args[0], args[1])
		if err != nil {
			return err
		}
		title := fmt.Sprintf("%s %s", s.Root(), s.Kind())
		return output(newVoiceView(title, a4, pitch.VoiceScale(s, voiceOctave)))
	},
}

var voiceChordCmd = &cobra.Command{
	Use:   "chord <root> [quality]",
	Short: "Voice a triad in close root position",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a4, err := voiceReference(cmd)
		if err != nil {
			return err
		}
		root, err := theory.Parse(args[0])
		if err != nil {
			return err
		}
		quality := theory.Major
		if len(args) == 2 {
			if quality, err = theory.ParseChordQuality(args[1]); err != nil {
				return err
			}
		}
		chord := theory.NewChord(root, quality)
		ps, err := pitch.VoiceChord(chord, voiceOctave)
		if err != nil {
			return err
		}
		return output(newVoiceView(chord.Name(), a4, ps))
	},
}

// voiceReference checks the flags and returns the A4 frequency: --a4 when
// given, else the profile's.
func voiceReference(cmd *cobra.Command) (float64, error) {
	if voiceOctave < -1 || voiceOctave > 9 {
		return 0, fmt.Errorf("octave %d out of range -1..9", voiceOctave)
	}
	if !cmd.Flags().Changed("a4") {
		return settings.A4, nil
	}
	if voiceA4 <= 0 {
		return 0, fmt.Errorf("a4 must be positive, got %v", voiceA4)
	}
	return voiceA4, nil
}

func init() {
	voiceCmd.PersistentFlags().IntVar(&voiceOctave, "octave", 4, "octave of the root")
	voiceCmd.PersistentFlags().Float64Var(&voiceA4, "a4", pitch.A4, "reference frequency of A4 in Hz (default from profile, else 440)")
	voiceScaleCmd.Flags().StringVarP(&scaleDirection, "direction", "d", "", "traversal direction (default from profile, else ascending)")

	voiceCmd.AddCommand(voiceScaleCmd)
	voiceCmd.AddCommand(voiceChordCmd)
	rootCmd.AddCommand(voiceCmd)
}
