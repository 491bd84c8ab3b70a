package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/pkg/theory"
)

var chordShowNotes bool

var chordCmd = &cobra.Command{
	Use:   "chord <root> [quality]",
	Short: "Name a triad or list its notes",
	Long: `Build the triad on a root. Quality is major (default), minor, diminished
or augmented; the symbols m, dim, aug, o and + are accepted too.

Examples:
  solfa chord Eb              # Eb
  solfa chord F# dim --notes  # F# A C
  solfa chord C aug -o json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
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
		notes, err := chord.Triad()
		if err != nil {
			return err
		}
		slog.Debug("chord", "root", root, "quality", quality, "third", quality.ThirdInterval(), "fifth", quality.FifthInterval())

		return output(chordView{
			Name:      chord.Name(),
			Root:      root,
			Quality:   quality,
			Notes:     notes,
			showNotes: chordShowNotes,
		})
	},
}

func init() {
	chordCmd.Flags().BoolVar(&chordShowNotes, "notes", false, "print root, third and fifth instead of the name")
	rootCmd.AddCommand(chordCmd)
}
