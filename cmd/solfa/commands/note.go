package commands

import (
	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/pkg/theory"
)

var noteCmd = &cobra.Command{
	Use:   "note <note>",
	Short: "Parse a note and describe its spelling",
	Long: `Parse a note spelling (a letter A-G, optionally followed by b, bb, # or ##)
and show its letter, accidental, pitch class and enharmonic spellings.

Examples:
  solfa note Eb
  solfa note f## -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := theory.Parse(args[0])
		if err != nil {
			return err
		}
		return output(newNoteView(n))
	},
}

func init() {
	rootCmd.AddCommand(noteCmd)
}
