package commands

import (
	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/pkg/theory"
)

var transposeDown bool

var transposeCmd = &cobra.Command{
	Use:   "transpose <note> <interval>",
	Short: "Move a note by an interval",
	Long: `Transpose a note up (default) or down by an interval. The interval is a
symbol such as m3 or A4, or a name such as minor_third.

Examples:
  solfa transpose E m3          # G
  solfa transpose C M3 --down   # Ab
  solfa transpose F augmented_fourth`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := theory.Parse(args[0])
		if err != nil {
			return err
		}
		interval, err := theory.ParseInterval(args[1])
		if err != nil {
			return err
		}
		to, err := from.TryTranspose(interval, !transposeDown)
		if err != nil {
			return err
		}
		direction := "up"
		if transposeDown {
			direction = "down"
		}
		return output(transposeView{From: from, Interval: interval, Direction: direction, To: to})
	},
}

func init() {
	transposeCmd.Flags().BoolVar(&transposeDown, "down", false, "transpose downwards")
	rootCmd.AddCommand(transposeCmd)
}
