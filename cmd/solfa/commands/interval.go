package commands

import (
	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/pkg/theory"
)

var intervalCmd = &cobra.Command{
	Use:   "interval [interval]",
	Short: "List intervals or describe one",
	Long: `Without an argument, list every interval with its size and inversion.
With one, describe that interval.

Examples:
  solfa interval
  solfa interval A4
  solfa interval minor_sixth -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			i, err := theory.ParseInterval(args[0])
			if err != nil {
				return err
			}
			return output(newIntervalView(i))
		}
		all := theory.Intervals()
		list := make(intervalList, len(all))
		for i, iv := range all {
			list[i] = newIntervalView(iv)
		}
		return output(list)
	},
}

func init() {
	rootCmd.AddCommand(intervalCmd)
}
