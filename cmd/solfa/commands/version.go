package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/cmd/solfa/internal/build"
	"github.com/haivivi/solfa/pkg/cli"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := build.Get()
		if settings.Format != cli.FormatRaw {
			return output(info)
		}
		fmt.Println(info.String())
		if IsVerbose() {
			fmt.Printf("  go:     %s\n", info.Go)
			if cfg, err := GetConfig(); err == nil {
				fmt.Printf("  config: %s\n", cfg.Path())
			} else {
				fmt.Printf("  config: (unavailable: %v)\n", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
