package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/cmd/solfa/internal/config"
	"github.com/haivivi/solfa/pkg/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage profiles",
	Long: `Manage profiles: named sets of defaults for output format, scale
direction, OSC addresses, table colour and A4 tuning.

Keys: format, direction, osc_listen, osc_reply, theme, a4

Examples:
  solfa config add-profile live --default-format table --default-direction up_down
  solfa config use-profile live
  solfa config set live osc_reply 192.168.1.20:9001
  solfa config set live a4 432
  solfa config show
  solfa config path`,
}

var configListProfilesCmd = &cobra.Command{
	Use:     "list-profiles",
	Aliases: []string{"ls"},
	Short:   "List all profiles",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		names := cfg.ListProfiles()
		if len(names) == 0 {
			fmt.Println("No profiles configured.")
			fmt.Println("Create one with: solfa config add-profile <name>")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "CURRENT\tNAME\tFORMAT\tDIRECTION")
		for _, name := range names {
			current := ""
			if name == cfg.CurrentProfile {
				current = "*"
			}
			p := cfg.Profiles[name]
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", current, name, p.Format, p.Direction)
		}
		return w.Flush()
	},
}

var addProfile cli.Profile

var configAddProfileCmd = &cobra.Command{
	Use:   "add-profile <name>",
	Short: "Create or replace a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		p := addProfile
		for key, value := range map[string]string{
			"format":     p.Format,
			"direction":  p.Direction,
			"osc_listen": p.OSCListen,
			"osc_reply":  p.OSCReply,
			"a4":         p.A4,
		} {
			if value == "" {
				continue
			}
			if err := config.Validate(key, value); err != nil {
				return err
			}
		}
		if err := cfg.AddProfile(args[0], &p); err != nil {
			return err
		}
		cli.PrintSuccess("Profile %q saved.", args[0])
		return nil
	},
}

var configUseProfileCmd = &cobra.Command{
	Use:   "use-profile <name>",
	Short: "Set the current profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		if err := cfg.UseProfile(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Switched to profile %q.", args[0])
		return nil
	},
}

var configDeleteProfileCmd = &cobra.Command{
	Use:   "delete-profile <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		if err := cfg.DeleteProfile(args[0]); err != nil {
			return err
		}
		cli.PrintSuccess("Profile %q deleted.", args[0])
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <profile> <key> <value>",
	Short: "Set one profile key",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		name, key, value := args[0], args[1], args[2]
		p, err := cfg.GetProfile(name)
		if err != nil {
			return err
		}
		if err := config.Validate(key, value); err != nil {
			return err
		}
		if err := p.Set(key, value); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		cli.PrintSuccess("%s.%s = %s", name, key, value)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show a profile (the current one by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		name := cfg.CurrentProfile
		if len(args) == 1 {
			name = args[0]
		}
		if name == "" {
			return fmt.Errorf("no current profile set; use 'solfa config use-profile <name>'")
		}
		p, err := cfg.GetProfile(name)
		if err != nil {
			return err
		}
		format := settings.Format
		if format == cli.FormatRaw {
			format = cli.FormatYAML
		}
		return cli.Output(p, cli.OutputOptions{Format: format, File: outputFile, Query: queryExpr, Theme: settings.Theme})
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		fmt.Println(cfg.Path())
		return nil
	},
}

func init() {
	f := configAddProfileCmd.Flags()
	f.StringVar(&addProfile.Format, "default-format", "", "default output format")
	f.StringVar(&addProfile.Direction, "default-direction", "", "default scale direction")
	f.StringVar(&addProfile.OSCListen, "osc-listen", "", "OSC listen address")
	f.StringVar(&addProfile.OSCReply, "osc-reply", "", "OSC reply address")
	f.StringVar(&addProfile.Theme, "theme", "", "table accent colour, e.g. #ffaa00")
	f.StringVar(&addProfile.A4, "a4", "", "A4 tuning reference in Hz")

	configCmd.AddCommand(configListProfilesCmd)
	configCmd.AddCommand(configAddProfileCmd)
	configCmd.AddCommand(configUseProfileCmd)
	configCmd.AddCommand(configDeleteProfileCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
