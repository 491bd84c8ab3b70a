package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/cmd/solfa/internal/config"
	"github.com/haivivi/solfa/pkg/cli"
)

var (
	// Global flags
	verbose      bool
	formatOutput string
	outputFile   string
	queryExpr    string
	profileName  string

	// Loaded before every command runs.
	globalConfig *cli.Config
	settings     *config.Settings
)

var rootCmd = &cobra.Command{
	Use:   "solfa",
	Short: "Spell notes, intervals, chords and scales",
	Long: `solfa - a music theory engine that keeps enharmonic spelling.

C# and Db sound the same but are different notes: every answer is spelled
on the letter the theory asks for.

Examples:
  solfa chord Eb                      # Eb
  solfa chord F# dim --notes          # F# A C
  solfa transpose C M3 --down         # Ab
  solfa scale A melodic_minor -d up_down
  solfa voice chord A minor --octave 4 -o table
  solfa sheet -f worksheet.yaml -o json --query '.results[].text'

Output formats (-o): raw (default), yaml, json, table, msgpack.
Defaults can be stored in profiles, see 'solfa config'.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&formatOutput, "format", "o", "", "output format: raw, yaml, json, table, msgpack")
	rootCmd.PersistentFlags().StringVar(&outputFile, "output-file", "", "write output to a file instead of stdout")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression applied to the result")
	rootCmd.PersistentFlags().StringVar(&profileName, "profile", "", "profile to read defaults from")
}

// setup installs the logger and resolves settings. A broken config file or
// current profile is only fatal when a profile was asked for by name, so
// "config" can still repair it.
func setup(cmd *cobra.Command, args []string) error {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := config.Load()
	if err != nil {
		if profileName != "" {
			return fmt.Errorf("config not available: %w", err)
		}
		slog.Warn("config not loaded, using defaults", "error", err)
		cfg = nil
	}
	globalConfig = cfg

	s, err := config.Resolve(cfg, profileName)
	if err != nil {
		if profileName != "" {
			return err
		}
		slog.Warn("current profile unusable, using defaults", "error", err)
		s, _ = config.Resolve(nil, "")
	}
	if formatOutput != "" {
		if s.Format, err = cli.ParseOutputFormat(formatOutput); err != nil {
			return err
		}
	}
	settings = s
	slog.Debug("settings", "profile", s.Profile, "format", s.Format, "direction", s.Direction)
	return nil
}

// GetConfig returns the loaded profile file.
func GetConfig() (*cli.Config, error) {
	if globalConfig == nil {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("config not available: %w", err)
		}
		globalConfig = cfg
	}
	return globalConfig, nil
}

// IsVerbose returns whether verbose mode is enabled.
func IsVerbose() bool {
	return verbose
}

// output prints a result in the selected format.
func output(result any) error {
	return cli.Output(result, cli.OutputOptions{
		Format: settings.Format,
		File:   outputFile,
		Query:  queryExpr,
		Theme:  settings.Theme,
	})
}
