package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/pkg/cli"
	"github.com/haivivi/solfa/pkg/sheet"
)

var (
	sheetFile   string
	sheetSchema bool
)

var sheetCmd = &cobra.Command{
	Use:   "sheet -f <file>",
	Short: "Answer a worksheet of questions from YAML or JSON",
	Long: `Answer every item of a worksheet. Use '-' to read from stdin.

A worksheet looks like:

  items:
    - op: chord
      root: Eb
      quality: minor
    - op: scale
      root: G
      kind: harmonic_minor
      octave: 4
    - op: transpose
      root: C
      interval: M3
      down: true
    - op: interval
      interval: A4

Items without an id get a generated one. A failing item does not stop the
others, but the command exits non-zero when any item failed.

Examples:
  solfa sheet -f worksheet.yaml
  solfa sheet -f worksheet.json -o json --query '.results[].notes'
  solfa sheet --schema -o json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sheetSchema {
			return printSchema()
		}
		if sheetFile == "" {
			return fmt.Errorf("flag -f is required")
		}

		var req sheet.Request
		if err := cli.LoadRequest(sheetFile, &req); err != nil {
			return err
		}
		if err := sheet.Validate(&req); err != nil {
			return err
		}
		slog.Debug("worksheet loaded", "file", sheetFile, "items", len(req.Items))

		resp := sheet.Evaluate(&req)
		if err := output((*sheetView)(resp)); err != nil {
			return err
		}
		if resp.Failed > 0 {
			return fmt.Errorf("%d of %d items failed", resp.Failed, len(resp.Results))
		}
		return nil
	},
}

// printSchema prints the request schema. It goes through its JSON form so
// every output format sees plain maps.
func printSchema() error {
	schema, err := sheet.Schema()
	if err != nil {
		return err
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if settings.Format == cli.FormatRaw {
		return output(string(data))
	}
	return output(v)
}

func init() {
	sheetCmd.Flags().StringVarP(&sheetFile, "file", "f", "", "worksheet file (YAML or JSON, '-' for stdin)")
	sheetCmd.Flags().BoolVar(&sheetSchema, "schema", false, "print the worksheet JSON schema")
	rootCmd.AddCommand(sheetCmd)
}
