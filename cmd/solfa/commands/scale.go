package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/solfa/pkg/theory"
)

var scaleDirection string

var scaleCmd = &cobra.Command{
	Use:   "scale <root> <kind>",
	Short: "Spell a scale or mode",
	Long: `Spell a scale from its root. Every degree lands on the next letter, so
scales never mix sharps and flats for the same letter.

Kinds: ` + scaleKindNames() + `

Directions: ascending (up), descending (down), ascending_then_descending
(up_down), descending_then_ascending (down_up). Melodic minor descends as
natural minor.

Examples:
  solfa scale C major                    # C D E F G A B C
  solfa scale A melodic_minor -d up_down # A B C D E F# G# A G F E D C B A
  solfa scale Eb dorian -o table`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildScale(args[0], args[1])
		if err != nil {
			return err
		}
		return output(newScaleView(s))
	},
}

// buildScale parses the scale arguments shared by scale and voice scale.
// The direction comes from --direction, else from the profile.
func buildScale(rootText, kindText string) (*theory.Scale, error) {
	root, err := theory.Parse(rootText)
	if err != nil {
		return nil, err
	}
	kind, err := theory.ParseScaleKind(kindText)
	if err != nil {
		return nil, err
	}
	direction := settings.Direction
	if scaleDirection != "" {
		if direction, err = theory.ParseScaleDirection(scaleDirection); err != nil {
			return nil, err
		}
	}
	return theory.BuildScale(root, kind, direction)
}

func scaleKindNames() string {
	kinds := theory.ScaleKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

func init() {
	scaleCmd.Flags().StringVarP(&scaleDirection, "direction", "d", "", "traversal direction (default from profile, else ascending)")
	rootCmd.AddCommand(scaleCmd)
}
