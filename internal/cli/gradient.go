package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
)

var (
	gradientFrom   string
	gradientTo     string
	gradientSteps  int
	gradientSpace  string
	gradientFormat string
)

var gradientCmd = &cobra.Command{
	Use:   "gradient",
	Short: "Interpolate a gradient between two colours",
	Long: `Generate evenly spaced colours between two endpoints.

Spaces:
  lab  - perceptually uniform, may pass through grey
  lch  - keeps chroma through the midpoint, shortest hue path
  rgb  - linear-light RGB blend

Examples:
  huegen gradient --from "#282c34" --to "#61afef" --steps 8
  huegen gradient --from "#e06c75" --to "#98c379" --space lch`,
	RunE: runGradient,
}

func init() {
	gradientCmd.Flags().StringVar(&gradientFrom, "from", "", "Start colour as hex code (required)")
	gradientCmd.Flags().StringVar(&gradientTo, "to", "", "End colour as hex code (required)")
	gradientCmd.Flags().IntVar(&gradientSteps, "steps", 8, "Number of colours, endpoints included")
	gradientCmd.Flags().StringVar(&gradientSpace, "space", "lab", "Interpolation space (lab, lch, rgb)")
	gradientCmd.Flags().StringVar(&gradientFormat, "format", "hex", "Output format (hex, json, yaml)")
	gradientCmd.MarkFlagRequired("from")
	gradientCmd.MarkFlagRequired("to")
}

func runGradient(cmd *cobra.Command, args []string) error {
	from, err := colour.ParseHex(gradientFrom)
	if err != nil {
		return err
	}
	to, err := colour.ParseHex(gradientTo)
	if err != nil {
		return err
	}
	if gradientSteps < 2 {
		return fmt.Errorf("gradient needs at least 2 steps")
	}

	var palette []colour.RGB
	switch gradientSpace {
	case "lab":
		palette = colour.GradientLab(from, to, gradientSteps)
	case "lch":
		palette = colour.GradientLCh(from, to, gradientSteps)
	case "rgb":
		palette = colour.GradientRGB(from, to, gradientSteps)
	default:
		return fmt.Errorf("unknown interpolation space %q (lab, lch, rgb)", gradientSpace)
	}

	return printPalette(palette, gradientFormat)
}
