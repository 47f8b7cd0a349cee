package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/scheme"
)

var (
	// scheme generate flags
	genAccent       string
	genVariant      string
	genHarmony      string
	genNeutralDepth float64
	genSystem       string
	genName         string
	genAuthor       string
	genOutput       string

	// scheme export flags
	exportFormat string
)

// schemeCmd groups the Base16/Base24 scheme commands
var schemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Generate, validate and export Base16/Base24 colour schemes",
}

var schemeGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a scheme from an accent colour",
	Long: `Generate a complete Base16 or Base24 scheme from a single accent colour.

Neutral slots (base00-base07) form a desaturated lightness ramp; accent
slots (base08-base0F) are derived from the harmony and snapped to their
semantic hues. Base24 adds deeper backgrounds and bright accent variants.

The --neutral-depth flag blends the neutral ramp between a classic curve
(0.0) and a deeper, moodier curve (1.0).

Examples:
  huegen scheme generate --accent "#61afef" --variant dark --harmony triadic
  huegen scheme generate --accent "#d08770" --variant light \
    --system base24 --neutral-depth 0.5 -o my-scheme.yaml`,
	RunE: runSchemeGenerate,
}

var schemeValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a scheme YAML against Base16 conventions",
	Long: `Validate a scheme file. Findings are warnings, not errors: the command
exits zero and prints anything that drifts from the Base16 semantic
guidelines (neutral saturation, accent contrast).`,
	Args: cobra.ExactArgs(1),
	RunE: runSchemeValidate,
}

var schemeExportCmd = &cobra.Command{
	Use:   "export FILE",
	Short: "Export a scheme's palette",
	Long: `Load a scheme YAML file and print its palette in the requested format.

Examples:
  huegen scheme export my-scheme.yaml
  huegen scheme export my-scheme.yaml --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runSchemeExport,
}

func init() {
	schemeGenerateCmd.Flags().StringVar(&genAccent, "accent", "", "Accent colour as hex code (required)")
	schemeGenerateCmd.Flags().StringVar(&genVariant, "variant", "dark", "Scheme variant (dark, light)")
	schemeGenerateCmd.Flags().StringVar(&genHarmony, "harmony", "triadic", "Harmony for accent derivation")
	schemeGenerateCmd.Flags().Float64Var(&genNeutralDepth, "neutral-depth", scheme.DefaultNeutralDepth, "Neutral ramp depth, classic (0.0) to moody (1.0)")
	schemeGenerateCmd.Flags().StringVar(&genSystem, "system", "base16", "Scheme system (base16, base24)")
	schemeGenerateCmd.Flags().StringVar(&genName, "name", "Huegen Scheme", "Scheme name")
	schemeGenerateCmd.Flags().StringVar(&genAuthor, "author", "", "Scheme author")
	schemeGenerateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Write YAML to file instead of stdout")
	schemeGenerateCmd.MarkFlagRequired("accent")

	schemeExportCmd.Flags().StringVar(&exportFormat, "format", "hex", "Output format (hex, json, yaml)")

	schemeCmd.AddCommand(schemeGenerateCmd)
	schemeCmd.AddCommand(schemeValidateCmd)
	schemeCmd.AddCommand(schemeExportCmd)
}

func runSchemeGenerate(cmd *cobra.Command, args []string) error {
	log := newLogger()

	accent, err := colour.ParseHex(genAccent)
	if err != nil {
		return err
	}
	variant, err := scheme.ParseVariant(genVariant)
	if err != nil {
		return err
	}
	harmony, err := colour.ParseHarmony(genHarmony)
	if err != nil {
		return err
	}
	system, err := scheme.ParseSystem(genSystem)
	if err != nil {
		return err
	}

	log.Debug("generating scheme", "accent", accent.Hex(), "variant", variant.String(), "system", string(system))

	s := scheme.Generate(scheme.Config{
		System:       system,
		Name:         genName,
		Author:       genAuthor,
		Variant:      variant,
		Accent:       accent,
		Harmony:      harmony,
		NeutralDepth: genNeutralDepth,
	})

	for _, warning := range scheme.Validate(s) {
		progressf("warning: %s\n", warning)
	}

	if genOutput != "" {
		if err := scheme.Save(s, genOutput); err != nil {
			return err
		}
		progressf("Wrote %s scheme to %s\n", s.System, genOutput)
		return nil
	}

	data, err := scheme.Marshal(s)
	if err != nil {
		return err
	}
	os.Stdout.Write(data)
	return nil
}

func runSchemeValidate(cmd *cobra.Command, args []string) error {
	s, err := scheme.Load(args[0])
	if err != nil {
		return err
	}

	warnings := scheme.Validate(s)
	if len(warnings) == 0 {
		fmt.Printf("%s: ok (%s, %d colours)\n", args[0], s.System, len(s.Colours))
		return nil
	}
	for _, warning := range warnings {
		fmt.Printf("%s: warning: %s\n", args[0], warning)
	}
	return nil
}

func runSchemeExport(cmd *cobra.Command, args []string) error {
	s, err := scheme.Load(args[0])
	if err != nil {
		return err
	}
	progressf("Exporting %s palette from %q\n", s.System, s.Name)
	return printPalette(s.Colours, exportFormat)
}
