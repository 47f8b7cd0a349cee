package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/huegen/internal/colour"
)

var (
	// palette from-base flags
	fromBaseColour      string
	fromBaseHarmony     string
	fromBaseCount       int
	fromBaseMinContrast float64
	fromBaseBackground  string
	fromBaseFormat      string

	// palette random flags
	randomMethod    string
	randomCount     int
	randomMinDeltaE float64
	randomTheme     string
	randomSeed      uint64
	randomFormat    string

	// palette noise flags
	noiseBase   string
	noiseCount  int
	noiseSpread float64
	noiseFreq   float64
	noiseSeed   uint32
	noiseFormat string
)

// paletteCmd groups the palette generation commands
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Generate and manipulate colour palettes",
}

var paletteFromBaseCmd = &cobra.Command{
	Use:   "from-base",
	Short: "Generate a palette from a base colour using colour harmonies",
	Long: `Generate a palette by rotating the base colour's hue through a classical
harmony, expanding with tints and shades when more colours are requested.

Examples:
  huegen palette from-base --base "#ff5500" --harmony triadic
  huegen palette from-base --base "#61afef" --harmony analogous --count 8
  huegen palette from-base --base "#e06c75" --harmony complementary \
    --min-contrast 4.5 --background "#282c34"`,
	RunE: runPaletteFromBase,
}

var paletteRandomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate random colour palettes",
	Long: `Generate a palette with a random sampling strategy.

Methods:
  golden   - deterministic golden ratio hue stepping
  poisson  - rejection sampling with a perceptual distance floor
  uniform  - uniform draws with optional distance filters

Examples:
  huegen palette random --method golden --count 8 --seed 42
  huegen palette random --method poisson --min-delta-e 20 --theme dark`,
	RunE: runPaletteRandom,
}

var paletteNoiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Generate a palette by noise-modulating a base colour",
	Long: `Generate a palette by perturbing the base colour with hash gradient noise
in LCh space. Spread controls how far hue, chroma and lightness wander.

Examples:
  huegen palette noise --base "#61afef" --count 8
  huegen palette noise --base "#98c379" --spread 0.3 --seed 7`,
	RunE: runPaletteNoise,
}

func init() {
	paletteFromBaseCmd.Flags().StringVar(&fromBaseColour, "base", "", "Base colour as hex code (required)")
	paletteFromBaseCmd.Flags().StringVar(&fromBaseHarmony, "harmony", "complementary", "Harmony type (complementary, split-complementary, analogous, triadic, tetradic, square)")
	paletteFromBaseCmd.Flags().IntVar(&fromBaseCount, "count", 5, "Number of colours to generate")
	paletteFromBaseCmd.Flags().Float64Var(&fromBaseMinContrast, "min-contrast", 0, "Minimum contrast ratio against background")
	paletteFromBaseCmd.Flags().StringVar(&fromBaseBackground, "background", "", "Background colour for contrast checking")
	paletteFromBaseCmd.Flags().StringVar(&fromBaseFormat, "format", "hex", "Output format (hex, json, yaml)")
	paletteFromBaseCmd.MarkFlagRequired("base")

	paletteRandomCmd.Flags().StringVar(&randomMethod, "method", "golden", "Generation method (golden, poisson, uniform)")
	paletteRandomCmd.Flags().IntVar(&randomCount, "count", 5, "Number of colours to generate")
	paletteRandomCmd.Flags().Float64Var(&randomMinDeltaE, "min-delta-e", 0, "Minimum colour difference (CIEDE2000); poisson defaults to 10, an explicit 0 disables it")
	paletteRandomCmd.Flags().StringVar(&randomTheme, "theme", "", "Theme preference (dark, light)")
	paletteRandomCmd.Flags().Uint64Var(&randomSeed, "seed", 0, "Random seed for reproducible palettes")
	paletteRandomCmd.Flags().StringVar(&randomFormat, "format", "hex", "Output format (hex, json, yaml)")

	paletteNoiseCmd.Flags().StringVar(&noiseBase, "base", "", "Base colour as hex code (required)")
	paletteNoiseCmd.Flags().IntVar(&noiseCount, "count", 5, "Number of colours to generate")
	paletteNoiseCmd.Flags().Float64Var(&noiseSpread, "spread", 0.2, "How far the palette wanders from the base")
	paletteNoiseCmd.Flags().Float64Var(&noiseFreq, "freq", 3.0, "Noise frequency across the palette")
	paletteNoiseCmd.Flags().Uint32Var(&noiseSeed, "seed", 0xdecafbad, "Noise seed")
	paletteNoiseCmd.Flags().StringVar(&noiseFormat, "format", "hex", "Output format (hex, json, yaml)")
	paletteNoiseCmd.MarkFlagRequired("base")

	paletteCmd.AddCommand(paletteFromBaseCmd)
	paletteCmd.AddCommand(paletteRandomCmd)
	paletteCmd.AddCommand(paletteNoiseCmd)
}

func runPaletteFromBase(cmd *cobra.Command, args []string) error {
	log := newLogger()

	base, err := colour.ParseHex(fromBaseColour)
	if err != nil {
		return err
	}
	harmony, err := colour.ParseHarmony(fromBaseHarmony)
	if err != nil {
		return err
	}

	log.Debug("generating harmony palette", "base", base.Hex(), "harmony", harmony.String(), "count", fromBaseCount)

	var palette []colour.RGB
	if fromBaseMinContrast > 0 {
		if fromBaseBackground == "" {
			return fmt.Errorf("--min-contrast requires --background")
		}
		background, err := colour.ParseHex(fromBaseBackground)
		if err != nil {
			return err
		}
		palette, err = colour.HarmonyPaletteContrast(base, harmony, fromBaseCount, background, fromBaseMinContrast)
		if err != nil {
			return fmt.Errorf("generating palette: %w", err)
		}
	} else {
		palette = colour.HarmonyPalette(base, harmony, fromBaseCount)
	}

	progressf("Generated %d colours from %s (%s harmony)\n", len(palette), base.Hex(), harmony)
	return printPalette(palette, fromBaseFormat)
}

func runPaletteRandom(cmd *cobra.Command, args []string) error {
	log := newLogger()

	method, err := colour.ParseStrategy(randomMethod)
	if err != nil {
		return err
	}
	theme, err := colour.ParseTheme(randomTheme)
	if err != nil {
		return err
	}

	minDeltaE := randomMinDeltaE
	if method == colour.StrategyPoisson && !cmd.Flags().Changed("min-delta-e") {
		minDeltaE = colour.DefaultPoissonRadius
	}

	log.Debug("sampling palette", "method", method.String(), "count", randomCount, "seed", randomSeed, "min-delta-e", minDeltaE)

	palette, err := colour.Sample(colour.SamplerConfig{
		Strategy:  method,
		Count:     randomCount,
		Seed:      randomSeed,
		Theme:     theme,
		MinDeltaE: minDeltaE,
	})
	if err != nil {
		return fmt.Errorf("sampling palette: %w", err)
	}

	progressf("Generated %d colours with %s sampling\n", len(palette), method)
	return printPalette(palette, randomFormat)
}

func runPaletteNoise(cmd *cobra.Command, args []string) error {
	base, err := colour.ParseHex(noiseBase)
	if err != nil {
		return err
	}

	src := colour.NewHashNoise(noiseSeed)
	palette := colour.NoisePalette(noiseCount, base.LCh(), noiseSpread, noiseFreq, src)

	progressf("Generated %d colours around %s\n", len(palette), base.Hex())
	return printPalette(palette, noiseFormat)
}

// printPalette writes the palette to stdout in the requested format.
func printPalette(palette []colour.RGB, format string) error {
	hexes := make([]string, len(palette))
	for i, c := range palette {
		hexes[i] = c.Hex()
	}

	switch strings.ToLower(format) {
	case "hex":
		for _, h := range hexes {
			fmt.Println(h)
		}
	case "json":
		data, err := json.MarshalIndent(map[string][]string{"colors": hexes}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(map[string][]string{"colors": hexes})
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
	default:
		return fmt.Errorf("unknown output format %q (hex, json, yaml)", format)
	}
	return nil
}
