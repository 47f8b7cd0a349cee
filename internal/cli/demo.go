package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/render"
	"github.com/jmylchreest/huegen/internal/scheme"
)

var (
	demoPaletteColours string
	demoPaletteScheme  string

	demoCodeLanguage string
	demoCodeScheme   string
	demoCodeBase     string
	demoCodeHarmony  string
	demoCodeFile     string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Preview palettes and schemes in the terminal",
}

var demoPaletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show a palette as coloured terminal blocks",
	Long: `Display colours as truecolor blocks with hex codes. Scheme files get
their base16 slot names as labels. Piped output degrades to plain hex.

Examples:
  huegen demo palette --colors "#ff0000,#00ff00,#0000ff"
  huegen demo palette --scheme my-scheme.yaml`,
	RunE: runDemoPalette,
}

var demoCodeCmd = &cobra.Command{
	Use:   "code",
	Short: "Show syntax-highlighted code themed by a scheme",
	Long: `Highlight a code sample with a scheme's colours using truecolor ANSI.
The scheme comes from a YAML file, or is generated on the fly from a base
colour and harmony. Source is read from --file or stdin; without either,
a built-in sample is shown.

Examples:
  huegen demo code --scheme my-scheme.yaml --language go
  huegen demo code --base "#61afef" --harmony triadic --file main.go`,
	RunE: runDemoCode,
}

func init() {
	demoPaletteCmd.Flags().StringVar(&demoPaletteColours, "colors", "", "Comma-separated hex colours")
	demoPaletteCmd.Flags().StringVar(&demoPaletteScheme, "scheme", "", "Scheme YAML file")
	demoPaletteCmd.MarkFlagsMutuallyExclusive("colors", "scheme")

	demoCodeCmd.Flags().StringVar(&demoCodeLanguage, "language", "go", "Language for syntax highlighting")
	demoCodeCmd.Flags().StringVar(&demoCodeScheme, "scheme", "", "Scheme YAML file")
	demoCodeCmd.Flags().StringVar(&demoCodeBase, "base", "", "Base colour for on-the-fly scheme generation")
	demoCodeCmd.Flags().StringVar(&demoCodeHarmony, "harmony", "triadic", "Harmony when using --base")
	demoCodeCmd.Flags().StringVar(&demoCodeFile, "file", "", "Source file to highlight (stdin if omitted)")
	demoCodeCmd.MarkFlagsMutuallyExclusive("scheme", "base")

	demoCmd.AddCommand(demoPaletteCmd)
	demoCmd.AddCommand(demoCodeCmd)
}

func runDemoPalette(cmd *cobra.Command, args []string) error {
	var colours []colour.RGB
	var labels []string

	switch {
	case demoPaletteScheme != "":
		s, err := scheme.Load(demoPaletteScheme)
		if err != nil {
			return err
		}
		colours = s.Colours
		labels = make([]string, len(colours))
		for i := range labels {
			labels[i] = scheme.SlotKey(i)
		}
	case demoPaletteColours != "":
		var err error
		colours, err = parseHexList(demoPaletteColours)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("either --colors or --scheme is required")
	}

	render.WritePalette(os.Stdout, colours, labels, render.IsTerminal(os.Stdout))
	return nil
}

func runDemoCode(cmd *cobra.Command, args []string) error {
	s, err := demoScheme()
	if err != nil {
		return err
	}

	source, err := demoSource()
	if err != nil {
		return err
	}

	return render.HighlightCode(os.Stdout, source, demoCodeLanguage, s)
}

// demoScheme resolves the scheme to highlight with: a file, a generated
// scheme from --base, or a default generated dark scheme.
func demoScheme() (*scheme.Scheme, error) {
	if demoCodeScheme != "" {
		return scheme.Load(demoCodeScheme)
	}

	accent := colour.RGB{R: 0x61, G: 0xaf, B: 0xef}
	if demoCodeBase != "" {
		var err error
		accent, err = colour.ParseHex(demoCodeBase)
		if err != nil {
			return nil, err
		}
	}
	harmony, err := colour.ParseHarmony(demoCodeHarmony)
	if err != nil {
		return nil, err
	}

	return scheme.Generate(scheme.Config{
		System:       scheme.SystemBase16,
		Name:         "Huegen Demo",
		Variant:      scheme.VariantDark,
		Accent:       accent,
		Harmony:      harmony,
		NeutralDepth: scheme.DefaultNeutralDepth,
	}), nil
}

func demoSource() (string, error) {
	if demoCodeFile != "" {
		data, err := os.ReadFile(demoCodeFile)
		if err != nil {
			return "", fmt.Errorf("reading source file: %w", err)
		}
		return string(data), nil
	}

	if !render.IsTerminal(os.Stdin) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		if len(data) > 0 {
			return string(data), nil
		}
	}

	return demoSample, nil
}

const demoSample = `package main

import (
	"fmt"
	"strings"
)

// greet builds a greeting for each name.
func greet(names []string) string {
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "hello %s", name)
	}
	return b.String()
}

func main() {
	fmt.Println(greet([]string{"red", "green", "blue"}))
}
`
