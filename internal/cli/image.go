package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/render"
	"github.com/jmylchreest/huegen/internal/scheme"
)

var (
	imageColours string
	imageScheme  string
	imageOut     string
	imageWidth   int
	imageHeight  int
	imageLabel   string
)

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Render a palette or scheme to an image file",
	Long: `Render colours as vertical bars in a PNG or JPEG image. Colours come
either from a comma-separated hex list or from a scheme YAML file.

Examples:
  huegen image --colors "#ff0000,#00ff00,#0000ff" -o palette.png
  huegen image --scheme my-scheme.yaml --label base16 -o scheme.png`,
	RunE: runImage,
}

func init() {
	imageCmd.Flags().StringVar(&imageColours, "colors", "", "Comma-separated hex colours")
	imageCmd.Flags().StringVar(&imageScheme, "scheme", "", "Scheme YAML file")
	imageCmd.Flags().StringVarP(&imageOut, "out", "o", "palette.png", "Output image path (.png, .jpg)")
	imageCmd.Flags().IntVar(&imageWidth, "width", 0, "Image width in pixels (default scales with palette)")
	imageCmd.Flags().IntVar(&imageHeight, "height", 0, "Image height in pixels")
	imageCmd.Flags().StringVar(&imageLabel, "label", "index", "Bar label style (index, base16, none)")
	imageCmd.MarkFlagsMutuallyExclusive("colors", "scheme")
}

func runImage(cmd *cobra.Command, args []string) error {
	colours, err := resolveColours(imageColours, imageScheme)
	if err != nil {
		return err
	}

	label, err := render.ParseLabelStyle(imageLabel)
	if err != nil {
		return err
	}

	opts := render.ImageOptions{Width: imageWidth, Height: imageHeight, Label: label}
	if err := render.WriteImage(imageOut, colours, opts); err != nil {
		return err
	}
	progressf("Wrote %d colour bars to %s\n", len(colours), imageOut)
	return nil
}

// resolveColours loads colours from either a hex list or a scheme file.
// Exactly one source must be provided.
func resolveColours(hexList, schemePath string) ([]colour.RGB, error) {
	switch {
	case hexList != "":
		return parseHexList(hexList)
	case schemePath != "":
		s, err := scheme.Load(schemePath)
		if err != nil {
			return nil, err
		}
		return s.Colours, nil
	}
	return nil, fmt.Errorf("either --colors or --scheme is required")
}

func parseHexList(list string) ([]colour.RGB, error) {
	parts := strings.Split(list, ",")
	out := make([]colour.RGB, 0, len(parts))
	for _, part := range parts {
		c, err := colour.ParseHex(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no colours provided")
	}
	return out, nil
}
