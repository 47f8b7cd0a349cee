package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/scheme"
)

// LabelStyle selects how palette bars are annotated in rendered images.
type LabelStyle int

const (
	LabelIndex LabelStyle = iota
	LabelBase16
	LabelNone
)

// ParseLabelStyle maps a CLI name to a LabelStyle.
func ParseLabelStyle(s string) (LabelStyle, error) {
	switch s {
	case "index":
		return LabelIndex, nil
	case "base16":
		return LabelBase16, nil
	case "none":
		return LabelNone, nil
	}
	return 0, fmt.Errorf("unknown label style %q (index, base16, none)", s)
}

// ImageOptions controls palette image rendering. Zero Width/Height pick
// defaults scaled to the palette size.
type ImageOptions struct {
	Width  int
	Height int
	Label  LabelStyle
}

const (
	defaultBarWidth    = 120
	defaultImageHeight = 200
)

// PaletteImage renders the colours as vertical bars with optional labels.
func PaletteImage(colours []colour.RGB, opts ImageOptions) (image.Image, error) {
	if len(colours) == 0 {
		return nil, fmt.Errorf("no colours to render")
	}

	width := opts.Width
	if width <= 0 {
		width = defaultBarWidth * len(colours)
	}
	height := opts.Height
	if height <= 0 {
		height = defaultImageHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	barWidth := float64(width) / float64(len(colours))

	for i, c := range colours {
		x0 := int(float64(i) * barWidth)
		x1 := int(float64(i+1) * barWidth)
		if i == len(colours)-1 {
			x1 = width
		}
		bar := image.Rect(x0, 0, x1, height)
		fill := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		draw.Draw(img, bar, &image.Uniform{C: fill}, image.Point{}, draw.Src)

		if opts.Label != LabelNone {
			drawBarLabel(img, bar, c, barLabel(i, opts.Label))
		}
	}

	return img, nil
}

func barLabel(i int, style LabelStyle) string {
	if style == LabelBase16 {
		return scheme.SlotKey(i)
	}
	return fmt.Sprintf("%d", i)
}

// drawBarLabel draws the label plus the hex code near the bottom of a bar,
// in whichever of black/white contrasts better with the bar colour.
func drawBarLabel(img *image.RGBA, bar image.Rectangle, c colour.RGB, label string) {
	text := color.RGBA{A: 255}
	if c.Luminance() <= 0.5 {
		text = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{C: text},
		Face: basicfont.Face7x13,
	}

	lines := []string{label, c.Hex()}
	y := bar.Max.Y - 8 - (len(lines)-1)*basicfont.Face7x13.Height
	for _, line := range lines {
		w := drawer.MeasureString(line).Ceil()
		x := bar.Min.X + (bar.Dx()-w)/2
		if x < bar.Min.X+2 {
			x = bar.Min.X + 2
		}
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(line)
		y += basicfont.Face7x13.Height
	}
}

// WriteImage renders the palette and encodes it to path. The format follows
// the file extension: .png (default) or .jpg/.jpeg.
func WriteImage(path string, colours []colour.RGB, opts ImageOptions) error {
	img, err := PaletteImage(colours, opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encoding image: %w", err)
	}
	return nil
}
