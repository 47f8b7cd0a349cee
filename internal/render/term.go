// Package render draws palettes and schemes to terminals and image files.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/huegen/internal/colour"
)

// ANSI escape codes for truecolor terminal output.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"

	defaultBlockWidth = 12
)

// IsTerminal reports whether the file is attached to a terminal. Callers
// use this to fall back to plain output when piped.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// ColourBlock returns a solid ANSI-coloured block of the given width.
func ColourBlock(c colour.RGB, width int) string {
	if width <= 0 {
		width = defaultBlockWidth
	}
	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PaletteLine formats one palette entry: a colour block, an optional label
// and the hex code. The label is drawn in the foreground colour with the
// better contrast against the swatch.
func PaletteLine(c colour.RGB, label string) string {
	fg := colour.RGB{}
	if c.Luminance() <= 0.5 {
		fg = colour.RGB{R: 255, G: 255, B: 255}
	}

	bgCode := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgCode := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	text := fmt.Sprintf(" %-10s %s ", label, c.Hex())
	return bgCode + strings.Repeat(" ", defaultBlockWidth) + fgCode + text + ansiReset
}

// PlainLine formats a palette entry without escape codes, for piped output.
func PlainLine(c colour.RGB, label string) string {
	if label == "" {
		return c.Hex()
	}
	return fmt.Sprintf("%-10s %s", label, c.Hex())
}

// WritePalette writes one line per colour. Labels may be nil or shorter
// than colours; missing labels render empty. When coloured is false the
// output degrades to plain hex lines.
func WritePalette(w io.Writer, colours []colour.RGB, labels []string, coloured bool) {
	for i, c := range colours {
		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		if coloured {
			fmt.Fprintln(w, PaletteLine(c, label))
		} else {
			fmt.Fprintln(w, PlainLine(c, label))
		}
	}
}
