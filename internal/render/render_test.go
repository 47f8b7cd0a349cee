package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/huegen/internal/colour"
	"github.com/jmylchreest/huegen/internal/scheme"
)

func testScheme(t *testing.T) *scheme.Scheme {
	t.Helper()
	return scheme.Generate(scheme.Config{
		System:       scheme.SystemBase16,
		Name:         "Render Test",
		Variant:      scheme.VariantDark,
		Accent:       colour.RGB{R: 0x61, G: 0xaf, B: 0xef},
		Harmony:      colour.Triadic,
		NeutralDepth: scheme.DefaultNeutralDepth,
	})
}

func TestParseLabelStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    LabelStyle
		wantErr bool
	}{
		{input: "index", want: LabelIndex},
		{input: "base16", want: LabelBase16},
		{input: "none", want: LabelNone},
		{input: "fancy", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLabelStyle(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLabelStyle(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLabelStyle(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPaletteImage(t *testing.T) {
	colours := []colour.RGB{
		{R: 255}, {G: 255}, {B: 255},
	}

	img, err := PaletteImage(colours, ImageOptions{Width: 300, Height: 100, Label: LabelNone})
	if err != nil {
		t.Fatalf("PaletteImage error: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 100 {
		t.Fatalf("image size = %dx%d, want 300x100", bounds.Dx(), bounds.Dy())
	}

	// Bar centres carry the palette colours.
	r, _, _, _ := img.At(50, 50).RGBA()
	if r>>8 != 255 {
		t.Errorf("first bar is not red: r=%d", r>>8)
	}
	_, g, _, _ := img.At(150, 50).RGBA()
	if g>>8 != 255 {
		t.Errorf("second bar is not green: g=%d", g>>8)
	}

	if _, err := PaletteImage(nil, ImageOptions{}); err == nil {
		t.Error("expected error for empty palette")
	}
}

func TestPaletteImageDefaults(t *testing.T) {
	colours := []colour.RGB{{R: 10}, {G: 20}}
	img, err := PaletteImage(colours, ImageOptions{Label: LabelIndex})
	if err != nil {
		t.Fatalf("PaletteImage error: %v", err)
	}
	if img.Bounds().Dx() != defaultBarWidth*2 || img.Bounds().Dy() != defaultImageHeight {
		t.Errorf("default size = %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestWriteImageFormats(t *testing.T) {
	dir := t.TempDir()
	colours := []colour.RGB{{R: 200, G: 100, B: 50}, {R: 50, G: 100, B: 200}}

	for _, name := range []string{"palette.png", "palette.jpg"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := WriteImage(path, colours, ImageOptions{Width: 100, Height: 40, Label: LabelNone}); err != nil {
				t.Fatalf("WriteImage error: %v", err)
			}

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("reading image back: %v", err)
			}
			if len(data) == 0 {
				t.Fatal("empty image file")
			}

			if strings.HasSuffix(name, ".png") {
				if _, err := png.Decode(bytes.NewReader(data)); err != nil {
					t.Errorf("output is not a decodable PNG: %v", err)
				}
			}
		})
	}
}

func TestColourBlockAndLines(t *testing.T) {
	c := colour.RGB{R: 0x61, G: 0xaf, B: 0xef}

	block := ColourBlock(c, 4)
	if !strings.HasPrefix(block, "\033[48;2;97;175;239m") || !strings.HasSuffix(block, ansiReset) {
		t.Errorf("unexpected block escape framing: %q", block)
	}

	line := PaletteLine(c, "base0D")
	if !strings.Contains(line, "#61afef") || !strings.Contains(line, "base0D") {
		t.Errorf("palette line missing label or hex: %q", line)
	}

	plain := PlainLine(c, "")
	if plain != "#61afef" {
		t.Errorf("PlainLine without label = %q, want bare hex", plain)
	}
}

func TestWritePalettePlain(t *testing.T) {
	var buf bytes.Buffer
	colours := []colour.RGB{{R: 255}, {G: 255}}
	WritePalette(&buf, colours, []string{"red"}, false)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "red") || !strings.Contains(lines[0], "#ff0000") {
		t.Errorf("first line = %q", lines[0])
	}
	if lines[1] != "#00ff00" {
		t.Errorf("second line = %q, want bare hex", lines[1])
	}
}

func TestSchemeStyle(t *testing.T) {
	s := testScheme(t)
	style, err := SchemeStyle(s)
	if err != nil {
		t.Fatalf("SchemeStyle error: %v", err)
	}
	if style == nil {
		t.Fatal("nil style")
	}
	if style.Name != s.Name {
		t.Errorf("style name = %q, want %q", style.Name, s.Name)
	}
}

func TestHighlightCode(t *testing.T) {
	s := testScheme(t)
	var buf bytes.Buffer

	source := "package main\n\nfunc main() {}\n"
	if err := HighlightCode(&buf, source, "go", s); err != nil {
		t.Fatalf("HighlightCode error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "package") || !strings.Contains(out, "main") {
		t.Errorf("highlighted output lost source text: %q", out)
	}

	// Unknown languages fall back instead of failing.
	buf.Reset()
	if err := HighlightCode(&buf, "hello", "no-such-language", s); err != nil {
		t.Fatalf("fallback highlight error: %v", err)
	}
}
