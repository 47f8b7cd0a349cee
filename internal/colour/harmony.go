package colour

import "fmt"

// HarmonyKind selects a classical hue-wheel relationship.
type HarmonyKind int

const (
	Complementary HarmonyKind = iota
	SplitComplementary
	Analogous
	Triadic
	Tetradic
	Square
)

var harmonyOffsets = map[HarmonyKind][]float64{
	Complementary:      {0, 180},
	SplitComplementary: {0, 150, 210},
	Analogous:          {0, 30, 330},
	Triadic:            {0, 120, 240},
	Tetradic:           {0, 60, 180, 240},
	Square:             {0, 90, 180, 270},
}

var harmonyNames = map[HarmonyKind]string{
	Complementary:      "complementary",
	SplitComplementary: "split-complementary",
	Analogous:          "analogous",
	Triadic:            "triadic",
	Tetradic:           "tetradic",
	Square:             "square",
}

// String returns the CLI name of the harmony kind.
func (k HarmonyKind) String() string {
	if name, ok := harmonyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Offsets returns the hue offsets, in degrees, that define the harmony.
// The first offset is always 0 (the base colour itself).
func (k HarmonyKind) Offsets() []float64 {
	offs := harmonyOffsets[k]
	out := make([]float64, len(offs))
	copy(out, offs)
	return out
}

// ParseHarmony maps a CLI name to a HarmonyKind.
func ParseHarmony(s string) (HarmonyKind, error) {
	for k, name := range harmonyNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown harmony %q (complementary, split-complementary, analogous, triadic, tetradic, square)", s)
}

// Harmony rotates the base colour's hue by the kind's offsets, preserving
// saturation and lightness. The base colour is always first.
func Harmony(base RGB, kind HarmonyKind) []RGB {
	h := base.HSL()
	offs := kind.Offsets()
	out := make([]RGB, len(offs))
	for i, off := range offs {
		if off == 0 {
			out[i] = base
			continue
		}
		out[i] = NewHSL(h.H+off, h.S, h.L).RGB()
	}
	return out
}

// variationStep is the tint/shade factor added per expansion round.
const variationStep = 0.08

// HarmonyPalette expands a harmony to exactly count colours. When count
// exceeds the harmony size, extra colours are alternating tints and shades
// of the harmony colours, nearest variations first. When count is smaller,
// the harmony is truncated.
func HarmonyPalette(base RGB, kind HarmonyKind, count int) []RGB {
	if count <= 0 {
		return nil
	}

	bases := Harmony(base, kind)
	if count <= len(bases) {
		return bases[:count]
	}

	out := make([]RGB, 0, count)
	out = append(out, bases...)
	for round := 1; len(out) < count; round++ {
		factor := variationStep * float64(round)
		if factor > 1 {
			factor = 1
		}
		for _, c := range bases {
			if len(out) >= count {
				break
			}
			out = append(out, Tint(c, factor))
			if len(out) >= count {
				break
			}
			out = append(out, Shade(c, factor))
		}
		if factor >= 1 {
			break
		}
	}
	return out[:count]
}

// Contrast enforcement budget: lightness moves in steps of 0.05 for at
// most 20 iterations before giving up.
const (
	contrastStep     = 0.05
	contrastMaxSteps = 20
)

// EnsureContrast nudges the colour along the HSL lightness axis, away from
// the background's luminance, until the contrast ratio reaches minRatio.
// Hue and saturation are preserved. Returns an UnsatisfiableContrastError
// carrying the best candidate's ratio when the budget runs out.
func EnsureContrast(c, background RGB, minRatio float64) (RGB, error) {
	if ContrastRatio(c, background) >= minRatio {
		return c, nil
	}

	dir := 1.0
	if background.Luminance() > 0.5 {
		dir = -1.0
	}

	h := c.HSL()
	best := c
	bestRatio := ContrastRatio(c, background)
	for i := 1; i <= contrastMaxSteps; i++ {
		candidate := NewHSL(h.H, h.S, h.L+dir*contrastStep*float64(i)).RGB()
		ratio := ContrastRatio(candidate, background)
		if ratio >= minRatio {
			return candidate, nil
		}
		if ratio > bestRatio {
			bestRatio = ratio
			best = candidate
		}
	}

	return best, &UnsatisfiableContrastError{
		Colour:     c,
		Background: background,
		MinRatio:   minRatio,
		BestRatio:  bestRatio,
	}
}

// HarmonyPaletteContrast expands a harmony to count colours and enforces a
// contrast floor against the background. The first colour that cannot be
// corrected aborts the palette.
func HarmonyPaletteContrast(base RGB, kind HarmonyKind, count int, background RGB, minRatio float64) ([]RGB, error) {
	palette := HarmonyPalette(base, kind, count)
	for i, c := range palette {
		adjusted, err := EnsureContrast(c, background, minRatio)
		if err != nil {
			return nil, err
		}
		palette[i] = adjusted
	}
	return palette, nil
}
