package scheme

import (
	"math"

	"github.com/jmylchreest/huegen/internal/colour"
)

// NeutralMaxSaturation is the hard ceiling on neutral slot saturation.
const NeutralMaxSaturation = 0.10

// DefaultNeutralDepth is used when no depth is requested.
const DefaultNeutralDepth = 1.0

const accentMinContrast = 4.5

// Neutral lightness curves for base00-base07. The classic and moody curves
// are blended by NeutralDepth; dark variants ascend, light variants descend.
var (
	darkNeutralClassic  = [8]float64{0.08, 0.13, 0.18, 0.30, 0.50, 0.90, 0.95, 0.98}
	darkNeutralMoody    = [8]float64{0.008, 0.019, 0.033, 0.060, 0.100, 0.279, 0.456, 0.631}
	lightNeutralClassic = [8]float64{0.98, 0.95, 0.90, 0.70, 0.50, 0.18, 0.13, 0.08}
	lightNeutralMoody   = [8]float64{0.95, 0.90, 0.80, 0.67, 0.54, 0.32, 0.20, 0.11}
)

// Semantic target hues for base08-base0F: red, orange, yellow, green, cyan,
// blue, magenta, brown.
var accentTargetHues = [8]float64{0, 30, 60, 120, 180, 220, 280, 20}

// Config drives scheme synthesis from a single accent colour.
type Config struct {
	System  System
	Name    string
	Author  string
	Variant Variant

	// Accent seeds the harmony that fills the accent slots.
	Accent  colour.RGB
	Harmony colour.HarmonyKind

	// NeutralDepth blends the neutral ramp between the classic curve (0)
	// and the moody curve (1). Clamped to [0, 1].
	NeutralDepth float64
}

// Generate synthesises a complete scheme from the config. Slots base00-base07
// form a desaturated lightness ramp, base08-base0F carry harmony-derived
// accents snapped to semantic hues, and Base24 adds two deeper backgrounds
// plus bright accent variants.
func Generate(cfg Config) *Scheme {
	neutrals := generateNeutrals(cfg.Variant, cfg.NeutralDepth)
	accents := generateAccents(cfg.Accent, cfg.Harmony, neutrals[0], cfg.Variant)

	colours := make([]colour.RGB, 0, cfg.System.Slots())
	colours = append(colours, neutrals[:]...)
	colours = append(colours, accents[:]...)
	if cfg.System == SystemBase24 {
		extended := generateExtended(neutrals, accents, cfg.Variant)
		colours = append(colours, extended[:]...)
	}

	return &Scheme{
		System:  cfg.System,
		Name:    cfg.Name,
		Author:  cfg.Author,
		Variant: cfg.Variant,
		Colours: colours,
	}
}

// generateNeutrals builds the base00-base07 ramp. Hue and saturation are
// fixed per variant (cool blue-grey for dark, warm for light); deeper ramps
// drop saturation toward pure grey.
func generateNeutrals(variant Variant, depth float64) [8]colour.RGB {
	depth = math.Min(math.Max(depth, 0), 1)

	var curve [8]float64
	var hue, sat float64
	switch variant {
	case VariantLight:
		curve = blendCurves(lightNeutralClassic, lightNeutralMoody, depth)
		hue = 40.0
		sat = NeutralMaxSaturation * 0.6 * (1.0 - depth)
	default:
		curve = blendCurves(darkNeutralClassic, darkNeutralMoody, depth)
		hue = 220.0
		sat = NeutralMaxSaturation * 0.8 * (1.0 - depth)
	}
	sat = math.Min(sat, NeutralMaxSaturation)

	var out [8]colour.RGB
	for i, l := range curve {
		out[i] = colour.NewHSL(hue, sat, l).RGB()
	}
	return out
}

func blendCurves(classic, moody [8]float64, depth float64) [8]float64 {
	var out [8]float64
	for i := range out {
		out[i] = classic[i] + (moody[i]-classic[i])*depth
	}
	return out
}

// generateAccents fills base08-base0F. Harmony colours claim the nearest
// unassigned semantic hue; remaining slots fall back to the target hue
// itself. Every accent is pushed to the contrast floor against base00.
// Slot base0F is muted (saturation 0.35) for its deprecated/special role.
func generateAccents(accent colour.RGB, harmony colour.HarmonyKind, background colour.RGB, variant Variant) [8]colour.RGB {
	targetLightness := 0.65
	targetSaturation := 0.70
	if variant == VariantLight {
		targetLightness = 0.45
		targetSaturation = 0.75
	}

	var out [8]colour.RGB
	var assigned [8]bool

	for _, c := range colour.Harmony(accent, harmony) {
		h := c.HSL()
		idx, ok := closestHueIndex(h.H, assigned)
		if !ok {
			break
		}
		sat := targetSaturation
		if idx == 7 {
			sat = 0.35
		}
		out[idx] = snapContrast(colour.NewHSL(h.H, sat, targetLightness), background, variant)
		assigned[idx] = true
	}

	for i, done := range assigned {
		if done {
			continue
		}
		sat := targetSaturation
		if i == 7 {
			sat = 0.35
		}
		out[i] = snapContrast(colour.NewHSL(accentTargetHues[i], sat, targetLightness), background, variant)
	}

	return out
}

func closestHueIndex(hue float64, assigned [8]bool) (int, bool) {
	best := -1
	bestDist := math.MaxFloat64
	for i, target := range accentTargetHues {
		if assigned[i] {
			continue
		}
		if d := colour.HueDistance(hue, target); d < bestDist {
			bestDist = d
			best = i
		}
	}
	return best, best >= 0
}

// snapContrast walks lightness toward the readable end of the variant until
// the accent clears the contrast floor or the budget runs out. Best effort:
// the validator reports anything still short.
func snapContrast(c colour.HSL, background colour.RGB, variant Variant) colour.RGB {
	current := c.RGB()
	for i := 0; i < 20 && colour.ContrastRatio(current, background) < accentMinContrast; i++ {
		if variant == VariantLight {
			c = colour.NewHSL(c.H, c.S, math.Max(c.L-0.05, 0.15))
		} else {
			c = colour.NewHSL(c.H, c.S, math.Min(c.L+0.05, 0.95))
		}
		current = c.RGB()
	}
	return current
}

// Bright accent pairing for Base24: slots base12-base17 brighten base08,
// base0A, base0B, base0C, base0D and base0E in that order.
var brightSources = [6]int{0, 2, 3, 4, 5, 6}

// generateExtended fills base10-base17. The first two slots are deeper
// (dark) or slightly raised (light) takes on base00; the remaining six are
// bright variants of the classic ANSI accents.
func generateExtended(neutrals, accents [8]colour.RGB, variant Variant) [8]colour.RGB {
	var out [8]colour.RGB

	bg := neutrals[0].HSL()
	if variant == VariantLight {
		out[0] = colour.NewHSL(bg.H, bg.S, bg.L+0.02).RGB()
		out[1] = colour.NewHSL(bg.H, bg.S, bg.L+0.03).RGB()
	} else {
		out[0] = colour.NewHSL(bg.H, bg.S, bg.L-0.03).RGB()
		out[1] = colour.NewHSL(bg.H, bg.S, bg.L-0.05).RGB()
	}

	for i, src := range brightSources {
		h := accents[src].HSL()
		var l float64
		if variant == VariantLight {
			l = math.Max(h.L-0.15, 0.30)
		} else {
			l = math.Min(h.L+0.15, 0.85)
		}
		out[i+2] = colour.NewHSL(h.H, h.S, l).RGB()
	}

	return out
}
