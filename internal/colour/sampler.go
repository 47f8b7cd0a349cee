package colour

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Strategy selects a random palette sampling method.
type Strategy int

const (
	StrategyGolden Strategy = iota
	StrategyPoisson
	StrategyUniform
)

var strategyNames = map[Strategy]string{
	StrategyGolden:  "golden",
	StrategyPoisson: "poisson",
	StrategyUniform: "uniform",
}

// String returns the CLI name of the strategy.
func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStrategy maps a CLI name to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for k, name := range strategyNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown sampling method %q (golden, poisson, uniform)", s)
}

// Theme biases sampled saturation/lightness toward colours that read well
// on a dark or light background.
type Theme int

const (
	ThemeNone Theme = iota
	ThemeDark
	ThemeLight
)

// ParseTheme maps a CLI name to a Theme. The empty string means no bias.
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "":
		return ThemeNone, nil
	case "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	}
	return 0, fmt.Errorf("unknown theme %q (dark, light)", s)
}

type floatRange struct {
	lo, hi float64
}

func (r floatRange) at(t float64) float64 {
	return r.lo + t*(r.hi-r.lo)
}

// themeRanges returns the saturation and lightness sampling windows for a
// theme. Dark themes want lighter accents, light themes darker ones.
func themeRanges(t Theme) (sat, light floatRange) {
	switch t {
	case ThemeDark:
		return floatRange{0.4, 0.9}, floatRange{0.5, 0.75}
	case ThemeLight:
		return floatRange{0.4, 0.9}, floatRange{0.25, 0.5}
	default:
		return floatRange{0.2, 0.9}, floatRange{0.25, 0.75}
	}
}

// SamplerConfig configures a single Sample call. The zero value of optional
// fields disables the corresponding filter.
type SamplerConfig struct {
	Strategy Strategy
	Count    int

	// Seed makes the run reproducible. Golden palettes are a pure function
	// of (Seed, Count, Theme); poisson and uniform seed a PCG generator.
	Seed uint64

	Theme Theme

	// MinDeltaE is the pairwise CIEDE2000 floor. Zero disables it: poisson
	// degenerates to plain random sampling, and callers wanting the usual
	// radius pass DefaultPoissonRadius explicitly. Golden filters its
	// output and may return fewer than Count colours; poisson and uniform
	// reject candidates instead and fail when the retry budget runs out.
	MinDeltaE float64

	// MinContrast, when > 0, rejects candidates below this WCAG contrast
	// ratio against Background.
	MinContrast float64
	Background  RGB
}

// DefaultPoissonRadius is the customary CIEDE2000 rejection radius for
// poisson sampling when the caller has no preference.
const DefaultPoissonRadius = 10.0

// Retry budget for rejection sampling, per requested colour.
const retryBudgetPerColour = 200

// Sample generates Count colours with the configured strategy.
func Sample(cfg SamplerConfig) ([]RGB, error) {
	if cfg.Count <= 0 {
		return nil, nil
	}
	switch cfg.Strategy {
	case StrategyGolden:
		return goldenPalette(cfg), nil
	case StrategyPoisson:
		return rejectionPalette(cfg, true)
	case StrategyUniform:
		return rejectionPalette(cfg, false)
	}
	return nil, fmt.Errorf("unknown sampling strategy %d", cfg.Strategy)
}

// Golden ratio conjugate and its powers. Each HSL axis steps by its own
// irrational increment so the sequences stay decorrelated.
const (
	goldenConj  = 0.6180339887498949
	goldenConj2 = goldenConj * goldenConj
	goldenConj3 = goldenConj2 * goldenConj
)

// goldenPalette steps the hue wheel by the golden ratio conjugate, picking
// saturation and lightness from secondary golden sequences inside the theme
// window. Fully deterministic for a given seed.
func goldenPalette(cfg SamplerConfig) []RGB {
	sat, light := themeRanges(cfg.Theme)
	start := frac(float64(cfg.Seed) * goldenConj)

	out := make([]RGB, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		fi := float64(i)
		h := frac(start+fi*goldenConj) * 360.0
		s := sat.at(frac(start + fi*goldenConj2))
		l := light.at(frac(start + fi*goldenConj3))
		out = append(out, NewHSL(h, s, l).RGB())
	}

	if cfg.MinDeltaE > 0 {
		out = FilterMinDeltaE(out, cfg.MinDeltaE)
	}
	return out
}

// rejectionPalette draws random HSL candidates and keeps those passing the
// active filters. Poisson candidates come from the theme window; uniform
// draws over the full saturation/lightness range. A positive MinDeltaE
// enforces a pairwise CIEDE2000 radius; zero means no radius at all, so
// poisson degenerates to plain random sampling. Exhausting the retry budget
// before reaching Count returns an InfeasibleSamplingError.
func rejectionPalette(cfg SamplerConfig, poisson bool) ([]RGB, error) {
	rng := newRNG(cfg.Seed)
	sat, light := floatRange{0, 1}, floatRange{0, 1}
	if poisson {
		sat, light = themeRanges(cfg.Theme)
	}

	minDeltaE := cfg.MinDeltaE

	budget := retryBudgetPerColour * cfg.Count
	out := make([]RGB, 0, cfg.Count)
	labs := make([]Lab, 0, cfg.Count)

	attempts := 0
	for len(out) < cfg.Count {
		if attempts >= budget {
			return nil, &InfeasibleSamplingError{
				Requested: cfg.Count,
				Produced:  len(out),
				MinDeltaE: minDeltaE,
				Attempts:  attempts,
			}
		}
		attempts++

		candidate := randomHSL(rng, sat, light).RGB()
		if cfg.MinContrast > 0 && ContrastRatio(candidate, cfg.Background) < cfg.MinContrast {
			continue
		}

		lab := candidate.Lab()
		if minDeltaE > 0 && tooClose(labs, lab, minDeltaE) {
			continue
		}

		out = append(out, candidate)
		labs = append(labs, lab)
	}
	return out, nil
}

// FilterMinDeltaE greedily drops colours closer than minDeltaE (CIEDE2000)
// to any earlier kept colour. Order is preserved.
func FilterMinDeltaE(colours []RGB, minDeltaE float64) []RGB {
	if minDeltaE <= 0 || len(colours) <= 1 {
		return colours
	}
	kept := make([]RGB, 0, len(colours))
	labs := make([]Lab, 0, len(colours))
	for _, c := range colours {
		lab := c.Lab()
		if tooClose(labs, lab, minDeltaE) {
			continue
		}
		kept = append(kept, c)
		labs = append(labs, lab)
	}
	return kept
}

func tooClose(labs []Lab, candidate Lab, minDeltaE float64) bool {
	for _, lab := range labs {
		if DeltaE2000(lab, candidate) < minDeltaE {
			return true
		}
	}
	return false
}

func randomHSL(rng *rand.Rand, sat, light floatRange) HSL {
	return NewHSL(
		rng.Float64()*360.0,
		sat.at(rng.Float64()),
		light.at(rng.Float64()),
	)
}

// newRNG builds a seeded PCG generator. The second word is scrambled so
// seed 0 still produces a useful stream.
func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func frac(x float64) float64 {
	return x - math.Floor(x)
}
