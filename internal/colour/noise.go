package colour

import (
	"math"
	"math/bits"
	"math/rand/v2"
)

// NoiseSource is a 1D noise function returning values in [0, 1].
type NoiseSource interface {
	Noise(x float64) float64
}

// HashNoise is seedable hash-based gradient noise. Values at integer lattice
// points come from an integer hash; in between they are smoothstep-blended.
type HashNoise struct {
	seed uint32
}

// NewHashNoise creates a noise source with the given seed.
func NewHashNoise(seed uint32) HashNoise {
	return HashNoise{seed: seed}
}

// DefaultHashNoise returns the default-seeded noise source.
func DefaultHashNoise() HashNoise {
	return HashNoise{seed: 0xdecafbad}
}

// Noise returns the noise value at x, in [0, 1].
func (n HashNoise) Noise(x float64) float64 {
	xi := math.Floor(x)
	xf := x - xi
	v1 := hashUnit(int32(xi), n.seed)
	v2 := hashUnit(int32(xi)+1, n.seed)
	smooth := xf * xf * (3.0 - 2.0*xf)
	return v1*(1.0-smooth) + v2*smooth
}

func hashUnit(x int32, seed uint32) float64 {
	v := uint32(x)
	v *= 0x45d9f3b
	v = bits.RotateLeft32(v, 7) ^ seed
	v *= 0x45d9f3b
	v ^= v >> 16
	return float64(v&0xffff) / float64(0xffff)
}

// NoisePalette modulates an LCh base colour with the noise source, producing
// n colours. Spread scales how far hue (spread*360), chroma (spread*50) and
// lightness (spread*30) may wander; freq sets how fast the noise varies
// across the palette.
func NoisePalette(n int, base LCh, spread, freq float64, src NoiseSource) []RGB {
	if n <= 0 {
		return nil
	}

	out := make([]RGB, 0, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		hueNoise := src.Noise(freq*t) - 0.5
		chromaNoise := src.Noise(freq*t+37.0) - 0.5
		lightNoise := src.Noise(freq*t+73.0) - 0.5

		lch := LCh{
			L: clampLabL(base.L + lightNoise*spread*30.0),
			C: math.Max(base.C+chromaNoise*spread*50.0, 0),
			H: WrapDegrees(base.H + hueNoise*spread*360.0),
		}
		out = append(out, lch.RGB())
	}
	return out
}

// RandomWalkLCh walks from the start colour with Gaussian steps per channel,
// returning the visited colours. Lightness is clamped to [0, 100], chroma
// floors at 0 and hue wraps.
func RandomWalkLCh(rng *rand.Rand, start LCh, steps int, sigmaL, sigmaC, sigmaH float64) []LCh {
	out := make([]LCh, 0, steps)
	current := start
	for i := 0; i < steps; i++ {
		current.L = clampLabL(current.L + rng.NormFloat64()*sigmaL)
		current.C = math.Max(current.C+rng.NormFloat64()*sigmaC, 0)
		current.H = WrapDegrees(current.H + rng.NormFloat64()*sigmaH)
		out = append(out, current)
	}
	return out
}

func clampLabL(l float64) float64 {
	return math.Min(math.Max(l, 0), 100)
}
