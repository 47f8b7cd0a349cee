package colour

import (
	"testing"
)

func TestHashNoiseUnitInterval(t *testing.T) {
	src := NewHashNoise(42)
	for i := 0; i < 200; i++ {
		x := float64(i) * 0.13
		v := src.Noise(x)
		if v < 0 || v > 1 {
			t.Fatalf("Noise(%v) = %v outside [0, 1]", x, v)
		}
	}
}

func TestHashNoiseDeterministic(t *testing.T) {
	a := NewHashNoise(7)
	b := NewHashNoise(7)
	c := NewHashNoise(8)

	var differs bool
	for i := 0; i < 50; i++ {
		x := float64(i) * 0.37
		if a.Noise(x) != b.Noise(x) {
			t.Fatalf("same seed disagrees at x=%v", x)
		}
		if a.Noise(x) != c.Noise(x) {
			differs = true
		}
	}
	if !differs {
		t.Error("different seeds produced identical noise")
	}
}

func TestHashNoiseInterpolatesLattice(t *testing.T) {
	src := DefaultHashNoise()

	// At integer points the smoothstep blend collapses to the lattice hash,
	// so approaching an integer from below converges to its value.
	at := src.Noise(5.0)
	near := src.Noise(4.999)
	if diff := at - near; diff > 0.05 || diff < -0.05 {
		t.Errorf("discontinuity at lattice point: %v vs %v", at, near)
	}
}

func TestNoisePalette(t *testing.T) {
	base := RGB{0x61, 0xaf, 0xef}.LCh()
	src := NewHashNoise(3)

	palette := NoisePalette(8, base, 0.2, 3.0, src)
	if len(palette) != 8 {
		t.Fatalf("palette size = %d, want 8", len(palette))
	}

	again := NoisePalette(8, base, 0.2, 3.0, NewHashNoise(3))
	for i := range palette {
		if palette[i] != again[i] {
			t.Errorf("colour %d differs between identical runs", i)
		}
	}

	if got := NoisePalette(0, base, 0.2, 3.0, src); got != nil {
		t.Errorf("zero count should return nil, got %v", got)
	}
}

func TestNoisePaletteZeroSpreadStaysOnBase(t *testing.T) {
	base := RGB{0x98, 0xc3, 0x79}
	palette := NoisePalette(4, base.LCh(), 0, 3.0, DefaultHashNoise())
	for i, c := range palette {
		if absDiff(c.R, base.R) > 1 || absDiff(c.G, base.G) > 1 || absDiff(c.B, base.B) > 1 {
			t.Errorf("colour %d = %v, want ~%v with zero spread", i, c, base)
		}
	}
}

func TestRandomWalkLCh(t *testing.T) {
	start := LCh{L: 50, C: 30, H: 120}
	rng := newRNG(11)

	walk := RandomWalkLCh(rng, start, 20, 5, 5, 15)
	if len(walk) != 20 {
		t.Fatalf("walk length = %d, want 20", len(walk))
	}

	for i, c := range walk {
		if c.L < 0 || c.L > 100 {
			t.Errorf("step %d lightness %v outside [0, 100]", i, c.L)
		}
		if c.C < 0 {
			t.Errorf("step %d chroma %v is negative", i, c.C)
		}
		if c.H < 0 || c.H >= 360 {
			t.Errorf("step %d hue %v outside [0, 360)", i, c.H)
		}
	}
}
