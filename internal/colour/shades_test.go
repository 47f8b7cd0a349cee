package colour

import (
	"math"
	"testing"
)

func TestMixEndpoints(t *testing.T) {
	a := RGB{200, 40, 90}
	b := RGB{10, 220, 30}

	if got := Mix(a, b, 0); got != a {
		t.Errorf("Mix(a, b, 0) = %v, want %v", got, a)
	}
	if got := Mix(a, b, 1); got != b {
		t.Errorf("Mix(a, b, 1) = %v, want %v", got, b)
	}
	if got := Mix(a, b, -2); got != a {
		t.Errorf("Mix clamps negative factor, got %v", got)
	}
}

func TestTintShadeTone(t *testing.T) {
	c := RGB{0x61, 0xaf, 0xef}
	lum := c.Luminance()

	if got := Tint(c, 0.3); got.Luminance() <= lum {
		t.Errorf("Tint did not lighten: %v", got)
	}
	if got := Shade(c, 0.3); got.Luminance() >= lum {
		t.Errorf("Shade did not darken: %v", got)
	}

	// Tone pulls saturation down without a matching lightness swing.
	toned := Tone(c, 0.5)
	if toned.HSL().S >= c.HSL().S {
		t.Errorf("Tone did not desaturate: %v vs %v", toned.HSL().S, c.HSL().S)
	}

	if got := Tint(c, 1); got != (RGB{255, 255, 255}) {
		t.Errorf("full tint = %v, want white", got)
	}
	if got := Shade(c, 1); got != (RGB{}) {
		t.Errorf("full shade = %v, want black", got)
	}
}

func TestLightenDarken(t *testing.T) {
	c := NewHSL(120, 0.6, 0.5).RGB()

	lighter := Lighten(c, 0.2)
	if got := lighter.HSL().L; math.Abs(got-0.7) > 0.01 {
		t.Errorf("Lighten lightness = %v, want ~0.7", got)
	}

	darker := Darken(c, 0.2)
	if got := darker.HSL().L; math.Abs(got-0.3) > 0.01 {
		t.Errorf("Darken lightness = %v, want ~0.3", got)
	}

	// Clamped at the extremes.
	if got := Lighten(c, 2.0); got != (RGB{255, 255, 255}) {
		t.Errorf("Lighten past 1 = %v, want white", got)
	}
	if got := Darken(c, 2.0); got != (RGB{}) {
		t.Errorf("Darken past 0 = %v, want black", got)
	}
}

func TestDesaturateSaturate(t *testing.T) {
	c := NewHSL(200, 0.8, 0.5).RGB()

	if got := Desaturate(c, 0.3).HSL().S; math.Abs(got-0.5) > 0.02 {
		t.Errorf("Desaturate saturation = %v, want ~0.5", got)
	}
	if got := Saturate(c, 0.3).HSL().S; math.Abs(got-1.0) > 0.02 {
		t.Errorf("Saturate saturation = %v, want ~1.0", got)
	}

	grey := Desaturate(c, 1.0)
	if grey.HSL().S > 0.01 {
		t.Errorf("full desaturation left saturation %v", grey.HSL().S)
	}
}
