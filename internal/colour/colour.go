// Package colour implements the perceptual colour engine: colour space
// conversions, perceptual difference metrics, palette sampling strategies,
// harmony generation, and the supporting value types.
package colour

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is an 8-bit sRGB colour. It is the canonical representation used
// throughout the engine; Lab/LCh/HSL views are derived on demand.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a hex colour string in the form "#RRGGBB" or "RRGGBB".
func ParseHex(hex string) (RGB, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(trimmed) != 6 {
		return RGB{}, &InvalidColourError{Input: hex}
	}

	v, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return RGB{}, &InvalidColourError{Input: hex}
	}

	return RGB{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}, nil
}

// Linear is a linear-light RGB colour with components in [0, 1].
// Blending and tint/shade operations happen in this space.
type Linear struct {
	R, G, B float64
}

// NewLinear creates a linear RGB colour, clamping components to [0, 1].
func NewLinear(r, g, b float64) Linear {
	return Linear{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// XYZ is a CIE XYZ colour relative to the D65 white point.
type XYZ struct {
	X, Y, Z float64
}

// Lab is a CIE Lab colour. L is nominally [0, 100]; A and B are unbounded.
// Values are deliberately not clamped so out-of-gamut intermediates survive
// until they are projected back to sRGB.
type Lab struct {
	L, A, B float64
}

// LCh is the cylindrical form of Lab. H is a hue angle in degrees [0, 360).
type LCh struct {
	L, C, H float64
}

// NewLCh creates an LCh colour with the hue wrapped to [0, 360).
func NewLCh(l, c, h float64) LCh {
	return LCh{L: l, C: c, H: WrapDegrees(h)}
}

// HSL is a cylindrical sRGB colour: hue in degrees [0, 360), saturation and
// lightness in [0, 1]. Harmony rotation and the neutral ramp operate here.
type HSL struct {
	H, S, L float64
}

// NewHSL creates an HSL colour with the hue wrapped and S/L clamped.
func NewHSL(h, s, l float64) HSL {
	return HSL{H: WrapDegrees(h), S: clamp01(s), L: clamp01(l)}
}

// WrapDegrees wraps an angle in degrees to [0, 360).
func WrapDegrees(h float64) float64 {
	h = math.Mod(h, 360.0)
	if h < 0 {
		h += 360.0
	}
	return h
}

// HueDistance returns the circular distance between two hues, in [0, 180].
func HueDistance(h1, h2 float64) float64 {
	diff := math.Abs(h1 - h2)
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}

// clamp01 clamps x to [0, 1]. NaN clamps to 0.
func clamp01(x float64) float64 {
	switch {
	case x < 0 || math.IsNaN(x):
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
