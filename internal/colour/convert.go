package colour

import "math"

// D65 reference white.
const (
	d65X = 0.95047
	d65Y = 1.00000
	d65Z = 1.08883
)

const (
	labEpsilon = 216.0 / 24389.0
	labKappa   = 24389.0 / 27.0
)

// Standard sRGB <-> XYZ matrices (D65 white point).
var rgbToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

var xyzToRGB = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// srgbToLinear linearises a single gamma-encoded sRGB component.
// Piecewise transfer function per the sRGB standard (2.4 exponent).
func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearToSRGB gamma-encodes a single linear component.
func linearToSRGB(c float64) float64 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// Linear converts an 8-bit sRGB colour to linear RGB.
func (c RGB) Linear() Linear {
	return Linear{
		R: srgbToLinear(float64(c.R) / 255.0),
		G: srgbToLinear(float64(c.G) / 255.0),
		B: srgbToLinear(float64(c.B) / 255.0),
	}
}

// RGB converts a linear colour back to 8-bit sRGB. Components are clamped
// into gamut before quantisation, so out-of-range linear values project onto
// the nearest representable colour rather than wrapping.
func (c Linear) RGB() RGB {
	return RGB{
		R: uint8(math.Round(clamp01(linearToSRGB(clamp01(c.R))) * 255.0)),
		G: uint8(math.Round(clamp01(linearToSRGB(clamp01(c.G))) * 255.0)),
		B: uint8(math.Round(clamp01(linearToSRGB(clamp01(c.B))) * 255.0)),
	}
}

// XYZ converts linear RGB to CIE XYZ.
func (c Linear) XYZ() XYZ {
	return XYZ{
		X: rgbToXYZ[0][0]*c.R + rgbToXYZ[0][1]*c.G + rgbToXYZ[0][2]*c.B,
		Y: rgbToXYZ[1][0]*c.R + rgbToXYZ[1][1]*c.G + rgbToXYZ[1][2]*c.B,
		Z: rgbToXYZ[2][0]*c.R + rgbToXYZ[2][1]*c.G + rgbToXYZ[2][2]*c.B,
	}
}

// Linear converts CIE XYZ to linear RGB. The result is not clamped here;
// gamut projection happens on the way to 8-bit sRGB.
func (c XYZ) Linear() Linear {
	return Linear{
		R: xyzToRGB[0][0]*c.X + xyzToRGB[0][1]*c.Y + xyzToRGB[0][2]*c.Z,
		G: xyzToRGB[1][0]*c.X + xyzToRGB[1][1]*c.Y + xyzToRGB[1][2]*c.Z,
		B: xyzToRGB[2][0]*c.X + xyzToRGB[2][1]*c.Y + xyzToRGB[2][2]*c.Z,
	}
}

func labF(t float64) float64 {
	if t > labEpsilon {
		return math.Cbrt(t)
	}
	return (labKappa*t + 16.0) / 116.0
}

func labFInv(t float64) float64 {
	t3 := t * t * t
	if t3 > labEpsilon {
		return t3
	}
	return (116.0*t - 16.0) / labKappa
}

// Lab converts CIE XYZ to CIE Lab with the D65 white reference.
func (c XYZ) Lab() Lab {
	fx := labF(c.X / d65X)
	fy := labF(c.Y / d65Y)
	fz := labF(c.Z / d65Z)

	return Lab{
		L: 116.0*fy - 16.0,
		A: 500.0 * (fx - fy),
		B: 200.0 * (fy - fz),
	}
}

// XYZ converts CIE Lab back to XYZ.
func (c Lab) XYZ() XYZ {
	fy := (c.L + 16.0) / 116.0
	fx := c.A/500.0 + fy
	fz := fy - c.B/200.0

	return XYZ{
		X: d65X * labFInv(fx),
		Y: d65Y * labFInv(fy),
		Z: d65Z * labFInv(fz),
	}
}

// LCh converts Lab to its cylindrical form.
func (c Lab) LCh() LCh {
	return NewLCh(
		c.L,
		math.Hypot(c.A, c.B),
		math.Atan2(c.B, c.A)*180.0/math.Pi,
	)
}

// Lab converts LCh back to rectangular Lab.
func (c LCh) Lab() Lab {
	rad := c.H * math.Pi / 180.0
	return Lab{L: c.L, A: c.C * math.Cos(rad), B: c.C * math.Sin(rad)}
}

// Lab converts an 8-bit sRGB colour to CIE Lab.
func (c RGB) Lab() Lab {
	return c.Linear().XYZ().Lab()
}

// RGB converts a Lab colour to 8-bit sRGB, projecting out-of-gamut values
// into [0, 255] per channel.
func (c Lab) RGB() RGB {
	return c.XYZ().Linear().RGB()
}

// LCh converts an 8-bit sRGB colour to LCh.
func (c RGB) LCh() LCh {
	return c.Lab().LCh()
}

// RGB converts an LCh colour to 8-bit sRGB with gamut projection.
func (c LCh) RGB() RGB {
	return c.Lab().RGB()
}

// HSL converts an 8-bit sRGB colour to HSL.
func (c RGB) HSL() HSL {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	l := (maxVal + minVal) / 2.0
	if delta < 1e-10 {
		return HSL{H: 0, S: 0, L: l}
	}

	var s float64
	if l < 0.5 {
		s = delta / (maxVal + minVal)
	} else {
		s = delta / (2.0 - maxVal - minVal)
	}

	var h float64
	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}

	return NewHSL(h*60.0, s, l)
}

// RGB converts an HSL colour to 8-bit sRGB.
func (c HSL) RGB() RGB {
	if c.S < 1e-10 {
		v := uint8(math.Round(c.L * 255.0))
		return RGB{R: v, G: v, B: v}
	}

	chroma := (1.0 - math.Abs(2.0*c.L-1.0)) * c.S
	hPrime := c.H / 60.0
	x := chroma * (1.0 - math.Abs(math.Mod(hPrime, 2.0)-1.0))

	var r1, g1, b1 float64
	switch int(hPrime) {
	case 0:
		r1, g1, b1 = chroma, x, 0
	case 1:
		r1, g1, b1 = x, chroma, 0
	case 2:
		r1, g1, b1 = 0, chroma, x
	case 3:
		r1, g1, b1 = 0, x, chroma
	case 4:
		r1, g1, b1 = x, 0, chroma
	default:
		r1, g1, b1 = chroma, 0, x
	}

	m := c.L - chroma/2.0
	return RGB{
		R: uint8(math.Round(clamp01(r1+m) * 255.0)),
		G: uint8(math.Round(clamp01(g1+m) * 255.0)),
		B: uint8(math.Round(clamp01(b1+m) * 255.0)),
	}
}
