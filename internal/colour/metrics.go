package colour

import "math"

// WCAG 2.1 contrast ratio thresholds.
const (
	ContrastAA  = 4.5
	ContrastAAA = 7.0
)

// Luminance returns the WCAG 2.1 relative luminance of the colour, in [0, 1].
func (c RGB) Luminance() float64 {
	lin := c.Linear()
	return 0.2126*lin.R + 0.7152*lin.G + 0.0722*lin.B
}

// ContrastRatio returns the WCAG 2.1 contrast ratio between two colours.
// The result is in [1, 21] and symmetric in its arguments.
func ContrastRatio(a, b RGB) float64 {
	la := a.Luminance()
	lb := b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// MeetsAA reports whether the pair meets the WCAG AA contrast threshold
// for normal text.
func MeetsAA(a, b RGB) bool {
	return ContrastRatio(a, b) >= ContrastAA
}

// MeetsAAA reports whether the pair meets the WCAG AAA contrast threshold
// for normal text.
func MeetsAAA(a, b RGB) bool {
	return ContrastRatio(a, b) >= ContrastAAA
}

// ChooseForeground returns the first candidate whose contrast against the
// background meets minRatio. If none qualifies, it returns the candidate
// with the highest contrast and false.
func ChooseForeground(background RGB, candidates []RGB, minRatio float64) (RGB, bool) {
	var best RGB
	bestRatio := -1.0
	for _, c := range candidates {
		ratio := ContrastRatio(c, background)
		if ratio >= minRatio {
			return c, true
		}
		if ratio > bestRatio {
			bestRatio = ratio
			best = c
		}
	}
	return best, false
}

// DeltaE76 returns the CIE76 colour difference, the Euclidean distance
// in Lab.
func DeltaE76(a, b Lab) float64 {
	dl := a.L - b.L
	da := a.A - b.A
	db := a.B - b.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// DeltaE2000 returns the CIEDE2000 colour difference between two Lab
// colours. Implements the full formula including the rotation term, with
// unit weighting factors.
func DeltaE2000(c1, c2 Lab) float64 {
	const deg2rad = math.Pi / 180.0

	cab1 := math.Hypot(c1.A, c1.B)
	cab2 := math.Hypot(c2.A, c2.B)
	cabMean := (cab1 + cab2) / 2.0

	cab7 := math.Pow(cabMean, 7)
	g := 0.5 * (1.0 - math.Sqrt(cab7/(cab7+pow25to7)))

	a1p := (1.0 + g) * c1.A
	a2p := (1.0 + g) * c2.A
	c1p := math.Hypot(a1p, c1.B)
	c2p := math.Hypot(a2p, c2.B)

	h1p := hueAngle(a1p, c1.B)
	h2p := hueAngle(a2p, c2.B)

	dLp := c2.L - c1.L
	dCp := c2p - c1p

	var dhp float64
	if c1p*c2p != 0 {
		dhp = h2p - h1p
		if dhp > 180 {
			dhp -= 360
		} else if dhp < -180 {
			dhp += 360
		}
	}
	dHp := 2.0 * math.Sqrt(c1p*c2p) * math.Sin(dhp/2.0*deg2rad)

	lpMean := (c1.L + c2.L) / 2.0
	cpMean := (c1p + c2p) / 2.0

	var hpMean float64
	switch {
	case c1p*c2p == 0:
		hpMean = h1p + h2p
	case math.Abs(h1p-h2p) <= 180:
		hpMean = (h1p + h2p) / 2.0
	case h1p+h2p < 360:
		hpMean = (h1p + h2p + 360) / 2.0
	default:
		hpMean = (h1p + h2p - 360) / 2.0
	}

	t := 1.0 -
		0.17*math.Cos((hpMean-30)*deg2rad) +
		0.24*math.Cos(2*hpMean*deg2rad) +
		0.32*math.Cos((3*hpMean+6)*deg2rad) -
		0.20*math.Cos((4*hpMean-63)*deg2rad)

	dTheta := 30.0 * math.Exp(-((hpMean-275)/25.0)*((hpMean-275)/25.0))
	cp7 := math.Pow(cpMean, 7)
	rc := 2.0 * math.Sqrt(cp7/(cp7+pow25to7))
	rt := -math.Sin(2*dTheta*deg2rad) * rc

	lm50 := (lpMean - 50) * (lpMean - 50)
	sl := 1.0 + 0.015*lm50/math.Sqrt(20.0+lm50)
	sc := 1.0 + 0.045*cpMean
	sh := 1.0 + 0.015*cpMean*t

	return math.Sqrt(
		(dLp/sl)*(dLp/sl) +
			(dCp/sc)*(dCp/sc) +
			(dHp/sh)*(dHp/sh) +
			rt*(dCp/sc)*(dHp/sh))
}

var pow25to7 = math.Pow(25, 7)

// hueAngle returns atan2(b, a) in degrees, wrapped to [0, 360).
// Zero chroma yields hue 0.
func hueAngle(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	h := math.Atan2(b, a) * 180.0 / math.Pi
	if h < 0 {
		h += 360
	}
	return h
}
