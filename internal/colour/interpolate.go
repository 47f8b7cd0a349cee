package colour

// LerpRGB interpolates between two colours in linear RGB.
func LerpRGB(a, b RGB, t float64) RGB {
	return Mix(a, b, t)
}

// LerpLab interpolates between two colours in Lab. Perceptually smoother
// than RGB interpolation but can drift through low-chroma greys.
func LerpLab(a, b RGB, t float64) RGB {
	t = clamp01(t)
	la := a.Lab()
	lb := b.Lab()
	return Lab{
		L: la.L + (lb.L-la.L)*t,
		A: la.A + (lb.A-la.A)*t,
		B: la.B + (lb.B-la.B)*t,
	}.RGB()
}

// LerpLCh interpolates between two colours in LCh, taking the shortest
// path around the hue circle. Preserves chroma through the midpoint.
func LerpLCh(a, b RGB, t float64) RGB {
	t = clamp01(t)
	la := a.LCh()
	lb := b.LCh()

	dh := lb.H - la.H
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}

	return NewLCh(
		la.L+(lb.L-la.L)*t,
		la.C+(lb.C-la.C)*t,
		la.H+dh*t,
	).RGB()
}

// GradientLab returns steps colours evenly spaced in Lab from a to b,
// endpoints included. Fewer than two steps yields an empty slice.
func GradientLab(a, b RGB, steps int) []RGB {
	return gradient(a, b, steps, LerpLab)
}

// GradientLCh returns steps colours evenly spaced in LCh from a to b,
// endpoints included. Fewer than two steps yields an empty slice.
func GradientLCh(a, b RGB, steps int) []RGB {
	return gradient(a, b, steps, LerpLCh)
}

// GradientRGB returns steps colours evenly spaced in linear RGB from a to b.
func GradientRGB(a, b RGB, steps int) []RGB {
	return gradient(a, b, steps, LerpRGB)
}

func gradient(a, b RGB, steps int, lerp func(RGB, RGB, float64) RGB) []RGB {
	if steps < 2 {
		return nil
	}
	out := make([]RGB, steps)
	for i := range out {
		out[i] = lerp(a, b, float64(i)/float64(steps-1))
	}
	return out
}
