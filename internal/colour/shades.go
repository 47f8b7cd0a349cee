package colour

// Mix blends two colours in linear RGB. A factor of 0 returns a, 1 returns b.
func Mix(a, b RGB, factor float64) RGB {
	factor = clamp01(factor)
	la := a.Linear()
	lb := b.Linear()
	return Linear{
		R: la.R + (lb.R-la.R)*factor,
		G: la.G + (lb.G-la.G)*factor,
		B: la.B + (lb.B-la.B)*factor,
	}.RGB()
}

// Tint blends the colour toward white in linear RGB.
func Tint(c RGB, factor float64) RGB {
	return Mix(c, RGB{R: 255, G: 255, B: 255}, factor)
}

// Shade blends the colour toward black in linear RGB.
func Shade(c RGB, factor float64) RGB {
	return Mix(c, RGB{}, factor)
}

// Tone blends the colour toward mid grey in linear RGB, reducing chroma
// without a large lightness shift.
func Tone(c RGB, factor float64) RGB {
	return Mix(c, RGB{R: 128, G: 128, B: 128}, factor)
}

// Lighten raises HSL lightness by amount, clamped to [0, 1].
func Lighten(c RGB, amount float64) RGB {
	h := c.HSL()
	return NewHSL(h.H, h.S, h.L+amount).RGB()
}

// Darken lowers HSL lightness by amount, clamped to [0, 1].
func Darken(c RGB, amount float64) RGB {
	h := c.HSL()
	return NewHSL(h.H, h.S, h.L-amount).RGB()
}

// Desaturate lowers HSL saturation by amount, clamped to [0, 1].
func Desaturate(c RGB, amount float64) RGB {
	h := c.HSL()
	return NewHSL(h.H, h.S-amount, h.L).RGB()
}

// Saturate raises HSL saturation by amount, clamped to [0, 1].
func Saturate(c RGB, amount float64) RGB {
	h := c.HSL()
	return NewHSL(h.H, h.S+amount, h.L).RGB()
}
