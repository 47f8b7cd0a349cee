package colour

import "testing"

func TestLerpEndpoints(t *testing.T) {
	a := RGB{0x28, 0x2c, 0x34}
	b := RGB{0x61, 0xaf, 0xef}

	lerps := []struct {
		name string
		fn   func(RGB, RGB, float64) RGB
	}{
		{name: "rgb", fn: LerpRGB},
		{name: "lab", fn: LerpLab},
		{name: "lch", fn: LerpLCh},
	}

	for _, tt := range lerps {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(a, b, 0); absDiff(got.R, a.R) > 1 || absDiff(got.G, a.G) > 1 || absDiff(got.B, a.B) > 1 {
				t.Errorf("t=0 gives %v, want ~%v", got, a)
			}
			if got := tt.fn(a, b, 1); absDiff(got.R, b.R) > 1 || absDiff(got.G, b.G) > 1 || absDiff(got.B, b.B) > 1 {
				t.Errorf("t=1 gives %v, want ~%v", got, b)
			}
		})
	}
}

func TestLerpLChShortestHuePath(t *testing.T) {
	// Red at hue ~30 and magenta-blue at ~330 in LCh: the midpoint must
	// cross 0, not the long way through green.
	red := NewHSL(0, 1, 0.5).RGB()
	magenta := NewHSL(300, 1, 0.5).RGB()

	mid := LerpLCh(red, magenta, 0.5)
	midHue := mid.LCh().H

	redHue := red.LCh().H
	magentaHue := magenta.LCh().H
	if HueDistance(midHue, redHue) > HueDistance(magentaHue, redHue) {
		t.Errorf("midpoint hue %.1f is outside the short arc between %.1f and %.1f",
			midHue, redHue, magentaHue)
	}
}

func TestGradients(t *testing.T) {
	a := RGB{0, 0, 0}
	b := RGB{255, 255, 255}

	tests := []struct {
		name  string
		fn    func(RGB, RGB, int) []RGB
		steps int
		want  int
	}{
		{name: "lab endpoints", fn: GradientLab, steps: 5, want: 5},
		{name: "lch", fn: GradientLCh, steps: 3, want: 3},
		{name: "rgb", fn: GradientRGB, steps: 8, want: 8},
		{name: "single step is empty", fn: GradientLab, steps: 1, want: 0},
		{name: "zero steps is empty", fn: GradientLCh, steps: 0, want: 0},
		{name: "negative steps is empty", fn: GradientRGB, steps: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.fn(a, b, tt.steps)
			if len(got) != tt.want {
				t.Fatalf("gradient size = %d, want %d", len(got), tt.want)
			}
			if tt.want >= 2 {
				if got[0] != a {
					t.Errorf("first colour = %v, want %v", got[0], a)
				}
				if got[len(got)-1] != b {
					t.Errorf("last colour = %v, want %v", got[len(got)-1], b)
				}
			}
		})
	}
}

func TestGradientMonotoneLightness(t *testing.T) {
	steps := GradientLab(RGB{}, RGB{255, 255, 255}, 6)
	for i := 1; i < len(steps); i++ {
		if steps[i].Luminance() <= steps[i-1].Luminance() {
			t.Errorf("luminance not increasing at step %d: %v -> %v",
				i, steps[i-1].Luminance(), steps[i].Luminance())
		}
	}
}
