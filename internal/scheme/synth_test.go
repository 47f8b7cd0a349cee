package scheme

import (
	"testing"

	"github.com/jmylchreest/huegen/internal/colour"
)

func testConfig(system System, variant Variant) Config {
	return Config{
		System:       system,
		Name:         "Test Scheme",
		Variant:      variant,
		Accent:       colour.RGB{R: 0x61, G: 0xaf, B: 0xef},
		Harmony:      colour.Triadic,
		NeutralDepth: DefaultNeutralDepth,
	}
}

func TestGenerateSlotCounts(t *testing.T) {
	tests := []struct {
		name   string
		system System
		want   int
	}{
		{name: "base16", system: SystemBase16, want: 16},
		{name: "base24", system: SystemBase24, want: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Generate(testConfig(tt.system, VariantDark))
			if len(s.Colours) != tt.want {
				t.Errorf("colour count = %d, want %d", len(s.Colours), tt.want)
			}
			if s.System != tt.system {
				t.Errorf("system = %v, want %v", s.System, tt.system)
			}
		})
	}
}

func TestNeutralsAreDesaturated(t *testing.T) {
	for _, variant := range []Variant{VariantDark, VariantLight} {
		t.Run(variant.String(), func(t *testing.T) {
			s := Generate(testConfig(SystemBase16, variant))
			for i := 0; i < 8; i++ {
				hsl := s.Colour(i).HSL()
				if hsl.S > NeutralMaxSaturation+0.02 {
					t.Errorf("%s saturation %.3f exceeds ceiling", SlotKey(i), hsl.S)
				}
			}
		})
	}
}

func TestNeutralRampDirection(t *testing.T) {
	dark := Generate(testConfig(SystemBase16, VariantDark))
	if dark.Colour(0).HSL().L >= dark.Colour(7).HSL().L {
		t.Error("dark variant: base00 should be darker than base07")
	}

	light := Generate(testConfig(SystemBase16, VariantLight))
	if light.Colour(0).HSL().L <= light.Colour(7).HSL().L {
		t.Error("light variant: base00 should be lighter than base07")
	}
}

func TestNeutralDepthControlsDarkness(t *testing.T) {
	shallow := testConfig(SystemBase16, VariantDark)
	shallow.NeutralDepth = 0.0
	deep := testConfig(SystemBase16, VariantDark)
	deep.NeutralDepth = 1.0

	shallowL := Generate(shallow).Colour(0).HSL().L
	deepL := Generate(deep).Colour(0).HSL().L
	if deepL >= shallowL {
		t.Errorf("deep base00 lightness %.3f should be below shallow %.3f", deepL, shallowL)
	}
}

func TestAccentsMeetContrastFloor(t *testing.T) {
	for _, variant := range []Variant{VariantDark, VariantLight} {
		t.Run(variant.String(), func(t *testing.T) {
			s := Generate(testConfig(SystemBase16, variant))
			background := s.Colour(0)
			for i := 8; i < 16; i++ {
				ratio := colour.ContrastRatio(s.Colour(i), background)
				if ratio < accentMinContrast {
					t.Errorf("%s contrast %.2f below %.1f", SlotKey(i), ratio, accentMinContrast)
				}
			}
		})
	}
}

func TestAccentBase0FIsMuted(t *testing.T) {
	s := Generate(testConfig(SystemBase16, VariantDark))
	if sat := s.Colour(15).HSL().S; sat > 0.40 {
		t.Errorf("base0F saturation %.3f, want muted (<= ~0.35)", sat)
	}
}

func TestBase24BrightPairsShareHue(t *testing.T) {
	s := Generate(testConfig(SystemBase24, VariantDark))

	// base12..base17 brighten base08, base0A, base0B, base0C, base0D, base0E.
	pairs := []struct{ bright, source int }{
		{18, 8}, {19, 10}, {20, 11}, {21, 12}, {22, 13}, {23, 14},
	}
	for _, p := range pairs {
		brightHSL := s.Colour(p.bright).HSL()
		sourceHSL := s.Colour(p.source).HSL()
		if colour.HueDistance(brightHSL.H, sourceHSL.H) > 4.0 {
			t.Errorf("%s hue %.1f does not match %s hue %.1f",
				SlotKey(p.bright), brightHSL.H, SlotKey(p.source), sourceHSL.H)
		}
		if brightHSL.L < sourceHSL.L {
			t.Errorf("%s lightness %.3f below its source %s (%.3f)",
				SlotKey(p.bright), brightHSL.L, SlotKey(p.source), sourceHSL.L)
		}
	}
}

func TestBase24DeeperBackgrounds(t *testing.T) {
	// Classic depth keeps base00 off the floor so the deeper backgrounds
	// have room below it.
	darkCfg := testConfig(SystemBase24, VariantDark)
	darkCfg.NeutralDepth = 0.0
	dark := Generate(darkCfg)
	base00 := dark.Colour(0).HSL().L
	if l := dark.Colour(16).HSL().L; l >= base00 {
		t.Errorf("dark base10 lightness %.3f should be below base00 %.3f", l, base00)
	}
	if l := dark.Colour(17).HSL().L; l >= dark.Colour(16).HSL().L {
		t.Error("dark base11 should be darker than base10")
	}

	lightCfg := testConfig(SystemBase24, VariantLight)
	lightCfg.NeutralDepth = 0.0
	light := Generate(lightCfg)
	if l := light.Colour(16).HSL().L; l <= light.Colour(0).HSL().L {
		t.Error("light base10 should be lighter than base00")
	}
}

func TestSlotKey(t *testing.T) {
	tests := []struct {
		slot int
		want string
	}{
		{0, "base00"}, {7, "base07"}, {10, "base0A"}, {15, "base0F"},
		{16, "base10"}, {23, "base17"},
	}
	for _, tt := range tests {
		if got := SlotKey(tt.slot); got != tt.want {
			t.Errorf("SlotKey(%d) = %q, want %q", tt.slot, got, tt.want)
		}
	}
}
