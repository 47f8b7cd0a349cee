package scheme

import (
	"fmt"

	"github.com/jmylchreest/huegen/internal/colour"
)

// Warning is a non-fatal validation finding. Schemes that warn are still
// usable; the findings point at readability or convention drift.
type Warning struct {
	Slot    string
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Slot, w.Message)
}

// Validate checks the scheme against Base16 semantic conventions and
// returns warnings. An empty slice means a clean scheme.
//
// Checked:
//   - base00-base07 saturation stays under the neutral ceiling
//   - base08-base0E accents meet the AA contrast floor against base00
func Validate(s *Scheme) []Warning {
	var warnings []Warning

	for i := 0; i < 8; i++ {
		hsl := s.Colour(i).HSL()
		if hsl.S > NeutralMaxSaturation+0.02 {
			warnings = append(warnings, Warning{
				Slot:    SlotKey(i),
				Message: fmt.Sprintf("neutral saturation %.3f exceeds ceiling %.2f", hsl.S, NeutralMaxSaturation),
			})
		}
	}

	background := s.Colour(0)
	for i := 8; i <= 14; i++ {
		ratio := colour.ContrastRatio(s.Colour(i), background)
		if ratio < accentMinContrast {
			warnings = append(warnings, Warning{
				Slot:    SlotKey(i),
				Message: fmt.Sprintf("contrast %.2f against base00 is below %.1f", ratio, accentMinContrast),
			})
		}
	}

	return warnings
}
