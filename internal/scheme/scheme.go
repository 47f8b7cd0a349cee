// Package scheme implements Base16 and Base24 colour scheme synthesis,
// validation and YAML interchange compatible with tinted-theming.
package scheme

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/huegen/internal/colour"
)

// System identifies the scheme family and its slot count.
type System string

const (
	SystemBase16 System = "base16"
	SystemBase24 System = "base24"
)

// Slots returns the number of palette slots the system defines.
func (s System) Slots() int {
	if s == SystemBase24 {
		return 24
	}
	return 16
}

// ParseSystem maps a CLI name to a System.
func ParseSystem(s string) (System, error) {
	switch s {
	case "base16":
		return SystemBase16, nil
	case "base24":
		return SystemBase24, nil
	}
	return "", fmt.Errorf("unknown scheme system %q (base16, base24)", s)
}

// Variant determines the background/foreground lightness progression.
type Variant int

const (
	VariantDark Variant = iota
	VariantLight
)

// String returns the tinted-theming name of the variant.
func (v Variant) String() string {
	if v == VariantLight {
		return "light"
	}
	return "dark"
}

// ParseVariant maps a CLI name to a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "dark":
		return VariantDark, nil
	case "light":
		return VariantLight, nil
	}
	return 0, fmt.Errorf("unknown variant %q (dark, light)", s)
}

// SlotKey returns the canonical palette key for a slot index: base00 through
// base0F, then base10 through base17.
func SlotKey(i int) string {
	return fmt.Sprintf("base%02X", i)
}

// Scheme is a complete Base16 or Base24 colour scheme. Colours is indexed by
// slot: 0-7 neutrals, 8-15 accents, 16-23 the Base24 extension.
type Scheme struct {
	System  System
	Name    string
	Author  string
	Variant Variant
	Colours []colour.RGB
}

// Colour returns the colour in the given slot.
func (s *Scheme) Colour(slot int) colour.RGB {
	return s.Colours[slot]
}

// Palette returns the slot-keyed hex palette, the shape used by the YAML
// interchange format.
func (s *Scheme) Palette() map[string]string {
	out := make(map[string]string, len(s.Colours))
	for i, c := range s.Colours {
		out[SlotKey(i)] = c.Hex()
	}
	return out
}

// IncompleteSchemeError reports palette slots a loaded scheme is missing.
type IncompleteSchemeError struct {
	System  System
	Missing []string
}

func (e *IncompleteSchemeError) Error() string {
	return fmt.Sprintf("incomplete %s scheme: missing %s", e.System, strings.Join(e.Missing, ", "))
}
