package scheme

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/huegen/internal/colour"
)

// rawScheme mirrors the tinted-theming YAML layout.
type rawScheme struct {
	System  string            `yaml:"system"`
	Name    string            `yaml:"name"`
	Author  string            `yaml:"author,omitempty"`
	Variant string            `yaml:"variant,omitempty"`
	Palette map[string]string `yaml:"palette"`
}

// Load reads and parses a scheme YAML file.
func Load(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scheme %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing scheme %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a tinted-theming scheme document. The system is taken from
// the document when present, otherwise inferred from the palette size. All
// slots for the system must be present; anything missing surfaces as an
// IncompleteSchemeError.
func Parse(data []byte) (*Scheme, error) {
	var raw rawScheme
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Name == "" {
		return nil, fmt.Errorf("scheme is missing required field 'name'")
	}

	system := SystemBase16
	switch raw.System {
	case "", "base16":
		if raw.System == "" && len(raw.Palette) >= 24 {
			system = SystemBase24
		}
	case "base24":
		system = SystemBase24
	default:
		return nil, fmt.Errorf("unsupported scheme system %q", raw.System)
	}

	variant := VariantDark
	if raw.Variant != "" {
		v, err := ParseVariant(raw.Variant)
		if err != nil {
			return nil, err
		}
		variant = v
	}

	colours := make([]colour.RGB, 0, system.Slots())
	var missing []string
	for i := 0; i < system.Slots(); i++ {
		key := SlotKey(i)
		hex, ok := raw.Palette[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		c, err := colour.ParseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette entry %s: %w", key, err)
		}
		colours = append(colours, c)
	}
	if len(missing) > 0 {
		return nil, &IncompleteSchemeError{System: system, Missing: missing}
	}

	return &Scheme{
		System:  system,
		Name:    raw.Name,
		Author:  raw.Author,
		Variant: variant,
		Colours: colours,
	}, nil
}

// Marshal encodes the scheme as tinted-theming YAML. The palette is built
// as an explicit mapping node so slots emit in canonical order, base00
// through the last slot. A plain map would sort base10 before base0A.
func Marshal(s *Scheme) ([]byte, error) {
	palette := yaml.Node{Kind: yaml.MappingNode}
	for i, c := range s.Colours {
		palette.Content = append(palette.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: SlotKey(i)},
			&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: c.Hex()},
		)
	}

	out := struct {
		System  string    `yaml:"system"`
		Name    string    `yaml:"name"`
		Author  string    `yaml:"author,omitempty"`
		Variant string    `yaml:"variant,omitempty"`
		Palette yaml.Node `yaml:"palette"`
	}{
		System:  string(s.System),
		Name:    s.Name,
		Author:  s.Author,
		Variant: s.Variant.String(),
		Palette: palette,
	}
	return yaml.Marshal(out)
}

// Save writes the scheme to path as YAML.
func Save(s *Scheme, path string) error {
	data, err := Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding scheme: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing scheme %s: %w", path, err)
	}
	return nil
}
