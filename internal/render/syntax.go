package render

import (
	"fmt"
	"io"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"

	"github.com/jmylchreest/huegen/internal/scheme"
)

// SchemeStyle builds a chroma style from a Base16/Base24 scheme, mapping
// slots to token types per the tinted-theming styling guidelines: base0E
// keywords, base0B strings, base0D functions, base0A types, base08
// variables, base09 numbers, base0C regex/builtins, base03 comments.
func SchemeStyle(s *scheme.Scheme) (*chroma.Style, error) {
	hex := func(slot int) string { return s.Colour(slot).Hex() }

	entries := chroma.StyleEntries{
		chroma.Background:         fmt.Sprintf("bg:%s %s", hex(0), hex(5)),
		chroma.Text:               hex(5),
		chroma.Comment:            hex(3),
		chroma.Keyword:            hex(14),
		chroma.KeywordType:        hex(10),
		chroma.Operator:           hex(5),
		chroma.Punctuation:        hex(5),
		chroma.Name:               hex(5),
		chroma.NameVariable:       hex(8),
		chroma.NameTag:            hex(8),
		chroma.NameAttribute:      hex(10),
		chroma.NameClass:          hex(10),
		chroma.NameFunction:       hex(13),
		chroma.NameBuiltin:        hex(12),
		chroma.NameConstant:       hex(9),
		chroma.LiteralString:      hex(11),
		chroma.LiteralStringRegex: hex(12),
		chroma.LiteralNumber:      hex(9),
		chroma.KeywordConstant:    hex(9),
		chroma.GenericDeleted:     hex(8),
		chroma.GenericInserted:    hex(11),
		chroma.Error:              hex(15),
	}

	style, err := chroma.NewStyle(s.Name, entries)
	if err != nil {
		return nil, fmt.Errorf("building style from scheme %q: %w", s.Name, err)
	}
	return style, nil
}

// HighlightCode writes the source highlighted with the scheme's colours as
// truecolor ANSI. Unknown languages fall back to plaintext.
func HighlightCode(w io.Writer, source, language string, s *scheme.Scheme) error {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style, err := SchemeStyle(s)
	if err != nil {
		return err
	}

	formatter := formatters.Get("terminal16m")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("tokenising source: %w", err)
	}
	return formatter.Format(w, style, iterator)
}
