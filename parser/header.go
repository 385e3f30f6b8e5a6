package parser

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// decimal is a header field: plain base-10 digits, leading zeros allowed.
type decimal int

// Capture implements participle.Capture.
func (d *decimal) Capture(values []string) error {
	n, err := strconv.Atoi(values[0])
	if err != nil {
		return fmt.Errorf("dimension %q: %w", values[0], err)
	}
	*d = decimal(n)
	return nil
}

// header is the grammar of a record header line: exactly three integers.
type header struct {
	Layers  decimal `parser:"@Int"`
	Rows    decimal `parser:"@Int"`
	Columns decimal `parser:"@Int"`
}

var headerLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var headerParser = participle.MustBuild[header](
	participle.Lexer(headerLexer),
	participle.Elide("Whitespace"),
)

// parseHeader parses "L R C". Signs, extra fields and non-integers are rejected.
func parseHeader(text string) (*header, error) {
	return headerParser.ParseString("header", text)
}

func (h *header) dims() (layers, rows, columns int) {
	return int(h.Layers), int(h.Rows), int(h.Columns)
}

func (h *header) sentinel() bool {
	return h.Layers == 0 && h.Rows == 0 && h.Columns == 0
}
