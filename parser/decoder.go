package parser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// Decoder reads maze records from an input stream one at a time.
type Decoder struct {
	sc   *bufio.Scanner
	opts Options
	line int   // number of lines consumed so far
	err  error // sticky result once decoding stops, io.EOF included
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Decoder{sc: bufio.NewScanner(r), opts: o}
}

// Next returns the next maze. It returns io.EOF once the "0 0 0" terminator
// or the end of input is reached, and a *MalformedInputError for input that
// breaks the record format. After any error the Decoder stays at that error.
func (d *Decoder) Next() (*maze.Grid, error) {
	if d.opts.err != nil {
		return nil, d.opts.err
	}
	if d.err != nil {
		return nil, d.err
	}

	h, err := d.nextHeader()
	if err != nil {
		d.err = err
		return nil, err
	}

	var dims maze.Dims
	dims.Layers, dims.Rows, dims.Columns = h.dims()
	layers := make([][]string, dims.Layers)
	for l := range layers {
		if layers[l], err = d.readLayer(dims); err != nil {
			d.err = err
			return nil, err
		}
	}

	g, err := maze.NewGrid(dims, layers)
	if err != nil {
		// Rows are shaped and checked above; this is not expected to happen.
		d.err = &MalformedInputError{Line: d.line, Reason: "invalid cell", Err: err}
		return nil, d.err
	}

	return g, nil
}

// nextHeader skips blank lines, and any other line that does not start a
// record unless StrictRecords is set, and parses the next record header.
func (d *Decoder) nextHeader() (*header, error) {
	for {
		text, ok, err := d.readLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, io.EOF
		}
		if text == "" {
			continue
		}

		h, perr := parseHeader(text)
		switch {
		case perr == nil && h.sentinel():
			return nil, io.EOF
		case !isHeader(text) && d.opts.StrictRecords:
			return nil, d.malformed(text, "unexpected line outside a record", nil)
		case !isHeader(text):
			continue
		case perr != nil:
			return nil, d.malformed(text, "invalid record header", perr)
		}

		l, r, c := h.dims()
		for _, n := range []int{l, r, c} {
			if n > d.opts.MaxDimension {
				return nil, d.malformed(text, fmt.Sprintf("dimension %d exceeds %d", n, d.opts.MaxDimension), nil)
			}
		}
		return h, nil
	}
}

// readLayer reads dims.Rows rows followed by the blank separator line.
func (d *Decoder) readLayer(dims maze.Dims) ([]string, error) {
	rows := make([]string, dims.Rows)
	for r := range rows {
		text, ok, err := d.readLine()
		if err != nil {
			return nil, err
		}
		switch {
		case !ok:
			return nil, &MalformedInputError{Reason: fmt.Sprintf("input ended inside a record, want %d rows per layer", dims.Rows)}
		case text == "":
			return nil, d.malformed(text, "blank line where a row was expected", nil)
		case isHeader(text):
			return nil, d.malformed(text, "record header where a row was expected", nil)
		case len(text) > dims.Columns:
			return nil, d.malformed(text, fmt.Sprintf("row has %d columns, want %d", len(text), dims.Columns), nil)
		case len(text) < dims.Columns:
			if d.opts.StrictRows {
				return nil, d.malformed(text, fmt.Sprintf("row has %d columns, want %d", len(text), dims.Columns), nil)
			}
			text += strings.Repeat(string(maze.SymbolRock), dims.Columns-len(text))
		}
		for i := 0; i < len(text); i++ {
			if _, known := maze.KindOf(text[i]); !known {
				return nil, d.malformed(text, fmt.Sprintf("unknown cell symbol %q in column %d", text[i], i+1), nil)
			}
		}
		rows[r] = text
	}

	// The separator may only be missing at the very end of input.
	text, ok, err := d.readLine()
	if err != nil {
		return nil, err
	}
	if ok && text != "" {
		return nil, d.malformed(text, "missing blank line after layer", nil)
	}

	return rows, nil
}

// readLine returns the next line with trailing whitespace removed.
func (d *Decoder) readLine() (string, bool, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return "", false, fmt.Errorf("parser: read line %d: %w", d.line+1, err)
		}
		return "", false, nil
	}
	d.line++
	return strings.TrimRight(d.sc.Text(), " \t\r"), true, nil
}

func (d *Decoder) malformed(text, reason string, err error) *MalformedInputError {
	return &MalformedInputError{Line: d.line, Text: text, Reason: reason, Err: err}
}

// isHeader reports whether text starts a record: its first character is a
// non-zero digit.
func isHeader(text string) bool {
	return text != "" && text[0] >= '1' && text[0] <= '9'
}

// Parse decodes every maze in r, in input order.
func Parse(r io.Reader, opts ...Option) ([]*maze.Grid, error) {
	dec := NewDecoder(r, opts...)
	var grids []*maze.Grid
	for {
		g, err := dec.Next()
		if err == io.EOF {
			return grids, nil
		}
		if err != nil {
			return nil, err
		}
		grids = append(grids, g)
	}
}

// ParseFile opens path and decodes every maze in it. Open errors are
// returned before any parsing happens.
func ParseFile(path string, opts ...Option) ([]*maze.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}
	defer f.Close()

	return Parse(f, opts...)
}
