package escape

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/labyrinth/parser"
)

// Run decodes every maze from r, solves them and writes the report to w.
// Malformed input aborts before anything is written.
func Run(ctx context.Context, r io.Reader, w io.Writer, opts ...Option) ([]Outcome, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	grids, err := parser.Parse(r, o.Parser...)
	if err != nil {
		return nil, err
	}
	outs, err := SolveAll(ctx, grids, opts...)
	if err != nil {
		return nil, err
	}
	if err := WriteReport(w, outs, opts...); err != nil {
		return nil, err
	}

	return outs, nil
}

// RunFile is Run on the named file. Open errors are returned before any
// parsing begins.
func RunFile(ctx context.Context, path string, w io.Writer, opts ...Option) ([]Outcome, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("escape: %w", err)
	}
	defer f.Close()

	return Run(ctx, f, w, opts...)
}
