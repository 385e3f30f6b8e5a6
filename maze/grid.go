package maze

import (
	"fmt"
	"strings"
)

// Grid is an immutable L×R×C block of cells.
type Grid struct {
	dims  Dims
	cells []CellKind // layer-major, see Dims.Index
}

// NewGrid builds a Grid from layers of text rows. layers must hold exactly
// d.Layers layers of d.Rows rows of d.Columns symbols each; any other shape
// yields ErrShape. Symbols outside the maze alphabet yield ErrUnknownSymbol.
// The input is copied, later changes to layers do not affect the Grid.
// Complexity: O(L×R×C) time and memory.
func NewGrid(d Dims, layers [][]string) (*Grid, error) {
	if d.Layers < 0 || d.Rows < 0 || d.Columns < 0 {
		return nil, fmt.Errorf("%w: negative dimension %s", ErrShape, d)
	}
	if len(layers) != d.Layers {
		return nil, fmt.Errorf("%w: got %d layers, want %d", ErrShape, len(layers), d.Layers)
	}
	g := &Grid{dims: d, cells: make([]CellKind, d.Cells())}
	for l, layer := range layers {
		if len(layer) != d.Rows {
			return nil, fmt.Errorf("%w: layer %d has %d rows, want %d", ErrShape, l, len(layer), d.Rows)
		}
		for r, row := range layer {
			if len(row) != d.Columns {
				return nil, fmt.Errorf("%w: layer %d row %d has %d columns, want %d",
					ErrShape, l, r, len(row), d.Columns)
			}
			for c := 0; c < len(row); c++ {
				at := Coordinate{Layer: l, Row: r, Column: c}
				kind, ok := KindOf(row[c])
				if !ok {
					return nil, fmt.Errorf("%w %q at %s", ErrUnknownSymbol, row[c], at)
				}
				g.cells[d.Index(at)] = kind
			}
		}
	}

	return g, nil
}

// MustGrid is like NewGrid but panics on error. Meant for fixtures.
func MustGrid(d Dims, layers [][]string) *Grid {
	g, err := NewGrid(d, layers)
	if err != nil {
		panic(err)
	}
	return g
}

// Dims returns the grid extent.
func (g *Grid) Dims() Dims { return g.dims }

// At returns the kind of the cell at c; cells outside the grid read as Rock.
func (g *Grid) At(c Coordinate) CellKind {
	if !g.dims.Contains(c) {
		return Rock
	}
	return g.cells[g.dims.Index(c)]
}

// Count returns how many cells have the given kind.
func (g *Grid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// OpenCells returns the number of passable cells.
func (g *Grid) OpenCells() int {
	return len(g.cells) - g.Count(Rock)
}

// String renders the grid back to its input form: rows separated by
// newlines, each layer followed by a blank line.
func (g *Grid) String() string {
	if len(g.cells) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.dims.Cells() + g.dims.Layers*(g.dims.Rows+1))
	for i, k := range g.cells {
		sb.WriteByte(k.Symbol())
		if (i+1)%g.dims.Columns == 0 {
			sb.WriteByte('\n')
			if (i+1)%(g.dims.Rows*g.dims.Columns) == 0 {
				sb.WriteByte('\n')
			}
		}
	}
	return sb.String()
}
