package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and extraction.
var (
	// ErrShape indicates the supplied rows do not match the declared dimensions.
	ErrShape = errors.New("maze: grid shape does not match dimensions")
	// ErrUnknownSymbol indicates a cell symbol outside the maze alphabet.
	ErrUnknownSymbol = errors.New("maze: unknown cell symbol")
	// ErrInvalidGrid is matched by every *InvalidGridError.
	ErrInvalidGrid = errors.New("maze: invalid grid")
)

// Cell symbols of the input alphabet.
const (
	SymbolRock  = '#'
	SymbolAir   = '.'
	SymbolStart = 'S'
	SymbolEnd   = 'E'
)

// CellKind classifies a single grid cell.
type CellKind uint8

const (
	// Rock cannot be entered.
	Rock CellKind = iota
	// Air can be entered.
	Air
	// Start is the passable cell the escape begins from.
	Start
	// End is the passable cell the escape must reach.
	End
)

// KindOf maps an input symbol to its CellKind.
func KindOf(sym byte) (CellKind, bool) {
	switch sym {
	case SymbolRock:
		return Rock, true
	case SymbolAir:
		return Air, true
	case SymbolStart:
		return Start, true
	case SymbolEnd:
		return End, true
	}

	return Rock, false
}

// Passable reports whether a move may end on a cell of this kind.
func (k CellKind) Passable() bool { return k != Rock }

// Symbol returns the input symbol of k.
func (k CellKind) Symbol() byte {
	switch k {
	case Air:
		return SymbolAir
	case Start:
		return SymbolStart
	case End:
		return SymbolEnd
	default:
		return SymbolRock
	}
}

func (k CellKind) String() string {
	switch k {
	case Rock:
		return "rock"
	case Air:
		return "air"
	case Start:
		return "start"
	case End:
		return "end"
	}

	return fmt.Sprintf("CellKind(%d)", uint8(k))
}

// Coordinate identifies one cell by layer, row and column.
type Coordinate struct {
	Layer, Row, Column int
}

// Axis-aligned unit steps: down/up a layer, row and column.
var unitSteps = [6]Coordinate{
	{Layer: -1}, {Layer: 1},
	{Row: -1}, {Row: 1},
	{Column: -1}, {Column: 1},
}

// UnitSteps returns the six axis-aligned offsets of length one.
func UnitSteps() [6]Coordinate { return unitSteps }

// Add returns the component-wise sum of c and d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{Layer: c.Layer + d.Layer, Row: c.Row + d.Row, Column: c.Column + d.Column}
}

// Manhattan returns the sum of absolute per-axis differences between c and o.
func (c Coordinate) Manhattan(o Coordinate) int {
	return abs(c.Layer-o.Layer) + abs(c.Row-o.Row) + abs(c.Column-o.Column)
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Layer, c.Row, c.Column)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Dims holds the extent of a grid along each axis.
type Dims struct {
	Layers, Rows, Columns int
}

// Cells returns the total number of cells.
func (d Dims) Cells() int { return d.Layers * d.Rows * d.Columns }

// Contains reports whether c lies inside the grid.
func (d Dims) Contains(c Coordinate) bool {
	return c.Layer >= 0 && c.Layer < d.Layers &&
		c.Row >= 0 && c.Row < d.Rows &&
		c.Column >= 0 && c.Column < d.Columns
}

// Index maps c to its layer-major flat index. c must be inside d.
func (d Dims) Index(c Coordinate) int {
	return (c.Layer*d.Rows+c.Row)*d.Columns + c.Column
}

// Coordinate converts a layer-major flat index in [0, Cells()) back to a
// Coordinate.
func (d Dims) Coordinate(idx int) Coordinate {
	plane := d.Rows * d.Columns
	return Coordinate{
		Layer:  idx / plane,
		Row:    idx % plane / d.Columns,
		Column: idx % d.Columns,
	}
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%dx%d", d.Layers, d.Rows, d.Columns)
}

// InvalidGridError reports a grid whose start or end marker is missing
// (Count == 0) or repeated (Count > 1).
type InvalidGridError struct {
	Kind  CellKind
	Count int
}

func (e *InvalidGridError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("maze: grid has no %s cell", e.Kind)
	}
	return fmt.Sprintf("maze: grid has %d %s cells, want exactly one", e.Count, e.Kind)
}

// Unwrap lets errors.Is match ErrInvalidGrid.
func (e *InvalidGridError) Unwrap() error { return ErrInvalidGrid }
