package maze

// CoordinateList orders the passable cells of a grid: the start cell at
// index 0, air cells in scan order, the end cell at the last index.
type CoordinateList []Coordinate

// Start returns the start coordinate. The list must not be empty.
func (l CoordinateList) Start() Coordinate { return l[0] }

// End returns the end coordinate. The list must not be empty.
func (l CoordinateList) End() Coordinate { return l[len(l)-1] }

// Coordinates scans g in layer, row, column order and returns its
// CoordinateList. A missing or repeated start or end marker yields an
// *InvalidGridError and no list.
// Complexity: O(L×R×C) time, O(N) memory for N passable cells.
func (g *Grid) Coordinates() (CoordinateList, error) {
	var (
		start, end   Coordinate
		starts, ends int
	)
	air := make([]Coordinate, 0, g.OpenCells())
	for i, k := range g.cells {
		switch k {
		case Air:
			air = append(air, g.dims.Coordinate(i))
		case Start:
			start = g.dims.Coordinate(i)
			starts++
		case End:
			end = g.dims.Coordinate(i)
			ends++
		}
	}
	if starts != 1 {
		return nil, &InvalidGridError{Kind: Start, Count: starts}
	}
	if ends != 1 {
		return nil, &InvalidGridError{Kind: End, Count: ends}
	}

	list := make(CoordinateList, 0, len(air)+2)
	list = append(list, start)
	list = append(list, air...)
	list = append(list, end)

	return list, nil
}
