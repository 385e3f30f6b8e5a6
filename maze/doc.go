// Package maze models a three-dimensional labyrinth as an immutable grid of
// typed cells and extracts the ordered list of passable coordinates that the
// rest of the pipeline turns into a graph.
//
// What:
//
//   - Grid wraps an L×R×C block of CellKind values (Rock, Air, Start, End).
//   - Coordinates scans the grid layer by layer and returns a CoordinateList
//     with the start cell first, air cells in scan order, and the end cell last.
//   - Coordinate offers Manhattan distance and axis-aligned stepping.
//
// Why:
//
//   - Cell kinds are an enum, so symbol typos are caught once, at construction.
//   - A fixed list layout (start at 0, end at len-1) lets solvers run without
//     carrying coordinates around.
//
// Complexity:
//
//   - NewGrid:     O(L×R×C) time and memory.
//   - Coordinates: O(L×R×C) time, O(N) memory for N passable cells.
//
// Errors:
//
//   - ErrShape:         layers, rows or columns disagree with the declared Dims.
//   - ErrUnknownSymbol: a cell symbol outside '#', '.', 'S', 'E'.
//   - ErrInvalidGrid:   matched by *InvalidGridError when the start or end
//     marker is missing or duplicated.
package maze
