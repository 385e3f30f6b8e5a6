// Package escape wires the labyrinth pipeline together: it decodes maze
// records, extracts their passable coordinates, builds the unit-step graph,
// solves it and formats one line per maze.
//
//	parser.Decoder → maze.Grid.Coordinates → adjacency.Build → engine → Report
//
// Engines:
//
//   - EngineDijkstra (default): heap-based Dijkstra from package dijkstra.
//   - EngineBFS:                breadth-first search from package bfs.
//   - EngineGonum:              gonum's path.DijkstraFrom over ToGonum().
//
// All three return identical move counts.
//
// Every maze is independent, so WithWorkers(n) may solve them on n
// goroutines. Results are always reported in input order.
//
// Errors:
//
//   - *parser.MalformedInputError aborts the run before any output.
//   - *maze.InvalidGridError aborts the run unless WithSkipInvalid is set,
//     in which case the maze is reported as invalid and the run continues.
package escape
