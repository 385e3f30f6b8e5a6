// Package labyrinth answers one question for every maze in a text file:
// how many minutes does it take to get from S to E, moving one cell per
// minute up, down, north, south, east or west through open air?
//
// Under the hood the work is split into small packages, composed in one
// linear pipeline per maze:
//
//	parser/    — decodes "L R C" records into grids, strict about structure
//	maze/      — typed cells, coordinates, start-first/end-last coordinate lists
//	adjacency/ — unit-step graph over the coordinate list (indexed or all-pairs)
//	dijkstra/  — heap-based shortest distance on the unit-weight graph
//	bfs/       — breadth-first equivalent with hooks and cancellation
//	escape/    — pipeline, worker pool, text and JSON reports
//	config/    — optional JSON settings for the command
//
// Quick ASCII example, one layer:
//
//	S.#
//	#..      S → . → . → . → E   takes 4 minutes
//	.#E
//
// The command lives in cmd/labyrinth:
//
//	go run ./cmd/labyrinth input.txt
package labyrinth
