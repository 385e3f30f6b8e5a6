package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/adjacency"
	"github.com/katalvlaran/labyrinth/dijkstra"
	"github.com/katalvlaran/labyrinth/maze"
)

// ExampleShortestDistance solves a two-layer maze whose only route climbs
// through the shaft at the right-hand side.
//
//	Layer 0:  S...    Layer 1:  ###.
//	          ####              E...
func ExampleShortestDistance() {
	grid := maze.MustGrid(maze.Dims{Layers: 2, Rows: 2, Columns: 4}, [][]string{
		{"S...", "####"},
		{"###.", "E..."},
	})
	list, _ := grid.Coordinates()
	d, _ := dijkstra.ShortestDistance(adjacency.Build(list))
	fmt.Println("moves:", d)

	// Output:
	// moves: 8
}
