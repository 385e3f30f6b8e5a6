package escape

import (
	"context"
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/labyrinth/adjacency"
	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/dijkstra"
)

// unreachable is the distance every engine reports when the end is cut off.
const unreachable = dijkstra.Infinity

// solveFunc returns the move count from index 0 to the last index of g.
type solveFunc func(ctx context.Context, g *adjacency.Graph) (int, error)

var engines = map[Engine]solveFunc{
	EngineDijkstra: func(_ context.Context, g *adjacency.Graph) (int, error) {
		return dijkstra.ShortestDistance(g)
	},
	EngineBFS: func(ctx context.Context, g *adjacency.Graph) (int, error) {
		d, err := bfs.ShortestDistance(g, bfs.WithContext(ctx))
		if d == bfs.Infinity {
			d = unreachable
		}
		return d, err
	},
	EngineGonum: gonumDistance,
}

// gonumDistance runs gonum's Dijkstra; unweighted simple graphs use unit cost.
func gonumDistance(_ context.Context, g *adjacency.Graph) (int, error) {
	if g.Order() == 0 {
		return unreachable, dijkstra.ErrEmptyGraph
	}
	ug := g.ToGonum()
	shortest := path.DijkstraFrom(simple.Node(0), ug)
	w := shortest.WeightTo(int64(g.Order() - 1))
	if math.IsInf(w, 1) {
		return unreachable, nil
	}
	return int(w), nil
}
