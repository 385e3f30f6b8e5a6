// File: escape/solve_test.go
package escape_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/escape"
	"github.com/katalvlaran/labyrinth/maze"
)

// randomGrid fills an l×r×c grid with air at the given density and places
// S and E on two distinct cells.
func randomGrid(rng *rand.Rand, l, r, c int, density float64) *maze.Grid {
	d := maze.Dims{Layers: l, Rows: r, Columns: c}
	cells := []byte(nil)
	for i := 0; i < d.Cells(); i++ {
		sym := byte(maze.SymbolRock)
		if rng.Float64() < density {
			sym = maze.SymbolAir
		}
		cells = append(cells, sym)
	}
	s := rng.Intn(len(cells))
	e := (s + 1 + rng.Intn(len(cells)-1)) % len(cells)
	cells[s], cells[e] = maze.SymbolStart, maze.SymbolEnd

	layers := make([][]string, l)
	for li := range layers {
		for ri := 0; ri < r; ri++ {
			off := (li*r + ri) * c
			layers[li] = append(layers[li], string(cells[off:off+c]))
		}
	}
	return maze.MustGrid(d, layers)
}

func randomGrids(seed int64, n int) []*maze.Grid {
	rng := rand.New(rand.NewSource(seed))
	grids := make([]*maze.Grid, n)
	for i := range grids {
		grids[i] = randomGrid(rng, 1+rng.Intn(5), 2+rng.Intn(9), 2+rng.Intn(9), 0.55+0.3*rng.Float64())
	}
	return grids
}

// TestSolve_EnginesAgree compares all engines and checks the Manhattan
// lower bound on random mazes.
func TestSolve_EnginesAgree(t *testing.T) {
	ctx := context.Background()
	for i, grid := range randomGrids(42, 60) {
		list, err := grid.Coordinates()
		require.NoError(t, err)
		bound := list.Start().Manhattan(list.End())

		ref, err := escape.Solve(ctx, grid)
		require.NoError(t, err)
		if ref.Escaped {
			require.GreaterOrEqual(t, ref.Minutes, bound, "maze %d:\n%s", i, grid)
		}
		for _, engine := range escape.Engines() {
			got, err := escape.Solve(ctx, grid, escape.WithEngine(engine))
			require.NoError(t, err)
			require.Equal(t, ref, got, "engine %s, maze %d:\n%s", engine, i, grid)
		}
	}
}

// TestSolveAll_WorkersKeepOrder solves the same mazes with and without a
// worker pool.
func TestSolveAll_WorkersKeepOrder(t *testing.T) {
	grids := randomGrids(7, 40)
	ctx := context.Background()

	seq, err := escape.SolveAll(ctx, grids)
	require.NoError(t, err)
	par, err := escape.SolveAll(ctx, grids, escape.WithWorkers(8))
	require.NoError(t, err)

	for i, out := range par {
		assert.Equal(t, i, out.Index)
	}
	if diff := cmp.Diff(seq, par); diff != "" {
		t.Errorf("worker pool changed outcomes (-sequential +parallel):\n%s", diff)
	}
}

// TestSolveAll_FirstErrorWins reports the earliest invalid maze in input
// order, also under the worker pool.
func TestSolveAll_FirstErrorWins(t *testing.T) {
	noStart := maze.MustGrid(maze.Dims{Layers: 1, Rows: 1, Columns: 2}, [][]string{{".E"}})
	noEnd := maze.MustGrid(maze.Dims{Layers: 1, Rows: 1, Columns: 2}, [][]string{{"S."}})
	grids := append(randomGrids(1, 5), noEnd, noStart)

	for _, workers := range []int{1, 4} {
		_, err := escape.SolveAll(context.Background(), grids, escape.WithWorkers(workers))
		require.ErrorIs(t, err, maze.ErrInvalidGrid)
		assert.Contains(t, err.Error(), "maze 6: maze: grid has no end cell")

		outs, err := escape.SolveAll(context.Background(), grids, escape.WithWorkers(workers), escape.WithSkipInvalid())
		require.NoError(t, err)
		require.Len(t, outs, 7)
		assert.Error(t, outs[5].Err)
		assert.Error(t, outs[6].Err)
		assert.NoError(t, outs[0].Err)
	}
}

func TestSolveAll_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := escape.SolveAll(ctx, randomGrids(3, 3))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolveAll_Empty(t *testing.T) {
	outs, err := escape.SolveAll(context.Background(), nil, escape.WithWorkers(4))
	require.NoError(t, err)
	assert.Empty(t, outs)
}
