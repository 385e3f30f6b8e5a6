package escape

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/katalvlaran/labyrinth/adjacency"
	"github.com/katalvlaran/labyrinth/maze"
)

// Outcome is the result for one maze record.
type Outcome struct {
	Index     int // 0-based position in the input
	Dims      maze.Dims
	OpenCells int // passable cells, start and end included
	Edges     int // unit-step adjacencies between passable cells
	Escaped   bool
	Minutes   int   // minimum number of moves; meaningful only when Escaped
	Err       error // why the maze was skipped, with WithSkipInvalid
}

// Solve runs the extractor, graph builder and solver on one grid.
// A grid without a unique start and end yields a *maze.InvalidGridError.
func Solve(ctx context.Context, grid *maze.Grid, opts ...Option) (Outcome, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return Outcome{}, err
	}
	return solve(ctx, grid, engines[o.Engine])
}

func solve(ctx context.Context, grid *maze.Grid, fn solveFunc) (Outcome, error) {
	out := Outcome{Dims: grid.Dims(), OpenCells: grid.OpenCells()}

	list, err := grid.Coordinates()
	if err != nil {
		return out, err
	}
	g := adjacency.Build(list)
	out.Edges = g.Size()

	d, err := fn(ctx, g)
	if err != nil {
		return out, fmt.Errorf("escape: solve %s maze: %w", out.Dims, err)
	}
	if d != unreachable {
		out.Escaped, out.Minutes = true, d
	}

	return out, nil
}

// SolveAll solves every grid and returns the outcomes in input order.
// Mazes are independent; with WithWorkers(n) up to n are solved at once.
// The first failing maze in input order aborts the run, except invalid grids
// under WithSkipInvalid, which are kept as outcomes with Err set.
func SolveAll(ctx context.Context, grids []*maze.Grid, opts ...Option) ([]Outcome, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	fn := engines[o.Engine]

	outs := make([]Outcome, len(grids))
	errs := make([]error, len(grids))
	work := func(i int) {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			return
		}
		outs[i], errs[i] = solve(ctx, grids[i], fn)
		outs[i].Index = i
	}

	if o.Workers <= 1 || len(grids) <= 1 {
		for i := range grids {
			work(i)
			if errs[i] != nil && !skippable(errs[i], o) {
				break
			}
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < min(o.Workers, len(grids)); w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					work(i)
				}
			}()
		}
		for i := range grids {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	for i, err := range errs {
		if err == nil {
			continue
		}
		if !skippable(err, o) {
			return nil, fmt.Errorf("escape: maze %d: %w", i+1, err)
		}
		outs[i].Err = err
	}
	return outs, nil
}

func skippable(err error, o Options) bool {
	return o.SkipInvalid && errors.Is(err, maze.ErrInvalidGrid)
}
