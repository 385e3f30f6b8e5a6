package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/adjacency"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph  *adjacency.Graph
	opts   Options
	ctx    context.Context
	target int // resolved Target; -1 when the search should not stop early
	queue  []int
	res    *Result
}

// BFS runs breadth-first search on g from Options.Source, applying any number
// of functional Options. The whole reachable component is explored.
func BFS(g *adjacency.Graph, opts ...Option) (*Result, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return nil, err
	}
	w.target = -1

	return w.res, w.loop()
}

// ShortestDistance returns the number of edges from Source to Target, or
// Infinity if Target is not reachable within MaxDepth.
func ShortestDistance(g *adjacency.Graph, opts ...Option) (int, error) {
	w, err := newWalker(g, opts)
	if err != nil {
		return Infinity, err
	}
	if err = w.loop(); err != nil {
		return Infinity, err
	}

	return w.res.Depth[w.target], nil
}

func newWalker(g *adjacency.Graph, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	target := o.Target
	if target < 0 {
		target += n
	}
	if o.Source < 0 || o.Source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, o.Source)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, o.Target)
	}

	w := &walker{
		graph:  g,
		opts:   o,
		ctx:    o.Ctx,
		target: target,
		queue:  make([]int, 0, n),
		res: &Result{
			Order: make([]int, 0, n),
			Depth: make([]int, n),
		},
	}
	for v := range w.res.Depth {
		w.res.Depth[v] = Infinity
	}
	// Seed queue with the source
	w.enqueue(o.Source, 0)

	return w, nil
}

// enqueue records the depth of id, which also marks it seen, and queues it.
func (w *walker) enqueue(id, depth int) {
	w.res.Depth[id] = depth
	w.queue = append(w.queue, id)
}

// loop processes the queue until empty, target reached, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		id := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(id); err != nil {
			return err
		}
		if id == w.target {
			return nil
		}
		if err := w.enqueueNeighbors(id); err != nil {
			return err
		}
	}
	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(id int) error {
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, w.res.Depth[id]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", id, err)
	}
	return nil
}

// enqueueNeighbors applies MaxDepth and enqueues each unseen neighbor.
// Returns ErrNeighbors on lookup failure.
func (w *walker) enqueueNeighbors(id int) error {
	neighbors, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %d: %v", ErrNeighbors, id, err)
	}
	nextDepth := w.res.Depth[id] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		// first time seen?
		if w.res.Depth[nbr] == Infinity {
			w.enqueue(nbr, nextDepth)
		}
	}
	return nil
}
