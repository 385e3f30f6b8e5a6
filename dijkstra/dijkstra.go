package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/labyrinth/adjacency"
)

// ShortestDistance returns the minimum number of edges from Source to Target,
// or Infinity when Target cannot be reached (or lies beyond MaxDistance).
//
// Preconditions and validation (in order):
//  1. No Option was given an invalid argument (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGraph) and non-empty (ErrEmptyGraph).
//  3. Source and Target must be vertex indices (ErrVertexNotFound).
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestDistance(g *adjacency.Graph, opts ...Option) (int, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return Infinity, err
	}
	if err = r.process(true); err != nil {
		return Infinity, err
	}

	return r.dist[r.target], nil
}

// Distances returns the full distance table from Source. Target is validated
// but does not stop the search; unreachable entries hold Infinity.
func Distances(g *adjacency.Graph, opts ...Option) ([]int, error) {
	r, err := newRunner(g, opts)
	if err != nil {
		return nil, err
	}
	if err = r.process(false); err != nil {
		return nil, err
	}

	return r.dist, nil
}

// runner holds the mutable state for a single solver execution.
type runner struct {
	g       *adjacency.Graph
	options Options
	target  int    // Target resolved to a non-negative index
	dist    []int  // vertex → best known distance from Source
	settled []bool // vertex → distance is final
	pq      nodePQ // min-heap, lazy decrease-key
}

// newRunner validates the inputs and seeds the heap with Source at distance 0.
func newRunner(g *adjacency.Graph, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.Order()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	target := cfg.Target
	if target < 0 {
		target += n
	}
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, cfg.Source)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, cfg.Target)
	}

	r := &runner{
		g:       g,
		options: cfg,
		target:  target,
		dist:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for v := range r.dist {
		r.dist[v] = Infinity
	}
	r.dist[cfg.Source] = 0
	heap.Push(&r.pq, nodeItem{id: cfg.Source, dist: 0})

	return r, nil
}

// process settles vertices in order of distance until the heap is empty,
// the smallest pending distance exceeds MaxDistance, or, when stopAtTarget
// is set, the target is settled.
func (r *runner) process(stopAtTarget bool) error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// Stale entry from an earlier, longer relaxation.
		if r.settled[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[u] = true
		if stopAtTarget && u == r.target {
			break
		}

		if err := r.relax(u); err != nil {
			return err
		}
	}

	for v, d := range r.dist {
		if d > r.options.MaxDistance {
			r.dist[v] = Infinity
		}
	}
	return nil
}

// relax improves the distance of every unsettled neighbor of u through u.
func (r *runner) relax(u int) error {
	nbrs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	newDist := r.dist[u] + 1
	for _, v := range nbrs {
		if r.settled[v] || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a heap entry: a vertex and its tentative distance.
type nodeItem struct {
	id   int
	dist int
}

// nodePQ is a min-heap of nodeItem ordered by dist, then id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
