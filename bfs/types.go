// Package bfs provides tunable options and error definitions
// for breadth‐first search over an adjacency.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Infinity is the depth of vertices that were never reached.
const Infinity = math.MaxInt

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyGraph is returned for a graph without vertices.
	ErrEmptyGraph = errors.New("bfs: graph has no vertices")

	// ErrVertexNotFound is returned when Source or Target is out of range.
	ErrVertexNotFound = errors.New("bfs: vertex not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Source is the index the search starts from.
	Source int

	// Target is the index ShortestDistance looks for; negative values count
	// from the end (-1 = last index).
	Target int

	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id int, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - Source 0, Target -1 (the maze start and end)
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Source:  0,
		Target:  -1,
		OnVisit: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSource sets the starting vertex index.
func WithSource(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithTarget sets the vertex index ShortestDistance stops at.
func WithTarget(i int) Option {
	return func(o *Options) {
		o.Target = i
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id int, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from Source per vertex, Infinity if unreached.
type Result struct {
	Order []int
	Depth []int
}

// Reached reports whether v was reached.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] != Infinity
}
