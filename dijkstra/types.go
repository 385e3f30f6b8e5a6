// Package dijkstra defines sentinel errors and configuration options for
// the unit-weight shortest-path solver over an adjacency.Graph.
//
// Options:
//
//	– Source:      index to start from (default 0, the maze start).
//	– Target:      index to reach (default -1, meaning the last index, the maze end).
//	– MaxDistance: optional cap on explored distance; beyond it the target counts as unreachable.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrEmptyGraph       if the graph has no vertices.
//	– ErrVertexNotFound   if Source or Target is outside the graph.
//	– ErrOptionViolation  if an Option received an invalid argument.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance reported for vertices that cannot be reached.
const Infinity = math.MaxInt

// Sentinel errors returned by the solver.
var (
	// ErrNilGraph indicates that a nil *adjacency.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices, so there is no source.
	ErrEmptyGraph = errors.New("dijkstra: graph has no vertices")

	// ErrVertexNotFound indicates that Source or Target is not a vertex index.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrOptionViolation indicates an Option was given an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the solver.
//
// Source      – starting vertex index.
// Target      – vertex index to reach; negative values count from the end (-1 = last).
// MaxDistance – vertices farther than this are not explored. Must be ≥ 0.
type Options struct {
	Source      int
	Target      int
	MaxDistance int

	err error // first invalid argument, reported by the solver
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithSource sets the starting vertex index.
func WithSource(i int) Option {
	return func(o *Options) {
		o.Source = i
	}
}

// WithTarget sets the vertex index to reach. Negative values count from the
// end, so -1 is the last index.
func WithTarget(i int) Option {
	return func(o *Options) {
		o.Target = i
	}
}

// WithMaxDistance stops exploring once the smallest pending distance exceeds max.
// A negative max is recorded and reported as ErrOptionViolation.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns the maze defaults:
//   - Source:      0 (the start cell of a CoordinateList).
//   - Target:      -1 (the end cell of a CoordinateList).
//   - MaxDistance: Infinity (no cap).
func DefaultOptions() Options {
	return Options{
		Source:      0,
		Target:      -1,
		MaxDistance: Infinity,
	}
}
