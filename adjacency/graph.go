package adjacency

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/labyrinth/maze"
)

// ErrIndexOutOfRange indicates a vertex index outside [0, Order()).
var ErrIndexOutOfRange = errors.New("adjacency: vertex index out of range")

// Graph is an immutable undirected graph over the indices of a CoordinateList.
type Graph struct {
	adj   [][]int // adj[i] = sorted neighbor indices of i
	edges int     // undirected edge count
}

// Adjacent reports whether a and b differ by exactly one along one axis.
func Adjacent(a, b maze.Coordinate) bool {
	return a.Manhattan(b) == 1
}

// BuildPairwise builds the graph by testing every ordered pair (i, j), i ≠ j.
// Complexity: O(N²) time, O(N + E) memory.
func BuildPairwise(coords maze.CoordinateList) *Graph {
	g := &Graph{adj: make([][]int, len(coords))}
	for i := range coords {
		for j := range coords {
			if i != j && Adjacent(coords[i], coords[j]) {
				g.adj[i] = append(g.adj[i], j)
			}
		}
		g.edges += len(g.adj[i])
	}
	g.edges /= 2

	return g
}

// Build builds the same graph as BuildPairwise through a position index.
// Complexity: O(N) time and memory (at most six lookups per coordinate).
func Build(coords maze.CoordinateList) *Graph {
	index := make(map[maze.Coordinate]int, len(coords))
	for i, c := range coords {
		index[c] = i
	}

	g := &Graph{adj: make([][]int, len(coords))}
	steps := maze.UnitSteps()
	for i, c := range coords {
		for _, step := range steps {
			if j, ok := index[c.Add(step)]; ok && j != i {
				g.adj[i] = append(g.adj[i], j)
			}
		}
		slices.Sort(g.adj[i])
		g.edges += len(g.adj[i])
	}
	g.edges /= 2

	return g
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return len(g.adj) }

// Size returns the number of undirected edges.
func (g *Graph) Size() int { return g.edges }

// Neighbors returns the sorted neighbor indices of i. The slice is shared
// with the graph and must not be modified.
func (g *Graph) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(g.adj) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(g.adj))
	}
	return g.adj[i], nil
}

// Degree returns the number of neighbors of i, or 0 for an unknown index.
func (g *Graph) Degree(i int) int {
	if i < 0 || i >= len(g.adj) {
		return 0
	}
	return len(g.adj[i])
}

// HasEdge reports whether i and j are adjacent.
func (g *Graph) HasEdge(i, j int) bool {
	if i < 0 || i >= len(g.adj) {
		return false
	}
	_, found := slices.BinarySearch(g.adj[i], j)
	return found
}

// ToGonum copies g into a gonum undirected graph; vertex i becomes node
// ID int64(i). Edges carry gonum's default unit weight.
// Complexity: O(N + E).
func (g *Graph) ToGonum() *simple.UndirectedGraph {
	ug := simple.NewUndirectedGraph()
	for i := range g.adj {
		ug.AddNode(simple.Node(i))
	}
	for i, nbrs := range g.adj {
		for _, j := range nbrs {
			if j > i {
				ug.SetEdge(ug.NewEdge(simple.Node(i), simple.Node(j)))
			}
		}
	}
	return ug
}
