package adjacency_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/labyrinth/adjacency"
)

// BenchmarkBuild measures the indexed builder on a dense 30×30×30 maze.
// Complexity: O(N).
func BenchmarkBuild(b *testing.B) {
	list := coordinates(b, randomGrid(rand.New(rand.NewSource(42)), 30, 30, 30, 0.8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjacency.Build(list)
	}
}

// BenchmarkBuildPairwise measures the all-pairs builder on a 10×10×10 maze.
// Complexity: O(N²).
func BenchmarkBuildPairwise(b *testing.B) {
	list := coordinates(b, randomGrid(rand.New(rand.NewSource(42)), 10, 10, 10, 0.8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjacency.BuildPairwise(list)
	}
}
