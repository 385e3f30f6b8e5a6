// Package adjacency turns a maze.CoordinateList into an undirected graph
// whose vertices are list indices and whose edges join coordinates one unit
// step apart along exactly one axis.
//
// Two builders produce the same Graph:
//
//   - BuildPairwise compares every ordered pair of coordinates. It is the
//     literal definition of unit-step adjacency and costs O(N²); with each
//     axis bounded by 30, N ≤ 27,000 and the scan stays tractable.
//   - Build indexes coordinates by position and looks up the six axis offsets
//     of each cell, O(N) time and memory. Pipelines use this one.
//
// Invariants:
//
//   - Neighbor lists are sorted ascending and never contain their own index.
//   - j ∈ Neighbors(i) ⇔ i ∈ Neighbors(j).
//
// ToGonum exports the graph as a gonum simple.UndirectedGraph so gonum's
// path algorithms can run on the same topology.
package adjacency
