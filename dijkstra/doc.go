// Package dijkstra computes minimum move counts between two vertices of an
// adjacency.Graph, the graph of passable maze cells.
//
// Every edge weighs 1. The solver still follows Dijkstra's discipline: it
// repeatedly settles the pending vertex with the globally smallest tentative
// distance, drawn from a min-heap scoped to the single call, and relaxes its
// neighbors. It stops as soon as the target is settled or the heap runs dry.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the distance table plus the heap under lazy decrease-key.
//
// Example usage:
//
//	g := adjacency.Build(list)
//	d, err := dijkstra.ShortestDistance(g) // list[0] → list[len-1]
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if d == dijkstra.Infinity {
//	    fmt.Println("trapped")
//	}
//
// Tie-breaking among equal distances is by vertex index; with unit weights
// any order yields the same distances.
package dijkstra
