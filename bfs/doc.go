// Package bfs provides breadth-first search over an adjacency.Graph,
// returning unweighted shortest-path depths and the visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from Source.
//   - BFS returns a Result with the visit Order and the Depth of every vertex
//     (Infinity for vertices never reached).
//   - ShortestDistance stops as soon as Target is dequeued.
//   - OnVisit hook may abort the search with an error.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Honors context cancellation, checked once per dequeued vertex.
//
// Why
//
//   - With unit weights BFS settles vertices in the same order of distance as
//     Dijkstra, so it yields identical move counts in O(V + E).
//
// Determinism
//
//	Neighbor lists of adjacency.Graph are sorted, so the visit order is fully
//	reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrEmptyGraph           if the graph has no vertices.
//   - ErrVertexNotFound       if Source or Target is not a vertex index.
//   - ErrOptionViolation      if invalid Option (e.g. negative MaxDepth).
//   - ErrNeighbors            if neighbor lookup fails for any vertex.
//   - Wrapped user-supplied hook errors from OnVisit, and ctx.Err().
package bfs
