// Package dijkstra provides uniform-cost search between two vertices of a
// core.Graph.
//
// Overview:
//
//   - ShortestPath expands vertices in order of accumulated weight using a
//     binary min-heap, stops as soon as the destination is popped, and
//     rebuilds the route from predecessor links.
//   - The returned path is a minimum-weight path. Callers that need a
//     guaranteed-optimal route must use this package rather than astar.
//   - Ties in accumulated weight are broken by heap insertion order, so a
//     fixed topology always yields the same path.
//
// Outcomes:
//
//   - src == dst (present)           → [src], weight 0.
//   - src or dst absent, unreachable → empty path, nil error.
//   - nil graph                      → ErrNilGraph.
//
// Options:
//
//   - WithMaxDistance(x): do not relax edges that push the cost beyond x (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are impassable (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
package dijkstra
