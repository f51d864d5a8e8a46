// Package astar provides heuristic-guided search between two vertices of a
// core.Graph.
//
// The frontier is ordered by priority = g(v) + h(v, dst). The default h,
// Heuristic, is a deterministic function of the two vertex IDs derived from
// their xxhash64 digests. It is not a distance estimate and is not
// admissible, so Search may return a path heavier than the minimum. Use the
// dijkstra package when the optimal path is required.
//
// Outcomes match dijkstra.ShortestPath: [src] for src == dst, an empty path
// for missing or unreachable endpoints, ErrNilGraph for a nil graph.
package astar
