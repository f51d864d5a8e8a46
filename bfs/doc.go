// Package bfs provides breadth-first search over an undirected topology,
// returning hop distances, parent links and visit order, plus a connected
// component split built on the same walk.
//
// Neighbors are expanded in the order the graph returns them (sorted by ID
// for core.Graph), so visit order is reproducible.
//
// Options:
//   - WithContext: cancellation, checked once per dequeue.
//   - WithMaxDepth: stop expanding past d hops (0 means no limit).
//   - WithFilterNeighbor: skip individual links.
//   - WithOnVisit: callback per visited vertex; an error aborts the walk.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
