// Package rsa is the routing and spectrum assignment engine: a Session owns
// one topology (core.Graph) and its spectrum table (spectrum.Table), computes
// routes with a selectable strategy and reserves slots along them.
//
// Data flow:
//
//	AddNode / AddEdge          → topology (+ table entry on first insert of an edge)
//	ComputePath(src, dst, s)   → Route (empty Path when no route exists)
//	Allocate(path, k, w, nc)   → Allocation{Kind, Slots} or error
//	Free(path, w)              → clears wavelength w on every edge of path
//	Reachable(ctx, src, q)     → nodes within q.MaxHops over links with q.Slots free
//	Snapshot()                 → nodes, edges, weights, occupancy, congestion level
//
// Allocation policy (Allocate):
//
//  1. Reject paths with fewer than two nodes and non-positive slot counts.
//  2. First-fit contiguous: the lowest start s such that [s, s+k) is free on
//     wavelength w of every edge of the path.
//  3. Optional non-contiguous fallback: the k lowest indices of the
//     intersection of free slots across all edges.
//  4. Nothing is written unless a complete placement was found.
//
// Release is coarse: Free clears the whole wavelength on each edge of the
// path, whoever reserved it. There are no allocation identifiers.
//
// Concurrency: a Session serializes mutations with a write lock and lets
// read-only queries share a read lock.
package rsa
