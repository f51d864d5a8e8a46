// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by EdgeKey (A, then B).
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddEdge inserts the undirected edge {u, v} with weight w, creating missing
// endpoints. If the edge already exists only its weight is replaced and
// created is false.
//
// Steps:
//  1. Validate IDs, reject self-loops and non-finite or negative weights.
//  2. Lock mu, ensure both vertices.
//  3. Store weight under the canonical key and mirror adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string, w float64) (key EdgeKey, created bool, err error) {
	if u == "" || v == "" {
		return EdgeKey{}, false, ErrEmptyVertexID
	}
	if u == v {
		return EdgeKey{}, false, fmt.Errorf("%w: self-loop on %q", ErrInvalidEdge, u)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
		return EdgeKey{}, false, fmt.Errorf("%w: %s-%s weight=%v", ErrInvalidEdge, u, v, w)
	}

	key = NewEdgeKey(u, v)

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(u)
	g.addVertexLocked(v)

	_, exists := g.edges[key]
	g.edges[key] = w
	g.adjacency[u][v] = w
	g.adjacency[v][u] = w

	return key, !exists, nil
}

// HasEdge reports whether an edge joins u and v, in either order.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.edges[NewEdgeKey(u, v)]

	return ok
}

// Weight returns the weight of edge {u, v} or ErrEdgeNotFound.
func (g *Graph) Weight(u, v string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	w, ok := g.edges[NewEdgeKey(u, v)]
	if !ok {
		return 0, ErrEdgeNotFound
	}

	return w, nil
}

// Edges returns all edges sorted by key.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, len(g.edges))
	for k, w := range g.edges {
		out = append(out, Edge{Key: k, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key.Less(out[j].Key) })

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
