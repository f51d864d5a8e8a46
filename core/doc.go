// Package core provides the topology store of the WDM engine: an undirected,
// weighted, in-memory graph whose edges are identified by the unordered pair
// of their endpoints.
//
// The Graph G = (V,E) has a deliberately narrow shape:
//
//   - Undirected edges only; AddEdge(A,B,w) and AddEdge(B,A,w) address the same edge.
//   - One edge per unordered pair; re-adding an edge overwrites its weight.
//   - No self-loops; AddEdge(v,v,w) returns ErrInvalidEdge.
//   - Finite, non-negative float64 weights; NaN, ±Inf and negatives are rejected.
//   - Adjacency stored as adjacency[u][v] = weight, mirrored for v→u.
//   - One sync.RWMutex guards vertices, edges and adjacency.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error                              // O(1), idempotent
//	HasVertex(id string) bool                               // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, w float64) (EdgeKey, bool, error)  // O(1)
//	HasEdge(u, v string) bool                               // O(1)
//	Weight(u, v string) (float64, error)                    // O(1)
//
//	// Query
//	Neighbors(id string) ([]Neighbor, error)                // O(d·log d), sorted by ID
//	Vertices() []string                                     // O(V·log V)
//	Edges() []Edge                                          // O(E·log E)
//	PathWeight(path []string) (float64, error)              // O(len(path))
//	PathEdges(path []string) ([]EdgeKey, error)             // O(len(path))
//
//	// Maintenance
//	Clear()                                                 // O(1)
//
// Errors:
//
//	ErrEmptyVertexID    – zero-length vertex ID
//	ErrVertexNotFound   – missing vertex
//	ErrEdgeNotFound     – missing edge
//	ErrInvalidEdge      – self-loop, negative or non-numeric weight
//	ErrDisconnectedPath – consecutive path vertices without an edge
package core
