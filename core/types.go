// Package core defines the Graph, Edge and EdgeKey types of the topology store.
//
// Errors:
//
//	ErrEmptyVertexID    - vertex ID is the empty string.
//	ErrVertexNotFound   - requested vertex does not exist.
//	ErrEdgeNotFound     - requested edge does not exist.
//	ErrInvalidEdge      - self-loop, or weight negative / NaN / infinite.
//	ErrDisconnectedPath - a path step has no backing edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidEdge indicates a self-loop or an unusable weight.
	ErrInvalidEdge = errors.New("core: invalid edge")

	// ErrDisconnectedPath indicates two consecutive path vertices share no edge.
	ErrDisconnectedPath = errors.New("core: disconnected path")
)

// EdgeKey is the identity of an undirected edge: the unordered pair of its
// endpoints stored with A < B.
type EdgeKey struct {
	A string
	B string
}

// NewEdgeKey returns the canonical key for the pair (u, v).
func NewEdgeKey(u, v string) EdgeKey {
	if v < u {
		u, v = v, u
	}

	return EdgeKey{A: u, B: v}
}

// String renders the key as "A-B".
func (k EdgeKey) String() string { return k.A + "-" + k.B }

// Less orders keys by A, then B.
func (k EdgeKey) Less(o EdgeKey) bool {
	if k.A != o.A {
		return k.A < o.A
	}

	return k.B < o.B
}

// Edge is a read-only view of one stored edge.
type Edge struct {
	Key    EdgeKey
	Weight float64
}

// Neighbor is one adjacency entry of a vertex.
type Neighbor struct {
	ID     string
	Weight float64
}

// Graph is the undirected weighted topology store.
//
// mu protects vertices, edges and adjacency; all exported methods lock it.
type Graph struct {
	mu sync.RWMutex

	vertices map[string]struct{}
	edges    map[EdgeKey]float64

	// adjacency[u][v] = weight, mirrored as adjacency[v][u].
	adjacency map[string]map[string]float64
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		edges:     make(map[EdgeKey]float64),
		adjacency: make(map[string]map[string]float64),
	}
}
