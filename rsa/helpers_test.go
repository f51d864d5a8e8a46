package rsa_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdm/rsa"
)

var pathABC = []string{"A", "B", "C"}

// newTriangleSession builds A-B(1), B-C(1), A-C(5) with default spectrum.
func newTriangleSession(t *testing.T, opts ...rsa.SessionOption) *rsa.Session {
	t.Helper()
	s := rsa.NewSession(opts...)
	require.NoError(t, s.AddEdge("A", "B", 1))
	require.NoError(t, s.AddEdge("B", "C", 1))
	require.NoError(t, s.AddEdge("A", "C", 5))

	return s
}

// grids captures every edge grid for byte-for-byte comparison.
func grids(t *testing.T, s *rsa.Session) map[string][][]bool {
	t.Helper()
	out := make(map[string][][]bool)
	for _, e := range s.Snapshot().Edges {
		g, err := s.Grid(e.Key.A, e.Key.B)
		require.NoError(t, err)
		out[e.Key.String()] = g
	}

	return out
}
