package core_test

import (
	"testing"

	"github.com/katalvlaran/wdm/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
)

// Common weights used across core tests (avoid magic numbers in test bodies).
const (
	Weight0 = 0.0
	Weight1 = 1.0
	Weight2 = 2.0
	Weight5 = 5.0
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// newTriangle builds A-B(1), B-C(1), A-C(5).
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		u, v string
		w    float64
	}{
		{VertexA, VertexB, Weight1},
		{VertexB, VertexC, Weight1},
		{VertexA, VertexC, Weight5},
	} {
		if _, _, err := g.AddEdge(e.u, e.v, e.w); err != nil {
			t.Fatalf("AddEdge(%s,%s): %v", e.u, e.v, err)
		}
	}

	return g
}
