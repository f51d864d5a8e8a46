// Package dijkstra_test contains unit tests for the uniform-cost search.
package dijkstra_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdm/core"
	"github.com/katalvlaran/wdm/dijkstra"
)

func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, _, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, _, err = g.AddEdge("A", "C", 5)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation and degenerate inputs.
// ------------------------------------------------------------------------

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath(nil, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestShortestPath_SameEndpoints(t *testing.T) {
	res, err := dijkstra.ShortestPath(triangle(t), "B", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, res.Path)
	require.Zero(t, res.Weight)
}

func TestShortestPath_MissingEndpoints(t *testing.T) {
	g := triangle(t)
	for _, pair := range [][2]string{{"X", "A"}, {"A", "X"}, {"X", "X"}} {
		res, err := dijkstra.ShortestPath(g, pair[0], pair[1])
		require.NoError(t, err)
		require.False(t, res.Found(), "%v", pair)
		require.Empty(t, res.Path)
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	g := triangle(t)
	_, _, err := g.AddEdge("D", "E", 1)
	require.NoError(t, err)
	res, err := dijkstra.ShortestPath(g, "A", "E")
	require.NoError(t, err)
	require.Empty(t, res.Path)
}

// ------------------------------------------------------------------------
// 2. Basic functionality.
// ------------------------------------------------------------------------

func TestShortestPath_Triangle(t *testing.T) {
	res, err := dijkstra.ShortestPath(triangle(t), "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
	require.Equal(t, 2.0, res.Weight)
}

func TestShortestPath_Undirected(t *testing.T) {
	res, err := dijkstra.ShortestPath(triangle(t), "C", "A")
	require.NoError(t, err)
	require.Equal(t, []string{"C", "B", "A"}, res.Path)
}

func TestShortestPath_Chain(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for i := 0; i+1 < len(ids); i++ {
		_, _, err := g.AddEdge(ids[i], ids[i+1], 1)
		require.NoError(t, err)
	}
	_, _, err := g.AddEdge("A", "E", 10)
	require.NoError(t, err)

	res, err := dijkstra.ShortestPath(g, "A", "E")
	require.NoError(t, err)
	require.Equal(t, ids, res.Path)
	require.Equal(t, 4.0, res.Weight)
}

func TestShortestPath_DeterministicTies(t *testing.T) {
	// Square with two equal-weight routes A-B-D and A-C-D.
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}} {
		_, _, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}
	first, err := dijkstra.ShortestPath(g, "A", "D")
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		res, err := dijkstra.ShortestPath(g, "A", "D")
		require.NoError(t, err)
		require.Equal(t, first.Path, res.Path)
	}
	require.Equal(t, []string{"A", "B", "D"}, first.Path, "neighbors are expanded in ID order")
}

func TestShortestPath_ZeroWeights(t *testing.T) {
	g := core.NewGraph()
	_, _, _ = g.AddEdge("A", "B", 0)
	_, _, _ = g.AddEdge("B", "C", 0)
	res, err := dijkstra.ShortestPath(g, "A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, res.Path)
	require.Zero(t, res.Weight)
}

// ------------------------------------------------------------------------
// 3. Options.
// ------------------------------------------------------------------------

func TestShortestPath_InfThreshold(t *testing.T) {
	g := core.NewGraph()
	_, _, _ = g.AddEdge("A", "B", 2)
	_, _, _ = g.AddEdge("B", "C", 4)
	_, _, _ = g.AddEdge("A", "C", 10)
	_, _, _ = g.AddEdge("C", "D", 7)

	res, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithInfEdgeThreshold(7))
	require.NoError(t, err)
	require.Empty(t, res.Path, "the only edge into D is a wall")

	res, err = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithInfEdgeThreshold(5))
	require.NoError(t, err)
	require.Equal(t, 6.0, res.Weight)
}

func TestShortestPath_MaxDistance(t *testing.T) {
	g := core.NewGraph()
	_, _, _ = g.AddEdge("A", "B", 1)
	_, _, _ = g.AddEdge("B", "C", 1)
	_, _, _ = g.AddEdge("C", "D", 1)

	res, err := dijkstra.ShortestPath(g, "A", "D", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Empty(t, res.Path)

	res, err = dijkstra.ShortestPath(g, "A", "C", dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, 2.0, res.Weight)
}

func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
	require.Panics(t, func() { dijkstra.WithInfEdgeThreshold(0) })
}

// ------------------------------------------------------------------------
// 4. Optimality against exhaustive staircase routes on a grid.
// ------------------------------------------------------------------------

func TestShortestPath_GridWeights(t *testing.T) {
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("%d,%d", r, c) }
	const n = 4
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_, _, _ = g.AddEdge(id(r, c), id(r, c+1), float64(1+(r+c)%3))
			}
			if r+1 < n {
				_, _, _ = g.AddEdge(id(r, c), id(r+1, c), float64(1+(r*c)%4))
			}
		}
	}
	res, err := dijkstra.ShortestPath(g, id(0, 0), id(n-1, n-1))
	require.NoError(t, err)
	w, err := g.PathWeight(res.Path)
	require.NoError(t, err)
	require.Equal(t, res.Weight, w)

	var walk func(r, c int, acc float64)
	walk = func(r, c int, acc float64) {
		if r == n-1 && c == n-1 {
			require.LessOrEqual(t, res.Weight, acc)
			return
		}
		if c+1 < n {
			ew, _ := g.Weight(id(r, c), id(r, c+1))
			walk(r, c+1, acc+ew)
		}
		if r+1 < n {
			ew, _ := g.Weight(id(r, c), id(r+1, c))
			walk(r+1, c, acc+ew)
		}
	}
	walk(0, 0, 0)
}
