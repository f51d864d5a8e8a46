package rsa_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdm/bfs"
	"github.com/katalvlaran/wdm/metrics"
	"github.com/katalvlaran/wdm/rsa"
	"github.com/katalvlaran/wdm/spectrum"
)

// ------------------------------------------------------------------------
// Topology.
// ------------------------------------------------------------------------

func TestSession_AddEdgeInvalid(t *testing.T) {
	s := rsa.NewSession()
	require.ErrorIs(t, s.AddEdge("A", "A", 1), rsa.ErrInvalidEdge)
	require.ErrorIs(t, s.AddEdge("A", "B", -3), rsa.ErrInvalidEdge)
	require.Empty(t, s.Snapshot().Edges)
}

func TestSession_AddNodeIdempotent(t *testing.T) {
	s := rsa.NewSession()
	require.NoError(t, s.AddNode("A"))
	require.NoError(t, s.AddNode("A"))
	require.Equal(t, []string{"A"}, s.Snapshot().Nodes)
}

func TestSession_ReAddEdgeKeepsOccupancy(t *testing.T) {
	s := newTriangleSession(t)
	_, err := s.Allocate([]string{"A", "B"}, 10, 0, false)
	require.NoError(t, err)

	require.NoError(t, s.AddEdge("B", "A", 7))
	n, _, err := s.Occupancy("A", "B")
	require.NoError(t, err)
	require.Equal(t, 10, n)

	w, err := s.PathWeight([]string{"A", "B"})
	require.NoError(t, err)
	require.Equal(t, 7.0, w)
}

func TestSession_PathWeightDisconnected(t *testing.T) {
	s := newTriangleSession(t)
	require.NoError(t, s.AddNode("D"))
	_, err := s.PathWeight([]string{"A", "D"})
	require.ErrorIs(t, err, rsa.ErrDisconnectedPath)
}

// ------------------------------------------------------------------------
// Routing.
// ------------------------------------------------------------------------

func TestSession_ComputePathScenario1(t *testing.T) {
	s := newTriangleSession(t)
	r, err := s.ComputePath("A", "C", rsa.UniformCost)
	require.NoError(t, err)
	require.Equal(t, pathABC, r.Path)
	require.Equal(t, 2.0, r.Weight)
	require.Equal(t, rsa.UniformCost, r.Strategy)
}

func TestSession_ComputePathNotFound(t *testing.T) {
	s := newTriangleSession(t)
	for _, st := range rsa.Strategies {
		r, err := s.ComputePath("A", "Z", st)
		require.NoError(t, err)
		require.False(t, r.Found())

		r, err = s.ComputePath("C", "C", st)
		require.NoError(t, err)
		require.Equal(t, []string{"C"}, r.Path)
		require.Zero(t, r.Weight)
	}

	_, err := s.ComputePath("A", "C", rsa.Strategy(42))
	require.ErrorIs(t, err, rsa.ErrUnknownStrategy)
}

func TestSession_UniformCostNoHeavierThanHeuristic(t *testing.T) {
	s := rsa.NewSession()
	edges := []struct {
		u, v string
		w    float64
	}{
		{"A", "B", 4}, {"A", "C", 1}, {"C", "B", 1}, {"B", "D", 1},
		{"C", "E", 7}, {"D", "E", 1}, {"E", "F", 2}, {"D", "F", 6},
	}
	for _, e := range edges {
		require.NoError(t, s.AddEdge(e.u, e.v, e.w))
	}
	nodes := s.Snapshot().Nodes
	for _, src := range nodes {
		for _, dst := range nodes {
			u, err := s.ComputePath(src, dst, rsa.UniformCost)
			require.NoError(t, err)
			h, err := s.ComputePath(src, dst, rsa.Heuristic)
			require.NoError(t, err)
			require.LessOrEqual(t, u.Weight, h.Weight, "%s->%s", src, dst)
		}
	}
}

func TestKind(t *testing.T) {
	require.Equal(t, "none", rsa.KindNone.String())
	require.Equal(t, "contiguous", rsa.KindContiguous.String())
	require.Equal(t, "non-contiguous", rsa.KindNonContiguous.String())
	require.False(t, rsa.Allocation{}.Success(), "zero Allocation is KindNone")
	require.True(t, rsa.Allocation{Kind: rsa.KindNonContiguous}.Success())
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]rsa.Strategy{
		"dijkstra": rsa.UniformCost, "Uniform-Cost": rsa.UniformCost,
		"astar": rsa.Heuristic, "A*": rsa.Heuristic, "heuristic": rsa.Heuristic,
	} {
		got, err := rsa.ParseStrategy(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}
	_, err := rsa.ParseStrategy("bellman-ford")
	require.ErrorIs(t, err, rsa.ErrUnknownStrategy)
	require.Equal(t, "heuristic", rsa.Heuristic.String())
}

// ------------------------------------------------------------------------
// Allocation.
// ------------------------------------------------------------------------

func TestSession_AllocateScenario2(t *testing.T) {
	s := newTriangleSession(t)

	a, err := s.Allocate(pathABC, 80, 0, false)
	require.NoError(t, err)
	require.Equal(t, rsa.KindContiguous, a.Kind)
	require.Len(t, a.Slots, 80)
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}} {
		g, err := s.Grid(e[0], e[1])
		require.NoError(t, err)
		for slot, used := range g[0] {
			require.True(t, used, "%v slot %d", e, slot)
		}
	}

	a, err = s.Allocate(pathABC, 1, 0, false)
	require.ErrorIs(t, err, rsa.ErrSpectrumUnavailable)
	require.Equal(t, rsa.KindNone, a.Kind)

	a, err = s.Allocate(pathABC, 1, 1, false)
	require.NoError(t, err)
	require.Equal(t, rsa.KindContiguous, a.Kind)
	require.Equal(t, []int{0}, a.Slots)
}

func TestSession_AllocateRejected(t *testing.T) {
	s := newTriangleSession(t)
	before := grids(t, s)

	for _, tc := range []struct {
		name  string
		path  []string
		slots int
		w     int
	}{
		{"empty path", nil, 1, 0},
		{"single node", []string{"A"}, 1, 0},
		{"zero slots", pathABC, 0, 0},
		{"negative slots", pathABC, -2, 0},
		{"bad wavelength", pathABC, 1, 4},
	} {
		a, err := s.Allocate(tc.path, tc.slots, tc.w, true)
		require.ErrorIs(t, err, rsa.ErrAllocationRejected, tc.name)
		require.False(t, a.Success(), tc.name)
	}

	_, err := s.Allocate([]string{"A", "Z"}, 1, 0, false)
	require.ErrorIs(t, err, rsa.ErrAllocationRejected)
	require.ErrorIs(t, err, rsa.ErrDisconnectedPath)

	require.Equal(t, before, grids(t, s))
}

func TestSession_Exclusivity(t *testing.T) {
	s := newTriangleSession(t)
	first, err := s.Allocate(pathABC, 30, 2, false)
	require.NoError(t, err)
	require.Equal(t, 0, first.Slots[0])

	// A 60-slot block must overlap [0,30) somewhere in an 80-slot row.
	_, err = s.Allocate([]string{"B", "C"}, 60, 2, false)
	require.ErrorIs(t, err, rsa.ErrSpectrumUnavailable)

	// With fallback allowed the overlapping indices are never reused.
	second, err := s.Allocate([]string{"A", "B"}, 40, 2, true)
	require.NoError(t, err)
	for _, slot := range second.Slots {
		require.GreaterOrEqual(t, slot, 30)
	}
}

func TestSession_RoundTrip(t *testing.T) {
	s := newTriangleSession(t)
	first, err := s.Allocate(pathABC, 25, 3, false)
	require.NoError(t, err)

	require.NoError(t, s.Free(pathABC, 3))
	for _, e := range s.Snapshot().Edges {
		require.Zero(t, e.Occupied, e.Key.String())
	}

	again, err := s.Allocate(pathABC, 25, 3, false)
	require.NoError(t, err)
	require.Equal(t, first, again)
}

func TestSession_FreeIsCoarse(t *testing.T) {
	s := newTriangleSession(t)
	_, err := s.Allocate([]string{"A", "B"}, 5, 0, false)
	require.NoError(t, err)
	_, err = s.Allocate(pathABC, 5, 0, false)
	require.NoError(t, err)
	_, err = s.Allocate([]string{"A", "B"}, 5, 1, false)
	require.NoError(t, err)

	// Releasing A-B-C clears wavelength 0 on both of its edges.
	require.NoError(t, s.Free(pathABC, 0))
	n, _, err := s.Occupancy("A", "B")
	require.NoError(t, err)
	require.Equal(t, 5, n, "wavelength 1 survives")

	require.NoError(t, s.Free([]string{"A"}, 0))
	require.ErrorIs(t, s.Free([]string{"A", "Z"}, 0), rsa.ErrDisconnectedPath)
	require.ErrorIs(t, s.Free(pathABC, 9), spectrum.ErrWavelengthRange)
}

func TestSession_FreeRoute(t *testing.T) {
	s := newTriangleSession(t)
	_, err := s.Allocate(pathABC, 10, 0, false)
	require.NoError(t, err)

	r, err := s.FreeRoute("A", "C", 0)
	require.NoError(t, err)
	require.Equal(t, pathABC, r.Path)
	n, _, err := s.Occupancy("B", "C")
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = s.FreeRoute("A", "Z", 0)
	require.ErrorIs(t, err, rsa.ErrNoRoute)
}

func TestSession_Reset(t *testing.T) {
	reg := metrics.NewRegistry()
	s := newTriangleSession(t, rsa.WithMetrics(reg))
	_, err := s.Allocate(pathABC, 10, 0, false)
	require.NoError(t, err)

	s.Reset()
	require.Equal(t, 1.0, testutil.ToFloat64(reg.ResetsTotal))
	require.Zero(t, testutil.ToFloat64(reg.TopologyNodes))
	snap := s.Snapshot()
	require.Empty(t, snap.Nodes)
	require.Empty(t, snap.Edges)
	_, _, err = s.Occupancy("A", "B")
	require.ErrorIs(t, err, spectrum.ErrUnknownEdge)

	// Re-created edges start free.
	require.NoError(t, s.AddEdge("A", "B", 1))
	n, lvl, err := s.Occupancy("A", "B")
	require.NoError(t, err)
	require.Zero(t, n)
	require.Equal(t, spectrum.LevelFree, lvl)
}

// ------------------------------------------------------------------------
// Request glue.
// ------------------------------------------------------------------------

func TestSession_Serve(t *testing.T) {
	s := newTriangleSession(t)
	resp := s.Serve(rsa.Request{Source: "A", Destination: "C", Slots: 4, Wavelength: 0})
	require.NoError(t, resp.Err)
	require.NotEmpty(t, resp.Request.ID)
	require.Equal(t, pathABC, resp.Route.Path)
	require.Equal(t, []int{0, 1, 2, 3}, resp.Allocation.Slots)

	resp = s.Serve(rsa.Request{ID: "r2", Source: "A", Destination: "Z", Slots: 4})
	require.ErrorIs(t, resp.Err, rsa.ErrNoRoute)
	require.Equal(t, "r2", resp.Request.ID)

	resp = s.Serve(rsa.Request{Source: "A", Destination: "A", Slots: 4})
	require.ErrorIs(t, resp.Err, rsa.ErrAllocationRejected, "single-node route cannot carry spectrum")
}

func TestSession_Compare(t *testing.T) {
	s := newTriangleSession(t)
	out := s.Compare("A", "C", 50, 0, false)
	require.Len(t, out, 2)
	require.Equal(t, rsa.UniformCost, out[0].Route.Strategy)
	require.Equal(t, rsa.Heuristic, out[1].Route.Strategy)
	require.NoError(t, out[0].Err)
	require.Equal(t, rsa.KindContiguous, out[0].Allocation.Kind)
	require.LessOrEqual(t, out[0].Route.Weight, out[1].Route.Weight)

	// Whatever route the heuristic took, 50 more slots cannot fit on a
	// shared edge; on a disjoint route they can.
	if out[1].Err == nil {
		require.NotEqual(t, out[0].Route.Path, out[1].Route.Path)
	} else {
		require.ErrorIs(t, out[1].Err, rsa.ErrSpectrumUnavailable)
	}
}

func TestSession_Snapshot(t *testing.T) {
	s := newTriangleSession(t, rsa.WithSpectrum(2, 10))
	_, err := s.Allocate(pathABC, 10, 0, false)
	require.NoError(t, err)
	_, err = s.Allocate([]string{"A", "B"}, 10, 1, false)
	require.NoError(t, err)

	snap := s.Snapshot()
	require.Equal(t, []string{"A", "B", "C"}, snap.Nodes)
	require.Equal(t, 20, snap.Capacity)
	require.Len(t, snap.Edges, 3)

	byKey := map[string]rsa.EdgeState{}
	for _, e := range snap.Edges {
		byKey[e.Key.String()] = e
	}
	require.Equal(t, spectrum.LevelFull, byKey["A-B"].Level)
	require.Equal(t, []int{10, 10}, byKey["A-B"].PerWavelength)
	require.Equal(t, spectrum.LevelHeavy, byKey["B-C"].Level)
	require.Equal(t, spectrum.LevelFree, byKey["A-C"].Level)
	require.Equal(t, 5.0, byKey["A-C"].Weight)

	require.InDelta(t, 0.5, snap.Utilization.Mean, 1e-9)
	require.Equal(t, 1.0, snap.Utilization.Max)
	require.InDelta(t, 0.5, snap.Utilization.StdDev, 1e-9)
	require.Equal(t, [][]string{{"A", "B", "C"}}, snap.Components)

	require.NoError(t, s.AddNode("Z"))
	require.Len(t, s.Snapshot().Components, 2, "an isolated node is its own island")
}

func TestSession_Reachable(t *testing.T) {
	s := newTriangleSession(t)
	require.NoError(t, s.AddEdge("C", "D", 1))
	ctx := context.Background()

	got, err := s.Reachable(ctx, "A", rsa.ReachQuery{MaxHops: 1})
	require.NoError(t, err)
	require.Equal(t, []rsa.Reach{
		{ID: "B", Hops: 1, Path: []string{"A", "B"}},
		{ID: "C", Hops: 1, Path: []string{"A", "C"}},
	}, got)

	got, err = s.Reachable(ctx, "A", rsa.ReachQuery{})
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, rsa.Reach{ID: "D", Hops: 2, Path: []string{"A", "C", "D"}}, got[2])

	// A full A-C wavelength forces the walk around through B.
	_, err = s.Allocate([]string{"A", "C"}, s.Slots(), 0, false)
	require.NoError(t, err)
	got, err = s.Reachable(ctx, "A", rsa.ReachQuery{Slots: 1, Wavelength: 0})
	require.NoError(t, err)
	require.Equal(t, []rsa.Reach{
		{ID: "B", Hops: 1, Path: []string{"A", "B"}},
		{ID: "C", Hops: 2, Path: []string{"A", "B", "C"}},
		{ID: "D", Hops: 3, Path: []string{"A", "B", "C", "D"}},
	}, got)
	got, err = s.Reachable(ctx, "A", rsa.ReachQuery{Slots: 1, Wavelength: 1})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, got[1].Path, "other wavelengths are unaffected")
}

func TestSession_ReachableErrors(t *testing.T) {
	s := newTriangleSession(t)
	ctx := context.Background()

	_, err := s.Reachable(ctx, "Q", rsa.ReachQuery{})
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = s.Reachable(ctx, "A", rsa.ReachQuery{MaxHops: -1})
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
	_, err = s.Reachable(ctx, "A", rsa.ReachQuery{Slots: 1, Wavelength: s.Wavelengths()})
	require.ErrorIs(t, err, spectrum.ErrWavelengthRange)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = s.Reachable(cancelled, "A", rsa.ReachQuery{})
	require.ErrorIs(t, err, context.Canceled)
}
