package rsa

import (
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/wdm/bfs"
	"github.com/katalvlaran/wdm/core"
	"github.com/katalvlaran/wdm/spectrum"
)

// EdgeState is the display view of one edge.
type EdgeState struct {
	Key           core.EdgeKey
	Weight        float64
	Occupied      int
	PerWavelength []int
	Level         spectrum.Level
}

// Utilization is the fraction of capacity used, averaged over edges.
type Utilization struct {
	Mean   float64
	StdDev float64
	Max    float64
}

// Snapshot is a read-only copy of the session for presentation layers.
type Snapshot struct {
	Nodes       []string
	Edges       []EdgeState
	Wavelengths int
	Slots       int
	Capacity    int
	Utilization Utilization
	// Components lists the connected islands of the topology.
	Components [][]string
}

// Snapshot captures nodes, edges and per-edge occupancy. Edges are sorted by
// key, nodes by ID.
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	capacity := s.table.Capacity()
	snap := Snapshot{
		Nodes:       s.graph.Vertices(),
		Wavelengths: s.table.Wavelengths(),
		Slots:       s.table.Slots(),
		Capacity:    capacity,
	}
	edges := s.graph.Edges()
	snap.Edges = make([]EdgeState, 0, len(edges))
	ratios := make([]float64, 0, len(edges))
	for _, e := range edges {
		st := EdgeState{Key: e.Key, Weight: e.Weight}
		if grid, err := s.table.Grid(e.Key); err == nil {
			st.PerWavelength = make([]int, len(grid))
			for w, row := range grid {
				for _, used := range row {
					if used {
						st.PerWavelength[w]++
					}
				}
				st.Occupied += st.PerWavelength[w]
			}
		}
		st.Level = spectrum.Classify(st.Occupied, capacity)
		snap.Edges = append(snap.Edges, st)
		ratios = append(ratios, float64(st.Occupied)/float64(capacity))
	}
	snap.Utilization = utilization(ratios)
	if comps, err := bfs.Components(s.graph); err == nil {
		snap.Components = comps
	}

	return snap
}

func utilization(ratios []float64) Utilization {
	var u Utilization
	if len(ratios) == 0 {
		return u
	}
	for _, r := range ratios {
		if r > u.Max {
			u.Max = r
		}
	}
	if len(ratios) == 1 {
		u.Mean = ratios[0]
		return u
	}
	u.Mean, u.StdDev = stat.MeanStdDev(ratios, nil)

	return u
}
