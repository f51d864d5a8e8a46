package rsa

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wdm/bfs"
	"github.com/katalvlaran/wdm/core"
)

// Reach is one node found by Reachable.
type Reach struct {
	ID   string
	Hops int
	// Path is a fewest-hop path from the source, source first.
	Path []string
}

// ReachQuery bounds a Reachable walk.
type ReachQuery struct {
	// MaxHops limits the hop count; 0 means unbounded.
	MaxHops int
	// Slots, when > 0, admits only links with at least Slots free slots on
	// Wavelength.
	Slots      int
	Wavelength int
}

// Reachable lists the nodes reachable from src within q, in breadth-first
// order, excluding src itself. Walking stops with ctx.Err() on cancellation.
func (s *Session) Reachable(ctx context.Context, src string, q ReachQuery) ([]Reach, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if q.Slots > 0 {
		if err := s.table.CheckWavelength(q.Wavelength); err != nil {
			return nil, err
		}
	}

	var found []Reach
	opts := []bfs.Option{
		bfs.WithContext(ctx),
		bfs.WithMaxDepth(q.MaxHops),
		bfs.WithOnVisit(func(id string, depth int) error {
			if depth > 0 {
				found = append(found, Reach{ID: id, Hops: depth})
			}
			return nil
		}),
	}
	if q.Slots > 0 {
		opts = append(opts, bfs.WithFilterNeighbor(func(curr, next string) bool {
			free, err := s.table.FreeSlots(core.NewEdgeKey(curr, next), q.Wavelength)
			return err == nil && len(free) >= q.Slots
		}))
	}

	res, err := bfs.BFS(s.graph, src, opts...)
	if err != nil {
		return nil, fmt.Errorf("rsa: reachable from %q: %w", src, err)
	}
	for i := range found {
		if found[i].Path, err = res.PathTo(found[i].ID); err != nil {
			return nil, err
		}
	}
	s.log.WithFields(logrus.Fields{"source": src, "max_hops": q.MaxHops, "reached": len(found)}).Debug("reachability walked")

	return found, nil
}
