// Package bestfirst is the priority-frontier search shared by the
// uniform-cost and heuristic-guided path strategies.
//
// A search expands vertices in order of priority = g(v) + h(v), where g is
// the accumulated edge weight from the source. With h ≡ 0 this is Dijkstra's
// algorithm and the result is a minimum-weight path. With any other h the
// result is a valid path but carries no optimality guarantee.
package bestfirst

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/wdm/core"
)

// ErrNilGraph indicates a nil graph was passed to Run.
var ErrNilGraph = errors.New("bestfirst: graph is nil")

// Graph is the read-only view a search needs.
type Graph interface {
	HasVertex(id string) bool
	Neighbors(id string) ([]core.Neighbor, error)
}

// Heuristic estimates the remaining cost from v to the destination.
type Heuristic func(v, dst string) float64

// Zero is the heuristic of uniform-cost search.
func Zero(string, string) float64 { return 0 }

// Options bounds a search.
//
// MaxDistance      – edges that would push g beyond this value are not relaxed.
// InfEdgeThreshold – edges with weight ≥ this value are impassable.
type Options struct {
	MaxDistance      float64
	InfEdgeThreshold float64
}

// DefaultOptions returns unbounded options.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1), InfEdgeThreshold: math.Inf(1)}
}

// Result is the outcome of a search.
//
// Path is empty when no route exists (or an endpoint is missing), holds one
// vertex when src == dst, and otherwise lists vertices from src to dst.
type Result struct {
	Path     []string
	Weight   float64
	Expanded int
}

// Found reports whether a path was produced.
func (r Result) Found() bool { return len(r.Path) > 0 }

// Run searches g from src to dst, expanding by g+h.
// Missing endpoints and unreachable destinations yield an empty Result and a
// nil error; only a nil graph or a failing neighbor lookup is an error.
func Run(g Graph, src, dst string, h Heuristic, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if h == nil {
		h = Zero
	}
	if !g.HasVertex(src) || !g.HasVertex(dst) {
		return Result{}, nil
	}
	if src == dst {
		return Result{Path: []string{src}}, nil
	}

	r := &runner{
		g:    g,
		h:    h,
		dst:  dst,
		opts: opts,
		dist: map[string]float64{src: 0},
		prev: make(map[string]string),
	}
	r.push(src, 0)

	reached, err := r.process()
	if err != nil {
		return Result{}, err
	}
	if !reached {
		return Result{Expanded: r.expanded}, nil
	}

	return Result{
		Path:     r.path(src),
		Weight:   r.dist[dst],
		Expanded: r.expanded,
	}, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g        Graph
	h        Heuristic
	dst      string
	opts     Options
	dist     map[string]float64 // best known g per vertex
	prev     map[string]string  // predecessor on the best known route
	pq       frontier
	seq      uint64
	expanded int
}

func (r *runner) push(id string, g float64) {
	heap.Push(&r.pq, &item{id: id, g: g, priority: g + r.h(id, r.dst), seq: r.seq})
	r.seq++
}

// process pops until dst is popped (true) or the frontier drains (false).
func (r *runner) process() (bool, error) {
	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item)

		// Stale entry: a cheaper route to it.id was pushed later.
		if it.g > r.dist[it.id] {
			continue
		}
		if it.id == r.dst {
			return true, nil
		}
		r.expanded++
		if err := r.relax(it.id, it.g); err != nil {
			return false, err
		}
	}

	return false, nil
}

// relax improves neighbors of u reachable with accumulated cost gu.
func (r *runner) relax(u string, gu float64) error {
	nbs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("bestfirst: neighbors of %q: %w", u, err)
	}
	for _, nb := range nbs {
		if nb.Weight >= r.opts.InfEdgeThreshold {
			continue
		}
		nd := gu + nb.Weight
		if nd > r.opts.MaxDistance {
			continue
		}
		if best, seen := r.dist[nb.ID]; seen && nd >= best {
			continue
		}
		r.dist[nb.ID] = nd
		r.prev[nb.ID] = u
		r.push(nb.ID, nd)
	}

	return nil
}

// path walks predecessors back from dst to src.
func (r *runner) path(src string) []string {
	var rev []string
	for v := r.dst; ; v = r.prev[v] {
		rev = append(rev, v)
		if v == src {
			break
		}
	}
	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = v
	}

	return out
}
