package dijkstra

import "github.com/katalvlaran/wdm/internal/bestfirst"

// ShortestPath returns a minimum-weight path from src to dst in g.
//
// A missing endpoint or an unreachable destination is reported as an empty
// Result with a nil error; the only error is ErrNilGraph.
func ShortestPath(g Graph, src, dst string, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return bestfirst.Run(g, src, dst, bestfirst.Zero, cfg)
}
