package astar

import "github.com/katalvlaran/wdm/internal/bestfirst"

// Search returns a path from src to dst in g guided by the configured
// heuristic. The path is valid but not necessarily minimum-weight.
func Search(g Graph, src, dst string, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return bestfirst.Run(g, src, dst, cfg.Heuristic, cfg.Bounds)
}
