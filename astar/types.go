package astar

import (
	"errors"

	"github.com/katalvlaran/wdm/internal/bestfirst"
)

// Sentinel errors returned by the heuristic-guided search.
var (
	// ErrNilGraph indicates that a nil graph was passed to Search.
	ErrNilGraph = bestfirst.ErrNilGraph

	// ErrNilHeuristic indicates WithHeuristic was given a nil function.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)

// Graph is the read-only topology view consumed by Search.
type Graph = bestfirst.Graph

// Result carries the path, its total weight and the number of expanded vertices.
type Result = bestfirst.Result

// HeuristicFunc estimates the remaining cost from v to dst.
type HeuristicFunc = bestfirst.Heuristic

// Options configures Search.
type Options struct {
	Heuristic HeuristicFunc
	Bounds    bestfirst.Options
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithHeuristic replaces the default heuristic. Panics on nil.
func WithHeuristic(h HeuristicFunc) Option {
	if h == nil {
		panic(ErrNilHeuristic.Error())
	}
	return func(o *Options) { o.Heuristic = h }
}

// WithMaxDistance stops expansion beyond max accumulated cost. Panics on
// negative values.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic("astar: MaxDistance must be non-negative")
	}
	return func(o *Options) { o.Bounds.MaxDistance = max }
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as impassable.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic("astar: InfEdgeThreshold must be positive")
	}
	return func(o *Options) { o.Bounds.InfEdgeThreshold = threshold }
}

// DefaultOptions returns the ID-hash heuristic with unbounded search.
func DefaultOptions() Options {
	return Options{Heuristic: Heuristic, Bounds: bestfirst.DefaultOptions()}
}
