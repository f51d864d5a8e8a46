package dijkstra

import (
	"errors"

	"github.com/katalvlaran/wdm/internal/bestfirst"
)

// Sentinel errors returned by the uniform-cost search.
var (
	// ErrNilGraph indicates that a nil graph was passed to ShortestPath.
	ErrNilGraph = bestfirst.ErrNilGraph

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is the read-only topology view consumed by ShortestPath.
type Graph = bestfirst.Graph

// Result carries the path, its total weight and the number of expanded vertices.
type Result = bestfirst.Result

// Options configures ShortestPath.
type Options = bestfirst.Options

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// WithMaxDistance sets a cap on explored cost. Panics on negative values.
func WithMaxDistance(max float64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold marks edges with weight ≥ threshold as impassable.
// Panics on zero or negative values.
func WithInfEdgeThreshold(threshold float64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

// DefaultOptions returns unbounded search options.
func DefaultOptions() Options { return bestfirst.DefaultOptions() }
