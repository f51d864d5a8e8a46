package astar

import "github.com/cespare/xxhash/v2"

// heuristicModulus bounds Heuristic to [0, heuristicModulus).
const heuristicModulus = 10

// Heuristic returns |xxh64(u) − xxh64(v)| mod 10.
//
// It depends only on the two IDs, so it is stable across calls, processes
// and platforms. It has no relation to edge weights and is not admissible.
func Heuristic(u, v string) float64 {
	hu, hv := xxhash.Sum64String(u), xxhash.Sum64String(v)
	d := hu - hv
	if hv > hu {
		d = hv - hu
	}

	return float64(d % heuristicModulus)
}
