package core

import "fmt"

// PathWeight sums the edge weights along consecutive pairs of path.
// A path of zero or one vertex weighs 0. Any step without an edge yields
// ErrDisconnectedPath naming the first missing pair.
func (g *Graph) PathWeight(path []string) (float64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var total float64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.edges[NewEdgeKey(path[i], path[i+1])]
		if !ok {
			return 0, fmt.Errorf("%w: no edge %s-%s", ErrDisconnectedPath, path[i], path[i+1])
		}
		total += w
	}

	return total, nil
}

// PathEdges returns the canonical keys of the edges traversed by path, in
// path order. Fails with ErrDisconnectedPath like PathWeight.
func (g *Graph) PathEdges(path []string) ([]EdgeKey, error) {
	if len(path) < 2 {
		return nil, nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	keys := make([]EdgeKey, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		k := NewEdgeKey(path[i], path[i+1])
		if _, ok := g.edges[k]; !ok {
			return nil, fmt.Errorf("%w: no edge %s-%s", ErrDisconnectedPath, path[i], path[i+1])
		}
		keys = append(keys, k)
	}

	return keys, nil
}
