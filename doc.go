// Package wdm is an in-memory routing and spectrum assignment engine for
// wavelength-division-multiplexed optical networks.
//
// A topology of nodes and weighted undirected links carries, per link, a
// grid of wavelengths × frequency slots. A connection request picks a route
// (uniform-cost or heuristic-guided search) and reserves the same slots on
// one wavelength along every link of that route.
//
// Layout:
//
//	core/        thread-safe topology store, canonical EdgeKey
//	spectrum/    per-link occupancy grids and congestion levels
//	dijkstra/    uniform-cost shortest path
//	astar/       best-first search with an ID-hash heuristic
//	bfs/         hop counts and connected islands
//	rsa/         allocation engine and the locked Session that serves requests
//	builder/     deterministic ring/mesh/grid topology generators
//	scenario/    YAML topology + request files
//	config/      TOML run configuration and logger setup
//	metrics/     Prometheus collectors
//	cmd/rsasim   command-line host
//
// Quick example:
//
//	    A──1──B
//	     \    │
//	      5   1
//	       \  │
//	         C
//
//	s := rsa.NewSession()
//	_ = s.AddEdge("A", "B", 1)
//	_ = s.AddEdge("B", "C", 1)
//	_ = s.AddEdge("A", "C", 5)
//	resp := s.Serve(rsa.Request{Source: "A", Destination: "C", Slots: 10})
//	// resp.Route.Path == [A B C], resp.Allocation.Slots == [0 … 9]
package wdm
