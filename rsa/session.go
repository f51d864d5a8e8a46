package rsa

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/wdm/astar"
	"github.com/katalvlaran/wdm/core"
	"github.com/katalvlaran/wdm/dijkstra"
	"github.com/katalvlaran/wdm/metrics"
	"github.com/katalvlaran/wdm/spectrum"
)

// Session owns one topology and its spectrum table.
//
// mu serializes AddNode, AddEdge, Allocate, Free, Reset and Serve; read-only
// queries share the read lock.
type Session struct {
	mu sync.RWMutex

	graph   *core.Graph
	table   *spectrum.Table
	log     logrus.FieldLogger
	metrics *metrics.Registry
}

// SessionOption configures a Session.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	spectrum []spectrum.Option
	log      logrus.FieldLogger
	metrics  *metrics.Registry
}

// WithSpectrum fixes the wavelength and slot counts of every edge.
func WithSpectrum(wavelengths, slots int) SessionOption {
	opts := []spectrum.Option{spectrum.WithWavelengths(wavelengths), spectrum.WithSlots(slots)}
	return func(c *sessionConfig) { c.spectrum = opts }
}

// WithLogger routes session logs to l.
func WithLogger(l logrus.FieldLogger) SessionOption {
	return func(c *sessionConfig) { c.log = l }
}

// WithMetrics records session activity in r.
func WithMetrics(r *metrics.Registry) SessionOption {
	return func(c *sessionConfig) { c.metrics = r }
}

// NewSession creates an empty session. Without WithLogger logs are discarded.
func NewSession(opts ...SessionOption) *Session {
	cfg := sessionConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		cfg.log = l
	}

	return &Session{
		graph:   core.NewGraph(),
		table:   spectrum.New(cfg.spectrum...),
		log:     cfg.log,
		metrics: cfg.metrics,
	}
}

// Wavelengths returns the number of wavelengths per edge.
func (s *Session) Wavelengths() int { return s.table.Wavelengths() }

// Slots returns the number of slots per wavelength.
func (s *Session) Slots() int { return s.table.Slots() }

// AddNode adds id to the topology; re-adding is a no-op.
func (s *Session) AddNode(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.graph.AddVertex(id); err != nil {
		return err
	}
	s.observeTopology()

	return nil
}

// AddEdge inserts or re-weights edge {u, v}. The spectrum grid is created on
// first insertion only; re-adding keeps existing occupancy.
func (s *Session) AddEdge(u, v string, weight float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key, created, err := s.graph.AddEdge(u, v, weight)
	if err != nil {
		return err
	}
	if created {
		s.table.Ensure(key)
	}
	s.log.WithFields(logrus.Fields{"edge": key.String(), "weight": weight, "created": created}).Debug("edge added")
	s.observeTopology()

	return nil
}

// PathWeight sums edge weights along path.
func (s *Session) PathWeight(path []string) (float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.graph.PathWeight(path)
}

// ComputePath searches a route from src to dst. A missing endpoint or no
// connectivity yields a Route with an empty Path and a nil error.
func (s *Session) ComputePath(src, dst string, strategy Strategy) (Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.computePathLocked(src, dst, strategy)
}

func (s *Session) computePathLocked(src, dst string, strategy Strategy) (Route, error) {
	started := time.Now()
	var (
		res dijkstra.Result
		err error
	)
	switch strategy {
	case UniformCost:
		res, err = dijkstra.ShortestPath(s.graph, src, dst)
	case Heuristic:
		res, err = astar.Search(s.graph, src, dst)
	default:
		return Route{}, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	if err != nil {
		return Route{}, err
	}
	route := Route{
		Strategy: strategy,
		Path:     res.Path,
		Weight:   res.Weight,
		Expanded: res.Expanded,
		Elapsed:  time.Since(started),
	}
	s.observeSearch(route)

	return route, nil
}

// Allocate reserves slots on wavelength w along path; see Allocate in
// allocator.go for the policy. A disconnected path is rejected with both
// ErrAllocationRejected and ErrDisconnectedPath.
func (s *Session) Allocate(path []string, slots, w int, allowNonContiguous bool) (Allocation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.allocateLocked(path, slots, w, allowNonContiguous)
}

func (s *Session) allocateLocked(path []string, slots, w int, allowNonContiguous bool) (Allocation, error) {
	if len(path) < 2 {
		s.observeAllocation(nil, Allocation{})
		return Allocation{}, fmt.Errorf("%w: path has %d node(s)", ErrAllocationRejected, len(path))
	}
	edges, err := s.graph.PathEdges(path)
	if err != nil {
		s.observeAllocation(nil, Allocation{})
		return Allocation{}, fmt.Errorf("%w: %w", ErrAllocationRejected, err)
	}

	alloc, err := Allocate(s.table, edges, slots, w, allowNonContiguous)
	s.observeAllocation(edges, alloc)
	entry := s.log.WithFields(logrus.Fields{
		"path":       path,
		"slots":      slots,
		"wavelength": w,
		"kind":       alloc.Kind.String(),
	})
	if err != nil {
		entry.WithError(err).Info("allocation failed")
		return alloc, err
	}
	entry.WithField("reserved", alloc.Slots).Info("allocation placed")

	return alloc, nil
}

// Free clears every slot of wavelength w on each edge of path, regardless of
// which allocation reserved it. Paths shorter than two nodes free nothing.
func (s *Session) Free(path []string, w int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.freeLocked(path, w)
}

func (s *Session) freeLocked(path []string, w int) error {
	edges, err := s.graph.PathEdges(path)
	if err != nil {
		return err
	}
	if err = Release(s.table, edges, w); err != nil {
		return err
	}
	s.observeRelease(edges)
	s.log.WithFields(logrus.Fields{"path": path, "wavelength": w}).Info("wavelength released")

	return nil
}

// FreeRoute resolves the uniform-cost route from src to dst and frees
// wavelength w along it. The resolved route is returned.
func (s *Session) FreeRoute(src, dst string, w int) (Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	route, err := s.computePathLocked(src, dst, UniformCost)
	if err != nil {
		return route, err
	}
	if !route.Found() {
		return route, fmt.Errorf("%w: %s to %s", ErrNoRoute, src, dst)
	}

	return route, s.freeLocked(route.Path, w)
}

// Occupancy returns the occupied slot count and congestion level of {u, v}.
func (s *Session) Occupancy(u, v string) (int, spectrum.Level, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	key := core.NewEdgeKey(u, v)
	n, err := s.table.Occupancy(key)
	if err != nil {
		return 0, spectrum.LevelFree, err
	}

	return n, spectrum.Classify(n, s.table.Capacity()), nil
}

// Grid returns a copy of the occupancy grid of {u, v}, [wavelength][slot].
func (s *Session) Grid(u, v string) ([][]bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.table.Grid(core.NewEdgeKey(u, v))
}

// Reset drops all nodes, edges and slot state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph.Clear()
	s.table.Clear()
	if s.metrics != nil {
		s.metrics.ResetsTotal.Inc()
		s.metrics.EdgeOccupancy.Reset()
	}
	s.observeTopology()
	s.log.Info("session reset")
}

// Serve routes req with its strategy and reserves spectrum along the route.
// A request without ID gets a random UUID.
func (s *Session) Serve(req Request) Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	route, err := s.computePathLocked(req.Source, req.Destination, req.Strategy)

	return s.finishLocked(req, route, err)
}

// finishLocked allocates along an already computed route.
func (s *Session) finishLocked(req Request, route Route, searchErr error) Response {
	resp := Response{Request: req, Route: route}
	if searchErr != nil {
		resp.Err = searchErr
		return resp
	}
	if !route.Found() {
		resp.Err = fmt.Errorf("%w: %s to %s", ErrNoRoute, req.Source, req.Destination)
		return resp
	}
	resp.Allocation, resp.Err = s.allocateLocked(route.Path, req.Slots, req.Wavelength, req.AllowNonContiguous)

	return resp
}

// Compare runs every strategy in Strategies order for the same endpoints,
// timing each search and attempting an allocation on each route in turn.
// Allocations accumulate: the second strategy sees the slots taken by the
// first.
func (s *Session) Compare(src, dst string, slots, w int, allowNonContiguous bool) []Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Response, 0, len(Strategies))
	for _, st := range Strategies {
		req := Request{
			ID:                 uuid.NewString(),
			Source:             src,
			Destination:        dst,
			Slots:              slots,
			Wavelength:         w,
			AllowNonContiguous: allowNonContiguous,
			Strategy:           st,
		}
		route, err := s.computePathLocked(src, dst, st)
		out = append(out, s.finishLocked(req, route, err))
	}

	return out
}

func (s *Session) observeTopology() {
	if s.metrics == nil {
		return
	}
	s.metrics.TopologyNodes.Set(float64(s.graph.VertexCount()))
	s.metrics.TopologyEdges.Set(float64(s.graph.EdgeCount()))
}

func (s *Session) observeSearch(r Route) {
	if s.metrics == nil {
		return
	}
	outcome := "found"
	if !r.Found() {
		outcome = "not_found"
	}
	st := r.Strategy.String()
	s.metrics.PathSearchesTotal.WithLabelValues(st, outcome).Inc()
	s.metrics.PathSearchDuration.WithLabelValues(st).Observe(r.Elapsed.Seconds())
	s.metrics.PathVerticesVisited.WithLabelValues(st).Observe(float64(r.Expanded))
}

func (s *Session) observeAllocation(edges []core.EdgeKey, a Allocation) {
	if s.metrics == nil {
		return
	}
	s.metrics.AllocationsTotal.WithLabelValues(a.Kind.String()).Inc()
	if !a.Success() {
		return
	}
	s.metrics.SlotsAllocated.WithLabelValues(strconv.Itoa(a.Wavelength)).Add(float64(len(a.Slots) * len(edges)))
	s.observeEdges(edges)
}

func (s *Session) observeRelease(edges []core.EdgeKey) {
	if s.metrics == nil {
		return
	}
	s.metrics.ReleasesTotal.Inc()
	s.observeEdges(edges)
}

func (s *Session) observeEdges(edges []core.EdgeKey) {
	for _, k := range edges {
		if n, err := s.table.Occupancy(k); err == nil {
			s.metrics.EdgeOccupancy.WithLabelValues(k.String()).Set(float64(n))
		}
	}
}
