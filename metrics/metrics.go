// Package metrics exposes Prometheus collectors for the WDM engine.
//
// A Registry owns its own prometheus.Registry so several sessions (and
// tests) never collide on the default registerer.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "wdm"

// Registry holds all collectors of one engine instance.
type Registry struct {
	// Routing
	PathSearchesTotal   *prometheus.CounterVec
	PathSearchDuration  *prometheus.HistogramVec
	PathVerticesVisited *prometheus.HistogramVec

	// Spectrum
	AllocationsTotal *prometheus.CounterVec
	SlotsAllocated   *prometheus.CounterVec
	ReleasesTotal    prometheus.Counter
	EdgeOccupancy    *prometheus.GaugeVec

	// Topology
	TopologyNodes prometheus.Gauge
	TopologyEdges prometheus.Gauge
	ResetsTotal   prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates and registers every collector.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initRoutingMetrics()
	r.initSpectrumMetrics()
	r.initTopologyMetrics()

	return r
}

// Gatherer returns the underlying registry for scraping or tests.
func (r *Registry) Gatherer() prometheus.Gatherer { return r.registry }

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Registry) initRoutingMetrics() {
	r.PathSearchesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "path_searches_total",
			Help:      "Path searches by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	r.PathSearchDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_search_duration_seconds",
			Help:      "Path search duration in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
		[]string{"strategy"},
	)

	r.PathVerticesVisited = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "path_vertices_expanded",
			Help:      "Vertices expanded per path search",
			Buckets:   []float64{1, 10, 100, 1000, 10000},
		},
		[]string{"strategy"},
	)
}

func (r *Registry) initSpectrumMetrics() {
	r.AllocationsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Allocation attempts by resulting kind (none on failure)",
		},
		[]string{"kind"},
	)

	r.SlotsAllocated = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "slots_allocated_total",
			Help:      "Slots reserved per edge, by wavelength",
		},
		[]string{"wavelength"},
	)

	r.ReleasesTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "releases_total",
			Help:      "Wavelength releases along a path",
		},
	)

	r.EdgeOccupancy = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "edge_occupied_slots",
			Help:      "Occupied slots per edge across all wavelengths",
		},
		[]string{"edge"},
	)
}

func (r *Registry) initTopologyMetrics() {
	r.TopologyNodes = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "topology_nodes",
			Help:      "Nodes in the topology",
		},
	)

	r.TopologyEdges = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "topology_edges",
			Help:      "Edges in the topology",
		},
	)

	r.ResetsTotal = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resets_total",
			Help:      "Full session resets",
		},
	)
}
