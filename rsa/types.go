package rsa

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/wdm/core"
)

// Sentinel errors of the engine. Topology errors are re-exported from core
// so callers can branch on a single package.
var (
	// ErrInvalidEdge indicates a self-loop or a negative/non-numeric weight.
	ErrInvalidEdge = core.ErrInvalidEdge

	// ErrDisconnectedPath indicates a path step without an edge.
	ErrDisconnectedPath = core.ErrDisconnectedPath

	// ErrAllocationRejected indicates malformed allocation input: fewer than
	// two path nodes, a non-positive slot count, or a bad wavelength.
	ErrAllocationRejected = errors.New("rsa: allocation rejected")

	// ErrSpectrumUnavailable indicates no placement satisfied the policy.
	ErrSpectrumUnavailable = errors.New("rsa: spectrum unavailable")

	// ErrNoRoute indicates Serve found no path between the endpoints.
	ErrNoRoute = errors.New("rsa: no route")

	// ErrUnknownStrategy indicates an unsupported Strategy value or name.
	ErrUnknownStrategy = errors.New("rsa: unknown strategy")
)

// Strategy selects the path search algorithm.
type Strategy int

const (
	// UniformCost is Dijkstra's algorithm; its paths are minimum-weight.
	UniformCost Strategy = iota
	// Heuristic is the A*-style search with a non-admissible ID-hash heuristic.
	Heuristic
)

// Strategies lists every strategy in comparison order.
var Strategies = []Strategy{UniformCost, Heuristic}

func (s Strategy) String() string {
	switch s {
	case UniformCost:
		return "uniform-cost"
	case Heuristic:
		return "heuristic"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy accepts "uniform-cost"/"dijkstra" and "heuristic"/"astar"/"a*".
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform-cost", "dijkstra", "ucs":
		return UniformCost, nil
	case "heuristic", "astar", "a*":
		return Heuristic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Kind reports how an allocation was placed.
type Kind int

const (
	// KindNone marks a failed allocation; nothing was reserved.
	KindNone Kind = iota
	// KindContiguous is a single block [s, s+k) found by first fit.
	KindContiguous
	// KindNonContiguous is the k lowest common free slots, not adjacent.
	KindNonContiguous
)

func (k Kind) String() string {
	switch k {
	case KindContiguous:
		return "contiguous"
	case KindNonContiguous:
		return "non-contiguous"
	default:
		return "none"
	}
}

// Allocation is the outcome of one reservation. Slots lists the reserved
// indices in ascending order and is identical on every edge of the path.
type Allocation struct {
	Kind       Kind
	Wavelength int
	Slots      []int
}

// Success reports whether slots were reserved.
func (a Allocation) Success() bool { return a.Kind != KindNone }

// Route is a computed path with its metadata.
type Route struct {
	Strategy Strategy
	Path     []string
	Weight   float64
	Expanded int
	Elapsed  time.Duration
}

// Found reports whether the route has at least one node.
func (r Route) Found() bool { return len(r.Path) > 0 }

// Request asks the session to route and reserve in one step.
type Request struct {
	ID                 string
	Source             string
	Destination        string
	Slots              int
	Wavelength         int
	AllowNonContiguous bool
	Strategy           Strategy
}

// Response pairs a Request with its route and allocation. Err is nil on
// success; otherwise it wraps ErrNoRoute, ErrAllocationRejected or
// ErrSpectrumUnavailable.
type Response struct {
	Request    Request
	Route      Route
	Allocation Allocation
	Err        error
}
