package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wdm/builder"
	"github.com/katalvlaran/wdm/internal/validate"
	"github.com/katalvlaran/wdm/rsa"
)

// ErrInvalid indicates a scenario that failed decoding or validation.
var ErrInvalid = errors.New("scenario: invalid file")

// Request operations.
const (
	OpServe     = "serve"
	OpCompare   = "compare"
	OpFree      = "free"
	OpReachable = "reachable"
)

// Generator kinds.
const (
	KindRing     = "ring"
	KindPath     = "path"
	KindStar     = "star"
	KindWheel    = "wheel"
	KindComplete = "complete"
	KindGrid     = "grid"
	KindRandom   = "random"
)

// Vertex ID schemes for generated nodes.
const (
	IDDecimal  = "decimal"
	IDSymbol   = "symbol"
	IDAlnum    = "alnum"
	IDExcel    = "excel"
	IDHex      = "hex"
	maxSymbols = 26
)

// Link weight distributions for generated links.
const (
	DistConstant    = "constant"
	DistUniform     = "uniform"
	DistNormal      = "normal"
	DistExponential = "exponential"
)

// File is the decoded form of a scenario document.
type File struct {
	Name string `yaml:"name"`
	// Seed feeds the random source shared by generators without their own seed.
	Seed     int64       `yaml:"seed,omitempty"`
	Nodes    []string    `yaml:"nodes" validate:"dive,required"`
	Links    []Link      `yaml:"links" validate:"dive"`
	Generate []Generator `yaml:"generate" validate:"dive"`
	Requests []Request   `yaml:"requests" validate:"dive"`
}

// Link is an explicit undirected link.
type Link struct {
	A      string  `yaml:"a" validate:"required"`
	B      string  `yaml:"b" validate:"required,nefield=A"`
	Weight float64 `yaml:"weight" validate:"gte=0"`
}

// Generator describes one builder constructor call.
type Generator struct {
	Kind string  `yaml:"kind" validate:"required,oneof=ring path star wheel complete grid random"`
	N    int     `yaml:"n" validate:"gte=0"`
	Rows int     `yaml:"rows" validate:"gte=0"`
	Cols int     `yaml:"cols" validate:"gte=0"`
	P    float64 `yaml:"p" validate:"gte=0,lte=1"`
	// Seed gives the generator its own random source; nil draws from the
	// file's shared one.
	Seed     *int64  `yaml:"seed,omitempty"`
	IDScheme string  `yaml:"id_scheme,omitempty" validate:"omitempty,oneof=decimal symbol alnum excel hex"`
	IDPrefix string  `yaml:"id_prefix,omitempty" validate:"excluded_with=IDScheme"`
	Weight   *Weight `yaml:"weight,omitempty"`
}

// Weight selects the distribution of generated link weights.
type Weight struct {
	Dist   string  `yaml:"dist" validate:"required,oneof=constant uniform normal exponential"`
	Value  float64 `yaml:"value,omitempty" validate:"gte=0"`
	Min    float64 `yaml:"min,omitempty" validate:"gte=0"`
	Max    float64 `yaml:"max,omitempty" validate:"gtefield=Min"`
	Mean   float64 `yaml:"mean,omitempty"`
	StdDev float64 `yaml:"stddev,omitempty" validate:"gte=0"`
	Rate   float64 `yaml:"rate,omitempty" validate:"gte=0,required_if=Dist exponential"`
}

// Request is one routing, comparison or release step.
type Request struct {
	ID            string `yaml:"id"`
	Op            string `yaml:"op" validate:"omitempty,oneof=serve compare free reachable"`
	Source        string `yaml:"source" validate:"required"`
	Destination   string `yaml:"destination" validate:"required_unless=Op reachable"`
	Slots         int    `yaml:"slots" validate:"gte=0"`
	Wavelength    int    `yaml:"wavelength" validate:"gte=0"`
	NonContiguous bool   `yaml:"non_contiguous"`
	Strategy      string `yaml:"strategy"`
	// Hops bounds a reachable query; 0 means unbounded.
	Hops int `yaml:"hops,omitempty" validate:"gte=0"`
}

// Load reads and parses the scenario at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes and validates a YAML scenario. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := validate.Struct(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for i, r := range f.Requests {
		if _, err := rsa.ParseStrategy(r.Strategy); err != nil {
			return nil, fmt.Errorf("%w: requests[%d]: %w", ErrInvalid, i, err)
		}
		if (r.op() == OpServe || r.op() == OpCompare) && r.Slots == 0 {
			return nil, fmt.Errorf("%w: requests[%d]: slots must be positive", ErrInvalid, i)
		}
	}
	for i, g := range f.Generate {
		if g.IDScheme == IDSymbol && g.N > maxSymbols {
			return nil, fmt.Errorf("%w: generate[%d]: symbol ids cover at most %d nodes", ErrInvalid, i, maxSymbols)
		}
		if g.Weight != nil && !g.Weight.finite() {
			return nil, fmt.Errorf("%w: generate[%d]: weight parameters must be finite", ErrInvalid, i)
		}
	}

	return &f, nil
}

// CheckWavelengths reports the first request whose wavelength is outside
// [0, wavelengths). Run calls it before any request is played.
func (f *File) CheckWavelengths(wavelengths int) error {
	for i, r := range f.Requests {
		if r.Wavelength >= wavelengths {
			return fmt.Errorf("%w: requests[%d]: wavelength %d not in [0,%d)", ErrInvalid, i, r.Wavelength, wavelengths)
		}
	}

	return nil
}

// Marshal encodes f back to YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

// Apply adds the file's nodes, links and generated topologies to t.
func (f *File) Apply(t builder.Target) error {
	for _, id := range f.Nodes {
		if err := t.AddNode(id); err != nil {
			return fmt.Errorf("scenario: node %q: %w", id, err)
		}
	}
	for _, l := range f.Links {
		if err := t.AddEdge(l.A, l.B, l.Weight); err != nil {
			return fmt.Errorf("scenario: link %s-%s: %w", l.A, l.B, err)
		}
	}
	shared := rand.New(rand.NewSource(f.Seed))
	for i, g := range f.Generate {
		if err := builder.Build(t, g.options(shared), g.constructor()); err != nil {
			return fmt.Errorf("scenario: generate[%d]: %w", i, err)
		}
	}

	return nil
}

func (g Generator) constructor() builder.Constructor {
	switch g.Kind {
	case KindRing:
		return builder.Ring(g.N)
	case KindPath:
		return builder.Path(g.N)
	case KindStar:
		return builder.Star(g.N)
	case KindWheel:
		return builder.Wheel(g.N)
	case KindComplete:
		return builder.Complete(g.N)
	case KindGrid:
		return builder.Grid(g.Rows, g.Cols)
	default:
		return builder.RandomSparse(g.N, g.P)
	}
}

func (g Generator) options(shared *rand.Rand) []builder.BuilderOption {
	opts := []builder.BuilderOption{builder.WithRand(shared)}
	if g.Seed != nil {
		opts = []builder.BuilderOption{builder.WithSeed(*g.Seed)}
	}
	switch {
	case g.IDPrefix != "":
		opts = append(opts, builder.WithSymbNumb(g.IDPrefix))
	case g.IDScheme == IDSymbol:
		opts = append(opts, builder.WithSymbolIDs())
	case g.IDScheme == IDAlnum:
		opts = append(opts, builder.WithAlphanumericIDs())
	case g.IDScheme == IDExcel:
		opts = append(opts, builder.WithExcelColumnIDs())
	case g.IDScheme == IDHex:
		opts = append(opts, builder.WithHexIDs())
	}
	if g.Weight != nil {
		opts = append(opts, g.Weight.option())
	}

	return opts
}

func (w Weight) finite() bool {
	for _, v := range []float64{w.Value, w.Min, w.Max, w.Mean, w.StdDev, w.Rate} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// option maps w to a builder weight option; Parse has checked its fields.
func (w Weight) option() builder.BuilderOption {
	switch w.Dist {
	case DistConstant:
		return builder.WithConstantWeight(w.Value)
	case DistUniform:
		return builder.WithUniformWeight(w.Min, w.Max)
	case DistNormal:
		return builder.WithNormalWeight(w.Mean, w.StdDev)
	default:
		return builder.WithExponentialWeight(w.Rate)
	}
}

func (r Request) op() string {
	if r.Op == "" {
		return OpServe
	}
	return r.Op
}

// toRSA converts r; the strategy was checked by Parse.
func (r Request) toRSA() rsa.Request {
	strategy, _ := rsa.ParseStrategy(r.Strategy)

	return rsa.Request{
		ID:                 r.ID,
		Source:             r.Source,
		Destination:        r.Destination,
		Slots:              r.Slots,
		Wavelength:         r.Wavelength,
		AllowNonContiguous: r.NonContiguous,
		Strategy:           strategy,
	}
}
