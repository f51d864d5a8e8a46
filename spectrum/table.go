package spectrum

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/wdm/core"
)

// New creates an empty Table with the given options applied over
// DefaultOptions.
func New(opts ...Option) *Table {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Table{
		wavelengths: cfg.Wavelengths,
		slots:       cfg.Slots,
		grids:       make(map[core.EdgeKey]grid),
	}
}

// Wavelengths returns the number of wavelengths per edge.
func (t *Table) Wavelengths() int { return t.wavelengths }

// Slots returns the number of slots per wavelength.
func (t *Table) Slots() int { return t.slots }

// Capacity returns Wavelengths × Slots, the slot count of one edge.
func (t *Table) Capacity() int { return t.wavelengths * t.slots }

// Ensure creates an all-free grid for key unless one exists. It reports
// whether a grid was created. Existing occupancy is never reset.
func (t *Table) Ensure(key core.EdgeKey) bool {
	if _, ok := t.grids[key]; ok {
		return false
	}
	g := make(grid, t.wavelengths)
	for w := range g {
		g[w] = make([]bool, t.slots)
	}
	t.grids[key] = g

	return true
}

// Has reports whether key has a grid.
func (t *Table) Has(key core.EdgeKey) bool {
	_, ok := t.grids[key]
	return ok
}

// Len returns the number of edges tracked.
func (t *Table) Len() int { return len(t.grids) }

// Keys returns every tracked edge key in sorted order.
func (t *Table) Keys() []core.EdgeKey {
	out := make([]core.EdgeKey, 0, len(t.grids))
	for k := range t.grids {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Clear drops every grid.
func (t *Table) Clear() {
	t.grids = make(map[core.EdgeKey]grid)
}

// row returns the slot row for (key, w) after validating both.
func (t *Table) row(key core.EdgeKey, w int) ([]bool, error) {
	g, ok := t.grids[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEdge, key)
	}
	if w < 0 || w >= t.wavelengths {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrWavelengthRange, w, t.wavelengths)
	}

	return g[w], nil
}

// CheckWavelength validates w against the table dimensions.
func (t *Table) CheckWavelength(w int) error {
	if w < 0 || w >= t.wavelengths {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrWavelengthRange, w, t.wavelengths)
	}

	return nil
}
