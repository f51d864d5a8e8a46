package spectrum

import (
	"fmt"

	"github.com/katalvlaran/wdm/core"
)

// Occupancy returns the number of occupied slots of key across all
// wavelengths.
func (t *Table) Occupancy(key core.EdgeKey) (int, error) {
	g, ok := t.grids[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownEdge, key)
	}
	n := 0
	for _, r := range g {
		for _, used := range r {
			if used {
				n++
			}
		}
	}

	return n, nil
}

// Level classifies the occupancy of key against Capacity.
func (t *Table) Level(key core.EdgeKey) (Level, error) {
	n, err := t.Occupancy(key)
	if err != nil {
		return LevelFree, err
	}

	return Classify(n, t.Capacity()), nil
}

// Classify maps an occupied count to a Level for the given capacity.
func Classify(occupied, capacity int) Level {
	switch {
	case occupied <= 0:
		return LevelFree
	case 2*occupied < capacity:
		return LevelLight
	case occupied < capacity:
		return LevelHeavy
	default:
		return LevelFull
	}
}

// Grid returns a deep copy of key's grid, indexed [wavelength][slot].
func (t *Table) Grid(key core.EdgeKey) ([][]bool, error) {
	g, ok := t.grids[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEdge, key)
	}
	out := make([][]bool, len(g))
	for w, r := range g {
		out[w] = append([]bool(nil), r...)
	}

	return out, nil
}
