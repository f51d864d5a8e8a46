package rsa

import (
	"fmt"

	"github.com/katalvlaran/wdm/core"
	"github.com/katalvlaran/wdm/spectrum"
)

// Allocate reserves slots on wavelength w of every edge in edges.
//
// Steps:
//  1. Reject empty edge lists, slots ≤ 0 and out-of-range wavelengths.
//  2. First-fit contiguous window, lowest start wins.
//  3. If allowed, the lowest `slots` indices free on every edge.
//  4. Otherwise ErrSpectrumUnavailable; t is left untouched.
//
// Every check completes before the first write, so a failed call never leaves
// a partial reservation.
func Allocate(t *spectrum.Table, edges []core.EdgeKey, slots, w int, allowNonContiguous bool) (Allocation, error) {
	if len(edges) == 0 {
		return Allocation{}, fmt.Errorf("%w: path needs at least two nodes", ErrAllocationRejected)
	}
	if slots <= 0 {
		return Allocation{}, fmt.Errorf("%w: slot count %d", ErrAllocationRejected, slots)
	}
	if err := t.CheckWavelength(w); err != nil {
		return Allocation{}, fmt.Errorf("%w: %w", ErrAllocationRejected, err)
	}

	start, ok, err := firstFit(t, edges, slots, w)
	if err != nil {
		return Allocation{}, err
	}
	if ok {
		for _, k := range edges {
			if err = t.MarkRange(k, w, start, start+slots, true); err != nil {
				return Allocation{}, err
			}
		}

		return Allocation{Kind: KindContiguous, Wavelength: w, Slots: span(start, slots)}, nil
	}

	if allowNonContiguous {
		common, err := commonFree(t, edges, w)
		if err != nil {
			return Allocation{}, err
		}
		if len(common) >= slots {
			picked := common[:slots]
			for _, k := range edges {
				if err = t.Mark(k, w, picked, true); err != nil {
					return Allocation{}, err
				}
			}

			return Allocation{Kind: KindNonContiguous, Wavelength: w, Slots: picked}, nil
		}
	}

	return Allocation{Wavelength: w}, fmt.Errorf("%w: %d slots on wavelength %d", ErrSpectrumUnavailable, slots, w)
}

// firstFit returns the lowest start whose window is free on all edges.
func firstFit(t *spectrum.Table, edges []core.EdgeKey, slots, w int) (int, bool, error) {
	for start := 0; start+slots <= t.Slots(); start++ {
		fits := true
		for _, k := range edges {
			free, err := t.RangeFree(k, w, start, start+slots)
			if err != nil {
				return 0, false, err
			}
			if !free {
				fits = false
				break
			}
		}
		if fits {
			return start, true, nil
		}
	}

	return 0, false, nil
}

// commonFree intersects the free slots of w across edges, ascending.
func commonFree(t *spectrum.Table, edges []core.EdgeKey, w int) ([]int, error) {
	common, err := t.FreeSlots(edges[0], w)
	if err != nil {
		return nil, err
	}
	for _, k := range edges[1:] {
		kept := common[:0]
		for _, s := range common {
			free, err := t.IsFree(k, w, s)
			if err != nil {
				return nil, err
			}
			if free {
				kept = append(kept, s)
			}
		}
		common = kept
	}

	return common, nil
}

// Release clears wavelength w on every edge in edges. All edges and w are
// validated before anything is cleared.
func Release(t *spectrum.Table, edges []core.EdgeKey, w int) error {
	if err := t.CheckWavelength(w); err != nil {
		return err
	}
	for _, k := range edges {
		if !t.Has(k) {
			return fmt.Errorf("%w: %s", spectrum.ErrUnknownEdge, k)
		}
	}
	for _, k := range edges {
		if err := t.ClearWavelength(k, w); err != nil {
			return err
		}
	}

	return nil
}

func span(start, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = start + i
	}

	return out
}
