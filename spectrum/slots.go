package spectrum

import (
	"fmt"

	"github.com/katalvlaran/wdm/core"
)

// IsFree reports whether slot on wavelength w of key is unoccupied.
func (t *Table) IsFree(key core.EdgeKey, w, slot int) (bool, error) {
	r, err := t.row(key, w)
	if err != nil {
		return false, err
	}
	if slot < 0 || slot >= t.slots {
		return false, fmt.Errorf("%w: %d not in [0,%d)", ErrSlotRange, slot, t.slots)
	}

	return !r[slot], nil
}

// RangeFree reports whether every slot in [start, end) is free.
func (t *Table) RangeFree(key core.EdgeKey, w, start, end int) (bool, error) {
	r, err := t.row(key, w)
	if err != nil {
		return false, err
	}
	if err = t.checkRange(start, end); err != nil {
		return false, err
	}
	for i := start; i < end; i++ {
		if r[i] {
			return false, nil
		}
	}

	return true, nil
}

// FreeSlots returns the free slot indices of wavelength w on key, ascending.
func (t *Table) FreeSlots(key core.EdgeKey, w int) ([]int, error) {
	r, err := t.row(key, w)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, t.slots)
	for i, used := range r {
		if !used {
			out = append(out, i)
		}
	}

	return out, nil
}

// Mark sets each slot in slots to occupied. All indices are validated before
// any of them is written.
func (t *Table) Mark(key core.EdgeKey, w int, slots []int, occupied bool) error {
	r, err := t.row(key, w)
	if err != nil {
		return err
	}
	for _, s := range slots {
		if s < 0 || s >= t.slots {
			return fmt.Errorf("%w: %d not in [0,%d)", ErrSlotRange, s, t.slots)
		}
	}
	for _, s := range slots {
		r[s] = occupied
	}

	return nil
}

// MarkRange sets slots [start, end) on wavelength w of key to occupied.
func (t *Table) MarkRange(key core.EdgeKey, w, start, end int, occupied bool) error {
	r, err := t.row(key, w)
	if err != nil {
		return err
	}
	if err = t.checkRange(start, end); err != nil {
		return err
	}
	for i := start; i < end; i++ {
		r[i] = occupied
	}

	return nil
}

// ClearWavelength frees every slot of wavelength w on key.
func (t *Table) ClearWavelength(key core.EdgeKey, w int) error {
	r, err := t.row(key, w)
	if err != nil {
		return err
	}
	for i := range r {
		r[i] = false
	}

	return nil
}

func (t *Table) checkRange(start, end int) error {
	if start < 0 || end > t.slots || start > end {
		return fmt.Errorf("%w: [%d,%d) not within [0,%d)", ErrSlotRange, start, end, t.slots)
	}

	return nil
}
