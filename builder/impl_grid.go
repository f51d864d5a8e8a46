// SPDX-License-Identifier: MIT
//
// impl_grid.go - Grid(rows, cols), a 4-neighbour mesh.
//
// Vertex IDs use the fixed coordinate scheme "r,c" instead of cfg.idFn.
// For each cell in row-major order the right link is emitted before the
// bottom link.

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor for a rows×cols orthogonal mesh.
func Grid(rows, cols int) Constructor {
	return func(t Target, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)
				if err := t.AddNode(u); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", methodGrid, u, err)
				}
				if c+1 < cols {
					if err := link(methodGrid, t, cfg, u, fmt.Sprintf(gridIDFmt, r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, t, cfg, u, fmt.Sprintf(gridIDFmt, r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
