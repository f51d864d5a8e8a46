// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodPath   = "Path"
	methodStar   = "Star"
	minPathNodes = 2
	minStarNodes = 2
)

// Path returns a Constructor for a linear chain 0-1-...-(n-1). n ≥ 2.
func Path(n int) Constructor {
	return func(t Target, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i+1 < n; i++ {
			if err := link(methodPath, t, cfg, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub "Center" and leaves idFn(1..n-1).
// n ≥ 2.
func Star(n int) Constructor {
	return func(t Target, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := link(methodStar, t, cfg, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
