// SPDX-License-Identifier: MIT

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor for the full mesh K_n. Links are emitted
// for i<j in ascending (i, j) order. K_1 adds a single isolated node.
//
// Complexity: O(n²) links.
func Complete(n int) Constructor {
	return func(t Target, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodComplete, t, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(methodComplete, t, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
