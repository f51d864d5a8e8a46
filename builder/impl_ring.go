// SPDX-License-Identifier: MIT
//
// impl_ring.go - Ring(n) and Wheel(n), the metro-ring shapes.

package builder

import "fmt"

const (
	methodRing    = "Ring"
	methodWheel   = "Wheel"
	minRingNodes  = 3
	minWheelNodes = 4

	// centerVertexID is the fixed hub name used by Star and Wheel.
	centerVertexID = "Center"
)

// Ring returns a Constructor for an n-node ring, links i-(i+1)%n in
// ascending i. n ≥ 3.
func Ring(n int) Constructor {
	return func(t Target, cfg builderConfig) error {
		if n < minRingNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingNodes, ErrTooFewVertices)
		}

		return ring(methodRing, t, cfg, 0, n)
	}
}

// Wheel returns a Constructor for a ring of n-1 nodes plus a "Center" hub
// linked to every ring node. n ≥ 4.
func Wheel(n int) Constructor {
	return func(t Target, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := ring(methodWheel, t, cfg, 1, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(methodWheel, t, cfg, centerVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// ring links idFn(from..to-1) in a closed loop.
func ring(method string, t Target, cfg builderConfig, from, to int) error {
	size := to - from
	for i := from; i < to; i++ {
		next := from + (i-from+1)%size
		if err := link(method, t, cfg, cfg.idFn(i), cfg.idFn(next)); err != nil {
			return err
		}
	}

	return nil
}
