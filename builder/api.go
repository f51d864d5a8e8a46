// SPDX-License-Identifier: MIT

package builder

import "fmt"

// Target receives generated nodes and links. *rsa.Session satisfies it.
type Target interface {
	AddNode(id string) error
	AddEdge(u, v string, weight float64) error
}

// Constructor applies a deterministic topology mutation using the resolved
// builderConfig. Constructors validate parameters before the first write.
type Constructor func(t Target, cfg builderConfig) error

// Build resolves opts and applies every constructor to t in order.
// The first constructor error is wrapped with "Build: %w" and returned; no
// cleanup of earlier constructors is attempted.
//
// Complexity: O(len(opts)) plus the sum of the constructor costs.
func Build(t Target, opts []BuilderOption, cons ...Constructor) error {
	if t == nil {
		return fmt.Errorf("Build: nil target: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return fmt.Errorf("Build: %w", err)
		}
	}

	return nil
}

// link adds u-v with the next configured weight.
func link(method string, t Target, cfg builderConfig, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := t.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s-%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}

// addNodes adds n nodes named by cfg.idFn in index order.
func addNodes(method string, t Target, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := t.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}
