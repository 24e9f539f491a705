// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// validators.go — shared validation helpers for generation-time (N-dependent)
// domain checks. Each helper wraps the matching sentinel with method context
// so callers can branch with errors.Is while logs stay greppable.

package envcov

import "fmt"

// optionErrorf wraps ErrOptionViolation with "<Method>: <message>" context.
// Complexity: O(len(format) + Σlen(args)), negligible for our use.
func optionErrorf(method, format string, args ...any) error {
	inner := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %s: %w", method, inner, ErrOptionViolation)
}

// validateSize ensures n ≥ 1, wrapping ErrInvalidSize otherwise.
func validateSize(method string, n int) error {
	if n < 1 {
		return fmt.Errorf("%s: n=%d < 1: %w", method, n, ErrInvalidSize)
	}
	return nil
}

// resolveDeltaIdxs produces the zero-based index set perturbed by the
// delta_* models: explicit cfg.deltaPos when given (validated against N),
// else cfg.nDelta distinct indices drawn uniformly without replacement from
// the injected stream.
//
// Complexity: O(N) for the random draw (rand.Perm), O(len(pos)) otherwise.
func resolveDeltaIdxs(method string, n int, cfg envConfig) ([]int, error) {
	if cfg.deltaPos != nil {
		if len(cfg.deltaPos) > n {
			return nil, optionErrorf(method, "%d delta positions exceed n=%d", len(cfg.deltaPos), n)
		}
		idxs := make([]int, len(cfg.deltaPos))
		for i, p := range cfg.deltaPos {
			// Positivity and distinctness were enforced by the option
			// constructor; only the ≤ N bound depends on this call.
			if p > n {
				return nil, optionErrorf(method, "delta position %d out of [1,%d]", p, n)
			}
			idxs[i] = p - 1 // 1-based contract → 0-based storage
		}
		return idxs, nil
	}

	if cfg.nDelta > n {
		return nil, optionErrorf(method, "n_delta=%d exceeds n=%d", cfg.nDelta, n)
	}
	// Uniform choice without replacement: a permutation prefix.
	return cfg.rng.Perm(n)[:cfg.nDelta], nil
}
