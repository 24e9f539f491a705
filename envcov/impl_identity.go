// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// impl_identity.go - implementation of the identity model.
//
// Contract:
//   - Γ = I_N; fully deterministic, consumes no stream draws.
//   - Produces no artifacts (post-processing adds min_eigen as always).
//
// Complexity: O(N²) allocation, O(N) writes.

package envcov

import "gonum.org/v1/gonum/mat"

// genIdentity builds the N×N identity matrix.
func genIdentity(n int) (*mat.Dense, Details, error) {
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		g.Set(i, i, 1)
	}
	return g, Details{}, nil
}
