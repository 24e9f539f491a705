// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// impl_delta_unif.go - implementation of the delta_rnd_unif model.
//
// Canonical recipe:
//   - M₀ = unique symmetric PSD square root of Γ₀ (eigendecomposition with
//     √λ; eigenvalues pushed below zero by rounding are clamped first).
//   - Add i.i.d. N(0, factor_size²) noise to every entry of M₀.
//   - Γ = M₀ᵀM₀ (PSD by construction).
//
// Round trip: with factor_size = 0 the noise vanishes and Γ reproduces Γ₀
// up to symmetrization rounding (use WithFactorNoise(0)).
//
// Determinism:
//   - Stable draw order: row-major over M₀; one stream draw per entry,
//     consumed even when factor_size = 0 (stream positions stay stable).
//
// Details: factor = perturbed M₀ (*mat.Dense).
//
// Complexity: O(N³) for the square root and the final product.

package envcov

import "gonum.org/v1/gonum/mat"

const methodDeltaRndUnif = "DeltaRndUnif"

// genDeltaRndUnif perturbs the PSD square root of the base entrywise.
func genDeltaRndUnif(n int, base *mat.SymDense, cfg envConfig) (*mat.Dense, Details, error) {
	m0, err := psdSqrt(methodDeltaRndUnif, base)
	if err != nil {
		return nil, nil, err
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			m0.Set(i, j, m0.At(i, j)+cfg.factorSize*cfg.rng.NormFloat64())
		}
	}

	var g mat.Dense
	g.Mul(m0.T(), m0)

	return &g, Details{DetailFactor: m0}, nil
}
