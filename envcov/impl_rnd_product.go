// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// impl_rnd_product.go - implementation of the rnd_product model.
//
// Canonical recipe:
//   - Draw M of shape (factor_rows × N) with i.i.d. N(0, factor_size²)
//     entries; Γ = MᵀM, positive semidefinite by construction.
//   - factor_rows resolves the fixed-or-rule duality once (default 10·N).
//
// Determinism:
//   - Stable draw order: row-major over M; one stream draw per entry.
//
// Details: factor = M (*mat.Dense).
//
// Complexity: O(K·N) draws + O(K·N²) for the product, K = factor rows.

package envcov

import "gonum.org/v1/gonum/mat"

const methodRndProduct = "RndProduct"

// genRndProduct samples the factor matrix and forms Γ = MᵀM.
func genRndProduct(n int, cfg envConfig) (*mat.Dense, Details, error) {
	rows, err := resolveFactorRows(methodRndProduct, cfg, n)
	if err != nil {
		return nil, nil, err
	}

	m := gaussianDense(rows, n, cfg.factorSize, cfg)

	var g mat.Dense
	g.Mul(m.T(), m)

	return &g, Details{DetailFactor: m}, nil
}

// gaussianDense fills an r×c matrix with i.i.d. N(0, sigma²) entries drawn
// row-major from cfg.rng. sigma = 0 yields the zero matrix while still
// consuming one draw per entry, keeping stream positions stable across
// sigma choices.
func gaussianDense(r, c int, sigma float64, cfg envConfig) *mat.Dense {
	m := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, sigma*cfg.rng.NormFloat64())
		}
	}
	return m
}
