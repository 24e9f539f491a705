// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// impl_delta_prod.go - implementation of the delta_rnd_prod model.
//
// Canonical recipe:
//   - Choose the perturbed index set exactly as delta_rnd_diag does.
//   - Add delta_size to EVERY entry of the idxs×idxs submatrix of Γ₀:
//     the chosen odorants gain variance (diagonal cells) AND mutual
//     covariance (off-diagonal cells) together.
//
// Details: idxs (zero-based, []int).
//
// Complexity: O(N²) copy + O(|idxs|²) updates.

package envcov

import "gonum.org/v1/gonum/mat"

const methodDeltaRndProd = "DeltaRndProd"

// genDeltaRndProd bumps the full submatrix spanned by the chosen indices.
func genDeltaRndProd(n int, base *mat.SymDense, cfg envConfig) (*mat.Dense, Details, error) {
	idxs, err := resolveDeltaIdxs(methodDeltaRndProd, n, cfg)
	if err != nil {
		return nil, nil, err
	}

	g := denseFromSym(base)
	for _, i := range idxs {
		for _, j := range idxs {
			g.Set(i, j, g.At(i, j)+cfg.deltaSize)
		}
	}

	return g, Details{DetailIdxs: idxs}, nil
}
