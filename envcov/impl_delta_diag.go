// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// impl_delta_diag.go - implementation of the delta_rnd_diag model.
//
// Canonical recipe:
//   - Choose the perturbed index set: explicit delta_pos (1-based, validated
//     against N) or n_delta distinct uniform indices from the stream.
//   - Γ = Γ₀ + diag(δ), δ_i = delta_size at chosen indices, 0 elsewhere.
//   - Γ₀ is read from a private copy; the caller's base is never mutated.
//
// Details: idxs (zero-based, []int), delta (length-N []float64).
//
// Complexity: O(N²) copy + O(|idxs|) updates.

package envcov

import "gonum.org/v1/gonum/mat"

const methodDeltaRndDiag = "DeltaRndDiag"

// genDeltaRndDiag bumps the base diagonal at the chosen indices.
func genDeltaRndDiag(n int, base *mat.SymDense, cfg envConfig) (*mat.Dense, Details, error) {
	idxs, err := resolveDeltaIdxs(methodDeltaRndDiag, n, cfg)
	if err != nil {
		return nil, nil, err
	}

	g := denseFromSym(base)
	delta := make([]float64, n)
	for _, i := range idxs {
		delta[i] = cfg.deltaSize
		g.Set(i, i, g.At(i, i)+cfg.deltaSize)
	}

	return g, Details{DetailIdxs: idxs, DetailDelta: delta}, nil
}

// denseFromSym expands a symmetric matrix into a fresh Dense. O(N²).
func denseFromSym(s *mat.SymDense) *mat.Dense {
	n := s.SymmetricDim()
	g := mat.NewDense(n, n, nil)
	g.Copy(s)
	return g
}
