// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// postprocess.go — the uniform symmetry/PSD policy applied to every model
// output, plus the shared symmetric-eigendecomposition helpers.
//
// Policy (strict tolerance band StrictTol = 1e-12):
//  1. Symmetry gate: max|Γ−Γᵀ| > StrictTol is a FATAL invariant violation
//     (ErrAsymmetry, no matrix returned) — a model produced something no
//     recipe here can produce legitimately. At or below the band, Γ is
//     symmetrized to ½(Γ+Γᵀ) unconditionally (idempotent when exact).
//  2. PSD policy: eigenvalues below −StrictTol trigger an advisory slog
//     warning and the matrix is returned UNMODIFIED — surface the anomaly,
//     do not silently repair large violations. Eigenvalues inside
//     [−StrictTol, 0) only are rounding noise: Γ is reconstructed from its
//     eigendecomposition with the negatives clamped to 0.
//
// The pre-clamp minimum eigenvalue is always recorded under DetailMinEigen.

package envcov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// finalize applies the symmetry gate and the PSD policy to a raw model
// output and stores min_eigen into det. Complexity: O(N²) + O(N³) eigen.
func finalize(raw *mat.Dense, cfg envConfig, det Details) (*mat.SymDense, error) {
	if asym := maxAsymmetry(raw); asym > StrictTol {
		return nil, fmt.Errorf("finalize: max asymmetry %.3e > %.0e (invariant violation): %w",
			asym, StrictTol, ErrAsymmetry)
	}

	sym := symmetrize(raw)

	vals, q, err := eigenSym("finalize", sym)
	if err != nil {
		return nil, err
	}
	minEigen := floats.Min(vals)
	det[DetailMinEigen] = minEigen

	switch {
	case minEigen < -StrictTol:
		// Advisory only: the matrix goes back to the caller as-is.
		cfg.logger.Warn("generated environment covariance is not positive semidefinite",
			"min_eigenvalue", minEigen,
			"tolerance", -StrictTol)
	case minEigen < 0:
		// Rounding-level negatives: clamp to 0 and rebuild Γ = Q·diag(λ⁺)·Qᵀ.
		for i, v := range vals {
			if v < 0 {
				vals[i] = 0
			}
		}
		sym = reconstructSym(q, vals)
	}

	return sym, nil
}

// maxAsymmetry returns max over i<j of |m[i,j] − m[j,i]|. O(N²).
func maxAsymmetry(m *mat.Dense) float64 {
	n, _ := m.Dims()
	var worst float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if d := math.Abs(m.At(i, j) - m.At(j, i)); d > worst {
				worst = d
			}
		}
	}
	return worst
}

// symmetrize returns ½(m + mᵀ) as a SymDense. O(N²).
func symmetrize(m *mat.Dense) *mat.SymDense {
	n, _ := m.Dims()
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, 0.5*(m.At(i, j)+m.At(j, i)))
		}
	}
	return s
}

// eigenSym factorizes a symmetric matrix, returning ascending eigenvalues
// and the orthonormal eigenvector matrix Q (column per eigenvalue).
func eigenSym(method string, s *mat.SymDense) ([]float64, *mat.Dense, error) {
	var es mat.EigenSym
	if !es.Factorize(s, true) {
		return nil, nil, fmt.Errorf("%s: %w", method, ErrEigenFailed)
	}
	var q mat.Dense
	es.VectorsTo(&q)
	return es.Values(nil), &q, nil
}

// reconstructSym rebuilds Q·diag(vals)·Qᵀ as a SymDense, averaging the two
// triangles to absorb product rounding. O(N³).
func reconstructSym(q *mat.Dense, vals []float64) *mat.SymDense {
	n := len(vals)

	// Scale columns of Q by the eigenvalues, then multiply by Qᵀ.
	scaled := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			scaled.Set(i, j, q.At(i, j)*vals[j])
		}
	}
	var full mat.Dense
	full.Mul(scaled, q.T())

	return symmetrize(&full)
}

// psdSqrt computes the unique symmetric PSD square root of s via
// eigendecomposition: Q·diag(√λ)·Qᵀ, with rounding-level negative
// eigenvalues clamped to 0 before the root. Returned as a Dense because
// callers perturb it entrywise afterwards. O(N³).
func psdSqrt(method string, s *mat.SymDense) (*mat.Dense, error) {
	vals, q, err := eigenSym(method, s)
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if v < 0 {
			vals[i] = 0
		}
		vals[i] = math.Sqrt(vals[i])
	}

	root := reconstructSym(q, vals)
	return denseFromSym(root), nil
}
