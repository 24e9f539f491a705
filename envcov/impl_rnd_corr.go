// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// impl_rnd_corr.go - implementation of the rnd_corr model.
//
// Canonical recipe:
//   - Draw per-dimension variances v_i via the same lognormal recipe as
//     rnd_diag (targets diag_mu / diag_size).
//   - Obtain an N×N correlation matrix C from the configured capability
//     (default randcorr.Sample) with concentration corr_beta.
//   - Γ = diag(√v) · C · diag(√v).
//
// Determinism:
//   - Stable draw order: variances first (index ascending), then the
//     correlation sampler consumes the stream.
//
// Details: ln_mu, ln_sigma, variances.
//
// Complexity: O(N) draws + sampler cost + O(N²) scaling.

package envcov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

const methodRndCorr = "RndCorr"

// genRndCorr scales a sampled correlation matrix by lognormal variances.
func genRndCorr(n int, cfg envConfig) (*mat.Dense, Details, error) {
	lnMu, lnSigma := lognormalParams(cfg.diagMu, cfg.diagSize)

	variances := make([]float64, n)
	for i := range variances {
		variances[i] = drawLognormal(cfg, lnMu, lnSigma)
	}

	corr, err := cfg.corrFn(n, cfg.corrBeta, cfg.rng)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: sampler: %v: %w", methodRndCorr, err, ErrCorrSampler)
	}
	if corr == nil || corr.SymmetricDim() != n {
		return nil, nil, fmt.Errorf("%s: sampler returned wrong dimension: %w", methodRndCorr, ErrCorrSampler)
	}

	// Γ_ij = √v_i · C_ij · √v_j — the diag(√v)·C·diag(√v) sandwich, written
	// entrywise to avoid two temporary N×N products.
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		si := math.Sqrt(variances[i])
		for j := 0; j < n; j++ {
			g.Set(i, j, si*corr.At(i, j)*math.Sqrt(variances[j]))
		}
	}

	det := Details{
		DetailLnMu:      lnMu,
		DetailLnSigma:   lnSigma,
		DetailVariances: variances,
	}

	return g, det, nil
}
