// SPDX-License-Identifier: MIT
// Package: olfenv/randcorr
//
// randcorr.go - vine-method correlation matrix sampler.
//
// Canonical model:
//   - Partial correlations p[k][i] (lag k, column i) are drawn i.i.d. from
//     Beta(α,α) on (−1,1) with α = β + (N−2−k)/2; α shrinks by ½ per lag,
//     matching the standard vine construction so every admissible
//     correlation matrix has positive density.
//   - Raw correlations are recovered lag by lag:
//     r ← p[k][i]; for l = k−1..0: r ← r·√((1−p[l][i]²)(1−p[l][k]²)) + p[l][i]·p[l][k].
//
// Contract:
//   - n ≥ 1 (else ErrBadSize); β > 0 (else ErrBadConcentration);
//     rng non-nil (else ErrNeedRandSource).
//   - Deterministic for a fixed rng state; the Beta source is derived from
//     one rng.Uint64() per call.
//   - Returns only sentinel errors; never panics at runtime.

package randcorr

import (
	"fmt"
	"math"
	"math/rand"

	exprand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// File-local constants (no magic literals; stable method tag and domains).
const (
	methodSample  = "Sample"
	minDimension  = 1
	minBeta       = 0.0
	lagAlphaStep  = 0.5 // α decreases by this much per vine lag
	betaToPartial = 2.0 // rescale Beta's (0,1) support to (−1,1)
)

// Sample returns an n×n random correlation matrix with concentration beta.
// Larger beta concentrates the matrix toward the identity.
func Sample(n int, beta float64, rng *rand.Rand) (*mat.SymDense, error) {
	// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
	if n < minDimension {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSample, n, minDimension, ErrBadSize)
	}
	if beta <= minBeta {
		return nil, fmt.Errorf("%s: beta=%.6f must be > %.1f: %w", methodSample, beta, minBeta, ErrBadConcentration)
	}
	if rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", methodSample, ErrNeedRandSource)
	}

	// 2) Unit diagonal first; a 1×1 correlation matrix is just [1].
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		s.SetSym(i, i, 1)
	}
	if n == minDimension {
		return s, nil
	}

	// 3) Derive the Beta source from the caller's stream (one Uint64).
	src := exprand.NewSource(rng.Uint64())

	// 4) Vine sweep: stable order, lag k ascending, column i ascending.
	partial := make([][]float64, n)
	for i := range partial {
		partial[i] = make([]float64, n)
	}
	var (
		k, i, l int
		r       float64
	)
	for k = 0; k < n-1; k++ {
		alpha := beta + lagAlphaStep*float64(n-2-k)
		dist := distuv.Beta{Alpha: alpha, Beta: alpha, Src: src}
		for i = k + 1; i < n; i++ {
			// Partial correlation on (−1,1).
			p := betaToPartial*dist.Rand() - 1
			partial[k][i] = p

			// Convert partial → raw through the earlier lags.
			r = p
			for l = k - 1; l >= 0; l-- {
				r = r*math.Sqrt((1-partial[l][i]*partial[l][i])*(1-partial[l][k]*partial[l][k])) +
					partial[l][i]*partial[l][k]
			}
			s.SetSym(k, i, r)
		}
	}

	// 5) Success: symmetric, unit-diagonal, PSD by the vine construction.
	return s, nil
}
