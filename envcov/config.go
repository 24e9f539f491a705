// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • envConfig is the single source of truth for all generation knobs.
//   • Defaults are deterministic and documented in constants.go; the one
//     exception is the fallback RNG, which is a process-shared stream so
//     that unseeded calls still vary between runs.
//   • newEnvConfig applies options in-order (later overrides earlier).

package envcov

import (
	"log/slog"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/olfenv/randcorr"
)

// CorrSampler is the correlation-matrix capability used by ModelRndCorr:
// (size, concentration, stream) → correlation matrix. Implementations must
// return an n×n matrix with unit diagonal; envcov validates the dimension
// and post-processes the final Γ like any other model output.
type CorrSampler func(n int, beta float64, rng *rand.Rand) (*mat.SymDense, error)

// FactorRowsRule computes the number of factor-matrix rows from N.
// Resolved once per call; a result < 1 is an ErrOptionViolation.
type FactorRowsRule func(n int) int

// processRand is the shared fallback stream used when no WithSeed/WithRand
// option is given. Every draw advances it; two concurrent unseeded calls
// that care about reproducibility must be serialized by the caller — the
// package provides no locking, matching the "ambient stream" contract.
var processRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// envConfig aggregates all knobs used by the generation models.
// It is passed by VALUE to model implementations (immutable to callers).
type envConfig struct {
	// Lognormal diagonal targets (mean/stdev of the entries themselves).
	diagMu   float64 // > 0
	diagSize float64 // > 0

	// Off-diagonal recipe terms.
	offdiagMu   float64 // any real
	offdiagSize float64 // > 0

	// Perturbation knobs (delta_* models).
	deltaSize float64 // any real
	nDelta    int     // > 0
	deltaPos  []int   // 1-based positions; nil ⇒ draw nDelta at random

	// Factor-product knobs.
	factorRows     int            // fixed count when > 0
	factorRowsRule FactorRowsRule // consulted when factorRows == 0
	factorSize     float64        // > 0

	// Correlation capability.
	corrBeta float64     // > 0
	corrFn   CorrSampler // non-nil

	// Randomness and advisory reporting.
	rng    *rand.Rand   // non-nil after resolution
	logger *slog.Logger // non-nil after resolution
}

// newEnvConfig constructs a config with documented defaults and applies all
// options in order. Complexity: O(len(opts)) time, O(1) space.
func newEnvConfig(opts ...Option) envConfig {
	cfg := envConfig{
		diagMu:         DefaultDiagMu,
		diagSize:       DefaultDiagSize,
		offdiagMu:      DefaultOffdiagMu,
		offdiagSize:    DefaultOffdiagSize,
		deltaSize:      DefaultDeltaSize,
		nDelta:         DefaultNDelta,
		deltaPos:       nil,
		factorRows:     0, // 0 ⇒ use the rule below
		factorRowsRule: defaultFactorRows,
		factorSize:     DefaultFactorSize,
		corrBeta:       DefaultCorrBeta,
		corrFn:         randcorr.Sample,
		rng:            nil, // resolved to processRand below
		logger:         nil, // resolved to slog.Default below
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	// Resolve the stream and logger fallbacks so downstream code is nil-free.
	if cfg.rng == nil {
		cfg.rng = processRand
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	return cfg
}

// defaultFactorRows is the default factor-rows rule: 10·N.
func defaultFactorRows(n int) int { return DefaultFactorRowsScale * n }

// resolveFactorRows collapses the fixed-or-rule duality once per call.
func resolveFactorRows(method string, cfg envConfig, n int) (int, error) {
	rows := cfg.factorRows
	if rows == 0 {
		rows = cfg.factorRowsRule(n)
	}
	if rows < 1 {
		return 0, optionErrorf(method, "factor rows %d < 1 for n=%d", rows, n)
	}
	return rows, nil
}
