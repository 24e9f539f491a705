// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// options.go — functional options for the envcov package.
//
// Contract (strict):
//   • Options are functional (type Option func(*envConfig)).
//   • Option constructors VALIDATE and PANIC on statically meaningless
//     inputs (non-positive stdev, nil RNG, ...). Models themselves MUST NOT
//     panic; N-dependent domains are validated at generation time and
//     surface as ErrOptionViolation.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals beyond the documented fallback stream; everything
//     flows through envConfig.

package envcov

import (
	"log/slog"
	"math/rand"
)

// Option customizes generation by mutating an envConfig instance before a
// model runs. Applying K options costs O(K) time, O(1) space.
type Option func(*envConfig)

// WithDiagMu sets the target MEAN of the lognormal diagonal entries (> 0).
// Panics if mu <= 0 (a lognormal mean is strictly positive).
func WithDiagMu(mu float64) Option {
	if mu <= 0 {
		panic("envcov: WithDiagMu(mu<=0)")
	}
	return func(c *envConfig) {
		c.diagMu = mu
	}
}

// WithDiagSize sets the target STDEV of the lognormal diagonal entries (> 0).
// Panics if sigma <= 0.
func WithDiagSize(sigma float64) Option {
	if sigma <= 0 {
		panic("envcov: WithDiagSize(sigma<=0)")
	}
	return func(c *envConfig) {
		c.diagSize = sigma
	}
}

// WithOffdiagMu sets the constant/mean off-diagonal term. Any real value.
func WithOffdiagMu(mu float64) Option {
	return func(c *envConfig) {
		c.offdiagMu = mu
	}
}

// WithOffdiagSize sets the spread of the scalar off-diagonal noise term (> 0).
// Panics if size <= 0.
func WithOffdiagSize(size float64) Option {
	if size <= 0 {
		panic("envcov: WithOffdiagSize(size<=0)")
	}
	return func(c *envConfig) {
		c.offdiagSize = size
	}
}

// WithDeltaSize sets the perturbation magnitude of the delta_* models.
// Any real value, including 0 (useful for round-trip checks).
func WithDeltaSize(d float64) Option {
	return func(c *envConfig) {
		c.deltaSize = d
	}
}

// WithNDelta sets how many odorants the delta_* models perturb when no
// explicit positions are given (> 0). The n_delta ≤ N constraint depends on
// N and is checked at generation time. Panics if k < 1.
func WithNDelta(k int) Option {
	if k < 1 {
		panic("envcov: WithNDelta(k<1)")
	}
	return func(c *envConfig) {
		c.nDelta = k
	}
}

// WithDeltaPositions pins the perturbed odorants to explicit 1-based
// positions, overriding the random choice. Positions must be ≥ 1 and
// pairwise distinct (panic on static violation); the ≤ N bound is checked
// at generation time. The slice is copied.
func WithDeltaPositions(pos ...int) Option {
	if len(pos) == 0 {
		panic("envcov: WithDeltaPositions(empty)")
	}
	seen := make(map[int]struct{}, len(pos))
	for _, p := range pos {
		if p < 1 {
			panic("envcov: WithDeltaPositions(p<1)")
		}
		if _, dup := seen[p]; dup {
			panic("envcov: WithDeltaPositions(duplicate position)")
		}
		seen[p] = struct{}{}
	}
	cp := make([]int, len(pos))
	copy(cp, pos)
	return func(c *envConfig) {
		c.deltaPos = cp
	}
}

// WithFactorRows fixes the latent factor-matrix row count (> 0), replacing
// the default 10·N rule. Panics if rows < 1.
func WithFactorRows(rows int) Option {
	if rows < 1 {
		panic("envcov: WithFactorRows(rows<1)")
	}
	return func(c *envConfig) {
		c.factorRows = rows
		c.factorRowsRule = nil // fixed count wins; rule is never consulted
	}
}

// WithFactorRowsRule sets a rows-from-N rule, replacing the default 10·N.
// The rule is resolved once per call; a result < 1 surfaces as
// ErrOptionViolation. Panics on nil.
func WithFactorRowsRule(rule FactorRowsRule) Option {
	if rule == nil {
		panic("envcov: WithFactorRowsRule(nil)")
	}
	return func(c *envConfig) {
		c.factorRows = 0
		c.factorRowsRule = rule
	}
}

// WithFactorSize sets the entry stdev of factor matrices and of the
// square-root perturbation noise (> 0). Panics if size <= 0.
func WithFactorSize(size float64) Option {
	if size <= 0 {
		panic("envcov: WithFactorSize(size<=0)")
	}
	return func(c *envConfig) {
		c.factorSize = size
	}
}

// WithFactorNoise is WithFactorSize relaxed to admit 0 (no noise at all),
// which turns ModelDeltaRndUnif into an exact Γ₀ round trip. Negative
// values still panic.
func WithFactorNoise(size float64) Option {
	if size < 0 {
		panic("envcov: WithFactorNoise(size<0)")
	}
	return func(c *envConfig) {
		c.factorSize = size
	}
}

// WithCorrBeta sets the concentration parameter β handed to the correlation
// sampler (> 0); larger β concentrates toward the identity. Panics if b <= 0.
func WithCorrBeta(b float64) Option {
	if b <= 0 {
		panic("envcov: WithCorrBeta(b<=0)")
	}
	return func(c *envConfig) {
		c.corrBeta = b
	}
}

// WithCorrSampler swaps the correlation-matrix capability (default:
// randcorr.Sample). Panics on nil.
func WithCorrSampler(fn CorrSampler) Option {
	if fn == nil {
		panic("envcov: WithCorrSampler(nil)")
	}
	return func(c *envConfig) {
		c.corrFn = fn
	}
}

// WithRand provides an explicit RNG for every stochastic draw.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("envcov: WithRand(nil)")
	}
	return func(c *envConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *envConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLogger sets the logger that receives the advisory PSD warning.
// Panics on nil; the default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("envcov: WithLogger(nil)")
	}
	return func(c *envConfig) {
		c.logger = l
	}
}
