// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// lognormal.go — the lognormal recipe: converting a target (mean, stdev) of
// a lognormal-distributed quantity into the (mean, stdev) of its underlying
// normal, and drawing samples on the injected stream.

package envcov

import "math"

// lognormalParams converts the target mean μ and stdev σ of a lognormal
// variable X into the parameters of the underlying normal ln X:
//
//	ln_mu    = ln(μ² / √(σ² + μ²))
//	ln_sigma = √(ln(σ²/μ² + 1))
//
// Both inputs must be > 0 (enforced by the option constructors).
// Complexity: O(1).
func lognormalParams(mu, sigma float64) (lnMu, lnSigma float64) {
	lnMu = math.Log(mu * mu / math.Sqrt(sigma*sigma+mu*mu))
	lnSigma = math.Sqrt(math.Log(sigma*sigma/(mu*mu) + 1))
	return lnMu, lnSigma
}

// drawLognormal samples exp(ln_mu + ln_sigma·Z), Z ~ N(0,1), from cfg.rng.
// One stream draw per call; determinism follows the stream state.
func drawLognormal(cfg envConfig, lnMu, lnSigma float64) float64 {
	return math.Exp(lnMu + lnSigma*cfg.rng.NormFloat64())
}
