// Package olfenv is a toolkit for synthesizing statistical models of
// odorant environments — the covariance structure a nose (or a simulated
// one) experiences across N odorant dimensions.
//
// 🚀 What is olfenv?
//
//	A small, focused library that brings together:
//		• envcov:   random symmetric PSD "environment covariance" matrices
//		            under a closed family of generative models, with
//		            perturbation modes over a supplied base matrix
//		• randcorr: random correlation matrices via the vine method with a
//		            tunable concentration parameter β
//		• envgen:   a CLI to generate matrices, inspect defaults and export
//		            results as CSV/JSON
//
// ✨ Why choose olfenv?
//
//   - Deterministic by construction – every stochastic path runs on an
//     explicitly injected *rand.Rand (WithSeed/WithRand)
//   - Strict numeric policy – symmetry enforced to 1e-12, PSD violations
//     clamped inside tolerance and surfaced (never hidden) beyond it
//   - Sentinel errors everywhere – branch with errors.Is, never string-match
//
// Everything is organized under three subpackages:
//
//	envcov/     — the environment-covariance generator (core)
//	randcorr/   — random correlation matrices with concentration β
//	cmd/envgen/ — command-line front end
//
// Quick example:
//
//	Γ, det, err := envcov.Generate(envcov.ModelRndProduct, 16,
//	    envcov.WithSeed(42), envcov.WithFactorSize(0.5))
//
// See each subpackage's doc.go for contracts, error sentinels and
// complexity notes.
package olfenv
