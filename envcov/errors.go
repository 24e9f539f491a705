// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// errors.go — sentinel errors for the envcov package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using `%w`.
//   • Models MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package envcov

import "errors"

// ErrInvalidSize indicates that the requested dimension N is smaller than 1,
// or that a supplied base matrix is nil or empty.
// Classification: validation error (parameters).
// Usage: if errors.Is(err, ErrInvalidSize) { /* fix N / base */ }.
var ErrInvalidSize = errors.New("envcov: invalid size")

// ErrUnknownModel indicates that the model name is not in the enumerated set.
// ParseModel and the Generate dispatch both return it.
// Usage: if errors.Is(err, ErrUnknownModel) { /* list envcov.Models() */ }.
var ErrUnknownModel = errors.New("envcov: unknown model")

// ErrBaseRequired indicates that a perturbation model (delta_*) was invoked
// through Generate, which supplies only a size; use GenerateFrom with Γ₀.
var ErrBaseRequired = errors.New("envcov: model requires a base matrix")

// ErrNonSquare signals that a raw base candidate is not square.
// Returned by BaseFromDense before any symmetry inspection.
var ErrNonSquare = errors.New("envcov: matrix is not square")

// ErrAsymmetry signals that a matrix violated the strict symmetry band
// (max|A−Aᵀ| > 1e-12). For generated matrices this is a fatal invariant
// violation — it indicates a bug in a model implementation, not a
// recoverable runtime condition — and no matrix is returned.
var ErrAsymmetry = errors.New("envcov: matrix is not symmetric within tolerance")

// ErrNotPSD classifies the advisory "eigenvalue below −1e-12" condition.
// It is never returned by Generate/GenerateFrom (policy: warn, don't fail);
// it exists so the CLI and tests can name the condition uniformly.
var ErrNotPSD = errors.New("envcov: matrix is not positive semidefinite")

// ErrOptionViolation indicates that an option value violates an N-dependent
// domain constraint discoverable only at generation time (delta positions
// out of [1,N] or duplicated, n_delta > N, a factor-rows rule yielding < 1).
// Static nonsense (e.g. WithDiagMu(0)) panics in the option constructor.
var ErrOptionViolation = errors.New("envcov: invalid option value")

// ErrEigenFailed indicates that the symmetric eigendecomposition used by
// post-processing (or the PSD square root) did not converge. Extremely
// unlikely for well-scaled inputs; surfaced rather than swallowed.
var ErrEigenFailed = errors.New("envcov: eigendecomposition failed")

// ErrCorrSampler indicates that the correlation-matrix capability returned
// an error or a matrix of the wrong dimension for ModelRndCorr.
var ErrCorrSampler = errors.New("envcov: correlation sampler failed")

// --- Implementation Notes ----------------------------------------------------
//
// Error priority (tie-break guidance when multiple validations fail):
//   • ErrBaseRequired    — entry-point compatibility first (Generate only).
//   • ErrUnknownModel    — then model membership.
//   • ErrInvalidSize     — then N / base shape.
//   • ErrOptionViolation — then N-dependent option domains.
//   • ErrAsymmetry / ErrEigenFailed — post-processing, after generation.
//
// Testing guidance: table tests asserting errors.Is(err, ErrX); never match
// message text. Edge cases: n=0, nil base, delta_pos=[0], n_delta>N,
// unknown model string.
