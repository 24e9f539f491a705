// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// api.go - thin public entry-points for the envcov package.
//
// Design contract (strict):
//   - Two orchestrators: Generate(model, n, opts...) for size-driven models
//     and GenerateFrom(model, Γ₀, opts...) for the full set with N inferred
//     from the base. Both resolve options once, dispatch over the closed
//     Model set, and post-process identically.
//   - Base matrices are copied before any model touches them; a caller's Γ₀
//     is never mutated.
//   - Post-processing (finalize) applies to EVERY model output: symmetry
//     gate at StrictTol, unconditional ½(Γ+Γᵀ) symmetrization, eigenvalue
//     clamp inside the tolerance band, advisory warning beyond it.
//   - Safety: never panic at runtime; return sentinel errors wrapped once at
//     this boundary with the model context.

package envcov

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Generate synthesizes an N×N environment covariance matrix under the given
// model and returns it together with the model's generation artifacts.
//
// Perturbation models (Model.RequiresBase() == true) are rejected with
// ErrBaseRequired; use GenerateFrom. n must be ≥ 1 (ErrInvalidSize).
//
// Errors: ErrUnknownModel, ErrInvalidSize, ErrBaseRequired,
// ErrOptionViolation, ErrAsymmetry, ErrEigenFailed, ErrCorrSampler —
// branch with errors.Is.
//
// Complexity: model-dependent, O(N²) to O(N³); see doc.go.
func Generate(model Model, n int, opts ...Option) (*mat.SymDense, Details, error) {
	if model.RequiresBase() {
		return nil, nil, fmt.Errorf("Generate: model %q needs GenerateFrom: %w", model, ErrBaseRequired)
	}
	return dispatch(model, n, nil, newEnvConfig(opts...))
}

// GenerateFrom synthesizes an environment covariance matrix with N inferred
// from the supplied base Γ₀. Perturbation models read the base; size-driven
// models use it for N inference only (mirroring the original size-or-base
// positional contract). The base is copied, never mutated.
//
// A nil or empty base yields ErrInvalidSize.
func GenerateFrom(model Model, base mat.Symmetric, opts ...Option) (*mat.SymDense, Details, error) {
	if base == nil {
		return nil, nil, fmt.Errorf("GenerateFrom: nil base: %w", ErrInvalidSize)
	}
	n := base.SymmetricDim()
	if n < 1 {
		return nil, nil, fmt.Errorf("GenerateFrom: empty base: %w", ErrInvalidSize)
	}

	// Snapshot the base: models operate on a private copy.
	b := mat.NewSymDense(n, nil)
	b.CopySym(base)

	return dispatch(model, n, b, newEnvConfig(opts...))
}

// BaseFromDense validates a raw square matrix as a usable base Γ₀ and
// returns its symmetrized copy. Shape violations yield ErrNonSquare;
// asymmetry above StrictTol yields ErrAsymmetry (an off-tolerance input is
// the caller's bug, not repairable data).
//
// Complexity: O(N²) time, O(N²) space for the copy.
func BaseFromDense(m *mat.Dense) (*mat.SymDense, error) {
	if m == nil {
		return nil, fmt.Errorf("BaseFromDense: nil matrix: %w", ErrInvalidSize)
	}
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("BaseFromDense: %d×%d: %w", r, c, ErrNonSquare)
	}
	if r < 1 {
		return nil, fmt.Errorf("BaseFromDense: empty matrix: %w", ErrInvalidSize)
	}
	if asym := maxAsymmetry(m); asym > StrictTol {
		return nil, fmt.Errorf("BaseFromDense: max asymmetry %.3e > %.0e: %w", asym, StrictTol, ErrAsymmetry)
	}
	return symmetrize(m), nil
}

// dispatch routes to the model implementation and post-processes the raw
// output. base is non-nil exactly for the GenerateFrom path; perturbation
// models have already been guarded against a nil base by Generate.
func dispatch(model Model, n int, base *mat.SymDense, cfg envConfig) (*mat.SymDense, Details, error) {
	// Membership first (unknown model wins over a bad size), then N ≥ 1.
	if _, err := ParseModel(string(model)); err != nil {
		return nil, nil, fmt.Errorf("Generate: %q: %w", model, ErrUnknownModel)
	}
	if err := validateSize(string(model), n); err != nil {
		return nil, nil, err
	}

	var (
		raw *mat.Dense
		det Details
		err error
	)
	// Closed set: one arm per Model constant; anything else is unknown.
	switch model {
	case ModelIdentity:
		raw, det, err = genIdentity(n)
	case ModelRndDiag:
		raw, det, err = genRndDiag(n, cfg)
	case ModelRndDiagConst:
		raw, det, err = genRndDiagConst(n, cfg)
	case ModelRndDiagRnd:
		raw, det, err = genRndDiagRnd(n, cfg)
	case ModelRndProduct:
		raw, det, err = genRndProduct(n, cfg)
	case ModelRndCorr:
		raw, det, err = genRndCorr(n, cfg)
	case ModelDeltaRndDiag:
		raw, det, err = genDeltaRndDiag(n, base, cfg)
	case ModelDeltaRndProd:
		raw, det, err = genDeltaRndProd(n, base, cfg)
	case ModelDeltaRndUnif:
		raw, det, err = genDeltaRndUnif(n, base, cfg)
	default:
		return nil, nil, fmt.Errorf("Generate: %q: %w", model, ErrUnknownModel)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("Generate(%s): %w", model, err)
	}

	// Uniform post-processing: symmetry gate, symmetrization, PSD policy.
	sym, err := finalize(raw, cfg, det)
	if err != nil {
		return nil, nil, fmt.Errorf("Generate(%s): %w", model, err)
	}

	return sym, det, nil
}
