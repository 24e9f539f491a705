// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// types.go — the closed model enumeration and the Details artifact record.
//
// Design:
//   • Model is a string-typed enum whose constants carry the canonical
//     model names; ParseModel is the only sanctioned string→Model path.
//   • The dispatch switch in api.go covers every constant exhaustively;
//     any value outside the set falls through to ErrUnknownModel.
//   • Details is a name→value record; a model populates only the keys it
//     produces, and absence of a key means "not produced by this model".

package envcov

import "fmt"

// Model enumerates the supported generation strategies.
// The set is closed: new models require a new constant, a new impl_*.go and
// a new arm in the dispatch switch.
type Model string

const (
	// ModelIdentity builds Γ = I_N. Deterministic; no artifacts.
	ModelIdentity Model = "identity"

	// ModelRndDiag draws lognormal diagonal entries targeting mean diag_mu
	// and stdev diag_size; off-diagonal entries are zero.
	ModelRndDiag Model = "rnd_diag"

	// ModelRndDiagConst is ModelRndDiag plus the scalar offdiag_mu added to
	// every entry, diagonal included (documented recipe quirk).
	ModelRndDiagConst Model = "rnd_diag_const"

	// ModelRndDiagRnd is ModelRndDiag plus one scalar noise term
	// offdiag_mu + 2·(offdiag_size−0.5)·offdiag_size broadcast to every
	// entry. The term is computed ONCE per call, not drawn per entry.
	ModelRndDiagRnd Model = "rnd_diag_rnd"

	// ModelRndProduct draws a (factor_rows × N) Gaussian factor matrix M
	// with entry stdev factor_size and returns Γ = MᵀM (PSD by construction).
	ModelRndProduct Model = "rnd_product"

	// ModelRndCorr scales a random correlation matrix (concentration
	// corr_beta) by lognormal per-dimension variances:
	// Γ = diag(√v)·C·diag(√v).
	ModelRndCorr Model = "rnd_corr"

	// ModelDeltaRndDiag adds delta_size to the diagonal of Γ₀ at n_delta
	// random indices (or at delta_pos when given).
	ModelDeltaRndDiag Model = "delta_rnd_diag"

	// ModelDeltaRndProd adds delta_size to every entry of the chosen
	// indices×indices submatrix of Γ₀ (variance and covariance together).
	ModelDeltaRndProd Model = "delta_rnd_prod"

	// ModelDeltaRndUnif perturbs the symmetric PSD square root M₀ of Γ₀
	// with i.i.d. Gaussian noise (stdev factor_size) and returns M₀ᵀM₀.
	ModelDeltaRndUnif Model = "delta_rnd_unif"
)

// models lists every generation model in canonical order.
// Used by Models() and by CLI completion; dispatch does NOT range over it.
var models = []Model{
	ModelIdentity,
	ModelRndDiag,
	ModelRndDiagConst,
	ModelRndDiagRnd,
	ModelRndProduct,
	ModelRndCorr,
	ModelDeltaRndDiag,
	ModelDeltaRndProd,
	ModelDeltaRndUnif,
}

// Models returns the canonical ordering of all generation models.
// The returned slice is a copy; callers may mutate it freely.
func Models() []Model {
	out := make([]Model, len(models))
	copy(out, models)
	return out
}

// ParseModel maps a model name to its Model constant.
// It returns ErrUnknownModel (wrapped with the offending name) for any
// string outside the enumerated set, including "defaults" — the diagnostic
// listing is a separate entry point (Defaults()), not a generation model.
func ParseModel(name string) (Model, error) {
	for _, m := range models {
		if string(m) == name {
			return m, nil
		}
	}
	return "", fmt.Errorf("ParseModel: %q: %w", name, ErrUnknownModel)
}

// String returns the canonical model name.
func (m Model) String() string { return string(m) }

// RequiresBase reports whether the model perturbs a supplied Γ₀ and is
// therefore only reachable through GenerateFrom.
func (m Model) RequiresBase() bool {
	switch m {
	case ModelDeltaRndDiag, ModelDeltaRndProd, ModelDeltaRndUnif:
		return true
	default:
		return false
	}
}

// Detail keys. A model stores only the artifacts it actually produced;
// DetailMinEigen is stored by post-processing for every model.
const (
	// DetailLnMu is the underlying-normal mean of the lognormal recipe.
	DetailLnMu = "ln_mu"
	// DetailLnSigma is the underlying-normal stdev of the lognormal recipe.
	DetailLnSigma = "ln_sigma"
	// DetailFactor is the factor matrix M (ModelRndProduct) or the perturbed
	// PSD square root M₀ (ModelDeltaRndUnif); value type *mat.Dense.
	DetailFactor = "factor"
	// DetailIdxs is the zero-based perturbed index set; value type []int.
	DetailIdxs = "idxs"
	// DetailDelta is the length-N diagonal bump vector; value type []float64.
	DetailDelta = "delta"
	// DetailVariances is the sampled per-dimension variance vector
	// (ModelRndCorr); value type []float64.
	DetailVariances = "variances"
	// DetailMinEigen is the minimum eigenvalue observed BEFORE any clamping;
	// value type float64. Always present.
	DetailMinEigen = "min_eigen"
)

// Details maps artifact names (Detail* constants) to the values a model
// produced during generation. Absence of a key means the chosen model does
// not produce that artifact.
type Details map[string]any
