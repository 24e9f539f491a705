// Package envcov generates random symmetric positive-semidefinite
// "environment covariance" matrices Γ over N odorant dimensions.
//
// The package offers the following key components:
//
//   - Generation models (closed set, see Model):
//     – ModelIdentity:     Γ = I_N.
//     – ModelRndDiag:      lognormal diagonal, zero off-diagonal.
//     – ModelRndDiagConst: lognormal diagonal plus a constant shift on
//     every entry (the shift raises the diagonal too; that is the
//     documented recipe, not an accident of implementation).
//     – ModelRndDiagRnd:   lognormal diagonal plus one scalar noise term
//     broadcast to every entry.
//     – ModelRndProduct:   Γ = MᵀM for a Gaussian factor matrix M.
//     – ModelRndCorr:      lognormal variances around a random correlation
//     matrix with concentration β (see randcorr).
//     – ModelDeltaRndDiag: Γ₀ plus a diagonal bump at chosen indices.
//     – ModelDeltaRndProd: Γ₀ plus a uniform bump on a chosen
//     indices×indices submatrix.
//     – ModelDeltaRndUnif: Γ = MᵀM where M is the symmetric PSD square
//     root of Γ₀ with Gaussian entry noise.
//   - Configuration primitives:
//     – Option:            a function that mutates envConfig before use.
//     – envConfig:         holds RNG, moment targets, perturbation knobs.
//     – Defaults():        the recognized options with default values,
//     the package's diagnostic "defaults" mode.
//   - Post-processing (applied to every model's output):
//     – symmetry gate:     max|Γ−Γᵀ| above 1e-12 is a fatal invariant
//     violation (ErrAsymmetry); below it, Γ is symmetrized to ½(Γ+Γᵀ).
//     – PSD policy:        eigenvalues inside [−1e-12, 0) are clamped to 0
//     via eigendecomposition reconstruction; anything below −1e-12 is
//     logged as a warning and the matrix is returned UNMODIFIED.
//   - Artifact reporting:
//     – Details:           per-model named intermediates (ln_mu, ln_sigma,
//     factor, idxs, delta, variances) plus min_eigen from post-processing.
//
// Guarantees:
//
//   - Deterministic for a fixed RNG state: every random draw runs on the
//     injected *rand.Rand (WithSeed / WithRand); the shared fallback stream
//     is advanced by every draw and needs external serialization if two
//     goroutines generate concurrently and care about reproducibility.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; runtime domain violations (N-dependent) surface as
//     ErrOptionViolation.
//   - Structured sentinel errors for every failure class; branch with
//     errors.Is, never match strings.
//   - Base matrices (Γ₀) are read-only: perturbation models copy, never
//     mutate.
//
// Complexity: O(N²) for diagonal/delta models, O(K·N²) for factor products
// (K = factor rows), O(N³) where eigendecomposition or matrix square roots
// are involved (ModelDeltaRndUnif and the PSD clamp path).
//
// See individual files for per-model contracts and error priority.
package envcov
