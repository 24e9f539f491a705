// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// constants.go — numeric policy and default option values.
//
// DEFAULTS — single source of truth for zero-value behavior. These constants
// MUST reflect the intended defaults in newEnvConfig and in Defaults().

package envcov

// Numeric policy.
const (
	// StrictTol is the strict tolerance band shared by the symmetry gate and
	// the PSD policy: asymmetry above StrictTol is fatal; eigenvalues inside
	// [−StrictTol, 0) are clamped to 0; eigenvalues below −StrictTol trigger
	// the advisory warning.
	StrictTol = 1e-12
)

// Default option values (see the Defaults() listing for constraints).
const (
	// DefaultDiagMu is the target mean of lognormal diagonal entries.
	DefaultDiagMu = 1.0

	// DefaultDiagSize is the target stdev of lognormal diagonal entries.
	DefaultDiagSize = 1.0

	// DefaultOffdiagMu is the constant/mean term for off-diagonal recipes.
	DefaultOffdiagMu = 0.0

	// DefaultOffdiagSize is the spread term of the scalar off-diagonal noise.
	DefaultOffdiagSize = 1.0

	// DefaultDeltaSize is the magnitude added by delta_* perturbations.
	DefaultDeltaSize = 1.0

	// DefaultNDelta is how many odorants are perturbed when no explicit
	// positions are supplied.
	DefaultNDelta = 1

	// DefaultFactorRowsScale is the multiplier of the default factor-rows
	// rule: rows(N) = DefaultFactorRowsScale · N.
	DefaultFactorRowsScale = 10

	// DefaultFactorSize is the entry stdev of factor matrices and of the
	// square-root perturbation noise.
	DefaultFactorSize = 1.0

	// DefaultCorrBeta is the concentration parameter handed to the
	// correlation-matrix sampler.
	DefaultCorrBeta = 1.0
)
