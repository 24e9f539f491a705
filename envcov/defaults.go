// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// defaults.go — the diagnostic "defaults" mode: a stable listing of every
// recognized option, its default value and its domain constraint. Used for
// discoverability (envgen defaults); it generates nothing and cannot fail.

package envcov

// OptionDefault describes one recognized option for the diagnostic listing.
// Value is the resolved default; rule-valued defaults (factor_rows) carry a
// human-readable rendering of the rule.
type OptionDefault struct {
	Name       string `json:"name" yaml:"name"`
	Value      any    `json:"value" yaml:"value"`
	Constraint string `json:"constraint" yaml:"constraint"`
	Meaning    string `json:"meaning" yaml:"meaning"`
}

// Defaults returns the full set of recognized options with their default
// values, in stable (documentation) order. The slice is freshly allocated
// on every call; callers may mutate it freely.
func Defaults() []OptionDefault {
	return []OptionDefault{
		{
			Name:       "diag_mu",
			Value:      DefaultDiagMu,
			Constraint: "> 0",
			Meaning:    "target mean of lognormal diagonal entries",
		},
		{
			Name:       "diag_size",
			Value:      DefaultDiagSize,
			Constraint: "> 0",
			Meaning:    "target stdev of lognormal diagonal entries",
		},
		{
			Name:       "offdiag_mu",
			Value:      DefaultOffdiagMu,
			Constraint: "any real",
			Meaning:    "mean/constant term for off-diagonal entries",
		},
		{
			Name:       "offdiag_size",
			Value:      DefaultOffdiagSize,
			Constraint: "> 0",
			Meaning:    "spread of the scalar off-diagonal noise term",
		},
		{
			Name:       "delta_size",
			Value:      DefaultDeltaSize,
			Constraint: "any real",
			Meaning:    "magnitude added by delta_* perturbations",
		},
		{
			Name:       "n_delta",
			Value:      DefaultNDelta,
			Constraint: "> 0 integer, ≤ N",
			Meaning:    "count of odorants perturbed when positions not given",
		},
		{
			Name:       "delta_pos",
			Value:      []int(nil),
			Constraint: "1-based, distinct, each ≤ N, length ≤ N",
			Meaning:    "explicit odorant positions to perturb",
		},
		{
			Name:       "factor_rows",
			Value:      "10·N",
			Constraint: "> 0, fixed count or rule of N",
			Meaning:    "rows of the latent factor matrix",
		},
		{
			Name:       "factor_size",
			Value:      DefaultFactorSize,
			Constraint: "> 0 (≥ 0 via WithFactorNoise)",
			Meaning:    "stdev of factor-matrix entries / square-root noise",
		},
		{
			Name:       "corr_beta",
			Value:      DefaultCorrBeta,
			Constraint: "> 0",
			Meaning:    "concentration parameter of the correlation sampler",
		},
	}
}
