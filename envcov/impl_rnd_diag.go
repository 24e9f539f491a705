// SPDX-License-Identifier: MIT
// Package: olfenv/envcov
//
// impl_rnd_diag.go - implementations of the rnd_diag model family.
//
// Canonical recipes:
//   - rnd_diag:       diagonal entries i.i.d. lognormal with target mean
//     diag_mu and target stdev diag_size (lognormal recipe in lognormal.go);
//     off-diagonal entries are zero.
//   - rnd_diag_const: rnd_diag, then the scalar offdiag_mu added to EVERY
//     entry. The shift raises the diagonal too; that is the documented
//     recipe, kept as-is.
//   - rnd_diag_rnd:   rnd_diag, then the single scalar
//     offdiag_mu + 2·(offdiag_size − 0.5)·offdiag_size added to every entry.
//     The noise term is computed ONCE per call and broadcast, NOT drawn per
//     entry; being a scalar, its symmetrization is a no-op.
//
// Determinism:
//   - Stable draw order: diagonal index ascending; one stream draw per
//     diagonal entry, none for the broadcast term.
//
// Details: ln_mu, ln_sigma (all three variants).
//
// Complexity: O(N) draws + O(N²) writes for the broadcast variants.

package envcov

import "gonum.org/v1/gonum/mat"

// genRndDiag fills the diagonal with lognormal draws targeting
// (cfg.diagMu, cfg.diagSize); off-diagonal entries stay zero.
func genRndDiag(n int, cfg envConfig) (*mat.Dense, Details, error) {
	lnMu, lnSigma := lognormalParams(cfg.diagMu, cfg.diagSize)

	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		g.Set(i, i, drawLognormal(cfg, lnMu, lnSigma))
	}

	return g, Details{DetailLnMu: lnMu, DetailLnSigma: lnSigma}, nil
}

// genRndDiagConst is genRndDiag plus the constant offdiag_mu on every entry.
func genRndDiagConst(n int, cfg envConfig) (*mat.Dense, Details, error) {
	g, det, err := genRndDiag(n, cfg)
	if err != nil {
		return nil, nil, err
	}
	addScalar(g, cfg.offdiagMu)
	return g, det, nil
}

// genRndDiagRnd is genRndDiag plus one scalar noise term on every entry.
// The term is offdiag_mu + 2·(offdiag_size − 0.5)·offdiag_size, evaluated
// once; no per-entry randomness is involved.
func genRndDiagRnd(n int, cfg envConfig) (*mat.Dense, Details, error) {
	g, det, err := genRndDiag(n, cfg)
	if err != nil {
		return nil, nil, err
	}
	offDiag := cfg.offdiagMu + 2*(cfg.offdiagSize-0.5)*cfg.offdiagSize
	addScalar(g, offDiag)
	return g, det, nil
}

// addScalar adds s to every entry of g in place. O(N²).
func addScalar(g *mat.Dense, s float64) {
	r, c := g.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			g.Set(i, j, g.At(i, j)+s)
		}
	}
}
