package envcov_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/olfenv/envcov"
)

// TestAllModelsReturnSymmetric sweeps every model over several sizes and
// asserts exact symmetry of the returned Γ (post-processing contract).
func TestAllModelsReturnSymmetric(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 3, 9} {
		base := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			base.SetSym(i, i, 2)
			if i+1 < n {
				base.SetSym(i, i+1, 0.3)
			}
		}

		for _, m := range envcov.Models() {
			var (
				gamma *mat.SymDense
				err   error
			)
			opts := []envcov.Option{envcov.WithSeed(int64(n)), envcov.WithFactorSize(0.5)}
			if m.RequiresBase() {
				gamma, _, err = envcov.GenerateFrom(m, base, opts...)
			} else {
				gamma, _, err = envcov.Generate(m, n, opts...)
			}
			require.NoError(t, err, "model %s n=%d", m, n)

			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					require.Equal(t, gamma.At(i, j), gamma.At(j, i),
						"model %s n=%d (%d,%d)", m, n, i, j)
				}
			}
		}
	}
}

// TestPSDClampInsideBand: an eigenvalue inside [−1e-12, 0) is rounding
// noise and must be clamped to 0 via eigendecomposition reconstruction.
func TestPSDClampInsideBand(t *testing.T) {
	t.Parallel()

	// Base I₂, bump Γ[1,1] by −(1+1e-13): eigenvalue −1e-13 lands inside
	// the clamp band.
	base := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	gamma, det, err := envcov.GenerateFrom(envcov.ModelDeltaRndDiag, base,
		envcov.WithSeed(1), envcov.WithDeltaPositions(2), envcov.WithDeltaSize(-(1 + 1e-13)))
	require.NoError(t, err)

	minEigen := det[envcov.DetailMinEigen].(float64)
	require.Less(t, minEigen, 0.0)
	require.GreaterOrEqual(t, minEigen, -1e-12)

	// After reconstruction the offending direction carries weight ~0.
	require.InDelta(t, 0.0, gamma.At(1, 1), 1e-12)
	require.InDelta(t, 1.0, gamma.At(0, 0), 1e-12)
}

// TestPSDWarningBeyondBand: an eigenvalue below −1e-12 is an advisory —
// warn on the configured logger and return the matrix UNMODIFIED.
func TestPSDWarningBeyondBand(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	base := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	gamma, det, err := envcov.GenerateFrom(envcov.ModelDeltaRndDiag, base,
		envcov.WithSeed(1), envcov.WithLogger(logger),
		envcov.WithDeltaPositions(2), envcov.WithDeltaSize(-3))
	require.NoError(t, err, "policy is warn, not fail")

	// Uncorrected: Γ[1,1] keeps its negative value.
	require.Equal(t, -2.0, gamma.At(1, 1))
	require.InDelta(t, -2.0, det[envcov.DetailMinEigen].(float64), 1e-12)

	// The advisory reached the logger.
	require.Contains(t, buf.String(), "not positive semidefinite")
	require.Contains(t, buf.String(), "min_eigenvalue")
}

// TestMinEigenAlwaysReported: every successful generation records the
// pre-clamp minimum eigenvalue.
func TestMinEigenAlwaysReported(t *testing.T) {
	t.Parallel()

	for _, m := range []envcov.Model{envcov.ModelIdentity, envcov.ModelRndDiag, envcov.ModelRndProduct} {
		_, det, err := envcov.Generate(m, 4, envcov.WithSeed(2))
		require.NoError(t, err, "model %s", m)
		_, ok := det[envcov.DetailMinEigen].(float64)
		require.True(t, ok, "model %s must report min_eigen", m)
	}
}
