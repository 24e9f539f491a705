package envcov_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/olfenv/envcov"
)

// TestRndProductPSD verifies Γ = MᵀM is PSD by construction for several
// factor-rows choices, including rows < N (rank-deficient on purpose).
func TestRndProductPSD(t *testing.T) {
	t.Parallel()

	const n = 10
	for _, rows := range []int{1, 3, n, 4 * n} {
		gamma, det, err := envcov.Generate(envcov.ModelRndProduct, n,
			envcov.WithSeed(int64(rows)), envcov.WithFactorRows(rows))
		require.NoError(t, err, "rows=%d", rows)
		require.Equal(t, n, gamma.SymmetricDim())

		minEigen := det[envcov.DetailMinEigen].(float64)
		require.GreaterOrEqual(t, minEigen, -1e-12, "rows=%d", rows)
	}
}

// TestRndProductFactorShape verifies the reported factor matrix and the
// default 10·N rows rule.
func TestRndProductFactorShape(t *testing.T) {
	t.Parallel()

	const n = 6
	_, det, err := envcov.Generate(envcov.ModelRndProduct, n, envcov.WithSeed(3))
	require.NoError(t, err)

	factor, ok := det[envcov.DetailFactor].(*mat.Dense)
	require.True(t, ok, "factor artifact type")
	r, c := factor.Dims()
	require.Equal(t, 10*n, r, "default rule is 10·N")
	require.Equal(t, n, c)

	// Fixed rows override.
	_, det, err = envcov.Generate(envcov.ModelRndProduct, n,
		envcov.WithSeed(3), envcov.WithFactorRows(4))
	require.NoError(t, err)
	r, _ = det[envcov.DetailFactor].(*mat.Dense).Dims()
	require.Equal(t, 4, r)
}

// TestRndProductMatchesFactor verifies Γ against an explicit MᵀM recompute
// of the reported factor.
func TestRndProductMatchesFactor(t *testing.T) {
	t.Parallel()

	const n = 5
	gamma, det, err := envcov.Generate(envcov.ModelRndProduct, n,
		envcov.WithSeed(9), envcov.WithFactorRows(7), envcov.WithFactorSize(0.5))
	require.NoError(t, err)

	factor := det[envcov.DetailFactor].(*mat.Dense)
	var want mat.Dense
	want.Mul(factor.T(), factor)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, want.At(i, j), gamma.At(i, j), 1e-12, "(%d,%d)", i, j)
		}
	}
}

// TestRndCorrWithStubSampler isolates the variance scaling: an identity
// correlation matrix must yield Γ = diag(variances).
func TestRndCorrWithStubSampler(t *testing.T) {
	t.Parallel()

	const n = 7
	identity := func(n int, beta float64, rng *rand.Rand) (*mat.SymDense, error) {
		s := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			s.SetSym(i, i, 1)
		}
		return s, nil
	}

	gamma, det, err := envcov.Generate(envcov.ModelRndCorr, n,
		envcov.WithSeed(31), envcov.WithCorrSampler(identity))
	require.NoError(t, err)

	variances, ok := det[envcov.DetailVariances].([]float64)
	require.True(t, ok, "variances artifact type")
	require.Len(t, variances, n)

	for i := 0; i < n; i++ {
		require.InDelta(t, variances[i], gamma.At(i, i), 1e-12, "diag %d", i)
		for j := 0; j < n; j++ {
			if i != j {
				require.InDelta(t, 0, gamma.At(i, j), 1e-12, "(%d,%d)", i, j)
			}
		}
	}
	require.Contains(t, det, envcov.DetailLnMu)
	require.Contains(t, det, envcov.DetailLnSigma)
}

// TestRndCorrDefaultSampler runs the full path through randcorr: unit-trace
// structure is gone, but Γ must stay symmetric PSD with diagonal equal to
// the sampled variances.
func TestRndCorrDefaultSampler(t *testing.T) {
	t.Parallel()

	const n = 8
	gamma, det, err := envcov.Generate(envcov.ModelRndCorr, n,
		envcov.WithSeed(47), envcov.WithCorrBeta(2.5))
	require.NoError(t, err)

	variances := det[envcov.DetailVariances].([]float64)
	for i := 0; i < n; i++ {
		require.InDelta(t, variances[i], gamma.At(i, i), 1e-9, "diag %d", i)
	}
	require.GreaterOrEqual(t, det[envcov.DetailMinEigen].(float64), -1e-12)
}
