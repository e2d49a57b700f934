package algogpp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	algogpp "github.com/cwbudde/algo-gpp"
)

func TestSolveTestReference(t *testing.T) {
	p := algogpp.NewTestProblem()

	for _, strat := range []algogpp.Strategy{
		algogpp.KernelStraight,
		algogpp.KernelFused,
		algogpp.KernelParallel,
	} {
		t.Run(strat.String(), func(t *testing.T) {
			res, err := algogpp.Solve(p, algogpp.WithStrategy(strat))
			require.NoError(t, err)
			require.Equal(t, strat, res.Strategy)
			require.NoError(t, algogpp.TestReference.Check(res))
		})
	}
}

func TestSolveBenchmarkReference(t *testing.T) {
	if testing.Short() {
		t.Skip("benchmark sizing runs ~8e10 inner iterations")
	}

	p := algogpp.NewBenchmarkProblem()

	res, err := algogpp.Solve(p, algogpp.WithStrategy(algogpp.KernelParallel))
	require.NoError(t, err)
	require.NoError(t, algogpp.BenchmarkReference.Check(res))
}

func TestSolveDeterministic(t *testing.T) {
	p := algogpp.NewSyntheticProblem(algogpp.Sizing{NumBands: 32, Nvband: 2, NCouls: 64, NodesPerGroup: 4})

	first, err := algogpp.Solve(p, algogpp.WithStrategy(algogpp.KernelStraight))
	require.NoError(t, err)

	second, err := algogpp.Solve(p, algogpp.WithStrategy(algogpp.KernelStraight))
	require.NoError(t, err)

	require.Equal(t, first.AchtempRe, second.AchtempRe)
	require.Equal(t, first.AchtempIm, second.AchtempIm)
}

func TestSolveParallelReproduciblePerWorkerCount(t *testing.T) {
	p := algogpp.NewTestProblem()

	run := func() *algogpp.Result[float64] {
		res, err := algogpp.Solve(p,
			algogpp.WithStrategy(algogpp.KernelParallel),
			algogpp.WithWorkers(3),
		)
		require.NoError(t, err)

		return res
	}

	first := run()
	second := run()

	require.Equal(t, first.AchtempRe, second.AchtempRe)
	require.Equal(t, first.AchtempIm, second.AchtempIm)
}

// Scaling vcoul by a constant scales the accumulators by the same constant:
// every term carries exactly one vcoul factor.
func TestSolveVcoulLinearity(t *testing.T) {
	sizing := algogpp.Sizing{NumBands: 32, Nvband: 2, NCouls: 64, NodesPerGroup: 4}
	const k = 2.5

	base, err := algogpp.Solve(algogpp.NewSyntheticProblem(sizing), algogpp.WithStrategy(algogpp.KernelStraight))
	require.NoError(t, err)

	scaled := algogpp.NewSyntheticProblem(sizing)
	for i := range scaled.Vcoul {
		scaled.Vcoul[i] *= k
	}

	got, err := algogpp.Solve(scaled, algogpp.WithStrategy(algogpp.KernelStraight))
	require.NoError(t, err)

	for iw := 0; iw < algogpp.NumFreq; iw++ {
		require.InEpsilon(t, k*base.AchtempRe[iw], got.AchtempRe[iw], 1e-12)
		require.InEpsilon(t, k*base.AchtempIm[iw], got.AchtempIm[iw], 1e-12)
	}
}

func TestSolveZeroBands(t *testing.T) {
	p := algogpp.NewProblem[float64](0, 2, 8)
	p.Wx = []float64{3, 4, 5}

	res, err := algogpp.Solve(p)
	require.NoError(t, err)

	for iw := 0; iw < p.NW; iw++ {
		require.Zero(t, res.AchtempRe[iw])
		require.Zero(t, res.AchtempIm[iw])
	}
}

func TestSolveZeroGroups(t *testing.T) {
	p := algogpp.NewProblem[float64](4, 0, 8)
	p.Wx = []float64{3, 4, 5}

	res, err := algogpp.Solve(p)
	require.NoError(t, err)

	for iw := 0; iw < p.NW; iw++ {
		require.Zero(t, res.AchtempRe[iw])
		require.Zero(t, res.AchtempIm[iw])
	}
}

func TestSolveValidation(t *testing.T) {
	t.Run("bad sentinel value", func(t *testing.T) {
		p := algogpp.NewTestProblem()
		p.Indinv[p.NCouls] = 0

		_, err := algogpp.Solve(p)
		require.ErrorIs(t, err, algogpp.ErrBadSentinel)
	})

	t.Run("short indinv", func(t *testing.T) {
		p := algogpp.NewTestProblem()
		p.Indinv = p.Indinv[:p.NCouls]

		_, err := algogpp.Solve(p)
		require.ErrorIs(t, err, algogpp.ErrLengthMismatch)
	})

	t.Run("indirection out of range", func(t *testing.T) {
		p := algogpp.NewTestProblem()
		p.InvIgpIndex[0] = int32(p.NCouls + 1)

		_, err := algogpp.Solve(p)
		require.ErrorIs(t, err, algogpp.ErrIndexOutOfRange)
	})

	t.Run("indinv column out of range", func(t *testing.T) {
		p := algogpp.NewTestProblem()
		p.Indinv[3] = int32(p.NCouls)

		_, err := algogpp.Solve(p)
		require.ErrorIs(t, err, algogpp.ErrIndexOutOfRange)
	})

	t.Run("nil wx", func(t *testing.T) {
		p := algogpp.NewTestProblem()
		p.Wx = nil

		_, err := algogpp.Solve(p)
		require.ErrorIs(t, err, algogpp.ErrNilSlice)
	})

	t.Run("truncated wtilde", func(t *testing.T) {
		p := algogpp.NewTestProblem()
		p.Wtilde = p.Wtilde[:5]

		_, err := algogpp.Solve(p)
		require.ErrorIs(t, err, algogpp.ErrLengthMismatch)
	})

	t.Run("non-positive ncouls", func(t *testing.T) {
		p := algogpp.NewTestProblem()
		p.NCouls = 0

		_, err := algogpp.Solve(p)
		require.ErrorIs(t, err, algogpp.ErrInvalidSize)
	})
}

func TestResultAchtempAssembly(t *testing.T) {
	p := algogpp.NewSyntheticProblem(algogpp.Sizing{NumBands: 8, Nvband: 2, NCouls: 32, NodesPerGroup: 4})

	res, err := algogpp.Solve(p, algogpp.WithStrategy(algogpp.KernelFused))
	require.NoError(t, err)

	for iw := 0; iw < p.NW; iw++ {
		ach := res.Achtemp(iw)
		require.Equal(t, res.AchtempRe[iw], ach.Real())
		require.Equal(t, res.AchtempIm[iw], ach.Imag())
	}
}

func TestParseStrategy(t *testing.T) {
	s, err := algogpp.ParseStrategy("parallel")
	require.NoError(t, err)
	require.Equal(t, algogpp.KernelParallel, s)

	_, err = algogpp.ParseStrategy("simd")
	require.ErrorIs(t, err, algogpp.ErrUnknownStrategy)
}
