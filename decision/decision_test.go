package decision_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lstsched/decision"
	"github.com/katalvlaran/lstsched/greedy"
	"github.com/katalvlaran/lstsched/instance"
	"github.com/katalvlaran/lstsched/matching"
	"github.com/katalvlaran/lstsched/solver"
)

func reference() *instance.Matrix {
	return instance.MustNew([][]int64{{2, 4, 3, 2}, {3, 1, 6, 2}, {1, 3, 2, 5}})
}

// checkSolution asserts the structural guarantees of a successful decision.
func checkSolution(t *testing.T, p *instance.Matrix, sol *decision.Solution) {
	t.Helper()
	require.Len(t, sol.Assignment, p.Jobs())
	assert.Equal(t, p.Load(sol.Assignment), sol.Loads)
	assert.Equal(t, p.Makespan(sol.Assignment), sol.Makespan)
	assert.LessOrEqual(t, sol.Makespan, 2*sol.D)
	assert.LessOrEqual(t, sol.LPMakespan, float64(sol.D)+1e-4)
	assert.True(t, sol.Graph.IsPseudoforest())
	for j, i := range sol.Assignment {
		assert.LessOrEqual(t, p.At(i, j), sol.D, "job %d on machine %d above threshold", j, i)
		assert.Greater(t, sol.Fractional.Value(i, j), 0.0, "job %d on machine %d outside support", j, i)
	}
	require.NoError(t, matching.Verify(sol.Graph, sol.Matching.Forced, sol.Matching.Matched))
}

func TestDecide_Reference(t *testing.T) {
	ctx := context.Background()
	p := reference()

	_, err := decision.Decide(ctx, p, 2)
	require.Error(t, err)
	assert.True(t, decision.IsFailure(err))
	require.ErrorIs(t, err, solver.ErrInfeasible)

	var f *decision.Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, int64(2), f.D)

	sol, err := decision.Decide(ctx, p, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), sol.D)
	checkSolution(t, p, sol)
	assert.LessOrEqual(t, sol.Makespan, int64(6))
}

func TestDecide_ThresholdExcludesEveryMachine(t *testing.T) {
	// job 2 needs at least 2 time units everywhere
	_, err := decision.Decide(context.Background(), reference(), 1)
	assert.True(t, decision.IsFailure(err))
	require.ErrorIs(t, err, solver.ErrInfeasible)
}

func TestDecide_SingleMachine(t *testing.T) {
	ctx := context.Background()
	p := instance.MustNew([][]int64{{3, 4, 5}})

	for d := int64(0); d < 12; d++ {
		_, err := decision.Decide(ctx, p, d)
		assert.True(t, decision.IsFailure(err), "d=%d", d)
	}
	for _, d := range []int64{12, 13, 40} {
		sol, err := decision.Decide(ctx, p, d)
		require.NoError(t, err, "d=%d", d)
		assert.Equal(t, int64(12), sol.Makespan)
		assert.Equal(t, []int{0, 0, 0}, sol.Assignment)
	}
}

func TestDecide_IntegralInstance(t *testing.T) {
	// a diagonal instance has a unique integral LP optimum at d=1
	p := instance.MustNew([][]int64{{1, 9, 9}, {9, 1, 9}, {9, 9, 1}})

	sol, err := decision.Decide(context.Background(), p, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, sol.Assignment)
	assert.Len(t, sol.Matching.Forced, 3)
	assert.Empty(t, sol.Matching.Matched)
	assert.Equal(t, int64(1), sol.Makespan)
}

func TestDecide_FatalErrors(t *testing.T) {
	ctx := context.Background()

	_, err := decision.Decide(ctx, nil, 3)
	require.ErrorIs(t, err, instance.ErrInvalidMatrix)
	assert.False(t, decision.IsFailure(err))

	_, err = decision.Decide(ctx, reference(), -1)
	require.ErrorIs(t, err, solver.ErrBadDeadlines)
	assert.False(t, decision.IsFailure(err))

	_, err = decision.Decide(ctx, reference(), 3, decision.WithEpsilon(0.7))
	require.ErrorIs(t, err, decision.ErrOptionViolation)

	_, err = decision.Decide(ctx, reference(), 3, decision.WithTimeout(-1))
	require.ErrorIs(t, err, decision.ErrOptionViolation)
}

func TestDecide_CancelledIsFailure(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := decision.Decide(ctx, reference(), 3)
	assert.True(t, decision.IsFailure(err))
	require.ErrorIs(t, err, solver.ErrTimeout)
}

func TestExact_Reference(t *testing.T) {
	opt, err := decision.Exact(context.Background(), reference())
	require.NoError(t, err)
	assert.Equal(t, int64(3), opt.Makespan)
	assert.Equal(t, reference().Load(opt.Assignment), opt.Loads)
	assert.Positive(t, opt.Nodes)

	_, err = decision.Exact(context.Background(), reference(), decision.WithNodeLimit(0))
	require.ErrorIs(t, err, decision.ErrOptionViolation)
}

func TestDecide_RandomInstances(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))

	for iter := 0; iter < 25; iter++ {
		m, n := 1+rng.Intn(3), 1+rng.Intn(5)
		p, err := instance.Random(m, n, 1, 9, rng)
		require.NoError(t, err)

		opt, err := decision.Exact(ctx, p)
		require.NoError(t, err)
		t0 := greedy.Makespan(p)
		assert.LessOrEqual(t, opt.Makespan, t0)
		assert.LessOrEqual(t, t0, int64(m)*opt.Makespan)

		// the optimum is LP-feasible at d = OPT, so the procedure accepts it
		sol, err := decision.Decide(ctx, p, opt.Makespan)
		require.NoError(t, err, "iteration %d: %v", iter, p.Rows())
		checkSolution(t, p, sol)
		assert.LessOrEqual(t, sol.Makespan, 2*opt.Makespan)

		sol, err = decision.Decide(ctx, p, t0)
		require.NoError(t, err)
		checkSolution(t, p, sol)

		ip, err := decision.IntegralAt(ctx, p, opt.Makespan)
		require.NoError(t, err)
		assert.Equal(t, opt.Makespan, ip.Makespan)
	}
}

func TestDecide_DegenerateLPIsBounded(t *testing.T) {
	p := instance.MustNew([][]int64{
		{48, 91, 92, 29, 96, 2, 82, 69, 89, 16, 87, 52, 35, 0, 83, 47, 94},
		{61, 45, 18, 57, 77, 11, 14, 80, 89, 65, 63, 19, 95, 47, 75, 28, 75},
		{73, 53, 55, 91, 0, 70, 29, 48, 25, 73, 91, 52, 42, 23, 96, 90, 43},
		{79, 60, 7, 21, 45, 17, 68, 85, 70, 49, 9, 99, 86, 77, 66, 49, 5},
		{54, 98, 61, 41, 47, 83, 51, 64, 52, 25, 89, 68, 1, 21, 89, 84, 26},
	})
	budget := 2 * time.Second

	for _, d := range []int64{83, 84, 85} {
		start := time.Now()
		sol, err := decision.Decide(context.Background(), p, d, decision.WithTimeout(budget))
		require.Less(t, time.Since(start), 3*budget, "d=%d", d)
		if err != nil {
			assert.True(t, decision.IsFailure(err), "d=%d", d)
			require.ErrorIs(t, err, solver.ErrTimeout, "d=%d", d)
			continue
		}
		checkSolution(t, p, sol)
	}
}

func TestIntegralAt(t *testing.T) {
	ctx := context.Background()

	ip, err := decision.IntegralAt(ctx, reference(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), ip.Makespan)
	assert.Equal(t, reference().Load(ip.Assignment), ip.Loads)
	for j, i := range ip.Assignment {
		assert.LessOrEqual(t, reference().At(i, j), int64(3))
	}

	_, err = decision.IntegralAt(ctx, reference(), 2)
	assert.True(t, decision.IsFailure(err))
	require.ErrorIs(t, err, solver.ErrInfeasible)

	_, err = decision.IntegralAt(ctx, nil, 3)
	require.ErrorIs(t, err, instance.ErrInvalidMatrix)

	_, err = decision.IntegralAt(ctx, reference(), 3, decision.WithNodeLimit(1))
	if err != nil {
		require.ErrorIs(t, err, solver.ErrTimeout)
	}
}

func TestDefaultOptions_HaveBudget(t *testing.T) {
	assert.Equal(t, solver.DefaultTimeout, decision.DefaultOptions().Timeout)
}
