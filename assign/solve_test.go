package assign_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/taskmatch/assign"
	"github.com/katalvlaran/taskmatch/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPrepareWorkingMatrix_CostPipeline verifies the full preparation
// pipeline on a rectangular input: identity transform, then zero-pad.
func TestPrepareWorkingMatrix_CostPipeline(t *testing.T) {
	working, err := assign.PrepareWorkingMatrix([][]float64{{1, 2, 3}, {4, 5, 6}}, assign.Cost)
	require.NoError(t, err)

	want := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{0, 0, 0},
	}
	assert.Equal(t, want, rowsOf(t, working))
}

// TestPrepareWorkingMatrix_TimePipeline verifies inversion happens
// before padding: padding zeros must not enter the max computation.
func TestPrepareWorkingMatrix_TimePipeline(t *testing.T) {
	working, err := assign.PrepareWorkingMatrix([][]float64{{2, 6, 4}, {8, 2, 6}}, assign.Time)
	require.NoError(t, err)

	// max = 8, inverted rows first, padding appended after.
	want := [][]float64{
		{6, 2, 4},
		{0, 6, 2},
		{0, 0, 0},
	}
	assert.Equal(t, want, rowsOf(t, working))
}

// TestPrepareWorkingMatrix_UnknownCriterion verifies criterion
// validation precedes every other step, ragged input included.
func TestPrepareWorkingMatrix_UnknownCriterion(t *testing.T) {
	_, err := assign.PrepareWorkingMatrix([][]float64{{1, 2}, {3}}, assign.Criterion(99))
	assert.ErrorIs(t, err, assign.ErrUnknownCriterion,
		"unknown criterion must fail before any matrix transform is attempted")
}

// TestPrepareWorkingMatrix_ShapeErrors verifies ragged and empty raw
// input surface the matrix shape sentinels.
func TestPrepareWorkingMatrix_ShapeErrors(t *testing.T) {
	_, err := assign.PrepareWorkingMatrix([][]float64{{1, 2}, {3}}, assign.Cost)
	assert.ErrorIs(t, err, matrix.ErrRaggedRows, "ragged input must error")

	_, err = assign.PrepareWorkingMatrix(nil, assign.Cost)
	assert.ErrorIs(t, err, matrix.ErrEmptyMatrix, "nil input must error")

	_, err = assign.PrepareWorkingMatrix([][]float64{}, assign.Cost)
	assert.ErrorIs(t, err, matrix.ErrEmptyMatrix, "zero-row input must error")
}

// TestSolve_Routing verifies the dispatcher reaches both solvers and
// rejects unknown methods.
func TestSolve_Routing(t *testing.T) {
	working, err := assign.PrepareWorkingMatrix([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}, assign.Cost)
	require.NoError(t, err)

	exact, err := assign.Solve(working, assign.ExactHungarian)
	require.NoError(t, err)
	assert.Equal(t, 5.0, exact.TotalCost)

	greedy, err := assign.Solve(working, assign.GreedyMin)
	require.NoError(t, err)
	assert.Equal(t, 6.0, greedy.TotalCost)

	_, err = assign.Solve(working, assign.Method(99))
	assert.ErrorIs(t, err, assign.ErrUnknownMethod)
}

// TestSolveRaw_EndToEnd runs the one-shot pipeline on a rectangular
// Time instance and checks every invariant on the output.
func TestSolveRaw_EndToEnd(t *testing.T) {
	res, err := assign.SolveRaw([][]float64{{2, 6, 4}, {8, 2, 6}}, assign.Time, assign.ExactHungarian)
	require.NoError(t, err)
	assertBijection(t, res.Pairs, 3)

	// Working matrix is {{6,2,4},{0,6,2},{0,0,0}}; the optimum picks
	// 2 at (0,1), 0 at (1,0), 0 at (2,2) → total 2.
	assert.Equal(t, 2.0, res.TotalCost)
}

// TestSolve_ConcurrentStrategies runs both solvers concurrently over
// the same working matrix. Each receives a private copy of the
// entries, so no synchronization beyond the WaitGroup is needed.
func TestSolve_ConcurrentStrategies(t *testing.T) {
	working, err := assign.PrepareWorkingMatrix([][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}, assign.Cost)
	require.NoError(t, err)

	seqExact, err := assign.Solve(working, assign.ExactHungarian)
	require.NoError(t, err)
	seqGreedy, err := assign.Solve(working, assign.GreedyMin)
	require.NoError(t, err)

	var (
		wg        sync.WaitGroup
		conExact  assign.Result
		conGreedy assign.Result
		errExact  error
		errGreedy error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		conExact, errExact = assign.Solve(working, assign.ExactHungarian)
	}()
	go func() {
		defer wg.Done()
		conGreedy, errGreedy = assign.Solve(working, assign.GreedyMin)
	}()
	wg.Wait()

	require.NoError(t, errExact)
	require.NoError(t, errGreedy)
	assert.Equal(t, seqExact, conExact, "concurrent exact solve must match sequential")
	assert.Equal(t, seqGreedy, conGreedy, "concurrent greedy solve must match sequential")
}

// TestPairsCost_Validation covers the cost helper's sentinel surface.
func TestPairsCost_Validation(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2}, {3, 4}})

	total, err := assign.PairsCost(m, []assign.Pair{{Agent: 0, Task: 1}, {Agent: 1, Task: 0}})
	require.NoError(t, err)
	assert.Equal(t, 5.0, total)

	_, err = assign.PairsCost(m, []assign.Pair{{Agent: 2, Task: 0}})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange, "out-of-range pair must error")

	rect := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = assign.PairsCost(rect, nil)
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "non-square matrix must error")
}
