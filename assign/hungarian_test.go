package assign_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/taskmatch/assign"
	"github.com/katalvlaran/taskmatch/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForceMin finds the optimal total by exhaustive search over all
// n! column permutations. Usable as an oracle for small n only.
func bruteForceMin(t *testing.T, grid [][]float64) float64 {
	t.Helper()
	n := len(grid)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	best := math.Inf(1)
	var walk func(k int)
	walk = func(k int) {
		if k == n {
			var sum float64
			for r, c := range perm {
				sum += grid[r][c]
			}
			if sum < best {
				best = sum
			}

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			walk(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	walk(0)

	return best
}

// assertBijection verifies both coordinates of the pairs form a
// permutation of 0..n-1.
func assertBijection(t *testing.T, pairs []assign.Pair, n int) {
	t.Helper()
	require.Len(t, pairs, n, "assignment must produce exactly n pairs")

	agents := make([]bool, n)
	tasks := make([]bool, n)
	for _, p := range pairs {
		require.GreaterOrEqual(t, p.Agent, 0)
		require.Less(t, p.Agent, n)
		require.GreaterOrEqual(t, p.Task, 0)
		require.Less(t, p.Task, n)
		assert.False(t, agents[p.Agent], "agent %d assigned twice", p.Agent)
		assert.False(t, tasks[p.Task], "task %d assigned twice", p.Task)
		agents[p.Agent] = true
		tasks[p.Task] = true
	}
}

// TestSolveExact_KnownScenario solves the reference 3×3 matrix and
// checks the result against exhaustive search: the optimum is the
// pairing (0,1)=1, (1,0)=2, (2,2)=2 with total 5.
func TestSolveExact_KnownScenario(t *testing.T) {
	grid := [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}
	m := mustDense(t, grid)

	res, err := assign.SolveExact(m)
	require.NoError(t, err)

	assert.Equal(t, bruteForceMin(t, grid), res.TotalCost,
		"exact solver must match the brute-force minimum")
	assert.Equal(t, 5.0, res.TotalCost)
	assert.Equal(t, []assign.Pair{{Agent: 0, Task: 1}, {Agent: 1, Task: 0}, {Agent: 2, Task: 2}}, res.Pairs)
}

// TestSolveExact_MatchesBruteForce cross-checks the solver against the
// exhaustive oracle on seeded random matrices up to 6×6.
func TestSolveExact_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for n := 1; n <= 6; n++ {
		for trial := 0; trial < 10; trial++ {
			grid := make([][]float64, n)
			for i := range grid {
				grid[i] = make([]float64, n)
				for j := range grid[i] {
					grid[i][j] = float64(rng.Intn(100))
				}
			}

			res, err := assign.SolveExact(mustDense(t, grid))
			require.NoError(t, err, "n=%d trial=%d", n, trial)
			assertBijection(t, res.Pairs, n)
			assert.Equal(t, bruteForceMin(t, grid), res.TotalCost,
				"n=%d trial=%d: exact total must equal brute-force minimum", n, trial)
		}
	}
}

// TestSolveExact_Deterministic verifies repeated runs on the same input
// produce identical output, ties included.
func TestSolveExact_Deterministic(t *testing.T) {
	// All-equal entries: every permutation is optimal, so only the fixed
	// tie-break keeps the output stable.
	m := mustDense(t, [][]float64{{7, 7, 7}, {7, 7, 7}, {7, 7, 7}})

	first, err := assign.SolveExact(m)
	require.NoError(t, err)
	for run := 0; run < 5; run++ {
		again, err := assign.SolveExact(m)
		require.NoError(t, err)
		assert.Equal(t, first, again, "run %d must reproduce the first result", run)
	}
}

// TestSolveExact_NonSquare verifies the shape sentinel fires before any
// algorithmic work.
func TestSolveExact_NonSquare(t *testing.T) {
	m := mustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := assign.SolveExact(m)
	assert.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestSolveExact_DominatesGreedy verifies exactness dominance: on any
// non-negative working matrix the exact total never exceeds the greedy
// total.
func TestSolveExact_DominatesGreedy(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.Intn(7)
		grid := make([][]float64, n)
		for i := range grid {
			grid[i] = make([]float64, n)
			for j := range grid[i] {
				grid[i][j] = float64(rng.Intn(50))
			}
		}
		m := mustDense(t, grid)

		exact, err := assign.SolveExact(m)
		require.NoError(t, err)
		greedy, err := assign.SolveGreedy(m)
		require.NoError(t, err)

		assert.LessOrEqual(t, exact.TotalCost, greedy.TotalCost,
			"trial %d: exact must never cost more than greedy", trial)
	}
}

// TestSolveExact_DoesNotMutateInput verifies the solver works on a
// private copy.
func TestSolveExact_DoesNotMutateInput(t *testing.T) {
	in := [][]float64{{4, 1, 3}, {2, 0, 5}, {3, 2, 2}}
	m := mustDense(t, in)

	_, err := assign.SolveExact(m)
	require.NoError(t, err)
	assert.Equal(t, in, rowsOf(t, m), "input matrix must survive the solve untouched")
}
