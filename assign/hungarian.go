package assign

import (
	"math"

	"github.com/katalvlaran/taskmatch/matrix"
)

// SolveExact computes a provably optimal assignment on a square cost
// matrix using the Hungarian (Kuhn–Munkres) algorithm in its
// potential/augmenting-path formulation.
//
// The input is an n×n working matrix m, where m[i][j] is the cost of
// matching agent i to task j. It returns a Result containing:
//   - Pairs: n (agent, task) pairs, sorted by agent, each coordinate a
//     permutation of 0..n-1.
//   - TotalCost: the minimal total, recomputed against m.
//
// Tie-breaking between equal-cost optima is arbitrary but deterministic:
// rows are absorbed in index order and the algorithm uses no randomness,
// so the same input always yields the same output.
//
// Algorithm outline:
//  1. Maintain dual potentials u (rows) and v (columns) with
//     u[i] + v[j] ≤ m[i][j], and a partial matching tight on reduced
//     costs.
//  2. For each row, grow an alternating tree over tight edges; when no
//     tight edge extends the tree, uniformly shift potentials by the
//     minimal reduced slack (delta) to create one.
//  3. Augment along the discovered path, extending the matching by one.
//
// After n augmentations the matching is perfect and, by LP duality,
// optimal.
//
// Error condition: a non-square (or nil/empty) input fails with a shape
// sentinel before any algorithmic work begins.
//
// Time complexity:  O(n³)
// Memory complexity: O(n²) for the local working copy, O(n) auxiliaries.
func SolveExact(m matrix.Matrix) (Result, error) {
	// --- 1. Validate shape and snapshot the input ---
	n, err := validateSquare(m)
	if err != nil {
		return Result{}, err
	}
	a, err := toGrid(m, n)
	if err != nil {
		return Result{}, err
	}

	inf := math.Inf(1)

	// --- 2. Allocate dual potentials and matching state ---
	// Indices run 1..n; slot 0 is the virtual root column used to seed
	// each augmenting search.
	u := make([]float64, n+1)    // row potentials
	v := make([]float64, n+1)    // column potentials
	p := make([]int, n+1)        // p[j] = row currently matched to column j (0 = free)
	way := make([]int, n+1)      // way[j] = previous column on the alternating path
	minv := make([]float64, n+1) // minimal reduced slack seen per column
	used := make([]bool, n+1)    // columns already in the alternating tree

	// --- 3. Absorb rows one by one, augmenting after each ---
	var (
		i, j, j0, j1 int     // row / column cursors
		i0           int     // row at the tree frontier
		cur, delta   float64 // reduced cost and minimal slack
	)
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 = p[j0]
			delta = inf
			j1 = 0
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = a[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			// Uniform potential shift keeps all tree edges tight while
			// creating at least one new tight edge.
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break // free column found
			}
		}

		// Augment: flip matched edges back along the alternating path.
		for {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
			if j0 == 0 {
				break
			}
		}
	}

	// --- 4. Read the matching out of p and order by agent ---
	taskOf := make([]int, n) // taskOf[agent] = assigned task
	for j = 1; j <= n; j++ {
		taskOf[p[j]-1] = j - 1
	}
	pairs := make([]Pair, n)
	for i = 0; i < n; i++ {
		pairs[i] = Pair{Agent: i, Task: taskOf[i]}
	}

	// --- 5. Recompute the total against the supplied matrix ---
	total, err := PairsCost(m, pairs)
	if err != nil {
		return Result{}, err
	}

	return Result{Pairs: pairs, TotalCost: total}, nil
}

// toGrid copies an n×n matrix into a local [][]float64 working grid.
// Solvers mutate only this copy, never the caller's matrix.
//
// Complexity: O(n²).
func toGrid(m matrix.Matrix, n int) ([][]float64, error) {
	// Fast path: Dense exports its storage without per-cell calls.
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}

	out := make([][]float64, n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out[i][j] = v
		}
	}

	return out, nil
}
