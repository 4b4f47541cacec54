package assign

import (
	"math"
	"sort"

	"github.com/katalvlaran/taskmatch/matrix"
)

// SolveGreedy computes an assignment by iterative minimum selection
// with row/column elimination.
//
// Each round scans the still-available cells for the minimal entry,
// records its (row, col) as a pair, then removes that entire row and
// column from future consideration. After exactly n rounds every row
// and column has been consumed once, yielding a full bijection.
//
// Tie-break policy: when several available cells share the minimum, the
// first one in row-major scan order wins (lowest row index, then lowest
// column index). The strict `<` comparison during the scan preserves
// the earliest hit, making the heuristic deterministic and reproducible.
//
// This strategy is NOT guaranteed optimal: its TotalCost can strictly
// exceed SolveExact's on the same working matrix. That is accepted
// behavior of the heuristic, not a defect.
//
// Error condition: a non-square (or nil/empty) input fails with a shape
// sentinel before any algorithmic work begins.
//
// Time complexity:  O(n³) — n rounds of an O(n²) scan.
// Memory complexity: O(n²) for the local working copy.
func SolveGreedy(m matrix.Matrix) (Result, error) {
	// Stage 1: validate shape and snapshot the input.
	n, err := validateSquare(m)
	if err != nil {
		return Result{}, err
	}
	a, err := toGrid(m, n)
	if err != nil {
		return Result{}, err
	}

	// Stage 2: elimination state. Consumed rows/columns are tracked in
	// explicit sets rather than overwritten with +Inf, so the working
	// grid stays readable for the final cost pass.
	var (
		rowDone = make([]bool, n) // rows already assigned
		colDone = make([]bool, n) // columns already assigned
		pairs   = make([]Pair, 0, n)
	)

	// Stage 3: n rounds of global-minimum selection.
	var (
		round, i, j  int     // round counter and scan indices
		bestI, bestJ int     // coordinates of the round's minimum
		best         float64 // value of the round's minimum
	)
	for round = 0; round < n; round++ {
		bestI, bestJ = -1, -1
		best = math.Inf(1)
		for i = 0; i < n; i++ { // row-major scan fixes the tie-break order
			if rowDone[i] {
				continue
			}
			for j = 0; j < n; j++ {
				if colDone[j] {
					continue
				}
				if a[i][j] < best {
					best = a[i][j]
					bestI, bestJ = i, j
				}
			}
		}
		pairs = append(pairs, Pair{Agent: bestI, Task: bestJ})
		rowDone[bestI] = true
		colDone[bestJ] = true
	}

	// Stage 4: canonical order — sort pairs by agent. Selection order is
	// a property of the heuristic's internals, not of the contract.
	sort.Slice(pairs, func(x, y int) bool { return pairs[x].Agent < pairs[y].Agent })

	// Stage 5: recompute the total against the supplied matrix.
	total, err := PairsCost(m, pairs)
	if err != nil {
		return Result{}, err
	}

	return Result{Pairs: pairs, TotalCost: total}, nil
}
