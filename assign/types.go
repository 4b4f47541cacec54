// Package assign defines core types, options, and sentinel errors
// for the assignment-problem solvers of github.com/katalvlaran/taskmatch.
package assign

import "errors"

// Sentinel errors for assignment operations.
var (
	// ErrUnknownCriterion indicates an optimization criterion that is
	// neither Cost nor Time.
	ErrUnknownCriterion = errors.New("assign: unknown optimization criterion")

	// ErrUnknownMethod indicates a solve method that is neither
	// ExactHungarian nor GreedyMin.
	ErrUnknownMethod = errors.New("assign: unknown solve method")
)

// Criterion selects what the cost matrix entries represent and how they
// are prepared before solving. Fixed per solve session; the prepared
// working matrix carries the choice implicitly.
type Criterion int

const (
	// Cost optimizes monetary (or abstract) cost: entries are minimized as-is.
	Cost Criterion = iota

	// Time optimizes time efficiency: entries are inverted against the
	// matrix maximum so that minimization favors the largest raw values.
	Time
)

// String returns the display name of the criterion.
func (c Criterion) String() string {
	switch c {
	case Cost:
		return "cost"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// Method selects the solving strategy.
type Method int

const (
	// ExactHungarian computes a provably optimal assignment via the
	// Hungarian (Kuhn–Munkres) algorithm in O(n³).
	ExactHungarian Method = iota

	// GreedyMin repeatedly picks the globally minimal remaining entry and
	// eliminates its row and column. Fast and deterministic, but not
	// guaranteed optimal: its total may strictly exceed ExactHungarian's
	// on the same matrix, which is accepted behavior.
	GreedyMin
)

// String returns the display name of the method.
func (m Method) String() string {
	switch m {
	case ExactHungarian:
		return "exact"
	case GreedyMin:
		return "greedy"
	default:
		return "unknown"
	}
}

// Pair matches one agent (row) to one task (column) of the working
// matrix. Indices past the original input's row or column count denote
// synthetic zero-cost padding introduced by Balance; they are reported
// uniformly with real pairs.
type Pair struct {
	Agent int // row index in the working matrix
	Task  int // column index in the working matrix
}

// Result holds the outcome of an assignment solver.
type Result struct {
	// Pairs is the full assignment, sorted by ascending Agent.
	// For an n×n working matrix, len(Pairs) == n, and both the Agent and
	// the Task coordinates form a permutation of 0..n-1.
	Pairs []Pair

	// TotalCost is the sum of working-matrix entries over Pairs,
	// rounded to 1e-9 for cross-platform stability.
	TotalCost float64
}
