// Command taskmatch solves an assignment problem read from a file or
// stdin and prints the optimal (or greedy) agent→task pairing.
//
// Input format: one matrix row per line, whitespace-separated numbers,
// entry (i, j) = cost (or time) of agent i on task j. Blank lines are
// ignored. Rectangular matrices are zero-padded to square before
// solving; pairs landing on padding rows/columns are printed like any
// other pair, with indices past the original dimensions.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/taskmatch/assign"
)

var (
	inputPath string // matrix source, "-" for stdin
	criterion string // "cost" or "time"
	method    string // "exact" or "greedy"
)

// rootCmd reads the matrix, prepares the working matrix and solves it.
var rootCmd = &cobra.Command{
	Use:   "taskmatch",
	Short: "Solve the agent-to-task assignment problem",
	Long: `taskmatch matches agents to tasks one-to-one over a cost/time matrix.

Reads one matrix row per line (whitespace-separated numbers), prepares a
square working matrix for the chosen criterion, and solves it with either
the exact Hungarian algorithm or a fast greedy heuristic.

Examples:
  taskmatch --input costs.txt --criterion cost --method exact
  cat times.txt | taskmatch -i - -c time -m greedy`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "-", `matrix file, or "-" for stdin`)
	rootCmd.Flags().StringVarP(&criterion, "criterion", "c", "cost", `optimization criterion: "cost" or "time"`)
	rootCmd.Flags().StringVarP(&method, "method", "m", "exact", `solve method: "exact" or "greedy"`)
}

func runSolve(cmd *cobra.Command, _ []string) error {
	crit, err := parseCriterion(criterion)
	if err != nil {
		return err
	}
	meth, err := parseMethod(method)
	if err != nil {
		return err
	}

	raw, err := readMatrix(inputPath)
	if err != nil {
		return err
	}

	working, err := assign.PrepareWorkingMatrix(raw, crit)
	if err != nil {
		return err
	}

	res, err := assign.Solve(working, meth)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Working matrix (%s, %s):\n%s", crit, meth, working)
	fmt.Fprintln(out, "\nAssignments:")
	for _, p := range res.Pairs {
		// 1-based numbering for display.
		fmt.Fprintf(out, "Agent %d → Task %d\n", p.Agent+1, p.Task+1)
	}
	fmt.Fprintf(out, "\nOptimized total: %g\n", res.TotalCost)

	return nil
}

// parseCriterion maps a flag value onto a Criterion.
func parseCriterion(s string) (assign.Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cost":
		return assign.Cost, nil
	case "time":
		return assign.Time, nil
	default:
		return 0, fmt.Errorf("%w: %q (use \"cost\" or \"time\")", assign.ErrUnknownCriterion, s)
	}
}

// parseMethod maps a flag value onto a Method.
func parseMethod(s string) (assign.Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return assign.ExactHungarian, nil
	case "greedy":
		return assign.GreedyMin, nil
	default:
		return 0, fmt.Errorf("%w: %q (use \"exact\" or \"greedy\")", assign.ErrUnknownMethod, s)
	}
}

// readMatrix loads rows of whitespace-separated numbers from path,
// or from stdin when path is "-". Blank lines are skipped; shape
// validation is left to the assign package.
func readMatrix(path string) ([][]float64, error) {
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open matrix: %w", err)
		}
		defer f.Close()
		r = f
	}

	return parseRows(r)
}

// parseRows converts reader lines into matrix rows.
func parseRows(r io.Reader) ([][]float64, error) {
	var (
		rows    [][]float64
		scanner = bufio.NewScanner(r)
		lineNo  int
	)
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue // skip blank lines
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad number %q: %w", lineNo, f, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}

	return rows, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
