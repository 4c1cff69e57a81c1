package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/theapemachine/qsat"
)

var (
	flagSolutions int
	flagTrials    int
	flagSeed      int64
	flagClauses   string
	flagBits      int
)

var rootCmd = &cobra.Command{
	Use:   "qsat",
	Short: "Grover amplitude-amplification SAT demo",
	Long: `qsat runs a gate-level simulation of Grover's algorithm against a CNF
formula and samples a candidate assignment, or serves quantum-sampled
random bits. State vectors are dense, so keep the variable count small.`,
}

var solveCmd = &cobra.Command{
	Use:   "solve [file.cnf]",
	Short: "Sample an assignment for a CNF formula",
	Long: `solve reads a DIMACS CNF file (or inline clauses via --clauses, e.g.
"1 -2 3, -1 2 -3") and runs the amplitude-amplification schedule. With
--trials > 1 it runs an ensemble of independently seeded attempts and
reports the aggregate satisfaction rate.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

var randCmd = &cobra.Command{
	Use:   "rand",
	Short: "Sample uniform random bits by Hadamard-then-measure",
	RunE:  runRand,
}

func init() {
	solveCmd.Flags().IntVar(&flagSolutions, "solutions", 1, "estimated number of satisfying assignments")
	solveCmd.Flags().IntVar(&flagTrials, "trials", 1, "independent solve attempts to run")
	solveCmd.Flags().Int64Var(&flagSeed, "seed", 0, "measurement seed (0 means time-based)")
	solveCmd.Flags().StringVar(&flagClauses, "clauses", "", "inline clauses, comma-separated DIMACS literals")

	randCmd.Flags().IntVar(&flagBits, "bits", 16, "number of bits to sample")
	randCmd.Flags().Int64Var(&flagSeed, "seed", 0, "measurement seed (0 means time-based)")

	rootCmd.AddCommand(solveCmd, randCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	numVars, formula, err := loadProblem(args)
	if err != nil {
		return err
	}
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if flagTrials > 1 {
		trials, metrics, err := qsat.RunEnsemble(numVars, formula, flagSolutions, flagTrials, seed)
		if err != nil {
			return err
		}
		renderEnsemble(trials, metrics)
		return nil
	}

	solver := qsat.NewSolver(qsat.WithSeed(seed))
	assignment, satisfied, err := solver.SolveSAT(numVars, formula, flagSolutions)
	if err != nil {
		return err
	}
	renderAssignment(assignment, satisfied)
	return nil
}

func runRand(cmd *cobra.Command, args []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	bits, err := qsat.RandomBits(flagBits, rand.New(rand.NewSource(seed)), nil)
	if err != nil {
		return err
	}
	var sb strings.Builder
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	fmt.Println(sb.String())
	return nil
}

// loadProblem reads the formula from a DIMACS file argument or the
// --clauses flag, whichever was given.
func loadProblem(args []string) (int, qsat.Formula, error) {
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return 0, nil, err
		}
		defer f.Close()
		return qsat.ParseDIMACS(f)
	}
	if flagClauses == "" {
		return 0, nil, fmt.Errorf("either a DIMACS file or --clauses is required")
	}

	var ints [][]int
	numVars := 0
	for _, part := range strings.Split(flagClauses, ",") {
		var clause []int
		for _, tok := range strings.Fields(part) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return 0, nil, fmt.Errorf("bad literal %q: %w", tok, err)
			}
			clause = append(clause, v)
			if v < 0 {
				v = -v
			}
			if v > numVars {
				numVars = v
			}
		}
		if len(clause) > 0 {
			ints = append(ints, clause)
		}
	}
	return numVars, qsat.FromInts(ints), nil
}

func renderAssignment(assignment qsat.Assignment, satisfied bool) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Variable", "Value"})
	for i, v := range assignment {
		table.Append([]string{fmt.Sprintf("x%d", i+1), strconv.FormatBool(v)})
	}
	table.SetFooter([]string{"satisfied", strconv.FormatBool(satisfied)})
	table.Render()
}

func renderEnsemble(trials []qsat.Trial, metrics *qsat.Metrics) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Trial", "Assignment", "Satisfied"})
	for i, trial := range trials {
		if trial.Err != nil {
			table.Append([]string{strconv.Itoa(i), trial.Err.Error(), "-"})
			continue
		}
		table.Append([]string{strconv.Itoa(i), trial.Assignment.String(), strconv.FormatBool(trial.Satisfied)})
	}
	table.SetFooter([]string{"rate", "", fmt.Sprintf("%.2f", metrics.SatisfactionRate())})
	table.Render()
}
