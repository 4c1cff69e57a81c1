package qsat

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
Solver wires the pieces together: it validates the problem, builds the
oracle, sizes a register, runs the Grover schedule and classically
re-checks the sampled assignment against the formula. One sample per
call — amplitude amplification is probabilistic and the caller decides
whether an unsatisfied verdict warrants another run.
*/
type Solver struct {
	cfg  *Config
	rand *rand.Rand
}

// SolverOption is a function type for configuring solvers
type SolverOption func(*Solver)

// WithSeed pins the measurement random source so runs can be replayed.
func WithSeed(seed int64) SolverOption {
	return func(s *Solver) {
		s.rand = rand.New(rand.NewSource(seed))
	}
}

// WithConfig replaces the default engine configuration.
func WithConfig(cfg *Config) SolverOption {
	return func(s *Solver) {
		s.cfg = cfg
	}
}

func NewSolver(opts ...SolverOption) *Solver {
	s := &Solver{
		cfg:  NewConfig(),
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

/*
SolveSAT runs one amplitude-amplification attempt against the CNF formula
and returns the sampled assignment together with the classical verdict.
estimatedSolutions feeds the iteration schedule and is trusted as given.

An unsatisfied sample is not an error: the verdict carries it and the
caller chooses whether to retry with a different estimate.
*/
func (s *Solver) SolveSAT(numVars int, clauses []Clause, estimatedSolutions int) (Assignment, bool, error) {
	runID := uuid.NewString()
	formula := Formula(clauses)

	oracle, err := NewOracle(numVars, formula)
	if err != nil {
		return nil, false, err
	}
	iterations, err := OptimalIterations(numVars, estimatedSolutions)
	if err != nil {
		return nil, false, err
	}
	errnie.Info(
		"SolveSAT %s - vars %v, clauses %v, estimate %v, iterations %v",
		runID, numVars, len(clauses), estimatedSolutions, iterations,
	)

	reg, err := NewRegister(numVars, oracleAncillas, s.rand, s.cfg)
	if err != nil {
		return nil, false, err
	}
	assignment, err := NewAmplifier(oracle, iterations).Run(reg)
	if err != nil {
		return nil, false, err
	}

	satisfied := EvaluateCNF(formula, assignment)
	errnie.Info("SolveSAT %s - sampled %v, satisfied %v", runID, assignment, satisfied)
	return assignment, satisfied, nil
}

// SolveSAT is the package-level convenience wrapper over a default,
// time-seeded Solver.
func SolveSAT(numVars int, clauses []Clause, estimatedSolutions int) (Assignment, bool, error) {
	return NewSolver().SolveSAT(numVars, clauses, estimatedSolutions)
}
