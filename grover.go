package qsat

import (
	"math"

	"github.com/pkg/errors"
)

// oracleAncillas is how many scratch qubits the satisfaction oracle
// borrows: one result qubit plus one reusable clause qubit.
const oracleAncillas = 2

/*
OptimalIterations computes how many amplify/diffuse rounds maximize the
probability of sampling a marked state: with N = 2^numVars basis states
and M estimated solutions, the Grover rotation angle is
θ = arcsin(√(M/N)) and the best round count is round(π/4θ), clamped to at
least 1. The estimate is caller-supplied and deliberately not validated
against the true solution count.
*/
func OptimalIterations(numVars, estimatedSolutions int) (int, error) {
	if numVars <= 0 || numVars > MaxVariables {
		return 0, errors.Wrapf(ErrTooManyVariables, "numVars=%d, max=%d", numVars, MaxVariables)
	}
	n := float64(uint64(1) << uint(numVars))
	m := float64(estimatedSolutions)
	if estimatedSolutions <= 0 || m > n {
		return 0, errors.Wrapf(ErrInvalidSolutionEstimate,
			"estimate %d with %d variables (search space %g)", estimatedSolutions, numVars, n)
	}

	theta := math.Asin(math.Sqrt(m / n))
	iterations := int(math.Round(math.Pi / (4 * theta)))
	if iterations < 1 {
		// M close to N drives θ toward π/2 and the rounded count to 0;
		// a single round is still well defined.
		iterations = 1
	}
	return iterations, nil
}

/*
Amplifier drives the fixed Grover schedule over a register: uniform
superposition, then `iterations` rounds of oracle mark plus diffusion,
then a projective measurement of every variable qubit. The round count is
decided up front — no peeking at intermediate amplitudes.
*/
type Amplifier struct {
	oracle     *Oracle
	iterations int
}

func NewAmplifier(oracle *Oracle, iterations int) *Amplifier {
	return &Amplifier{oracle: oracle, iterations: iterations}
}

// Run evolves the register through the full schedule and returns the
// sampled assignment, qubit 0 measured first.
func (a *Amplifier) Run(reg *Register) (Assignment, error) {
	vars := make([]int, reg.NumVars())
	for q := range vars {
		vars[q] = q
		reg.Hadamard(q)
	}

	result, err := reg.AllocateAncilla()
	if err != nil {
		return nil, err
	}
	clauseAnc, err := reg.AllocateAncilla()
	if err != nil {
		return nil, err
	}

	for i := 0; i < a.iterations; i++ {
		if err := a.oracle.Apply(reg, result, clauseAnc); err != nil {
			return nil, err
		}
		Diffuse(reg, vars)
	}

	if err := reg.ReleaseAncilla(clauseAnc); err != nil {
		return nil, err
	}
	if err := reg.ReleaseAncilla(result); err != nil {
		return nil, err
	}

	assignment := make(Assignment, len(vars))
	for _, q := range vars {
		assignment[q] = reg.Measure(q)
	}
	return assignment, nil
}
