package qsat

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/theapemachine/errnie"
)

/*
Trial is the outcome of one independent solve attempt inside an ensemble.
*/
type Trial struct {
	ID         string
	Assignment Assignment
	Satisfied  bool
	Err        error
	Elapsed    time.Duration
}

/*
RunEnsemble runs `trials` independent solve attempts concurrently, each
with its own register and its own random source seeded from `seed` plus
the trial index, so the whole batch is reproducible. Registers are never
shared between attempts — each goroutine owns its amplitude vector for
the full solve.

Amplitude amplification is probabilistic, so the interesting output is
usually the aggregate satisfaction rate rather than any single trial.
*/
func RunEnsemble(numVars int, clauses []Clause, estimatedSolutions, trials int, seed int64) ([]Trial, *Metrics, error) {
	if err := Formula(clauses).Validate(numVars); err != nil {
		return nil, nil, err
	}
	if _, err := OptimalIterations(numVars, estimatedSolutions); err != nil {
		return nil, nil, err
	}

	results := make([]Trial, trials)
	metrics := newMetrics()

	var wg sync.WaitGroup
	for i := 0; i < trials; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			start := time.Now()
			solver := NewSolver(WithSeed(seed + int64(i)))
			assignment, satisfied, err := solver.SolveSAT(numVars, clauses, estimatedSolutions)
			results[i] = Trial{
				ID:         uuid.NewString(),
				Assignment: assignment,
				Satisfied:  satisfied,
				Err:        err,
				Elapsed:    time.Since(start),
			}
			if err == nil {
				metrics.recordSolve(start, satisfied)
			}
		}(i)
	}
	wg.Wait()

	errnie.Info(
		"RunEnsemble - trials %v, satisfied %v, rate %v",
		trials, metrics.Satisfied, metrics.SatisfactionRate(),
	)
	return results, metrics, nil
}
