package qsat

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

// ErrInvariantViolated is returned when a defensive check finds the state
// vector in a shape the circuit contract forbids.
var ErrInvariantViolated = errors.New("internal invariant violated")

/*
Oracle is the phase-marking circuit built from a CNF formula.

It is a diagonal operator on the variable subspace: amplitudes of marked
basis states are negated, everything else is left alone, and the two
scratch ancillas it borrows come back disentangled on |0⟩. That last part
is the load-bearing contract — any amplitude leaked into an ancilla would
silently corrupt every following Grover iteration.

The marking is computed reversibly: each clause's verdict is accumulated
into a scratch qubit with controlled flips, folded into the result qubit,
then uncomputed gate-for-gate so the scratch qubit can be reused on the
next clause. The phase flip itself is a single Z on the result qubit, and
the whole forward computation is replayed afterwards to return the result
qubit to |0⟩.
*/
type Oracle struct {
	formula Formula
	numVars int
}

// NewOracle validates the formula against the variable count and builds
// the oracle. Validation happens here, before any gate is ever applied.
func NewOracle(numVars int, formula Formula) (*Oracle, error) {
	if err := formula.Validate(numVars); err != nil {
		return nil, err
	}
	return &Oracle{formula: formula, numVars: numVars}, nil
}

/*
Apply runs the oracle on the register, using result and clauseAnc as the
two scratch ancillas. Gate order is fixed:

 1. X on the result qubit.
 2. Per clause: accumulate literals into clauseAnc (a positive literal is
    a plain controlled-X off its variable qubit; a negative literal is the
    same controlled-X sandwiched between two X gates on the variable, so
    the negative sense is tested and the variable restored), fold with a
    controlled-X from clauseAnc onto result, then replay the literal gates
    in reverse to clear clauseAnc.
 3. Z on the result qubit — the actual phase mark.
 4. Replay steps 1–2 to steer the result qubit back onto |0⟩.

Every gate involved is self-inverse, so the replay is an exact uncompute.
*/
func (o *Oracle) Apply(reg *Register, result, clauseAnc int) error {
	reg.PauliX(result)
	for _, clause := range o.formula {
		o.applyClause(reg, clause, clauseAnc, result)
	}
	reg.PhaseZ(result)
	for _, clause := range o.formula {
		o.applyClause(reg, clause, clauseAnc, result)
	}
	reg.PauliX(result)

	if reg.cfg.CheckInvariants {
		return o.checkAncillas(reg, result, clauseAnc)
	}
	return nil
}

// applyClause folds one clause's verdict into the result qubit and leaves
// clauseAnc back on |0⟩. Self-inverse as a whole.
func (o *Oracle) applyClause(reg *Register, clause Clause, clauseAnc, result int) {
	o.markLiterals(reg, clause, clauseAnc, false)
	reg.ControlledX([]int{clauseAnc}, result)
	o.markLiterals(reg, clause, clauseAnc, true)
}

// markLiterals accumulates the clause's literals into the ancilla, or
// undoes exactly that when reverse is set.
func (o *Oracle) markLiterals(reg *Register, clause Clause, anc int, reverse bool) {
	for i := range clause {
		lit := clause[i]
		if reverse {
			lit = clause[len(clause)-1-i]
		}
		q := lit.Var - 1
		if lit.Positive {
			reg.ControlledX([]int{q}, anc)
		} else {
			reg.PauliX(q)
			reg.ControlledX([]int{q}, anc)
			reg.PauliX(q)
		}
	}
}

// checkAncillas asserts the disentanglement postcondition on both scratch
// qubits and that the vector is still normalized.
func (o *Oracle) checkAncillas(reg *Register, result, clauseAnc int) error {
	for _, q := range []int{result, clauseAnc} {
		if p := reg.Probability(q); p > reg.cfg.Tolerance {
			spew.Dump(reg.amps)
			return errors.Wrapf(ErrInvariantViolated,
				"oracle leaked P(1)=%g into ancilla qubit %d", p, q)
		}
	}
	if n := reg.Norm(); n < 1-reg.cfg.Tolerance || n > 1+reg.cfg.Tolerance {
		return errors.Wrapf(ErrInvariantViolated, "state norm drifted to %g", n)
	}
	return nil
}
