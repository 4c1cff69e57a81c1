package qsat

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidLiteral is returned when a literal references a variable
	// outside [1, numVars].
	ErrInvalidLiteral = errors.New("literal variable index out of range")
	// ErrInvalidSolutionEstimate is returned when the caller-supplied
	// solution estimate would make the rotation angle undefined.
	ErrInvalidSolutionEstimate = errors.New("estimated solution count out of range")
	// ErrTooManyVariables is returned when the dense amplitude vector for
	// the requested register would not fit in memory.
	ErrTooManyVariables = errors.New("variable count exceeds simulable register size")
)

// MaxVariables bounds the variable register. The amplitude vector is
// exponential in the qubit count, so anything much past this will not fit
// in commodity memory as dense complex128.
const MaxVariables = 26

/*
Literal is a variable or its negation inside a clause. Variables are
1-based, as in DIMACS; Positive true means the variable must be true to
satisfy the literal. Literals are immutable values.
*/
type Literal struct {
	Var      int
	Positive bool
}

// Lit builds a Literal from a signed DIMACS-style integer: 3 means x3,
// -3 means ¬x3.
func Lit(v int) Literal {
	if v < 0 {
		return Literal{Var: -v, Positive: false}
	}
	return Literal{Var: v, Positive: true}
}

func (l Literal) String() string {
	if l.Positive {
		return fmt.Sprintf("x%d", l.Var)
	}
	return fmt.Sprintf("¬x%d", l.Var)
}

// Clause is a disjunction of literals. Order carries no logical meaning
// but is kept fixed so oracle circuits come out deterministic.
type Clause []Literal

// Formula is a conjunction of clauses, i.e. a CNF formula.
type Formula []Clause

/*
Assignment binds every variable to a boolean, 0-indexed internally:
assignment[v-1] is the value of the 1-based variable v.
*/
type Assignment []bool

func (a Assignment) String() string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = fmt.Sprintf("x%d=%t", i+1, v)
	}
	return strings.Join(parts, ", ")
}

// FromInts builds a Formula from slices of signed DIMACS-style literals,
// e.g. [][]int{{1, -2, 3}, {-1, 2, -3}}.
func FromInts(clauses [][]int) Formula {
	f := make(Formula, len(clauses))
	for i, ints := range clauses {
		c := make(Clause, len(ints))
		for j, v := range ints {
			c[j] = Lit(v)
		}
		f[i] = c
	}
	return f
}

// Validate checks that every literal references a variable in [1, numVars].
// It runs before any gate is applied: a bad index is a caller bug, not
// something to clamp.
func (f Formula) Validate(numVars int) error {
	for i, clause := range f {
		for _, lit := range clause {
			if lit.Var <= 0 || lit.Var > numVars {
				return errors.Wrapf(ErrInvalidLiteral,
					"clause %d, literal %s with %d variables", i, lit, numVars)
			}
		}
	}
	return nil
}

// EvaluateLiteral reports whether the assignment satisfies the literal.
func EvaluateLiteral(lit Literal, a Assignment) bool {
	return a[lit.Var-1] == lit.Positive
}

// EvaluateClause reports whether any literal in the clause is satisfied,
// short-circuiting on the first hit.
func EvaluateClause(c Clause, a Assignment) bool {
	for _, lit := range c {
		if EvaluateLiteral(lit, a) {
			return true
		}
	}
	return false
}

// EvaluateCNF reports whether every clause is satisfied, short-circuiting
// on the first violated clause.
func EvaluateCNF(f Formula, a Assignment) bool {
	for _, c := range f {
		if !EvaluateClause(c, a) {
			return false
		}
	}
	return true
}
