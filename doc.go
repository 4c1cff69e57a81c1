/*
Package qsat is a classical, gate-level simulation of Grover's amplitude
amplification specialized to boolean satisfiability.

Given a CNF formula, it builds a reversible phase-marking oracle from the
clause structure, evolves a dense state vector through a fixed schedule of
mark/diffuse rounds, and samples one candidate assignment, which is then
re-checked classically. The state vector is exponential in the qubit
count, so this is a faithful algorithmic reproduction for demonstration
and testing, not a competitive SAT solver.

	clauses := qsat.FromInts([][]int{{1, -2, 3}, {-1, 2, -3}, {1, 2, 3}})
	assignment, satisfied, err := qsat.SolveSAT(3, clauses, 1)

Measurement is the only source of randomness and always draws from an
injectable, seedable source, so every run can be replayed.
*/
package qsat
