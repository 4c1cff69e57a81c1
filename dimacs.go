package qsat

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

/*
ParseDIMACS reads a DIMACS CNF problem and returns the variable count and
the formula. It accepts the usual texture of real-world CNF files: 'c'
comment lines, blank lines, '%' trailer lines, clauses spread over
multiple whitespace-separated tokens terminated by 0, and a final clause
missing its terminator. The header is enforced: every literal must stay
within the declared variable count and the number of clauses read must
match the declared clause count.
*/
func ParseDIMACS(r io.Reader) (int, Formula, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		numVars    int
		numClauses int
		seenHeader bool
		formula    Formula
		current    Clause
		lineNo     int
	)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "%") {
			continue
		}

		if !seenHeader {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return 0, nil, errors.Errorf("line %d: expected 'p cnf <vars> <clauses>', got %q", lineNo, line)
			}
			v, err := strconv.Atoi(fields[2])
			if err != nil || v <= 0 {
				return 0, nil, errors.Errorf("line %d: invalid variable count %q", lineNo, fields[2])
			}
			c, err := strconv.Atoi(fields[3])
			if err != nil || c < 0 {
				return 0, nil, errors.Errorf("line %d: invalid clause count %q", lineNo, fields[3])
			}
			numVars = v
			numClauses = c
			seenHeader = true
			continue
		}

		for _, tok := range strings.Fields(line) {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return 0, nil, errors.Wrapf(err, "line %d: bad literal %q", lineNo, tok)
			}
			if v == 0 {
				formula = append(formula, current)
				current = nil
				continue
			}
			current = append(current, Lit(v))
		}
	}
	if err := sc.Err(); err != nil {
		return 0, nil, errors.Wrap(err, "reading DIMACS input")
	}
	if !seenHeader {
		return 0, nil, errors.New("missing 'p cnf' header")
	}
	if len(current) > 0 {
		// Tolerate a final clause missing its 0 terminator.
		formula = append(formula, current)
	}
	if len(formula) != numClauses {
		return 0, nil, errors.Errorf("header declares %d clauses but %d were read", numClauses, len(formula))
	}
	if err := formula.Validate(numVars); err != nil {
		return 0, nil, err
	}
	return numVars, formula, nil
}
