package qsat

import (
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseDIMACS(t *testing.T) {
	Convey("Given a DIMACS CNF stream", t, func() {
		Convey("When parsing a well-formed problem with comments", func() {
			input := `c a three-variable toy instance
c
p cnf 3 3
1 -2 3 0
-1 2 -3 0
1 2 3 0
%
`
			numVars, formula, err := ParseDIMACS(strings.NewReader(input))

			Convey("Then the header and clauses should come through intact", func() {
				So(err, ShouldBeNil)
				So(numVars, ShouldEqual, 3)
				So(len(formula), ShouldEqual, 3)
				So(formula[0], ShouldResemble, Clause{Lit(1), Lit(-2), Lit(3)})
				So(formula[1], ShouldResemble, Clause{Lit(-1), Lit(2), Lit(-3)})
			})
		})

		Convey("When a clause spans multiple lines", func() {
			input := "p cnf 2 1\n1\n-2 0\n"
			_, formula, err := ParseDIMACS(strings.NewReader(input))

			So(err, ShouldBeNil)
			So(len(formula), ShouldEqual, 1)
			So(formula[0], ShouldResemble, Clause{Lit(1), Lit(-2)})
		})

		Convey("When the final clause is missing its terminator", func() {
			input := "p cnf 2 2\n1 2 0\n-1 -2\n"
			_, formula, err := ParseDIMACS(strings.NewReader(input))

			So(err, ShouldBeNil)
			So(len(formula), ShouldEqual, 2)
		})

		Convey("When the header is missing", func() {
			_, _, err := ParseDIMACS(strings.NewReader("1 2 0\n"))

			So(err, ShouldNotBeNil)
		})

		Convey("When a literal is not an integer", func() {
			_, _, err := ParseDIMACS(strings.NewReader("p cnf 2 1\n1 x 0\n"))

			So(err, ShouldNotBeNil)
		})

		Convey("When the clause count disagrees with the header", func() {
			_, _, err := ParseDIMACS(strings.NewReader("p cnf 2 3\n1 2 0\n-1 -2 0\n"))

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "declares 3 clauses")
		})

		Convey("When the clause count field is not an integer", func() {
			_, _, err := ParseDIMACS(strings.NewReader("p cnf 2 x\n1 2 0\n"))

			So(err, ShouldNotBeNil)
		})

		Convey("When a literal exceeds the declared variable count", func() {
			_, _, err := ParseDIMACS(strings.NewReader("p cnf 2 1\n1 3 0\n"))

			So(errors.Is(err, ErrInvalidLiteral), ShouldBeTrue)
		})
	})
}
