package qsat

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSolveSAT(t *testing.T) {
	Convey("Given a solver with a pinned seed", t, func() {
		formula := FromInts([][]int{
			{1, -2, 3},
			{-1, 2, -3},
			{1, 2, 3},
		})

		Convey("When solving the three-variable formula", func() {
			solver := NewSolver(WithSeed(17))
			assignment, satisfied, err := solver.SolveSAT(3, formula, 1)

			Convey("Then it should return a full, classically re-checked assignment", func() {
				So(err, ShouldBeNil)
				So(len(assignment), ShouldEqual, 3)
				So(satisfied, ShouldEqual, EvaluateCNF(formula, assignment))
			})
		})

		Convey("When solving twice from the same seed", func() {
			a1, s1, err1 := NewSolver(WithSeed(5)).SolveSAT(3, formula, 1)
			a2, s2, err2 := NewSolver(WithSeed(5)).SolveSAT(3, formula, 1)

			Convey("Then the runs should be identical", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(a1, ShouldResemble, a2)
				So(s1, ShouldEqual, s2)
			})
		})

		Convey("When the solver runs with invariant checks enabled", func() {
			cfg := NewConfig()
			cfg.CheckInvariants = true
			solver := NewSolver(WithSeed(3), WithConfig(cfg))

			_, _, err := solver.SolveSAT(3, formula, 1)

			So(err, ShouldBeNil)
		})
	})

	Convey("Given invalid solve requests", t, func() {
		formula := FromInts([][]int{{1, 2}})

		Convey("When a literal references a variable above numVars", func() {
			_, _, err := SolveSAT(1, FromInts([][]int{{1, 2}}), 1)

			So(errors.Is(err, ErrInvalidLiteral), ShouldBeTrue)
		})

		Convey("When the solution estimate is out of range", func() {
			_, _, err := SolveSAT(2, formula, 0)
			So(errors.Is(err, ErrInvalidSolutionEstimate), ShouldBeTrue)

			_, _, err = SolveSAT(2, formula, 5)
			So(errors.Is(err, ErrInvalidSolutionEstimate), ShouldBeTrue)
		})

		Convey("When the variable count is not simulable", func() {
			_, _, err := SolveSAT(MaxVariables+1, formula, 1)

			So(errors.Is(err, ErrTooManyVariables), ShouldBeTrue)
		})
	})
}

func TestSolveSATEnsemble(t *testing.T) {
	Convey("Given the three-clause formula with estimate 1", t, func() {
		formula := FromInts([][]int{
			{1, -2, 3},
			{-1, 2, -3},
			{1, 2, 3},
		})

		Convey("When running 100 independently seeded attempts", func() {
			trials, metrics, err := RunEnsemble(3, formula, 1, 100, 7)

			Convey("Then every attempt should complete", func() {
				So(err, ShouldBeNil)
				So(len(trials), ShouldEqual, 100)
				So(metrics.Attempts, ShouldEqual, 100)
				for _, trial := range trials {
					So(trial.Err, ShouldBeNil)
					So(len(trial.Assignment), ShouldEqual, 3)
				}
			})

			Convey("Then the satisfaction rate should sit far above the uniform single-solution baseline", func() {
				So(err, ShouldBeNil)
				// The formula has several satisfying assignments, so the
				// amplified sampler should clear 1/8 by a wide margin.
				So(metrics.SatisfactionRate(), ShouldBeGreaterThan, 0.35)
			})

			Convey("Then exported metrics should be internally consistent", func() {
				So(err, ShouldBeNil)
				exported := metrics.ExportMetrics()
				So(exported["attempts"], ShouldEqual, int64(100))
				So(exported["satisfied"], ShouldEqual, metrics.Satisfied)
			})
		})

		Convey("When replaying the ensemble from the same seed", func() {
			first, _, err1 := RunEnsemble(3, formula, 1, 10, 99)
			second, _, err2 := RunEnsemble(3, formula, 1, 10, 99)

			Convey("Then trial outcomes should line up pairwise", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				for i := range first {
					So(first[i].Assignment, ShouldResemble, second[i].Assignment)
					So(first[i].Satisfied, ShouldEqual, second[i].Satisfied)
				}
			})
		})
	})

	Convey("Given the contradiction x1 ∧ ¬x1", t, func() {
		formula := FromInts([][]int{{1}, {-1}})

		Convey("When sampling it repeatedly", func() {
			trials, metrics, err := RunEnsemble(1, formula, 1, 20, 13)

			Convey("Then the classical check should reject every sample", func() {
				So(err, ShouldBeNil)
				So(metrics.Satisfied, ShouldEqual, 0)
				for _, trial := range trials {
					So(trial.Satisfied, ShouldBeFalse)
				}
			})
		})
	})

	Convey("Given invalid ensemble parameters", t, func() {
		Convey("When the estimate is out of range", func() {
			_, _, err := RunEnsemble(2, FromInts([][]int{{1, 2}}), 0, 5, 1)

			So(errors.Is(err, ErrInvalidSolutionEstimate), ShouldBeTrue)
		})

		Convey("When a literal is out of range", func() {
			_, _, err := RunEnsemble(1, FromInts([][]int{{2}}), 1, 5, 1)

			So(errors.Is(err, ErrInvalidLiteral), ShouldBeTrue)
		})
	})
}
