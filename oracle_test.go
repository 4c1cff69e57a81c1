package qsat

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestNewOracle(t *testing.T) {
	Convey("Given oracle construction", t, func() {
		Convey("When the formula is well formed", func() {
			oracle, err := NewOracle(3, FromInts([][]int{{1, -2, 3}}))

			So(err, ShouldBeNil)
			So(oracle, ShouldNotBeNil)
		})

		Convey("When a literal is out of range", func() {
			_, err := NewOracle(2, FromInts([][]int{{1, 3}}))

			So(errors.Is(err, ErrInvalidLiteral), ShouldBeTrue)
		})
	})
}

func TestOracleApply(t *testing.T) {
	Convey("Given the three-clause formula over an equal superposition", t, func() {
		formula := FromInts([][]int{
			{1, -2, 3},
			{-1, 2, -3},
			{1, 2, 3},
		})
		oracle, err := NewOracle(3, formula)
		So(err, ShouldBeNil)

		reg := newTestRegister(3, oracleAncillas, 1)
		for q := 0; q < 3; q++ {
			reg.Hadamard(q)
		}
		result, _ := reg.AllocateAncilla()
		clauseAnc, _ := reg.AllocateAncilla()

		Convey("When applying the oracle once", func() {
			So(oracle.Apply(reg, result, clauseAnc), ShouldBeNil)

			Convey("Then both ancillas should come back to |0⟩", func() {
				So(reg.Probability(result), ShouldAlmostEqual, 0, 1e-9)
				So(reg.Probability(clauseAnc), ShouldAlmostEqual, 0, 1e-9)
			})

			Convey("Then the state should stay normalized with untouched magnitudes", func() {
				So(reg.Norm(), ShouldAlmostEqual, 1, 1e-9)
				for i := 0; i < 8; i++ {
					So(math.Abs(real(reg.Amplitudes()[i])), ShouldAlmostEqual, 1/math.Sqrt(8))
				}
			})

			Convey("Then exactly the states selected by the clause encoding are phase-flipped", func() {
				// With this clause structure the encoding flips every
				// odd-weight assignment: |100⟩, |010⟩, |001⟩ and |111⟩.
				flipped := map[int]bool{1: true, 2: true, 4: true, 7: true}
				for i := 0; i < 8; i++ {
					if flipped[i] {
						So(real(reg.Amplitudes()[i]), ShouldAlmostEqual, -1/math.Sqrt(8))
						So(reg.phase(i), ShouldAlmostEqual, math.Pi)
					} else {
						So(real(reg.Amplitudes()[i]), ShouldAlmostEqual, 1/math.Sqrt(8))
					}
				}
			})

			Convey("And applying it again should undo every phase mark", func() {
				So(oracle.Apply(reg, result, clauseAnc), ShouldBeNil)

				for i := 0; i < 8; i++ {
					So(real(reg.Amplitudes()[i]), ShouldAlmostEqual, 1/math.Sqrt(8))
				}
			})
		})
	})

	Convey("Given the contradiction x1 ∧ ¬x1", t, func() {
		oracle, err := NewOracle(1, FromInts([][]int{{1}, {-1}}))
		So(err, ShouldBeNil)

		reg := newTestRegister(1, oracleAncillas, 1)
		reg.Hadamard(0)
		result, _ := reg.AllocateAncilla()
		clauseAnc, _ := reg.AllocateAncilla()

		Convey("When applying the oracle", func() {
			So(oracle.Apply(reg, result, clauseAnc), ShouldBeNil)

			Convey("Then the two clause parities cancel and nothing is marked", func() {
				So(real(reg.Amplitudes()[0]), ShouldAlmostEqual, 1/math.Sqrt2)
				So(real(reg.Amplitudes()[1]), ShouldAlmostEqual, 1/math.Sqrt2)
				So(reg.Probability(result), ShouldAlmostEqual, 0, 1e-9)
			})
		})
	})
}
