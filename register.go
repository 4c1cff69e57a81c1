package qsat

import (
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

var (
	// ErrNoFreeAncilla is returned when the register's ancilla pool is
	// exhausted.
	ErrNoFreeAncilla = errors.New("no free ancilla qubit available")
	// ErrAncillaLeaked is returned when an ancilla is released while still
	// carrying amplitude on |1⟩.
	ErrAncillaLeaked = errors.New("ancilla not returned to |0⟩ before release")
)

/*
Register is a dense state-vector simulation of a small quantum register.

The amplitude vector has length 2^(numVars+ancillas) and is indexed by the
little-endian bit pattern of the qubit values: qubit q corresponds to bit
(1 << q) of the basis-state index. Variable qubits occupy indices
[0, numVars); everything above them is the ancilla pool.

The register is a pure linear-algebra service: it applies unitary updates
in place and knows nothing about clauses or formulas. Measurement is the
only non-deterministic operation, and it draws from the injected random
source so runs can be replayed from a seed.
*/
type Register struct {
	amps     []complex128
	numVars  int
	ancillas []bool // in-use flag per ancilla slot
	rand     *rand.Rand
	cfg      *Config
}

/*
NewRegister allocates a register of numVars variable qubits plus a pool of
ancillaCount scratch qubits, all initialized to |0...0⟩.
*/
func NewRegister(numVars, ancillaCount int, rnd *rand.Rand, cfg *Config) (*Register, error) {
	if numVars <= 0 || numVars > MaxVariables {
		return nil, errors.Wrapf(ErrTooManyVariables, "numVars=%d, max=%d", numVars, MaxVariables)
	}
	if cfg == nil {
		cfg = NewConfig()
	}
	amps := make([]complex128, 1<<(numVars+ancillaCount))
	amps[0] = 1
	return &Register{
		amps:     amps,
		numVars:  numVars,
		ancillas: make([]bool, ancillaCount),
		rand:     rnd,
		cfg:      cfg,
	}, nil
}

// NumVars returns the number of variable qubits.
func (r *Register) NumVars() int { return r.numVars }

// NumQubits returns the total qubit count, ancilla pool included.
func (r *Register) NumQubits() int { return r.numVars + len(r.ancillas) }

// Amplitudes exposes the raw state vector. Callers must not mutate it.
func (r *Register) Amplitudes() []complex128 { return r.amps }

func (r *Register) bit(q int) int {
	if q < 0 || q >= r.NumQubits() {
		panic("qsat: qubit index out of range")
	}
	return 1 << q
}

// Hadamard applies the Hadamard gate to qubit q: |0⟩ → (|0⟩+|1⟩)/√2,
// |1⟩ → (|0⟩−|1⟩)/√2.
func (r *Register) Hadamard(q int) {
	tBit := r.bit(q)
	h := complex(1/math.Sqrt2, 0)
	for i := range r.amps {
		if i&tBit == 0 {
			j := i | tBit
			a, b := r.amps[i], r.amps[j]
			r.amps[i] = h * (a + b)
			r.amps[j] = h * (a - b)
		}
	}
}

// PauliX applies the NOT gate to qubit q, swapping the amplitudes of every
// basis-state pair that differs only in q.
func (r *Register) PauliX(q int) {
	tBit := r.bit(q)
	for i := range r.amps {
		if i&tBit == 0 {
			j := i | tBit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}

// ControlledX applies a multi-controlled NOT: the target amplitude pair is
// swapped only where every control qubit is 1. One control gives CNOT, two
// give the Toffoli gate, and so on.
func (r *Register) ControlledX(controls []int, target int) {
	tBit := r.bit(target)
	cMask := 0
	for _, c := range controls {
		cMask |= r.bit(c)
	}
	for i := range r.amps {
		if i&tBit == 0 && i&cMask == cMask {
			j := i | tBit
			r.amps[i], r.amps[j] = r.amps[j], r.amps[i]
		}
	}
}

// PhaseZ negates the amplitude of every basis state where qubit q is 1.
// Diagonal, so no amplitude moves between basis states.
func (r *Register) PhaseZ(q int) {
	tBit := r.bit(q)
	for i := range r.amps {
		if i&tBit != 0 {
			r.amps[i] = -r.amps[i]
		}
	}
}

// ControlledZ negates the amplitude of basis states where the target and
// every control qubit are all 1.
func (r *Register) ControlledZ(controls []int, target int) {
	mask := r.bit(target)
	for _, c := range controls {
		mask |= r.bit(c)
	}
	for i := range r.amps {
		if i&mask == mask {
			r.amps[i] = -r.amps[i]
		}
	}
}

// RotationY rotates qubit q by theta about the Y axis:
// [[cos(θ/2), −sin(θ/2)], [sin(θ/2), cos(θ/2)]]. Real-valued, so it never
// introduces complex phases on its own.
func (r *Register) RotationY(theta float64, q int) {
	tBit := r.bit(q)
	c := complex(math.Cos(theta/2), 0)
	s := complex(math.Sin(theta/2), 0)
	for i := range r.amps {
		if i&tBit == 0 {
			j := i | tBit
			a, b := r.amps[i], r.amps[j]
			r.amps[i] = c*a - s*b
			r.amps[j] = s*a + c*b
		}
	}
}

// Probability returns the marginal probability of measuring qubit q as 1.
func (r *Register) Probability(q int) float64 {
	tBit := r.bit(q)
	p := 0.0
	for i, amp := range r.amps {
		if i&tBit != 0 {
			p += real(amp)*real(amp) + imag(amp)*imag(amp)
		}
	}
	return p
}

// Norm returns the sum of squared amplitude magnitudes. Unitarity keeps it
// at 1 within floating tolerance between measurements.
func (r *Register) Norm() float64 {
	n := 0.0
	for _, amp := range r.amps {
		n += real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return n
}

/*
Measure performs a projective measurement of qubit q: it computes the
marginal probability of |1⟩, draws from the register's random source to
pick the outcome, zeroes every amplitude inconsistent with it, and
renormalizes the survivors. Returns true for |1⟩.
*/
func (r *Register) Measure(q int) bool {
	tBit := r.bit(q)
	p1 := r.Probability(q)

	outcome := r.rand.Float64() < p1
	keep := 0
	p := 1 - p1
	if outcome {
		keep = tBit
		p = p1
	}

	norm := complex(math.Sqrt(p), 0)
	for i := range r.amps {
		if i&tBit == keep {
			r.amps[i] /= norm
		} else {
			r.amps[i] = 0
		}
	}
	return outcome
}

/*
AllocateAncilla hands out a scratch qubit from the pool. The qubit starts
in |0⟩ by construction; the caller owns it until ReleaseAncilla and must
steer its amplitude entirely back onto |0⟩ before releasing — reset is a
property of the circuit, never a forced collapse.
*/
func (r *Register) AllocateAncilla() (int, error) {
	for slot, used := range r.ancillas {
		if !used {
			r.ancillas[slot] = true
			return r.numVars + slot, nil
		}
	}
	return 0, errors.Wrapf(ErrNoFreeAncilla, "pool size %d", len(r.ancillas))
}

/*
ReleaseAncilla returns qubit q to the pool. With Config.CheckInvariants
set it verifies the disentanglement postcondition first: any residual |1⟩
amplitude means some circuit skipped its uncompute step and would silently
corrupt later iterations.
*/
func (r *Register) ReleaseAncilla(q int) error {
	slot := q - r.numVars
	if slot < 0 || slot >= len(r.ancillas) || !r.ancillas[slot] {
		return errors.Errorf("qubit %d is not an allocated ancilla", q)
	}
	if r.cfg.CheckInvariants {
		if p := r.Probability(q); p > r.cfg.Tolerance {
			spew.Dump(r.amps)
			return errors.Wrapf(ErrAncillaLeaked, "qubit %d carries P(1)=%g", q, p)
		}
	}
	r.ancillas[slot] = false
	return nil
}

// phase returns the complex argument of the amplitude at basis state i.
// Handy when eyeballing interference patterns in tests. A negative-zero
// imaginary part (the usual residue of negating a real amplitude) is
// canonicalized first, so purely real negative amplitudes report +π
// instead of landing on Atan2's −π side of the branch cut.
func (r *Register) phase(i int) float64 {
	a := r.amps[i]
	if imag(a) == 0 {
		a = complex(real(a), 0)
	}
	return cmplx.Phase(a)
}
