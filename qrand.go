package qsat

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// ErrInvalidBias is returned when a requested bit probability falls
// outside [0, 1].
var ErrInvalidBias = errors.New("bit probability outside [0, 1]")

/*
RandomBits samples n uniformly random bits the quantum way: prepare |0⟩,
Hadamard into an equal superposition, measure. No amplification, no
entanglement — just repeated single-qubit collapse, driven by the same
injectable random source as every other measurement.
*/
func RandomBits(n int, rnd *rand.Rand, cfg *Config) ([]bool, error) {
	bits := make([]bool, n)
	for i := range bits {
		reg, err := NewRegister(1, 0, rnd, cfg)
		if err != nil {
			return nil, err
		}
		reg.Hadamard(0)
		bits[i] = reg.Measure(0)
	}
	return bits, nil
}

// RandomUint64 packs up to 64 quantum-sampled bits into an integer, bit 0
// sampled first.
func RandomUint64(bits int, rnd *rand.Rand, cfg *Config) (uint64, error) {
	if bits < 1 || bits > 64 {
		return 0, errors.Errorf("bit count %d outside [1, 64]", bits)
	}
	sampled, err := RandomBits(bits, rnd, cfg)
	if err != nil {
		return 0, err
	}
	var v uint64
	for i, b := range sampled {
		if b {
			v |= 1 << uint(i)
		}
	}
	return v, nil
}

/*
BiasedBit samples a bit that is true with probability p, by rotating |0⟩
with RY(2·arcsin(√p)) so the |1⟩ amplitude lands on √p, then measuring.
*/
func BiasedBit(p float64, rnd *rand.Rand, cfg *Config) (bool, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return false, errors.Wrapf(ErrInvalidBias, "p=%g", p)
	}
	reg, err := NewRegister(1, 0, rnd, cfg)
	if err != nil {
		return false, err
	}
	reg.RotationY(2*math.Asin(math.Sqrt(p)), 0)
	return reg.Measure(0), nil
}
