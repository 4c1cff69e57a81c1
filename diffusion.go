package qsat

/*
Diffuse reflects the amplitude vector about the uniform superposition over
the variable qubits, sending every amplitude a_x to 2·mean(a) − a_x. This
is the "inversion about the mean" half of a Grover iteration; with the
oracle's phase marks it shifts probability mass onto marked states.

Ancilla qubits are untouched: as long as they sit on |0⟩ they factor out
of the reflection entirely.
*/
func Diffuse(reg *Register, vars []int) {
	for _, q := range vars {
		reg.Hadamard(q)
	}
	for _, q := range vars {
		reg.PauliX(q)
	}

	// Multi-controlled Z with all-but-one variable as controls negates
	// the all-ones state in the transformed frame, i.e. what was the
	// all-zero state before the X layer.
	last := len(vars) - 1
	if last == 0 {
		reg.PhaseZ(vars[0])
	} else {
		reg.ControlledZ(vars[:last], vars[last])
	}

	for _, q := range vars {
		reg.PauliX(q)
	}
	for _, q := range vars {
		reg.Hadamard(q)
	}

	// The H·X·Z·X·H sandwich realizes the reflection with a global −1
	// attached. Fold it out so amplitudes land exactly on 2·mean − a_x.
	for i := range reg.amps {
		reg.amps[i] = -reg.amps[i]
	}
}
