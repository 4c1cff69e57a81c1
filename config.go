package qsat

/*
Config tunes the simulation engine. Zero-value fields are filled in by
NewConfig; most callers never touch anything beyond the defaults.
*/
type Config struct {
	// Tolerance is the floating-point slack used when checking that the
	// state vector stays normalized and that ancillas come back to |0⟩.
	Tolerance float64
	// CheckInvariants enables the defensive norm and ancilla-leak checks.
	// They cost a full pass over the amplitude vector, so they are meant
	// for tests and debugging rather than hot loops.
	CheckInvariants bool
}

func NewConfig() *Config {
	return &Config{
		Tolerance:       1e-9,
		CheckInvariants: false,
	}
}
