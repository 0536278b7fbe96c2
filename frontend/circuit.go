package frontend

// Circuit is implemented by user-defined circuits.
//
// Configure and Synthesize are the two phases of a pass: Configure declares
// geometry, Synthesize fills rows. Configure must be deterministic; it runs
// once per pass and every pass must declare identical geometry.
type Circuit interface {
	// Configure declares the circuit's columns, selectors and gates on cs.
	// Implementations typically store the resulting configuration on the
	// circuit for Synthesize to use.
	Configure(cs *ConstraintSystem)

	// Synthesize lays out the witness rows through the layouter.
	Synthesize(l Layouter) error

	// WithoutWitnesses returns a copy of the circuit with every witness
	// value unknown. Shape and key-generation passes run on that copy.
	WithoutWitnesses() Circuit
}
