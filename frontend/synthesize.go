package frontend

import (
	"fmt"

	"github.com/Mameta29/halo2-fibonacci/debug"
	"github.com/Mameta29/halo2-fibonacci/logger"
)

// Configure runs circuit.Configure against a fresh constraint system and
// freezes it. Configure must be deterministic: every pass over the same
// circuit re-derives the same geometry.
func Configure(circuit Circuit) (cs *ConstraintSystem, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("configure: %v\n%s", r, debug.Stack())
		}
	}()

	cs = NewConstraintSystem()
	circuit.Configure(cs)
	cs.finalize()
	return cs, nil
}

// Synthesize drives circuit.Synthesize over an n-row layouter writing into
// the given sink. cs must be the system produced by Configure on the same
// circuit. Panics raised by circuit code are recovered into errors.
func Synthesize(circuit Circuit, cs *ConstraintSystem, n int, into Assignment) (err error) {
	if n <= 0 {
		return fmt.Errorf("invalid row count %d", n)
	}

	log := logger.Logger()
	log.Debug().
		Int("rows", n).
		Int("nbAdvice", cs.NbAdvice()).
		Int("nbInstance", cs.NbInstance()).
		Int("nbSelectors", cs.NbSelectors()).
		Int("nbGates", len(cs.Gates())).
		Msg("synthesizing circuit")

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("synthesize: %v\n%s", r, debug.Stack())
		}
	}()

	l := newSingleChipLayouter(cs, n, into)
	if err := circuit.Synthesize(l); err != nil {
		return fmt.Errorf("synthesize: %w", err)
	}
	return nil
}

// ShapeOf runs the witness-less pass of the circuit over 2^k rows and
// returns its structural fingerprint.
func ShapeOf(k uint32, circuit Circuit) (*Shape, error) {
	c := circuit.WithoutWitnesses()
	cs, err := Configure(c)
	if err != nil {
		return nil, err
	}
	n := 1 << k
	asm := NewAssembly(cs, n)
	if err := Synthesize(c, cs, n, asm); err != nil {
		return nil, err
	}
	return asm.Shape(), nil
}
