package fibonacci

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/google/go-cmp/cmp"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/Mameta29/halo2-fibonacci/dev"
	"github.com/Mameta29/halo2-fibonacci/frontend"
)

// fibTerm computes the (steps+2)-th term of the addition sequence seeded
// by a and b, with field wrap-around.
func fibTerm(a, b uint64, steps int) fr.Element {
	x, y := fr.NewElement(a), fr.NewElement(b)
	for i := 0; i <= steps; i++ {
		var z fr.Element
		z.Add(&x, &y)
		x, y = y, z
	}
	return y
}

func TestRecurrenceProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	properties.Property("honest traces satisfy the checker", prop.ForAll(
		func(a, b uint64, steps int) bool {
			circuit := &Circuit{
				Seed1: frontend.KnownUint64(a),
				Seed2: frontend.KnownUint64(b),
				Steps: steps,
			}
			prover, err := dev.NewMockProver(5, circuit, [][]fr.Element{{fibTerm(a, b, steps)}})
			if err != nil {
				return false
			}
			return prover.Verify() == nil
		},
		gen.UInt64(), gen.UInt64(), gen.IntRange(0, 12),
	))

	properties.Property("shifted public inputs are rejected", prop.ForAll(
		func(a, b uint64, steps int) bool {
			circuit := &Circuit{
				Seed1: frontend.KnownUint64(a),
				Seed2: frontend.KnownUint64(b),
				Steps: steps,
			}
			wrong := fibTerm(a, b, steps)
			one := fr.One()
			wrong.Add(&wrong, &one)
			prover, err := dev.NewMockProver(5, circuit, [][]fr.Element{{wrong}})
			if err != nil {
				return false
			}
			return prover.Verify() != nil
		},
		gen.UInt64(), gen.UInt64(), gen.IntRange(0, 12),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestDualPassShape(t *testing.T) {
	assert := require.New(t)

	circuit := &Circuit{
		Seed1: frontend.KnownUint64(1),
		Seed2: frontend.KnownUint64(1),
		Steps: 7,
	}
	prover, err := dev.NewMockProver(5, circuit, [][]fr.Element{{fr.NewElement(55)}})
	assert.NoError(err)

	witnessless, err := frontend.ShapeOf(5, circuit)
	assert.NoError(err)

	assert.Empty(cmp.Diff(witnessless, prover.Shape()))
}

func TestZeroSteps(t *testing.T) {
	assert := require.New(t)

	// no step at all: the trace is the single init row
	circuit := &Circuit{
		Seed1: frontend.KnownUint64(4),
		Seed2: frontend.KnownUint64(9),
		Steps: 0,
	}
	prover, err := dev.NewMockProver(3, circuit, [][]fr.Element{{fr.NewElement(13)}})
	assert.NoError(err)
	assert.NoError(prover.Verify())
}

func TestTooManyStepsForK(t *testing.T) {
	assert := require.New(t)

	// 2^2 rows cannot hold an eight-row trace
	circuit := &Circuit{
		Seed1: frontend.KnownUint64(1),
		Seed2: frontend.KnownUint64(1),
		Steps: 7,
	}
	_, err := dev.NewMockProver(2, circuit, [][]fr.Element{{fr.NewElement(55)}})
	assert.ErrorIs(err, frontend.ErrNotEnoughRows)
}

func BenchmarkMockProver(b *testing.B) {
	circuit := &Circuit{
		Seed1: frontend.KnownUint64(1),
		Seed2: frontend.KnownUint64(1),
		Steps: 12,
	}
	instance := [][]fr.Element{{fibTerm(1, 1, 12)}}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		prover, err := dev.NewMockProver(5, circuit, instance)
		if err != nil {
			b.Fatal(err)
		}
		if err := prover.Verify(); err != nil {
			b.Fatal(err)
		}
	}
}
