// Package test provides a helper on top of the mock prover to test
// circuits against valid and invalid instance assignments.
package test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Mameta29/halo2-fibonacci/dev"
	"github.com/Mameta29/halo2-fibonacci/frontend"
)

// Assert is a helper to test circuits
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for convenience
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Run runs the test function fn as a subtest. The subtest is parametrized by
// the description strings descs.
func (a *Assert) Run(fn func(assert *Assert), descs ...string) {
	desc := strings.Join(descs, "/")
	a.t.Run(desc, func(t *testing.T) {
		assert := &Assert{t, require.New(t)}
		fn(assert)
	})
}

// Log logs using the test instance logger.
func (assert *Assert) Log(v ...interface{}) {
	assert.t.Log(v...)
}

// CheckCircuit verifies the circuit against every registered instance
// assignment: assignments registered with WithValidInstance must satisfy
// the mock checker, ones registered with WithInvalidInstance must not.
// Unless disabled with NoShapeCheck, it then compares the shape of the
// witness-less pass against the witness pass.
func (assert *Assert) CheckCircuit(circuit frontend.Circuit, opts ...TestingOption) {
	opt := assert.options(opts...)
	if len(opt.valid) == 0 && len(opt.invalid) == 0 {
		assert.FailNow("CheckCircuit called without any instance assignment")
	}

	var prover *dev.MockProver

	for _, instance := range opt.valid {
		instance := instance
		assert.Run(func(assert *Assert) {
			p, err := dev.NewMockProver(opt.k, circuit, instance)
			assert.NoError(err, "mock prover synthesis")
			assert.NoError(p.Verify(), "circuit must be satisfied")
			prover = p
		}, "valid")
	}

	for _, instance := range opt.invalid {
		instance := instance
		assert.Run(func(assert *Assert) {
			p, err := dev.NewMockProver(opt.k, circuit, instance)
			assert.NoError(err, "mock prover synthesis")
			assert.Error(p.Verify(), "circuit must not be satisfied")
			if prover == nil {
				prover = p
			}
		}, "invalid")
	}

	// the shape is independent of the values an assignment carries, so
	// any of the provers above can stand in for the witness pass
	if opt.shapeCheck && prover != nil {
		assert.Run(func(assert *Assert) {
			shape, err := frontend.ShapeOf(opt.k, circuit)
			assert.NoError(err, "witness-less pass")
			diff := cmp.Diff(shape, prover.Shape())
			assert.Empty(diff, "witness-less pass and witness pass diverge:\n%s", diff)
		}, "shape")
	}
}
