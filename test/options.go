package test

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// TestingOption defines option for altering the behavior of Assert
// methods. See the descriptions of functions returning instances of this
// type for particular options.
type TestingOption func(*testingConfig) error

type testingConfig struct {
	k          uint32
	valid      [][][]fr.Element
	invalid    [][][]fr.Element
	shapeCheck bool
}

// default options
func (assert *Assert) options(opts ...TestingOption) testingConfig {
	opt := testingConfig{k: 6, shapeCheck: true}

	// apply user provided options.
	for _, option := range opts {
		err := option(&opt)
		assert.NoError(err, "parsing TestingOption")
	}

	return opt
}

// WithK is a testing option which sets the circuit size exponent; passes
// run over 2^k rows.
func WithK(k uint32) TestingOption {
	return func(opt *testingConfig) error {
		if k == 0 || k > 30 {
			return fmt.Errorf("invalid circuit size exponent %d", k)
		}
		opt.k = k
		return nil
	}
}

// WithValidInstance is a testing option which adds an instance assignment,
// one vector per instance column, that the circuit must satisfy.
func WithValidInstance(instance ...[]fr.Element) TestingOption {
	return func(opt *testingConfig) error {
		opt.valid = append(opt.valid, instance)
		return nil
	}
}

// WithInvalidInstance is a testing option which adds an instance
// assignment, one vector per instance column, that the circuit must
// reject.
func WithInvalidInstance(instance ...[]fr.Element) TestingOption {
	return func(opt *testingConfig) error {
		opt.invalid = append(opt.invalid, instance)
		return nil
	}
}

// NoShapeCheck is a testing option which skips the comparison between the
// witness-less pass and the witness pass.
func NoShapeCheck() TestingOption {
	return func(opt *testingConfig) error {
		opt.shapeCheck = false
		return nil
	}
}
