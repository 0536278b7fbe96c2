// Package halo2fib provides a PLONKish arithmetization of the Fibonacci
// recurrence: a row-by-row computation trace constrained by a single
// polynomial gate, with copy constraints threading state between rows and
// the final term exposed as a public input.
//
// The circuit surface lives in the frontend package, the recurrence itself
// in the fibonacci package, and a mock checker plus layout tooling in dev.
package halo2fib

import (
	"github.com/blang/semver/v4"
)

// Version of the module, stamped into dev tooling output.
var Version = semver.MustParse("0.1.0")
