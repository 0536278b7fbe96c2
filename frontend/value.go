package frontend

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Value is the content a cell may hold during a synthesis pass: either a
// known field element or unknown. Shape and key-generation passes run the
// circuit with every witness unknown; proving passes carry real values.
// Arithmetic on values propagates unknown-ness, so circuit code is written
// once and behaves correctly in both passes.
type Value struct {
	inner fr.Element
	known bool
}

// Known wraps a field element into a Value.
func Known(e fr.Element) Value {
	return Value{inner: e, known: true}
}

// KnownUint64 builds a known Value from a small integer.
func KnownUint64(v uint64) Value {
	var e fr.Element
	e.SetUint64(v)
	return Known(e)
}

// Unknown returns the absent value used in witness-less passes.
func Unknown() Value {
	return Value{}
}

// IsKnown reports whether the value carries a field element.
func (v Value) IsKnown() bool {
	return v.known
}

// Get returns the underlying field element and whether it is known.
func (v Value) Get() (fr.Element, bool) {
	return v.inner, v.known
}

// Add returns the field sum of both values. The result is unknown if either
// operand is unknown.
func (v Value) Add(o Value) Value {
	if !v.known || !o.known {
		return Unknown()
	}
	var sum fr.Element
	sum.Add(&v.inner, &o.inner)
	return Known(sum)
}

func (v Value) String() string {
	if !v.known {
		return "<unknown>"
	}
	return v.inner.String()
}
