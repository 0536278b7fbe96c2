package dev

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/Mameta29/halo2-fibonacci/frontend"
)

// evalResult is the outcome of evaluating a polynomial at one row: either
// a field element, or the first unassigned cell encountered.
type evalResult struct {
	v          fr.Element
	unassigned *frontend.Cell
}

func known(v fr.Element) evalResult { return evalResult{v: v} }

// eval computes poly at the given row. Rotations wrap modulo the row
// count. A known zero factor absorbs an unassigned operand, so a
// selector-gated gate is only poisoned by missing cells on rows where the
// selector is actually on.
func (m *MockProver) eval(poly frontend.Expression, row int) evalResult {
	switch e := poly.(type) {
	case frontend.Constant:
		return known(e.C)

	case frontend.SelectorQuery:
		if m.SelectorActive(e.S, row) {
			return known(fr.One())
		}
		return known(fr.Element{})

	case frontend.AdviceQuery:
		r := ((row+int(e.At))%m.n + m.n) % m.n
		cell := frontend.Cell{Column: e.Column, Row: r}
		if !m.Assigned(e.Column, r) {
			return evalResult{unassigned: &cell}
		}
		v, ok := m.advice[e.Column.Index][r].Get()
		if !ok {
			return evalResult{unassigned: &cell}
		}
		return known(v)

	case frontend.Sum:
		a := m.eval(e.A, row)
		if a.unassigned != nil {
			return a
		}
		b := m.eval(e.B, row)
		if b.unassigned != nil {
			return b
		}
		var sum fr.Element
		sum.Add(&a.v, &b.v)
		return known(sum)

	case frontend.Product:
		a := m.eval(e.A, row)
		b := m.eval(e.B, row)
		if a.unassigned == nil && a.v.IsZero() {
			return known(fr.Element{})
		}
		if b.unassigned == nil && b.v.IsZero() {
			return known(fr.Element{})
		}
		if a.unassigned != nil {
			return a
		}
		if b.unassigned != nil {
			return b
		}
		var p fr.Element
		p.Mul(&a.v, &b.v)
		return known(p)

	case frontend.Scaled:
		if e.C.IsZero() {
			return known(fr.Element{})
		}
		r := m.eval(e.E, row)
		if r.unassigned != nil {
			return r
		}
		var p fr.Element
		p.Mul(&r.v, &e.C)
		return known(p)

	case frontend.Negated:
		r := m.eval(e.E, row)
		if r.unassigned != nil {
			return r
		}
		var neg fr.Element
		neg.Neg(&r.v)
		return known(neg)

	default:
		panic(fmt.Sprintf("unknown expression node %T", poly))
	}
}
