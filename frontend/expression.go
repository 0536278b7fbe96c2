package frontend

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Expression is a polynomial over the cells of a single row, built when a
// gate is registered and evaluated by checkers on every row of the trace.
// The node types are plain data; evaluation strategy belongs to the
// consumer.
type Expression interface {
	// Degree returns the total degree of the polynomial.
	Degree() int

	fmt.Stringer
}

// Constant is a fixed field element.
type Constant struct {
	C fr.Element
}

// SelectorQuery reads a selector's activation bit (zero or one) at the row
// under evaluation.
type SelectorQuery struct {
	S Selector
}

// AdviceQuery reads an advice column at a rotation relative to the row
// under evaluation.
type AdviceQuery struct {
	Column Column
	At     Rotation
}

// Sum is the addition of two expressions.
type Sum struct {
	A, B Expression
}

// Product is the multiplication of two expressions.
type Product struct {
	A, B Expression
}

// Scaled is an expression multiplied by a constant.
type Scaled struct {
	E Expression
	C fr.Element
}

// Negated is the additive inverse of an expression.
type Negated struct {
	E Expression
}

func (e Constant) Degree() int      { return 0 }
func (e SelectorQuery) Degree() int { return 1 }
func (e AdviceQuery) Degree() int   { return 1 }
func (e Sum) Degree() int           { return max(e.A.Degree(), e.B.Degree()) }
func (e Product) Degree() int       { return e.A.Degree() + e.B.Degree() }
func (e Scaled) Degree() int        { return e.E.Degree() }
func (e Negated) Degree() int       { return e.E.Degree() }

func (e Constant) String() string      { return e.C.String() }
func (e SelectorQuery) String() string { return fmt.Sprintf("q%d", e.S.Index) }

func (e AdviceQuery) String() string {
	if e.At == 0 {
		return fmt.Sprintf("a%d", e.Column.Index)
	}
	return fmt.Sprintf("a%d[%+d]", e.Column.Index, int(e.At))
}

func (e Sum) String() string {
	if n, ok := e.B.(Negated); ok {
		return fmt.Sprintf("(%s - %s)", e.A, n.E)
	}
	return fmt.Sprintf("(%s + %s)", e.A, e.B)
}

func (e Product) String() string { return fmt.Sprintf("%s * %s", e.A, e.B) }
func (e Scaled) String() string  { return fmt.Sprintf("%s * %s", e.C.String(), e.E) }
func (e Negated) String() string { return fmt.Sprintf("-%s", e.E) }

// VirtualCells is handed to the gate construction closure. It exposes the
// queries a gate may make against the row being constrained, and
// combinators to assemble them into polynomials.
type VirtualCells struct {
	cs *ConstraintSystem
}

// QuerySelector reads the given selector at the row under constraint.
func (v *VirtualCells) QuerySelector(s Selector) Expression {
	if s.Index < 0 || s.Index >= v.cs.nbSelectors {
		panic(fmt.Sprintf("querying undeclared selector %s", s))
	}
	return SelectorQuery{S: s}
}

// QueryAdvice reads an advice column at the given rotation from the row
// under constraint.
func (v *VirtualCells) QueryAdvice(c Column, at Rotation) Expression {
	if c.Kind != Advice {
		panic(fmt.Sprintf("cannot query %s column in a gate", c.Kind))
	}
	if c.Index < 0 || c.Index >= v.cs.nbAdvice {
		panic(fmt.Sprintf("querying undeclared column %s", c))
	}
	return AdviceQuery{Column: c, At: at}
}

// Constant lifts a field element into an expression.
func (v *VirtualCells) Constant(c fr.Element) Expression {
	return Constant{C: c}
}

// Add returns a + b.
func (v *VirtualCells) Add(a, b Expression) Expression {
	return Sum{A: a, B: b}
}

// Sub returns a - b.
func (v *VirtualCells) Sub(a, b Expression) Expression {
	return Sum{A: a, B: Negated{E: b}}
}

// Mul returns a * b.
func (v *VirtualCells) Mul(a, b Expression) Expression {
	return Product{A: a, B: b}
}

// Neg returns -a.
func (v *VirtualCells) Neg(a Expression) Expression {
	return Negated{E: a}
}

// Scale returns c * a for a constant c.
func (v *VirtualCells) Scale(a Expression, c fr.Element) Expression {
	return Scaled{E: a, C: c}
}
