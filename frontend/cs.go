package frontend

import "fmt"

// Gate is a named set of polynomial constraints. Every polynomial must
// evaluate to zero on every row of the trace; gates gated by a selector
// query achieve this trivially on rows where the selector is off.
type Gate struct {
	Name  string
	Polys []Expression
}

// ConstraintSystem collects the geometry of a circuit: its columns,
// selectors, equality-enabled columns and gates. It is mutable while
// Circuit.Configure runs and frozen before any row is assigned; declaring
// geometry on a frozen system panics.
type ConstraintSystem struct {
	nbAdvice    int
	nbInstance  int
	nbSelectors int

	// columns eligible for copy constraints, in enablement order
	equality []Column

	gates     []Gate
	finalized bool
}

// NewConstraintSystem returns an empty, mutable constraint system.
func NewConstraintSystem() *ConstraintSystem {
	return &ConstraintSystem{}
}

// AdviceColumn allocates a new private column.
func (cs *ConstraintSystem) AdviceColumn() Column {
	cs.mustBeMutable()
	c := Column{Index: cs.nbAdvice, Kind: Advice}
	cs.nbAdvice++
	return c
}

// InstanceColumn allocates a new public column.
func (cs *ConstraintSystem) InstanceColumn() Column {
	cs.mustBeMutable()
	c := Column{Index: cs.nbInstance, Kind: Instance}
	cs.nbInstance++
	return c
}

// Selector allocates a new selector.
func (cs *ConstraintSystem) Selector() Selector {
	cs.mustBeMutable()
	s := Selector{Index: cs.nbSelectors}
	cs.nbSelectors++
	return s
}

// EnableEquality marks a column as eligible for copy constraints. Both
// endpoints of a copy must be enabled. Enabling a column twice is a no-op.
func (cs *ConstraintSystem) EnableEquality(c Column) {
	cs.mustBeMutable()
	if cs.EqualityEnabled(c) {
		return
	}
	cs.equality = append(cs.equality, c)
}

// CreateGate registers a named gate. The build closure runs exactly once,
// against a VirtualCells scoped to this system, and returns the gate's
// polynomials.
func (cs *ConstraintSystem) CreateGate(name string, build func(*VirtualCells) []Expression) {
	cs.mustBeMutable()
	polys := build(&VirtualCells{cs: cs})
	cs.gates = append(cs.gates, Gate{Name: name, Polys: polys})
}

// EqualityEnabled reports whether the column may appear in copy
// constraints.
func (cs *ConstraintSystem) EqualityEnabled(c Column) bool {
	for _, e := range cs.equality {
		if e == c {
			return true
		}
	}
	return false
}

// NbAdvice returns the number of advice columns.
func (cs *ConstraintSystem) NbAdvice() int { return cs.nbAdvice }

// NbInstance returns the number of instance columns.
func (cs *ConstraintSystem) NbInstance() int { return cs.nbInstance }

// NbSelectors returns the number of selectors.
func (cs *ConstraintSystem) NbSelectors() int { return cs.nbSelectors }

// Gates returns the registered gates.
func (cs *ConstraintSystem) Gates() []Gate { return cs.gates }

// EqualityColumns returns the equality-enabled columns in enablement order.
func (cs *ConstraintSystem) EqualityColumns() []Column { return cs.equality }

func (cs *ConstraintSystem) finalize() {
	cs.finalized = true
}

func (cs *ConstraintSystem) mustBeMutable() {
	if cs.finalized {
		panic(fmt.Sprintf("constraint system is finalized, geometry cannot change (%d advice, %d instance, %d selectors)",
			cs.nbAdvice, cs.nbInstance, cs.nbSelectors))
	}
}
