package frontend

import "fmt"

// ColumnKind distinguishes private advice columns from public instance
// columns.
type ColumnKind uint8

const (
	// Advice columns hold per-row witness values known only to the prover.
	Advice ColumnKind = iota
	// Instance columns hold values shared with the verifier.
	Instance
)

func (k ColumnKind) String() string {
	switch k {
	case Advice:
		return "advice"
	case Instance:
		return "instance"
	default:
		return fmt.Sprintf("column(%d)", uint8(k))
	}
}

// Column identifies a vertical register spanning every row of the circuit.
// Columns are allocated by the ConstraintSystem during Configure; the zero
// Column is the first advice column.
type Column struct {
	Index int
	Kind  ColumnKind
}

func (c Column) String() string {
	return fmt.Sprintf("%s[%d]", c.Kind, c.Index)
}

// Selector identifies a per-row boolean column. A gate multiplied by a
// selector query is enforced exactly on the rows where the selector is
// enabled.
type Selector struct {
	Index int
}

func (s Selector) String() string {
	return fmt.Sprintf("q[%d]", s.Index)
}

// Rotation is the row offset, relative to the row under constraint, at
// which a gate queries a column.
type Rotation int

// RotationCur queries the row the gate is being evaluated at.
func RotationCur() Rotation { return 0 }

// Cell addresses a single field element of the trace.
type Cell struct {
	Column Column
	Row    int
}

func (c Cell) String() string {
	return fmt.Sprintf("%s@%d", c.Column, c.Row)
}

// Copy records an equality constraint between two cells: a satisfying trace
// must hold the same value in both.
type Copy struct {
	A, B Cell
}

// AssignedCell is the handle returned by region assignments. It names the
// absolute cell that was written and carries the value produced by the
// pass, which is unknown in witness-less passes. Handles are how later
// regions reference earlier cells for copy wiring; they confer no write
// access.
type AssignedCell struct {
	cell  Cell
	value Value
}

// Cell returns the absolute trace position of the assignment.
func (a *AssignedCell) Cell() Cell {
	return a.cell
}

// Value returns the value the current pass produced for the cell.
func (a *AssignedCell) Value() Value {
	return a.value
}

func (a *AssignedCell) String() string {
	return fmt.Sprintf("%s=%s", a.cell, a.value)
}
