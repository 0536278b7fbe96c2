package dev

import (
	"fmt"

	"github.com/Mameta29/halo2-fibonacci/frontend"
)

// GateError reports a gate polynomial that evaluated to a non-zero value
// on a row.
type GateError struct {
	Gate   string
	Poly   int
	Expr   string
	Row    int
	Region string
	Value  string
}

func (e *GateError) Error() string {
	msg := fmt.Sprintf("gate %q poly %d not satisfied at row %d", e.Gate, e.Poly, e.Row)
	if e.Region != "" {
		msg += fmt.Sprintf(" (region %q)", e.Region)
	}
	return msg + fmt.Sprintf(": %s = %s", e.Expr, e.Value)
}

// CellNotAssignedError reports a cell a gate queried on an active row that
// no region ever assigned.
type CellNotAssignedError struct {
	Gate   string
	Poly   int
	Row    int
	Region string
	Cell   frontend.Cell
}

func (e *CellNotAssignedError) Error() string {
	msg := fmt.Sprintf("gate %q poly %d at row %d", e.Gate, e.Poly, e.Row)
	if e.Region != "" {
		msg += fmt.Sprintf(" (region %q)", e.Region)
	}
	return msg + fmt.Sprintf(": cell %s was never assigned", e.Cell)
}

// CopyError reports a copy constraint whose endpoints hold different
// values, or an endpoint that cannot be resolved.
type CopyError struct {
	A, B   frontend.Cell
	VA, VB string
}

func (e *CopyError) Error() string {
	return fmt.Sprintf("copy constraint %s = %s not satisfied (%s vs %s)", e.A, e.B, e.VA, e.VB)
}
