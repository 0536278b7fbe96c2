package frontend

import (
	"fmt"
)

// Layouter hands rows of the trace to circuit code. Regions are the unit of
// allocation: circuit code describes cells by offset within a region and
// the layouter decides which absolute rows the region occupies.
type Layouter interface {
	// AssignRegion allocates a region named name and runs fn against it.
	// The region spans as many rows as fn touches.
	AssignRegion(name string, fn func(Region) error) error

	// ConstrainInstance binds an assigned cell to a row of an instance
	// column: a satisfying trace must hold the instance value in that
	// cell. Both columns must be equality-enabled.
	ConstrainInstance(cell Cell, col Column, row int) error
}

// Region is the write surface circuit code sees inside AssignRegion. All
// offsets are relative to the region's first row.
type Region interface {
	// EnableSelector activates the selector at the given offset.
	EnableSelector(s Selector, offset int) error

	// AssignAdvice writes the value produced by to into (col, offset) and
	// returns a handle to the assigned cell. Passes that do not track
	// values never invoke to; the handle then carries an unknown value.
	AssignAdvice(name string, col Column, offset int, to func() Value) (*AssignedCell, error)

	// CopyAdvice assigns the value of an existing cell at (col, offset)
	// and records an equality constraint between the two cells. Both
	// columns must be equality-enabled.
	CopyAdvice(name string, from *AssignedCell, col Column, offset int) (*AssignedCell, error)
}

// singleChipLayouter packs regions one after the other from row zero, the
// simplest useful floor plan. A region's span is the highest offset it
// touched plus one.
type singleChipLayouter struct {
	cs   *ConstraintSystem
	into Assignment
	n    int

	// next free absolute row
	cursor int
}

func newSingleChipLayouter(cs *ConstraintSystem, n int, into Assignment) *singleChipLayouter {
	return &singleChipLayouter{cs: cs, into: into, n: n}
}

func (l *singleChipLayouter) AssignRegion(name string, fn func(Region) error) error {
	r := &region{l: l, name: name, start: l.cursor}
	l.into.EnterRegion(name)
	if err := fn(r); err != nil {
		return fmt.Errorf("region %q: %w", name, err)
	}
	l.into.ExitRegion()
	l.cursor += r.rows
	return nil
}

func (l *singleChipLayouter) ConstrainInstance(cell Cell, col Column, row int) error {
	if col.Kind != Instance {
		return fmt.Errorf("constraining %s against %s: column is not an instance column", cell, col)
	}
	if !l.cs.EqualityEnabled(col) {
		return fmt.Errorf("column %s: %w", col, ErrColumnNotEquality)
	}
	if !l.cs.EqualityEnabled(cell.Column) {
		return fmt.Errorf("column %s: %w", cell.Column, ErrColumnNotEquality)
	}
	if row < 0 || row >= l.n {
		return fmt.Errorf("%s row %d: %w", col, row, ErrInstanceOutOfRange)
	}
	return l.into.Copy(cell, Cell{Column: col, Row: row})
}

type region struct {
	l     *singleChipLayouter
	name  string
	start int

	// highest touched offset plus one
	rows int
}

func (r *region) EnableSelector(s Selector, offset int) error {
	row, err := r.resolve(offset)
	if err != nil {
		return err
	}
	if err := r.l.into.EnableSelector(s, row); err != nil {
		return err
	}
	r.touch(offset)
	return nil
}

func (r *region) AssignAdvice(name string, col Column, offset int, to func() Value) (*AssignedCell, error) {
	if col.Kind != Advice {
		return nil, fmt.Errorf("assigning %q: cannot assign witness to %s column", name, col.Kind)
	}
	row, err := r.resolve(offset)
	if err != nil {
		return nil, fmt.Errorf("assigning %q: %w", name, err)
	}

	// The sink decides whether values are computed at all; capture the
	// produced value for the handle only if the thunk actually runs.
	value := Unknown()
	err = r.l.into.AssignAdvice(col, row, func() Value {
		value = to()
		return value
	})
	if err != nil {
		return nil, fmt.Errorf("assigning %q: %w", name, err)
	}
	r.touch(offset)
	return &AssignedCell{cell: Cell{Column: col, Row: row}, value: value}, nil
}

func (r *region) CopyAdvice(name string, from *AssignedCell, col Column, offset int) (*AssignedCell, error) {
	if !r.l.cs.EqualityEnabled(from.cell.Column) {
		return nil, fmt.Errorf("copying %q from %s: %w", name, from.cell.Column, ErrColumnNotEquality)
	}
	if !r.l.cs.EqualityEnabled(col) {
		return nil, fmt.Errorf("copying %q to %s: %w", name, col, ErrColumnNotEquality)
	}
	ac, err := r.AssignAdvice(name, col, offset, func() Value { return from.value })
	if err != nil {
		return nil, err
	}
	if err := r.l.into.Copy(from.cell, ac.cell); err != nil {
		return nil, fmt.Errorf("copying %q: %w", name, err)
	}
	return ac, nil
}

func (r *region) resolve(offset int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset %d in region %q", offset, r.name)
	}
	row := r.start + offset
	if row >= r.l.n {
		return 0, fmt.Errorf("row %d of %d: %w", row, r.l.n, ErrNotEnoughRows)
	}
	return row, nil
}

func (r *region) touch(offset int) {
	if offset+1 > r.rows {
		r.rows = offset + 1
	}
}
