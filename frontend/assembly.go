package frontend

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// Assembly records the structural outcome of a synthesis pass without
// tracking witness values, the way a key-generation backend consumes a
// circuit. Value thunks handed to AssignAdvice are never invoked.
type Assembly struct {
	cs *ConstraintSystem
	n  int

	// per selector, the rows it is enabled on
	selectors []*bitset.BitSet

	// per advice column, the rows that received an assignment
	assigned []*bitset.BitSet

	copies  []Copy
	regions []RegionShape

	// index into regions while inside an EnterRegion/ExitRegion bracket,
	// -1 outside
	open int
}

// NewAssembly returns an assembly sized for a synthesis pass of n rows over
// the given geometry.
func NewAssembly(cs *ConstraintSystem, n int) *Assembly {
	a := &Assembly{
		cs:        cs,
		n:         n,
		selectors: make([]*bitset.BitSet, cs.NbSelectors()),
		assigned:  make([]*bitset.BitSet, cs.NbAdvice()),
		open:      -1,
	}
	for i := range a.selectors {
		a.selectors[i] = bitset.New(uint(n))
	}
	for i := range a.assigned {
		a.assigned[i] = bitset.New(uint(n))
	}
	return a
}

func (a *Assembly) EnterRegion(name string) {
	a.regions = append(a.regions, RegionShape{Name: name, Start: -1})
	a.open = len(a.regions) - 1
}

func (a *Assembly) ExitRegion() {
	a.open = -1
}

func (a *Assembly) EnableSelector(s Selector, row int) error {
	if s.Index < 0 || s.Index >= len(a.selectors) {
		return fmt.Errorf("undeclared selector %s", s)
	}
	if err := a.checkRow(row); err != nil {
		return err
	}
	a.selectors[s.Index].Set(uint(row))
	a.extend(row)
	return nil
}

func (a *Assembly) AssignAdvice(col Column, row int, _ func() Value) error {
	if col.Kind != Advice || col.Index < 0 || col.Index >= len(a.assigned) {
		return fmt.Errorf("undeclared column %s", col)
	}
	if err := a.checkRow(row); err != nil {
		return err
	}
	a.assigned[col.Index].Set(uint(row))
	a.extend(row)
	return nil
}

func (a *Assembly) Copy(x, y Cell) error {
	for _, c := range []Cell{x, y} {
		if err := a.checkRow(c.Row); err != nil {
			return fmt.Errorf("copy endpoint %s: %w", c, err)
		}
	}
	a.copies = append(a.copies, Copy{A: x, B: y})
	return nil
}

// SelectorActive reports whether the pass enabled s at the given row.
func (a *Assembly) SelectorActive(s Selector, row int) bool {
	if s.Index < 0 || s.Index >= len(a.selectors) || row < 0 || row >= a.n {
		return false
	}
	return a.selectors[s.Index].Test(uint(row))
}

// Assigned reports whether the pass assigned the given advice cell.
func (a *Assembly) Assigned(col Column, row int) bool {
	if col.Kind != Advice || col.Index < 0 || col.Index >= len(a.assigned) {
		return false
	}
	if row < 0 || row >= a.n {
		return false
	}
	return a.assigned[col.Index].Test(uint(row))
}

// Copies returns the recorded copy constraints in recording order.
func (a *Assembly) Copies() []Copy { return a.copies }

// Regions returns the recorded regions in layout order.
func (a *Assembly) Regions() []RegionShape { return a.regions }

// Rows returns the number of rows of the pass.
func (a *Assembly) Rows() int { return a.n }

// Shape flattens the recorded structure into a comparable snapshot.
func (a *Assembly) Shape() *Shape {
	s := &Shape{
		Rows:        a.n,
		NbAdvice:    a.cs.NbAdvice(),
		NbInstance:  a.cs.NbInstance(),
		NbSelectors: a.cs.NbSelectors(),
		Copies:      append([]Copy(nil), a.copies...),
		Regions:     append([]RegionShape(nil), a.regions...),
	}
	for _, c := range a.cs.EqualityColumns() {
		s.Equality = append(s.Equality, c.String())
	}
	for _, g := range a.cs.Gates() {
		for _, p := range g.Polys {
			s.Gates = append(s.Gates, fmt.Sprintf("%s: %s", g.Name, p))
		}
	}
	s.Selectors = make([][]uint, len(a.selectors))
	for i, bs := range a.selectors {
		s.Selectors[i] = setBits(bs)
	}
	s.AssignedRows = make([][]uint, len(a.assigned))
	for i, bs := range a.assigned {
		s.AssignedRows[i] = setBits(bs)
	}
	return s
}

func (a *Assembly) checkRow(row int) error {
	if row < 0 || row >= a.n {
		return fmt.Errorf("row %d of %d: %w", row, a.n, ErrNotEnoughRows)
	}
	return nil
}

// extend grows the open region to cover row.
func (a *Assembly) extend(row int) {
	if a.open < 0 {
		return
	}
	r := &a.regions[a.open]
	if r.Start < 0 {
		r.Start = row
		r.Rows = 1
		return
	}
	if row >= r.Start+r.Rows {
		r.Rows = row - r.Start + 1
	}
}

func setBits(bs *bitset.BitSet) []uint {
	rows := make([]uint, 0, bs.Count())
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		rows = append(rows, i)
	}
	return rows
}

// RegionShape is the footprint of one region: its annotation and the
// absolute rows it occupies. Start is -1 for a region that touched no
// cells.
type RegionShape struct {
	Name  string
	Start int
	Rows  int
}

// Shape is the pass-independent structural fingerprint of a synthesized
// circuit: its geometry plus everywhere the pass touched the trace. Two
// passes of the same circuit must produce equal shapes regardless of
// whether witness values were available; go-cmp on two shapes pinpoints
// any divergence.
type Shape struct {
	Rows        int
	NbAdvice    int
	NbInstance  int
	NbSelectors int

	// equality-enabled columns, rendered, in enablement order
	Equality []string

	// one entry per gate polynomial, rendered "name: poly"
	Gates []string

	// per selector, the rows it is enabled on
	Selectors [][]uint

	// per advice column, the rows that received an assignment
	AssignedRows [][]uint

	Copies  []Copy
	Regions []RegionShape
}
