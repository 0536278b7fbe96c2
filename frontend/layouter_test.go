package frontend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// chainGeometry declares two equality-enabled advice columns, a selector
// and an equality-enabled instance column.
func chainGeometry() (cs *ConstraintSystem, x, y Column, q Selector, pub Column) {
	cs = NewConstraintSystem()
	x = cs.AdviceColumn()
	y = cs.AdviceColumn()
	cs.EnableEquality(x)
	cs.EnableEquality(y)
	q = cs.Selector()
	pub = cs.InstanceColumn()
	cs.EnableEquality(pub)
	cs.finalize()
	return
}

func TestRegionPacking(t *testing.T) {
	assert := require.New(t)

	cs, x, y, q, _ := chainGeometry()
	asm := NewAssembly(cs, 8)
	l := newSingleChipLayouter(cs, 8, asm)

	var first *AssignedCell
	err := l.AssignRegion("first", func(r Region) error {
		if err := r.EnableSelector(q, 0); err != nil {
			return err
		}
		var err error
		first, err = r.AssignAdvice("x", x, 0, func() Value { return KnownUint64(3) })
		if err != nil {
			return err
		}
		_, err = r.AssignAdvice("y", y, 1, func() Value { return KnownUint64(4) })
		return err
	})
	assert.NoError(err)
	assert.Equal(Cell{Column: x, Row: 0}, first.Cell())

	// the second region starts right after the two rows of the first
	err = l.AssignRegion("second", func(r Region) error {
		c, err := r.AssignAdvice("x", x, 0, func() Value { return KnownUint64(5) })
		if err != nil {
			return err
		}
		assert.Equal(Cell{Column: x, Row: 2}, c.Cell())
		return nil
	})
	assert.NoError(err)

	shape := asm.Shape()
	assert.Equal([]RegionShape{
		{Name: "first", Start: 0, Rows: 2},
		{Name: "second", Start: 2, Rows: 1},
	}, shape.Regions)
	assert.Equal([]uint{0}, shape.Selectors[0])
	assert.Equal([]uint{0, 2}, shape.AssignedRows[0])
	assert.Equal([]uint{1}, shape.AssignedRows[1])
}

func TestAssemblySkipsValueThunks(t *testing.T) {
	assert := require.New(t)

	cs, x, _, _, _ := chainGeometry()
	asm := NewAssembly(cs, 4)
	l := newSingleChipLayouter(cs, 4, asm)

	called := false
	var cell *AssignedCell
	err := l.AssignRegion("r", func(r Region) error {
		var err error
		cell, err = r.AssignAdvice("x", x, 0, func() Value {
			called = true
			return KnownUint64(1)
		})
		return err
	})
	assert.NoError(err)
	assert.False(called, "structure-only pass must not compute witness values")
	assert.False(cell.Value().IsKnown())
	assert.True(asm.Assigned(x, 0))
}

func TestRegionOutOfRows(t *testing.T) {
	assert := require.New(t)

	cs, x, _, q, _ := chainGeometry()
	asm := NewAssembly(cs, 2)
	l := newSingleChipLayouter(cs, 2, asm)

	err := l.AssignRegion("r", func(r Region) error {
		_, err := r.AssignAdvice("x", x, 5, func() Value { return Unknown() })
		return err
	})
	assert.ErrorIs(err, ErrNotEnoughRows)

	// regions are packed, so later regions can run out of rows too
	l = newSingleChipLayouter(cs, 2, NewAssembly(cs, 2))
	for i := 0; i < 2; i++ {
		err = l.AssignRegion("ok", func(r Region) error {
			return r.EnableSelector(q, 0)
		})
		assert.NoError(err)
	}
	err = l.AssignRegion("overflow", func(r Region) error {
		return r.EnableSelector(q, 0)
	})
	assert.ErrorIs(err, ErrNotEnoughRows)
}

func TestCopyAdviceRequiresEquality(t *testing.T) {
	assert := require.New(t)

	cs := NewConstraintSystem()
	x := cs.AdviceColumn()
	z := cs.AdviceColumn()
	cs.EnableEquality(x)
	cs.finalize()

	asm := NewAssembly(cs, 4)
	l := newSingleChipLayouter(cs, 4, asm)

	var from *AssignedCell
	err := l.AssignRegion("src", func(r Region) error {
		var err error
		from, err = r.AssignAdvice("x", x, 0, func() Value { return KnownUint64(7) })
		return err
	})
	assert.NoError(err)

	// destination column not enabled
	err = l.AssignRegion("dst", func(r Region) error {
		_, err := r.CopyAdvice("z", from, z, 0)
		return err
	})
	assert.ErrorIs(err, ErrColumnNotEquality)

	// source column not enabled
	stranger := &AssignedCell{cell: Cell{Column: z, Row: 0}}
	err = l.AssignRegion("dst", func(r Region) error {
		_, err := r.CopyAdvice("x", stranger, x, 0)
		return err
	})
	assert.ErrorIs(err, ErrColumnNotEquality)
}

func TestCopyAdviceRecordsConstraint(t *testing.T) {
	assert := require.New(t)

	cs, x, y, _, _ := chainGeometry()
	asm := NewAssembly(cs, 4)
	l := newSingleChipLayouter(cs, 4, asm)

	var from *AssignedCell
	err := l.AssignRegion("src", func(r Region) error {
		var err error
		from, err = r.AssignAdvice("x", x, 0, func() Value { return KnownUint64(7) })
		return err
	})
	assert.NoError(err)

	err = l.AssignRegion("dst", func(r Region) error {
		to, err := r.CopyAdvice("y", from, y, 1)
		if err != nil {
			return err
		}
		assert.Equal(Cell{Column: y, Row: 2}, to.Cell())
		return nil
	})
	assert.NoError(err)

	assert.Equal([]Copy{
		{A: Cell{Column: x, Row: 0}, B: Cell{Column: y, Row: 2}},
	}, asm.Copies())
}

func TestConstrainInstance(t *testing.T) {
	assert := require.New(t)

	cs, x, _, _, pub := chainGeometry()
	asm := NewAssembly(cs, 4)
	l := newSingleChipLayouter(cs, 4, asm)

	var cell *AssignedCell
	err := l.AssignRegion("r", func(r Region) error {
		var err error
		cell, err = r.AssignAdvice("x", x, 0, func() Value { return KnownUint64(55) })
		return err
	})
	assert.NoError(err)

	assert.NoError(l.ConstrainInstance(cell.Cell(), pub, 0))
	assert.Equal([]Copy{
		{A: Cell{Column: x, Row: 0}, B: Cell{Column: pub, Row: 0}},
	}, asm.Copies())

	err = l.ConstrainInstance(cell.Cell(), pub, 9)
	assert.ErrorIs(err, ErrInstanceOutOfRange)

	err = l.ConstrainInstance(cell.Cell(), x, 0)
	assert.Error(err)
}

type panicCircuit struct{}

func (panicCircuit) Configure(cs *ConstraintSystem) { cs.AdviceColumn() }
func (panicCircuit) Synthesize(Layouter) error      { panic("witness overflow") }
func (panicCircuit) WithoutWitnesses() Circuit      { return panicCircuit{} }

func TestSynthesizeRecoversPanic(t *testing.T) {
	assert := require.New(t)

	cs, err := Configure(panicCircuit{})
	assert.NoError(err)

	err = Synthesize(panicCircuit{}, cs, 4, NewAssembly(cs, 4))
	assert.Error(err)
	assert.Contains(err.Error(), "witness overflow")
}
