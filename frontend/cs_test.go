package frontend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnAllocation(t *testing.T) {
	assert := require.New(t)

	cs := NewConstraintSystem()
	a := cs.AdviceColumn()
	b := cs.AdviceColumn()
	pub := cs.InstanceColumn()
	q := cs.Selector()

	assert.Equal(Column{Index: 0, Kind: Advice}, a)
	assert.Equal(Column{Index: 1, Kind: Advice}, b)
	assert.Equal(Column{Index: 0, Kind: Instance}, pub)
	assert.Equal(Selector{Index: 0}, q)
	assert.Equal(2, cs.NbAdvice())
	assert.Equal(1, cs.NbInstance())
	assert.Equal(1, cs.NbSelectors())
}

func TestEnableEqualityIdempotent(t *testing.T) {
	assert := require.New(t)

	cs := NewConstraintSystem()
	a := cs.AdviceColumn()
	b := cs.AdviceColumn()

	cs.EnableEquality(a)
	cs.EnableEquality(a)
	assert.Equal([]Column{a}, cs.EqualityColumns())
	assert.True(cs.EqualityEnabled(a))
	assert.False(cs.EqualityEnabled(b))
}

func TestCreateGateRunsBuilderOnce(t *testing.T) {
	assert := require.New(t)

	cs := NewConstraintSystem()
	a := cs.AdviceColumn()

	calls := 0
	cs.CreateGate("identity", func(v *VirtualCells) []Expression {
		calls++
		return []Expression{v.QueryAdvice(a, RotationCur())}
	})
	assert.Equal(1, calls)
	assert.Len(cs.Gates(), 1)
}

func TestFrozenGeometryPanics(t *testing.T) {
	assert := require.New(t)

	cs := NewConstraintSystem()
	a := cs.AdviceColumn()
	cs.finalize()

	assert.Panics(func() { cs.AdviceColumn() })
	assert.Panics(func() { cs.InstanceColumn() })
	assert.Panics(func() { cs.Selector() })
	assert.Panics(func() { cs.EnableEquality(a) })
	assert.Panics(func() {
		cs.CreateGate("late", func(v *VirtualCells) []Expression { return nil })
	})
}
