// Package fibonacci arithmetizes the two-term addition recurrence as a
// PLONKish circuit.
//
// Each row of the trace holds three consecutive terms of the sequence,
// with a selector gating the addition gate:
//
//	| elem_1 | elem_2 | elem_3 | q_fib |
//	|--------|--------|--------|-------|
//	|      1 |      1 |      2 |     1 |
//	|      1 |      2 |      3 |     1 |
//	|      2 |      3 |      5 |     1 |
//	|        |        |        |     0 |
//
// Rows are chained by copy constraints rather than rotations: every step
// copies the previous row's elem_2 and elem_3 into the current row's
// elem_1 and elem_2 and assigns their sum to elem_3. The final elem_3 is
// bound to a row of the instance column, which is how the last term of
// the recurrence becomes a public, checkable output.
package fibonacci

import (
	"github.com/Mameta29/halo2-fibonacci/frontend"
	"github.com/Mameta29/halo2-fibonacci/logger"
)

// Config holds the circuit geometry: one advice column per register, the
// selector gating the addition gate, and the instance column carrying the
// public output.
type Config struct {
	elem1, elem2, elem3 frontend.Column
	qFib                frontend.Selector
	instance            frontend.Column
}

// Configure allocates the columns, enables equality on every column that
// participates in copy constraints, and registers the addition gate.
func Configure(cs *frontend.ConstraintSystem) Config {
	elem1 := cs.AdviceColumn()
	cs.EnableEquality(elem1)
	elem2 := cs.AdviceColumn()
	cs.EnableEquality(elem2)
	elem3 := cs.AdviceColumn()
	cs.EnableEquality(elem3)

	instance := cs.InstanceColumn()
	cs.EnableEquality(instance)

	qFib := cs.Selector()

	// q_fib * (elem_1 + elem_2 - elem_3) = 0
	cs.CreateGate("fibonacci", func(v *frontend.VirtualCells) []frontend.Expression {
		q := v.QuerySelector(qFib)
		e1 := v.QueryAdvice(elem1, frontend.RotationCur())
		e2 := v.QueryAdvice(elem2, frontend.RotationCur())
		e3 := v.QueryAdvice(elem3, frontend.RotationCur())
		return []frontend.Expression{v.Mul(q, v.Sub(v.Add(e1, e2), e3))}
	})

	return Config{
		elem1:    elem1,
		elem2:    elem2,
		elem3:    elem3,
		qFib:     qFib,
		instance: instance,
	}
}

// Init seeds the first row: elem_1 and elem_2 take the seed values and
// elem_3 their sum. It returns handles to the elem_2 and elem_3 cells,
// the two terms the first step builds on.
func (cfg Config) Init(l frontend.Layouter, seed1, seed2 frontend.Value) (*frontend.AssignedCell, *frontend.AssignedCell, error) {
	log := logger.Logger()
	log.Debug().Stringer("elem_1", seed1).Stringer("elem_2", seed2).Msg("seeding first row")

	var b, c *frontend.AssignedCell
	err := l.AssignRegion("init Fibonacci", func(r frontend.Region) error {
		if err := r.EnableSelector(cfg.qFib, 0); err != nil {
			return err
		}
		if _, err := r.AssignAdvice("elem_1", cfg.elem1, 0, func() frontend.Value { return seed1 }); err != nil {
			return err
		}
		var err error
		b, err = r.AssignAdvice("elem_2", cfg.elem2, 0, func() frontend.Value { return seed2 })
		if err != nil {
			return err
		}
		c, err = r.AssignAdvice("elem_3", cfg.elem3, 0, func() frontend.Value { return seed1.Add(seed2) })
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return b, c, nil
}

// Step advances the recurrence by one row. The previous row's elem_2 and
// elem_3 are wired into the current row's elem_1 and elem_2 by copy
// constraints, and elem_3 receives their sum. It returns handles to the
// new elem_2 and elem_3 cells.
func (cfg Config) Step(l frontend.Layouter, prevB, prevC *frontend.AssignedCell) (*frontend.AssignedCell, *frontend.AssignedCell, error) {
	var b, c *frontend.AssignedCell
	err := l.AssignRegion("next row", func(r frontend.Region) error {
		if err := r.EnableSelector(cfg.qFib, 0); err != nil {
			return err
		}
		// the previous elem_2 becomes this row's elem_1
		a, err := r.CopyAdvice("elem_1", prevB, cfg.elem1, 0)
		if err != nil {
			return err
		}
		// the previous elem_3 becomes this row's elem_2
		b, err = r.CopyAdvice("elem_2", prevC, cfg.elem2, 0)
		if err != nil {
			return err
		}
		c, err = r.AssignAdvice("elem_3", cfg.elem3, 0, func() frontend.Value {
			return a.Value().Add(b.Value())
		})
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return b, c, nil
}

// ExposePublic binds an assigned cell to a row of the instance column.
func (cfg Config) ExposePublic(l frontend.Layouter, cell *frontend.AssignedCell, row int) error {
	return l.ConstrainInstance(cell.Cell(), cfg.instance, row)
}
