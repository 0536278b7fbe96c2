package fibonacci

import (
	"github.com/Mameta29/halo2-fibonacci/frontend"
)

// Circuit proves knowledge of a recurrence trace: starting from two
// seeds, Steps rounds of addition whose final term equals the public
// input at instance row 0. After k steps the final term is the (k+2)-th
// term of the sequence seeded by Seed1, Seed2.
//
// The zero value of a seed is unknown, so the zero Circuit is the
// witness-less variant of itself.
type Circuit struct {
	Seed1, Seed2 frontend.Value
	Steps        int

	cfg Config
}

func (c *Circuit) Configure(cs *frontend.ConstraintSystem) {
	c.cfg = Configure(cs)
}

func (c *Circuit) Synthesize(l frontend.Layouter) error {
	b, last, err := c.cfg.Init(l, c.Seed1, c.Seed2)
	if err != nil {
		return err
	}
	for i := 0; i < c.Steps; i++ {
		b, last, err = c.cfg.Step(l, b, last)
		if err != nil {
			return err
		}
	}
	return c.cfg.ExposePublic(l, last, 0)
}

func (c *Circuit) WithoutWitnesses() frontend.Circuit {
	return &Circuit{Steps: c.Steps}
}
