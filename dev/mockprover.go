package dev

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"

	"github.com/Mameta29/halo2-fibonacci/frontend"
	"github.com/Mameta29/halo2-fibonacci/logger"
)

// MockProver runs a full synthesis pass of a circuit and records the
// resulting trace, values included. Verify then checks the trace against
// every constraint the circuit declared.
type MockProver struct {
	*frontend.Assembly

	cs *frontend.ConstraintSystem
	n  int

	// [column][row]; cells never assigned stay unknown and are tracked
	// by the embedded assembly
	advice [][]frontend.Value

	instance [][]fr.Element
}

// NewMockProver synthesizes the circuit over 2^k rows against the given
// instance columns. The instance slice must hold one vector per instance
// column the circuit declares.
func NewMockProver(k uint32, circuit frontend.Circuit, instance [][]fr.Element) (*MockProver, error) {
	cs, err := frontend.Configure(circuit)
	if err != nil {
		return nil, err
	}
	if len(instance) != cs.NbInstance() {
		return nil, fmt.Errorf("circuit declares %d instance columns, got %d", cs.NbInstance(), len(instance))
	}
	n := 1 << k

	m := &MockProver{
		Assembly: frontend.NewAssembly(cs, n),
		cs:       cs,
		n:        n,
		instance: instance,
	}
	m.advice = make([][]frontend.Value, cs.NbAdvice())
	for i := range m.advice {
		m.advice[i] = make([]frontend.Value, n)
	}

	log := logger.Logger()
	log.Info().
		Uint32("k", k).
		Int("rows", n).
		Int("nbGates", len(cs.Gates())).
		Msg("running mock prover")

	if err := frontend.Synthesize(circuit, cs, n, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AssignAdvice records the write like a bare assembly and additionally
// computes and stores the value.
func (m *MockProver) AssignAdvice(col frontend.Column, row int, to func() frontend.Value) error {
	if err := m.Assembly.AssignAdvice(col, row, to); err != nil {
		return err
	}
	m.advice[col.Index][row] = to()
	return nil
}

// Copy records the equality constraint, bounds-checking instance endpoints
// against the instance columns handed to NewMockProver.
func (m *MockProver) Copy(a, b frontend.Cell) error {
	for _, c := range []frontend.Cell{a, b} {
		if c.Column.Kind != frontend.Instance {
			continue
		}
		if c.Column.Index < 0 || c.Column.Index >= len(m.instance) {
			return fmt.Errorf("copy endpoint %s: undeclared instance column", c)
		}
		if c.Row < 0 || c.Row >= len(m.instance[c.Column.Index]) {
			return fmt.Errorf("copy endpoint %s: %w", c, frontend.ErrInstanceOutOfRange)
		}
	}
	return m.Assembly.Copy(a, b)
}

// AdviceValue returns the value assigned at (col, row) during the pass,
// unknown if the cell was never assigned.
func (m *MockProver) AdviceValue(col frontend.Column, row int) frontend.Value {
	if col.Kind != frontend.Advice || col.Index < 0 || col.Index >= len(m.advice) {
		return frontend.Unknown()
	}
	if row < 0 || row >= m.n {
		return frontend.Unknown()
	}
	return m.advice[col.Index][row]
}

// Verify checks every gate polynomial on every row and every recorded copy
// constraint. All failures are collected and joined into a single error;
// nil means the trace satisfies the circuit.
func (m *MockProver) Verify() error {
	start := time.Now()

	nbChunks := runtime.NumCPU()
	if nbChunks > m.n {
		nbChunks = m.n
	}
	chunkSize := (m.n + nbChunks - 1) / nbChunks
	perChunk := make([][]error, nbChunks)

	var g errgroup.Group
	for ci := 0; ci < nbChunks; ci++ {
		ci := ci
		g.Go(func() error {
			from := ci * chunkSize
			to := min(from+chunkSize, m.n)
			for row := from; row < to; row++ {
				perChunk[ci] = append(perChunk[ci], m.verifyRow(row)...)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failures []error
	for _, fs := range perChunk {
		failures = append(failures, fs...)
	}
	for _, cp := range m.Copies() {
		if err := m.verifyCopy(cp); err != nil {
			failures = append(failures, err)
		}
	}

	log := logger.Logger()
	log.Debug().
		Int("rows", m.n).
		Int("failures", len(failures)).
		Dur("took", time.Since(start)).
		Msg("mock prover verify done")

	if len(failures) > 0 {
		return errors.Join(failures...)
	}
	return nil
}

func (m *MockProver) verifyRow(row int) []error {
	var failures []error
	for _, gate := range m.cs.Gates() {
		for pi, poly := range gate.Polys {
			res := m.eval(poly, row)
			switch {
			case res.unassigned != nil:
				failures = append(failures, &CellNotAssignedError{
					Gate:   gate.Name,
					Poly:   pi,
					Row:    row,
					Region: m.regionAt(row),
					Cell:   *res.unassigned,
				})
			case !res.v.IsZero():
				failures = append(failures, &GateError{
					Gate:   gate.Name,
					Poly:   pi,
					Expr:   poly.String(),
					Row:    row,
					Region: m.regionAt(row),
					Value:  res.v.String(),
				})
			}
		}
	}
	return failures
}

func (m *MockProver) verifyCopy(cp frontend.Copy) error {
	va, oka := m.resolve(cp.A)
	vb, okb := m.resolve(cp.B)
	if !oka || !okb {
		return &CopyError{A: cp.A, B: cp.B, VA: render(va, oka), VB: render(vb, okb)}
	}
	if !va.Equal(&vb) {
		return &CopyError{A: cp.A, B: cp.B, VA: va.String(), VB: vb.String()}
	}
	return nil
}

// resolve returns the concrete value a cell holds: instance cells read the
// provided instance columns, advice cells read the recorded trace.
func (m *MockProver) resolve(c frontend.Cell) (fr.Element, bool) {
	switch c.Column.Kind {
	case frontend.Instance:
		return m.instance[c.Column.Index][c.Row], true
	case frontend.Advice:
		if !m.Assigned(c.Column, c.Row) {
			return fr.Element{}, false
		}
		return m.advice[c.Column.Index][c.Row].Get()
	default:
		return fr.Element{}, false
	}
}

func (m *MockProver) regionAt(row int) string {
	for _, r := range m.Regions() {
		if r.Start >= 0 && row >= r.Start && row < r.Start+r.Rows {
			return r.Name
		}
	}
	return ""
}

func render(v fr.Element, ok bool) string {
	if !ok {
		return "<unassigned>"
	}
	return v.String()
}
