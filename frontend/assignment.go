package frontend

// Assignment is the sink a synthesis pass writes into. The frontend drives
// the same circuit code against different sinks: an Assembly records
// structure only, a mock prover additionally records values.
//
// Row and column arguments are absolute; the Layouter resolves region
// offsets before calling into the sink.
type Assignment interface {
	// EnterRegion and ExitRegion bracket the operations of one region.
	// Regions never nest.
	EnterRegion(name string)
	ExitRegion()

	// EnableSelector activates the selector at the given row.
	EnableSelector(s Selector, row int) error

	// AssignAdvice writes the cell at (col, row). Sinks that do not track
	// values must not invoke the thunk; value computation is skipped
	// entirely in structure-only passes.
	AssignAdvice(col Column, row int, to func() Value) error

	// Copy records an equality constraint between two cells.
	Copy(a, b Cell) error
}
