package frontend

import "errors"

var (
	// ErrNotEnoughRows is returned when a region operation falls outside
	// the 2^k rows of the pass.
	ErrNotEnoughRows = errors.New("not enough rows available, try a larger k")

	// ErrColumnNotEquality is returned when a copy constraint touches a
	// column that was not enabled for equality during Configure.
	ErrColumnNotEquality = errors.New("column is not enabled for equality")

	// ErrInstanceOutOfRange is returned when a public binding targets an
	// instance row outside the provided instance column.
	ErrInstanceOutOfRange = errors.New("instance row out of range")
)
