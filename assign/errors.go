// SPDX-License-Identifier: MIT
// Package assign: sentinel error set.
// Every message is prefixed with "assign: ". Solvers return these sentinels,
// wrapped with call-site context where useful; tests match them via errors.Is.

package assign

import "errors"

var (
	// ErrInvalidDimensions indicates a non-positive matrix order.
	ErrInvalidDimensions = errors.New("assign: dimensions must be > 0")

	// ErrNonSquare indicates ragged or non-square input rows.
	ErrNonSquare = errors.New("assign: matrix is not square")

	// ErrOutOfRange indicates a row or column index outside [0,n).
	ErrOutOfRange = errors.New("assign: index out of range")

	// ErrTooLarge indicates a matrix too large for the exact bitmask solver.
	ErrTooLarge = errors.New("assign: matrix too large for exact solver")
)
