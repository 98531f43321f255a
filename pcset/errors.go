// SPDX-License-Identifier: MIT

package pcset

import "errors"

// Construction errors. Callers branch with errors.Is; returned values may be
// wrapped with call-site context.
var (
	// ErrDuplicateEntry indicates a pitch class listed more than once.
	ErrDuplicateEntry = errors.New("pcset: duplicate pitch class")

	// ErrEmptySet indicates a set with no members; sets have size 1..12.
	ErrEmptySet = errors.New("pcset: empty set")

	// ErrRootNotInSet indicates a chord root that is not a member of the chord.
	ErrRootNotInSet = errors.New("pcset: root not in set")

	// ErrBassNotInSet indicates a chord bass that is not a member of the chord.
	ErrBassNotInSet = errors.New("pcset: bass not in set")

	// ErrInvalidPartition indicates an octave partition whose gaps are not all
	// positive or do not sum to 12.
	ErrInvalidPartition = errors.New("pcset: invalid octave partition")
)

// ErrInvalidArity indicates a requested subset or superset size outside the
// legal range for the operand sets. No partial result accompanies it.
var ErrInvalidArity = errors.New("pcset: invalid arity")
