// SPDX-License-Identifier: MIT

// Package pcset is the pitch-class set engine: canonical forms, interval
// content, symmetry detection and exhaustive subset/superset search over sets
// of pitch classes, plus the Chord value built on top of them.
//
// What:
//
//   - Set is an immutable 12-bit membership mask (comparable, usable as a map key).
//   - NormalForm / NormalOrder: the rotation with the lexicographically smallest
//     successive gaps, transposed to start at 0 (set class under Tₖ).
//   - PrimeForm: the smaller of the normal forms of S and its inversion
//     (set class under Tₖ and TₙI).
//   - IntervalVector: interval-class content, entries summing to C(n,2).
//   - Symmetries: every k with Tₖ(S)=S and every n with TₙI(S)=S.
//   - SubsetsOfSize / SupersetsWithin / SupersetClasses: exhaustive search,
//     optionally deduplicated by an explicit Equivalence mode.
//   - OctavePartition and Modes: the gap sequence view of a set and its rotations.
//   - Chord: a Set with an optional root and bass, both required to be members.
//
// Equivalence is a tagged enumeration passed explicitly to every comparison and
// deduplication routine:
//
//	Literal                 plain set equality
//	Transposition           equal normal forms
//	TranspositionInversion  equal prime forms
//
// Complexity:
//
//   - Membership, transposition, inversion, union: O(1) on the mask.
//   - NormalForm / PrimeForm: O(n²) with n ≤ 12.
//   - SubsetsOfSize: O(C(n,k)·n²) with deduplication.
//   - SupersetsWithin: O(C(|U|−|S|, k−|S|)).
//
// Errors:
//
//   - ErrDuplicateEntry: New received the same pitch class twice.
//   - ErrEmptySet: New received no pitch classes.
//   - ErrInvalidPitchClass (from package pitch): an element outside [0,11].
//   - ErrInvalidArity: subset/superset size outside its legal bounds.
//   - ErrRootNotInSet / ErrBassNotInSet: chord root or bass is not a member.
//   - ErrInvalidPartition: gaps are non-positive or do not sum to 12.
package pcset
