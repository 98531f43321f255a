// SPDX-License-Identifier: MIT

// Package assign solves the square assignment problem on small integer cost
// matrices: give every row a distinct column so that the summed cost is minimal.
//
// What:
//
//   - Dense: an n×n row-major integer matrix with checked At/Set.
//   - Hungarian: O(n³) potentials method; any optimal matching.
//   - Exact: bitmask dynamic programming with deterministic tie-breaks
//     (total, then largest entry, then lexicographic column sequence).
//
// Why:
//
//   - Voice leading between two chords of equal size is an assignment of
//     voices to targets under a distance cost. Hungarian gives the optimum
//     quickly at any size; Exact reproduces it and pins down which optimum.
//
// Complexity:
//
//   - Hungarian: O(n³) time, O(n) extra memory.
//   - Exact:     O(d·n·2ⁿ) time with d distinct costs, O(2ⁿ) memory, n ≤ MaxExact.
//
// Errors:
//
//   - ErrInvalidDimensions: order ≤ 0 or nil matrix.
//   - ErrNonSquare: ragged rows in FromRows.
//   - ErrOutOfRange: At/Set outside [0,n).
//   - ErrTooLarge: Exact beyond MaxExact.
package assign
