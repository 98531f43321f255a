// SPDX-License-Identifier: MIT

// Package combin provides lazy, deterministic generators over index spaces:
// k-combinations, permutations, mixed-radix products and surjections.
//
// What:
//
//   - Combinations(n, k) : every k-subset of [0,n) in lexicographic order.
//   - Permutations(n)    : every ordering of [0,n) in lexicographic order.
//   - Product(radices...): every tuple t with 0 ≤ t[i] < radices[i], last index fastest.
//   - Surjections(n, k)  : every length-k sequence over [0,n) that uses each value.
//
// Why:
//
//   - The exhaustive searches of harmonics (subsets, string groupings, tone
//     orderings, fret octave choices) all reduce to walks over these spaces.
//     Expressing them as iter.Seq values keeps each walk independent (no shared
//     accumulators), restartable (ranging again restarts from the first tuple)
//     and abandonable (break stops the walk with nothing to roll back).
//
// Contract:
//
//   - Yielded slices are owned by the generator and are overwritten on the next
//     step. Copy them (slices.Clone) to retain.
//   - Degenerate inputs yield nothing rather than failing: k > n, negative
//     sizes, or a zero radix.
//
// Complexity:
//
//   - Combinations: O(C(n,k)·k); Permutations: O(n!·n); Product: O(Π radices);
//     Surjections: O(nᵏ·k). Memory is O(n + k) for every generator.
package combin
