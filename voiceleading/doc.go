// SPDX-License-Identifier: MIT

// Package voiceleading finds the smoothest way to move one chord onto another.
//
// Each voice of the source moves to a distinct voice of the target. For
// pitch-class sets a move costs |ShortestDelta|, the fewest semitones either
// way round the octave; for voicings it costs the absolute height difference.
// The optimal assignment comes from package assign.
//
// Tie-break order for MinimalVoiceLeading:
//
//  1. smallest total displacement,
//  2. then smallest largest single-voice displacement,
//  3. then lexicographically smallest target sequence, voices taken in
//     ascending pitch-class order of the source.
//
// Errors:
//
//   - ErrArityMismatch: source and target sizes differ.
//   - pcset.ErrEmptySet: an operand is empty.
//
// Example:
//
//	p, _ := voiceleading.MinimalVoiceLeading(cMajor, aMinor)
//	fmt.Println(p) // C→C 0, E→E 0, G→A +2
package voiceleading
