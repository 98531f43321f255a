// SPDX-License-Identifier: MIT

// Package fretboard searches fretted instruments for chord shapes.
//
// What:
//
//   - Tuning: open-string pitches (lowest string first) and a fret ceiling.
//   - FindGtrShapes: every shape of a chord that fits the hand, grouped by the
//     register-normalized voicing it sounds and split by Category.
//   - GtrShape: frets per string (Muted when unplayed), sounding notes, and the
//     OctaveSeparated / AboveTwelfth flags.
//
// How:
//
//  1. Choose Voices strings out of m, keeping physical order: C(m, v) subsets.
//  2. Assign chord tones to them: all v! orderings, or every covering
//     sequence when Voices exceeds the chord size (doubled tones).
//  3. Per string take the lowest fret sounding its tone, plus that fret + 12
//     when it is below 6 and within the ceiling.
//  4. Walk the product of those choices; reject combinations whose stopped
//     (non-open) frets spread wider than MaxSpan.
//  5. Classify: NonTransposable when open strings push the full span past
//     MaxSpan, WideInterval when adjacent sounding strings lie more than an
//     octave apart, Regular otherwise.
//
// With SeparateOctaves disabled, each (string subset, tone assignment) keeps
// only its lowest accepted fret combination.
//
// Concurrency:
//
//	String subsets are independent tasks on an errgroup limited to Workers.
//	Each task owns its output slice; the merge runs after Wait in task order,
//	so results are identical for any worker count.
//
// Errors:
//
//   - ErrInvalidInstrument: no strings or negative fret ceiling.
//   - ErrMissingSpan: no WithMaxSpan option.
//   - ErrInvalidArity: Voices below the chord size.
package fretboard
