// SPDX-License-Identifier: MIT

// Package pitch is the arithmetic floor of harmonics: pitch classes and
// octave-qualified pitches with modular operations over them.
//
// What:
//
//   - PitchClass is one of the twelve octave-equivalence classes, always in [0,11].
//   - Pitch pairs a PitchClass with an integer octave. Height = class + 12·octave,
//     so C4 has height 48 and pitches are totally ordered by height.
//   - Transpose / Invert / InvertIndex are the Tₖ and Iₐ operators of set theory.
//   - SemitoneDistance and ShortestDelta measure displacement in semitone space.
//
// Why:
//
//   - Every other package (pcset, voicing, fretboard, voiceleading) builds on
//     these values; keeping them tiny and total means the searches above never
//     have to re-check ranges.
//
// Complexity:
//
//   - Every operation is O(1) and allocation-free.
//
// Errors:
//
//   - ErrInvalidPitchClass: New received an integer outside [0,11].
//
// Octave convention: scientific pitch notation (middle C = C4). Negative
// octaves are legal values; callers bound registers through voicing.Range.
package pitch
