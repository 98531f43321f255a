// SPDX-License-Identifier: MIT

// Package voicing realises chords as concrete pitches.
//
// A Voicing is an ascending list of Pitch values; the same pitch class may
// appear at several octaves. Enumerate produces every voicing of a chord inside
// an inclusive pitch range, lazily, as an iter.Seq.
//
// What:
//
//   - Voicing: sorted pitches with span, stacked intervals, wide-interval
//     detection, octave moves and register normalization.
//   - Enumerate: one pitch per chord tone, or (AllowDoublings) any covering
//     selection of candidate pitches up to MaxVoices voices.
//   - Canonical: one close voicing per ordering of the chord tones.
//
// Ordering:
//
//	Results come by voice count, then in lexicographic order of candidate
//	indices, candidates ascending per tone. Ranging twice restarts the walk;
//	breaking out stops it with nothing left behind.
//
// Complexity:
//
//   - Without doublings: O(∏ cᵢ) voicings, cᵢ the candidate count of tone i.
//   - With doublings: O(Σ_v C(P, v)) with P the pooled candidate count.
//
// Errors:
//
//   - ErrInvalidRange: Range.Low above Range.High.
//   - ErrInvalidMaxVoices: MaxVoices negative or below the chord size.
//   - pcset.ErrEmptySet: the chord has no tones.
package voicing
