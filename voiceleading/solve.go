// SPDX-License-Identifier: MIT

package voiceleading

import (
	"fmt"

	"github.com/katalvlaran/harmonics/assign"
	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
	"github.com/katalvlaran/harmonics/voicing"
)

// MinimalVoiceLeading returns the cheapest bijection from the members of a to
// the members of b, each move taking the shorter way round the octave.
//
// Errors:
//   - pcset.ErrEmptySet when either set is empty.
//   - ErrArityMismatch when |a| ≠ |b|.
//
// Complexity: O(d·n·2ⁿ) with n ≤ 12 and d ≤ 7 distinct costs.
func MinimalVoiceLeading(a, b pcset.Set) (Path, error) {
	if a.IsEmpty() || b.IsEmpty() {
		return Path{}, pcset.ErrEmptySet
	}
	if a.Len() != b.Len() {
		return Path{}, fmt.Errorf("MinimalVoiceLeading(%s, %s): %w", a, b, ErrArityMismatch)
	}

	from, to := a.Elements(), b.Elements()
	cost, err := assign.NewDense(len(from))
	if err != nil {
		return Path{}, err
	}
	for i, f := range from {
		for j, t := range to {
			if err = cost.Set(i, j, abs(pitch.ShortestDelta(f, t))); err != nil {
				return Path{}, err
			}
		}
	}

	res, err := assign.Exact(cost)
	if err != nil {
		return Path{}, err
	}

	p := Path{Moves: make([]Move, len(from)), Total: res.Total, Max: res.Max}
	for i, j := range res.Assignment {
		p.Moves[i] = Move{From: from[i], To: to[j], Delta: pitch.ShortestDelta(from[i], to[j])}
	}

	return p, nil
}

// Distance is the total displacement of MinimalVoiceLeading(a, b).
func Distance(a, b pcset.Set) (int, error) {
	p, err := MinimalVoiceLeading(a, b)
	if err != nil {
		return 0, err
	}

	return p.Total, nil
}

// VoicingLeading pairs the voices of from with those of to, minimising the
// summed absolute height differences. Up to assign.MaxExact voices the tie-breaks
// of MinimalVoiceLeading apply; larger voicings fall back to the Hungarian
// solver, which only guarantees the minimal total.
//
// Errors:
//   - pcset.ErrEmptySet when either voicing is empty.
//   - ErrArityMismatch when the voice counts differ.
func VoicingLeading(from, to voicing.Voicing) (VoicePath, error) {
	if from.Len() == 0 || to.Len() == 0 {
		return VoicePath{}, pcset.ErrEmptySet
	}
	if from.Len() != to.Len() {
		return VoicePath{}, fmt.Errorf("VoicingLeading(%s, %s): %w", from, to, ErrArityMismatch)
	}

	src, dst := from.Pitches(), to.Pitches()
	cost, err := assign.NewDense(len(src))
	if err != nil {
		return VoicePath{}, err
	}
	for i, f := range src {
		for j, t := range dst {
			if err = cost.Set(i, j, abs(pitch.SemitoneDistance(f, t))); err != nil {
				return VoicePath{}, err
			}
		}
	}

	solve := assign.Exact
	if len(src) > assign.MaxExact {
		solve = assign.Hungarian
	}
	res, err := solve(cost)
	if err != nil {
		return VoicePath{}, err
	}

	p := VoicePath{Moves: make([]VoiceMove, len(src)), Total: res.Total, Max: res.Max}
	for i, j := range res.Assignment {
		p.Moves[i] = VoiceMove{From: src[i], To: dst[j], Delta: pitch.SemitoneDistance(src[i], dst[j])}
	}

	return p, nil
}

// ApplyPaths moves voice i of v by deltas[i] semitones. The result keeps voice
// order rather than re-sorting, so crossings stay visible.
//
// Errors:
//   - ErrArityMismatch when len(deltas) ≠ v.Len().
func ApplyPaths(v voicing.Voicing, deltas []int) ([]pitch.Pitch, error) {
	if len(deltas) != v.Len() {
		return nil, fmt.Errorf("ApplyPaths: %d deltas for %d voices: %w", len(deltas), v.Len(), ErrArityMismatch)
	}
	out := v.Pitches()
	for i := range out {
		out[i] = out[i].Transpose(deltas[i])
	}

	return out, nil
}
