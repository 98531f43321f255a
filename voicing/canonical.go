// SPDX-License-Identifier: MIT

package voicing

import (
	"github.com/katalvlaran/harmonics/combin"
	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
)

// Canonical returns the close voicings of chord: for every ordering of its
// tones, the first tone is placed in octave and each next tone is stacked on
// the nearest pitch above the previous one. Every tone sounds once and no
// adjacent interval reaches an octave. Orderings follow chord.Tones(), so the
// first result is the root-position close voicing. When the chord has a bass,
// only orderings starting on it are kept.
//
// Complexity: O(n!·n).
func Canonical(chord pcset.Chord, octave int) []Voicing {
	tones := chord.Tones()
	bass, hasBass := chord.Bass()
	var out []Voicing
	for perm := range combin.Permutations(len(tones)) {
		if len(perm) == 0 {
			break
		}
		if hasBass && tones[perm[0]] != bass {
			continue
		}
		ps := make([]pitch.Pitch, len(perm))
		ps[0] = pitch.At(tones[perm[0]], octave)
		for i := 1; i < len(perm); i++ {
			prev := ps[i-1]
			ps[i] = prev.Transpose(pitch.Up(prev.Class, tones[perm[i]]))
		}
		out = append(out, Voicing{pitches: ps})
	}

	return out
}
