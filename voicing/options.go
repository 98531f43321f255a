// SPDX-License-Identifier: MIT

package voicing

import (
	"fmt"

	"github.com/katalvlaran/harmonics/pitch"
)

// Range is an inclusive pitch interval.
type Range struct {
	Low  pitch.Pitch
	High pitch.Pitch
}

// OctaveRange spans C of octave lo through B of octave hi.
func OctaveRange(lo, hi int) Range {
	return Range{Low: pitch.At(pitch.C, lo), High: pitch.At(pitch.B, hi)}
}

// Contains reports lo ≤ p ≤ hi by height.
func (r Range) Contains(p pitch.Pitch) bool {
	h := p.Height()

	return h >= r.Low.Height() && h <= r.High.Height()
}

// candidates returns every pitch of class pc inside r, ascending.
func (r Range) candidates(pc pitch.PitchClass) []pitch.Pitch {
	lo, hi := r.Low.Height(), r.High.Height()
	first := lo + pitch.Up(pitch.Mod(lo), pc)
	var out []pitch.Pitch
	for h := first; h <= hi; h += pitch.Octave {
		out = append(out, pitch.FromHeight(h))
	}

	return out
}

// Options configures Enumerate.
//
// Fields:
//   - Range          inclusive pitch bounds for every voice.
//   - AllowDoublings let chord tones recur at other octaves.
//   - MaxVoices      cap on voices when doubling; 0 means the chord size.
//     Ignored without doublings.
type Options struct {
	Range          Range
	AllowDoublings bool
	MaxVoices      int
}

// DefaultOptions returns three octaves from C3 to B5, no doublings.
func DefaultOptions() Options {
	return Options{
		Range:          OctaveRange(3, 5),
		AllowDoublings: false,
		MaxVoices:      0,
	}
}

// validateOptions checks opts against a chord of n tones and returns the
// effective voice cap.
//
// Complexity: O(1).
func validateOptions(opts Options, n int) (int, error) {
	if opts.Range.Low.Height() > opts.Range.High.Height() {
		return 0, fmt.Errorf("Enumerate: range %s..%s: %w", opts.Range.Low, opts.Range.High, ErrInvalidRange)
	}
	if !opts.AllowDoublings {
		return n, nil
	}
	if opts.MaxVoices == 0 {
		return n, nil
	}
	if opts.MaxVoices < n {
		return 0, fmt.Errorf("Enumerate: max voices %d for %d tones: %w", opts.MaxVoices, n, ErrInvalidMaxVoices)
	}

	return opts.MaxVoices, nil
}
