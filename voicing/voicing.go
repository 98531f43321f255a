// SPDX-License-Identifier: MIT

package voicing

import (
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
)

// Voicing is an immutable ascending sequence of pitches.
type Voicing struct {
	pitches []pitch.Pitch
}

// New sorts a copy of pitches by height. Unisons are kept.
func New(pitches ...pitch.Pitch) Voicing {
	ps := slices.Clone(pitches)
	slices.SortStableFunc(ps, pitch.Compare)

	return Voicing{pitches: ps}
}

// FromIntervals stacks intervals upward from base: base, base+i₀, base+i₀+i₁, ...
func FromIntervals(base pitch.Pitch, intervals []int) Voicing {
	ps := make([]pitch.Pitch, 0, len(intervals)+1)
	ps = append(ps, base)
	h := base.Height()
	for _, iv := range intervals {
		h += iv
		ps = append(ps, pitch.FromHeight(h))
	}

	return New(ps...)
}

// Pitches returns a copy of the pitches, lowest first.
func (v Voicing) Pitches() []pitch.Pitch { return slices.Clone(v.pitches) }

// Heights returns the absolute heights, lowest first.
func (v Voicing) Heights() []int {
	out := make([]int, len(v.pitches))
	for i, p := range v.pitches {
		out[i] = p.Height()
	}

	return out
}

// Len returns the number of voices.
func (v Voicing) Len() int { return len(v.pitches) }

// At returns voice i counted from the bottom.
func (v Voicing) At(i int) pitch.Pitch { return v.pitches[i] }

// Classes returns the distinct pitch classes sounded.
func (v Voicing) Classes() pcset.Set {
	var m uint16
	for _, p := range v.pitches {
		m |= 1 << uint(p.Class)
	}

	return pcset.FromMask(m)
}

// Bounds returns the lowest and highest pitch; ok is false for an empty voicing.
func (v Voicing) Bounds() (lo, hi pitch.Pitch, ok bool) {
	if len(v.pitches) == 0 {
		return pitch.Pitch{}, pitch.Pitch{}, false
	}

	return v.pitches[0], v.pitches[len(v.pitches)-1], true
}

// Span returns the distance in semitones from the lowest to the highest voice.
func (v Voicing) Span() int {
	lo, hi, ok := v.Bounds()
	if !ok {
		return 0
	}

	return pitch.SemitoneDistance(lo, hi)
}

// StackedIntervals returns the semitone gaps between adjacent voices.
func (v Voicing) StackedIntervals() []int {
	if len(v.pitches) < 2 {
		return nil
	}
	out := make([]int, len(v.pitches)-1)
	for i := 1; i < len(v.pitches); i++ {
		out[i-1] = pitch.SemitoneDistance(v.pitches[i-1], v.pitches[i])
	}

	return out
}

// HasWideIntervals reports whether two adjacent voices lie an octave or more apart.
func (v Voicing) HasWideIntervals() bool {
	return slices.ContainsFunc(v.StackedIntervals(), func(iv int) bool { return iv >= pitch.Octave })
}

// Transpose moves every voice by semitones.
func (v Voicing) Transpose(semitones int) Voicing {
	out := make([]pitch.Pitch, len(v.pitches))
	for i, p := range v.pitches {
		out[i] = p.Transpose(semitones)
	}

	return Voicing{pitches: out}
}

// MoveByOctaves moves every voice by n octaves.
func (v Voicing) MoveByOctaves(n int) Voicing {
	return v.Transpose(n * pitch.Octave)
}

// Normalize moves the voicing by whole octaves so its lowest voice sits in
// octave 0. Two voicings that differ only by register normalize equally.
func (v Voicing) Normalize() Voicing {
	if len(v.pitches) == 0 {
		return v
	}

	return v.MoveByOctaves(-v.pitches[0].Octave)
}

// Equal reports pitch-by-pitch equality.
func (v Voicing) Equal(o Voicing) bool {
	return slices.Equal(v.pitches, o.pitches)
}

// Key returns a stable string usable as a map key, e.g. "48.52.55".
func (v Voicing) Key() string {
	var sb strings.Builder
	for i, p := range v.pitches {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(p.Height()))
	}

	return sb.String()
}

// String renders the voicing as "[C4 E4 G4]".
func (v Voicing) String() string {
	parts := make([]string, len(v.pitches))
	for i, p := range v.pitches {
		parts[i] = p.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Compare orders voicings by voice count, then voice by voice from the bottom.
func Compare(a, b Voicing) int {
	if c := len(a.pitches) - len(b.pitches); c != 0 {
		return c
	}

	return slices.CompareFunc(a.pitches, b.pitches, pitch.Compare)
}
