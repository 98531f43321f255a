// SPDX-License-Identifier: MIT

package pitch

import (
	"cmp"
	"fmt"
)

// Pitch is a PitchClass with an octave register.
// Height = Class + 12·Octave; C4 (middle C) has height 48.
type Pitch struct {
	Class  PitchClass
	Octave int
}

// At builds a Pitch from a class and octave. The class is reduced modulo 12
// so At never fails; use New first when the class comes from untrusted input.
func At(pc PitchClass, octave int) Pitch {
	return Pitch{Class: Mod(int(pc)), Octave: octave}
}

// FromHeight inverts Height using floor division, so negative heights land in
// negative octaves with a class still in [0,11].
// Complexity: O(1).
func FromHeight(h int) Pitch {
	pc := Mod(h)

	return Pitch{Class: pc, Octave: (h - int(pc)) / Octave}
}

// Height is the absolute semitone index of p.
func (p Pitch) Height() int { return int(p.Class) + Octave*p.Octave }

// Transpose moves p by semitones, carrying into the octave as needed.
func (p Pitch) Transpose(semitones int) Pitch { return FromHeight(p.Height() + semitones) }

// RaiseOctaves moves p by n whole octaves (negative n lowers).
func (p Pitch) RaiseOctaves(n int) Pitch { return Pitch{Class: p.Class, Octave: p.Octave + n} }

// Less orders pitches by height.
func (p Pitch) Less(q Pitch) bool { return p.Height() < q.Height() }

// Compare returns -1, 0 or +1 comparing heights; suitable for slices.SortFunc.
func Compare(p, q Pitch) int { return cmp.Compare(p.Height(), q.Height()) }

// String renders p as class plus octave, e.g. "C#4".
func (p Pitch) String() string { return fmt.Sprintf("%s%d", p.Class, p.Octave) }

// SemitoneDistance returns the signed distance from a to b in semitones
// (positive when b is higher).
// Complexity: O(1).
func SemitoneDistance(a, b Pitch) int {
	return b.Height() - a.Height()
}
