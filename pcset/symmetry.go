// SPDX-License-Identifier: MIT

package pcset

import "github.com/katalvlaran/harmonics/pitch"

// Symmetry lists the operators that map a set onto itself.
//
//   - Transpositional: every k in [0,11] with Tₖ(S) == S (always contains 0).
//   - Inversional: every TₙI index n in [0,11] with TₙI(S) == S. These are
//     operator indices, not axes: the mirror axis is n/2 (see Axes), so the
//     reflection Iₐ(pc) = 2a − pc of an integer axis a appears as n = 2a.
type Symmetry struct {
	Transpositional []int
	Inversional     []int
}

// Asymmetric reports whether only the identity transposition fixes the set.
func (sym Symmetry) Asymmetric() bool {
	return len(sym.Transpositional) <= 1
}

// Axes returns the mirror axis n/2 of each inversional symmetry, in semitones
// above C. A half-integer axis falls between two pitch classes; each axis
// also passes through the point a tritone away (a + 6).
func (sym Symmetry) Axes() []float64 {
	if len(sym.Inversional) == 0 {
		return nil
	}
	out := make([]float64, len(sym.Inversional))
	for i, n := range sym.Inversional {
		out[i] = float64(n) / 2
	}

	return out
}

// Degree returns the number of operators (Tₖ and TₙI together) that fix the set.
func (sym Symmetry) Degree() int {
	return len(sym.Transpositional) + len(sym.Inversional)
}

// Symmetries computes the transpositional and inversional symmetry of s.
// Augmented triads report {0,4,8}; whole-tone collections report every even k.
//
// Complexity: O(12·12) with mask operations.
func Symmetries(s Set) Symmetry {
	var sym Symmetry
	if s.IsEmpty() {
		return sym
	}
	var k int
	for k = 0; k < pitch.Octave; k++ {
		if s.Transpose(k) == s {
			sym.Transpositional = append(sym.Transpositional, k)
		}
		if s.Invert(k) == s {
			sym.Inversional = append(sym.Inversional, k)
		}
	}

	return sym
}

// Modes returns the rotations of s, each transposed so its starting member is 0,
// starting from the lowest member. A major scale yields its seven diatonic modes.
//
// Complexity: O(n).
func Modes(s Set) []Set {
	elems := s.Elements()
	out := make([]Set, len(elems))
	for i, pc := range elems {
		out[i] = s.Transpose(-int(pc))
	}

	return out
}
