// SPDX-License-Identifier: MIT

package pcset

import (
	"slices"

	"github.com/katalvlaran/harmonics/pitch"
)

// rotationGaps returns the successive ascending gaps of elems read cyclically
// from position start: n−1 gaps, the closing gap back to the start is implied.
func rotationGaps(elems []pitch.PitchClass, start int) []int {
	n := len(elems)
	gaps := make([]int, 0, n-1)
	var j int
	for j = 0; j < n-1; j++ { // walk the rotation
		a := elems[(start+j)%n]
		b := elems[(start+j+1)%n]
		gaps = append(gaps, pitch.Up(a, b))
	}

	return gaps
}

// bestRotation returns the index of the rotation whose gap sequence is
// lexicographically smallest, with its gaps. Equal gap sequences only arise on
// transpositionally symmetric sets; the lowest starting pitch class wins then.
//
// Complexity: O(n²).
func bestRotation(elems []pitch.PitchClass) (int, []int) {
	var (
		best     int
		bestGaps []int
	)
	for r := range elems {
		g := rotationGaps(elems, r)
		if bestGaps == nil || slices.Compare(g, bestGaps) < 0 {
			best, bestGaps = r, g
		}
	}

	return best, bestGaps
}

// NormalOrder returns the members of s in canonical rotation order: the
// rotation whose successive gaps are lexicographically smallest. The first
// element is left untransposed. Empty sets yield nil.
//
// Complexity: O(n²).
func NormalOrder(s Set) []pitch.PitchClass {
	elems := s.Elements()
	if len(elems) == 0 {
		return nil
	}
	r, _ := bestRotation(elems)
	out := make([]pitch.PitchClass, len(elems))
	for i := range elems {
		out[i] = elems[(r+i)%len(elems)]
	}

	return out
}

// NormalForm returns the canonical rotation of s transposed to begin at 0.
// It is idempotent and transposition-invariant:
//
//	NormalForm(NormalForm(s)) == NormalForm(s)
//	NormalForm(s.Transpose(k)) == NormalForm(s)  for every k
//
// Complexity: O(n²).
func NormalForm(s Set) Set {
	order := NormalOrder(s)
	if order == nil {
		return Set{}
	}

	return s.Transpose(-int(order[0]))
}

// normalGaps returns the gap sequence of the canonical rotation of s.
func normalGaps(s Set) []int {
	elems := s.Elements()
	if len(elems) == 0 {
		return nil
	}
	_, g := bestRotation(elems)

	return g
}

// PrimeForm returns the set-class representative of s under transposition and
// inversion: whichever of NormalForm(s) and NormalForm(T₀I(s)) has the
// lexicographically smaller gap sequence.
//
// Complexity: O(n²).
func PrimeForm(s Set) Set {
	inv := s.Invert(0)
	if slices.Compare(normalGaps(inv), normalGaps(s)) < 0 {
		return NormalForm(inv)
	}

	return NormalForm(s)
}
