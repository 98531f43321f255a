// SPDX-License-Identifier: MIT

package pcset

import "github.com/katalvlaran/harmonics/pitch"

// IntervalVector counts interval classes 1..6 (index 0 holds ic1) over every
// unordered pair of members.
type IntervalVector [6]int

// Sum returns the number of counted pairs; for a set of size n it equals n(n−1)/2.
func (v IntervalVector) Sum() int {
	total := 0
	for _, c := range v {
		total += c
	}

	return total
}

// IntervalVectorOf returns the interval-class content of s.
//
// Complexity: O(n²), n ≤ 12.
func IntervalVectorOf(s Set) IntervalVector {
	var v IntervalVector
	elems := s.Elements()
	var i, j int
	for i = 0; i < len(elems); i++ {
		for j = i + 1; j < len(elems); j++ {
			ic := pitch.IntervalClass(elems[i], elems[j])
			v[ic-1]++ // distinct members never produce ic0
		}
	}

	return v
}
