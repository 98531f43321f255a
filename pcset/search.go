// SPDX-License-Identifier: MIT

package pcset

import (
	"fmt"

	"github.com/katalvlaran/harmonics/combin"
	"github.com/katalvlaran/harmonics/pitch"
)

// fromIndices selects elems at the given indices into a Set.
func fromIndices(elems []pitch.PitchClass, idx []int) Set {
	var m uint16
	for _, i := range idx {
		m |= 1 << uint(elems[i])
	}

	return Set{mask: m}
}

// SubsetsOfSize returns every k-element subset of s, deduplicated under mode.
// Literal keeps all C(|s|,k) subsets; the other modes keep the first subset
// (in lexicographic order of members) found for each class, so every result is
// still a literal subset of s.
//
// Errors:
//   - ErrInvalidArity when k is outside [1, |s|−1].
//
// Complexity: O(C(n,k)·n²).
func SubsetsOfSize(s Set, k int, mode Equivalence) ([]Set, error) {
	n := s.Len()
	if k < 1 || k > n-1 {
		return nil, fmt.Errorf("SubsetsOfSize(%s, %d): %w", s, k, ErrInvalidArity)
	}

	elems := s.Elements()
	seen := make(map[Set]struct{})
	out := make([]Set, 0, combin.Binomial(n, k))
	for idx := range combin.Combinations(n, k) {
		sub := fromIndices(elems, idx)
		if mode != Literal {
			key := ClassOf(sub, mode)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
		}
		out = append(out, sub)
	}

	return out, nil
}

// SupersetsWithin returns every k-element superset of s whose members all lie
// in universe. A set that is not contained in universe has no such supersets:
// the result is empty without an error.
//
// Errors:
//   - ErrInvalidArity when k is outside [|s|+1, |universe|].
//
// Complexity: O(C(|U|−|s|, k−|s|)).
func SupersetsWithin(s, universe Set, k int) ([]Set, error) {
	if k < s.Len()+1 || k > universe.Len() {
		return nil, fmt.Errorf("SupersetsWithin(%s, %s, %d): %w", s, universe, k, ErrInvalidArity)
	}
	if !s.IsSubsetOf(universe) {
		return []Set{}, nil
	}

	free := universe.Difference(s).Elements()
	out := make([]Set, 0, combin.Binomial(len(free), k-s.Len()))
	for idx := range combin.Combinations(len(free), k-s.Len()) {
		out = append(out, s.Union(fromIndices(free, idx)))
	}

	return out, nil
}

// Supersets is SupersetsWithin over the full aggregate.
func Supersets(s Set, k int) ([]Set, error) {
	return SupersetsWithin(s, Aggregate, k)
}

// SupersetClasses returns the distinct classes (under mode) of k-element sets
// that contain s, as class representatives (ClassOf). Each returned set
// contains s under mode, not necessarily literally.
//
// Errors:
//   - ErrInvalidArity when k is outside [|s|+1, 12].
func SupersetClasses(s Set, k int, mode Equivalence) ([]Set, error) {
	all, err := Supersets(s, k)
	if err != nil {
		return nil, err
	}
	if mode == Literal {
		return all, nil
	}

	seen := make(map[Set]struct{}, len(all))
	out := make([]Set, 0, len(all))
	for _, sup := range all {
		key := ClassOf(sup, mode)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	return out, nil
}
