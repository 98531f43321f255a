// SPDX-License-Identifier: MIT

package pcset

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/harmonics/pitch"
)

// fullMask has one bit per pitch class.
const fullMask uint16 = 1<<pitch.Octave - 1

// Set is an immutable set of distinct pitch classes, bit pc set for each member.
// The zero value is the empty set, which New never returns; operations accept it
// and yield empty results.
type Set struct {
	mask uint16
}

// Aggregate is the full twelve-tone set, the default superset universe.
var Aggregate = Set{mask: fullMask}

// New builds a Set from distinct pitch classes.
//
// Errors:
//   - ErrEmptySet when pcs is empty.
//   - pitch.ErrInvalidPitchClass when an element is outside [0,11].
//   - ErrDuplicateEntry when an element repeats.
//
// Complexity: O(len(pcs)).
func New(pcs ...pitch.PitchClass) (Set, error) {
	if len(pcs) == 0 {
		return Set{}, ErrEmptySet
	}
	var m uint16
	for i, pc := range pcs {
		if !pc.Valid() {
			return Set{}, fmt.Errorf("New: element %d: %w", i, pitch.ErrInvalidPitchClass)
		}
		bit := uint16(1) << uint(pc)
		if m&bit != 0 {
			return Set{}, fmt.Errorf("New: %s: %w", pc, ErrDuplicateEntry)
		}
		m |= bit
	}

	return Set{mask: m}, nil
}

// MustNew is New for literals known to be valid; it panics on error.
func MustNew(pcs ...pitch.PitchClass) Set {
	s, err := New(pcs...)
	if err != nil {
		panic(err)
	}

	return s
}

// FromInts is New over plain integers.
func FromInts(ns ...int) (Set, error) {
	pcs := make([]pitch.PitchClass, len(ns))
	for i, n := range ns {
		pc, err := pitch.New(n)
		if err != nil {
			return Set{}, err
		}
		pcs[i] = pc
	}

	return New(pcs...)
}

// FromMask builds a Set from a membership mask; bits above 11 are discarded.
func FromMask(m uint16) Set { return Set{mask: m & fullMask} }

// Mask returns the membership mask (bit pc set per member).
func (s Set) Mask() uint16 { return s.mask }

// Len returns the number of members.
func (s Set) Len() int { return bits.OnesCount16(s.mask) }

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool { return s.mask == 0 }

// Contains reports membership of pc.
func (s Set) Contains(pc pitch.PitchClass) bool {
	return pc.Valid() && s.mask&(1<<uint(pc)) != 0
}

// Elements returns the members in ascending order.
// Complexity: O(12).
func (s Set) Elements() []pitch.PitchClass {
	out := make([]pitch.PitchClass, 0, s.Len())
	for pc := pitch.C; pc <= pitch.B; pc++ {
		if s.mask&(1<<uint(pc)) != 0 {
			out = append(out, pc)
		}
	}

	return out
}

// Transpose returns Tₖ(s).
// Complexity: O(1) (bit rotation within 12 bits).
func (s Set) Transpose(k int) Set {
	r := uint(pitch.Mod(k))
	m := uint32(s.mask)

	return Set{mask: uint16((m<<r | m>>(pitch.Octave-r)) & uint32(fullMask))}
}

// Invert returns TₙI(s) = {(n − p) mod 12 : p ∈ s}.
// Complexity: O(12).
func (s Set) Invert(n int) Set {
	var m uint16
	for pc := pitch.C; pc <= pitch.B; pc++ {
		if s.mask&(1<<uint(pc)) != 0 {
			m |= 1 << uint(pitch.InvertIndex(pc, n))
		}
	}

	return Set{mask: m}
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set { return Set{mask: s.mask | o.mask} }

// Intersect returns s ∩ o.
func (s Set) Intersect(o Set) Set { return Set{mask: s.mask & o.mask} }

// Difference returns s \ o.
func (s Set) Difference(o Set) Set { return Set{mask: s.mask &^ o.mask} }

// Complement returns the aggregate minus s.
func (s Set) Complement() Set { return Set{mask: ^s.mask & fullMask} }

// IsSubsetOf reports s ⊆ o.
func (s Set) IsSubsetOf(o Set) bool { return s.mask&^o.mask == 0 }

// String renders members as integers, e.g. "{0,4,7}".
func (s Set) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, pc := range s.Elements() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(pc)))
	}
	sb.WriteByte('}')

	return sb.String()
}
