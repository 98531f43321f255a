// SPDX-License-Identifier: MIT

package pcset

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/harmonics/pitch"
)

// OctavePartition is the cyclic gap sequence of a set: entry i is the
// ascending distance from member i to member i+1, the last entry wrapping back
// to the first member. Entries are positive and sum to 12.
type OctavePartition []int

// PartitionOf returns the octave partition of s read from its lowest member.
// The major triad yields [4 3 5]. Empty sets yield nil.
func PartitionOf(s Set) OctavePartition {
	elems := s.Elements()
	if len(elems) == 0 {
		return nil
	}
	p := make(OctavePartition, len(elems))
	for i := range elems {
		p[i] = pitch.Up(elems[i], elems[(i+1)%len(elems)])
	}
	if len(elems) == 1 {
		p[0] = pitch.Octave
	}

	return p
}

// Validate checks that every gap is positive and the gaps sum to an octave.
func (p OctavePartition) Validate() error {
	if len(p) == 0 || len(p) > pitch.Octave {
		return fmt.Errorf("partition %v: length %d: %w", []int(p), len(p), ErrInvalidPartition)
	}
	sum := 0
	for i, g := range p {
		if g <= 0 {
			return fmt.Errorf("partition %v: gap %d is %d: %w", []int(p), i, g, ErrInvalidPartition)
		}
		sum += g
	}
	if sum != pitch.Octave {
		return fmt.Errorf("partition %v: sum %d: %w", []int(p), sum, ErrInvalidPartition)
	}

	return nil
}

// Reflect returns the gaps in reverse order, the partition of the inverted set.
func (p OctavePartition) Reflect() OctavePartition {
	out := slices.Clone(p)
	slices.Reverse(out)

	return out
}

// Rotate returns the partition read from member i.
func (p OctavePartition) Rotate(i int) OctavePartition {
	if len(p) == 0 {
		return nil
	}
	i = ((i % len(p)) + len(p)) % len(p)

	return append(slices.Clone(p[i:]), p[:i]...)
}

// FromPartition rebuilds the set whose partition, read from start, is p.
//
// Errors:
//   - ErrInvalidPartition when p fails Validate.
func FromPartition(p OctavePartition, start pitch.PitchClass) (Set, error) {
	if err := p.Validate(); err != nil {
		return Set{}, err
	}
	var m uint16
	cur := start
	for _, g := range p {
		m |= 1 << uint(pitch.Mod(int(cur)))
		cur = pitch.Transpose(cur, g)
	}

	return Set{mask: m}, nil
}
