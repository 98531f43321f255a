// SPDX-License-Identifier: MIT

package pcset

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/harmonics/pitch"
)

// Chord is a pitch-class set with an optional root and an optional bass.
// When present, both are members of the set.
type Chord struct {
	set     Set
	root    pitch.PitchClass
	bass    pitch.PitchClass
	hasRoot bool
	hasBass bool
}

// ChordOption configures NewChord.
type ChordOption func(*Chord)

// Root marks pc as the chord root.
func Root(pc pitch.PitchClass) ChordOption {
	return func(c *Chord) {
		c.root = pc
		c.hasRoot = true
	}
}

// Bass requires pc in the lowest voice of every realisation.
func Bass(pc pitch.PitchClass) ChordOption {
	return func(c *Chord) {
		c.bass = pc
		c.hasBass = true
	}
}

// NewChord builds a Chord over set.
//
// Errors:
//   - ErrEmptySet when set is empty.
//   - ErrRootNotInSet when the root is not a member.
//   - ErrBassNotInSet when the bass is not a member.
func NewChord(set Set, opts ...ChordOption) (Chord, error) {
	if set.IsEmpty() {
		return Chord{}, ErrEmptySet
	}
	c := Chord{set: set}
	for _, opt := range opts {
		if opt == nil {
			panic("pcset: NewChord received nil ChordOption")
		}
		opt(&c)
	}
	if c.hasRoot && !set.Contains(c.root) {
		return Chord{}, fmt.Errorf("NewChord: root %s of %s: %w", c.root, set, ErrRootNotInSet)
	}
	if c.hasBass && !set.Contains(c.bass) {
		return Chord{}, fmt.Errorf("NewChord: bass %s of %s: %w", c.bass, set, ErrBassNotInSet)
	}

	return c, nil
}

// MustChord is NewChord that panics on error.
func MustChord(set Set, opts ...ChordOption) Chord {
	c, err := NewChord(set, opts...)
	if err != nil {
		panic(err)
	}

	return c
}

// Set returns the underlying pitch-class set.
func (c Chord) Set() Set { return c.set }

// Len returns the number of distinct tones.
func (c Chord) Len() int { return c.set.Len() }

// Root returns the root and whether one was given.
func (c Chord) Root() (pitch.PitchClass, bool) { return c.root, c.hasRoot }

// Bass returns the bass and whether one was given.
func (c Chord) Bass() (pitch.PitchClass, bool) { return c.bass, c.hasBass }

// Tones lists members ascending from the root (or from the lowest member when
// no root is set), wrapping around the octave.
func (c Chord) Tones() []pitch.PitchClass {
	elems := c.set.Elements()
	if !c.hasRoot {
		return elems
	}
	start := 0
	for i, pc := range elems {
		if pc == c.root {
			start = i
			break
		}
	}

	return append(elems[start:], elems[:start]...)
}

// Transpose moves set, root and bass by k semitones.
func (c Chord) Transpose(k int) Chord {
	out := c
	out.set = c.set.Transpose(k)
	if c.hasRoot {
		out.root = pitch.Transpose(c.root, k)
	}
	if c.hasBass {
		out.bass = pitch.Transpose(c.bass, k)
	}

	return out
}

// String renders the set with its root and bass, e.g. "{0,4,7} root=C bass=E".
func (c Chord) String() string {
	var sb strings.Builder
	sb.WriteString(c.set.String())
	if c.hasRoot {
		sb.WriteString(" root=")
		sb.WriteString(c.root.String())
	}
	if c.hasBass {
		sb.WriteString(" bass=")
		sb.WriteString(c.bass.String())
	}

	return sb.String()
}
