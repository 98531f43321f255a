// SPDX-License-Identifier: MIT

package fretboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/harmonics/pitch"
	"github.com/katalvlaran/harmonics/voicing"
)

// Muted marks an unplayed string in GtrShape.Frets.
const Muted = -1

// Category classifies an accepted shape.
type Category int

const (
	// Regular shapes can be moved up and down the neck as they are.
	Regular Category = iota

	// WideInterval shapes have two adjacent sounding strings more than an octave apart.
	WideInterval

	// NonTransposable shapes fit the hand only because some strings ring open.
	NonTransposable

	categoryCount
)

// Categories lists every category in output order.
func Categories() []Category {
	return []Category{Regular, WideInterval, NonTransposable}
}

// String names the category.
func (c Category) String() string {
	switch c {
	case Regular:
		return "regular"
	case WideInterval:
		return "wide-interval"
	case NonTransposable:
		return "non-transposable"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// GtrShape is one chord shape: a fret (or Muted) per string.
type GtrShape struct {
	Frets []int            // per string, lowest string first; Muted when unplayed
	Notes []FretAssignment // sounding strings, lowest string first

	Category Category

	// OctaveSeparated is set when some string uses the fret one octave above
	// its lowest match.
	OctaveSeparated bool

	// AboveTwelfth is set when every sounding string is fretted above fret 12;
	// the same shape then also exists twelve frets lower.
	AboveTwelfth bool
}

// Span returns the distance between the lowest and highest stopped (non-open)
// frets; 0 when fewer than two strings are stopped.
func (s GtrShape) Span() int {
	lo, hi, ok := frettedBounds(s.Frets)
	if !ok {
		return 0
	}

	return hi - lo
}

// FullSpan is Span with open strings counted as fret 0.
func (s GtrShape) FullSpan() int {
	lo, hi, ok := frettedBounds(s.Frets)
	if !ok {
		return 0
	}
	if s.HasOpenStrings() {
		lo = 0
	}

	return hi - lo
}

// HasOpenStrings reports whether any string rings open.
func (s GtrShape) HasOpenStrings() bool {
	for _, f := range s.Frets {
		if f == 0 {
			return true
		}
	}

	return false
}

// Voicing returns the sounding pitches as a voicing.
func (s GtrShape) Voicing() voicing.Voicing {
	ps := make([]pitch.Pitch, len(s.Notes))
	for i, n := range s.Notes {
		ps[i] = n.Pitch
	}

	return voicing.New(ps...)
}

// lowest returns the lowest sounding pitch; s has at least one note.
func (s GtrShape) lowest() pitch.Pitch {
	lo := s.Notes[0].Pitch
	for _, n := range s.Notes[1:] {
		if n.Pitch.Less(lo) {
			lo = n.Pitch
		}
	}

	return lo
}

// String renders the frets lowest string first, e.g. "x-3-2-0-1-0".
func (s GtrShape) String() string {
	parts := make([]string, len(s.Frets))
	for i, f := range s.Frets {
		if f == Muted {
			parts[i] = "x"
			continue
		}
		parts[i] = strconv.Itoa(f)
	}

	return strings.Join(parts, "-")
}

// frettedBounds returns the lowest and highest fret above 0.
func frettedBounds(frets []int) (lo, hi int, ok bool) {
	for _, f := range frets {
		if f <= 0 {
			continue // muted or open
		}
		if !ok || f < lo {
			lo = f
		}
		if !ok || f > hi {
			hi = f
		}
		ok = true
	}

	return lo, hi, ok
}
