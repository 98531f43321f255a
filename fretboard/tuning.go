// SPDX-License-Identifier: MIT

package fretboard

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/harmonics/pitch"
)

// Tuning is a fretted instrument: open-string pitches in physical string order
// (index 0 is the string printed first, normally the lowest) and the highest
// playable fret.
type Tuning struct {
	open    []pitch.Pitch
	maxFret int
}

// NewTuning validates and copies open.
//
// Errors:
//   - ErrInvalidInstrument when open is empty or maxFret < 0.
func NewTuning(open []pitch.Pitch, maxFret int) (Tuning, error) {
	if len(open) == 0 {
		return Tuning{}, fmt.Errorf("NewTuning: no strings: %w", ErrInvalidInstrument)
	}
	if maxFret < 0 {
		return Tuning{}, fmt.Errorf("NewTuning: max fret %d: %w", maxFret, ErrInvalidInstrument)
	}

	return Tuning{open: slices.Clone(open), maxFret: maxFret}, nil
}

// Strings returns the number of strings.
func (t Tuning) Strings() int { return len(t.open) }

// MaxFret returns the highest playable fret.
func (t Tuning) MaxFret() int { return t.maxFret }

// Open returns the open pitch of string s.
func (t Tuning) Open(s int) pitch.Pitch { return t.open[s] }

// Sounded returns the pitch of string s stopped at fret.
func (t Tuning) Sounded(s, fret int) pitch.Pitch { return t.open[s].Transpose(fret) }

// LowestFret returns the lowest fret of string s that sounds pc, and false
// when that fret lies beyond MaxFret.
func (t Tuning) LowestFret(s int, pc pitch.PitchClass) (int, bool) {
	f := pitch.Up(t.open[s].Class, pc)
	if f > t.maxFret {
		return 0, false
	}

	return f, true
}

// String renders "E2 A2 D3 G3 B3 E4 /22".
func (t Tuning) String() string {
	parts := make([]string, len(t.open))
	for i, p := range t.open {
		parts[i] = p.String()
	}

	return fmt.Sprintf("%s /%d", strings.Join(parts, " "), t.maxFret)
}

// FretAssignment is one sounding string of a shape.
type FretAssignment struct {
	String int
	Fret   int
	Pitch  pitch.Pitch
}
