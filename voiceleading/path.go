// SPDX-License-Identifier: MIT

package voiceleading

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/harmonics/pitch"
)

// Move is one voice of a pitch-class voice leading.
type Move struct {
	From  pitch.PitchClass
	To    pitch.PitchClass
	Delta int // signed semitones in [−6,5]
}

// Path is a complete pitch-class voice leading, moves ordered by ascending From.
type Path struct {
	Moves []Move
	Total int // Σ|Delta|
	Max   int // max |Delta|
}

// Deltas returns the signed displacement of each move.
func (p Path) Deltas() []int {
	out := make([]int, len(p.Moves))
	for i, m := range p.Moves {
		out[i] = m.Delta
	}

	return out
}

// Targets returns the destination of each move.
func (p Path) Targets() []pitch.PitchClass {
	out := make([]pitch.PitchClass, len(p.Moves))
	for i, m := range p.Moves {
		out[i] = m.To
	}

	return out
}

// String renders "C→C 0, E→E 0, G→A +2".
func (p Path) String() string {
	parts := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		parts[i] = fmt.Sprintf("%s→%s %s", m.From, m.To, signed(m.Delta))
	}

	return strings.Join(parts, ", ")
}

// VoiceMove is one voice of a voice leading between voicings.
type VoiceMove struct {
	From  pitch.Pitch
	To    pitch.Pitch
	Delta int // signed semitones
}

// VoicePath is a voice leading between voicings, moves ordered bottom-up by From.
type VoicePath struct {
	Moves []VoiceMove
	Total int
	Max   int
}

// Deltas returns the signed displacement of each move.
func (p VoicePath) Deltas() []int {
	out := make([]int, len(p.Moves))
	for i, m := range p.Moves {
		out[i] = m.Delta
	}

	return out
}

// String renders "C4→C4 0, E4→F4 +1".
func (p VoicePath) String() string {
	parts := make([]string, len(p.Moves))
	for i, m := range p.Moves {
		parts[i] = fmt.Sprintf("%s→%s %s", m.From, m.To, signed(m.Delta))
	}

	return strings.Join(parts, ", ")
}

func signed(d int) string {
	if d == 0 {
		return "0"
	}

	return fmt.Sprintf("%+d", d)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
