// SPDX-License-Identifier: MIT

package pitch

import "fmt"

// Semitones per octave. Every modular operation in this module reduces by it.
const Octave = 12

// PitchClass is an octave-equivalence class of pitch, stored in [0,11]
// with C=0, C#=1, ..., B=11.
type PitchClass int

// The twelve pitch classes, spelled with sharps.
const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// names is indexed by PitchClass. Spelling is diagnostic only.
var names = [Octave]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// New validates n and returns it as a PitchClass.
// Complexity: O(1).
func New(n int) (PitchClass, error) {
	if n < 0 || n >= Octave {
		return 0, fmt.Errorf("New(%d): %w", n, ErrInvalidPitchClass)
	}

	return PitchClass(n), nil
}

// Mod reduces any integer into [0,11] (Euclidean remainder).
// Complexity: O(1).
func Mod(n int) PitchClass {
	r := n % Octave
	if r < 0 {
		r += Octave
	}

	return PitchClass(r)
}

// Valid reports whether pc lies in [0,11].
func (pc PitchClass) Valid() bool { return pc >= 0 && pc < Octave }

// Int returns pc as a plain integer.
func (pc PitchClass) Int() int { return int(pc) }

// String renders pc with sharps ("C", "C#", ...). Out-of-range values render as "pc(n)".
func (pc PitchClass) String() string {
	if !pc.Valid() {
		return fmt.Sprintf("pc(%d)", int(pc))
	}

	return names[pc]
}

// Transpose returns pc moved by interval semitones, modulo 12 (Tₖ).
// Complexity: O(1).
func Transpose(pc PitchClass, interval int) PitchClass {
	return Mod(int(pc) + interval)
}

// Invert reflects pc around axis: (2·axis − pc) mod 12.
// Complexity: O(1).
func Invert(pc PitchClass, axis PitchClass) PitchClass {
	return Mod(2*int(axis) - int(pc))
}

// InvertIndex applies the TₙI operator: (n − pc) mod 12.
// The reflection axis sits at n/2, so odd n reflects around a half-step.
// Complexity: O(1).
func InvertIndex(pc PitchClass, n int) PitchClass {
	return Mod(n - int(pc))
}

// Up returns the ascending distance from a to b in [0,11].
func Up(a, b PitchClass) int {
	return int(Mod(int(b) - int(a)))
}

// ShortestDelta returns the signed displacement of least magnitude that moves
// a onto b modulo the octave: ((b−a+6) mod 12) − 6, a value in [−6,5].
// A tritone resolves to −6.
// Complexity: O(1).
func ShortestDelta(a, b PitchClass) int {
	return int(Mod(int(b)-int(a)+6)) - 6
}

// IntervalClass returns the unordered interval class between a and b, in [0,6].
func IntervalClass(a, b PitchClass) int {
	d := Up(a, b)
	if d > Octave/2 {
		return Octave - d
	}

	return d
}
