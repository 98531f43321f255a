// SPDX-License-Identifier: MIT

package instrument

import (
	"github.com/katalvlaran/harmonics/fretboard"
	"github.com/katalvlaran/harmonics/pitch"
)

// mustTuning is for the literals below, which are valid by construction.
func mustTuning(maxFret int, open ...pitch.Pitch) fretboard.Tuning {
	t, err := fretboard.NewTuning(open, maxFret)
	if err != nil {
		panic(err)
	}

	return t
}

// StandardGuitar is E2 A2 D3 G3 B3 E4 with 22 frets.
func StandardGuitar() fretboard.Tuning {
	return mustTuning(22,
		pitch.At(pitch.E, 2), pitch.At(pitch.A, 2), pitch.At(pitch.D, 3),
		pitch.At(pitch.G, 3), pitch.At(pitch.B, 3), pitch.At(pitch.E, 4),
	)
}

// DropD lowers the sixth string of StandardGuitar to D2.
func DropD() fretboard.Tuning {
	return mustTuning(22,
		pitch.At(pitch.D, 2), pitch.At(pitch.A, 2), pitch.At(pitch.D, 3),
		pitch.At(pitch.G, 3), pitch.At(pitch.B, 3), pitch.At(pitch.E, 4),
	)
}

// StandardBass is E1 A1 D2 G2 with 20 frets.
func StandardBass() fretboard.Tuning {
	return mustTuning(20,
		pitch.At(pitch.E, 1), pitch.At(pitch.A, 1), pitch.At(pitch.D, 2), pitch.At(pitch.G, 2),
	)
}

// StandardUkulele is re-entrant G4 C4 E4 A4 with 15 frets.
func StandardUkulele() fretboard.Tuning {
	return mustTuning(15,
		pitch.At(pitch.G, 4), pitch.At(pitch.C, 4), pitch.At(pitch.E, 4), pitch.At(pitch.A, 4),
	)
}
