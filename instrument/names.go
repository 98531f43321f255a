// SPDX-License-Identifier: MIT

package instrument

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/harmonics/pitch"
)

// letters maps natural note letters to pitch classes.
var letters = map[byte]pitch.PitchClass{
	'C': pitch.C, 'D': pitch.D, 'E': pitch.E, 'F': pitch.F,
	'G': pitch.G, 'A': pitch.A, 'B': pitch.B,
}

// ParsePitch reads scientific pitch notation: a letter A–G, any number of '#'
// or 'b' accidentals, then a signed octave. "Cb4" is B3; "B#3" is C4.
//
// Errors:
//   - ErrInvalidPitchName for anything else.
func ParsePitch(s string) (pitch.Pitch, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return pitch.Pitch{}, fmt.Errorf("ParsePitch(%q): %w", s, ErrInvalidPitchName)
	}
	pc, ok := letters[strings.ToUpper(t[:1])[0]]
	if !ok {
		return pitch.Pitch{}, fmt.Errorf("ParsePitch(%q): letter: %w", s, ErrInvalidPitchName)
	}
	shift := 0
	i := 1
	for ; i < len(t); i++ {
		switch t[i] {
		case '#':
			shift++
			continue
		case 'b':
			shift--
			continue
		}
		break
	}
	oct, err := strconv.Atoi(t[i:])
	if err != nil {
		return pitch.Pitch{}, fmt.Errorf("ParsePitch(%q): octave: %w", s, ErrInvalidPitchName)
	}

	return pitch.At(pc, oct).Transpose(shift), nil
}
