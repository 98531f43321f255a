// SPDX-License-Identifier: MIT

package pitch

import "errors"

// ErrInvalidPitchClass is returned when an integer outside [0,11] is used to
// construct a PitchClass. Use Mod for wrapping arithmetic instead.
var ErrInvalidPitchClass = errors.New("pitch: pitch class out of range [0,11]")
