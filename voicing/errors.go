// SPDX-License-Identifier: MIT

package voicing

import "errors"

var (
	// ErrInvalidRange indicates a pitch range whose low bound lies above its high bound.
	ErrInvalidRange = errors.New("voicing: invalid pitch range")

	// ErrInvalidMaxVoices indicates a voice cap that cannot hold every chord tone.
	ErrInvalidMaxVoices = errors.New("voicing: invalid max voices")
)
