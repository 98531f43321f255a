// SPDX-License-Identifier: MIT

package instrument

import "errors"

var (
	// ErrInvalidPitchName indicates text that is not letter, accidental, octave.
	ErrInvalidPitchName = errors.New("instrument: invalid pitch name")

	// ErrInvalidCatalog indicates a catalog that failed to decode or validate.
	ErrInvalidCatalog = errors.New("instrument: invalid catalog")

	// ErrUnknownTuning indicates a lookup of a name the catalog does not hold.
	ErrUnknownTuning = errors.New("instrument: unknown tuning")
)
