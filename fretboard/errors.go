// SPDX-License-Identifier: MIT

package fretboard

import "errors"

var (
	// ErrInvalidInstrument indicates a tuning with no strings or a negative fret ceiling.
	ErrInvalidInstrument = errors.New("fretboard: invalid instrument")

	// ErrMissingSpan indicates a search started without a maximum hand span.
	ErrMissingSpan = errors.New("fretboard: max span not set")

	// ErrInvalidArity indicates fewer voices than chord tones.
	ErrInvalidArity = errors.New("fretboard: fewer voices than chord tones")
)
