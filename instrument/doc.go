// SPDX-License-Identifier: MIT

// Package instrument supplies ready-made tunings for package fretboard and
// reads tuning catalogs from YAML.
//
// The core packages never parse note names; this package does, for catalog
// files only, accepting scientific pitch notation ("E2", "C#4", "Bb3").
//
// A catalog file looks like:
//
//	tunings:
//	  - name: guitar
//	    max_fret: 22
//	    strings: [E2, A2, D3, G3, B3, E4]
//
// Errors:
//
//   - ErrInvalidPitchName: a string entry is not a pitch name.
//   - ErrInvalidCatalog: malformed YAML, a failed field rule, or a repeated name.
//   - ErrUnknownTuning: Catalog.Tuning was asked for a name it lacks.
package instrument
