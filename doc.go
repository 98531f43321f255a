// SPDX-License-Identifier: MIT

// Package harmonics is a music-theory computation engine: pitch-class sets,
// chords and voicings as exact values, plus the exhaustive searches that run
// over them.
//
// The work happens in subpackages:
//
//	pitch/        pitch classes, absolute pitches, transposition and inversion
//	pcset/        pitch-class sets: normal and prime form, interval vectors,
//	              symmetries, sub/supersets, equivalence modes, chords
//	combin/       lazy combinations, permutations, products, surjections
//	voicing/      ordered pitch voicings and their enumeration within a range
//	fretboard/    chord shape search over a tuned fretted instrument
//	assign/       square cost matrices with Hungarian and exact solvers
//	voiceleading/ minimal voice leading between sets and between voicings
//	instrument/   standard tunings and YAML tuning catalogs
//
// Quick example:
//
//	c := pcset.MustNew(pitch.C, pitch.E, pitch.G)
//	am := pcset.MustNew(pitch.A, pitch.C, pitch.E)
//	p, _ := voiceleading.MinimalVoiceLeading(c, am)
//	fmt.Println(p) // C→C 0, E→E 0, G→A +2
//
// Every value is immutable and every result is a fresh collection; the only
// concurrency is inside fretboard.FindGtrShapes.
//
// See examples/ for runnable programs.
package harmonics
