// SPDX-License-Identifier: MIT

package fretboard

import (
	"fmt"
	"iter"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/harmonics/combin"
	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
)

// octaveAltLimit bounds the frets that also get a +12 alternative.
const octaveAltLimit = 6

// FindGtrShapes returns every playable shape of chord on tuning, grouped by
// the register-normalized voicing each realises and then by category.
//
// The search picks Voices strings (in physical order), assigns chord tones to
// them (every ordering, or every covering sequence when tones are doubled),
// places each tone on its lowest matching fret plus, for frets below 6, the
// fret an octave higher, and keeps each fret combination whose stopped frets
// fit within MaxSpan. Each string subset is one task; tasks run on an
// errgroup bounded by Workers and merge in a fixed order, so the result does
// not depend on scheduling.
//
// A chord bass must be the lowest sounding pitch of every shape, whatever
// string it falls on.
//
// A chord with more voices than the tuning has strings yields an empty result.
//
// Errors:
//   - pcset.ErrEmptySet for the zero Chord.
//   - ErrInvalidInstrument for the zero Tuning.
//   - ErrMissingSpan when WithMaxSpan was not given.
//   - ErrInvalidArity when Voices is below the number of chord tones.
//
// Complexity: O(C(m,v) · S(v,n) · 2ᵛ) shapes, S the number of tone sequences.
func FindGtrShapes(chord pcset.Chord, tuning Tuning, opts ...Option) (Result, error) {
	o := newOptions(opts)

	// --- 1. Validate ---
	n := chord.Len()
	if n == 0 {
		return Result{}, pcset.ErrEmptySet
	}
	if tuning.Strings() == 0 {
		return Result{}, fmt.Errorf("FindGtrShapes: %w", ErrInvalidInstrument)
	}
	o, err := o.resolve(n)
	if err != nil {
		return Result{}, err
	}
	m := tuning.Strings()
	if o.Voices > m {
		o.Logger.Debug("fretboard search skipped", "strings", m, "voices", o.Voices)
		return Result{}, nil
	}

	// --- 2. One task per string subset ---
	var subsets [][]int
	for idx := range combin.Combinations(m, o.Voices) {
		subsets = append(subsets, slices.Clone(idx))
	}
	tones := chord.Set().Elements()
	bass, hasBass := chord.Bass()
	keep := func(s GtrShape) bool {
		return !hasBass || s.lowest().Class == bass
	}
	found := make([][]GtrShape, len(subsets))

	var g errgroup.Group
	g.SetLimit(o.Workers)
	for i, strs := range subsets {
		g.Go(func() error {
			found[i] = searchSubset(tuning, strs, tones, keep, o)
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	// --- 3. Merge in task order ---
	var all []GtrShape
	for _, shapes := range found {
		all = append(all, shapes...)
	}
	res := groupShapes(all)
	o.Logger.Debug("fretboard search",
		"chord", chord.String(),
		"tuning", tuning.String(),
		"voices", o.Voices,
		"tasks", len(subsets),
		"shapes", res.Len(),
		"groups", len(res.groups),
	)

	return res, nil
}

// toneSequences yields, for each string position, the index of the tone it sounds.
func toneSequences(tones, voices int) iter.Seq[[]int] {
	if voices == tones {
		return combin.Permutations(tones)
	}

	return combin.Surjections(tones, voices)
}

// searchSubset enumerates every accepted shape on one string subset.
// keep rejects shapes after the span filter, before octave deduplication.
func searchSubset(tuning Tuning, strs []int, tones []pitch.PitchClass, keep func(GtrShape) bool, o Options) []GtrShape {
	var out []GtrShape
	cands := make([][]int, len(strs))
	radices := make([]int, len(strs))

branches:
	for seq := range toneSequences(len(tones), len(strs)) {
		// --- lowest fret and octave alternative per string ---
		for i, s := range strs {
			f, ok := tuning.LowestFret(s, tones[seq[i]])
			if !ok {
				continue branches
			}
			cands[i] = append(cands[i][:0], f)
			if f < octaveAltLimit && f+pitch.Octave <= tuning.MaxFret() {
				cands[i] = append(cands[i], f+pitch.Octave)
			}
			radices[i] = len(cands[i])
		}

		// --- every octave choice; ascending, so the first hit is the lowest ---
		for pick := range combin.Product(radices...) {
			frets := make([]int, len(strs))
			separated := false
			for i, j := range pick {
				frets[i] = cands[i][j]
				separated = separated || j > 0
			}
			shape, ok := buildShape(tuning, strs, frets, o.MaxSpan)
			if !ok || !keep(shape) {
				continue
			}
			shape.OctaveSeparated = separated
			out = append(out, shape)
			if !o.SeparateOctaves {
				break
			}
		}
	}

	return out
}

// buildShape lays frets onto the chosen strings, applies the span limit and
// classifies the result.
func buildShape(tuning Tuning, strs, frets []int, maxSpan int) (GtrShape, bool) {
	s := GtrShape{
		Frets: make([]int, tuning.Strings()),
		Notes: make([]FretAssignment, len(strs)),
	}
	for i := range s.Frets {
		s.Frets[i] = Muted
	}
	above := true
	for i, str := range strs {
		s.Frets[str] = frets[i]
		s.Notes[i] = FretAssignment{String: str, Fret: frets[i], Pitch: tuning.Sounded(str, frets[i])}
		above = above && frets[i] > 12
	}
	if s.Span() > maxSpan {
		return GtrShape{}, false
	}
	s.AboveTwelfth = above
	s.Category = classify(s, maxSpan)

	return s, true
}

// classify applies, in order: open strings that only fit the hand because
// they ring open, then adjacent strings more than an octave apart.
func classify(s GtrShape, maxSpan int) Category {
	if s.HasOpenStrings() && s.FullSpan() > maxSpan {
		return NonTransposable
	}
	for i := 1; i < len(s.Notes); i++ {
		d := pitch.SemitoneDistance(s.Notes[i-1].Pitch, s.Notes[i].Pitch)
		if d > pitch.Octave || d < -pitch.Octave {
			return WideInterval
		}
	}

	return Regular
}
