// SPDX-License-Identifier: MIT

package voicing

import (
	"iter"
	"slices"

	"github.com/katalvlaran/harmonics/combin"
	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
)

// Enumerate returns every voicing of chord inside opts.Range.
//
// Without doublings each chord tone sounds exactly once. With doublings every
// selection of distinct candidate pitches of size |chord|..MaxVoices that
// covers all tones is produced. A chord bass must be the lowest voice.
// Arguments are validated eagerly; the walk itself starts on the first range.
//
// Errors:
//   - pcset.ErrEmptySet for the zero Chord.
//   - ErrInvalidRange, ErrInvalidMaxVoices.
func Enumerate(chord pcset.Chord, opts Options) (iter.Seq[Voicing], error) {
	n := chord.Len()
	if n == 0 {
		return nil, pcset.ErrEmptySet
	}
	maxVoices, err := validateOptions(opts, n)
	if err != nil {
		return nil, err
	}

	tones := chord.Set().Elements()
	cands := make([][]pitch.Pitch, n)
	for i, pc := range tones {
		cands[i] = opts.Range.candidates(pc)
	}
	bass, hasBass := chord.Bass()
	bassOK := func(v Voicing) bool {
		return !hasBass || v.pitches[0].Class == bass
	}

	if !opts.AllowDoublings {
		return singles(cands, bassOK), nil
	}

	return doubled(chord.Set(), cands, maxVoices, bassOK), nil
}

// singles walks the product of per-tone candidates.
func singles(cands [][]pitch.Pitch, keep func(Voicing) bool) iter.Seq[Voicing] {
	radices := make([]int, len(cands))
	for i, c := range cands {
		radices[i] = len(c)
	}

	return func(yield func(Voicing) bool) {
		for idx := range combin.Product(radices...) {
			ps := make([]pitch.Pitch, len(idx))
			for i, j := range idx {
				ps[i] = cands[i][j]
			}
			v := New(ps...)
			if !keep(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// doubled walks covering selections from the pooled candidates, smallest first.
func doubled(tones pcset.Set, cands [][]pitch.Pitch, maxVoices int, keep func(Voicing) bool) iter.Seq[Voicing] {
	var pool []pitch.Pitch
	for _, c := range cands {
		pool = append(pool, c...)
	}
	slices.SortFunc(pool, pitch.Compare)
	maxVoices = min(maxVoices, len(pool))

	return func(yield func(Voicing) bool) {
		for size := tones.Len(); size <= maxVoices; size++ {
			for idx := range combin.Combinations(len(pool), size) {
				ps := make([]pitch.Pitch, size)
				var m uint16
				for i, j := range idx {
					ps[i] = pool[j]
					m |= 1 << uint(pool[j].Class)
				}
				if m != tones.Mask() {
					continue // some tone missing
				}
				v := Voicing{pitches: ps} // pool is ascending
				if !keep(v) {
					continue
				}
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Voicing]) []Voicing {
	return slices.Collect(seq)
}

// Count returns the number of voicings Enumerate would produce.
func Count(chord pcset.Chord, opts Options) (int, error) {
	seq, err := Enumerate(chord, opts)
	if err != nil {
		return 0, err
	}
	total := 0
	for range seq {
		total++
	}

	return total, nil
}
