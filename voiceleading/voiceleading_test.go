package voiceleading_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonics/combin"
	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
	"github.com/katalvlaran/harmonics/voiceleading"
	"github.com/katalvlaran/harmonics/voicing"
)

var (
	cMajor = pcset.MustNew(pitch.C, pitch.E, pitch.G)
	aMinor = pcset.MustNew(pitch.A, pitch.C, pitch.E)
	fMajor = pcset.MustNew(pitch.F, pitch.A, pitch.C)
)

// TestMinimalVoiceLeading_CToAm: only G moves, up a whole step.
func TestMinimalVoiceLeading_CToAm(t *testing.T) {
	p, err := voiceleading.MinimalVoiceLeading(cMajor, aMinor)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Total)
	assert.Equal(t, 2, p.Max)
	assert.Equal(t, []int{0, 0, 2}, p.Deltas())
	assert.Equal(t, []pitch.PitchClass{pitch.C, pitch.E, pitch.A}, p.Targets())
	assert.Equal(t, voiceleading.Move{From: pitch.G, To: pitch.A, Delta: 2}, p.Moves[2])
	assert.Equal(t, "C→C 0, E→E 0, G→A +2", p.String())
}

func TestMinimalVoiceLeading_Known(t *testing.T) {
	p, err := voiceleading.MinimalVoiceLeading(cMajor, fMajor)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, p.Deltas())
	assert.Equal(t, 3, p.Total)

	// Identity costs nothing.
	p, err = voiceleading.MinimalVoiceLeading(cMajor, cMajor)
	require.NoError(t, err)
	assert.Zero(t, p.Total)

	// The tritone resolves downward.
	p, err = voiceleading.MinimalVoiceLeading(pcset.MustNew(pitch.C), pcset.MustNew(pitch.FSharp))
	require.NoError(t, err)
	assert.Equal(t, []int{-6}, p.Deltas())
	assert.Equal(t, 6, p.Total)

	// All four moves cost 3: the lexicographically first targets win.
	p, err = voiceleading.MinimalVoiceLeading(pcset.MustNew(pitch.C, pitch.FSharp), pcset.MustNew(pitch.DSharp, pitch.A))
	require.NoError(t, err)
	assert.Equal(t, []pitch.PitchClass{pitch.DSharp, pitch.A}, p.Targets())
	assert.Equal(t, []int{3, 3}, p.Deltas())

	d, err := voiceleading.Distance(cMajor, aMinor)
	require.NoError(t, err)
	assert.Equal(t, 2, d)
}

func TestMinimalVoiceLeading_Errors(t *testing.T) {
	_, err := voiceleading.MinimalVoiceLeading(cMajor, pcset.MustNew(pitch.C, pitch.E))
	assert.ErrorIs(t, err, voiceleading.ErrArityMismatch)
	_, err = voiceleading.MinimalVoiceLeading(pcset.Set{}, cMajor)
	assert.ErrorIs(t, err, pcset.ErrEmptySet)
	_, err = voiceleading.Distance(cMajor, pcset.Aggregate)
	assert.ErrorIs(t, err, voiceleading.ErrArityMismatch)
}

// TestMinimalVoiceLeading_BruteForce compares against every bijection: same
// total, same largest move, lexicographically first targets among the ties.
func TestMinimalVoiceLeading_BruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for trial := 0; trial < 300; trial++ {
		n := 1 + rng.IntN(6)
		a := randomSet(rng, n)
		b := randomSet(rng, n)

		got, err := voiceleading.MinimalVoiceLeading(a, b)
		require.NoError(t, err)

		from, to := a.Elements(), b.Elements()
		var (
			bestTotal, bestMax = -1, -1
			bestTargets        []pitch.PitchClass
		)
		for perm := range combin.Permutations(n) {
			total, mx := 0, 0
			targets := make([]pitch.PitchClass, n)
			for i, j := range perm {
				c := pitch.ShortestDelta(from[i], to[j])
				if c < 0 {
					c = -c
				}
				total += c
				mx = max(mx, c)
				targets[i] = to[j]
			}
			better := bestTotal < 0 ||
				total < bestTotal ||
				(total == bestTotal && mx < bestMax) ||
				(total == bestTotal && mx == bestMax && slices.Compare(targets, bestTargets) < 0)
			if better {
				bestTotal, bestMax, bestTargets = total, mx, targets
			}
		}

		require.Equal(t, bestTotal, got.Total, "%s → %s", a, b)
		require.Equal(t, bestMax, got.Max, "%s → %s", a, b)
		require.Equal(t, bestTargets, got.Targets(), "%s → %s", a, b)
	}
}

func randomSet(rng *rand.Rand, n int) pcset.Set {
	perm := rng.Perm(12)[:n]
	pcs := make([]pitch.PitchClass, n)
	for i, v := range perm {
		pcs[i] = pitch.PitchClass(v)
	}

	return pcset.MustNew(pcs...)
}

func TestVoicingLeading(t *testing.T) {
	c4 := voicing.New(pitch.At(pitch.C, 4), pitch.At(pitch.E, 4), pitch.At(pitch.G, 4))

	p, err := voiceleading.VoicingLeading(c4, voicing.New(pitch.At(pitch.C, 4), pitch.At(pitch.F, 4), pitch.At(pitch.A, 4)))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, p.Deltas())
	assert.Equal(t, 3, p.Total)
	assert.Equal(t, "C4→C4 0, E4→F4 +1, G4→A4 +2", p.String())

	// Two bijections total 10; moving every voice down keeps the largest move at 4.
	p, err = voiceleading.VoicingLeading(c4, voicing.New(pitch.At(pitch.A, 3), pitch.At(pitch.C, 4), pitch.At(pitch.E, 4)))
	require.NoError(t, err)
	assert.Equal(t, []int{-3, -4, -3}, p.Deltas())
	assert.Equal(t, 10, p.Total)
	assert.Equal(t, 4, p.Max)

	_, err = voiceleading.VoicingLeading(c4, voicing.New(pitch.At(pitch.C, 4)))
	assert.ErrorIs(t, err, voiceleading.ErrArityMismatch)
	_, err = voiceleading.VoicingLeading(voicing.New(), voicing.New())
	assert.ErrorIs(t, err, pcset.ErrEmptySet)
}

func TestApplyPaths(t *testing.T) {
	c4 := voicing.New(pitch.At(pitch.C, 4), pitch.At(pitch.E, 4), pitch.At(pitch.G, 4))

	got, err := voiceleading.ApplyPaths(c4, []int{0, 0, 2})
	require.NoError(t, err)
	assert.Equal(t, []pitch.Pitch{pitch.At(pitch.C, 4), pitch.At(pitch.E, 4), pitch.At(pitch.A, 4)}, got)

	// Voice order survives a crossing.
	got, err = voiceleading.ApplyPaths(c4, []int{0, 5, 0})
	require.NoError(t, err)
	assert.Equal(t, []pitch.Pitch{pitch.At(pitch.C, 4), pitch.At(pitch.A, 4), pitch.At(pitch.G, 4)}, got)

	_, err = voiceleading.ApplyPaths(c4, []int{1})
	assert.ErrorIs(t, err, voiceleading.ErrArityMismatch)

	// The solved path applied to its source lands on the target.
	target := voicing.New(pitch.At(pitch.A, 3), pitch.At(pitch.C, 4), pitch.At(pitch.E, 4))
	p, err := voiceleading.VoicingLeading(c4, target)
	require.NoError(t, err)
	moved, err := voiceleading.ApplyPaths(c4, p.Deltas())
	require.NoError(t, err)
	assert.True(t, voicing.New(moved...).Equal(target))
}
