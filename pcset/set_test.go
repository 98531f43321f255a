package pcset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
)

// Shared fixtures.
var (
	major     = pcset.MustNew(pitch.C, pitch.E, pitch.G)
	minor     = pcset.MustNew(pitch.A, pitch.C, pitch.E)
	augmented = pcset.MustNew(pitch.C, pitch.E, pitch.GSharp)
	diatonic  = pcset.MustNew(pitch.C, pitch.D, pitch.E, pitch.F, pitch.G, pitch.A, pitch.B)
)

func mustInts(t *testing.T, ns ...int) pcset.Set {
	t.Helper()
	s, err := pcset.FromInts(ns...)
	require.NoError(t, err)

	return s
}

// TestNew_Errors covers every construction failure.
func TestNew_Errors(t *testing.T) {
	_, err := pcset.New()
	assert.ErrorIs(t, err, pcset.ErrEmptySet)

	_, err = pcset.New(pitch.C, pitch.E, pitch.C)
	assert.ErrorIs(t, err, pcset.ErrDuplicateEntry)

	_, err = pcset.New(pitch.C, pitch.PitchClass(12))
	assert.ErrorIs(t, err, pitch.ErrInvalidPitchClass)

	_, err = pcset.FromInts(0, -1)
	assert.ErrorIs(t, err, pitch.ErrInvalidPitchClass)
}

func TestSet_Basics(t *testing.T) {
	assert.Equal(t, 3, major.Len())
	assert.True(t, major.Contains(pitch.E))
	assert.False(t, major.Contains(pitch.F))
	assert.False(t, major.Contains(pitch.PitchClass(-3)))
	assert.Equal(t, []pitch.PitchClass{pitch.C, pitch.E, pitch.G}, major.Elements())
	assert.Equal(t, "{0,4,7}", major.String())
	assert.Equal(t, uint16(0b000010010001), major.Mask())

	// Insertion order does not matter.
	assert.Equal(t, major, pcset.MustNew(pitch.G, pitch.C, pitch.E))
	assert.Equal(t, 12, pcset.Aggregate.Len())
	assert.True(t, pcset.Set{}.IsEmpty())
}

// TestSet_TransposeInvert checks the mask rotation and the TₙI mapping.
func TestSet_TransposeInvert(t *testing.T) {
	assert.Equal(t, mustInts(t, 2, 6, 9), major.Transpose(2))
	assert.Equal(t, mustInts(t, 11, 3, 6), major.Transpose(-1))
	assert.Equal(t, major, major.Transpose(12))
	assert.Equal(t, major, major.Transpose(0))

	assert.Equal(t, mustInts(t, 0, 5, 8), major.Invert(0))
	// T₇I maps C major onto C minor {7,3,0}.
	assert.Equal(t, mustInts(t, 0, 3, 7), major.Invert(7))

	for m := uint16(1); m < 1<<12; m++ {
		s := pcset.FromMask(m)
		for n := 0; n < 12; n++ {
			require.Equal(t, s, s.Invert(n).Invert(n), "TnI is an involution")
			require.Equal(t, s.Len(), s.Transpose(n).Len())
		}
	}
}

func TestSet_Algebra(t *testing.T) {
	cmaj7 := major.Union(pcset.MustNew(pitch.B))
	assert.Equal(t, mustInts(t, 0, 4, 7, 11), cmaj7)
	assert.Equal(t, mustInts(t, 0, 4), major.Intersect(minor))
	assert.Equal(t, mustInts(t, 7), major.Difference(minor))
	assert.Equal(t, 9, major.Complement().Len())
	assert.True(t, major.IsSubsetOf(diatonic))
	assert.False(t, augmented.IsSubsetOf(diatonic))
	assert.Equal(t, mustInts(t, 1, 3, 6, 8, 10), diatonic.Complement())
}
