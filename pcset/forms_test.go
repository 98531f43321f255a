package pcset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonics/pcset"
	"github.com/katalvlaran/harmonics/pitch"
)

// TestNormalForm_Triads pins the canonical rotations of the major and minor triads.
func TestNormalForm_Triads(t *testing.T) {
	assert.Equal(t, []pitch.PitchClass{pitch.E, pitch.G, pitch.C}, pcset.NormalOrder(major))
	assert.Equal(t, mustInts(t, 0, 3, 8), pcset.NormalForm(major))

	assert.Equal(t, []pitch.PitchClass{pitch.A, pitch.C, pitch.E}, pcset.NormalOrder(minor))
	assert.Equal(t, mustInts(t, 0, 3, 7), pcset.NormalForm(minor))

	assert.Nil(t, pcset.NormalOrder(pcset.Set{}))
	assert.True(t, pcset.NormalForm(pcset.Set{}).IsEmpty())
}

// TestNormalForm_SymmetricTie resolves equal rotations by the lowest start.
func TestNormalForm_SymmetricTie(t *testing.T) {
	// {1,5,9}: every rotation has gaps [4 4]; C# wins.
	aug := mustInts(t, 1, 5, 9)
	assert.Equal(t, []pitch.PitchClass{pitch.CSharp, pitch.F, pitch.A}, pcset.NormalOrder(aug))
	assert.Equal(t, augmented, pcset.NormalForm(aug))
}

func TestPrimeForm(t *testing.T) {
	assert.Equal(t, mustInts(t, 0, 3, 7), pcset.PrimeForm(major))
	assert.Equal(t, mustInts(t, 0, 3, 7), pcset.PrimeForm(minor))
	assert.Equal(t, mustInts(t, 0, 1), pcset.PrimeForm(mustInts(t, 4, 5)))
	assert.Equal(t, pcset.Aggregate, pcset.PrimeForm(pcset.Aggregate))
}

// TestForms_Invariants sweeps every non-empty set: normal form is idempotent
// and Tₖ-invariant, prime form is additionally TₙI-invariant.
func TestForms_Invariants(t *testing.T) {
	for m := uint16(1); m < 1<<12; m++ {
		s := pcset.FromMask(m)
		nf := pcset.NormalForm(s)
		pf := pcset.PrimeForm(s)
		require.Equal(t, nf, pcset.NormalForm(nf), "idempotent on %s", s)
		require.True(t, nf.Contains(pitch.C), "normal form starts at 0 for %s", s)
		require.Equal(t, pf, pcset.PrimeForm(pf), "prime idempotent on %s", s)
		for k := 0; k < 12; k++ {
			require.Equal(t, nf, pcset.NormalForm(s.Transpose(k)), "Tn invariance on %s, k=%d", s, k)
			require.Equal(t, pf, pcset.PrimeForm(s.Invert(k)), "TnI invariance on %s, n=%d", s, k)
		}
	}
}

// TestForms_ClassCounts counts distinct representatives over all non-empty
// sets: 351 transposition classes and 223 set classes.
func TestForms_ClassCounts(t *testing.T) {
	tn := make(map[pcset.Set]struct{})
	tni := make(map[pcset.Set]struct{})
	for m := uint16(1); m < 1<<12; m++ {
		s := pcset.FromMask(m)
		tn[pcset.NormalForm(s)] = struct{}{}
		tni[pcset.PrimeForm(s)] = struct{}{}
	}
	assert.Len(t, tn, 351)
	assert.Len(t, tni, 223)
}

func TestIntervalVector(t *testing.T) {
	assert.Equal(t, pcset.IntervalVector{0, 0, 1, 1, 1, 0}, pcset.IntervalVectorOf(major))
	assert.Equal(t, pcset.IntervalVector{1, 1, 1, 1, 1, 1}, pcset.IntervalVectorOf(mustInts(t, 0, 1, 4, 6)))
	assert.Equal(t, pcset.IntervalVector{2, 5, 4, 3, 6, 1}, pcset.IntervalVectorOf(diatonic))
	assert.Equal(t, pcset.IntervalVector{}, pcset.IntervalVectorOf(mustInts(t, 5)))

	for m := uint16(1); m < 1<<12; m++ {
		s := pcset.FromMask(m)
		n := s.Len()
		require.Equal(t, n*(n-1)/2, pcset.IntervalVectorOf(s).Sum())
		require.Equal(t, pcset.IntervalVectorOf(s), pcset.IntervalVectorOf(s.Invert(3)))
	}
}

func TestSymmetries(t *testing.T) {
	cases := []struct {
		name   string
		set    pcset.Set
		transp []int
		invert []int
	}{
		{"major triad", major, []int{0}, nil},
		{"augmented", augmented, []int{0, 4, 8}, []int{0, 4, 8}},
		{"diminished seventh", mustInts(t, 0, 3, 6, 9), []int{0, 3, 6, 9}, []int{0, 3, 6, 9}},
		{"whole tone", mustInts(t, 0, 2, 4, 6, 8, 10), []int{0, 2, 4, 6, 8, 10}, []int{0, 2, 4, 6, 8, 10}},
		{"semitone dyad", mustInts(t, 0, 1), []int{0}, []int{1}},
		{"diatonic", diatonic, []int{0}, []int{4}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sym := pcset.Symmetries(tc.set)
			assert.Equal(t, tc.transp, sym.Transpositional)
			assert.Equal(t, tc.invert, sym.Inversional)
			assert.Equal(t, len(tc.transp) == 1, sym.Asymmetric())
			assert.Equal(t, len(tc.transp)+len(tc.invert), sym.Degree())
		})
	}

	assert.Empty(t, pcset.Symmetries(pcset.Set{}).Transpositional)
}

// TestSymmetry_Axes converts TₙI indices into mirror axes.
func TestSymmetry_Axes(t *testing.T) {
	assert.Nil(t, pcset.Symmetries(major).Axes())
	assert.Equal(t, []float64{0.5}, pcset.Symmetries(mustInts(t, 0, 1)).Axes())

	// The diatonic collection mirrors around D.
	axes := pcset.Symmetries(diatonic).Axes()
	require.Equal(t, []float64{2}, axes)
	a := pitch.PitchClass(axes[0])
	for _, pc := range diatonic.Elements() {
		assert.True(t, diatonic.Contains(pitch.Invert(pc, a)), "%s", pc)
	}
}
