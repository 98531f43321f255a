package assign_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/harmonics/assign"
)

func mustRows(t *testing.T, rows [][]int) *assign.Dense {
	t.Helper()
	m, err := assign.FromRows(rows)
	require.NoError(t, err)

	return m
}

func TestDense(t *testing.T) {
	m, err := assign.NewDense(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 7))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, 2, m.Order())
	assert.Equal(t, "[0, 7]\n[0, 0]\n", m.String())

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 1))
	v, _ = m.At(0, 1)
	assert.Equal(t, 7, v, "clone must not alias")

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, assign.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, -1, 1), assign.ErrOutOfRange)

	_, err = assign.NewDense(0)
	assert.ErrorIs(t, err, assign.ErrInvalidDimensions)
	_, err = assign.FromRows(nil)
	assert.ErrorIs(t, err, assign.ErrInvalidDimensions)
	_, err = assign.FromRows([][]int{{1, 2}, {3}})
	assert.ErrorIs(t, err, assign.ErrNonSquare)
}

func TestHungarian_Known(t *testing.T) {
	m := mustRows(t, [][]int{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	res, err := assign.Hungarian(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Assignment)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 2, res.Max)

	single := mustRows(t, [][]int{{9}})
	res, err = assign.Hungarian(single)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Assignment)
	assert.Equal(t, 9, res.Total)

	_, err = assign.Hungarian(nil)
	assert.ErrorIs(t, err, assign.ErrInvalidDimensions)
}

func TestExact_Known(t *testing.T) {
	m := mustRows(t, [][]int{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	res, err := assign.Exact(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Assignment)
	assert.Equal(t, 5, res.Total)
}

// TestExact_TieBreaks covers the second and third tie-break levels.
func TestExact_TieBreaks(t *testing.T) {
	// Both matchings total 2; the swap keeps every entry ≤ 1.
	res, err := assign.Exact(mustRows(t, [][]int{
		{0, 1},
		{1, 2},
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, res.Assignment)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 1, res.Max)

	// Everything ties: the identity is lexicographically first.
	res, err = assign.Exact(mustRows(t, [][]int{
		{3, 3, 3},
		{3, 3, 3},
		{3, 3, 3},
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Assignment)

	// A single zero-cost matching.
	res, err = assign.Exact(mustRows(t, [][]int{
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 0},
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Assignment)
	assert.Equal(t, 0, res.Total)
}

func TestExact_TooLarge(t *testing.T) {
	m, err := assign.NewDense(assign.MaxExact + 1)
	require.NoError(t, err)
	_, err = assign.Exact(m)
	assert.ErrorIs(t, err, assign.ErrTooLarge)
}

// TestSolvers_Agree cross-checks the two solvers on random matrices: equal
// optimal totals, and Exact never exceeds Hungarian's largest entry.
func TestSolvers_Agree(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for trial := 0; trial < 200; trial++ {
		n := 1 + rng.IntN(8)
		rows := make([][]int, n)
		for i := range rows {
			rows[i] = make([]int, n)
			for j := range rows[i] {
				rows[i][j] = rng.IntN(7)
			}
		}
		m := mustRows(t, rows)

		h, err := assign.Hungarian(m)
		require.NoError(t, err)
		e, err := assign.Exact(m)
		require.NoError(t, err)

		require.Equal(t, h.Total, e.Total, "trial %d: %v", trial, rows)
		if h.Total == e.Total {
			assert.LessOrEqual(t, e.Max, h.Max, "trial %d", trial)
		}
		assertPermutation(t, e.Assignment)
		assertPermutation(t, h.Assignment)
	}
}

func assertPermutation(t *testing.T, a []int) {
	t.Helper()
	seen := make([]bool, len(a))
	for _, j := range a {
		require.True(t, j >= 0 && j < len(a))
		require.False(t, seen[j], "column %d used twice in %v", j, a)
		seen[j] = true
	}
}
