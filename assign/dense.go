// SPDX-License-Identifier: MIT

package assign

import (
	"fmt"
	"strconv"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a square row-major matrix of integer costs.
// n is the order, data holds n*n elements.
type Dense struct {
	n    int   // order
	data []int // flat backing storage, length == n*n
}

// NewDense creates an n×n zero matrix.
// Stage 1 (Validate): ensure n > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// FromRows copies rows into a new Dense.
// Stage 1 (Validate): non-empty and every row of length len(rows).
// Stage 2 (Execute): copy row by row.
// Complexity: O(n²).
func FromRows(rows [][]int) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}
	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromRows: row %d has %d columns, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
	}
	m := &Dense{n: n, data: make([]int, n*n)}
	for i = 0; i < n; i++ {
		copy(m.data[i*n:(i+1)*n], rows[i])
	}

	return m, nil
}

// Order returns n.
// Complexity: O(1).
func (m *Dense) Order() int {
	return m.n
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col, v int) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// at is the unchecked accessor used by the solvers after validation.
func (m *Dense) at(row, col int) int {
	return m.data[row*m.n+col]
}

// Clone returns a deep copy.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	data := make([]int, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// String renders one bracketed row per line.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(m.data[i*m.n+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// Result is a perfect matching: Assignment[i] is the column given to row i.
type Result struct {
	Assignment []int
	Total      int // sum of chosen costs
	Max        int // largest chosen cost
}

// newResult evaluates assignment against m.
func newResult(m *Dense, assignment []int) Result {
	r := Result{Assignment: assignment}
	for i, j := range assignment {
		c := m.at(i, j)
		r.Total += c
		if i == 0 || c > r.Max {
			r.Max = c
		}
	}

	return r
}
