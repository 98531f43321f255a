// SPDX-License-Identifier: MIT

package assign

import "math"

// Hungarian returns a minimum-total perfect matching of rows to columns.
// Among several optimal matchings, which one is returned is unspecified;
// use Exact when ties must be broken deterministically.
//
// The implementation keeps row potentials u and column potentials v with
// u[i]+v[j] ≤ cost[i][j], growing one augmenting path per row (1-indexed, with
// column 0 as the virtual source).
//
// Time complexity:   O(n³)
// Memory complexity: O(n)
func Hungarian(cost *Dense) (Result, error) {
	if cost == nil || cost.n <= 0 {
		return Result{}, ErrInvalidDimensions
	}
	n := cost.n
	const inf = math.MaxInt / 4

	var (
		u   = make([]int, n+1)
		v   = make([]int, n+1)
		p   = make([]int, n+1) // p[j]: row matched to column j
		way = make([]int, n+1) // way[j]: previous column on the path
	)

	var i, j int
	for i = 1; i <= n; i++ {
		// --- 1. Start an augmenting path from row i ---
		p[0] = i
		j0 := 0
		minv := make([]int, n+1)
		used := make([]bool, n+1)
		for j = 0; j <= n; j++ {
			minv[j] = inf
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := 0
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost.at(i0-1, j-1) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			// --- 2. Shift potentials by the smallest reduced cost ---
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break // reached a free column
			}
		}
		// --- 3. Flip the path ---
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	for j = 1; j <= n; j++ {
		assignment[p[j]-1] = j - 1
	}

	return newResult(cost, assignment), nil
}
