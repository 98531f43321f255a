// SPDX-License-Identifier: MIT

package assign

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
)

// MaxExact is the largest order Exact accepts.
const MaxExact = 16

// unreachable marks a mask with no completion under the current threshold.
const unreachable = math.MaxInt / 4

// Exact solves the assignment problem by dynamic programming over column
// subsets and breaks ties deterministically. Among all perfect matchings it
// returns the one that
//
//  1. minimises the total cost, then
//  2. minimises the largest single cost, then
//  3. is lexicographically smallest as the sequence Assignment[0], Assignment[1], ...
//
// Rows are assigned in index order, so mask popcount identifies the next row:
// g[mask] is the cheapest way to give rows popcount(mask)..n−1 the columns
// outside mask. Level 2 is the smallest threshold t among the distinct costs
// for which g restricted to entries ≤ t still reaches the optimal total; level
// 3 then walks rows in order and takes the smallest column that keeps the
// restricted optimum reachable.
//
// Time complexity:   O(d · n · 2ⁿ), d the number of distinct costs
// Memory complexity: O(2ⁿ)
func Exact(cost *Dense) (Result, error) {
	// --- 1. Validate ---
	if cost == nil || cost.n <= 0 {
		return Result{}, ErrInvalidDimensions
	}
	n := cost.n
	if n > MaxExact {
		return Result{}, fmt.Errorf("Exact: order %d exceeds %d: %w", n, MaxExact, ErrTooLarge)
	}

	// --- 2. Optimal total, no threshold ---
	best := suffixTable(cost, math.MaxInt)
	total := best[0]

	// --- 3. Smallest threshold keeping the optimum ---
	thresholds := slices.Clone(cost.data)
	slices.Sort(thresholds)
	thresholds = slices.Compact(thresholds)
	g, limit := best, thresholds[len(thresholds)-1]
	for _, t := range thresholds {
		if cand := suffixTable(cost, t); cand[0] == total {
			g, limit = cand, t
			break
		}
	}

	// --- 4. Lexicographic reconstruction ---
	assignment := make([]int, n)
	mask := 0
	var row, col int
	for row = 0; row < n; row++ {
		for col = 0; col < n; col++ {
			if mask&(1<<col) != 0 {
				continue
			}
			c := cost.at(row, col)
			if c > limit {
				continue
			}
			next := mask | 1<<col
			if g[next] != unreachable && c+g[next] == g[mask] {
				assignment[row] = col
				mask = next
				break
			}
		}
	}

	return newResult(cost, assignment), nil
}

// suffixTable fills g[mask] = minimum cost of assigning rows popcount(mask)..n−1
// to the columns outside mask using only entries ≤ limit; unreachable when no
// such completion exists.
//
// Complexity: O(n · 2ⁿ).
func suffixTable(cost *Dense, limit int) []int {
	n := cost.n
	full := 1<<n - 1
	g := make([]int, full+1)
	g[full] = 0
	var col int
	for mask := full - 1; mask >= 0; mask-- {
		g[mask] = unreachable
		row := bits.OnesCount(uint(mask))
		for col = 0; col < n; col++ {
			if mask&(1<<col) != 0 {
				continue // column already taken
			}
			c := cost.at(row, col)
			rest := g[mask|1<<col]
			if c > limit || rest == unreachable {
				continue
			}
			if c+rest < g[mask] {
				g[mask] = c + rest
			}
		}
	}

	return g
}
