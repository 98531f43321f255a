// SPDX-License-Identifier: MIT

package combin

import "iter"

// Combinations yields every k-subset of [0,n) as an ascending index slice,
// in lexicographic order. k == 0 yields a single empty slice.
//
// Complexity: O(C(n,k)·k) time, O(k) memory.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 || k < 0 || k > n {
			return
		}
		idx := make([]int, k)
		var i int
		for i = 0; i < k; i++ { // first subset: 0..k-1
			idx[i] = i
		}
		for {
			if !yield(idx) {
				return
			}
			// Find the rightmost position that can still advance.
			i = k - 1
			for i >= 0 && idx[i] == n-k+i {
				i--
			}
			if i < 0 {
				return // last subset emitted
			}
			idx[i]++
			for j := i + 1; j < k; j++ {
				idx[j] = idx[j-1] + 1
			}
		}
	}
}

// Permutations yields every ordering of [0,n) in lexicographic order,
// starting from the identity. n == 0 yields a single empty slice.
//
// Complexity: O(n!·n) time, O(n) memory.
func Permutations(n int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 {
			return
		}
		p := make([]int, n)
		for i := range p {
			p[i] = i
		}
		for {
			if !yield(p) {
				return
			}
			if !nextPermutation(p) {
				return
			}
		}
	}
}

// nextPermutation rearranges p into its lexicographic successor and reports
// whether one existed.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	for l, r := i+1, len(p)-1; l < r; l, r = l+1, r-1 {
		p[l], p[r] = p[r], p[l]
	}

	return true
}

// Product yields every tuple t with 0 ≤ t[i] < radices[i] (an odometer with
// the last position turning fastest). No radices yields one empty tuple; any
// radix ≤ 0 yields nothing.
//
// Complexity: O(Π radices · len(radices)) time, O(len(radices)) memory.
func Product(radices ...int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		for _, r := range radices {
			if r <= 0 {
				return
			}
		}
		t := make([]int, len(radices))
		for {
			if !yield(t) {
				return
			}
			i := len(t) - 1
			for i >= 0 {
				t[i]++
				if t[i] < radices[i] {
					break
				}
				t[i] = 0
				i--
			}
			if i < 0 {
				return // odometer wrapped
			}
		}
	}
}

// Surjections yields every length-k sequence over [0,n) in which each of the
// n values appears at least once, in lexicographic order. With k == n this is
// exactly Permutations(n).
//
// Complexity: O(nᵏ·k) time, O(n + k) memory.
func Surjections(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if n < 0 || k < n {
			return
		}
		radices := make([]int, k)
		for i := range radices {
			radices[i] = n
		}
		seen := make([]int, n) // per-value occurrence counters, reset each tuple
		for t := range Product(radices...) {
			clear(seen)
			covered := 0
			for _, v := range t {
				if seen[v] == 0 {
					covered++
				}
				seen[v]++
			}
			if covered != n {
				continue
			}
			if !yield(t) {
				return
			}
		}
	}
}

// Binomial returns C(n,k), or 0 when k is outside [0,n].
func Binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	res := 1
	for i := 1; i <= k; i++ {
		res = res * (n - k + i) / i
	}

	return res
}
