// SPDX-License-Identifier: MIT

package pcset

import "fmt"

// Equivalence selects the notion of sameness used by comparison and
// deduplication routines. It is always passed explicitly.
type Equivalence int

const (
	// Literal compares sets by plain membership.
	Literal Equivalence = iota

	// Transposition identifies sets related by some Tₖ (equal normal forms).
	Transposition

	// TranspositionInversion identifies sets related by some Tₖ or TₙI
	// (equal prime forms).
	TranspositionInversion
)

// String names the mode.
func (e Equivalence) String() string {
	switch e {
	case Literal:
		return "literal"
	case Transposition:
		return "Tn"
	case TranspositionInversion:
		return "TnI"
	default:
		return fmt.Sprintf("Equivalence(%d)", int(e))
	}
}

// ClassOf returns the representative of s under mode: s itself, its normal
// form, or its prime form. Unknown modes fall back to Literal.
func ClassOf(s Set, mode Equivalence) Set {
	switch mode {
	case Transposition:
		return NormalForm(s)
	case TranspositionInversion:
		return PrimeForm(s)
	default:
		return s
	}
}

// Equivalent reports whether a and b belong to the same class under mode.
func Equivalent(a, b Set, mode Equivalence) bool {
	if a.Len() != b.Len() {
		return false
	}

	return ClassOf(a, mode) == ClassOf(b, mode)
}

// ContainsUnder reports whether some member of sub's class under mode is a
// literal subset of super: sub ⊆ super for Literal, Tₖ(sub) ⊆ super for some k
// under Transposition, and additionally TₙI(sub) ⊆ super under
// TranspositionInversion.
//
// Complexity: O(24) mask operations.
func ContainsUnder(super, sub Set, mode Equivalence) bool {
	if sub.IsSubsetOf(super) {
		return true
	}
	if mode == Literal {
		return false
	}
	for k := 0; k < 12; k++ {
		if sub.Transpose(k).IsSubsetOf(super) {
			return true
		}
		if mode == TranspositionInversion && sub.Invert(k).IsSubsetOf(super) {
			return true
		}
	}

	return false
}
