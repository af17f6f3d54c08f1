package forward

import (
	"github.com/containerkit/datastructures/compare"
	"golang.org/x/exp/constraints"
)

// Equal returns true if the two lists have the same length and hold equal
// elements in the same order.
//
// Complexity: O(n)
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal, comparing elements with eq.
//
// Complexity: O(n)
func EqualFunc[T any](a, b *List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	for x, y := a.root.next, b.root.next; x != nil; x, y = x.next, y.next {
		if !eq(x.value, y.value) {
			return false
		}
	}
	return true
}

// Compare performs a lexicographic three-way comparison of the two lists:
// elements are compared pairwise in list order and the first difference
// decides the result; when one list is a prefix of the other, the shorter
// list compares less. The result is -1 if a compares less than b, +1 if a
// compares greater than b, and 0 if the lists are equal.
//
// Complexity: O(min(a.Len(), b.Len()))
func Compare[T constraints.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, compare.Function[T])
}

// CompareFunc is like Compare, ordering elements with cmp.
//
// Complexity: O(min(a.Len(), b.Len()))
func CompareFunc[T any](a, b *List[T], cmp func(T, T) int) int {
	x, y := a.root.next, b.root.next
	for x != nil && y != nil {
		if c := cmp(x.value, y.value); c != 0 {
			return c
		}
		x, y = x.next, y.next
	}
	switch {
	case x != nil:
		return +1
	case y != nil:
		return -1
	default:
		return 0
	}
}

// Less returns true if a compares lexicographically less than b. Less and
// the three relational functions below are all derived from the single
// three-way Compare, which keeps the four orderings consistent with each
// other.
func Less[T constraints.Ordered](a, b *List[T]) bool { return Compare(a, b) < 0 }

// LessOrEqual returns true if a compares lexicographically less than or
// equal to b.
func LessOrEqual[T constraints.Ordered](a, b *List[T]) bool { return Compare(a, b) <= 0 }

// Greater returns true if a compares lexicographically greater than b.
func Greater[T constraints.Ordered](a, b *List[T]) bool { return Compare(a, b) > 0 }

// GreaterOrEqual returns true if a compares lexicographically greater than
// or equal to b.
func GreaterOrEqual[T constraints.Ordered](a, b *List[T]) bool { return Compare(a, b) >= 0 }
