// Package forward contains the implementation of a generic singly-linked
// list.
//
// The standard library provides a doubly-linked list in the container/list
// package, which pays for bidirectional traversal with a previous pointer on
// every element. The List type in this package links elements in one
// direction only: it supports constant time insertion and removal at the
// front of the list, and insertion and removal after any position reached
// through a forward iterator.
//
// The chain is rooted at a synthetic before-begin position which anchors
// edits at the front of the list, so InsertAfter and EraseAfter are the only
// structural edit paths and the front is not a special case:
//
//	l := forward.New(1, 2, 3)
//	l.InsertAfter(l.BeforeBegin(), 0)
//
//	for it := l.Begin(); it != l.End(); it = it.Next() {
//		...
//	}
//
// Iterators are positions, not copies: an iterator remains usable exactly as
// long as the element it refers to is part of a chain. Removing an element
// invalidates the iterators referring to that element and no others; Swap
// invalidates nothing.
//
// List values are not safe to use concurrently from multiple goroutines.
// Synchronization strategies are often very specific to the application and
// harder to generalize, so the package does not make opinionated choices on
// how synchronization should be handled.
package forward

type node[T any] struct {
	value T
	next  *node[T]
}

// List is a container of elements of type T linked in a singly-linked chain.
// The number of elements is cached, so Len runs in constant time.
//
// The zero-value is a valid, empty list.
type List[T any] struct {
	root node[T] // sentinel before-begin position, root.next is the first element
	size int
}

// New constructs a list holding the given values in order. Calling New with
// no values constructs an empty list.
//
// The chain is built into a temporary list which is swapped into the result
// once complete, so a panic while producing an element leaves no partially
// constructed list visible.
//
// Complexity: O(len(values))
func New[T any](values ...T) *List[T] {
	l := new(List[T])
	tmp := List[T]{}
	tail := &tmp.root

	for _, v := range values {
		tail.next = &node[T]{value: v}
		tail = tail.next
		tmp.size++
	}

	l.Swap(&tmp)
	return l
}

// Len returns the number of elements in the list.
//
// Complexity: O(1)
func (l *List[T]) Len() int { return l.size }

// Empty returns true if the list holds no elements.
//
// Complexity: O(1)
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first element of the list.
//
// The method panics if the list is empty.
//
// Complexity: O(1)
func (l *List[T]) Front() T {
	if l.root.next == nil {
		panic("forward: Front called on an empty list")
	}
	return l.root.next.value
}

// PushFront inserts value as the new first element of the list. No existing
// iterator is invalidated.
//
// Complexity: O(1)
func (l *List[T]) PushFront(value T) {
	l.root.next = &node[T]{value: value, next: l.root.next}
	l.size++
}

// PopFront removes the first element of the list and returns it. Iterators
// referring to the removed element are invalidated; all others remain valid.
//
// The method panics if the list is empty.
//
// Complexity: O(1)
func (l *List[T]) PopFront() T {
	first := l.root.next
	if first == nil {
		panic("forward: PopFront called on an empty list")
	}
	l.root.next = first.next
	first.next = nil
	l.size--
	return first.value
}

// InsertAfter inserts value immediately after the element at position pos
// and returns an iterator to the inserted element. Passing the before-begin
// position inserts at the front of the list.
//
// The position must refer to a live element of this list or to its
// before-begin position. A position from another list, or one whose element
// has since been removed, is not found by the validity scan; the method then
// returns the end iterator and leaves the list unchanged. Callers that
// cannot vouch for pos must compare the result against End.
//
// Complexity: O(n), spent locating pos within the current chain.
func (l *List[T]) InsertAfter(pos Iterator[T], value T) Iterator[T] {
	for n := &l.root; n != nil; n = n.next {
		if pos.node == n {
			n.next = &node[T]{value: value, next: n.next}
			l.size++
			return Iterator[T]{list: l, node: n.next}
		}
	}
	return l.End()
}

// EraseAfter removes the element immediately following pos and returns an
// iterator to the element after the removed one, or the end iterator if the
// removed element was the last. Iterators referring to the removed element
// are invalidated; all others remain valid.
//
// Calling EraseAfter on an empty list has no effect and returns the end
// iterator. A position not found in the current chain also returns the end
// iterator with no effect, under the same validity scan as InsertAfter.
// Passing a position whose element has no successor panics: there is no
// element to erase and no meaningful iterator to return.
//
// Complexity: O(n), spent locating pos within the current chain.
func (l *List[T]) EraseAfter(pos Iterator[T]) Iterator[T] {
	if l.size == 0 {
		return l.End()
	}
	for n := &l.root; n != nil; n = n.next {
		if pos.node == n {
			victim := n.next
			if victim == nil {
				panic("forward: EraseAfter called with a position that has no successor")
			}
			n.next = victim.next
			victim.next = nil
			l.size--
			return Iterator[T]{list: l, node: n.next}
		}
	}
	return l.End()
}

// Clear removes all elements from the list. Every iterator other than the
// before-begin and end positions is invalidated.
//
// Complexity: O(n)
func (l *List[T]) Clear() {
	// Severing the links keeps an outstanding iterator to a removed element
	// from retaining the rest of the chain.
	for n := l.root.next; n != nil; {
		next := n.next
		n.next = nil
		n = next
	}
	l.root.next = nil
	l.size = 0
}

// Clone returns a deep copy of the list: the copy holds the same elements in
// the same order, and subsequent mutation of either list does not affect the
// other.
//
// Complexity: O(n)
func (l *List[T]) Clone() *List[T] {
	c := new(List[T])
	tmp := List[T]{}
	tail := &tmp.root

	for n := l.root.next; n != nil; n = n.next {
		tail.next = &node[T]{value: n.value}
		tail = tail.next
		tmp.size++
	}

	c.Swap(&tmp)
	return c
}

// Assign replaces the contents of the list with a copy of other. The copy is
// built aside and swapped in, so the receiver is left unchanged if building
// the copy panics. Assigning a list to itself has no effect.
//
// Complexity: O(other.Len())
func (l *List[T]) Assign(other *List[T]) {
	if l != other {
		l.Swap(other.Clone())
	}
}

// Swap exchanges the contents of the two lists. Iterators keep referring to
// the same elements, which after the call are reachable from the other list;
// no iterator is invalidated. Swapping a list with itself has no effect.
//
// Complexity: O(1)
func (l *List[T]) Swap(other *List[T]) {
	if l != other {
		l.root.next, other.root.next = other.root.next, l.root.next
		l.size, other.size = other.size, l.size
	}
}

// Range calls f for each element of the list, in list order. If f returns
// false, the iteration is stopped. Elements are presented by value, making
// Range the read-only traversal of the list.
//
// Complexity: O(n)
func (l *List[T]) Range(f func(T) bool) {
	for n := l.root.next; n != nil; n = n.next {
		if !f(n.value) {
			break
		}
	}
}

// BeforeBegin returns the iterator anchoring the position before the first
// element. It is not dereferenceable; it exists to be passed to InsertAfter
// and EraseAfter to edit the front of the list.
//
// Complexity: O(1)
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{list: l, node: &l.root}
}

// Begin returns an iterator to the first element of the list, or the end
// iterator if the list is empty.
//
// Complexity: O(1)
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{list: l, node: l.root.next}
}

// End returns the past-the-end iterator of the list. It is not
// dereferenceable.
//
// Complexity: O(1)
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{list: l}
}

// Swap exchanges the contents of the two lists. It is equivalent to calling
// a.Swap(b).
func Swap[T any](a, b *List[T]) { a.Swap(b) }
