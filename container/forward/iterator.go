package forward

// Iterator is a position in a List: the before-begin anchor, a live element,
// or the past-the-end position. Only a position at a live element is
// dereferenceable.
//
// Iterators are values and compare equal with == exactly when they denote
// the same position of the same list.
//
// An iterator remains valid as long as the element it refers to is part of a
// chain. Removing the element makes the iterator stale; a stale iterator may
// still be passed to InsertAfter and EraseAfter, which detect it and report
// it by returning the end iterator, but any other use of it is a contract
// violation.
type Iterator[T any] struct {
	list *List[T]
	node *node[T]
}

// Next returns the iterator to the following position. Advancing from the
// last element yields the end iterator; advancing the end iterator panics.
//
// Complexity: O(1)
func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil {
		panic("forward: Next called on the end iterator")
	}
	return Iterator[T]{list: it.list, node: it.node.next}
}

// Value returns a copy of the element at the iterator's position.
//
// The method panics at the before-begin and end positions, which do not
// refer to an element.
func (it Iterator[T]) Value() T {
	if !it.dereferenceable() {
		panic("forward: Value called on a non-dereferenceable iterator")
	}
	return it.node.value
}

// Set replaces the element at the iterator's position with value.
//
// The method panics at the before-begin and end positions, which do not
// refer to an element.
func (it Iterator[T]) Set(value T) {
	if !it.dereferenceable() {
		panic("forward: Set called on a non-dereferenceable iterator")
	}
	it.node.value = value
}

func (it Iterator[T]) dereferenceable() bool {
	return it.node != nil && it.node != &it.list.root
}
