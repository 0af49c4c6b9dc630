package queue

// element is a node of list. The zero next/prev of a detached node is nil.
type element[T any] struct {
	next, prev *element[T]
	value      T
}

// list is a circular doubly-linked list with a sentinel root, so that any
// element can be unlinked in O(1). Not safe for concurrent use.
type list[T any] struct {
	root element[T]
	len  int
}

func newList[T any]() *list[T] {
	l := &list[T]{}
	l.root.next = &l.root
	l.root.prev = &l.root
	return l
}

func (l *list[T]) Len() int { return l.len }

// Front returns the head element, or nil if the list is empty.
func (l *list[T]) Front() *element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Next returns the element after e, or nil at the tail.
func (l *list[T]) Next(e *element[T]) *element[T] {
	if n := e.next; n != &l.root {
		return n
	}
	return nil
}

// PushBack appends v at the tail.
func (l *list[T]) PushBack(v T) {
	e := &element[T]{value: v}
	at := l.root.prev
	e.prev = at
	e.next = &l.root
	at.next = e
	l.root.prev = e
	l.len++
}

// Remove unlinks e and returns its value. e must belong to l.
func (l *list[T]) Remove(e *element[T]) T {
	e.prev.next = e.next
	e.next.prev = e.prev
	v := e.value

	// release references held by the detached node
	var zero T
	e.value = zero
	e.next = nil
	e.prev = nil
	l.len--
	return v
}
