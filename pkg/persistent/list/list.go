// Package list implements persistent list.
package list

// List is a persistent singly linked list. It supports O(1) insertion and
// removal at the front, and O(1) length. Being persistent, it is immutable;
// Cons returns a new list that shares the receiver. The zero value is an empty
// list.
type List[T any] struct {
	c *cell[T]
}

type cell[T any] struct {
	first T
	rest  *cell[T]
	count int
}

// Of returns a list of the given values, in the same order.
func Of[T any](vs ...T) List[T] {
	return FromSlice(vs)
}

// FromSlice returns a list with the same elements as s, in the same order.
func FromSlice[T any](s []T) List[T] {
	var l List[T]
	for i := len(s) - 1; i >= 0; i-- {
		l = l.Cons(s[i])
	}
	return l
}

// Len returns the number of values in the list.
func (l List[T]) Len() int {
	if l.c == nil {
		return 0
	}
	return l.c.count
}

// IsEmpty returns whether the list is empty.
func (l List[T]) IsEmpty() bool {
	return l.c == nil
}

// Cons returns a new list with an additional value in the front.
func (l List[T]) Cons(v T) List[T] {
	return List[T]{&cell[T]{v, l.c, l.Len() + 1}}
}

// First returns the first value in the list. The second return value is false
// if the list is empty.
func (l List[T]) First() (T, bool) {
	if l.c == nil {
		var zero T
		return zero, false
	}
	return l.c.first, true
}

// Rest returns the list after the first value. The rest of an empty list is
// empty.
func (l List[T]) Rest() List[T] {
	if l.c == nil {
		return l
	}
	return List[T]{l.c.rest}
}

// Reverse returns a list with the same values in reverse order.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for c := l.c; c != nil; c = c.rest {
		r = r.Cons(c.first)
	}
	return r
}

// Each calls f on each value in order, stopping early if f returns false.
func (l List[T]) Each(f func(T) bool) {
	for c := l.c; c != nil; c = c.rest {
		if !f(c.first) {
			return
		}
	}
}

// ToSlice returns the values of the list as a newly allocated slice. It
// returns nil for an empty list.
func (l List[T]) ToSlice() []T {
	if l.c == nil {
		return nil
	}
	s := make([]T, 0, l.c.count)
	for c := l.c; c != nil; c = c.rest {
		s = append(s, c.first)
	}
	return s
}
