// Package rope implements persistent rope.
//
// A Rope is an immutable sequence that can be grown at either end, and
// concatenated with another Rope, in O(1) time. It achieves this by keeping
// elements in a tree (see package filled) whose subtrees are shared, never
// copied. The price is paid on observation: Len, ToSlice and the folds
// traverse the whole tree every time. There is no random access by index.
//
// Being immutable, Ropes can be freely shared, including between goroutines.
// The zero value is an empty Rope.
package rope

import (
	"cmp"
	"fmt"

	"github.com/elves/rope/pkg/persistent/list"
	"github.com/elves/rope/pkg/persistent/nonempty"
	"github.com/elves/rope/pkg/persistent/rope/filled"
)

// Rope is a persistent sequence. It is either empty, or holds a non-empty
// filled.Rope.
type Rope[T any] struct {
	filled filled.Rope[T]
}

// Empty returns an empty Rope. It is the same as the zero value.
func Empty[T any]() Rope[T] { return Rope[T]{} }

// Singleton returns a Rope with just v.
func Singleton[T any](v T) Rope[T] {
	return Rope[T]{filled.Singleton(v)}
}

// FromFilled returns a Rope holding f. A nil f gives an empty Rope.
func FromFilled[T any](f filled.Rope[T]) Rope[T] {
	return Rope[T]{f}
}

// FromSlice returns a Rope with the elements of s, in the same order. The
// Rope is a single leaf.
func FromSlice[T any](s []T) Rope[T] {
	return FromList(list.FromSlice(s))
}

// FromList returns a Rope with the elements of l, in the same order. It shares
// l.
func FromList[T any](l list.List[T]) Rope[T] {
	s, ok := nonempty.FromList(l)
	if !ok {
		return Rope[T]{}
	}
	return Rope[T]{filled.FromSeq(s)}
}

// Filled returns the non-empty rope held by r. The second return value is
// false if r is empty.
func (r Rope[T]) Filled() (filled.Rope[T], bool) {
	return r.filled, r.filled != nil
}

// IsEmpty returns whether r has no elements. It takes O(1) time.
func (r Rope[T]) IsEmpty() bool { return r.filled == nil }

// Len returns the number of elements in r. It traverses the whole tree.
func (r Rope[T]) Len() int {
	if r.filled == nil {
		return 0
	}
	return filled.Len(r.filled)
}

// Prepend returns a Rope with v in the front.
func (r Rope[T]) Prepend(v T) Rope[T] {
	if r.filled == nil {
		return Singleton(v)
	}
	return Rope[T]{filled.Prepend(v, r.filled)}
}

// Append returns a Rope with v at the end.
func (r Rope[T]) Append(v T) Rope[T] {
	if r.filled == nil {
		return Singleton(v)
	}
	return Rope[T]{filled.Append(v, r.filled)}
}

// AppendTo returns the elements of early followed by those of late. An empty
// operand is an identity: the other operand is returned as is.
func AppendTo[T any](early, late Rope[T]) Rope[T] {
	switch {
	case early.filled == nil:
		return late
	case late.filled == nil:
		return early
	default:
		return Rope[T]{filled.AppendTo(early.filled, late.filled)}
	}
}

// PrependTo is AppendTo with the arguments swapped: it returns the elements of
// early followed by those of late.
func PrependTo[T any](late, early Rope[T]) Rope[T] {
	return AppendTo(early, late)
}

// Concatenate flattens a Rope of Ropes. Empty inner Ropes are dropped; if all
// of them are empty, so is the result.
func Concatenate[T any](rs Rope[Rope[T]]) Rope[T] {
	return ConcatMap(func(r Rope[T]) Rope[T] { return r }, rs)
}

// ConcatMap is equivalent to Concatenate(Map(f, r)), but does not build the
// intermediate Rope. The non-empty results of f become the children of one
// new node.
func ConcatMap[T, U any](f func(T) Rope[U], r Rope[T]) Rope[U] {
	if r.filled == nil {
		return Rope[U]{}
	}
	parts := filled.Foldr(func(v T, acc list.List[filled.Rope[U]]) list.List[filled.Rope[U]] {
		if part := f(v).filled; part != nil {
			return acc.Cons(part)
		}
		return acc
	}, list.List[filled.Rope[U]]{}, r.filled)
	children, ok := nonempty.FromList(parts)
	switch {
	case !ok:
		return Rope[U]{}
	case children.Len() == 1:
		return Rope[U]{children.Head()}
	default:
		return Rope[U]{filled.Node[U]{Children: children}}
	}
}

// Map returns a Rope of f applied to each element of r.
func Map[T, U any](f func(T) U, r Rope[T]) Rope[U] {
	if r.filled == nil {
		return Rope[U]{}
	}
	return Rope[U]{filled.Map(f, r.filled)}
}

// IndexedMap is like Map, but f also receives the index of each element.
func IndexedMap[T, U any](f func(int, T) U, r Rope[T]) Rope[U] {
	if r.filled == nil {
		return Rope[U]{}
	}
	return Rope[U]{filled.IndexedMap(f, r.filled)}
}

// FilterMap applies f to each element of r and keeps the results for which f
// returns true.
func FilterMap[T, U any](f func(T) (U, bool), r Rope[T]) Rope[U] {
	if r.filled == nil {
		return Rope[U]{}
	}
	if m, ok := filled.FilterMap(f, r.filled); ok {
		return Rope[U]{m}
	}
	return Rope[U]{}
}

// Filter returns a Rope of the elements of r for which pred returns true.
func (r Rope[T]) Filter(pred func(T) bool) Rope[T] {
	return FilterMap(func(v T) (T, bool) { return v, pred(v) }, r)
}

// Foldl reduces the elements of r from left to right, starting from acc. It
// returns acc if r is empty.
func Foldl[T, A any](f func(T, A) A, acc A, r Rope[T]) A {
	if r.filled == nil {
		return acc
	}
	return filled.Foldl(f, acc, r.filled)
}

// Foldr reduces the elements of r from right to left, starting from acc. It
// returns acc if r is empty.
func Foldr[T, A any](f func(T, A) A, acc A, r Rope[T]) A {
	if r.filled == nil {
		return acc
	}
	return filled.Foldr(f, acc, r.filled)
}

// Reverse returns a Rope with the elements of r in reverse order.
func (r Rope[T]) Reverse() Rope[T] {
	if r.filled == nil {
		return r
	}
	return Rope[T]{filled.Reverse(r.filled)}
}

// ToList returns the elements of r as a list.
func (r Rope[T]) ToList() list.List[T] {
	if r.filled == nil {
		return list.List[T]{}
	}
	return filled.ToList(r.filled)
}

// ToSlice returns the elements of r as a newly allocated slice. It returns nil
// if r is empty.
func (r Rope[T]) ToSlice() []T {
	if r.filled == nil {
		return nil
	}
	return filled.ToSlice(r.filled)
}

// String returns the elements of r formatted like a slice.
func (r Rope[T]) String() string {
	if r.filled == nil {
		return "[]"
	}
	return fmt.Sprint(r.ToSlice())
}

// All returns whether pred holds for every element of r. It returns true if r
// is empty.
func (r Rope[T]) All(pred func(T) bool) bool {
	return r.filled == nil || filled.AllMap(pred, r.filled)
}

// Any returns whether pred holds for any element of r. It returns false if r
// is empty.
func (r Rope[T]) Any(pred func(T) bool) bool {
	return r.filled != nil && filled.AnyMap(pred, r.filled)
}

// Member returns whether needle is an element of r.
func Member[T comparable](needle T, r Rope[T]) bool {
	return r.Any(func(v T) bool { return v == needle })
}

// Maximum returns the largest element of r. The second return value is false
// if r is empty.
func Maximum[T cmp.Ordered](r Rope[T]) (T, bool) {
	if r.filled == nil {
		var zero T
		return zero, false
	}
	return filled.Maximum(r.filled), true
}

// Minimum returns the smallest element of r. The second return value is false
// if r is empty.
func Minimum[T cmp.Ordered](r Rope[T]) (T, bool) {
	if r.filled == nil {
		var zero T
		return zero, false
	}
	return filled.Minimum(r.filled), true
}

// Sum returns the sum of the elements of r, or 0 if r is empty.
func Sum[T nonempty.Number](r Rope[T]) T {
	if r.filled == nil {
		return 0
	}
	return filled.Sum(r.filled)
}

// Product returns the product of the elements of r, or 1 if r is empty.
func Product[T nonempty.Number](r Rope[T]) T {
	if r.filled == nil {
		return 1
	}
	return filled.Product(r.filled)
}
