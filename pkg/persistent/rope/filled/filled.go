// Package filled implements the tree behind a non-empty rope.
//
// A Rope is either a Leaf, holding a flat run of elements, or a Node, holding
// an ordered non-empty sequence of child ropes. Children are read from left to
// right as sequence order. The tree is never rebalanced: it only grows through
// Prepend, Append and AppendTo, all of which take O(1) time by reusing the
// existing subtrees instead of copying them.
//
// There are no cached aggregates; Len and ToSlice traverse the whole tree
// every time.
package filled

import (
	"cmp"
	"fmt"

	"github.com/elves/rope/pkg/persistent/list"
	"github.com/elves/rope/pkg/persistent/nonempty"
)

// Rope is a non-empty persistent sequence. It is implemented by exactly two
// types, Leaf[T] and Node[T]. The marker method mentions T so that ropes of
// different element types are distinct interfaces.
type Rope[T any] interface {
	sealed(T)
}

// Leaf is a flat run of elements.
type Leaf[T any] struct {
	Elems nonempty.Seq[T]
}

// Node is an ordered sequence of subtrees. Every child must be a non-nil Leaf
// or Node; the zero Node has a single nil child and is not a valid rope, so
// Nodes should be obtained from Append, AppendTo or Prepend, or built with
// nonempty.New from existing ropes.
type Node[T any] struct {
	Children nonempty.Seq[Rope[T]]
}

func (Leaf[T]) sealed(T) {}
func (Node[T]) sealed(T) {}

func badVariant(r any) string {
	if r == nil {
		return "filled: nil rope, possibly the child of a zero Node"
	}
	return fmt.Sprintf("filled: unknown rope variant %T", r)
}

// Singleton returns a rope with just v.
func Singleton[T any](v T) Rope[T] {
	return Leaf[T]{nonempty.Singleton(v)}
}

// FromSeq returns a rope with the elements of s.
func FromSeq[T any](s nonempty.Seq[T]) Rope[T] {
	return Leaf[T]{s}
}

func node[T any](first Rope[T], rest ...Rope[T]) Rope[T] {
	return Node[T]{nonempty.New(first, rest...)}
}

// Prepend returns a rope with v in the front.
//
// When r is a Leaf, v is pushed onto its elements; when r is a Node, a new
// singleton Leaf becomes its first child. Either way the existing contents are
// shared.
func Prepend[T any](v T, r Rope[T]) Rope[T] {
	switch r := r.(type) {
	case Leaf[T]:
		return Leaf[T]{r.Elems.Prepend(v)}
	case Node[T]:
		return Node[T]{r.Children.Prepend(Singleton(v))}
	default:
		panic(badVariant(r))
	}
}

// Append returns a rope with v at the end. It wraps r and a new singleton Leaf
// in a new Node without looking into r.
func Append[T any](v T, r Rope[T]) Rope[T] {
	return node(r, Singleton(v))
}

// AppendTo returns the concatenation of early and late.
//
// Node children can only be grown cheaply at the front, so early is always
// added to late rather than the other way around: if late is a Node, early
// becomes its first child, otherwise both become the children of a new Node.
func AppendTo[T any](early, late Rope[T]) Rope[T] {
	switch late := late.(type) {
	case Leaf[T]:
		return node[T](early, late)
	case Node[T]:
		return Node[T]{late.Children.Prepend(early)}
	default:
		panic(badVariant(late))
	}
}

// Height returns the number of Node levels above the deepest Leaf. The height
// of a Leaf is 0.
func Height[T any](r Rope[T]) int {
	switch r := r.(type) {
	case Leaf[T]:
		return 0
	case Node[T]:
		return 1 + nonempty.FoldlFromFirstMap(Height[T],
			func(a, b int) int { return max(a, b) }, r.Children)
	default:
		panic(badVariant(r))
	}
}

// Len returns the number of elements in r. It visits every node of r.
func Len[T any](r Rope[T]) int {
	switch r := r.(type) {
	case Leaf[T]:
		return r.Elems.Len()
	case Node[T]:
		return nonempty.FoldlFromFirstMap(Len[T],
			func(a, b int) int { return a + b }, r.Children)
	default:
		panic(badVariant(r))
	}
}

// ToList returns the elements of r as a list. For a Leaf, this shares the
// elements of the Leaf.
func ToList[T any](r Rope[T]) list.List[T] {
	if leaf, ok := r.(Leaf[T]); ok {
		return leaf.Elems.ToList()
	}
	return Foldr(func(v T, l list.List[T]) list.List[T] { return l.Cons(v) },
		list.List[T]{}, r)
}

// ToSeq returns the elements of r as a non-empty sequence.
func ToSeq[T any](r Rope[T]) nonempty.Seq[T] {
	if leaf, ok := r.(Leaf[T]); ok {
		return leaf.Elems
	}
	// A rope is never empty, so the second return value is always true.
	s, _ := nonempty.FromList(ToList(r))
	return s
}

// ToSlice returns the elements of r as a newly allocated slice.
func ToSlice[T any](r Rope[T]) []T {
	return Foldl(func(v T, s []T) []T { return append(s, v) }, make([]T, 0, Len(r)), r)
}

// Reverse returns a rope with the elements of r in reverse order. Both the
// order of children and every child are reversed.
func Reverse[T any](r Rope[T]) Rope[T] {
	switch r := r.(type) {
	case Leaf[T]:
		return Leaf[T]{r.Elems.Reverse()}
	case Node[T]:
		return Node[T]{nonempty.ReverseMap(Reverse[T], r.Children)}
	default:
		panic(badVariant(r))
	}
}

// Map returns a rope of f applied to each element of r. The result has the
// same shape as r.
func Map[T, U any](f func(T) U, r Rope[T]) Rope[U] {
	switch r := r.(type) {
	case Leaf[T]:
		return Leaf[U]{nonempty.Map(f, r.Elems)}
	case Node[T]:
		return Node[U]{nonempty.Map(func(c Rope[T]) Rope[U] { return Map(f, c) }, r.Children)}
	default:
		panic(badVariant(r))
	}
}

// IndexedMap is like Map, but f also receives the index of each element.
func IndexedMap[T, U any](f func(int, T) U, r Rope[T]) Rope[U] {
	mapped, _ := indexedMap(f, 0, r)
	return mapped
}

// indexedMap maps r, whose first element has index offset. It also returns the
// index after the last element of r.
func indexedMap[T, U any](f func(int, T) U, offset int, r Rope[T]) (Rope[U], int) {
	switch r := r.(type) {
	case Leaf[T]:
		i := offset
		mapped := nonempty.Map(func(v T) U {
			u := f(i, v)
			i++
			return u
		}, r.Elems)
		return Leaf[U]{mapped}, i
	case Node[T]:
		i := offset
		children := nonempty.Map(func(c Rope[T]) Rope[U] {
			var mc Rope[U]
			mc, i = indexedMap(f, i, c)
			return mc
		}, r.Children)
		return Node[U]{children}, i
	default:
		panic(badVariant(r))
	}
}

// FilterMap applies f to each element of r and keeps the results for which f
// returns true. Leaves and children that end up empty are dropped; the second
// return value is false if nothing is left.
func FilterMap[T, U any](f func(T) (U, bool), r Rope[T]) (Rope[U], bool) {
	switch r := r.(type) {
	case Leaf[T]:
		s, ok := nonempty.FromSlice(nonempty.FilterMapToSlice(f, r.Elems))
		if !ok {
			return nil, false
		}
		return Leaf[U]{s}, true
	case Node[T]:
		children, ok := nonempty.FromSlice(nonempty.FilterMapToSlice(
			func(c Rope[T]) (Rope[U], bool) { return FilterMap(f, c) }, r.Children))
		if !ok {
			return nil, false
		}
		if children.Len() == 1 {
			return children.Head(), true
		}
		return Node[U]{children}, true
	default:
		panic(badVariant(r))
	}
}

// AllMap returns whether pred holds for every element. It does not stop early.
func AllMap[T any](pred func(T) bool, r Rope[T]) bool {
	return reduce(pred, func(a, b bool) bool { return a && b }, r)
}

// AnyMap returns whether pred holds for any element. It does not stop early.
func AnyMap[T any](pred func(T) bool, r Rope[T]) bool {
	return reduce(pred, func(a, b bool) bool { return a || b }, r)
}

// Maximum returns the largest element.
func Maximum[T cmp.Ordered](r Rope[T]) T {
	return reduce(identity[T], func(a, b T) T { return max(a, b) }, r)
}

// Minimum returns the smallest element.
func Minimum[T cmp.Ordered](r Rope[T]) T {
	return reduce(identity[T], func(a, b T) T { return min(a, b) }, r)
}

// Sum returns the sum of all elements.
func Sum[T nonempty.Number](r Rope[T]) T {
	return reduce(identity[T], func(a, b T) T { return a + b }, r)
}

// Product returns the product of all elements.
func Product[T nonempty.Number](r Rope[T]) T {
	return reduce(identity[T], func(a, b T) T { return a * b }, r)
}

func identity[T any](v T) T { return v }

// reduce combines change applied to every element with op, which must be
// associative: each Leaf is reduced on its own, and the results of the
// children of a Node are then combined with op again.
func reduce[T, A any](change func(T) A, op func(A, A) A, r Rope[T]) A {
	switch r := r.(type) {
	case Leaf[T]:
		return nonempty.FoldlFromFirstMap(change, op, r.Elems)
	case Node[T]:
		return nonempty.FoldlFromFirstMap(
			func(c Rope[T]) A { return reduce(change, op, c) }, op, r.Children)
	default:
		panic(badVariant(r))
	}
}
