// Package nonempty implements a persistent sequence that always has at least
// one element.
//
// Since the empty case cannot be expressed, reductions that need an element to
// start from, like Maximum and Sum, are total on Seq. Callers that start from
// a possibly empty collection must get a Seq with FromSlice or FromList first,
// and handle the empty case there.
package nonempty

import (
	"cmp"

	"github.com/elves/rope/pkg/logutil"
	"github.com/elves/rope/pkg/persistent/list"
)

var logger = logutil.GetLogger("[nonempty] ")

// Number is satisfied by types that support + and *.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Seq is a persistent non-empty sequence, made up of a head and a possibly
// empty tail. The zero value is a sequence with one zero element.
type Seq[T any] struct {
	head T
	tail list.List[T]
}

// Singleton returns a sequence with just v.
func Singleton[T any](v T) Seq[T] {
	return Seq[T]{head: v}
}

// New returns a sequence with the given head and tail elements.
func New[T any](head T, tail ...T) Seq[T] {
	return Seq[T]{head, list.FromSlice(tail)}
}

// FromList returns a sequence with the same elements as l. The second return
// value is false if l is empty.
func FromList[T any](l list.List[T]) (Seq[T], bool) {
	head, ok := l.First()
	if !ok {
		return Seq[T]{}, false
	}
	return Seq[T]{head, l.Rest()}, true
}

// FromSlice returns a sequence with the same elements as s. The second return
// value is false if s is empty.
func FromSlice[T any](s []T) (Seq[T], bool) {
	if len(s) == 0 {
		return Seq[T]{}, false
	}
	return New(s[0], s[1:]...), true
}

// Head returns the first element.
func (s Seq[T]) Head() T { return s.head }

// Tail returns all elements but the first.
func (s Seq[T]) Tail() list.List[T] { return s.tail }

// Len returns the number of elements, which is always at least 1.
func (s Seq[T]) Len() int { return 1 + s.tail.Len() }

// Prepend returns a sequence with v in the front. It shares s.
func (s Seq[T]) Prepend(v T) Seq[T] {
	return Seq[T]{v, s.tail.Cons(s.head)}
}

// Append returns a sequence with v at the end. It copies all the elements of s
// and takes O(n) time.
func (s Seq[T]) Append(v T) Seq[T] {
	elems := make([]T, 0, s.tail.Len()+1)
	s.tail.Each(func(e T) bool {
		elems = append(elems, e)
		return true
	})
	return Seq[T]{s.head, list.FromSlice(append(elems, v))}
}

// ToList returns the elements as a list.
func (s Seq[T]) ToList() list.List[T] {
	return s.tail.Cons(s.head)
}

// ToSlice returns the elements as a newly allocated slice.
func (s Seq[T]) ToSlice() []T {
	elems := make([]T, 0, s.Len())
	elems = append(elems, s.head)
	s.tail.Each(func(e T) bool {
		elems = append(elems, e)
		return true
	})
	return elems
}

// Reverse returns a sequence with the elements in reverse order.
func (s Seq[T]) Reverse() Seq[T] {
	return ReverseMap(func(v T) T { return v }, s)
}

// Map returns a sequence of f applied to each element. The elements are
// visited in order.
func Map[T, U any](f func(T) U, s Seq[T]) Seq[U] {
	head := f(s.head)
	mapped := make([]U, 0, s.tail.Len())
	s.tail.Each(func(e T) bool {
		mapped = append(mapped, f(e))
		return true
	})
	return Seq[U]{head, list.FromSlice(mapped)}
}

// ReverseMap is equivalent to Map(f, s).Reverse(), but takes one pass.
func ReverseMap[T, U any](f func(T) U, s Seq[T]) Seq[U] {
	r := Singleton(f(s.head))
	s.tail.Each(func(e T) bool {
		r = r.Prepend(f(e))
		return true
	})
	return r
}

// FilterMapToSlice applies f to each element and keeps the results for which f
// returns true. Since f may drop everything, the result is a plain slice, which
// may be empty.
func FilterMapToSlice[T, U any](f func(T) (U, bool), s Seq[T]) []U {
	var kept []U
	if v, ok := f(s.head); ok {
		kept = append(kept, v)
	}
	s.tail.Each(func(e T) bool {
		if v, ok := f(e); ok {
			kept = append(kept, v)
		}
		return true
	})
	return kept
}

// Foldl reduces the elements from left to right, starting from acc.
func Foldl[T, A any](f func(T, A) A, acc A, s Seq[T]) A {
	return foldlList(f, f(s.head, acc), s.tail)
}

func foldlList[T, A any](f func(T, A) A, acc A, l list.List[T]) A {
	l.Each(func(e T) bool {
		acc = f(e, acc)
		return true
	})
	return acc
}

const (
	foldrGroupSize = 5
	foldrMaxDepth  = 500
)

// Foldr reduces the elements from right to left, starting from acc.
//
// The tail is consumed in groups of foldrGroupSize elements, one stack frame
// per group. Past foldrMaxDepth frames, the rest of the tail is reversed and
// reduced with a loop, so the stack depth is bounded regardless of length.
func Foldr[T, A any](f func(T, A) A, acc A, s Seq[T]) A {
	return f(s.head, foldrList(f, acc, s.tail, 0))
}

func foldrList[T, A any](f func(T, A) A, acc A, l list.List[T], depth int) A {
	var group [foldrGroupSize]T
	n := 0
	for ; n < foldrGroupSize; n++ {
		v, ok := l.First()
		if !ok {
			break
		}
		group[n] = v
		l = l.Rest()
	}
	if !l.IsEmpty() {
		if depth >= foldrMaxDepth {
			logger.Printf("foldr: depth %d reached, reducing %d elements iteratively",
				depth, l.Len())
			acc = foldlList(f, acc, l.Reverse())
		} else {
			acc = foldrList(f, acc, l, depth+1)
		}
	}
	for i := n - 1; i >= 0; i-- {
		acc = f(group[i], acc)
	}
	return acc
}

// FoldlFromFirstMap reduces the elements from left to right after applying
// change to each one. The first changed element is the initial accumulator,
// so no identity element is needed.
func FoldlFromFirstMap[T, A any](change func(T) A, reduce func(A, A) A, s Seq[T]) A {
	acc := change(s.head)
	s.tail.Each(func(e T) bool {
		acc = reduce(acc, change(e))
		return true
	})
	return acc
}

// FoldlFromFirst reduces the elements from left to right, starting from the
// first one.
func FoldlFromFirst[T any](reduce func(T, T) T, s Seq[T]) T {
	return FoldlFromFirstMap(func(v T) T { return v }, reduce, s)
}

// Sum returns the sum of all elements.
func Sum[T Number](s Seq[T]) T {
	return FoldlFromFirst(func(a, b T) T { return a + b }, s)
}

// Product returns the product of all elements.
func Product[T Number](s Seq[T]) T {
	return FoldlFromFirst(func(a, b T) T { return a * b }, s)
}

// Maximum returns the largest element.
func Maximum[T cmp.Ordered](s Seq[T]) T {
	return FoldlFromFirst(func(a, b T) T { return max(a, b) }, s)
}

// Minimum returns the smallest element.
func Minimum[T cmp.Ordered](s Seq[T]) T {
	return FoldlFromFirst(func(a, b T) T { return min(a, b) }, s)
}

// AllMap returns whether pred holds for all elements. It does not stop early.
func AllMap[T any](pred func(T) bool, s Seq[T]) bool {
	return FoldlFromFirstMap(pred, func(a, b bool) bool { return a && b }, s)
}

// AnyMap returns whether pred holds for any element. It does not stop early.
func AnyMap[T any](pred func(T) bool, s Seq[T]) bool {
	return FoldlFromFirstMap(pred, func(a, b bool) bool { return a || b }, s)
}
