package filled

import (
	"github.com/elves/rope/pkg/persistent/list"
	"github.com/elves/rope/pkg/persistent/nonempty"
)

// Foldl reduces the elements of r from left to right, starting from acc.
func Foldl[T, A any](f func(T, A) A, acc A, r Rope[T]) A {
	walkLeaves(r, false, func(s nonempty.Seq[T]) {
		acc = nonempty.Foldl(f, acc, s)
	})
	return acc
}

// Foldr reduces the elements of r from right to left, starting from acc.
func Foldr[T, A any](f func(T, A) A, acc A, r Rope[T]) A {
	walkLeaves(r, true, func(s nonempty.Seq[T]) {
		acc = nonempty.Foldr(f, acc, s)
	})
	return acc
}

// walkLeaves calls visit with the elements of every Leaf of r, from left to
// right, or from right to left when backward is true.
//
// Subtrees still to be visited are kept on an explicit stack of child lists,
// so the depth of the Go stack does not depend on the height of r.
func walkLeaves[T any](r Rope[T], backward bool, visit func(nonempty.Seq[T])) {
	stack := []list.List[Rope[T]]{list.Of(r)}
	for len(stack) > 0 {
		top := len(stack) - 1
		next, ok := stack[top].First()
		if !ok {
			stack = stack[:top]
			continue
		}
		stack[top] = stack[top].Rest()
		switch next := next.(type) {
		case Leaf[T]:
			visit(next.Elems)
		case Node[T]:
			children := next.Children.ToList()
			if backward {
				children = children.Reverse()
			}
			stack = append(stack, children)
		default:
			panic(badVariant(next))
		}
	}
}
