package nonempty

import (
	"math"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elves/rope/pkg/persistent/list"
	"github.com/elves/rope/pkg/tt"
)

func seq(head int, tail ...int) Seq[int] { return New(head, tail...) }

func cons(v int, acc []int) []int { return append([]int{v}, acc...) }

func snoc(v int, acc []int) []int { return append(acc, v) }

func TestConstruction(t *testing.T) {
	tt.Test(t, tt.Fn("Singleton(x).ToSlice", func(x int) []int {
		return Singleton(x).ToSlice()
	}), tt.Table{
		tt.Args(5).Rets([]int{5}),
	})
	tt.Test(t, tt.Fn("FromSlice", func(s []int) ([]int, bool) {
		q, ok := FromSlice(s)
		if !ok {
			return nil, false
		}
		return q.ToSlice(), true
	}), tt.Table{
		tt.Args([]int{}).Rets([]int(nil), false),
		tt.Args([]int{1}).Rets([]int{1}, true),
		tt.Args([]int{1, 2, 3}).Rets([]int{1, 2, 3}, true),
	})
	tt.Test(t, tt.Fn("FromList", func(l list.List[int]) ([]int, bool) {
		q, ok := FromList(l)
		if !ok {
			return nil, false
		}
		return q.ToSlice(), true
	}), tt.Table{
		tt.Args(list.List[int]{}).Rets([]int(nil), false),
		tt.Args(list.Of(4, 5)).Rets([]int{4, 5}, true),
	})

	var zero Seq[string]
	if zero.Len() != 1 || zero.Head() != "" {
		t.Errorf("zero Seq is not a one-element sequence")
	}
}

func TestPrependShares(t *testing.T) {
	base := seq(2, 3)
	a := base.Prepend(1)
	b := base.Prepend(10)
	if diff := cmp.Diff([]int{1, 2, 3}, a.ToSlice()); diff != "" {
		t.Errorf("a (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{10, 2, 3}, b.ToSlice()); diff != "" {
		t.Errorf("b (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2, 3}, base.ToSlice()); diff != "" {
		t.Errorf("base modified (-want +got):\n%s", diff)
	}
}

func TestStructure(t *testing.T) {
	tt.Test(t, tt.Fn("Append", func(s Seq[int], v int) []int {
		return s.Append(v).ToSlice()
	}), tt.Table{
		tt.Args(seq(1), 2).Rets([]int{1, 2}),
		tt.Args(seq(1, 2, 3), 4).Rets([]int{1, 2, 3, 4}),
	})
	tt.Test(t, tt.Fn("Len", Seq[int].Len), tt.Table{
		tt.Args(seq(1)).Rets(1),
		tt.Args(seq(1, 2, 3)).Rets(3),
	})
	tt.Test(t, tt.Fn("Reverse", func(s Seq[int]) []int {
		return s.Reverse().ToSlice()
	}), tt.Table{
		tt.Args(seq(1)).Rets([]int{1}),
		tt.Args(seq(1, 2, 3)).Rets([]int{3, 2, 1}),
	})
	tt.Test(t, tt.Fn("ToList", func(s Seq[int]) []int {
		return s.ToList().ToSlice()
	}), tt.Table{
		tt.Args(seq(7, 8)).Rets([]int{7, 8}),
	})
}

func TestMap(t *testing.T) {
	tt.Test(t, tt.Fn("Map(Itoa)", func(s Seq[int]) []string {
		return Map(strconv.Itoa, s).ToSlice()
	}), tt.Table{
		tt.Args(seq(1)).Rets([]string{"1"}),
		tt.Args(seq(1, 2, 3)).Rets([]string{"1", "2", "3"}),
	})
	tt.Test(t, tt.Fn("ReverseMap(Itoa)", func(s Seq[int]) []string {
		return ReverseMap(strconv.Itoa, s).ToSlice()
	}), tt.Table{
		tt.Args(seq(1, 2, 3)).Rets([]string{"3", "2", "1"}),
	})
	even := func(x int) (int, bool) { return x * 10, x%2 == 0 }
	tt.Test(t, tt.Fn("FilterMapToSlice(even)", func(s Seq[int]) []int {
		return FilterMapToSlice(even, s)
	}), tt.Table{
		tt.Args(seq(1, 3, 5)).Rets([]int(nil)),
		tt.Args(seq(1, 2, 3, 4)).Rets([]int{20, 40}),
		tt.Args(seq(2)).Rets([]int{20}),
	})
}

func TestFolds(t *testing.T) {
	tt.Test(t, tt.Fn("Foldl(snoc)", func(s Seq[int]) []int {
		return Foldl(snoc, nil, s)
	}), tt.Table{
		tt.Args(seq(1)).Rets([]int{1}),
		tt.Args(seq(1, 2, 3)).Rets([]int{1, 2, 3}),
	})
	tt.Test(t, tt.Fn("Foldr(snoc)", func(s Seq[int]) []int {
		return Foldr(snoc, nil, s)
	}), tt.Table{
		tt.Args(seq(1)).Rets([]int{1}),
		tt.Args(seq(1, 2, 3)).Rets([]int{3, 2, 1}),
		tt.Args(seq(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12)).
			Rets([]int{12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1}),
	})
	tt.Test(t, tt.Fn("Foldr(cons)", func(s Seq[int]) []int {
		return Foldr(cons, nil, s)
	}), tt.Table{
		tt.Args(seq(1, 2, 3, 4, 5, 6)).Rets([]int{1, 2, 3, 4, 5, 6}),
	})
	tt.Test(t, tt.Fn("Foldr(minus)", func(s Seq[int]) int {
		return Foldr(func(x, acc int) int { return x - acc }, 0, s)
	}), tt.Table{
		// 1 - (2 - (3 - (4 - 0)))
		tt.Args(seq(1, 2, 3, 4)).Rets(-2),
	})
}

func TestFoldr_Long(t *testing.T) {
	// Long enough to go past the recursion limit.
	const n = 100_003
	elems := make([]int, n)
	for i := range elems {
		elems[i] = i
	}
	s, _ := FromSlice(elems)

	got := Foldr(func(x int, acc list.List[int]) list.List[int] { return acc.Cons(x) },
		list.List[int]{}, s)
	if diff := cmp.Diff(elems, got.ToSlice()); diff != "" {
		t.Errorf("Foldr(cons) (-want +got):\n%s", diff)
	}

	// Foldr must agree with Foldl over the reverse.
	order := func(x int, acc []int) []int { return append(acc, x) }
	if diff := cmp.Diff(Foldl(order, nil, s.Reverse()), Foldr(order, nil, s)); diff != "" {
		t.Errorf("Foldr disagrees with Foldl of Reverse (-want +got):\n%s", diff)
	}
}

func TestReductions(t *testing.T) {
	tt.Test(t, tt.Fn("Sum", Sum[int]), tt.Table{
		tt.Args(seq(5)).Rets(5),
		tt.Args(seq(1, 2, 3, 4)).Rets(10),
	})
	tt.Test(t, tt.Fn("Product", Product[int]), tt.Table{
		tt.Args(seq(5)).Rets(5),
		tt.Args(seq(1, 2, 3, 4)).Rets(24),
	})
	tt.Test(t, tt.Fn("Maximum", Maximum[int]), tt.Table{
		tt.Args(seq(-3)).Rets(-3),
		tt.Args(seq(3, 9, -1, 4)).Rets(9),
	})
	tt.Test(t, tt.Fn("Minimum", Minimum[int]), tt.Table{
		tt.Args(seq(math.MaxInt)).Rets(math.MaxInt),
		tt.Args(seq(3, 9, -1, 4)).Rets(-1),
	})
	tt.Test(t, tt.Fn("Maximum", Maximum[string]), tt.Table{
		tt.Args(New("b", "c", "a")).Rets("c"),
	})
	tt.Test(t, tt.Fn("FoldlFromFirstMap(len, +)", func(s Seq[string]) int {
		return FoldlFromFirstMap(func(s string) int { return len(s) },
			func(a, b int) int { return a + b }, s)
	}), tt.Table{
		tt.Args(New("ab", "cde", "")).Rets(5),
	})

	positive := func(x int) bool { return x > 0 }
	tt.Test(t, tt.Fn("AllMap(positive)", func(s Seq[int]) bool {
		return AllMap(positive, s)
	}), tt.Table{
		tt.Args(seq(1, 2, 3)).Rets(true),
		tt.Args(seq(1, -2, 3)).Rets(false),
		tt.Args(seq(-1)).Rets(false),
	})
	tt.Test(t, tt.Fn("AnyMap(positive)", func(s Seq[int]) bool {
		return AnyMap(positive, s)
	}), tt.Table{
		tt.Args(seq(-1, -2, 3)).Rets(true),
		tt.Args(seq(-1, -2)).Rets(false),
		tt.Args(seq(1)).Rets(true),
	})
}

func BenchmarkFoldr(b *testing.B) {
	elems := make([]int, 0x10000)
	s, _ := FromSlice(elems)
	add := func(x, acc int) int { return x + acc }
	b.ResetTimer()
	for r := 0; r < b.N; r++ {
		Foldr(add, 0, s)
	}
}

func BenchmarkFoldl(b *testing.B) {
	elems := make([]int, 0x10000)
	s, _ := FromSlice(elems)
	add := func(x, acc int) int { return x + acc }
	b.ResetTimer()
	for r := 0; r < b.N; r++ {
		Foldl(add, 0, s)
	}
}
