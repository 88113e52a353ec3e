package ropecheck

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/elves/rope/pkg/errutil"
	"github.com/elves/rope/pkg/logutil"
	"github.com/elves/rope/pkg/persistent/rope"
	"github.com/elves/rope/pkg/persistent/rope/filled"
)

var logger = logutil.GetLogger("[ropecheck] ")

// Random workloads are checked after every checkInterval operations, and at
// the end.
const checkInterval = 1024

// Result is the outcome of running a workload.
type Result struct {
	Workload string
	// Number of elements and tree height of the final rope.
	Elements int
	Height   int
	Duration time.Duration
	// All failed checks, combined with errutil.Multi; nil if all passed.
	Err error
}

// Passed returns whether all checks passed.
func (r Result) Passed() bool { return r.Err == nil }

// Run builds the rope described by w alongside a reference slice, and checks
// the rope against the slice.
func Run(w Workload) Result {
	start := time.Now()
	var b builder
	var errs []error
	if len(w.Script) > 0 {
		for i, step := range w.Script {
			b.apply(step)
			if err := Check(b.rope, b.ref); err != nil {
				errs = append(errs, prefixErrors(fmt.Sprintf("step %d (%s)", i, step.Op), err)...)
			}
		}
	} else {
		rng := rand.New(rand.NewSource(w.Seed))
		chunk := w.Chunk
		if chunk == 0 {
			chunk = DefaultChunk
		}
		for i := 0; i < w.Ops; i++ {
			b.apply(randomStep(rng, w.Mix, chunk))
			if (i+1)%checkInterval == 0 {
				if err := Check(b.rope, b.ref); err != nil {
					errs = append(errs, prefixErrors(fmt.Sprintf("op %d", i), err)...)
				}
			}
		}
		if err := Check(b.rope, b.ref); err != nil {
			errs = append(errs, prefixErrors("final", err)...)
		}
	}
	res := Result{
		Workload: w.Name,
		Elements: len(b.ref),
		Duration: time.Since(start),
		Err:      errutil.Multi(errs...),
	}
	if f, ok := b.rope.Filled(); ok {
		res.Height = filled.Height(f)
	}
	logger.Printf("workload %s: %d elements, height %d, %v, passed: %v",
		res.Workload, res.Elements, res.Height, res.Duration, res.Passed())
	return res
}

func prefixErrors(prefix string, err error) []error {
	errs := errutil.Errors(err)
	for i, e := range errs {
		errs[i] = fmt.Errorf("%s: %w", prefix, e)
	}
	return errs
}

func randomStep(rng *rand.Rand, mix []Op, chunk int) Step {
	step := Step{Op: mix[rng.Intn(len(mix))]}
	switch step.Op {
	case OpPrepend, OpAppend:
		step.Value = rng.Intn(1000)
	case OpAppendTo, OpPrependTo, OpConcatenate:
		// May be empty, which exercises the identity cases.
		step.Values = make([]int, rng.Intn(chunk+1))
		for i := range step.Values {
			step.Values[i] = rng.Intn(1000)
		}
	}
	return step
}

// builder keeps a rope and a slice that should always hold the same elements.
type builder struct {
	rope rope.Rope[int]
	ref  []int
}

func (b *builder) apply(step Step) {
	switch step.Op {
	case OpFromSlice:
		b.rope = rope.FromSlice(step.Values)
		b.ref = append([]int(nil), step.Values...)
	case OpPrepend:
		b.rope = b.rope.Prepend(step.Value)
		b.ref = append([]int{step.Value}, b.ref...)
	case OpAppend:
		b.rope = b.rope.Append(step.Value)
		b.ref = append(b.ref, step.Value)
	case OpAppendTo:
		b.rope = rope.AppendTo(b.rope, rope.FromSlice(step.Values))
		b.ref = append(b.ref, step.Values...)
	case OpPrependTo:
		b.rope = rope.PrependTo(b.rope, rope.FromSlice(step.Values))
		b.ref = append(append([]int(nil), step.Values...), b.ref...)
	case OpConcatenate:
		singletons := rope.Map(rope.Singleton[int], rope.FromSlice(step.Values))
		b.rope = rope.AppendTo(b.rope, rope.Concatenate(singletons))
		b.ref = append(b.ref, step.Values...)
	case OpReverse:
		b.rope = b.rope.Reverse()
		b.ref = reversed(b.ref)
	case OpFilter:
		divisible := func(v int) bool { return v%step.Value == 0 }
		b.rope = b.rope.Filter(divisible)
		var kept []int
		for _, v := range b.ref {
			if divisible(v) {
				kept = append(kept, v)
			}
		}
		b.ref = kept
	case OpMap:
		b.rope = rope.Map(func(v int) int { return v + step.Value }, b.rope)
		mapped := make([]int, len(b.ref))
		for i, v := range b.ref {
			mapped[i] = v + step.Value
		}
		b.ref = mapped
	default:
		// Rejected by Validate.
		panic(fmt.Sprintf("unknown operation %q", step.Op))
	}
}

var equateEmpty = cmpopts.EquateEmpty()

// Check checks r against ref, the elements it should hold, and returns all
// failures combined with errutil.Multi.
func Check(r rope.Rope[int], ref []int) error {
	var errs []error
	fail := func(check string, got, want any) {
		errs = append(errs, fmt.Errorf("%s: got %s, want %s", check, abbrev(got), abbrev(want)))
	}
	checkSlice := func(check string, got, want []int) {
		if !cmp.Equal(want, got, equateEmpty) {
			fail(check, got, want)
		}
	}
	checkValue := func(check string, got, want any) {
		if got != want {
			fail(check, got, want)
		}
	}

	snoc := func(v int, acc []int) []int { return append(acc, v) }
	rev := reversed(ref)

	checkSlice("round trip", r.ToSlice(), ref)
	checkSlice("to list", r.ToList().ToSlice(), ref)
	checkValue("length", r.Len(), len(ref))
	checkValue("is empty", r.IsEmpty(), len(ref) == 0)
	checkSlice("foldl", rope.Foldl(snoc, nil, r), ref)
	checkSlice("foldr", rope.Foldr(snoc, nil, r), rev)
	checkSlice("reverse", r.Reverse().ToSlice(), rev)
	checkSlice("reverse twice", r.Reverse().Reverse().ToSlice(), ref)
	checkValue("length of self concatenation", rope.AppendTo(r, r).Len(), 2*len(ref))

	indices := make([]int, len(ref))
	for i := range indices {
		indices[i] = i
	}
	checkSlice("indexed map", rope.IndexedMap(func(i, _ int) int { return i }, r).ToSlice(), indices)

	sum, product := 0, 1
	for _, v := range ref {
		sum += v
		product *= v
	}
	checkValue("sum", rope.Sum(r), sum)
	checkValue("product", rope.Product(r), product)

	gotMax, okMax := rope.Maximum(r)
	gotMin, okMin := rope.Minimum(r)
	if len(ref) == 0 {
		checkValue("maximum exists", okMax, false)
		checkValue("minimum exists", okMin, false)
		checkValue("all", r.All(func(int) bool { return false }), true)
		checkValue("any", r.Any(func(int) bool { return true }), false)
	} else {
		wantMax, wantMin := ref[0], ref[0]
		for _, v := range ref {
			wantMax = max(wantMax, v)
			wantMin = min(wantMin, v)
		}
		checkValue("maximum", gotMax, wantMax)
		checkValue("minimum", gotMin, wantMin)
		checkValue("all >= minimum", r.All(func(v int) bool { return v >= wantMin }), true)
		checkValue("any == maximum", r.Any(func(v int) bool { return v == wantMax }), true)
		checkValue("member first", rope.Member(ref[0], r), true)
		checkValue("member last", rope.Member(ref[len(ref)-1], r), true)
		if wantMax < math.MaxInt {
			checkValue("member above maximum", rope.Member(wantMax+1, r), false)
		}
	}
	return errutil.Multi(errs...)
}

func reversed(s []int) []int {
	r := make([]int, len(s))
	for i, v := range s {
		r[len(s)-1-i] = v
	}
	return r
}

const abbrevLimit = 8

// abbrev formats v on one line, eliding the middle of long slices.
func abbrev(v any) string {
	s, ok := v.([]int)
	if !ok || len(s) <= abbrevLimit {
		return fmt.Sprint(v)
	}
	var sb strings.Builder
	sb.WriteString("[")
	for i := 0; i < abbrevLimit/2; i++ {
		fmt.Fprint(&sb, s[i], " ")
	}
	fmt.Fprintf(&sb, "... %d more ...", len(s)-abbrevLimit)
	for i := len(s) - abbrevLimit/2; i < len(s); i++ {
		fmt.Fprint(&sb, " ", s[i])
	}
	sb.WriteString("]")
	return sb.String()
}
