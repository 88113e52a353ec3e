package ropecheck

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elves/rope/pkg/errutil"
)

func TestLoad(t *testing.T) {
	file, err := os.Open("testdata/workloads.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Workloads) != 3 {
		t.Fatalf("got %d workloads, want 3", len(cfg.Workloads))
	}
	mixed := cfg.Workloads[0]
	want := Workload{Name: "mixed", Seed: 1, Ops: 3000, Chunk: 8,
		Mix: []Op{OpPrepend, OpAppend, OpAppendTo, OpPrependTo, OpConcatenate, OpReverse}}
	if diff := cmp.Diff(want, mixed); diff != "" {
		t.Errorf("workload mixed (-want +got):\n%s", diff)
	}
	script := cfg.Workloads[2].Script
	if diff := cmp.Diff(Step{Op: OpAppendTo, Values: []int{5, 6}}, script[3]); diff != "" {
		t.Errorf("step 3 (-want +got):\n%s", diff)
	}
}

var loadErrorTests = []struct {
	name     string
	yaml     string
	wantErrs []string
}{
	{"empty", "", []string{"no workloads"}},
	{"no workloads", "workloads: []", []string{"no workloads"}},
	{"bad yaml", "workloads: [", []string{"parse workloads"}},
	{"unknown field", "workloads:\n  - name: a\n    size: 3", []string{"parse workloads"}},
	{"problems", `
workloads:
  - seed: 1
  - name: neg
    ops: -1
    chunk: -2
  - name: neg
  - name: nomix
    ops: 3
  - name: badmix
    ops: 3
    mix: [filter]
  - name: both
    ops: 3
    mix: [append]
    script: [{op: reverse}]
  - name: steps
    script:
      - {op: explode}
      - {op: filter}
`, []string{
		"workload 0: no name",
		"workload neg: negative ops -1",
		"workload neg: negative chunk -2",
		"workload neg: duplicate name",
		"workload nomix: random ops need a mix",
		`workload badmix: operation "filter" cannot be used in a mix`,
		"workload both: script cannot be combined with ops or mix",
		`workload steps: step 0: unknown operation "explode"`,
		"workload steps: step 1: filter needs a non-zero value",
	}},
}

func TestLoad_Errors(t *testing.T) {
	for _, test := range loadErrorTests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(test.yaml))
			if err == nil {
				t.Fatalf("Load returns nil error")
			}
			errs := errutil.Errors(err)
			if len(errs) != len(test.wantErrs) {
				t.Fatalf("got %d errors, want %d: %v", len(errs), len(test.wantErrs), err)
			}
			for i, want := range test.wantErrs {
				if !strings.Contains(errs[i].Error(), want) {
					t.Errorf("error %d is %q, want it to contain %q", i, errs[i], want)
				}
			}
		})
	}
}
