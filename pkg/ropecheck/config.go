package ropecheck

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/elves/rope/pkg/errutil"
)

// Config is the content of a workload file.
type Config struct {
	Workloads []Workload `yaml:"workloads"`
}

// Workload describes how to build a rope. A workload either has a Script, or
// builds a rope with Ops random growth operations drawn from Mix.
type Workload struct {
	Name   string `yaml:"name"`
	Seed   int64  `yaml:"seed,omitempty"`
	Ops    int    `yaml:"ops,omitempty"`
	Mix    []Op   `yaml:"mix,omitempty"`
	Chunk  int    `yaml:"chunk,omitempty"`
	Script []Step `yaml:"script,omitempty"`
}

// Step is one operation of a scripted workload.
type Step struct {
	Op     Op    `yaml:"op"`
	Value  int   `yaml:"value,omitempty"`
	Values []int `yaml:"values,omitempty"`
}

// Op names an operation on the rope under check.
type Op string

// Supported operations.
const (
	// Replace the rope with one built from Values.
	OpFromSlice Op = "fromSlice"
	// Add Value to the front or the end.
	OpPrepend Op = "prepend"
	OpAppend  Op = "append"
	// Concatenate a rope built from Values after or before the rope.
	OpAppendTo  Op = "appendTo"
	OpPrependTo Op = "prependTo"
	// Concatenate a rope of singleton ropes, one per element of Values, after
	// the rope.
	OpConcatenate Op = "concatenate"
	OpReverse     Op = "reverse"
	// Keep elements divisible by Value.
	OpFilter Op = "filter"
	// Add Value to every element.
	OpMap Op = "map"
)

var knownOps = map[Op]bool{
	OpFromSlice: true, OpPrepend: true, OpAppend: true, OpAppendTo: true,
	OpPrependTo: true, OpConcatenate: true, OpReverse: true, OpFilter: true,
	OpMap: true,
}

// Operations that can be drawn randomly. The others need values that a random
// workload does not provide.
var randomOps = map[Op]bool{
	OpPrepend: true, OpAppend: true, OpAppendTo: true, OpPrependTo: true,
	OpConcatenate: true, OpReverse: true,
}

// DefaultChunk is the size limit of ropes built for random appendTo,
// prependTo and concatenate operations when a workload doesn't specify one.
const DefaultChunk = 8

var errNoWorkloads = errors.New("no workloads")

// Load reads and validates a workload file.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if err == io.EOF {
			return nil, errNoWorkloads
		}
		return nil, fmt.Errorf("parse workloads: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate returns all problems found in c, combined with errutil.Multi.
func (c *Config) Validate() error {
	if len(c.Workloads) == 0 {
		return errNoWorkloads
	}
	var errs []error
	seen := make(map[string]bool)
	for i, w := range c.Workloads {
		if w.Name == "" {
			errs = append(errs, fmt.Errorf("workload %d: no name", i))
		} else if seen[w.Name] {
			errs = append(errs, fmt.Errorf("workload %s: duplicate name", w.Name))
		}
		seen[w.Name] = true
		errs = append(errs, w.validate())
	}
	return errutil.Multi(errs...)
}

func (w Workload) validate() error {
	var errs []error
	wrap := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("workload %s: "+format, append([]any{w.Name}, args...)...))
	}
	if w.Ops < 0 {
		wrap("negative ops %d", w.Ops)
	}
	if w.Chunk < 0 {
		wrap("negative chunk %d", w.Chunk)
	}
	if len(w.Script) > 0 && (w.Ops > 0 || len(w.Mix) > 0) {
		wrap("script cannot be combined with ops or mix")
	}
	if len(w.Script) == 0 && w.Ops > 0 && len(w.Mix) == 0 {
		wrap("random ops need a mix")
	}
	for _, op := range w.Mix {
		if !randomOps[op] {
			wrap("operation %q cannot be used in a mix", op)
		}
	}
	for i, step := range w.Script {
		switch {
		case !knownOps[step.Op]:
			wrap("step %d: unknown operation %q", i, step.Op)
		case step.Op == OpFilter && step.Value == 0:
			wrap("step %d: filter needs a non-zero value", i)
		}
	}
	return errutil.Multi(errs...)
}
