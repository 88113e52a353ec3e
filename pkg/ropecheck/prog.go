// Package ropecheck checks persistent ropes against plain slices.
//
// It reads workloads from YAML files, builds a rope for each workload by
// applying scripted or random operations, and checks after the operations that
// every observation of the rope (its elements, length, folds, reversal and
// reductions) agrees with the same observation made on a slice that went
// through the same operations.
package ropecheck

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/elves/rope/pkg/env"
	"github.com/elves/rope/pkg/logutil"
	"github.com/elves/rope/pkg/store"
	"github.com/elves/rope/pkg/store/storedefs"
	"github.com/elves/rope/pkg/sys"
)

// Flags keeps command-line flags.
type Flags struct {
	Log, DB       string
	Help, History bool
}

func newFlagSet(f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet("ropecheck", flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.StringVar(&f.DB, "db", "",
		"path to the database of past runs; defaults to $"+env.ROPECHECK_DB)
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.History, "history", false, "show past runs from the database and quit")
	return fs
}

func usage(out io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(out, "Usage: ropecheck [flags] [workload-file...]")
	fmt.Fprintln(out, "Without workload files, workloads are read from stdin.")
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Exit statuses of Main.
const (
	ExitPassed   = 0
	ExitFailed   = 1
	ExitBadUsage = 2
)

// Main parses command-line flags, runs all workloads and returns the exit
// status.
func Main(fds [3]*os.File, args []string) int {
	f := &Flags{}
	fs := newFlagSet(f)
	if err := fs.Parse(args[1:]); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], fs)
		return ExitBadUsage
	}

	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	if f.Help {
		usage(fds[1], fs)
		return ExitPassed
	}

	dbPath := f.DB
	if dbPath == "" {
		dbPath = os.Getenv(env.ROPECHECK_DB)
	}
	var st storedefs.Store
	if dbPath != "" {
		var err error
		st, err = store.NewStore(dbPath)
		if err != nil {
			fmt.Fprintf(fds[2], "open database %s: %v\n", dbPath, err)
			return ExitBadUsage
		}
		defer st.Close()
	}

	if f.History {
		if st == nil {
			fmt.Fprintf(fds[2], "-history needs -db or $%s\n", env.ROPECHECK_DB)
			return ExitBadUsage
		}
		runs, err := st.Runs(0, math.MaxInt)
		if err != nil {
			fmt.Fprintln(fds[2], "read history:", err)
			return ExitBadUsage
		}
		WriteHistory(fds[1], runs)
		return ExitPassed
	}

	workloads, err := loadAll(fds[0], fs.Args())
	if err != nil {
		fmt.Fprintln(fds[2], err)
		return ExitBadUsage
	}

	results := make([]Result, len(workloads))
	for i, w := range workloads {
		results[i] = Run(w)
	}
	WriteReport(fds[1], results, sys.ColorEnabled(fds[1]))

	if st != nil {
		now := time.Now()
		for _, res := range results {
			if _, err := st.AddRun(HistoryRun(res, now)); err != nil {
				fmt.Fprintln(fds[2], "Warning: cannot save run:", err)
			}
		}
	}

	for _, res := range results {
		if !res.Passed() {
			return ExitFailed
		}
	}
	return ExitPassed
}

func loadAll(stdin io.Reader, files []string) ([]Workload, error) {
	if len(files) == 0 {
		cfg, err := Load(stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return cfg.Workloads, nil
	}
	var workloads []Workload
	for _, name := range files {
		cfg, err := loadFile(name)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		workloads = append(workloads, cfg.Workloads...)
	}
	return workloads, nil
}

func loadFile(name string) (*Config, error) {
	file, err := os.Open(name)
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, pathErr.Err
		}
		return nil, err
	}
	defer file.Close()
	return Load(file)
}
