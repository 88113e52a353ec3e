// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// does not need to depend on the concrete implementation.
package storedefs

import (
	"errors"
	"time"
)

// ErrNoRun is the error returned when querying a run that doesn't exist.
var ErrNoRun = errors.New("no such run")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextRunSeq() (int, error)
	AddRun(run Run) (int, error)
	DelRun(seq int) error
	Run(seq int) (Run, error)
	Runs(from, upto int) ([]Run, error)
	Close() error
}

// Run is an entry in the history of property check runs.
type Run struct {
	Seq      int
	Workload string
	Time     time.Time
	// Number of elements of the largest rope built.
	Elements int
	// Messages of failed checks; empty if all passed.
	Failures []string
}

// Passed returns whether all checks of the run passed.
func (r Run) Passed() bool { return len(r.Failures) == 0 }
