package ropecheck

import (
	"fmt"
	"io"
	"time"

	"github.com/elves/rope/pkg/errutil"
	"github.com/elves/rope/pkg/store/storedefs"
)

const (
	sgrPass  = "\033[32m"
	sgrFail  = "\033[31m"
	sgrReset = "\033[m"
)

// WriteReport writes one line for each result, followed by the messages of
// failed checks and a summary line. When color is true, PASS and FAIL are
// highlighted with ANSI escape sequences.
func WriteReport(w io.Writer, results []Result, color bool) {
	failed := 0
	for _, res := range results {
		status := "PASS"
		sgr := sgrPass
		if !res.Passed() {
			status = "FAIL"
			sgr = sgrFail
			failed++
		}
		if color {
			status = sgr + status + sgrReset
		}
		fmt.Fprintf(w, "%s %s (%d elements, height %d, %v)\n",
			status, res.Workload, res.Elements, res.Height, res.Duration.Round(time.Microsecond))
		for _, err := range errutil.Errors(res.Err) {
			fmt.Fprintf(w, "    %v\n", err)
		}
	}
	fmt.Fprintf(w, "%d workloads, %d failed\n", len(results), failed)
}

// HistoryRun converts a Result to an entry of the run history.
func HistoryRun(res Result, t time.Time) storedefs.Run {
	run := storedefs.Run{Workload: res.Workload, Time: t, Elements: res.Elements}
	for _, err := range errutil.Errors(res.Err) {
		run.Failures = append(run.Failures, err.Error())
	}
	return run
}

// WriteHistory writes one line for each run in the history.
func WriteHistory(w io.Writer, runs []storedefs.Run) {
	for _, run := range runs {
		status := "PASS"
		if !run.Passed() {
			status = fmt.Sprintf("FAIL (%d)", len(run.Failures))
		}
		fmt.Fprintf(w, "%d %s %s %s %d elements\n",
			run.Seq, run.Time.Format(time.RFC3339), run.Workload, status, run.Elements)
	}
}
