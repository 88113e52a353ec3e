// Command ropecheck checks persistent ropes against plain slices using
// workloads described in YAML files.
//
// See [github.com/elves/rope/pkg/ropecheck] for details.
package main

import (
	"os"

	"github.com/elves/rope/pkg/ropecheck"
)

func main() {
	os.Exit(ropecheck.Main([3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args))
}
