// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/elves/rope/pkg/env"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorEnabled determines whether colored output should be written to the
// given file: it must be a terminal, and $NO_COLOR must be unset or empty.
func ColorEnabled(file *os.File) bool {
	return os.Getenv(env.NO_COLOR) == "" && IsATTY(file.Fd())
}
