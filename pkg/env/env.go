// Package env keeps names of environment variables with special significance to
// the programs in this module.
package env

// Environment variables with special significance.
const (
	// Path of the database where ropecheck keeps the history of runs; the
	// -db flag takes precedence.
	ROPECHECK_DB = "ROPECHECK_DB"
	// When non-empty, disables colored output. See https://no-color.org.
	NO_COLOR = "NO_COLOR"
)
