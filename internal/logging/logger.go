// Package logging constructs the application's zerolog loggers.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a JSON logger writing to stdout, tagged with a role label so
// log lines from different components can be filtered apart.
func New(role string) zerolog.Logger {
	return zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Logger()
}

// Nop returns a logger that discards everything; intended for tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
