package cli

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// newLogger creates a console logger on stderr. The --verbose flag
// lowers the level to debug; otherwise only warnings and errors are
// shown so command output stays clean.
func newLogger() zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if fi, err := os.Stderr.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
		noColor = true
	}

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}
