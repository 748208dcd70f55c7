// Package logger wraps the process-wide zerolog logger used by every
// component. Export runs are quiet by default; --verbose drops the level to
// debug so skipped records and files become visible.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the shared logger instance.
var Log zerolog.Logger

func init() {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	Log = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

// SetVerbose switches the global level between warn (default) and debug.
func SetVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
