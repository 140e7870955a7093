package ll2utm

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger gives a logger for progress and error messages.  These go to
// stderr so they never get mixed up with records on stdout.
// quiet drops everything below error regardless of level.
func NewLogger(w io.Writer, level string, quiet bool) (*log.Logger, error) {
	var lvl, err = log.ParseLevel(level)
	if err != nil {
		return nil, &ConfigError{Field: "log-level", Reason: err.Error()}
	}

	if quiet {
		lvl = log.ErrorLevel
	}

	var logger = log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "ll2utm",
	})

	return logger, nil
}
