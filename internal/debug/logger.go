// Package debug is a thin facade over zerolog for optional diagnostic
// logging. Output is discarded unless SetOutput is called, so render-path
// call sites stay cheap in normal operation.
package debug

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

var (
	enabled bool
	logger  = zerolog.New(io.Discard)
)

// SetOutput enables debug logging to the given destination
func SetOutput(w io.Writer) {
	logger = zerolog.New(w).With().Timestamp().Logger()
	enabled = true
}

// Log writes a formatted debug message
func Log(format string, args ...interface{}) {
	if !enabled {
		return
	}
	logger.Debug().Msg(fmt.Sprintf(format, args...))
}

// Event starts a structured debug event for call sites that want fields
// instead of a formatted message
func Event() *zerolog.Event {
	return logger.Debug()
}

// Enabled returns true if debug logging is enabled
func Enabled() bool {
	return enabled
}
