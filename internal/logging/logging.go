// Package logging provides a single stderr logger for the CLI and
// daemon front-ends, gated by the PIXELSEG_LOG_LEVEL environment
// variable — the same shape as the teacher's IMAGE_MCP_LOG_LEVEL gate,
// renamed for this project.
package logging

import (
	"log"
	"os"
)

// Logger wraps the standard library's log.Logger with a debug gate so
// call sites don't need to re-check the environment variable themselves.
type Logger struct {
	*log.Logger
	debug bool
}

// New returns a Logger writing to stderr with date/time/shortfile flags,
// matching the teacher's cmd/image-mcp main.go setup. Debug-level
// messages are only emitted when PIXELSEG_LOG_LEVEL=debug.
func New() *Logger {
	return &Logger{
		Logger: log.New(os.Stderr, "", log.Ldate|log.Ltime|log.Lshortfile),
		debug:  os.Getenv("PIXELSEG_LOG_LEVEL") == "debug",
	}
}

// Debugf logs a formatted message only when debug logging is enabled.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.debug {
		l.Printf(format, args...)
	}
}
