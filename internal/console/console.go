// Package console provides the process-wide leveled logger used by the CLI
// and generation pipeline.
package console

import (
	"fmt"
	"io"
	"log"
	"os"
)

// ConsoleLogger writes leveled messages to an output writer. Debug output is
// suppressed unless DebugLevel is raised above zero.
type ConsoleLogger struct {
	DebugLevel int
	out        *log.Logger
}

// Logger is the shared logger instance.
var Logger = &ConsoleLogger{
	out: log.New(os.Stdout, "", log.LstdFlags),
}

// SetOutput redirects log output, primarily for tests and quiet mode.
func (l *ConsoleLogger) SetOutput(w io.Writer) {
	l.out = log.New(w, "", log.LstdFlags)
}

// Debug logs a formatted message when debug output is enabled.
func (l *ConsoleLogger) Debug(format string, v ...interface{}) {
	if l.DebugLevel < 1 {
		return
	}
	l.out.Printf("DEBUG: %s", fmt.Sprintf(format, v...))
}

// Info logs a formatted informational message.
func (l *ConsoleLogger) Info(format string, v ...interface{}) {
	l.out.Printf(format, v...)
}

// Error logs a formatted error message.
func (l *ConsoleLogger) Error(format string, v ...interface{}) {
	l.out.Printf("ERROR: %s", fmt.Sprintf(format, v...))
}

// Printf implements the Debugger interface used by the services.
func (l *ConsoleLogger) Printf(format string, v ...interface{}) {
	l.Debug(format, v...)
}
