package logging

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. Loggers write complete lines
// to their output and are safe for concurrent usage, including between a
// logger and its subloggers.
type Logger struct {
	// prefix is any prefix specified for the logger.
	prefix string
	// level is the maximum level of messages that are emitted.
	level Level
	// output is the destination for log lines.
	output io.Writer
	// lock serializes writes to output. It is shared with subloggers.
	lock *sync.Mutex
}

// NewLogger creates a new root logger that emits messages up to and including
// the specified level to output.
func NewLogger(level Level, output io.Writer) *Logger {
	return &Logger{
		level:  level,
		output: output,
		lock:   &sync.Mutex{},
	}
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		prefix: prefix,
		level:  l.level,
		output: l.output,
		lock:   l.lock,
	}
}

// Level returns the logger's level. A nil logger is disabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// write is the internal logging method.
func (l *Logger) write(level Level, line string) {
	// Check whether or not this message should be emitted.
	if l == nil || level > l.level {
		return
	}

	// Add a prefix if necessary and ensure that the line is terminated.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}

	// Log.
	l.lock.Lock()
	defer l.lock.Unlock()
	io.WriteString(l.output, line)
}

// Infof logs information with semantics equivalent to fmt.Printf.
func (l *Logger) Infof(format string, v ...any) {
	l.write(LevelInfo, fmt.Sprintf(format, v...))
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only if
// the logger is at the debug level.
func (l *Logger) Debugf(format string, v ...any) {
	l.write(LevelDebug, fmt.Sprintf(format, v...))
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	l.write(LevelWarn, color.YellowString("Warning: %v", err))
}
