package logging

import (
	"github.com/pkg/errors"
)

// Level represents a log level. Levels are ordered so that a logger configured
// at a given level emits messages at that level and all lower levels.
type Level uint

const (
	// LevelDisabled indicates that logging is completely disabled.
	LevelDisabled Level = iota
	// LevelError indicates that only errors are logged.
	LevelError
	// LevelWarn indicates that errors and warnings are logged.
	LevelWarn
	// LevelInfo indicates that basic execution information is logged (in
	// addition to errors and warnings).
	LevelInfo
	// LevelDebug indicates that diagnostic information (such as path
	// resolution fallbacks) is logged in addition to everything else.
	LevelDebug
)

// levelNames maps levels to their textual names.
var levelNames = [...]string{
	LevelDisabled: "disabled",
	LevelError:    "error",
	LevelWarn:     "warn",
	LevelInfo:     "info",
	LevelDebug:    "debug",
}

// NameToLevel converts the name of a log level to the corresponding Level. It
// returns false if the name is invalid, in which case LevelDisabled is
// returned.
func NameToLevel(name string) (Level, bool) {
	for level, levelName := range levelNames {
		if levelName == name {
			return Level(level), true
		}
	}
	return LevelDisabled, false
}

// String returns the name of the level.
func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// Set implements pflag.Value.Set, allowing levels to be used as flag values.
func (l *Level) Set(name string) error {
	level, ok := NameToLevel(name)
	if !ok {
		return errors.Errorf("invalid log level: %s", name)
	}
	*l = level
	return nil
}

// Type implements pflag.Value.Type.
func (l *Level) Type() string {
	return "level"
}
