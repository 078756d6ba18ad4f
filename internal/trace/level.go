package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	// LevelOff disables tracing.
	LevelOff     Level = iota // no tracing
	LevelError                // only the ring dump after a failed command
	LevelCommand              // command boundaries
	LevelFile                 // per-file work
	LevelRecord               // everything including single readings
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelCommand:
		return "command"
	case LevelFile:
		return "file"
	case LevelRecord:
		return "record"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off", "":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "command":
		return LevelCommand, nil
	case "file":
		return LevelFile, nil
	case "record":
		return LevelRecord, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|command|file|record)", s)
	}
}

// ShouldEmit returns true if the given scope should emit at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelCommand:
		return scope <= ScopeCommand
	case LevelFile:
		return scope <= ScopeFile
	case LevelRecord:
		return true
	default:
		return false
	}
}

// keeps reports whether a span at scope is worth building at all. LevelError
// keeps command and file spans for the ring dump without streaming them.
func (l Level) keeps(scope Scope) bool {
	if l == LevelError {
		return scope <= ScopeFile
	}
	return l.ShouldEmit(scope)
}
