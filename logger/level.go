package logger

import (
	"errors"
	"fmt"
	"strings"
)

// Level is the threshold a Logger filters messages against.
// Levels are ordered from most restrictive to most permissive.
type Level int

const (
	// LevelNone disables all output.
	LevelNone Level = iota
	// LevelError prints errors only.
	LevelError
	// LevelWarning prints warnings and errors.
	LevelWarning
	// LevelInfo prints info, warnings and errors.
	LevelInfo
	// LevelFull prints everything, debug included.
	LevelFull
)

// ErrUnknownLevel is returned by ParseLevel for names it does not recognize.
var ErrUnknownLevel = errors.New("unknown log level")

// AllLevels returns every threshold, most restrictive first.
func AllLevels() []Level {
	return []Level{LevelNone, LevelError, LevelWarning, LevelInfo, LevelFull}
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelInfo:
		return "INFO"
	case LevelFull:
		return "FULL"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel parses a threshold name, ignoring case and surrounding whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "NONE", "OFF":
		return LevelNone, nil
	case "ERROR":
		return LevelError, nil
	case "WARNING", "WARN":
		return LevelWarning, nil
	case "INFO":
		return LevelInfo, nil
	case "FULL", "ALL", "DEBUG":
		return LevelFull, nil
	}
	return LevelNone, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}
