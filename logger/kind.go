package logger

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Kind tags an individual log call. It is distinct from Level, which
// configures the Logger's filter.
type Kind int

const (
	// KindNone is a no-op marker; messages of this kind are never printed.
	KindNone Kind = iota
	// KindInfo is an informational message.
	KindInfo
	// KindWarning is a warning.
	KindWarning
	// KindError is an error.
	KindError
	// KindDebug is a debug message, printed only at LevelFull.
	KindDebug
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "NONE"
	case KindInfo:
		return "INFO"
	case KindWarning:
		return "WARNING"
	case KindError:
		return "ERROR"
	case KindDebug:
		return "DEBUG"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// kindStyle is how a Kind is labelled, colored and aligned, and the
// threshold it needs to be printed.
type kindStyle struct {
	label    string
	color    lipgloss.TerminalColor
	padding  int
	required Level
}

// kindStyles pads every label to the width of WARNING.
var kindStyles = map[Kind]kindStyle{
	KindInfo:    {label: "INFO", color: lipgloss.Color("2"), padding: 3, required: LevelInfo},
	KindWarning: {label: "WARNING", color: lipgloss.Color("3"), padding: 0, required: LevelWarning},
	KindError:   {label: "ERROR", color: lipgloss.Color("9"), padding: 2, required: LevelError},
	KindDebug:   {label: "DEBUG", color: lipgloss.Color("4"), padding: 2, required: LevelFull},
}

// styleFor returns the style of k. Unknown kinds are labelled with their
// String form, left uncolored and treated like debug output.
func styleFor(k Kind) kindStyle {
	if s, ok := kindStyles[k]; ok {
		return s
	}
	return kindStyle{label: k.String(), required: LevelFull}
}

// KindForStatus maps an HTTP status code to a message kind.
// 5xx -> KindError, 4xx -> KindWarning, everything else -> KindInfo.
func KindForStatus(code int) Kind {
	switch {
	case code >= 500:
		return KindError
	case code >= 400:
		return KindWarning
	default:
		return KindInfo // 1xx, 2xx and 3xx redirects are informational
	}
}
