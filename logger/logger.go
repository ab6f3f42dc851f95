package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// timestampLayout is the UTC date and time printed at the start of each line.
const timestampLayout = "2006-01-02 15:04:05"

// Config defines options for NewWithConfig and Init.
type Config struct {
	// Threshold is the most permissive level printed. The zero value is
	// LevelNone, which prints nothing; see DefaultConfig.
	Threshold Level
	// DefaultOrigin labels messages logged without an explicit origin.
	// Default: "" (no origin segment)
	DefaultOrigin string
	// Output receives one line per accepted message.
	// Default: nil (os.Stdout)
	Output io.Writer
	// Color selects when ANSI colors are written.
	// Default: ColorAuto (only when Output is a terminal)
	Color ColorMode
}

// DefaultConfig logs everything to os.Stdout without an origin.
func DefaultConfig() Config {
	return Config{Threshold: LevelFull}
}

// Logger prints timestamped, leveled lines for messages that pass its
// threshold. All methods are safe for concurrent use; each accepted call
// writes one whole line. Write errors are ignored.
type Logger struct {
	mu            sync.Mutex
	threshold     Level
	defaultOrigin string
	out           *log.Logger
	labels        map[Kind]lipgloss.Style
	originStyle   lipgloss.Style
	now           func() time.Time
}

// New returns a Logger writing to os.Stdout, colored when stdout is a terminal.
func New(threshold Level, defaultOrigin string) *Logger {
	return NewWithConfig(Config{Threshold: threshold, DefaultOrigin: defaultOrigin})
}

// NewDefault returns a Logger that prints every kind with no default origin.
func NewDefault() *Logger {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a Logger configured by cfg.
func NewWithConfig(cfg Config) *Logger {
	l := &Logger{now: time.Now}
	l.apply(cfg)
	return l
}

func (l *Logger) apply(cfg Config) {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	r := newRenderer(out, colorEnabled(out, cfg.Color))

	labels := make(map[Kind]lipgloss.Style, len(kindStyles))
	for kind, s := range kindStyles {
		labels[kind] = r.NewStyle().Foreground(s.color).TabWidth(lipgloss.NoTabConversion)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = cfg.Threshold
	l.defaultOrigin = cfg.DefaultOrigin
	l.out = log.New(out, "", 0)
	l.labels = labels
	l.originStyle = r.NewStyle().Foreground(lipgloss.Color("15")).TabWidth(lipgloss.NoTabConversion)
}

// SetThreshold replaces the filter threshold.
func (l *Logger) SetThreshold(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.threshold = level
}

// Threshold returns the current filter threshold.
func (l *Logger) Threshold() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.threshold
}

// SetDefaultOrigin replaces the origin used when a call does not name one.
func (l *Logger) SetDefaultOrigin(origin string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.defaultOrigin = origin
}

// DefaultOrigin returns the fallback origin.
func (l *Logger) DefaultOrigin() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.defaultOrigin
}

// Enabled reports whether a message of kind k would be printed.
func (l *Logger) Enabled(k Kind) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled(k)
}

func (l *Logger) enabled(k Kind) bool {
	if k == KindNone {
		return false
	}
	return l.threshold >= styleFor(k).required
}

// Log prints message as kind k, labelled with the default origin.
func (l *Logger) Log(message string, k Kind) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(message, k, l.defaultOrigin)
}

// LogWithOrigin prints message as kind k, labelled with origin instead of
// the default origin. An empty origin omits the origin segment.
func (l *Logger) LogWithOrigin(message string, k Kind, origin string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.write(message, k, origin)
}

// Infof logs an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	l.Log(fmt.Sprintf(format, v...), KindInfo)
}

// Warnf logs a warning formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) {
	l.Log(fmt.Sprintf(format, v...), KindWarning)
}

// Errorf logs an error formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	l.Log(fmt.Sprintf(format, v...), KindError)
}

// Debugf logs a debug message formatted with fmt.Sprintf.
func (l *Logger) Debugf(format string, v ...any) {
	l.Log(fmt.Sprintf(format, v...), KindDebug)
}

// write must be called with l.mu held.
func (l *Logger) write(message string, k Kind, origin string) {
	if !l.enabled(k) {
		return
	}
	l.out.Println(l.render(k, message, origin))
}

// render builds a line of the form
//
//	[2006-01-02 15:04:05] [LABEL]<padding> [origin]: message
func (l *Logger) render(k Kind, message, origin string) string {
	s := styleFor(k)
	label := s.label
	if style, ok := l.labels[k]; ok {
		label = style.Render(label)
	}

	var b strings.Builder
	b.WriteByte('[')
	b.WriteString(l.now().UTC().Format(timestampLayout))
	b.WriteString("] [")
	b.WriteString(label)
	b.WriteByte(']')
	b.WriteString(strings.Repeat(" ", s.padding))
	if origin != "" {
		b.WriteString(" [")
		b.WriteString(l.originStyle.Render(origin))
		b.WriteByte(']')
	}
	b.WriteString(": ")
	b.WriteString(message)
	return b.String()
}
