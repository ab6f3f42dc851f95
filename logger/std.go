package logger

// std backs the package-level functions.
var std = NewDefault()

// Default returns the Logger used by the package-level functions.
func Default() *Logger { return std }

// Init reconfigures the package-level Logger. Handles returned by Default
// stay valid and observe the new configuration.
func Init(config Config) {
	std.apply(config)
}

// SetThreshold replaces the package-level Logger's threshold.
func SetThreshold(level Level) { std.SetThreshold(level) }

// SetDefaultOrigin replaces the package-level Logger's default origin.
func SetDefaultOrigin(origin string) { std.SetDefaultOrigin(origin) }

// Log prints message as kind k through the package-level Logger.
func Log(message string, k Kind) { std.Log(message, k) }

// LogWithOrigin prints message as kind k with an explicit origin through
// the package-level Logger.
func LogWithOrigin(message string, k Kind, origin string) { std.LogWithOrigin(message, k, origin) }

// Infof logs an informational message formatted with fmt.Sprintf.
func Infof(format string, v ...any) { std.Infof(format, v...) }

// Warnf logs a warning formatted with fmt.Sprintf.
func Warnf(format string, v ...any) { std.Warnf(format, v...) }

// Errorf logs an error formatted with fmt.Sprintf.
func Errorf(format string, v ...any) { std.Errorf(format, v...) }

// Debugf logs a debug message formatted with fmt.Sprintf.
func Debugf(format string, v ...any) { std.Debugf(format, v...) }
