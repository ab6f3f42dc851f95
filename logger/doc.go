// Package logger prints timestamped, leveled and optionally colorized
// lines to the console, filtered by a configurable threshold.
//
// # Output
//
// Every accepted message becomes one line:
//
//	[2024-05-01 09:30:00] [INFO]    [core]: starting up
//	[2024-05-01 09:30:01] [WARNING] [core]: disk almost full
//	[2024-05-01 09:30:02] [ERROR]  : no origin configured
//
// Timestamps are UTC. Labels are padded to a common width so origins line up.
// The [origin] segment is left out when the origin is empty.
//
// # Colors
//
// With ColorAuto (the default) ANSI colors are written only when the output
// is a terminal: INFO green, WARNING yellow, ERROR bright red, DEBUG blue and
// the origin bright white. ColorAlways and ColorNever force the choice.
// No environment variables are consulted.
//
// # Thresholds
//
// Levels are ordered LevelNone < LevelError < LevelWarning < LevelInfo < LevelFull.
// A message prints when the threshold is at least the level of its kind:
//
//	KindError   LevelError
//	KindWarning LevelWarning
//	KindInfo    LevelInfo
//	KindDebug   LevelFull
//
// KindNone never prints.
//
// # Usage
//
//	log := logger.New(logger.LevelInfo, "core")
//	log.Log("starting up", logger.KindInfo)
//	log.LogWithOrigin("listening on :8080", logger.KindInfo, "http")
//	log.Errorf("failed to connect: %v", err)
//
// Package-level functions log through a shared Logger configured by Init:
//
//	logger.Init(logger.Config{Threshold: logger.LevelFull, DefaultOrigin: "app"})
//	logger.Infof("server started on port %d", 8080)
package logger
