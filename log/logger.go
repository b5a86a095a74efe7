// Package log provides the leveled logging interface used by the containers; applications plug in their own
// implementation, by default nothing is logged.
package log

// Level is a type alias which is used to indicate the verbosity of an log statement.
type Level uint8

const (
	// LevelTrace is the most verbose log level, used for internal events such as backing storage growth.
	LevelTrace Level = iota

	// LevelDebug includes fine-grained informational events that are the most useful to debug the library.
	LevelDebug

	// LevelInfo includes informational messages at a course-grained level.
	LevelInfo

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning

	// LevelError includes error events which may still allow the library to continue running.
	LevelError

	// LevelPanic includes errors events which should lead to a panic.
	LevelPanic
)

// String returns the short, fixed width name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "TRAC"
	case LevelDebug:
		return "DEBU"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARN"
	case LevelError:
		return "ERRO"
	case LevelPanic:
		return "PNIC"
	}

	return "UNKN"
}

// Logger interface which allows applications to provide custom logger implementations.
type Logger interface {
	Log(level Level, format string, args ...any)
}

// LoggerFunc allows a plain function to be used as a Logger.
type LoggerFunc func(level Level, format string, args ...any)

// Log calls f.
func (f LoggerFunc) Log(level Level, format string, args ...any) {
	f(level, format, args...)
}

// nopLogger discards everything, it's used when the user hasn't supplied a logger.
type nopLogger struct{}

func (nopLogger) Log(_ Level, _ string, _ ...any) {}
