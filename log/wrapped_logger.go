package log

// WrappedLogger is the Logger used internally by the containers, it tags every message with the owning container's
// prefix, for example '(pq)', and discards everything when the user hasn't supplied a Logger.
type WrappedLogger struct {
	logger Logger
	prefix string
}

// NewWrappedLogger returns a WrappedLogger which prepends prefix (when non-empty) to every message before passing it on
// to logger.
func NewWrappedLogger(logger Logger, prefix string) WrappedLogger {
	if logger == nil {
		logger = nopLogger{}
	}

	return WrappedLogger{logger: logger, prefix: prefix}
}

// Log implements the Logger interface.
func (w WrappedLogger) Log(level Level, format string, args ...any) {
	if w.prefix != "" {
		format = w.prefix + " " + format
	}

	w.logger.Log(level, format, args...)
}

// Tracef logs the provided information at the trace level.
func (w WrappedLogger) Tracef(format string, args ...any) {
	w.Log(LevelTrace, format, args...)
}
