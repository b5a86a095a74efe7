package log

import (
	"context"
	"fmt"
	"log/slog"
)

const (
	// SlogLevelTrace is the 'slog' level used for trace messages, 'slog' has no equivalent so it sits below debug.
	SlogLevelTrace = slog.LevelDebug - 4

	// SlogLevelPanic is the 'slog' level used for panic messages, it sits above error.
	SlogLevelPanic = slog.LevelError + 4
)

// slogLogger adapts a 'slog.Logger' to the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger returns a Logger which formats messages and forwards them to the given 'slog.Logger'. A nil logger
// results in the default 'slog' logger being used.
func NewSlogLogger(logger *slog.Logger) Logger {
	if logger == nil {
		logger = slog.Default()
	}

	return slogLogger{logger: logger}
}

func (s slogLogger) Log(level Level, format string, args ...any) {
	s.logger.Log(context.Background(), ToSlogLevel(level), fmt.Sprintf(format, args...))
}

// ToSlogLevel maps the given level to its 'slog' counterpart.
func ToSlogLevel(level Level) slog.Level {
	switch level {
	case LevelTrace:
		return SlogLevelTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	}

	return SlogLevelPanic
}
