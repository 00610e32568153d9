package engine

import "log/slog"

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer writing to logger
// (slog.Default() when nil)
func NewLoggingObserver(logger *slog.Logger) *LoggingObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface
// It logs each event with structured fields for easy filtering and analysis
func (lo *LoggingObserver) OnEvent(event Event) {
	attrs := []any{
		slog.String("event", string(event.Type)),
		slog.String("run_id", event.RunID),
		slog.String("exercise", event.Exercise),
	}

	switch event.Type {
	case EventRunStart:
		lo.logger.Debug("exercise_lifecycle", attrs...)
	case EventRunEnd:
		lo.logger.Info("exercise_lifecycle", append(attrs,
			slog.Duration("duration", event.Duration),
			slog.Int("rows", event.Rows),
		)...)
	case EventRunError:
		lo.logger.Error("exercise_lifecycle", append(attrs,
			slog.Duration("duration", event.Duration),
			slog.Any("error", event.Err),
		)...)
	}
}
