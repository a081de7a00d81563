package sheet

import "log/slog"

// CallEvent records metadata about a single sheet api call.
type CallEvent struct {
	Op         string
	SheetID    string
	StatusCode int
	LatencyMs  int64
	Success    bool
	ErrorCode  string
}

// Observer receives events about sheet api calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to a structured logger.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver creates an Observer that logs events to logger.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	attrs := []any{
		slog.String("op", event.Op),
		slog.String("sheet_id", event.SheetID),
		slog.Int("status_code", event.StatusCode),
		slog.Int64("latency_ms", event.LatencyMs),
	}
	if !event.Success {
		o.logger.Error("sheet_api_call", append(attrs, slog.String("error_code", event.ErrorCode))...)
		return
	}
	o.logger.Info("sheet_api_call", attrs...)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
