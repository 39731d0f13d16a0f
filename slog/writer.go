package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/artparse"
)

// Ensure LoggingResultWriter implements artparse.ResultWriter.
var _ artparse.ResultWriter = (*LoggingResultWriter)(nil)

// LoggingResultWriter wraps a ResultWriter with logging.
type LoggingResultWriter struct {
	next   artparse.ResultWriter
	logger *slog.Logger
}

// NewLoggingResultWriter creates a new LoggingResultWriter.
func NewLoggingResultWriter(next artparse.ResultWriter, logger *slog.Logger) *LoggingResultWriter {
	return &LoggingResultWriter{next: next, logger: logger}
}

// WriteResult delegates to the wrapped writer and logs the operation.
func (w *LoggingResultWriter) WriteResult(ctx context.Context, name string, result *artparse.Result) (err error) {
	defer func(begin time.Time) {
		var count int
		if result != nil {
			count = len(result.Artworks)
		}
		w.logger.Info("result write",
			"name", name,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteResult(ctx, name, result)
}
