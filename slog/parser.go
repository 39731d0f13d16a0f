// Package slog provides log/slog decorators for artparse services.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/artparse"
)

// Ensure LoggingParser implements artparse.Parser.
var _ artparse.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with logging of each parse pass.
type LoggingParser struct {
	next   artparse.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next artparse.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs the outcome.
func (p *LoggingParser) Parse(html string) (result *artparse.Result, err error) {
	defer func(begin time.Time) {
		var count, rejected int
		if result != nil {
			count = len(result.Artworks)
			rejected = result.Rejected
		}
		p.logger.Info("artwork parse",
			"bytes", len(html),
			"count", count,
			"rejected", rejected,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(html)
}
