package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/toolbox"
)

// Ensure LoggingExtractor implements toolbox.ContentExtractor.
var _ toolbox.ContentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a ContentExtractor with logging. Failed
// extractions are logged at warn level.
type LoggingExtractor struct {
	next   toolbox.ContentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next toolbox.ContentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(content string, typ toolbox.ExtractType, opts toolbox.ExtractOptions) (result *toolbox.ExtractionResult) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if !result.Success {
			level = slog.LevelWarn
		}
		e.logger.Log(context.Background(), level, "extract",
			"type", typ,
			"bytes", len(content),
			"success", result.Success,
			"duration", time.Since(begin),
			"err", result.Error,
		)
	}(time.Now())
	return e.next.Extract(content, typ, opts)
}
