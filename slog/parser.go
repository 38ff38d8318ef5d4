package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/toolbox"
)

// Ensure LoggingParser implements toolbox.Parser.
var _ toolbox.Parser = (*LoggingParser)(nil)

// LoggingParser wraps a Parser with debug logging.
type LoggingParser struct {
	next   toolbox.Parser
	logger *slog.Logger
}

// NewLoggingParser creates a new LoggingParser.
func NewLoggingParser(next toolbox.Parser, logger *slog.Logger) *LoggingParser {
	return &LoggingParser{next: next, logger: logger}
}

// Parse delegates to the wrapped parser and logs element counts.
func (p *LoggingParser) Parse(content string) (doc *toolbox.Document, err error) {
	defer func(begin time.Time) {
		var links, headings, paragraphs int
		if doc != nil {
			links, headings, paragraphs = len(doc.Links), doc.HeadingCount(), len(doc.Paragraphs)
		}
		p.logger.Debug("parse",
			"bytes", len(content),
			"links", links,
			"headings", headings,
			"paragraphs", paragraphs,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Parse(content)
}
