// Package slog provides logging decorators for guidedoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/guidedoc"
)

// Ensure LoggingProcessor implements guidedoc.DocumentProcessor.
var _ guidedoc.DocumentProcessor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a DocumentProcessor with structured logging of
// processing outcomes.
type LoggingProcessor struct {
	next   guidedoc.DocumentProcessor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next guidedoc.DocumentProcessor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// Process delegates to the wrapped processor and logs duration and the
// resulting quality signal.
func (p *LoggingProcessor) Process(ctx context.Context, raw guidedoc.RawDocument) (*guidedoc.ProcessedDocument, error) {
	begin := time.Now()

	doc, err := p.next.Process(ctx, raw)
	if err != nil {
		p.logger.Error("document processing failed",
			"section", raw.Section.ID,
			"url", raw.Section.URL,
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}

	p.logger.Info("document processed",
		"section", raw.Section.ID,
		"platform", raw.Section.Platform,
		"score", doc.Quality.Score,
		"fallback", doc.Quality.IsFallback,
		"length", doc.Quality.Length,
		"duration", time.Since(begin),
	)

	return doc, nil
}
