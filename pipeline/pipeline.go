// Package pipeline provides processing orchestration. It composes the
// sanitizer, converter, and the pure text transforms into a single
// document-processing pipeline, and runs batches of independent documents
// concurrently.
package pipeline

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/guidedoc"
	"golang.org/x/sync/errgroup"
)

// Ensure Pipeline implements guidedoc.DocumentProcessor at compile time.
var _ guidedoc.DocumentProcessor = (*Pipeline)(nil)

// Pipeline turns raw scraped pages into processed documents. Every stage is
// a pure transform over the document's own text, so one Pipeline value is
// safe for concurrent use.
type Pipeline struct {
	Sanitizer guidedoc.Sanitizer
	Converter guidedoc.Converter
	Config    guidedoc.Config

	// Now supplies the front matter timestamp. Defaults to time.Now.
	Now func() time.Time

	// Concurrency bounds ProcessAll workers. Defaults to 10.
	Concurrency int
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types for ProcessAll.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during batch processing.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	SectionID string
	Error     error
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Process runs the full pipeline on one document: sanitize, convert,
// normalize, then derive keywords, related sections, quality metrics, and
// front matter. Stage failures degrade to empty intermediate text rather
// than propagate; the quality assessor turns that into a low, fallback
// signal the caller can act on. Errors are returned only for invalid
// section metadata and cancelled contexts.
func (p *Pipeline) Process(ctx context.Context, raw guidedoc.RawDocument) (*guidedoc.ProcessedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := raw.Section.Validate(); err != nil {
		return nil, err
	}

	sanitized, err := p.Sanitizer.Sanitize(raw.HTML)
	if err != nil {
		sanitized = ""
	}

	rawMarkdown, err := p.Converter.Convert(sanitized)
	if err != nil {
		rawMarkdown = ""
	}

	cleaned := guidedoc.Normalize(rawMarkdown, p.Config)
	keywords := guidedoc.ExtractKeywords(cleaned, raw.Section, p.Config)
	related := guidedoc.ExtractRelatedSections(cleaned, p.Config)
	quality := guidedoc.AssessQuality(cleaned, rawMarkdown, p.Config)
	frontMatter := guidedoc.GenerateFrontMatter(raw.Section, quality, keywords, p.now())

	return &guidedoc.ProcessedDocument{
		Section:         raw.Section,
		CleanedMarkdown: cleaned,
		FrontMatter:     frontMatter,
		Quality:         quality,
		Keywords:        keywords,
		RelatedSections: related,
		ContentHash:     fmt.Sprintf("%016x", xxhash.Sum64String(cleaned)),
	}, nil
}

// processResult holds the outcome of processing a single document.
type processResult struct {
	position  int
	sectionID string
	doc       *guidedoc.ProcessedDocument
	err       error
}

// ProcessAll processes a batch of documents concurrently, preserving input
// order in the result slice. Documents are independent, so the only
// coordination is the concurrency limit. A document that fails (invalid
// metadata) leaves a nil slot and is reported through progress; the batch
// itself only fails on context cancellation.
func (p *Pipeline) ProcessAll(ctx context.Context, docs []guidedoc.RawDocument, progress ProgressFunc) ([]*guidedoc.ProcessedDocument, error) {
	total := len(docs)
	if total == 0 {
		return nil, nil
	}

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 10
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan processResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, raw := range docs {
			g.Go(func() error {
				doc, err := p.Process(gctx, raw)
				resultCh <- processResult{
					position:  i,
					sectionID: raw.Section.ID,
					doc:       doc,
					err:       err,
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]*guidedoc.ProcessedDocument, total)
	var completed atomic.Int64

	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result.doc

		if progress != nil {
			event := ProgressEvent{
				Completed: int(completed.Load()),
				Total:     total,
				SectionID: result.sectionID,
			}
			if result.err != nil {
				event.Type = ProgressFailed
				event.Error = result.err
			} else {
				event.Type = ProgressCompleted
			}
			progress(event)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results, nil
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
