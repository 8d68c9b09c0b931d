package mock

import (
	"context"

	"github.com/fwojciec/guidedoc"
)

var _ guidedoc.DocumentProcessor = (*DocumentProcessor)(nil)

// DocumentProcessor is a mock implementation of guidedoc.DocumentProcessor.
type DocumentProcessor struct {
	ProcessFn func(ctx context.Context, raw guidedoc.RawDocument) (*guidedoc.ProcessedDocument, error)
}

func (p *DocumentProcessor) Process(ctx context.Context, raw guidedoc.RawDocument) (*guidedoc.ProcessedDocument, error) {
	return p.ProcessFn(ctx, raw)
}
