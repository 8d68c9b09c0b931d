package mock

import (
	"context"

	"github.com/fwojciec/guidedoc"
)

var _ guidedoc.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is a mock implementation of guidedoc.DocumentStore.
type DocumentStore struct {
	SaveFn   func(ctx context.Context, doc *guidedoc.ProcessedDocument) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *DocumentStore) Save(ctx context.Context, doc *guidedoc.ProcessedDocument) error {
	return s.SaveFn(ctx, doc)
}

func (s *DocumentStore) Commit() error {
	return s.CommitFn()
}

func (s *DocumentStore) Abort() error {
	return s.AbortFn()
}
