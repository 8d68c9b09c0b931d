package mock

import "github.com/fwojciec/guidedoc"

var _ guidedoc.Sanitizer = (*Sanitizer)(nil)

// Sanitizer is a mock implementation of guidedoc.Sanitizer.
type Sanitizer struct {
	SanitizeFn func(html string) (string, error)
}

func (s *Sanitizer) Sanitize(html string) (string, error) {
	return s.SanitizeFn(html)
}
