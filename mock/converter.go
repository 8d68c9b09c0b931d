package mock

import "github.com/fwojciec/guidedoc"

var _ guidedoc.Converter = (*Converter)(nil)

// Converter is a mock implementation of guidedoc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
