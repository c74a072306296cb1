package mock

import "github.com/fwojciec/listex"

var _ listex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of listex.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*listex.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*listex.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ listex.Converter = (*Converter)(nil)

// Converter is a mock implementation of listex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
