package mock

import (
	"context"

	"github.com/fwojciec/listex"
)

var _ listex.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor is a mock implementation of listex.DetailExtractor.
type DetailExtractor struct {
	ExtractPriceFn   func(ctx context.Context, pageText, pageURL string) (*listex.Extraction, error)
	ExtractDetailsFn func(ctx context.Context, pageText, pageURL string) (*listex.Extraction, error)
}

func (d *DetailExtractor) ExtractPrice(ctx context.Context, pageText, pageURL string) (*listex.Extraction, error) {
	return d.ExtractPriceFn(ctx, pageText, pageURL)
}

func (d *DetailExtractor) ExtractDetails(ctx context.Context, pageText, pageURL string) (*listex.Extraction, error) {
	return d.ExtractDetailsFn(ctx, pageText, pageURL)
}
