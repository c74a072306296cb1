package mock

import (
	"context"

	"github.com/fwojciec/listex"
)

var _ listex.Geocoder = (*Geocoder)(nil)

// Geocoder is a mock implementation of listex.Geocoder.
type Geocoder struct {
	GeocodeFn func(ctx context.Context, address string) (*listex.Coordinates, error)
}

func (g *Geocoder) Geocode(ctx context.Context, address string) (*listex.Coordinates, error) {
	return g.GeocodeFn(ctx, address)
}
