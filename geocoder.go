package listex

import "context"

// Geocoder resolves a free-text address into coordinates.
type Geocoder interface {
	// Geocode returns the best coordinate match for the address.
	// Returns ENOTFOUND if the service has no match and EUNAVAILABLE if
	// the service is not configured or unreachable.
	Geocode(ctx context.Context, address string) (*Coordinates, error)
}
