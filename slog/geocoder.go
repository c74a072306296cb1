package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/listex"
)

// Ensure LoggingGeocoder implements listex.Geocoder.
var _ listex.Geocoder = (*LoggingGeocoder)(nil)

// LoggingGeocoder wraps a Geocoder with debug logging.
type LoggingGeocoder struct {
	next   listex.Geocoder
	logger *slog.Logger
}

// NewLoggingGeocoder creates a new LoggingGeocoder.
func NewLoggingGeocoder(next listex.Geocoder, logger *slog.Logger) *LoggingGeocoder {
	return &LoggingGeocoder{next: next, logger: logger}
}

// Geocode delegates to the wrapped geocoder and logs the operation.
func (g *LoggingGeocoder) Geocode(ctx context.Context, address string) (coords *listex.Coordinates, err error) {
	defer func(begin time.Time) {
		g.logger.Info("geocode",
			"address", address,
			"matched", coords != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Geocode(ctx, address)
}
