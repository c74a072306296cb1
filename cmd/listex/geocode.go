package main

import (
	"fmt"
	"os"

	"github.com/fwojciec/listex"
	lxhttp "github.com/fwojciec/listex/http"
	lxslog "github.com/fwojciec/listex/slog"
)

// Run executes the geocode command.
func (c *GeocodeCmd) Run(deps *Dependencies) error {
	apiKey := os.Getenv("GOOGLE_MAPS_API_KEY")
	if apiKey == "" {
		fmt.Fprintln(deps.Stderr, "GOOGLE_MAPS_API_KEY environment variable not set")
		return listex.Errorf(listex.EUNAVAILABLE, "GOOGLE_MAPS_API_KEY not set")
	}

	geocoder := lxslog.NewLoggingGeocoder(lxhttp.NewGeocoder(apiKey), deps.Logger)

	coords, err := geocoder.Geocode(deps.Ctx, c.Address)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%g,%g\n", coords.Latitude, coords.Longitude)
	return nil
}
