package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/listex"
	"golang.org/x/time/rate"
)

// DefaultGeocodeURL is the Google Geocoding API endpoint.
const DefaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// DefaultGeocodeTimeout is the default timeout for geocoding requests.
const DefaultGeocodeTimeout = 10 * time.Second

// defaultGeocodeRate caps requests per second against the geocoding API.
const defaultGeocodeRate = 10

// Ensure Geocoder implements listex.Geocoder at compile time.
var _ listex.Geocoder = (*Geocoder)(nil)

// Geocoder resolves free-text addresses into coordinates using the Google
// Geocoding API. Requests are rate limited.
type Geocoder struct {
	client  *http.Client
	limiter *rate.Limiter
	apiKey  string
	baseURL string
}

// GeocoderOption configures a Geocoder.
type GeocoderOption func(*Geocoder)

// WithGeocodeURL overrides the API endpoint. Used in tests.
func WithGeocodeURL(u string) GeocoderOption {
	return func(g *Geocoder) {
		g.baseURL = u
	}
}

// WithGeocodeRate sets the request rate limit in requests per second.
func WithGeocodeRate(rps float64) GeocoderOption {
	return func(g *Geocoder) {
		g.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewGeocoder creates a new Geocoder with the given API key.
func NewGeocoder(apiKey string, opts ...GeocoderOption) *Geocoder {
	g := &Geocoder{
		client:  &http.Client{Timeout: DefaultGeocodeTimeout},
		limiter: rate.NewLimiter(rate.Limit(defaultGeocodeRate), 1),
		apiKey:  apiKey,
		baseURL: DefaultGeocodeURL,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// geocodeResponse is the JSON response from the Google Geocoding API.
type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Geocode returns the coordinates of the first result for the address.
// Returns ENOTFOUND when the service has no match and EUNAVAILABLE when
// the key is missing or the service misbehaves.
func (g *Geocoder) Geocode(ctx context.Context, address string) (*listex.Coordinates, error) {
	if g.apiKey == "" {
		return nil, listex.Errorf(listex.EUNAVAILABLE, "geocoding API key not configured")
	}
	if strings.TrimSpace(address) == "" {
		return nil, listex.Errorf(listex.EINVALID, "address required")
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{
		"address": {address},
		"key":     {g.apiKey},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, listex.Errorf(listex.EINTERNAL, "build geocoding request: %v", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, listex.Errorf(listex.EUNAVAILABLE, "geocoding request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, listex.Errorf(listex.EUNAVAILABLE, "geocoding HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, listex.Errorf(listex.EUNAVAILABLE, "read geocoding response: %v", err)
	}

	var decoded geocodeResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, listex.Errorf(listex.EUNAVAILABLE, "parse geocoding response: %v", err)
	}

	if decoded.Status != "OK" || len(decoded.Results) == 0 {
		return nil, listex.Errorf(listex.ENOTFOUND, "no geocoding result for %q: %s %s", address, decoded.Status, decoded.ErrorMessage)
	}

	location := decoded.Results[0].Geometry.Location
	return &listex.Coordinates{Latitude: location.Lat, Longitude: location.Lng}, nil
}
