package listex

import "time"

// Listing is the canonical record extracted from one listing page. Every
// field is independently optional: an empty string (or nil coordinate)
// means "not determined" and is omitted from the JSON encoding, never
// emitted as a placeholder.
//
// Price holds only digits and at most one decimal point; currency symbols,
// thousands separators and whitespace are stripped during reconciliation.
// Latitude and Longitude are either both set or both nil.
type Listing struct {
	ID           string    `json:"id,omitempty"`
	SourceURL    string    `json:"sourceUrl,omitempty"`
	Title        string    `json:"title,omitempty"`
	Address      string    `json:"address,omitempty"`
	Description  string    `json:"description,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	Price        string    `json:"price,omitempty"`
	Beds         string    `json:"beds,omitempty"`
	Baths        string    `json:"baths,omitempty"`
	Sqft         string    `json:"sqft,omitempty"`
	PropertyType string    `json:"propertyType,omitempty"`
	YearBuilt    string    `json:"yearBuilt,omitempty"`
	GarageSpaces string    `json:"garageSpaces,omitempty"`
	Levels       string    `json:"levels,omitempty"`
	LotSize      string    `json:"lotSize,omitempty"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	ExtractedAt  time.Time `json:"extractedAt,omitzero"`
}

// Validate returns an error if the listing contains invalid fields.
func (l *Listing) Validate() error {
	if l.SourceURL == "" {
		return Errorf(EINVALID, "listing source URL required")
	}
	if (l.Latitude == nil) != (l.Longitude == nil) {
		return Errorf(EINVALID, "listing coordinates must be a complete pair")
	}
	return nil
}

// Source identifies the extraction technique that produced an Extraction.
type Source string

// Extraction sources, in the order the pipeline runs them.
const (
	SourceMarkup       Source = "markup"        // embedded JSON-LD structured data
	SourceDOM          Source = "dom"           // meta tags and price-bearing selectors
	SourceModelPrice   Source = "model_price"   // price-only language-model call
	SourceModelGeneral Source = "model_general" // general language-model call
)

// Extraction holds the subset of listing fields one technique recovered
// from a page. Every field is optional; an empty string means the
// technique found nothing for that field. Latitude and Longitude carry the
// raw source text; parsing happens during reconciliation.
type Extraction struct {
	Source       Source
	Title        string
	Address      string
	Description  string
	ImageURL     string
	Price        string
	Beds         string
	Baths        string
	Sqft         string
	PropertyType string
	YearBuilt    string
	GarageSpaces string
	Levels       string
	LotSize      string
	Latitude     string
	Longitude    string
}

// IsEmpty reports whether the extraction recovered no fields at all.
func (e *Extraction) IsEmpty() bool {
	if e == nil {
		return true
	}
	return *e == Extraction{Source: e.Source}
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}
