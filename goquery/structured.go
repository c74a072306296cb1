// Package goquery provides goquery-based extraction of listing fields
// from parsed HTML documents: schema.org structured markup and heuristic
// DOM selectors.
package goquery

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/listex"
)

// residentialType matches schema.org @type values that describe a
// residential property.
var residentialType = regexp.MustCompile(`(?i)House|Residence|Apartment|Condo`)

// ExtractStructured scans the document's JSON-LD blocks in document order
// and returns the fields of the first block whose declared type looks
// residential. Malformed blocks are common in the wild and are skipped.
// A page without usable markup yields an empty extraction, never an error.
func ExtractStructured(doc *goquery.Document) *listex.Extraction {
	result := &listex.Extraction{Source: listex.SourceMarkup}

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return true
		}

		blocks, ok := decodeBlocks(text)
		if !ok {
			return true
		}

		for i := range blocks {
			b := &blocks[i]
			if !residentialType.MatchString(string(b.Type)) {
				continue
			}
			populate(result, b)
			return false // only the first matching block is used
		}
		return true
	})

	return result
}

// decodeBlocks parses a JSON-LD payload, which is either a single object
// or an array of objects.
func decodeBlocks(text string) ([]ldProperty, bool) {
	var blocks []ldProperty
	if err := json.Unmarshal([]byte(text), &blocks); err == nil {
		return blocks, true
	}
	var single ldProperty
	if err := json.Unmarshal([]byte(text), &single); err == nil {
		return []ldProperty{single}, true
	}
	return nil, false
}

func populate(result *listex.Extraction, b *ldProperty) {
	result.PropertyType = string(b.Type)
	result.Title = b.Name
	result.Description = b.Description
	result.ImageURL = string(b.Image)
	result.Address = b.Address.String()
	result.Beds = string(b.Beds)
	result.Baths = string(b.Baths)
	result.YearBuilt = string(b.YearBuilt)
	if b.Geo != nil {
		result.Latitude = string(b.Geo.Latitude)
		result.Longitude = string(b.Geo.Longitude)
	}
	if b.Offers != nil {
		result.Price = string(b.Offers.Price)
	}
	if b.FloorSize != nil {
		result.Sqft = string(b.FloorSize.Value)
	}
}

// ldProperty is the subset of a schema.org block the extractor reads.
// Fields whose JSON encoding varies across providers use the lenient
// types below.
type ldProperty struct {
	Type        flexString `json:"@type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Image       flexString `json:"image"`
	Address     ldAddress  `json:"address"`
	Geo         *ldGeo     `json:"geo"`
	Offers      *ldOffers  `json:"offers"`
	Beds        flexString `json:"numberOfBedrooms"`
	Baths       flexString `json:"numberOfBathroomsTotal"`
	FloorSize   *ldFloor   `json:"floorSize"`
	YearBuilt   flexString `json:"yearBuilt"`
}

type ldGeo struct {
	Latitude  flexString `json:"latitude"`
	Longitude flexString `json:"longitude"`
}

type ldFloor struct {
	Value flexString `json:"value"`
}

// ldOffers tolerates both a single offer object and a list of offers
// (first entry wins).
type ldOffers struct {
	Price flexString `json:"price"`
}

func (o *ldOffers) UnmarshalJSON(data []byte) error {
	type plain ldOffers
	var single plain
	if err := json.Unmarshal(data, &single); err == nil {
		*o = ldOffers(single)
		return nil
	}
	var list []plain
	if err := json.Unmarshal(data, &list); err == nil && len(list) > 0 {
		*o = ldOffers(list[0])
	}
	return nil
}

// ldAddress is either a plain string or a schema.org PostalAddress. The
// structured form flattens to a comma-joined string of street, locality,
// region and postal code, omitting empty parts.
type ldAddress struct {
	Street   string `json:"streetAddress"`
	Locality string `json:"addressLocality"`
	Region   string `json:"addressRegion"`
	Postal   string `json:"postalCode"`

	text string
}

func (a *ldAddress) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &a.text)
	}
	type plain ldAddress
	var p plain
	if err := json.Unmarshal(data, &p); err == nil {
		p.text = a.text
		*a = ldAddress(p)
	}
	return nil
}

func (a *ldAddress) String() string {
	if a.text != "" {
		return a.text
	}
	parts := make([]string, 0, 4)
	for _, p := range []string{a.Street, a.Locality, a.Region, a.Postal} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// flexString decodes a JSON value that may be a string, a number, or a
// list of either (first entry wins), which is how schema.org fields show
// up in the wild. Values of any other shape decode to an empty string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = flexString(flatten(v))
	return nil
}

func flatten(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []any:
		if len(t) > 0 {
			return flatten(t[0])
		}
	}
	return ""
}
