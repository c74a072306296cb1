package goquery_test

import (
	"strings"
	"testing"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/listex"
	lxquery "github.com/fwojciec/listex/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *gq.Document {
	t.Helper()
	doc, err := gq.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractStructured(t *testing.T) {
	t.Parallel()

	t.Run("extracts fields from a residential block", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<script type="application/ld+json">
{
  "@context": "https://schema.org",
  "@type": "SingleFamilyResidence",
  "name": "Charming Colonial",
  "description": "A lovely four bedroom home.",
  "image": ["https://cdn.example.com/photo1.jpg", "https://cdn.example.com/photo2.jpg"],
  "address": {
    "streetAddress": "123 Main St",
    "addressLocality": "Springfield",
    "addressRegion": "IL",
    "postalCode": "62704"
  },
  "geo": {"latitude": 39.7817, "longitude": -89.6501},
  "offers": {"price": 450000},
  "numberOfBedrooms": 4,
  "numberOfBathroomsTotal": 2.5,
  "floorSize": {"value": 1750, "unitCode": "FTK"},
  "yearBuilt": 1995
}
</script>
</head><body></body></html>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, listex.SourceMarkup, result.Source)
		assert.Equal(t, "Charming Colonial", result.Title)
		assert.Equal(t, "A lovely four bedroom home.", result.Description)
		assert.Equal(t, "https://cdn.example.com/photo1.jpg", result.ImageURL)
		assert.Equal(t, "123 Main St, Springfield, IL, 62704", result.Address)
		assert.Equal(t, "39.7817", result.Latitude)
		assert.Equal(t, "-89.6501", result.Longitude)
		assert.Equal(t, "450000", result.Price)
		assert.Equal(t, "4", result.Beds)
		assert.Equal(t, "2.5", result.Baths)
		assert.Equal(t, "1750", result.Sqft)
		assert.Equal(t, "1995", result.YearBuilt)
		assert.Equal(t, "SingleFamilyResidence", result.PropertyType)
	})

	t.Run("type match is case-insensitive", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">{"@type": "CONDO", "name": "Unit 4B"}</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "Unit 4B", result.Title)
	})

	t.Run("skips non-residential blocks", func(t *testing.T) {
		t.Parallel()

		html := `
<script type="application/ld+json">{"@type": "Organization", "name": "Acme Realty"}</script>
<script type="application/ld+json">{"@type": "Apartment", "name": "The Loft"}</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "The Loft", result.Title)
	})

	t.Run("only the first matching block is used", func(t *testing.T) {
		t.Parallel()

		html := `
<script type="application/ld+json">{"@type": "House", "name": "First House", "offers": {"price": "100"}}</script>
<script type="application/ld+json">{"@type": "House", "name": "Second House", "offers": {"price": "200"}}</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "First House", result.Title)
		assert.Equal(t, "100", result.Price)
	})

	t.Run("malformed block is skipped without aborting", func(t *testing.T) {
		t.Parallel()

		html := `
<script type="application/ld+json">{not valid json at all</script>
<script type="application/ld+json">{"@type": "House", "name": "Still Found"}</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "Still Found", result.Title)
	})

	t.Run("page without markup yields empty extraction", func(t *testing.T) {
		t.Parallel()

		result := lxquery.ExtractStructured(parseDoc(t, `<html><body><p>hi</p></body></html>`))

		assert.True(t, result.IsEmpty())
	})

	t.Run("malformed markup only yields empty extraction", func(t *testing.T) {
		t.Parallel()

		result := lxquery.ExtractStructured(parseDoc(t, `<script type="application/ld+json">{{{</script>`))

		assert.True(t, result.IsEmpty())
	})

	t.Run("handles an array of blocks", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">[
{"@type": "BreadcrumbList"},
{"@type": "SingleFamilyResidence", "name": "From Array"}
]</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "From Array", result.Title)
	})

	t.Run("address as plain string passes through", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">{"@type": "House", "address": "789 Pine Rd, Portland, OR"}</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "789 Pine Rd, Portland, OR", result.Address)
	})

	t.Run("address flattening omits empty parts", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">
{"@type": "House", "address": {"streetAddress": "12 Elm St", "postalCode": "02134"}}</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "12 Elm St, 02134", result.Address)
	})

	t.Run("single image string passes through", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">{"@type": "House", "image": "https://cdn.example.com/only.jpg"}</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "https://cdn.example.com/only.jpg", result.ImageURL)
	})

	t.Run("offers as a list uses the first entry", func(t *testing.T) {
		t.Parallel()

		html := `<script type="application/ld+json">
{"@type": "House", "offers": [{"price": "350000"}, {"price": "999"}]}</script>`

		result := lxquery.ExtractStructured(parseDoc(t, html))

		assert.Equal(t, "350000", result.Price)
	})
}
