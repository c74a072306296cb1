package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/listex"
	"github.com/fwojciec/listex/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements listex.DetailExtractor at compile time.
var _ listex.DetailExtractor = (*gemini.Extractor)(nil)

func TestExtractor_ExtractPrice_RequiresPageText(t *testing.T) {
	t.Parallel()

	e := gemini.NewExtractor(nil, "gemini-2.5-flash") // nil client ok for this test

	_, err := e.ExtractPrice(context.Background(), "   ", "https://example.com/listing")

	require.Error(t, err)
	assert.Equal(t, listex.EINVALID, listex.ErrorCode(err))
}

func TestExtractor_ExtractDetails_RequiresPageText(t *testing.T) {
	t.Parallel()

	e := gemini.NewExtractor(nil, "gemini-2.5-flash")

	_, err := e.ExtractDetails(context.Background(), "", "https://example.com/listing")

	require.Error(t, err)
	assert.Equal(t, listex.EINVALID, listex.ErrorCode(err))
}

func TestBuildPricePrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildPricePrompt("page body", "https://example.com/listing")

	assert.Contains(t, prompt, "ASKING PRICE")
	assert.Contains(t, prompt, "https://example.com/listing")
	assert.Contains(t, prompt, "page body")
}

func TestBuildDetailsPrompt(t *testing.T) {
	t.Parallel()

	prompt := gemini.BuildDetailsPrompt("page body", "https://example.com/listing")

	assert.Contains(t, prompt, "real estate data extraction")
	assert.Contains(t, prompt, "https://example.com/listing")
	assert.Contains(t, prompt, "Garage Spaces")
	assert.Contains(t, prompt, "page body")
}

func TestPriceConfig(t *testing.T) {
	t.Parallel()

	config := gemini.PriceConfig()

	assert.Equal(t, "application/json", config.ResponseMIMEType)
	require.NotNil(t, config.ResponseSchema)
	require.Contains(t, config.ResponseSchema.Properties, "askingPrice")
	require.NotNil(t, config.ResponseSchema.Properties["askingPrice"].Nullable)
	assert.True(t, *config.ResponseSchema.Properties["askingPrice"].Nullable)
}

func TestDetailsConfig_AllFieldsNullable(t *testing.T) {
	t.Parallel()

	config := gemini.DetailsConfig()

	require.NotNil(t, config.ResponseSchema)
	fields := []string{
		"address", "askingPrice", "beds", "baths", "sqft", "propertyType",
		"yearBuilt", "garageSpaces", "levels", "lotSize", "imageUrl",
		"description", "latitude", "longitude",
	}
	assert.Len(t, config.ResponseSchema.Properties, len(fields))
	for _, f := range fields {
		require.Contains(t, config.ResponseSchema.Properties, f)
		require.NotNil(t, config.ResponseSchema.Properties[f].Nullable, f)
		assert.True(t, *config.ResponseSchema.Properties[f].Nullable, f)
	}
}

func TestParsePriceResponse(t *testing.T) {
	t.Parallel()

	t.Run("normalizes the reported price", func(t *testing.T) {
		t.Parallel()

		result, err := gemini.ParsePriceResponse(`{"askingPrice": "$2,780,000"}`)
		require.NoError(t, err)

		assert.Equal(t, listex.SourceModelPrice, result.Source)
		assert.Equal(t, "2780000", result.Price)
	})

	t.Run("null price yields empty extraction", func(t *testing.T) {
		t.Parallel()

		result, err := gemini.ParsePriceResponse(`{"askingPrice": null}`)
		require.NoError(t, err)

		assert.True(t, result.IsEmpty())
	})

	t.Run("malformed reply is an error", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParsePriceResponse("I could not find a price.")
		require.Error(t, err)
		assert.Equal(t, listex.EINTERNAL, listex.ErrorCode(err))
	})
}

func TestParseDetailsResponse(t *testing.T) {
	t.Parallel()

	t.Run("maps fields and keeps nulls empty", func(t *testing.T) {
		t.Parallel()

		result, err := gemini.ParseDetailsResponse(`{
			"address": "456 Oak Ave, Portland, OR 97205",
			"askingPrice": "780000",
			"beds": "3",
			"baths": null,
			"lotSize": "0.25 acres",
			"latitude": "45.5231",
			"longitude": "-122.6765"
		}`)
		require.NoError(t, err)

		assert.Equal(t, listex.SourceModelGeneral, result.Source)
		assert.Equal(t, "456 Oak Ave, Portland, OR 97205", result.Address)
		assert.Equal(t, "780000", result.Price)
		assert.Equal(t, "3", result.Beds)
		assert.Empty(t, result.Baths)
		assert.Equal(t, "0.25 acres", result.LotSize)
		assert.Equal(t, "45.5231", result.Latitude)
		assert.Equal(t, "-122.6765", result.Longitude)
	})

	t.Run("all nulls yield empty extraction", func(t *testing.T) {
		t.Parallel()

		result, err := gemini.ParseDetailsResponse(`{"address": null, "beds": null}`)
		require.NoError(t, err)

		assert.True(t, result.IsEmpty())
	})

	t.Run("malformed reply is an error", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.ParseDetailsResponse("not json")
		require.Error(t, err)
		assert.Equal(t, listex.EINTERNAL, listex.ErrorCode(err))
	})
}
