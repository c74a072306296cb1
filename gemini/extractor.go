// Package gemini implements language-model listing extraction using
// Google Gemini with schema-constrained JSON output.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/listex"
	"google.golang.org/genai"
)

// Ensure Extractor implements listex.DetailExtractor at compile time.
var _ listex.DetailExtractor = (*Extractor)(nil)

// Extractor implements listex.DetailExtractor using Google Gemini. The
// price-only and general calls are independent and safe to run
// concurrently.
type Extractor struct {
	client *genai.Client
	model  string
}

// NewExtractor creates a new Extractor using the given model.
func NewExtractor(client *genai.Client, model string) *Extractor {
	return &Extractor{client: client, model: model}
}

// ExtractPrice asks the model for exactly one field: the asking price.
func (e *Extractor) ExtractPrice(ctx context.Context, pageText, pageURL string) (*listex.Extraction, error) {
	if strings.TrimSpace(pageText) == "" {
		return nil, listex.Errorf(listex.EINVALID, "page text required")
	}

	text, err := e.generate(ctx, BuildPricePrompt(pageText, pageURL), PriceConfig())
	if err != nil {
		return nil, err
	}
	return ParsePriceResponse(text)
}

// ExtractDetails asks the model for every listing field except the price,
// plus the price as a fallback source.
func (e *Extractor) ExtractDetails(ctx context.Context, pageText, pageURL string) (*listex.Extraction, error) {
	if strings.TrimSpace(pageText) == "" {
		return nil, listex.Errorf(listex.EINVALID, "page text required")
	}

	text, err := e.generate(ctx, BuildDetailsPrompt(pageText, pageURL), DetailsConfig())
	if err != nil {
		return nil, err
	}
	return ParseDetailsResponse(text)
}

func (e *Extractor) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	result, err := e.client.Models.GenerateContent(ctx, e.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", listex.Errorf(listex.EINTERNAL, "gemini returned nil result")
	}
	return result.Text(), nil
}

// PriceConfig returns the generation config for the price-only call.
func PriceConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"askingPrice": {
					Type:        genai.TypeString,
					Nullable:    genai.Ptr(true),
					Description: "The asking price as a string of numbers, e.g., '2780000'. If no price is found, return null.",
				},
			},
		},
	}
}

// DetailsConfig returns the generation config for the general call.
// Every field is independently nullable.
func DetailsConfig() *genai.GenerateContentConfig {
	nullableString := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeString, Nullable: genai.Ptr(true), Description: desc}
	}
	temp := float32(0)
	return &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"address":      nullableString("Full property address, including street, city, state, and zip if available."),
				"askingPrice":  nullableString("Asking price as a string of numbers, e.g., '2780000'. This is a fallback if dedicated price extraction fails."),
				"beds":         nullableString("Number of bedrooms, e.g., '4'."),
				"baths":        nullableString("Number of bathrooms, e.g., '3' or '2.5'."),
				"sqft":         nullableString("Total square footage, e.g., '1750'."),
				"propertyType": nullableString("Type of property, e.g., 'Townhouse', 'Single Family', 'Condo'."),
				"yearBuilt":    nullableString("Year the property was built, e.g., '1995'."),
				"garageSpaces": nullableString("Number of garage spaces, e.g., '2'."),
				"levels":       nullableString("Number of levels or stories, e.g., '2' or 'Bi-level'."),
				"lotSize":      nullableString("Lot size, including units, e.g., '0.25 acres' or '6590 sqft'."),
				"imageUrl":     nullableString("Primary image URL for the property."),
				"description":  nullableString("A brief summary or description of the property."),
				"latitude":     nullableString("Latitude coordinate of the property, e.g., '40.7128'."),
				"longitude":    nullableString("Longitude coordinate of the property, e.g., '-74.0060'."),
			},
		},
	}
}

// BuildPricePrompt builds the prompt for the price-only call.
func BuildPricePrompt(pageText, pageURL string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analyze the following content from a property listing at %s.\n", pageURL)
	sb.WriteString("Your SOLE AND CRITICAL task is to identify and extract the ASKING PRICE.\n")
	sb.WriteString("The price is usually a number, possibly with a dollar sign and commas (e.g., $1,250,000 or 499000).\n")
	sb.WriteString("Return the price as a numerical string. If no price is found, return null for the askingPrice field.\n\n")
	fmt.Fprintf(&sb, "<page>\n%s\n</page>", pageText)
	return sb.String()
}

// BuildDetailsPrompt builds the prompt for the general call.
func BuildDetailsPrompt(pageText, pageURL string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are an expert real estate data extraction model. From the content of %s, extract all property details.\n", pageURL)
	sb.WriteString("The asking price is a critical piece of information to find, along with all other details.\n\n")
	sb.WriteString("Extract the following: Address, Asking Price, Beds, Baths, SqFt, Property Type, Year Built, Garage Spaces, Levels, Lot Size, Image URL, Description, Latitude, and Longitude.\n")
	sb.WriteString("If a detail is not present, use null for its field.\n\n")
	fmt.Fprintf(&sb, "<page>\n%s\n</page>", pageText)
	return sb.String()
}

type priceResponse struct {
	AskingPrice *string `json:"askingPrice"`
}

// ParsePriceResponse decodes the model's JSON reply to the price-only
// call. The returned extraction carries digits and decimal points only.
func ParsePriceResponse(text string) (*listex.Extraction, error) {
	var pr priceResponse
	if err := json.Unmarshal([]byte(text), &pr); err != nil {
		return nil, listex.Errorf(listex.EINTERNAL, "malformed price response: %v", err)
	}
	result := &listex.Extraction{Source: listex.SourceModelPrice}
	if pr.AskingPrice != nil {
		result.Price = listex.ExtractNumeric(*pr.AskingPrice)
	}
	return result, nil
}

type detailsResponse struct {
	Address      *string `json:"address"`
	AskingPrice  *string `json:"askingPrice"`
	Beds         *string `json:"beds"`
	Baths        *string `json:"baths"`
	Sqft         *string `json:"sqft"`
	PropertyType *string `json:"propertyType"`
	YearBuilt    *string `json:"yearBuilt"`
	GarageSpaces *string `json:"garageSpaces"`
	Levels       *string `json:"levels"`
	LotSize      *string `json:"lotSize"`
	ImageURL     *string `json:"imageUrl"`
	Description  *string `json:"description"`
	Latitude     *string `json:"latitude"`
	Longitude    *string `json:"longitude"`
}

// ParseDetailsResponse decodes the model's JSON reply to the general call.
// Null fields stay empty in the returned extraction.
func ParseDetailsResponse(text string) (*listex.Extraction, error) {
	var dr detailsResponse
	if err := json.Unmarshal([]byte(text), &dr); err != nil {
		return nil, listex.Errorf(listex.EINTERNAL, "malformed details response: %v", err)
	}
	result := &listex.Extraction{Source: listex.SourceModelGeneral}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	set(&result.Address, dr.Address)
	set(&result.Price, dr.AskingPrice)
	set(&result.Beds, dr.Beds)
	set(&result.Baths, dr.Baths)
	set(&result.Sqft, dr.Sqft)
	set(&result.PropertyType, dr.PropertyType)
	set(&result.YearBuilt, dr.YearBuilt)
	set(&result.GarageSpaces, dr.GarageSpaces)
	set(&result.Levels, dr.Levels)
	set(&result.LotSize, dr.LotSize)
	set(&result.ImageURL, dr.ImageURL)
	set(&result.Description, dr.Description)
	set(&result.Latitude, dr.Latitude)
	set(&result.Longitude, dr.Longitude)
	return result, nil
}
