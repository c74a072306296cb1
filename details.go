package listex

import "context"

// DetailExtractor extracts listing fields from a textual projection of a
// page using a language model. The two methods are independent: neither
// requires the other to have run or succeeded, and the pipeline may issue
// them concurrently.
type DetailExtractor interface {
	// ExtractPrice asks for exactly one field, the asking price, as a
	// digit string. A page with no discernible price yields an empty
	// extraction, not an error.
	ExtractPrice(ctx context.Context, pageText, pageURL string) (*Extraction, error)

	// ExtractDetails asks for every remaining listing field. Fields the
	// model cannot determine are left empty.
	ExtractDetails(ctx context.Context, pageText, pageURL string) (*Extraction, error)
}
