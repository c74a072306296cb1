package listex

import "context"

// Fetcher retrieves raw page content from URLs.
// Implementations may use browser automation to handle JavaScript-rendered
// listing pages.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// Retrieval failures (non-2xx status, DNS, timeout, TLS) return an
	// error with code EFETCH. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
