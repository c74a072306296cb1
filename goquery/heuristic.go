package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/listex"
)

// priceSelectors are common price-bearing selectors, tried in order.
// The first selector yielding text with digits wins; later selectors are
// not consulted once one succeeds.
var priceSelectors = []string{
	`[data-testid="price"]`,
	`.price`,
	`#price`,
	`[itemprop="price"]`,
	`.property-price`,
	`.listing-price`,
}

// ExtractHeuristic recovers best-effort title, meta description, primary
// image and price from common meta tags and selectors. pageURL is the URL
// the document was fetched from, used to resolve a relative image path
// against the page's origin. Never returns an error; fields the
// heuristics cannot recover stay empty.
func ExtractHeuristic(doc *goquery.Document, pageURL string) *listex.Extraction {
	result := &listex.Extraction{Source: listex.SourceDOM}

	result.Title = firstNonEmpty(
		metaContent(doc, `meta[property="og:title"]`),
		strings.TrimSpace(doc.Find("title").First().Text()),
		metaContent(doc, `meta[name="title"]`),
	)
	result.Description = metaContent(doc, `meta[name="description"]`)
	result.ImageURL = resolveImage(metaContent(doc, `meta[property="og:image"]`), pageURL)

	for _, sel := range priceSelectors {
		text := doc.Find(sel).First().Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		if n := listex.ExtractNumeric(text); n != "" {
			result.Price = n
			break
		}
	}

	return result
}

// resolveImage resolves a relative image path against the page's origin.
// Images that cannot be resolved are discarded rather than passed through.
func resolveImage(image, pageURL string) string {
	if image == "" || strings.HasPrefix(image, "http") {
		return image
	}
	base, err := url.Parse(pageURL)
	if err != nil || base.Host == "" {
		return ""
	}
	ref, err := url.Parse(image)
	if err != nil {
		return ""
	}
	origin := &url.URL{Scheme: base.Scheme, Host: base.Host}
	return origin.ResolveReference(ref).String()
}

func metaContent(doc *goquery.Document, selector string) string {
	return strings.TrimSpace(doc.Find(selector).First().AttrOr("content", ""))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
