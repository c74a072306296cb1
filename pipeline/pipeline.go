// Package pipeline orchestrates listing extraction for a single URL:
// fetch, per-source extraction, reconciliation, and geocoding fallback.
//
// Only two failures abort a run: an invalid URL and a failed fetch.
// Every extractor failure is isolated to its source and logged, so the
// reconciler proceeds with whatever sources succeeded; a record with many
// absent fields is a normal, successful outcome.
package pipeline

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/listex"
	lxquery "github.com/fwojciec/listex/goquery"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// DefaultMaxProjection caps the page text sent to the language model.
// Pages beyond the cap are truncated, not rejected.
const DefaultMaxProjection = 150000

// Pipeline coordinates the extraction stages for listing URLs. Fetcher is
// required; every other service is optional and its stage is skipped when
// unset.
type Pipeline struct {
	Fetcher   listex.Fetcher
	Extractor listex.Extractor       // main-content extraction for the model projection
	Converter listex.Converter       // HTML to Markdown for the model projection
	Details   listex.DetailExtractor // language-model extraction
	Geocoder  listex.Geocoder        // coordinate fallback for geo-less records
	Logger    *slog.Logger

	// MaxProjection overrides DefaultMaxProjection when positive.
	MaxProjection int
}

// Run extracts a listing record from the page at rawURL.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*listex.Listing, error) {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, listex.Errorf(listex.EINVALID, "invalid listing URL %q", rawURL)
	}

	logger := p.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	html, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	// Both document-level extractors run against the same parsed
	// document. A parse failure silences them but not the model calls.
	var markup, dom *listex.Extraction
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		logger.Warn("document parse failed", "url", rawURL, "err", err)
	} else {
		markup = lxquery.ExtractStructured(doc)
		dom = lxquery.ExtractHeuristic(doc, rawURL)
	}

	// The two model calls are independent; neither blocks or cancels the
	// other, so errors are captured per call rather than returned to the
	// group.
	var modelPrice, modelGeneral *listex.Extraction
	if p.Details != nil {
		projection := p.project(html)

		var priceErr, generalErr error
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			modelPrice, priceErr = p.Details.ExtractPrice(gctx, projection, rawURL)
			return nil
		})
		g.Go(func() error {
			modelGeneral, generalErr = p.Details.ExtractDetails(gctx, projection, rawURL)
			return nil
		})
		_ = g.Wait()

		if priceErr != nil {
			logger.Warn("model price extraction failed", "url", rawURL, "err", priceErr)
			modelPrice = nil
		}
		if generalErr != nil {
			logger.Warn("model detail extraction failed", "url", rawURL, "err", generalErr)
			modelGeneral = nil
		}
	}

	record := listex.Reconcile(listex.Sources{
		Markup:  markup,
		DOM:     dom,
		Price:   modelPrice,
		General: modelGeneral,
	})
	record.ID = uuid.New().String()
	record.SourceURL = rawURL
	record.ExtractedAt = time.Now().UTC()

	if p.Geocoder != nil && record.Address != "" && (record.Latitude == nil || record.Longitude == nil) {
		if coords, err := p.Geocoder.Geocode(ctx, record.Address); err != nil {
			logger.Warn("geocoding failed", "address", record.Address, "err", err)
		} else {
			located := *record
			located.Latitude, located.Longitude = &coords.Latitude, &coords.Longitude
			record = &located
		}
	}

	return record, nil
}

// project builds the capped textual projection of the page for the model
// calls: main content as Markdown when the extractor and converter are
// configured and succeed, raw HTML otherwise.
func (p *Pipeline) project(html string) string {
	maxLen := p.MaxProjection
	if maxLen <= 0 {
		maxLen = DefaultMaxProjection
	}

	text := html
	if p.Extractor != nil && p.Converter != nil {
		if res, err := p.Extractor.Extract(html); err == nil && res.ContentHTML != "" {
			if md, err := p.Converter.Convert(res.ContentHTML); err == nil && strings.TrimSpace(md) != "" {
				text = md
			}
		}
	}

	if len(text) > maxLen {
		text = text[:maxLen]
	}
	return text
}
