package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/listex"
	"github.com/fwojciec/listex/gemini"
	"github.com/fwojciec/listex/htmltomarkdown"
	lxhttp "github.com/fwojciec/listex/http"
	"github.com/fwojciec/listex/pipeline"
	"github.com/fwojciec/listex/rod"
	lxslog "github.com/fwojciec/listex/slog"
	"github.com/fwojciec/listex/trafilatura"
	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var fetcher listex.Fetcher
	if c.Browser {
		f, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
			return fmt.Errorf("failed to start browser: %w", err)
		}
		fetcher = f
	} else {
		fetcher = lxhttp.NewFetcher(lxhttp.WithTimeout(c.Timeout))
	}
	fetcher = lxslog.NewLoggingFetcher(fetcher, deps.Logger)
	defer fetcher.Close()

	// The model and geocoding stages run only when configured; without
	// them the pipeline degrades to markup and DOM extraction.
	var details listex.DetailExtractor
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		client, err := genai.NewClient(deps.Ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			deps.Logger.Warn("gemini unavailable, continuing without model extraction", "err", err)
		} else {
			details = gemini.NewExtractor(client, defaultModel)
		}
	}

	var geocoder listex.Geocoder
	if apiKey := os.Getenv("GOOGLE_MAPS_API_KEY"); apiKey != "" {
		geocoder = lxslog.NewLoggingGeocoder(lxhttp.NewGeocoder(apiKey), deps.Logger)
	}

	p := &pipeline.Pipeline{
		Fetcher:   fetcher,
		Extractor: trafilatura.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Details:   details,
		Geocoder:  geocoder,
		Logger:    deps.Logger,
	}

	record, err := p.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", listex.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(record)
}
