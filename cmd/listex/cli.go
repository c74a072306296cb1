package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds configuration and shared services for command
// execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Extract ExtractCmd `cmd:"" help:"Extract a listing record from a page URL"`
	Geocode GeocodeCmd `cmd:"" help:"Resolve a free-text address into coordinates"`

	Verbose bool `short:"v" help:"Enable verbose logging"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL     string        `arg:"" help:"Listing page URL"`
	Browser bool          `short:"b" help:"Fetch with a headless browser (JavaScript-rendered pages)"`
	Timeout time.Duration `default:"30s" help:"Page fetch timeout"`
}

// GeocodeCmd is the "geocode" subcommand.
type GeocodeCmd struct {
	Address string `arg:"" help:"Free-text address"`
}
