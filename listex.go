// Package listex extracts a canonical structured record from a real-estate
// listing web page given only its URL. Listing pages are unstructured and
// inconsistent across providers, so the package runs several independent,
// imperfect extraction techniques over the same page (embedded JSON-LD
// markup, DOM heuristics, and language-model extraction) and reconciles
// their partial results under a fixed per-field precedence policy, with a
// geocoding fallback when coordinates are absent.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, http/).
package listex
