package listex

// Converter transforms HTML content into Markdown.
type Converter interface {
	// Convert returns the Markdown rendering of the given HTML.
	Convert(html string) (string, error)
}
