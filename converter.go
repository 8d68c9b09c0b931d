package guidedoc

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be sanitized HTML (e.g., from a Sanitizer).
	// Blank input yields an empty string, not an error; the pipeline
	// degrades instead of faulting on unusable pages.
	Convert(html string) (string, error)
}
