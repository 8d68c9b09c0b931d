package guidedoc

// Sanitizer removes scrape noise from raw HTML before structural conversion.
type Sanitizer interface {
	// Sanitize strips script/style/nav/footer/header elements, image tags,
	// and navigation-classed containers from the markup. It must succeed
	// on malformed or unbalanced markup, leaving unparseable fragments in
	// place rather than erroring.
	Sanitize(html string) (string, error)
}
