package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/guidedoc"
)

// Ensure Sanitizer implements guidedoc.Sanitizer at compile time.
var _ guidedoc.Sanitizer = (*Sanitizer)(nil)

// noiseSelector matches elements that never carry guideline content.
// Their full subtree is removed, including text.
const noiseSelector = "script, style, noscript, nav, footer, header, img"

// navClassSelector matches residual containers whose class still signals
// site navigation.
const navClassSelector = "[class*=navigation], [class*=breadcrumb]"

var hspaceRunRe = regexp.MustCompile(`[ \t]{2,}`)

// Sanitizer removes scrape noise from raw HTML by operating on the parsed
// tree. Element removal on the DOM keeps spans correct on nested or
// unbalanced markup, where regex over raw markup would cut wrong.
type Sanitizer struct{}

// NewSanitizer creates a new Sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{}
}

// Sanitize strips noise elements and navigation-classed containers and
// collapses horizontal whitespace runs. It never fails: the net/html
// parser repairs malformed markup rather than rejecting it, and any
// residual error degrades to returning the input unchanged.
func (s *Sanitizer) Sanitize(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML, nil
	}

	doc.Find(noiseSelector).Remove()
	doc.Find(navClassSelector).Remove()

	out, err := doc.Html()
	if err != nil {
		return rawHTML, nil
	}

	return hspaceRunRe.ReplaceAllString(out, " "), nil
}
