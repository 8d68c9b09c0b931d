package guidedoc

import (
	"regexp"
	"strings"
)

var (
	seeAlsoLineRe = regexp.MustCompile(`(?im)^.*see also.+$`)
	bracketRefRe  = regexp.MustCompile(`\[([^\[\]]+)\]`)
)

// ExtractRelatedSections mines the first "see also"-style line of the
// cleaned markdown for cross-referenced section titles, written as
// bracketed references. Titles are returned in order of appearance,
// de-duplicated, capped at cfg.MaxRelated. No such line yields nil.
func ExtractRelatedSections(markdown string, cfg Config) []string {
	cfg = cfg.withDefaults()

	line := seeAlsoLineRe.FindString(markdown)
	if line == "" {
		return nil
	}

	seen := make(map[string]bool)
	var related []string
	for _, m := range bracketRefRe.FindAllStringSubmatch(line, -1) {
		title := strings.TrimSpace(m[1])
		if title == "" || seen[title] {
			continue
		}
		seen[title] = true
		related = append(related, title)
		if len(related) >= cfg.MaxRelated {
			break
		}
	}

	return related
}
