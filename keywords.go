package guidedoc

import (
	"regexp"
	"strings"
)

var wordTokenRe = regexp.MustCompile(`[a-zA-Z]{3,}`)

// ExtractKeywords builds the bounded keyword set for a document: the
// case-folded section title, platform, and category, followed by every
// domain vocabulary term that appears as a word token in the cleaned
// markdown. Insertion order is preserved, duplicates are dropped, and the
// result is capped at cfg.MaxKeywords.
func ExtractKeywords(markdown string, section Section, cfg Config) []string {
	cfg = cfg.withDefaults()

	seen := make(map[string]bool)
	keywords := make([]string, 0, cfg.MaxKeywords)

	add := func(k string) {
		if k == "" || seen[k] || len(keywords) >= cfg.MaxKeywords {
			return
		}
		seen[k] = true
		keywords = append(keywords, k)
	}

	add(strings.ToLower(section.Title))
	add(string(section.Platform))
	add(string(section.Category))

	vocab := make(map[string]bool, len(domainVocabulary))
	for _, term := range domainVocabulary {
		vocab[term] = true
	}

	for _, token := range wordTokenRe.FindAllString(markdown, -1) {
		if len(keywords) >= cfg.MaxKeywords {
			break
		}
		if t := strings.ToLower(token); vocab[t] {
			add(t)
		}
	}

	return keywords
}
