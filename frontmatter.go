package guidedoc

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// GenerateFrontMatter serializes section metadata plus quality and keyword
// results into a front matter block: one key: value line per field in a
// stable order, wrapped between --- delimiter lines. The caller supplies
// the generation timestamp so output stays reproducible.
func GenerateFrontMatter(section Section, quality QualityMetrics, keywords []string, now time.Time) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("title: ")
	b.WriteString(section.Title)
	b.WriteString("\nplatform: ")
	b.WriteString(string(section.Platform))
	b.WriteString("\ncategory: ")
	b.WriteString(string(section.Category))
	b.WriteString("\nurl: ")
	b.WriteString(section.URL)
	b.WriteString("\nquality_score: ")
	b.WriteString(formatScore(quality.Score))
	b.WriteString("\ncontent_length: ")
	b.WriteString(strconv.Itoa(quality.Length))
	b.WriteString("\nlast_updated: ")
	b.WriteString(now.UTC().Format(time.RFC3339))
	b.WriteString("\nkeywords: ")
	b.WriteString(formatList(keywords))
	b.WriteString("\nhas_code_examples: ")
	b.WriteString(strconv.FormatBool(quality.CodeExamples > 0))
	b.WriteString("\nhas_images: ")
	b.WriteString(strconv.FormatBool(quality.ImageReferences > 0))
	b.WriteString("\nis_fallback: ")
	b.WriteString(strconv.FormatBool(quality.IsFallback))
	b.WriteString("\n---\n")
	return b.String()
}

// formatScore rounds to two decimals, matching how downstream tooling
// displays quality.
func formatScore(score float64) string {
	return strconv.FormatFloat(math.Round(score*100)/100, 'f', 2, 64)
}

// formatList renders a list literal: [a, b, c].
func formatList(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
