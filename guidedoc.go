// Package guidedoc normalizes scraped UI-guideline pages into clean,
// structured markdown with a per-document quality signal. It takes raw HTML
// plus section metadata and produces a processed document: cleaned markdown,
// a front matter header, keywords, related sections, and quality metrics
// that downstream callers use to decide whether content is fit to serve.
//
// This package contains domain types, interfaces, and the pure text
// transforms following Ben Johnson's Standard Package Layout. Implementations
// with external dependencies live in subdirectories named after their primary
// dependency (e.g., goquery/, htmltomarkdown/, yaml/).
package guidedoc
