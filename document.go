package guidedoc

import "context"

// Platform identifies the platform a guideline section targets.
type Platform string

// Platform constants for Section metadata.
const (
	PlatformIOS       Platform = "ios"
	PlatformMacOS     Platform = "macos"
	PlatformWatchOS   Platform = "watchos"
	PlatformTVOS      Platform = "tvos"
	PlatformVisionOS  Platform = "visionos"
	PlatformUniversal Platform = "universal"
)

// Valid reports whether the platform is one of the known values.
func (p Platform) Valid() bool {
	switch p {
	case PlatformIOS, PlatformMacOS, PlatformWatchOS, PlatformTVOS,
		PlatformVisionOS, PlatformUniversal:
		return true
	}
	return false
}

// Category identifies the topic category of a guideline section.
type Category string

// Category constants for Section metadata.
const (
	CategoryFoundations       Category = "foundations"
	CategoryLayout            Category = "layout"
	CategoryNavigation        Category = "navigation"
	CategoryPresentation      Category = "presentation"
	CategorySelectionAndInput Category = "selection-and-input"
	CategoryStatus            Category = "status"
	CategorySystemCapability  Category = "system-capabilities"
	CategoryVisualDesign      Category = "visual-design"
	CategoryMotion            Category = "motion"
	CategoryTechnologies      Category = "technologies"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryFoundations, CategoryLayout, CategoryNavigation,
		CategoryPresentation, CategorySelectionAndInput, CategoryStatus,
		CategorySystemCapability, CategoryVisualDesign, CategoryMotion,
		CategoryTechnologies:
		return true
	}
	return false
}

// Section holds the metadata of a single guideline topic page.
type Section struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Platform Platform `json:"platform"`
	Category Category `json:"category"`
}

// Validate returns an error if the section contains invalid fields.
func (s *Section) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "section title required")
	}
	if s.URL == "" {
		return Errorf(EINVALID, "section URL required")
	}
	if !s.Platform.Valid() {
		return Errorf(EINVALID, "unknown platform %q", s.Platform)
	}
	if !s.Category.Valid() {
		return Errorf(EINVALID, "unknown category %q", s.Category)
	}
	return nil
}

// RawDocument is the immutable input to the processing pipeline: the raw
// scraped HTML of a page plus its section metadata. The pipeline never
// fetches documents itself; the caller supplies them.
type RawDocument struct {
	HTML    string  `json:"html"`
	Section Section `json:"section"`
}

// ProcessedDocument is the immutable output of the processing pipeline.
// Downstream layers persist FrontMatter + CleanedMarkdown as the document
// body and gate serving on Quality.Score and Quality.IsFallback.
type ProcessedDocument struct {
	Section         Section        `json:"section"`
	CleanedMarkdown string         `json:"cleanedMarkdown"`
	FrontMatter     string         `json:"frontMatter"`
	Quality         QualityMetrics `json:"quality"`
	Keywords        []string       `json:"keywords"`
	RelatedSections []string       `json:"relatedSections"`
	ContentHash     string         `json:"contentHash"`
}

// ExtractionMethod tags the pipeline version that produced a document's
// quality metrics.
const ExtractionMethod = "markdown-pipeline-v1"

// QualityMetrics describes how trustworthy a processed document is.
// Score and Confidence are always in [0,1]. A fallback document (an
// unusable scrape artifact such as a JavaScript-required placeholder)
// always scores 0.1 with 0.1 confidence.
type QualityMetrics struct {
	Score            float64 `json:"score"`
	Length           int     `json:"length"`
	StructureScore   float64 `json:"structure_score"`
	TermsScore       float64 `json:"terms_score"`
	CodeExamples     int     `json:"code_examples_count"`
	ImageReferences  int     `json:"image_references_count"`
	Headings         int     `json:"heading_count"`
	IsFallback       bool    `json:"is_fallback_content"`
	ExtractionMethod string  `json:"extraction_method"`
	Confidence       float64 `json:"confidence"`
}

// DocumentProcessor turns raw scraped pages into processed documents.
type DocumentProcessor interface {
	// Process runs the full pipeline on one document. It degrades rather
	// than faults: pathological input yields a near-empty document with
	// fallback-flagged metrics, not an error. Errors are reserved for
	// invalid section metadata and context cancellation.
	Process(ctx context.Context, raw RawDocument) (*ProcessedDocument, error)
}

// DocumentStore persists processed documents with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type DocumentStore interface {
	Save(ctx context.Context, doc *ProcessedDocument) error
	Commit() error
	Abort() error
}
