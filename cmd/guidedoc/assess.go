package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/guidedoc"
	"github.com/fwojciec/guidedoc/pipeline"
	guidedocslog "github.com/fwojciec/guidedoc/slog"
)

// assessReport is the JSON the assess command prints.
type assessReport struct {
	Quality         guidedoc.QualityMetrics `json:"quality"`
	Keywords        []string                `json:"keywords"`
	RelatedSections []string                `json:"related_sections,omitempty"`
	Outline         []guidedoc.Heading      `json:"outline,omitempty"`
	ContentHash     string                  `json:"content_hash"`
}

// Run executes the assess command: process one scraped HTML file and print
// its quality metrics as JSON.
func (c *AssessCmd) Run(deps *Dependencies) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		return err
	}

	raw := guidedoc.RawDocument{
		HTML: string(data),
		Section: guidedoc.Section{
			ID:       c.Title,
			Title:    c.Title,
			URL:      c.URL,
			Platform: guidedoc.Platform(c.Platform),
			Category: guidedoc.Category(c.Category),
		},
	}

	processor := guidedocslog.NewLoggingProcessor(&pipeline.Pipeline{
		Sanitizer: deps.Sanitizer,
		Converter: deps.Converter,
		Config:    cfg,
	}, deps.Logger)

	doc, err := processor.Process(deps.Ctx, raw)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", guidedoc.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(assessReport{
		Quality:         doc.Quality,
		Keywords:        doc.Keywords,
		RelatedSections: doc.RelatedSections,
		Outline:         guidedoc.ExtractHeadings(doc.CleanedMarkdown),
		ContentHash:     doc.ContentHash,
	}, "", "  ")
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
