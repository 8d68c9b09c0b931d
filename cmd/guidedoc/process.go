package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/guidedoc"
	"github.com/fwojciec/guidedoc/fs"
	"github.com/fwojciec/guidedoc/pipeline"
	"github.com/fwojciec/guidedoc/yaml"
	"github.com/google/uuid"
)

// Run executes the process command: load the manifest, run every section
// through the pipeline concurrently, and save the results atomically.
func (c *ProcessCmd) Run(deps *Dependencies) error {
	cfg, err := loadConfig(c.Config)
	if err != nil {
		return err
	}

	manifest, err := yaml.LoadManifest(c.Manifest)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", guidedoc.ErrorMessage(err))
		return err
	}

	baseDir := filepath.Dir(c.Manifest)
	docs := make([]guidedoc.RawDocument, 0, len(manifest.Sections))
	for _, entry := range manifest.Sections {
		raw, err := rawDocument(entry, baseDir)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", entry.File, err)
			continue
		}
		docs = append(docs, raw)
	}

	if len(docs) == 0 {
		return guidedoc.Errorf(guidedoc.EINVALID, "no readable sections in manifest %q", c.Manifest)
	}

	fmt.Fprintf(deps.Stdout, "Processing %d sections\n", len(docs))

	p := &pipeline.Pipeline{
		Sanitizer:   deps.Sanitizer,
		Converter:   deps.Converter,
		Config:      cfg,
		Concurrency: c.Concurrency,
	}
	progress := func(e pipeline.ProgressEvent) {
		switch e.Type {
		case pipeline.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "skip %s: %v\n", e.SectionID, e.Error)
		case pipeline.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, e.SectionID)
		}
	}

	results, err := p.ProcessAll(deps.Ctx, docs, progress)
	if err != nil {
		return err
	}

	// Clear progress line
	fmt.Fprintf(deps.Stdout, "\r%80s\r", "")

	store := fs.NewDocStore(c.Dir, c.Output)
	var saved, skipped int
	for _, doc := range results {
		if doc == nil {
			continue
		}
		if c.MinScore > 0 && (doc.Quality.Score < c.MinScore || doc.Quality.IsFallback) {
			skipped++
			deps.Logger.Info("document below quality gate",
				"section", doc.Section.ID,
				"score", doc.Quality.Score,
				"fallback", doc.Quality.IsFallback,
			)
			continue
		}
		if err := store.Save(deps.Ctx, doc); err != nil {
			_ = store.Abort()
			fmt.Fprintf(deps.Stderr, "error saving %s: %v\n", doc.Section.ID, err)
			return err
		}
		saved++
	}

	if saved == 0 {
		_ = store.Abort()
		fmt.Fprintln(deps.Stdout, "No documents saved")
		return nil
	}

	if err := store.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error committing: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d documents (%d below quality gate)\n", saved, skipped)
	return nil
}

// rawDocument builds a RawDocument from one manifest entry, reading the
// scraped HTML relative to the manifest location. Entries without an ID
// get a generated one.
func rawDocument(entry yaml.ManifestSection, baseDir string) (guidedoc.RawDocument, error) {
	path := entry.File
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return guidedoc.RawDocument{}, err
	}

	id := entry.ID
	if id == "" {
		id = uuid.NewString()
	}

	return guidedoc.RawDocument{
		HTML: string(data),
		Section: guidedoc.Section{
			ID:       id,
			Title:    entry.Title,
			URL:      entry.URL,
			Platform: guidedoc.Platform(entry.Platform),
			Category: guidedoc.Category(entry.Category),
		},
	}, nil
}

// loadConfig returns the default tuning when no override file is given.
func loadConfig(path string) (guidedoc.Config, error) {
	if path == "" {
		return guidedoc.DefaultConfig(), nil
	}
	return yaml.LoadConfig(path)
}
