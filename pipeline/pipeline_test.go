package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/guidedoc"
	"github.com/fwojciec/guidedoc/goquery"
	"github.com/fwojciec/guidedoc/htmltomarkdown"
	"github.com/fwojciec/guidedoc/mock"
	"github.com/fwojciec/guidedoc/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSection() guidedoc.Section {
	return guidedoc.Section{
		ID:       "buttons",
		Title:    "Buttons",
		URL:      "https://example.com/design/buttons",
		Platform: guidedoc.PlatformIOS,
		Category: guidedoc.CategoryVisualDesign,
	}
}

func passthroughPipeline(markdown string) *pipeline.Pipeline {
	return &pipeline.Pipeline{
		Sanitizer: &mock.Sanitizer{
			SanitizeFn: func(html string) (string, error) { return html, nil },
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) { return markdown, nil },
		},
		Config: guidedoc.DefaultConfig(),
		Now:    func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC) },
	}
}

func TestPipeline_Process(t *testing.T) {
	t.Parallel()

	t.Run("produces a fully populated document", func(t *testing.T) {
		t.Parallel()

		markdown := "# Buttons\n\nButtons initiate actions. Follow these best practices: consider color and accessibility.\n\nSee also: [Menus]"
		p := passthroughPipeline(markdown)

		doc, err := p.Process(context.Background(), guidedoc.RawDocument{
			HTML:    "<h1>Buttons</h1>",
			Section: validSection(),
		})

		require.NoError(t, err)
		assert.Equal(t, validSection(), doc.Section)
		assert.Contains(t, doc.CleanedMarkdown, "# Buttons")
		assert.Contains(t, doc.FrontMatter, "title: Buttons")
		assert.Contains(t, doc.FrontMatter, "last_updated: 2026-01-02T15:04:05Z")
		assert.Contains(t, doc.Keywords, "buttons")
		assert.Equal(t, []string{"Menus"}, doc.RelatedSections)
		assert.Len(t, doc.ContentHash, 16)
		assert.False(t, doc.Quality.IsFallback)
	})

	t.Run("content hash is deterministic over cleaned markdown", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline("# Buttons\n\nGuidance.")
		raw := guidedoc.RawDocument{HTML: "<p>x</p>", Section: validSection()}

		first, err := p.Process(context.Background(), raw)
		require.NoError(t, err)
		second, err := p.Process(context.Background(), raw)
		require.NoError(t, err)

		assert.Equal(t, first.ContentHash, second.ContentHash)

		other, err := passthroughPipeline("# Menus\n\nOther guidance.").Process(context.Background(), raw)
		require.NoError(t, err)
		assert.NotEqual(t, first.ContentHash, other.ContentHash)
	})

	t.Run("rejects invalid section metadata", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline("# Buttons")
		section := validSection()
		section.Title = ""

		_, err := p.Process(context.Background(), guidedoc.RawDocument{Section: section})

		require.Error(t, err)
		assert.Equal(t, guidedoc.EINVALID, guidedoc.ErrorCode(err))
	})

	t.Run("degrades stage failures to an empty low-scoring document", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Sanitizer: &mock.Sanitizer{
				SanitizeFn: func(html string) (string, error) {
					return "", assert.AnError
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return "", nil },
			},
			Config: guidedoc.DefaultConfig(),
		}

		doc, err := p.Process(context.Background(), guidedoc.RawDocument{
			HTML:    "<p>anything</p>",
			Section: validSection(),
		})

		require.NoError(t, err)
		assert.Empty(t, doc.CleanedMarkdown)
		assert.Zero(t, doc.Quality.Score)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := passthroughPipeline("# Buttons")
		_, err := p.Process(ctx, guidedoc.RawDocument{Section: validSection()})

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPipeline_ProcessAll(t *testing.T) {
	t.Parallel()

	t.Run("preserves input order in results", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline("# Guidance\n\nSome text.")

		docs := make([]guidedoc.RawDocument, 5)
		for i := range docs {
			s := validSection()
			s.ID = string(rune('a' + i))
			docs[i] = guidedoc.RawDocument{HTML: "<p>x</p>", Section: s}
		}

		results, err := p.ProcessAll(context.Background(), docs, nil)

		require.NoError(t, err)
		require.Len(t, results, 5)
		for i, doc := range results {
			require.NotNil(t, doc)
			assert.Equal(t, string(rune('a'+i)), doc.Section.ID)
		}
	})

	t.Run("reports progress events", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline("# Guidance")

		docs := []guidedoc.RawDocument{
			{HTML: "<p>x</p>", Section: validSection()},
			{HTML: "<p>y</p>", Section: validSection()},
		}

		var events []pipeline.ProgressEvent
		results, err := p.ProcessAll(context.Background(), docs, func(e pipeline.ProgressEvent) {
			events = append(events, e)
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		require.Len(t, events, 4)
		assert.Equal(t, pipeline.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, pipeline.ProgressCompleted, events[1].Type)
		assert.Equal(t, pipeline.ProgressCompleted, events[2].Type)
		assert.Equal(t, 2, events[2].Completed)
		assert.Equal(t, pipeline.ProgressFinished, events[3].Type)
	})

	t.Run("invalid documents leave nil slots and report failure", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline("# Guidance")

		bad := validSection()
		bad.Title = ""
		docs := []guidedoc.RawDocument{
			{HTML: "<p>x</p>", Section: validSection()},
			{HTML: "<p>y</p>", Section: bad},
		}

		var failed int
		results, err := p.ProcessAll(context.Background(), docs, func(e pipeline.ProgressEvent) {
			if e.Type == pipeline.ProgressFailed {
				failed++
				assert.Error(t, e.Error)
			}
		})

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.NotNil(t, results[0])
		assert.Nil(t, results[1])
		assert.Equal(t, 1, failed)
	})

	t.Run("returns nothing for an empty batch", func(t *testing.T) {
		t.Parallel()

		p := passthroughPipeline("# Guidance")

		results, err := p.ProcessAll(context.Background(), nil, nil)

		require.NoError(t, err)
		assert.Nil(t, results)
	})

	t.Run("fails on cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		p := passthroughPipeline("# Guidance")
		docs := []guidedoc.RawDocument{{HTML: "<p>x</p>", Section: validSection()}}

		_, err := p.ProcessAll(ctx, docs, nil)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestPipeline_EndToEnd(t *testing.T) {
	t.Parallel()

	newPipeline := func() *pipeline.Pipeline {
		return &pipeline.Pipeline{
			Sanitizer: goquery.NewSanitizer(),
			Converter: htmltomarkdown.NewConverter(),
			Config:    guidedoc.DefaultConfig(),
		}
	}

	t.Run("guideline page scores above the fallback range", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<nav><a href="/">Home</a></nav>
<h1>Buttons</h1>
<p>Buttons initiate app-specific actions. Follow these best practices: ensure labels are clear, and consider color and contrast for accessibility.</p>
<h2>Best practices</h2>
<ul><li>Use a consistent style</li></ul>
<img src="hero.png" alt="Hero shot">
<pre><code class="language-swift">Button("OK") { }</code></pre>
</body></html>`

		doc, err := newPipeline().Process(context.Background(), guidedoc.RawDocument{
			HTML:    html,
			Section: validSection(),
		})

		require.NoError(t, err)
		assert.False(t, doc.Quality.IsFallback)
		assert.Greater(t, doc.Quality.Score, 0.3)
		assert.Equal(t, 1, doc.Quality.CodeExamples)
		assert.NotContains(t, doc.CleanedMarkdown, "![")
		assert.NotContains(t, doc.CleanedMarkdown, "hero.png")
		assert.NotContains(t, doc.CleanedMarkdown, "Home")
		assert.Contains(t, doc.CleanedMarkdown, "# Buttons")
	})

	t.Run("javascript placeholder page is flagged as fallback", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>This page requires JavaScript. Please turn on JavaScript in your browser and refresh the page to view its content.</p></body></html>`

		doc, err := newPipeline().Process(context.Background(), guidedoc.RawDocument{
			HTML:    html,
			Section: validSection(),
		})

		require.NoError(t, err)
		assert.Empty(t, doc.CleanedMarkdown)
		assert.True(t, doc.Quality.IsFallback)
		assert.InDelta(t, 0.1, doc.Quality.Score, 1e-9)
	})
}
