package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/guidedoc"
	"github.com/fwojciec/guidedoc/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("applies overrides on top of defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "config.yaml", "length_target: 1000\nmax_keywords: 5\n")

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, 1000, cfg.LengthTarget)
		assert.Equal(t, 5, cfg.MaxKeywords)
		assert.Equal(t, guidedoc.DefaultConfig().TermsTarget, cfg.TermsTarget, "untouched knobs keep defaults")
	})

	t.Run("returns not found for a missing file", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.Equal(t, guidedoc.ENOTFOUND, guidedoc.ErrorCode(err))
		assert.Equal(t, guidedoc.DefaultConfig(), cfg, "defaults still returned")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "config.yaml", "length_target: [not a number\n")

		_, err := yaml.LoadConfig(path)

		require.Error(t, err)
		assert.Equal(t, guidedoc.EINVALID, guidedoc.ErrorCode(err))
	})
}

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("loads section entries", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "manifest.yaml", `sections:
  - id: buttons
    title: Buttons
    url: https://example.com/design/buttons
    platform: ios
    category: visual-design
    file: pages/buttons.html
  - title: Menus
    url: https://example.com/design/menus
    platform: macos
    category: navigation
    file: pages/menus.html
`)

		m, err := yaml.LoadManifest(path)

		require.NoError(t, err)
		require.Len(t, m.Sections, 2)
		assert.Equal(t, "buttons", m.Sections[0].ID)
		assert.Equal(t, "pages/buttons.html", m.Sections[0].File)
		assert.Empty(t, m.Sections[1].ID, "id may be omitted")
		assert.Equal(t, "Menus", m.Sections[1].Title)
	})

	t.Run("returns not found for a missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.Equal(t, guidedoc.ENOTFOUND, guidedoc.ErrorCode(err))
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "manifest.yaml", "sections: {broken\n")

		_, err := yaml.LoadManifest(path)

		require.Error(t, err)
		assert.Equal(t, guidedoc.EINVALID, guidedoc.ErrorCode(err))
	})

	t.Run("rejects a manifest with no sections", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, "manifest.yaml", "sections: []\n")

		_, err := yaml.LoadManifest(path)

		require.Error(t, err)
		assert.Equal(t, guidedoc.EINVALID, guidedoc.ErrorCode(err))
	})
}
