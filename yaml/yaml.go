// Package yaml loads pipeline configuration and processing manifests from
// YAML files.
package yaml

import (
	"os"

	"github.com/fwojciec/guidedoc"
	"github.com/goccy/go-yaml"
)

// LoadConfig reads pipeline tuning overrides from a YAML file. Fields
// absent from the file keep their defaults, so a config file only needs to
// name the knobs it changes.
func LoadConfig(path string) (guidedoc.Config, error) {
	cfg := guidedoc.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, guidedoc.Errorf(guidedoc.ENOTFOUND, "config file %q not found", path)
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return guidedoc.DefaultConfig(), guidedoc.Errorf(guidedoc.EINVALID, "invalid config file %q: %v", path, err)
	}

	return cfg, nil
}

// Manifest lists the scraped sections to process: the section metadata the
// external crawler recorded, plus the path of each page's saved HTML.
type Manifest struct {
	Sections []ManifestSection `yaml:"sections"`
}

// ManifestSection is one entry of a processing manifest.
type ManifestSection struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	URL      string `yaml:"url"`
	Platform string `yaml:"platform"`
	Category string `yaml:"category"`
	File     string `yaml:"file"`
}

// LoadManifest reads a processing manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, guidedoc.Errorf(guidedoc.ENOTFOUND, "manifest %q not found", path)
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, guidedoc.Errorf(guidedoc.EINVALID, "invalid manifest %q: %v", path, err)
	}
	if len(m.Sections) == 0 {
		return nil, guidedoc.Errorf(guidedoc.EINVALID, "manifest %q lists no sections", path)
	}

	return &m, nil
}
