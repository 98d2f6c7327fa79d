package themes

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"gopkg.in/yaml.v3"
)

type manifestDocument struct {
	Name      string                     `yaml:"name"`
	Version   string                     `yaml:"version"`
	Tokens    map[string]string          `yaml:"tokens"`
	Templates map[string]string          `yaml:"templates"`
	Assets    assetsDocument             `yaml:"assets"`
	Variants  map[string]variantDocument `yaml:"variants"`
}

type assetsDocument struct {
	Prefix string            `yaml:"prefix"`
	Files  map[string]string `yaml:"files"`
}

type variantDocument struct {
	Tokens    map[string]string `yaml:"tokens"`
	Templates map[string]string `yaml:"templates"`
	Assets    assetsDocument    `yaml:"assets"`
}

// ParseManifest decodes a YAML (or JSON) theme manifest.
func ParseManifest(data []byte) (*theme.Manifest, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("themes: manifest is empty")
	}
	var doc manifestDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("themes: decode manifest: %w", err)
	}
	if strings.TrimSpace(doc.Name) == "" {
		return nil, errors.New("themes: manifest name is required")
	}

	manifest := &theme.Manifest{
		Name:      strings.TrimSpace(doc.Name),
		Version:   doc.Version,
		Tokens:    doc.Tokens,
		Templates: doc.Templates,
		Assets: theme.Assets{
			Prefix: doc.Assets.Prefix,
			Files:  doc.Assets.Files,
		},
	}
	if len(doc.Variants) > 0 {
		manifest.Variants = make(map[string]theme.Variant, len(doc.Variants))
		for name, v := range doc.Variants {
			manifest.Variants[name] = theme.Variant{
				Tokens:    v.Tokens,
				Templates: v.Templates,
				Assets: theme.Assets{
					Prefix: v.Assets.Prefix,
					Files:  v.Assets.Files,
				},
			}
		}
	}
	return manifest, nil
}

// LoadManifest reads and decodes a manifest from disk.
func LoadManifest(path string) (*theme.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("themes: read manifest %q: %w", path, err)
	}
	return ParseManifest(data)
}

// LoadManifestFS reads and decodes a manifest from fsys.
func LoadManifestFS(fsys fs.FS, name string) (*theme.Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("themes: read manifest %q: %w", name, err)
	}
	return ParseManifest(data)
}
