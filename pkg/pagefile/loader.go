package pagefile

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-boxton/pkg/layout"
)

// Store holds pages keyed by descriptor name (file path without extension).
type Store struct {
	pages map[string]layout.Page
}

// Page returns the page registered under name.
func (s *Store) Page(name string) (layout.Page, bool) {
	if s == nil {
		return layout.Page{}, false
	}
	page, ok := s.pages[strings.TrimSpace(name)]
	return page, ok
}

// Names lists the stored page names in sorted order.
func (s *Store) Names() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.pages))
	for name := range s.pages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Empty reports whether the store holds any pages.
func (s *Store) Empty() bool {
	return s == nil || len(s.pages) == 0
}

// LoadFS walks fsys and parses every JSON/YAML descriptor. When fsys is nil or
// holds no descriptors, the returned store is empty.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{pages: make(map[string]layout.Page)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isPageFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("pagefile: read %s: %w", p, err)
		}
		page, err := Parse(data, p)
		if err != nil {
			return err
		}

		name := strings.TrimSuffix(p, path.Ext(p))
		if _, exists := store.pages[name]; exists {
			return fmt.Errorf("pagefile: duplicate page %q (file %s)", name, p)
		}
		store.pages[name] = page
		return nil
	})
	if err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFile reads a single descriptor from disk.
func LoadFile(filename string) (layout.Page, error) {
	if strings.TrimSpace(filename) == "" {
		return layout.Page{}, fmt.Errorf("pagefile: path is required")
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return layout.Page{}, fmt.Errorf("pagefile: read %s: %w", filename, err)
	}
	return Parse(data, filepath.Base(filename))
}

// Parse decodes a descriptor. JSON is attempted first, then YAML.
func Parse(data []byte, source string) (layout.Page, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return layout.Page{}, fmt.Errorf("pagefile: file %s is empty", source)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = document{}
		if yamlErr := yaml.Unmarshal(data, &doc); yamlErr != nil {
			return layout.Page{}, fmt.Errorf("pagefile: parse %s: invalid JSON or YAML: %w", source, yamlErr)
		}
	}
	return doc.page(source)
}

type document struct {
	Title          string                   `json:"title" yaml:"title"`
	TitlePrefix    layout.Markup            `json:"title_prefix" yaml:"title_prefix"`
	TitleSuffix    layout.Markup            `json:"title_suffix" yaml:"title_suffix"`
	Messages       layout.Markup            `json:"messages" yaml:"messages"`
	Tabs           layout.Markup            `json:"tabs" yaml:"tabs"`
	ActionLinks    layout.Markup            `json:"action_links" yaml:"action_links"`
	Classes        *[]string                `json:"classes" yaml:"classes"`
	Attributes     map[string]any           `json:"attributes" yaml:"attributes"`
	WrapAttributes map[string]any           `json:"wrap_attributes" yaml:"wrap_attributes"`
	Content        map[string]layout.Markup `json:"content" yaml:"content"`
}

func (d document) page(source string) (layout.Page, error) {
	regions, err := layout.FromMap(d.Content)
	if err != nil {
		return layout.Page{}, fmt.Errorf("pagefile: %s: %w", source, err)
	}

	page := layout.NewPage()
	if d.Classes != nil {
		page.Classes = append([]string{}, (*d.Classes)...)
	}
	page.Title = d.Title
	page.Messages = d.Messages
	page.Tabs = d.Tabs
	page.ActionLinks = d.ActionLinks
	page.Attributes = attributes(d.Attributes)
	page.WrapAttributes = attributes(d.WrapAttributes)
	page.Content = regions
	if layout.IsPresent(d.TitlePrefix) {
		page.TitlePrefix = d.TitlePrefix
	}
	if layout.IsPresent(d.TitleSuffix) {
		page.TitleSuffix = d.TitleSuffix
	}
	return page, nil
}

func attributes(in map[string]any) layout.Attributes {
	if len(in) == 0 {
		return nil
	}
	out := make(layout.Attributes, len(in))
	for key, value := range in {
		out[key] = value
	}
	return out
}

func isPageFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
