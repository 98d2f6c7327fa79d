package render

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// Translator resolves a message key for a locale. Static layout strings use
// the English source text as the key.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// MissingTranslationHandler returns the string to emit when a key could not be
// translated. err is ErrMissingTranslator when no Translator is configured.
type MissingTranslationHandler func(locale, key string, args []any, err error) string

// Translate resolves key using opts.Translator, routing failures through
// opts.OnMissing. The source key doubles as the fallback string.
func Translate(opts RenderOptions, key string, args ...any) string {
	onMissing := opts.OnMissing
	if onMissing == nil {
		onMissing = MissingTranslationFallback
	}
	return translate(opts.Locale, key, key, opts.Translator, onMissing, args...)
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler, args ...any) string {
	if strings.TrimSpace(key) == "" {
		return fallback
	}

	params := append([]any{map[string]any{"default": fallback}}, args...)
	if t == nil {
		return onMissing(locale, key, params, ErrMissingTranslator)
	}

	result, err := t.Translate(locale, key, args...)
	if err == nil && strings.TrimSpace(result) != "" {
		return result
	}
	return onMissing(locale, key, params, err)
}

// MissingTranslationFallback is the default MissingTranslationHandler. It
// returns the "default" value carried in args, or the key itself.
func MissingTranslationFallback(_ string, key string, args []any, _ error) string {
	for _, arg := range args {
		values, ok := arg.(map[string]any)
		if !ok {
			continue
		}
		if fallback, ok := values["default"].(string); ok && strings.TrimSpace(fallback) != "" {
			return fallback
		}
	}
	return key
}

// Catalog is an in-memory Translator keyed by locale then message key.
// Lookups fall back from a regional locale ("es-MX") to its base ("es").
type Catalog map[string]map[string]string

// Translate implements Translator. Arguments are applied with fmt.Sprintf
// when present.
func (c Catalog) Translate(locale, key string, args ...any) (string, error) {
	for _, candidate := range localeChain(locale) {
		messages, ok := c[candidate]
		if !ok {
			continue
		}
		if msg, ok := messages[key]; ok && msg != "" {
			if len(args) > 0 {
				return fmt.Sprintf(msg, args...), nil
			}
			return msg, nil
		}
	}
	return "", fmt.Errorf("render: no translation for %q in locale %q", key, locale)
}

// Merge copies entries from other into c, overriding existing keys.
func (c Catalog) Merge(other Catalog) {
	for locale, messages := range other {
		if c[locale] == nil {
			c[locale] = make(map[string]string, len(messages))
		}
		for key, msg := range messages {
			c[locale][key] = msg
		}
	}
}

// LoadCatalogFS reads every *.yaml, *.yml and *.json file in fsys into a
// Catalog. Each file maps locale → key → message. Later files override
// earlier ones in lexical path order.
func LoadCatalogFS(fsys fs.FS) (Catalog, error) {
	catalog := make(Catalog)
	if fsys == nil {
		return catalog, nil
	}

	err := fs.WalkDir(fsys, ".", func(p string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(p) {
			return nil
		}

		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("render: read catalog %s: %w", p, err)
		}
		var file Catalog
		if err := yaml.Unmarshal(data, &file); err != nil {
			return fmt.Errorf("render: parse catalog %s: %w", p, err)
		}
		catalog.Merge(file)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return catalog, nil
}

func isCatalogFile(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml", ".json":
		return true
	default:
		return false
	}
}

func localeChain(locale string) []string {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return nil
	}
	chain := []string{locale}
	if idx := strings.IndexAny(locale, "-_"); idx > 0 {
		chain = append(chain, locale[:idx])
	}
	return chain
}
