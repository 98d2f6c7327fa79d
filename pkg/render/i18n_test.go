package render_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-boxton/pkg/render"
)

type stubTranslator map[string]string

func (t stubTranslator) Translate(_ string, key string, _ ...any) (string, error) {
	if msg, ok := t[key]; ok {
		return msg, nil
	}
	return "", errors.New("missing translation")
}

func TestTranslate_FallsBackToSourceText(t *testing.T) {
	got := render.Translate(render.RenderOptions{}, "Skip to main content")
	if got != "Skip to main content" {
		t.Fatalf("expected source text without translator, got %q", got)
	}

	got = render.Translate(render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{"Main content": "Contenido principal"},
	}, "Site header")
	if got != "Site header" {
		t.Fatalf("expected source text for missing key, got %q", got)
	}
}

func TestTranslate_UsesTranslator(t *testing.T) {
	got := render.Translate(render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{"Main content": "Contenido principal"},
	}, "Main content")
	if got != "Contenido principal" {
		t.Fatalf("expected translated text, got %q", got)
	}
}

func TestTranslate_OnMissingReceivesError(t *testing.T) {
	var gotErr error
	var gotLocale string
	opts := render.RenderOptions{
		Locale: "fr",
		OnMissing: func(locale, key string, _ []any, err error) string {
			gotLocale = locale
			gotErr = err
			return "[" + key + "]"
		},
	}

	if got := render.Translate(opts, "Status messages"); got != "[Status messages]" {
		t.Fatalf("expected handler output, got %q", got)
	}
	if gotLocale != "fr" {
		t.Fatalf("expected locale fr, got %q", gotLocale)
	}
	if !errors.Is(gotErr, render.ErrMissingTranslator) {
		t.Fatalf("expected ErrMissingTranslator, got %v", gotErr)
	}
}

func TestTemplateI18nFuncs(t *testing.T) {
	funcs := render.TemplateI18nFuncs(render.RenderOptions{
		Locale:     "es",
		Translator: stubTranslator{"Main content": "Contenido principal"},
	}, render.TemplateI18nConfig{})

	tr, ok := funcs["t"].(func(string) string)
	if !ok {
		t.Fatalf("expected t helper, got %T", funcs["t"])
	}
	if got := tr("Main content"); got != "Contenido principal" {
		t.Fatalf("unexpected translation %q", got)
	}

	locale, ok := funcs["current_locale"].(func() string)
	if !ok || locale() != "es" {
		t.Fatalf("unexpected current_locale helper")
	}

	custom := render.TemplateI18nFuncs(render.RenderOptions{}, render.TemplateI18nConfig{FuncName: "translate"})
	if _, ok := custom["translate"]; !ok {
		t.Fatalf("expected custom helper name")
	}
}

func TestCatalog_LocaleFallback(t *testing.T) {
	catalog := render.Catalog{
		"es": {"Main content": "Contenido principal"},
	}

	got, err := catalog.Translate("es-MX", "Main content")
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if got != "Contenido principal" {
		t.Fatalf("unexpected translation %q", got)
	}
	if _, err := catalog.Translate("de", "Main content"); err == nil {
		t.Fatalf("expected error for unknown locale")
	}
}

func TestLoadCatalogFS(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": {Data: []byte("es:\n  Main content: Contenido\n  Site header: Cabecera\n")},
		"b.json": {Data: []byte(`{"es": {"Main content": "Contenido principal"}, "fr": {"Main content": "Contenu principal"}}`)},
		"c.txt":  {Data: []byte("ignored")},
	}

	catalog, err := render.LoadCatalogFS(fsys)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}

	want := render.Catalog{
		"es": {"Main content": "Contenido principal", "Site header": "Cabecera"},
		"fr": {"Main content": "Contenu principal"},
	}
	if diff := cmp.Diff(want, catalog); diff != "" {
		t.Fatalf("catalog mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadCatalogFS_InvalidFile(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.yaml": {Data: []byte("es: [unterminated")},
	}
	if _, err := render.LoadCatalogFS(fsys); err == nil {
		t.Fatalf("expected parse error")
	}
}
