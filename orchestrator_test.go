package boxton_test

import (
	"io/fs"
	"strings"
	"testing"

	boxton "github.com/goliatone/go-boxton"
	"github.com/goliatone/go-boxton/pkg/render"
	"github.com/goliatone/go-boxton/pkg/testsupport"
)

func TestRenderHTML(t *testing.T) {
	page := boxton.NewPage()
	page.Title = "Home"
	page.Content = boxton.Regions{Content: "<p>Hi</p>", Footer: "<p>Bye</p>"}

	out, err := boxton.RenderHTML(testsupport.Context(), page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{`<div class="layout--boxton">`, `<h1 class="page-title">Home</h1>`, `role="footer"`} {
		if !strings.Contains(string(out), want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderHTMLWithOptions(t *testing.T) {
	opts := boxton.RenderOptions{
		Locale:     "fr",
		Translator: render.Catalog{"fr": {"Skip to main content": "Aller au contenu principal"}},
	}
	out, err := boxton.RenderHTMLWithOptions(testsupport.Context(), boxton.Page{}, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), "Aller au contenu principal") {
		t.Fatalf("expected translated skip link:\n%s", out)
	}
}

func TestEmbeddedTemplates(t *testing.T) {
	data, err := fs.ReadFile(boxton.EmbeddedTemplates(), "templates/boxton.tpl")
	if err != nil {
		t.Fatalf("read embedded template: %v", err)
	}
	if !strings.Contains(string(data), `role="main"`) {
		t.Fatalf("unexpected embedded template contents")
	}
}
