package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-boxton/pkg/layout"
	"github.com/goliatone/go-boxton/pkg/render"
)

type namedRenderer struct {
	name string
}

func (r namedRenderer) Name() string        { return r.name }
func (r namedRenderer) ContentType() string { return "text/plain" }
func (r namedRenderer) Render(context.Context, layout.Page, render.RenderOptions) ([]byte, error) {
	return []byte(r.name), nil
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer{name: "boxton"})
	registry.MustRegister(namedRenderer{name: "alt"})

	if err := registry.Register(namedRenderer{name: "boxton"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(namedRenderer{name: "  "}); err == nil {
		t.Fatalf("expected blank name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	if diff := cmp.Diff([]string{"alt", "boxton"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}

	got, err := registry.Resolve("", "boxton")
	if err != nil {
		t.Fatalf("resolve default: %v", err)
	}
	if got.Name() != "boxton" {
		t.Fatalf("expected default renderer, got %s", got.Name())
	}

	got, err = registry.Resolve("alt", "boxton")
	if err != nil || got.Name() != "alt" {
		t.Fatalf("resolve explicit = %v, %v", got, err)
	}

	if _, err := registry.Resolve("missing", "boxton"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
	if _, err := registry.Resolve("", ""); err == nil {
		t.Fatalf("expected error when no name available")
	}
	if !registry.Has(" alt ") {
		t.Fatalf("expected Has to trim names")
	}
}
