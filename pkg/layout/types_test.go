package layout_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-boxton/pkg/layout"
)

func TestIsPresent(t *testing.T) {
	cases := map[string]struct {
		in   layout.Markup
		want bool
	}{
		"zero":       {in: "", want: false},
		"text":       {in: "hello", want: true},
		"whitespace": {in: " ", want: true},
		"markup":     {in: "<p></p>", want: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if got := layout.IsPresent(tc.in); got != tc.want {
				t.Fatalf("IsPresent(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRegions_GetSet(t *testing.T) {
	var regions layout.Regions
	for _, name := range layout.RegionNames() {
		if err := regions.Set(name, layout.Markup("<p>"+name+"</p>")); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}

	want := layout.Regions{
		Header:  "<p>header</p>",
		Top:     "<p>top</p>",
		Content: "<p>content</p>",
		Bottom:  "<p>bottom</p>",
		Footer:  "<p>footer</p>",
	}
	if diff := cmp.Diff(want, regions); diff != "" {
		t.Fatalf("regions mismatch (-want +got):\n%s", diff)
	}

	got, err := regions.Get(" Footer ")
	if err != nil {
		t.Fatalf("get footer: %v", err)
	}
	if got != "<p>footer</p>" {
		t.Fatalf("unexpected footer markup %q", got)
	}
}

func TestRegions_UnknownRegion(t *testing.T) {
	var regions layout.Regions
	if err := regions.Set("sidebar", "x"); !errors.Is(err, layout.ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
	if _, err := regions.Get("sidebar"); !errors.Is(err, layout.ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion, got %v", err)
	}
	if _, err := layout.FromMap(map[string]layout.Markup{"content": "a", "aside": "b"}); !errors.Is(err, layout.ErrUnknownRegion) {
		t.Fatalf("expected ErrUnknownRegion from FromMap, got %v", err)
	}
}

func TestNewPage_SeedsLayoutClass(t *testing.T) {
	page := layout.NewPage(
		layout.WithTitle("Home"),
		layout.WithClasses("front", "no-sidebars"),
		layout.WithRegion(layout.RegionContent, "<p>Hi</p>"),
		layout.WithRegion("unknown", "ignored"),
	)

	if diff := cmp.Diff([]string{layout.DefaultClass, "front", "no-sidebars"}, page.Classes); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}
	if page.Title != "Home" || page.Content.Content != "<p>Hi</p>" {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestFragments(t *testing.T) {
	ctx := context.Background()

	out, err := layout.Markup("<span>static</span>").RenderFragment(ctx)
	if err != nil || out != "<span>static</span>" {
		t.Fatalf("markup fragment = %q, %v", out, err)
	}

	fn := layout.FragmentFunc(func(context.Context) (layout.Markup, error) {
		return "<em>dyn</em>", nil
	})
	out, err = fn.RenderFragment(ctx)
	if err != nil || out != "<em>dyn</em>" {
		t.Fatalf("func fragment = %q, %v", out, err)
	}

	var nilFn layout.FragmentFunc
	out, err = nilFn.RenderFragment(ctx)
	if err != nil || out != "" {
		t.Fatalf("nil func fragment = %q, %v", out, err)
	}
}

func TestAttributes_CloneIsolatesSlices(t *testing.T) {
	attrs := layout.Attributes{"class": []string{"a", "b"}, "id": "main"}
	clone := attrs.Clone()
	clone["class"].([]string)[0] = "changed"

	if attrs["class"].([]string)[0] != "a" {
		t.Fatalf("clone shares slice storage with original")
	}
	if diff := cmp.Diff([]string{"class", "id"}, attrs.Keys()); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}

	with := attrs.With("data-x", "1")
	if _, ok := attrs["data-x"]; ok {
		t.Fatalf("With mutated the receiver")
	}
	if with["data-x"] != "1" {
		t.Fatalf("With did not set value")
	}
}
