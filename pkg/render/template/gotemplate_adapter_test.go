package template_test

import (
	"embed"
	"io"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-boxton/pkg/render/template/gotemplate"
	"github.com/goliatone/go-boxton/pkg/testsupport"
)

//go:embed testdata/templates/*.tpl
var embeddedTemplates embed.FS

func TestGoTemplateEngine_RenderTemplate(t *testing.T) {
	engine := newEngine(t)

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.RenderTemplate("hello", map[string]any{"name": "Ada"}, w)
	})

	want := testsupport.MustReadGoldenString(t, filepath.Join("testdata", "hello.golden"))
	if result != want {
		t.Fatalf("render template mismatch result\nwant: %q\n got: %q", want, result)
	}
	if written != want {
		t.Fatalf("render template mismatch writer\nwant: %q\n got: %q", want, written)
	}
}

func TestGoTemplateEngine_PresentFilter(t *testing.T) {
	engine := newEngine(t)

	cases := map[string]struct {
		data map[string]any
		want string
	}{
		"present": {
			data: map[string]any{"region": "<p>Top</p>", "label": "spaced"},
			want: `<div class="l-top"><p>Top</p></div>|spaced`,
		},
		"empty string": {
			data: map[string]any{"region": "", "label": ""},
			want: `|`,
		},
		"missing": {
			data: map[string]any{},
			want: `|`,
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := engine.RenderTemplate("present", tc.data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %q, got %q", tc.want, got)
			}
		})
	}
}

func TestGoTemplateEngine_PreservesMarkupBytes(t *testing.T) {
	engine := newEngine(t)

	region := "<p>a\xffb</p>"
	got, err := engine.RenderTemplate("present", map[string]any{"region": region, "label": ""})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := `<div class="l-top">` + region + `</div>|`
	if got != want {
		t.Fatalf("markup bytes changed\nwant: %q\n got: %q", want, got)
	}
}

func TestGoTemplateEngine_RejectsUnsupportedData(t *testing.T) {
	engine := newEngine(t)
	if _, err := engine.RenderTemplate("hello", struct{ Name string }{Name: "Ada"}); err == nil {
		t.Fatalf("expected error for non-map view data")
	}
}

func TestGoTemplateEngine_BaseDir(t *testing.T) {
	engine, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Join("testdata", "basedir")))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	if !engine.HasTemplate("layouts/page") {
		t.Fatalf("expected layouts/page in base dir")
	}
	got, err := engine.RenderTemplate("layouts/page.tpl", map[string]any{"body": "<p>Hi</p>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<main><p>Hi</p></main>" {
		t.Fatalf("unexpected output %q", got)
	}

	if _, err := gotemplate.New(gotemplate.WithBaseDir(filepath.Join("testdata", "missing-dir"))); err == nil {
		t.Fatalf("expected error for missing base dir")
	}
}

func TestGoTemplateEngine_HasTemplate(t *testing.T) {
	engine := newEngine(t)
	if !engine.HasTemplate("hello") {
		t.Fatalf("expected hello template to exist")
	}
	if engine.HasTemplate("missing") {
		t.Fatalf("expected missing template to be absent")
	}
	if engine.HasTemplate("") {
		t.Fatalf("expected blank template name to be absent")
	}
}

func TestGoTemplateEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func newEngine(t *testing.T) *gotemplate.Engine {
	t.Helper()

	engine, err := gotemplate.New(gotemplate.WithFS(mustSub(t)))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func mustSub(t *testing.T) fs.FS {
	t.Helper()

	templatesFS, err := fs.Sub(embeddedTemplates, "testdata/templates")
	if err != nil {
		t.Fatalf("sub fs: %v", err)
	}
	return templatesFS
}
