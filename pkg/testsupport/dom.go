package testsupport

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Fragment is a parsed HTML fragment used to assert on rendered structure.
type Fragment struct {
	nodes []*html.Node
}

// MustParseFragment parses rendered output as a <body> fragment.
func MustParseFragment(t *testing.T, markup []byte) Fragment {
	t.Helper()

	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(markup), context)
	if err != nil {
		t.Fatalf("parse fragment: %v", err)
	}
	return Fragment{nodes: nodes}
}

// Roots returns the top-level element nodes.
func (f Fragment) Roots() []*html.Node {
	var out []*html.Node
	for _, n := range f.nodes {
		if n.Type == html.ElementNode {
			out = append(out, n)
		}
	}
	return out
}

// FindAll returns every element, in document order, for which match is true.
func (f Fragment) FindAll(match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range f.nodes {
		walk(n)
	}
	return out
}

// ByRole matches elements with the given role attribute.
func ByRole(role string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return Attr(n, "role") == role
	}
}

// ByClass matches elements whose class list contains class.
func ByClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, c := range strings.Fields(Attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// ByID matches elements with the given id.
func ByID(id string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return Attr(n, "id") == id
	}
}

// ByTag matches elements by tag name.
func ByTag(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag
	}
}

// Attr returns the value of the named attribute or "".
func Attr(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether the attribute is present, regardless of value.
func HasAttr(n *html.Node, name string) bool {
	if n == nil {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// InnerHTML renders the children of n with surrounding whitespace trimmed.
func InnerHTML(t *testing.T, n *html.Node) string {
	t.Helper()

	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			t.Fatalf("render node: %v", err)
		}
	}
	return strings.TrimSpace(buf.String())
}

// Text returns the concatenated text content of n, trimmed.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
