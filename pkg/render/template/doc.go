// Package template defines the engine contract layout renderers depend on.
// The gotemplate subpackage provides the default pongo2-backed implementation.
package template
