// Package layout defines the typed page inputs consumed by layout renderers.
// A Page carries the title, status messages, tabs, action links, wrapper
// classes and attributes, plus the named Regions (header, top, content,
// bottom, footer) populated by the host application. Renderers decide whether
// a slot is emitted with IsPresent; Regions.Content and Page.ActionLinks are
// structural and always emitted, even when empty.
package layout
