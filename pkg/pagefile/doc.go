// Package pagefile loads layout.Page descriptors from JSON or YAML files.
//
// A descriptor mirrors the layout inputs:
//
//	title: Home
//	title_prefix: <span class="badge">Draft</span>
//	messages: <div class="messages status">Saved.</div>
//	tabs: <ul class="tabs primary">...</ul>
//	action_links: <ul class="action-links">...</ul>
//	classes: [layout--boxton, front]
//	attributes: {id: page}
//	wrap_attributes: {class: l-wrapper}
//	content:
//	  header: <nav>...</nav>
//	  content: <p>Hi</p>
//
// Omitting classes seeds the layout class; an explicit empty list keeps the
// wrapper class-free.
package pagefile
