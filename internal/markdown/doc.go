// Package markdown implements the filesystem-backed document layer of the
// post store: front-matter parsing and serialization, document discovery,
// and Markdown to HTML conversion via goldmark.
package markdown
