// Package markdown discovers post source files, splits front matter from
// Markdown bodies, and renders bodies to HTML.
package markdown
