// Package crawl — path filtering rules.
// Provides helpers to filter and normalize paths during discovery.
package crawl

import (
	"path"
	"strings"
)

// markdownExtensions are the file extensions treated as page sources.
var markdownExtensions = map[string]bool{
	".md":       true,
	".markdown": true,
}

// IsMarkdown checks if a path names a Markdown source.
func IsMarkdown(p string) bool {
	return markdownExtensions[strings.ToLower(path.Ext(p))]
}

// IsHidden reports dotfiles and editor leftovers, which are never published.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".") || strings.HasSuffix(name, "~")
}

// NormalizePath cleans a slash-separated path and strips any leading "./".
func NormalizePath(p string) string {
	p = path.Clean(p)
	return strings.TrimPrefix(p, "./")
}
