// Package render provides output renderers for the PageGen pipeline.
// This file implements the HTML renderer, which lays a converted page out
// with the site template.
package render

import (
	"github.com/gaurav-prasanna/pagegen/core"
	"github.com/gaurav-prasanna/pagegen/core/page"
)

// HTMLRenderer converts Markdown into a full HTML page.
type HTMLRenderer struct {
	Template *page.Template
	BasePath string
}

// NewHTMLRenderer creates an HTMLRenderer for the given template text.
func NewHTMLRenderer(template, basePath string) *HTMLRenderer {
	return &HTMLRenderer{Template: page.NewTemplate(template), BasePath: basePath}
}

// Render converts Markdown and substitutes it into the template.
func (r *HTMLRenderer) Render(markdown string, meta core.PageMetadata) ([]byte, error) {
	html, err := page.Render(markdown, r.Template, r.BasePath)
	if err != nil {
		return nil, err
	}
	return []byte(html), nil
}

// Extension returns the file extension for HTML output.
func (r *HTMLRenderer) Extension() string {
	return ".html"
}
