// Package page assembles a finished HTML page: it pulls the title out of the
// Markdown, converts the body and substitutes both into a template.
package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/pagegen/core/blocks"
)

// ErrNoTitle is returned when a document has no "# " heading line.
var ErrNoTitle = errors.New("no h1 title found")

// Template placeholders.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ExtractTitle returns the text of the first line starting with "# ".
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "# ") {
			return strings.Trim(line[1:], " "), nil
		}
	}
	return "", ErrNoTitle
}

// Template is a page layout holding the title and content placeholders.
type Template struct {
	source string
}

// NewTemplate wraps template text.
func NewTemplate(source string) *Template {
	return &Template{source: source}
}

// Apply substitutes every title and content placeholder.
func (t *Template) Apply(title, content string) string {
	out := strings.ReplaceAll(t.source, TitlePlaceholder, title)
	return strings.ReplaceAll(out, ContentPlaceholder, content)
}

// RewriteBasePath prefixes root-relative href and src attributes with base,
// so a site can be served below a sub-path. A base of "" or "/" is a no-op.
func RewriteBasePath(html, base string) string {
	if base == "" || base == "/" {
		return html
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	r := strings.NewReplacer(`href="/`, `href="`+base, `src="/`, `src="`+base)
	return r.Replace(html)
}

// Page is a converted Markdown document.
type Page struct {
	Title   string
	Content string // serialized body, without the template
}

// Convert extracts the title and serializes the body of a document.
func Convert(markdown string) (*Page, error) {
	title, err := ExtractTitle(markdown)
	if err != nil {
		return nil, err
	}
	tree, err := blocks.ToTree(markdown)
	if err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	content, err := tree.HTML()
	if err != nil {
		return nil, fmt.Errorf("serializing html: %w", err)
	}
	return &Page{Title: title, Content: content}, nil
}

// Render converts a document and lays it out with tmpl, rewriting links
// for base.
func Render(markdown string, tmpl *Template, base string) (string, error) {
	p, err := Convert(markdown)
	if err != nil {
		return "", err
	}
	return RewriteBasePath(tmpl.Apply(p.Title, p.Content), base), nil
}
