// Package extract implements the Extractor interface.
// It reads a rendered page back with goquery and collects its outline:
// headings, links, images and a count of structural elements.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/pagegen/core"
)

// headingSelector matches every heading level in document order.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// HTMLExtractor collects the outline of an HTML fragment or document.
type HTMLExtractor struct{}

// New creates an HTMLExtractor.
func New() *HTMLExtractor {
	return &HTMLExtractor{}
}

// Extract parses html and returns its structure.
func (e *HTMLExtractor) Extract(html string) (*core.PageStructure, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	st := &core.PageStructure{
		Headings: []core.Heading{},
		Links:    []core.Link{},
		Images:   []core.Link{},
	}

	doc.Find(headingSelector).Each(func(_ int, s *goquery.Selection) {
		name := goquery.NodeName(s)
		st.Headings = append(st.Headings, core.Heading{
			Level: int(name[1] - '0'),
			Text:  strings.TrimSpace(s.Text()),
		})
	})

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		st.Links = append(st.Links, core.Link{Text: strings.TrimSpace(s.Text()), Href: href})
	})

	doc.Find("img[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		st.Images = append(st.Images, core.Link{Text: alt, Href: src})
	})

	st.CodeBlocks = doc.Find("pre").Length()
	st.Quotes = doc.Find("blockquote").Length()
	st.Lists = doc.Find("ul, ol").Length()

	return st, nil
}
