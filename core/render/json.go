// Package render — JSON renderer.
// Builds the manifest entry for a page: its metadata plus the outline read
// back from the rendered HTML and a tally of Markdown block types.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/pagegen/core"
	"github.com/gaurav-prasanna/pagegen/core/blocks"
	"github.com/gaurav-prasanna/pagegen/core/page"
)

// JSONRenderer produces structured JSON output from Markdown.
type JSONRenderer struct {
	extractor core.Extractor
}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer(extractor core.Extractor) *JSONRenderer {
	return &JSONRenderer{extractor: extractor}
}

// Page builds the manifest entry for one document.
func (r *JSONRenderer) Page(markdown string, meta core.PageMetadata) (*core.PageJSON, error) {
	p, err := page.Convert(markdown)
	if err != nil {
		return nil, err
	}
	meta.Title = p.Title

	structure, err := r.extractor.Extract(p.Content)
	if err != nil {
		return nil, fmt.Errorf("extracting structure: %w", err)
	}
	structure.BlockCounts = make(map[string]int)
	for typ, n := range blocks.Count(markdown) {
		structure.BlockCounts[typ.String()] = n
	}

	return &core.PageJSON{Metadata: meta, Structure: *structure}, nil
}

// Render converts Markdown and metadata into an indented JSON document.
func (r *JSONRenderer) Render(markdown string, meta core.PageMetadata) ([]byte, error) {
	entry, err := r.Page(markdown, meta)
	if err != nil {
		return nil, err
	}
	return Marshal(entry)
}

// Marshal indents v the way every JSON output of the pipeline is written.
func Marshal(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
