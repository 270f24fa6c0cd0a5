// Package core defines the pipeline interfaces for PageGen.
// Each stage of the pipeline is a clean, testable interface:
// fetch → convert → render → write.
package core

import "context"

// Source is a Markdown document read from the content tree.
type Source struct {
	Path     string // slash-separated, relative to the content root
	Markdown string
}

// PageMetadata describes one generated page.
type PageMetadata struct {
	Source      string `json:"source"`
	Dest        string `json:"dest"`
	Title       string `json:"title"`
	GeneratedAt string `json:"generated_at"` // ISO8601
}

// Heading represents a single heading found in the content.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// Link represents a hyperlink or image reference found in the content.
type Link struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// PageStructure holds structural metadata parsed from rendered HTML.
type PageStructure struct {
	Headings    []Heading      `json:"headings"`
	Links       []Link         `json:"links"`
	Images      []Link         `json:"images"`
	CodeBlocks  int            `json:"code_blocks"`
	Quotes      int            `json:"quotes"`
	Lists       int            `json:"lists"`
	BlockCounts map[string]int `json:"block_counts,omitempty"`
}

// PageJSON is the manifest entry for a single page.
type PageJSON struct {
	Metadata  PageMetadata  `json:"metadata"`
	Structure PageStructure `json:"structure"`
}

// Fetcher reads a Markdown source relative to the content root.
type Fetcher interface {
	Fetch(ctx context.Context, path string) (*Source, error)
}

// Extractor pulls structural information out of rendered HTML.
type Extractor interface {
	Extract(html string) (*PageStructure, error)
}

// Normalizer converts HTML into Markdown in the supported dialect.
type Normalizer interface {
	Normalize(html string) (string, error)
}

// Renderer converts Markdown (and metadata) into a final output format.
type Renderer interface {
	Render(markdown string, meta PageMetadata) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".html", ".pdf").
	Extension() string
}
