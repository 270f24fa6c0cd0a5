// Package render — PDF renderer.
// Converts Markdown into a styled PDF using gofpdf. The document is parsed
// into the same node tree used for HTML and each top-level block is drawn
// with its own style. Images are written as their alt text.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/pagegen/core"
	"github.com/gaurav-prasanna/pagegen/core/blocks"
	"github.com/gaurav-prasanna/pagegen/core/htmlnode"
)

// headingSizes maps heading level to font size.
var headingSizes = map[int]float64{1: 18, 2: 15, 3: 13, 4: 12, 5: 11, 6: 10}

// PDFRenderer renders Markdown content as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts Markdown into PDF bytes.
func (r *PDFRenderer) Render(markdown string, meta core.PageMetadata) ([]byte, error) {
	tree, err := blocks.ToTree(markdown)
	if err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(meta.Title, true)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, child := range tree.Children {
		block, ok := child.(*htmlnode.Parent)
		if !ok {
			continue
		}
		drawBlock(pdf, tr, block)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func drawBlock(pdf *gofpdf.Fpdf, tr func(string) string, block *htmlnode.Parent) {
	switch block.Tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(block.Tag[1:])
		size := headingSizes[level]
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", size)
		pdf.MultiCell(0, size*0.6, tr(textContent(block)), "", "L", false)
		pdf.Ln(2)
	case "pre":
		pdf.Ln(2)
		pdf.SetFont("Courier", "", 9)
		pdf.SetFillColor(245, 245, 245)
		pdf.MultiCell(0, 4.5, tr(textContent(block)), "", "L", true)
		pdf.Ln(2)
	case "blockquote":
		pdf.SetFont("Helvetica", "I", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr(textContent(block)), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(3)
	case "ul", "ol":
		pdf.SetFont("Helvetica", "", 10)
		for i, item := range block.Children {
			marker := "- "
			if block.Tag == "ol" {
				marker = strconv.Itoa(i+1) + ". "
			}
			pdf.MultiCell(0, 5, tr(marker+textContent(item)), "", "L", false)
		}
		pdf.Ln(3)
	default:
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(textContent(block)), "", "L", false)
		pdf.Ln(3)
	}
}

// textContent flattens a subtree into display text.
func textContent(n htmlnode.Node) string {
	switch n := n.(type) {
	case *htmlnode.Leaf:
		if n.Value == nil {
			return ""
		}
		if n.Tag == "img" {
			for _, a := range n.Attrs {
				if a.Key == "alt" {
					return "[" + a.Value + "]"
				}
			}
			return ""
		}
		return *n.Value
	case *htmlnode.Parent:
		var b strings.Builder
		for _, c := range n.Children {
			b.WriteString(textContent(c))
		}
		return b.String()
	default:
		return ""
	}
}
