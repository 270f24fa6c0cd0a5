package blocks

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/pagegen/core/htmlnode"
	"github.com/gaurav-prasanna/pagegen/core/inline"
)

type builder func(block string) (*htmlnode.Parent, error)

var builders = map[Type]builder{
	Heading:       buildHeading,
	Code:          buildCode,
	Quote:         buildQuote,
	UnorderedList: buildUnorderedList,
	OrderedList:   buildOrderedList,
	Paragraph:     buildParagraph,
}

// ToTree converts a whole document into a div holding one node per block.
// Malformed structure degrades to paragraphs; the only failure is an
// unbalanced inline delimiter, which aborts the conversion.
func ToTree(markdown string) (*htmlnode.Parent, error) {
	blocks := Split(markdown)
	children := make([]htmlnode.Node, 0, len(blocks))
	for i, block := range blocks {
		node, err := Build(block)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", i+1, err)
		}
		children = append(children, node)
	}
	return htmlnode.NewParent("div", children), nil
}

// Build classifies a block and builds its node.
func Build(block string) (*htmlnode.Parent, error) {
	typ := Classify(block)
	build, ok := builders[typ]
	if !ok {
		return nil, fmt.Errorf("no builder for block type %s", typ)
	}
	return build(block)
}

func wrap(tag, text string) (*htmlnode.Parent, error) {
	children, err := inline.ToChildren(text)
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent(tag, children), nil
}

func buildHeading(block string) (*htmlnode.Parent, error) {
	level := headingLevel(block)
	text := strings.TrimPrefix(block[level:], " ")
	return wrap("h"+strconv.Itoa(level), text)
}

// buildCode keeps the fenced text verbatim; no inline parsing happens
// inside a code block.
func buildCode(block string) (*htmlnode.Parent, error) {
	var text string
	if len(block) > 2*len(fence) {
		text = block[len(fence) : len(block)-len(fence)]
	}
	text = strings.TrimPrefix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	code, err := inline.ToNode(inline.Span{Text: text, Kind: inline.Code})
	if err != nil {
		return nil, err
	}
	return htmlnode.NewParent("pre", []htmlnode.Node{code}), nil
}

func buildQuote(block string) (*htmlnode.Parent, error) {
	lines := strings.Split(block, "\n")
	clean := make([]string, 0, len(lines))
	for _, line := range lines {
		clean = append(clean, strings.TrimLeft(strings.TrimPrefix(line, ">"), " "))
	}
	return wrap("blockquote", strings.TrimSpace(strings.Join(clean, " ")))
}

func buildList(tag, block string, strip func(line string) string) (*htmlnode.Parent, error) {
	lines := strings.Split(block, "\n")
	items := make([]htmlnode.Node, 0, len(lines))
	for _, line := range lines {
		li, err := wrap("li", strip(line))
		if err != nil {
			return nil, err
		}
		items = append(items, li)
	}
	return htmlnode.NewParent(tag, items), nil
}

func buildUnorderedList(block string) (*htmlnode.Parent, error) {
	return buildList("ul", block, func(line string) string {
		return strings.TrimPrefix(line, "- ")
	})
}

func buildOrderedList(block string) (*htmlnode.Parent, error) {
	return buildList("ol", block, func(line string) string {
		_, item, _ := strings.Cut(line, ". ")
		return item
	})
}

func buildParagraph(block string) (*htmlnode.Parent, error) {
	return wrap("p", strings.ReplaceAll(block, "\n", " "))
}
