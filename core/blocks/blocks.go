// Package blocks splits a Markdown document into blank-line separated
// blocks, classifies each block and builds the matching HTML node tree.
package blocks

import (
	"strconv"
	"strings"
)

// Type is the structural type of a block.
type Type int

// Types in classification precedence order; Paragraph is the fallback.
const (
	Heading Type = iota
	Code
	Quote
	UnorderedList
	OrderedList
	Paragraph
)

var typeNames = [...]string{
	Heading:       "heading",
	Code:          "code",
	Quote:         "quote",
	UnorderedList: "unordered_list",
	OrderedList:   "ordered_list",
	Paragraph:     "paragraph",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
	return typeNames[t]
}

// Types lists every block type in precedence order.
func Types() []Type {
	return []Type{Heading, Code, Quote, UnorderedList, OrderedList, Paragraph}
}

const fence = "```"

// Split cuts a document on blank lines ("\n\n"), trims each candidate and
// drops the ones left empty.
func Split(markdown string) []string {
	var out []string
	for _, block := range strings.Split(markdown, "\n\n") {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}

// rules is consulted in order; the first match wins.
var rules = []struct {
	typ   Type
	match func(string) bool
}{
	{Heading, isHeading},
	{Code, isCode},
	{Quote, isQuote},
	{UnorderedList, isUnorderedList},
	{OrderedList, isOrderedList},
}

// Classify returns the type of a single block.
func Classify(block string) Type {
	for _, r := range rules {
		if r.match(block) {
			return r.typ
		}
	}
	return Paragraph
}

// Count classifies every block of a document and tallies the types.
func Count(markdown string) map[Type]int {
	counts := make(map[Type]int)
	for _, block := range Split(markdown) {
		counts[Classify(block)]++
	}
	return counts
}

func headingLevel(block string) int {
	return len(block) - len(strings.TrimLeft(block, "#"))
}

func isHeading(block string) bool {
	level := headingLevel(block)
	return level >= 1 && level <= 6 && len(block) > level && block[level] == ' '
}

// isCode allows the opening and closing fence to overlap.
func isCode(block string) bool {
	return strings.HasPrefix(block, fence) && strings.HasSuffix(block, fence)
}

func everyLine(block string, pred func(i int, line string) bool) bool {
	for i, line := range strings.Split(block, "\n") {
		if !pred(i, line) {
			return false
		}
	}
	return true
}

func isQuote(block string) bool {
	return everyLine(block, func(_ int, line string) bool {
		return strings.HasPrefix(line, ">")
	})
}

func isUnorderedList(block string) bool {
	return everyLine(block, func(_ int, line string) bool {
		return strings.HasPrefix(line, "- ")
	})
}

// isOrderedList requires the items to be numbered 1, 2, 3... with no gaps.
func isOrderedList(block string) bool {
	return everyLine(block, func(i int, line string) bool {
		return strings.HasPrefix(line, strconv.Itoa(i+1)+". ")
	})
}
