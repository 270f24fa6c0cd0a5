// Package inline splits a run of Markdown text into typed spans
// (plain, bold, italic, code, link, image) and maps them to leaf nodes.
//
// Emphasis is recognized by plain string splitting on a fixed sequence of
// delimiters; links and images are recognized afterwards on whatever plain
// text remains. Nested emphasis and emphasis inside link text are not
// supported.
package inline

import "fmt"

// Kind is the type of a Span.
type Kind int

const (
	Plain Kind = iota
	Bold
	Italic
	Code
	Link
	Image
)

var kindNames = [...]string{
	Plain:  "plain",
	Bold:   "bold",
	Italic: "italic",
	Code:   "code",
	Link:   "link",
	Image:  "image",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Span is a contiguous run of inline text of one kind.
// URL is set only for Link and Image.
type Span struct {
	Text string
	Kind Kind
	URL  string
}

// PlainSpan creates a Plain span.
func PlainSpan(text string) Span {
	return Span{Text: text, Kind: Plain}
}

func (s Span) String() string {
	if s.URL != "" {
		return fmt.Sprintf("(%q, %s, %q)", s.Text, s.Kind, s.URL)
	}
	return fmt.Sprintf("(%q, %s)", s.Text, s.Kind)
}
