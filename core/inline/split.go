package inline

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnbalancedDelimiter is returned when an emphasis or code delimiter is
// opened but never closed.
var ErrUnbalancedDelimiter = errors.New("unbalanced inline delimiter")

// delimiters are applied in this order. "**" must come before "_" so that
// input such as **_x_** yields a bold span containing the literal "_x_".
var delimiters = []struct {
	delim string
	kind  Kind
}{
	{"**", Bold},
	{"_", Italic},
	{"`", Code},
}

// SplitByDelimiter splits every Plain span on delim. Odd-numbered segments
// become spans of kind; empty segments are dropped. Spans that are not
// Plain pass through untouched.
func SplitByDelimiter(spans []Span, delim string, kind Kind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}
		sections := strings.Split(s.Text, delim)
		if len(sections)%2 == 0 {
			return nil, fmt.Errorf("%w: %q not closed in %q", ErrUnbalancedDelimiter, delim, s.Text)
		}
		for i, section := range sections {
			if section == "" {
				continue
			}
			if i%2 == 0 {
				out = append(out, PlainSpan(section))
			} else {
				out = append(out, Span{Text: section, Kind: kind})
			}
		}
	}
	return out, nil
}

// Alt text and link text may not contain ']'; URLs may not contain parentheses.
var (
	imageRegex = regexp.MustCompile(`!\[([^\]]*)\]\(([^()]*)\)`)
	linkRegex  = regexp.MustCompile(`\[([^\]]*)\]\(([^()]*)\)`)
)

// match is one bracket construct located in a text.
type match struct {
	start, end int
	text, url  string
}

func findImages(text string) []match {
	var out []match
	for _, loc := range imageRegex.FindAllStringSubmatchIndex(text, -1) {
		out = append(out, match{
			start: loc[0], end: loc[1],
			text: text[loc[2]:loc[3]], url: text[loc[4]:loc[5]],
		})
	}
	return out
}

// findLinks finds [text](url) constructs whose '[' is not preceded by '!'.
// RE2 has no lookbehind, so a candidate preceded by '!' is skipped and the
// search resumes one byte after its '['.
func findLinks(text string) []match {
	var out []match
	pos := 0
	for pos < len(text) {
		loc := linkRegex.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		if start > 0 && text[start-1] == '!' {
			pos = start + 1
			continue
		}
		out = append(out, match{
			start: start, end: pos + loc[1],
			text: text[pos+loc[2] : pos+loc[3]], url: text[pos+loc[4] : pos+loc[5]],
		})
		pos += loc[1]
	}
	return out
}

// ExtractImages returns the (alt, url) pairs of every ![alt](url) in text.
func ExtractImages(text string) [][2]string {
	return pairs(findImages(text))
}

// ExtractLinks returns the (text, url) pairs of every [text](url) in text
// that is not part of an image.
func ExtractLinks(text string) [][2]string {
	return pairs(findLinks(text))
}

func pairs(ms []match) [][2]string {
	out := make([][2]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, [2]string{m.text, m.url})
	}
	return out
}

// SplitImages carves Image spans out of every Plain span.
func SplitImages(spans []Span) []Span {
	return splitBrackets(spans, Image, findImages)
}

// SplitLinks carves Link spans out of every Plain span.
func SplitLinks(spans []Span) []Span {
	return splitBrackets(spans, Link, findLinks)
}

func splitBrackets(spans []Span, kind Kind, find func(string) []match) []Span {
	out := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Kind != Plain {
			out = append(out, s)
			continue
		}
		matches := find(s.Text)
		if len(matches) == 0 {
			out = append(out, s)
			continue
		}
		last := 0
		for _, m := range matches {
			if m.start > last {
				out = append(out, PlainSpan(s.Text[last:m.start]))
			}
			out = append(out, Span{Text: m.text, Kind: kind, URL: m.url})
			last = m.end
		}
		if last < len(s.Text) {
			out = append(out, PlainSpan(s.Text[last:]))
		}
	}
	return out
}

// TextToSpans runs the full inline pipeline: bold, italic and code
// delimiters, then images, then links.
func TextToSpans(text string) ([]Span, error) {
	spans := []Span{PlainSpan(text)}
	var err error
	for _, d := range delimiters {
		spans, err = SplitByDelimiter(spans, d.delim, d.kind)
		if err != nil {
			return nil, err
		}
	}
	spans = SplitImages(spans)
	return SplitLinks(spans), nil
}
