package inline

import (
	"errors"
	"fmt"

	"github.com/gaurav-prasanna/pagegen/core/htmlnode"
)

// ErrUnknownKind is returned by ToNode for a Kind outside the closed set.
var ErrUnknownKind = errors.New("unknown span kind")

// ToNode maps a span to its leaf node.
func ToNode(s Span) (*htmlnode.Leaf, error) {
	switch s.Kind {
	case Plain:
		return htmlnode.Text(s.Text), nil
	case Bold:
		return htmlnode.NewLeaf("b", s.Text), nil
	case Italic:
		return htmlnode.NewLeaf("i", s.Text), nil
	case Code:
		return htmlnode.NewLeaf("code", s.Text), nil
	case Link:
		return htmlnode.NewLeaf("a", s.Text, htmlnode.Attr{Key: "href", Value: s.URL}), nil
	case Image:
		return htmlnode.NewLeaf("img", "",
			htmlnode.Attr{Key: "src", Value: s.URL},
			htmlnode.Attr{Key: "alt", Value: s.Text},
		), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, s.Kind)
	}
}

// ToChildren splits text into spans and maps each to a node.
func ToChildren(text string) ([]htmlnode.Node, error) {
	spans, err := TextToSpans(text)
	if err != nil {
		return nil, err
	}
	nodes := make([]htmlnode.Node, 0, len(spans))
	for _, s := range spans {
		n, err := ToNode(s)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
