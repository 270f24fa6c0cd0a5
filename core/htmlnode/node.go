// Package htmlnode models an HTML document as a tree of leaf and parent nodes.
// A tree serializes to HTML text with no pretty-printing and no escaping:
// values and attributes are trusted.
package htmlnode

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingTag is returned when a Parent without a tag is serialized.
	ErrMissingTag = errors.New("parent node has no tag")
	// ErrMissingChildren is returned when a Parent's children list is nil.
	// An empty, non-nil list is valid.
	ErrMissingChildren = errors.New("parent node has no children list")
	// ErrMissingValue is returned when a Leaf without a value is serialized.
	ErrMissingValue = errors.New("leaf node has no value")
)

// Node is any element of the tree.
type Node interface {
	// HTML serializes the node and everything below it.
	HTML() (string, error)
}

// Attr is one HTML attribute. Attributes render in slice order.
type Attr struct {
	Key   string
	Value string
}

// Leaf is a node with no children. An empty Tag renders the value unwrapped.
type Leaf struct {
	Tag   string
	Value *string // nil means absent; "" is a valid value
	Attrs []Attr
}

// NewLeaf creates a Leaf carrying value.
func NewLeaf(tag, value string, attrs ...Attr) *Leaf {
	return &Leaf{Tag: tag, Value: &value, Attrs: attrs}
}

// Text creates an untagged Leaf.
func Text(value string) *Leaf {
	return NewLeaf("", value)
}

// HTML renders <tag attrs>value</tag>, or the raw value when Tag is empty.
func (l *Leaf) HTML() (string, error) {
	if l.Value == nil {
		return "", ErrMissingValue
	}
	if l.Tag == "" {
		return *l.Value, nil
	}
	var b strings.Builder
	writeOpen(&b, l.Tag, l.Attrs)
	b.WriteString(*l.Value)
	writeClose(&b, l.Tag)
	return b.String(), nil
}

func (l *Leaf) String() string {
	value := "<nil>"
	if l.Value != nil {
		value = fmt.Sprintf("%q", *l.Value)
	}
	return fmt.Sprintf("Leaf(%q, %s, %v)", l.Tag, value, l.Attrs)
}

// Parent is a node with an ordered list of children and no value.
// Children must be non-nil to serialize; use an empty slice for no children.
type Parent struct {
	Tag      string
	Children []Node
	Attrs    []Attr
}

// NewParent creates a Parent. A nil children argument is normalized to an
// empty list; build a Parent literal to represent an absent list.
func NewParent(tag string, children []Node, attrs ...Attr) *Parent {
	if children == nil {
		children = []Node{}
	}
	return &Parent{Tag: tag, Children: children, Attrs: attrs}
}

// HTML renders the children in order inside <tag attrs>...</tag>.
func (p *Parent) HTML() (string, error) {
	if p.Tag == "" {
		return "", ErrMissingTag
	}
	if p.Children == nil {
		return "", fmt.Errorf("<%s>: %w", p.Tag, ErrMissingChildren)
	}
	var b strings.Builder
	writeOpen(&b, p.Tag, p.Attrs)
	for i, child := range p.Children {
		if child == nil {
			return "", fmt.Errorf("<%s> child %d is nil", p.Tag, i)
		}
		s, err := child.HTML()
		if err != nil {
			return "", fmt.Errorf("<%s> child %d: %w", p.Tag, i, err)
		}
		b.WriteString(s)
	}
	writeClose(&b, p.Tag)
	return b.String(), nil
}

func (p *Parent) String() string {
	return fmt.Sprintf("Parent(%q, %v, %v)", p.Tag, p.Children, p.Attrs)
}

// AttrsHTML renders attributes as ` key="value"` pairs in order.
func AttrsHTML(attrs []Attr) string {
	var b strings.Builder
	writeAttrs(&b, attrs)
	return b.String()
}

func writeAttrs(b *strings.Builder, attrs []Attr) {
	for _, a := range attrs {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(a.Value)
		b.WriteByte('"')
	}
}

func writeOpen(b *strings.Builder, tag string, attrs []Attr) {
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(b, attrs)
	b.WriteByte('>')
}

func writeClose(b *strings.Builder, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
