package htmlnode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeafHTML(t *testing.T) {
	tests := []struct {
		name string
		leaf *Leaf
		want string
	}{
		{"plain", Text("Hello"), "Hello"},
		{"tagged", NewLeaf("p", "Hello"), "<p>Hello</p>"},
		{"link", NewLeaf("a", "Click", Attr{"href", "https://google.com"}), `<a href="https://google.com">Click</a>`},
		{"image with empty value", NewLeaf("img", "", Attr{"src", "a.png"}, Attr{"alt", "pic"}), `<img src="a.png" alt="pic"></img>`},
		{"empty untagged", Text(""), ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.leaf.HTML()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLeafMissingValue(t *testing.T) {
	_, err := (&Leaf{Tag: "p"}).HTML()
	assert.ErrorIs(t, err, ErrMissingValue)
}

func TestParentHTML(t *testing.T) {
	node := NewParent("p", []Node{
		NewLeaf("b", "Bold text"),
		Text("Normal text"),
		NewLeaf("i", "italic text"),
		Text("Normal text"),
	})
	got, err := node.HTML()
	require.NoError(t, err)
	assert.Equal(t, "<p><b>Bold text</b>Normal text<i>italic text</i>Normal text</p>", got)
}

func TestParentNested(t *testing.T) {
	node := NewParent("div", []Node{
		NewParent("span", []Node{NewLeaf("b", "grandchild")}),
	}, Attr{"class", "outer"})
	got, err := node.HTML()
	require.NoError(t, err)
	assert.Equal(t, `<div class="outer"><span><b>grandchild</b></span></div>`, got)
}

func TestParentErrors(t *testing.T) {
	t.Run("missing tag", func(t *testing.T) {
		_, err := NewParent("", []Node{Text("x")}).HTML()
		assert.ErrorIs(t, err, ErrMissingTag)
	})
	t.Run("nil children", func(t *testing.T) {
		_, err := (&Parent{Tag: "ul"}).HTML()
		assert.ErrorIs(t, err, ErrMissingChildren)
	})
	t.Run("empty children is valid", func(t *testing.T) {
		got, err := (&Parent{Tag: "ul", Children: []Node{}}).HTML()
		require.NoError(t, err)
		assert.Equal(t, "<ul></ul>", got)
	})
	t.Run("child error propagates", func(t *testing.T) {
		_, err := NewParent("div", []Node{&Leaf{Tag: "b"}}).HTML()
		assert.ErrorIs(t, err, ErrMissingValue)
	})
}

func TestAttrsHTMLKeepsOrder(t *testing.T) {
	got := AttrsHTML([]Attr{{"src", "u"}, {"alt", "a"}, {"class", "c"}})
	assert.Equal(t, ` src="u" alt="a" class="c"`, got)
}

func TestEqual(t *testing.T) {
	a := NewParent("p", []Node{NewLeaf("a", "x", Attr{"href", "u"}), Text("y")}, Attr{"class", "intro"})
	b := NewParent("p", []Node{NewLeaf("a", "x", Attr{"href", "u"}), Text("y")}, Attr{"class", "intro"})
	assert.True(t, Equal(a, b))

	c := NewParent("p", []Node{NewLeaf("a", "x", Attr{"href", "v"}), Text("y")}, Attr{"class", "intro"})
	assert.False(t, Equal(a, c))

	assert.False(t, Equal(Text("x"), NewParent("p", nil)))
	assert.False(t, Equal(&Leaf{}, Text("")))
	assert.False(t, Equal(&Parent{Tag: "ul"}, NewParent("ul", nil)))
	assert.True(t, Equal(nil, nil))
}
