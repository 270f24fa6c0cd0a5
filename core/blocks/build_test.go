package blocks

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagegen/core/htmlnode"
	"github.com/gaurav-prasanna/pagegen/core/inline"
)

func render(t *testing.T, markdown string) string {
	t.Helper()
	tree, err := ToTree(markdown)
	require.NoError(t, err)
	html, err := tree.HTML()
	require.NoError(t, err)
	return html
}

func TestToTreeHTML(t *testing.T) {
	tests := []struct {
		name string
		md   string
		want string
	}{
		{"empty", "", "<div></div>"},
		{"heading", "# Hello", "<div><h1>Hello</h1></div>"},
		{"headings", "# H1\n\n## H2\n\n### H3", "<div><h1>H1</h1><h2>H2</h2><h3>H3</h3></div>"},
		{"invalid headings", "#NoSpace Here\n\n####### Invalid H7", "<div><p>#NoSpace Here</p><p>####### Invalid H7</p></div>"},
		{"unordered list", "- a\n- b", "<div><ul><li>a</li><li>b</li></ul></div>"},
		{"ordered list", "1. Item one\n2. Item two", "<div><ol><li>Item one</li><li>Item two</li></ol></div>"},
		{"ordered gap", "1. a\n3. b", "<div><p>1. a 3. b</p></div>"},
		{"broken list", "- Item one\nNot a list", "<div><p>- Item one Not a list</p></div>"},
		{"quote", "> This is a quote\n> On two lines.", "<div><blockquote>This is a quote On two lines.</blockquote></div>"},
		{"quote with empty line", "> Line 1\n>\n> Line 3", "<div><blockquote>Line 1  Line 3</blockquote></div>"},
		{"quote inline", "> **Bold** quote", "<div><blockquote><b>Bold</b> quote</blockquote></div>"},
		{"code", "```\nprint('Hello')\n```", "<div><pre><code>print('Hello')</code></pre></div>"},
		{"code single line", "```inline code```", "<div><pre><code>inline code</code></pre></div>"},
		{"code keeps markup", "```\nthis _is_ **raw**\n```", "<div><pre><code>this _is_ **raw**</code></pre></div>"},
		{"bare fence", "```", "<div><pre><code></code></pre></div>"},
		{
			"paragraph",
			"Line one\nLine two with **bold**",
			"<div><p>Line one Line two with <b>bold</b></p></div>",
		},
		{
			"list inline code",
			"- Item with `code` inline",
			"<div><ul><li>Item with <code>code</code> inline</li></ul></div>",
		},
		{
			"mixed document",
			"Para 1\n\n\nPara 2\n\n- List\n- Item",
			"<div><p>Para 1</p><p>Para 2</p><ul><li>List</li><li>Item</li></ul></div>",
		},
		{
			"link and image",
			"See ![cat](/cat.png) and [home](/)",
			`<div><p>See <img src="/cat.png" alt="cat"></img> and <a href="/">home</a></p></div>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(t, tt.md))
		})
	}
}

func TestToTreeStructure(t *testing.T) {
	tree, err := ToTree("# Hello")
	require.NoError(t, err)
	want := htmlnode.NewParent("div", []htmlnode.Node{
		htmlnode.NewParent("h1", []htmlnode.Node{htmlnode.Text("Hello")}),
	})
	assert.True(t, htmlnode.Equal(want, tree), "got %v", tree)
}

func TestToTreeEmptyHasNonNilChildren(t *testing.T) {
	tree, err := ToTree("")
	require.NoError(t, err)
	assert.NotNil(t, tree.Children)
	assert.Empty(t, tree.Children)
}

func TestToTreeUnbalanced(t *testing.T) {
	_, err := ToTree("# Fine\n\nHello `world")
	require.Error(t, err)
	assert.ErrorIs(t, err, inline.ErrUnbalancedDelimiter)
	assert.Contains(t, err.Error(), "block 2")
}

func TestBuildHeadingStripsOneSpace(t *testing.T) {
	node, err := Build("##  Two")
	require.NoError(t, err)
	html, err := node.HTML()
	require.NoError(t, err)
	assert.Equal(t, "<h2> Two</h2>", html)
}

func TestBuildCodeStripsOneNewline(t *testing.T) {
	node, err := Build("```\n\ncode\n\n```")
	require.NoError(t, err)
	html, err := node.HTML()
	require.NoError(t, err)
	assert.Equal(t, "<pre><code>\ncode\n</code></pre>", html)
}

func TestToTreeConcurrent(t *testing.T) {
	const workers = 50
	md := "# Title\n\nSome **bold** and _italic_ with [a link](/x) and ![img](/i.png)\n\n- a\n- b\n\n1. one\n2. two\n\n> quote\n\n```\ncode\n```"
	want := render(t, md)

	var wg sync.WaitGroup
	results := make([]string, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tree, err := ToTree(md + fmt.Sprintf("\n\npage %d", i))
			if err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = tree.HTML()
		}()
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		wantI := want[:len(want)-len("</div>")] + fmt.Sprintf("<p>page %d</p></div>", i)
		assert.Equal(t, wantI, results[i])
	}
}
