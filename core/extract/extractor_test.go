package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagegen/core"
	"github.com/gaurav-prasanna/pagegen/core/blocks"
)

func TestExtract(t *testing.T) {
	md := "# Title\n\n## Part _one_\n\nSee [docs](/docs) and ![logo](/logo.png)\n\n- a\n- b\n\n1. x\n\n> quoted\n\n```\ncode\n```"
	tree, err := blocks.ToTree(md)
	require.NoError(t, err)
	html, err := tree.HTML()
	require.NoError(t, err)

	st, err := New().Extract(html)
	require.NoError(t, err)

	assert.Equal(t, []core.Heading{{Level: 1, Text: "Title"}, {Level: 2, Text: "Part one"}}, st.Headings)
	assert.Equal(t, []core.Link{{Text: "docs", Href: "/docs"}}, st.Links)
	assert.Equal(t, []core.Link{{Text: "logo", Href: "/logo.png"}}, st.Images)
	assert.Equal(t, 1, st.CodeBlocks)
	assert.Equal(t, 1, st.Quotes)
	assert.Equal(t, 2, st.Lists)
}

func TestExtractEmpty(t *testing.T) {
	st, err := New().Extract("<div></div>")
	require.NoError(t, err)
	assert.Empty(t, st.Headings)
	assert.NotNil(t, st.Links)
	assert.Zero(t, st.CodeBlocks)
}
