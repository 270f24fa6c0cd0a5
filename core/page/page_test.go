package page

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/pagegen/core/inline"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		md   string
		want string
	}{
		{"# Hello", "Hello"},
		{"# Hello  ", "Hello"},
		{"intro\n\n## Sub\n# Real Title\n# Second", "Real Title"},
	}
	for _, tt := range tests {
		got, err := ExtractTitle(tt.md)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestExtractTitleMissing(t *testing.T) {
	_, err := ExtractTitle("## Only h2\n\ntext")
	assert.ErrorIs(t, err, ErrNoTitle)

	_, err = ExtractTitle(" # indented")
	assert.ErrorIs(t, err, ErrNoTitle)
}

func TestTemplateApply(t *testing.T) {
	tmpl := NewTemplate("<title>{{ Title }}</title><h1>{{ Title }}</h1><main>{{ Content }}</main>")
	assert.Equal(t, "<title>T</title><h1>T</h1><main><p>x</p></main>", tmpl.Apply("T", "<p>x</p>"))
}

func TestRewriteBasePath(t *testing.T) {
	html := `<a href="/blog">b</a><img src="/a.png"><a href="https://x.dev/">x</a>`
	assert.Equal(t, html, RewriteBasePath(html, "/"))
	assert.Equal(t, html, RewriteBasePath(html, ""))
	assert.Equal(t,
		`<a href="/site/blog">b</a><img src="/site/a.png"><a href="https://x.dev/">x</a>`,
		RewriteBasePath(html, "/site"))
}

func TestRender(t *testing.T) {
	tmpl := NewTemplate("<html><title>{{ Title }}</title><body>{{ Content }}</body></html>")
	got, err := Render("# Home\n\nGo [back](/index.html)", tmpl, "/docs/")
	require.NoError(t, err)
	assert.Equal(t,
		`<html><title>Home</title><body><div><h1>Home</h1><p>Go <a href="/docs/index.html">back</a></p></div></body></html>`,
		got)
}

func TestRenderErrors(t *testing.T) {
	tmpl := NewTemplate("{{ Content }}")
	_, err := Render("no title", tmpl, "/")
	assert.ErrorIs(t, err, ErrNoTitle)

	_, err = Render("# T\n\nbroken `code", tmpl, "/")
	assert.ErrorIs(t, err, inline.ErrUnbalancedDelimiter)
}
