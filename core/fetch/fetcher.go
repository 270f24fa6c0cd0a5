// Package fetch implements the Fetcher interface.
// It reads Markdown sources from the content directory on disk.
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gaurav-prasanna/pagegen/core"
)

// FileFetcher reads sources below a content root.
type FileFetcher struct {
	Root string
}

// New creates a FileFetcher rooted at root.
func New(root string) *FileFetcher {
	return &FileFetcher{Root: root}
}

// Fetch reads the source at the slash-separated path relative to Root.
func (f *FileFetcher) Fetch(ctx context.Context, path string) (*core.Source, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	full := filepath.Join(f.Root, filepath.FromSlash(path))
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", full, err)
	}

	return &core.Source{
		Path:     path,
		Markdown: string(data),
	}, nil
}
