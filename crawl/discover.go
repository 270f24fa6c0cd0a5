// Package crawl discovers the Markdown sources of a site.
// It walks the content directory breadth-first, keeping discovery separate
// from the page pipeline.
package crawl

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
)

// DiscoverAll returns the slash-separated paths, relative to root, of every
// Markdown source below root. Directories are visited breadth-first and
// entries within a directory in name order, so the result is deterministic.
func DiscoverAll(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content root %s is not a directory", root)
	}

	dirs := NewQueue()
	dirs.Add(".")
	var sources []string

	for dirs.HasNext() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rel := dirs.Next()

		entries, err := os.ReadDir(filepath.Join(root, filepath.FromSlash(rel)))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", rel, err)
		}

		for _, e := range entries {
			if IsHidden(e.Name()) {
				continue
			}
			p := NormalizePath(path.Join(rel, e.Name()))
			switch {
			case e.IsDir():
				dirs.Add(p)
			case e.Type().IsRegular() && IsMarkdown(p):
				sources = append(sources, p)
			}
		}
	}

	return sources, nil
}
