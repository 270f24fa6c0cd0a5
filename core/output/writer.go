// Package output handles file naming and writing for PageGen outputs.
// Generated files mirror the content tree: content/blog/post.md is written
// to <dest>/blog/post.html.
package output

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Writer writes rendered output to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	// Ensure the output directory exists.
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Reset removes everything in the output directory and recreates it empty.
func (w *Writer) Reset() error {
	if err := os.RemoveAll(w.OutputDir); err != nil {
		return fmt.Errorf("removing %s: %w", w.OutputDir, err)
	}
	if err := os.MkdirAll(w.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	return nil
}

// Write stores data at the source path with its extension swapped for ext,
// creating parent directories as needed. It returns the written path.
func (w *Writer) Write(sourcePath string, data []byte, ext string) (string, error) {
	fullPath := filepath.Join(w.OutputDir, filepath.FromSlash(DestPath(sourcePath, ext)))

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", fullPath, err)
	}
	return fullPath, nil
}

// DestPath maps a slash-separated source path to its output path.
// Example: blog/post.md → blog/post.html
func DestPath(sourcePath, ext string) string {
	return strings.TrimSuffix(sourcePath, path.Ext(sourcePath)) + ext
}
