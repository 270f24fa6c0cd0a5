// Package cmd — build command.
// This is the main command that orchestrates the pipeline:
// discover → fetch → render → write, after copying static assets.
//
// Pages render concurrently; a failing page is reported and the rest of the
// site is still written.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/pagegen/core"
	"github.com/gaurav-prasanna/pagegen/core/extract"
	"github.com/gaurav-prasanna/pagegen/core/fetch"
	"github.com/gaurav-prasanna/pagegen/core/output"
	"github.com/gaurav-prasanna/pagegen/core/render"
	"github.com/gaurav-prasanna/pagegen/crawl"
	"github.com/gaurav-prasanna/pagegen/internal/config"
)

const manifestName = "manifest.json"

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the site from the content directory",
	Long: `Build copies the static directory into the destination, then converts every
Markdown file below the content directory into an HTML page using the template.

Examples:
  pagegen build
  pagegen build --content docs --dest site --base-path /project/
  pagegen build --pdf --manifest --jobs 8`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	f := buildCmd.Flags()
	f.String("content", "content", "Directory holding Markdown sources")
	f.String("static", "static", "Directory copied verbatim into the destination")
	f.String("template", "template.html", "Page template file")
	f.String("dest", "public", "Output directory")
	f.String("base-path", "/", "URL prefix the site is served under")
	f.Int("jobs", 4, "Pages rendered concurrently")
	f.Bool("clean", true, "Remove the output directory before building")
	f.Bool("manifest", false, "Write "+manifestName+" describing every page")
	f.Bool("pdf", false, "Also write a PDF beside every page")

	for key, flag := range map[string]string{
		"content_dir": "content",
		"static_dir":  "static",
		"template":    "template",
		"dest_dir":    "dest",
		"base_path":   "base-path",
		"jobs":        "jobs",
		"clean":       "clean",
		"manifest":    "manifest",
		"pdf":         "pdf",
	} {
		_ = v.BindPFlag(key, f.Lookup(flag))
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg := config.Resolve(v)
	return buildSite(cmd.Context(), cfg, cmd.OutOrStdout())
}

// pageResult is the outcome of one page, kept in discovery order.
type pageResult struct {
	source  string
	written []string
	entry   *core.PageJSON
	err     error
}

// buildSite runs the whole site build for cfg, reporting progress to out.
func buildSite(ctx context.Context, cfg config.Config, out io.Writer) error {
	if cfg.DestDir == "" || filepath.Clean(cfg.DestDir) == "." {
		return errors.New("dest_dir must name a directory other than the working directory")
	}
	for name, dir := range map[string]string{"content_dir": cfg.ContentDir, "static_dir": cfg.StaticDir} {
		inside, err := isWithin(dir, cfg.DestDir)
		if err != nil {
			return err
		}
		if inside {
			return fmt.Errorf("dest_dir %s would overwrite %s %s", cfg.DestDir, name, dir)
		}
	}

	tmpl, err := os.ReadFile(cfg.Template)
	if err != nil {
		return fmt.Errorf("reading template: %w", err)
	}

	writer, err := output.New(cfg.DestDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}
	if cfg.Clean {
		if err := writer.Reset(); err != nil {
			return err
		}
	}

	if err := copyStatic(cfg.StaticDir, writer.OutputDir); err != nil {
		return err
	}

	sources, err := crawl.DiscoverAll(ctx, cfg.ContentDir)
	if err != nil {
		return fmt.Errorf("discovering pages: %w", err)
	}
	fmt.Fprintf(out, "Found %d pages in %s\n", len(sources), cfg.ContentDir)

	renderers := []core.Renderer{render.NewHTMLRenderer(string(tmpl), cfg.BasePath)}
	if cfg.PDF {
		renderers = append(renderers, render.NewPDFRenderer())
	}
	var manifest *render.JSONRenderer
	if cfg.Manifest {
		manifest = render.NewJSONRenderer(extract.New())
	}

	fetcher := fetch.New(cfg.ContentDir)
	results := make([]pageResult, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, src := range sources {
		g.Go(func() error {
			results[i] = processPage(gctx, src, fetcher, renderers, manifest, writer)
			return nil
		})
	}
	_ = g.Wait()

	var errCount int
	entries := make([]*core.PageJSON, 0, len(results))
	for i, res := range results {
		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(results), res.source)
		if res.err != nil {
			fmt.Fprintf(out, "  ✗ Error: %v\n", res.err)
			logger.Error("page failed", "source", res.source, "err", res.err)
			errCount++
			continue
		}
		for _, p := range res.written {
			fmt.Fprintf(out, "  ✓ Written: %s\n", p)
		}
		if res.entry != nil {
			entries = append(entries, res.entry)
		}
	}

	if manifest != nil {
		data, err := render.Marshal(entries)
		if err != nil {
			return err
		}
		path := filepath.Join(writer.OutputDir, manifestName)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
		fmt.Fprintf(out, "✓ Written: %s\n", path)
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d pages failed", errCount, len(results))
	}
	return nil
}

// isWithin reports whether dir is root itself or lies below it.
func isWithin(dir, root string) (bool, error) {
	if dir == "" {
		return false, nil
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", dir, err)
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", root, err)
	}
	rel, err := filepath.Rel(absRoot, absDir)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}

// copyStatic copies the static directory into dest. A missing static
// directory is not an error.
func copyStatic(staticDir, dest string) error {
	n, err := output.CopyDir(staticDir, dest)
	if errors.Is(err, fs.ErrNotExist) && n == 0 {
		logger.Debug("no static directory", "dir", staticDir)
		return nil
	}
	if err != nil {
		return fmt.Errorf("copying static files: %w", err)
	}
	logger.Debug("static files copied", "dir", staticDir, "files", n)
	return nil
}

// processPage runs a single source through every renderer.
func processPage(
	ctx context.Context,
	source string,
	fetcher core.Fetcher,
	renderers []core.Renderer,
	manifest *render.JSONRenderer,
	writer *output.Writer,
) pageResult {
	res := pageResult{source: source}

	// 1. Fetch
	src, err := fetcher.Fetch(ctx, source)
	if err != nil {
		res.err = fmt.Errorf("fetch: %w", err)
		return res
	}

	meta := core.PageMetadata{
		Source:      source,
		Dest:        output.DestPath(source, renderers[0].Extension()),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}

	// 2. Render and write every format
	for _, r := range renderers {
		data, err := r.Render(src.Markdown, meta)
		if err != nil {
			res.err = fmt.Errorf("render %s: %w", r.Extension(), err)
			return res
		}
		path, err := writer.Write(source, data, r.Extension())
		if err != nil {
			res.err = err
			return res
		}
		logger.Debug("page written", "source", source, "dest", path)
		res.written = append(res.written, path)
	}

	// 3. Manifest entry
	if manifest != nil {
		entry, err := manifest.Page(src.Markdown, meta)
		if err != nil {
			res.err = fmt.Errorf("manifest: %w", err)
			return res
		}
		res.entry = entry
	}

	return res
}
