// Package cmd — render command.
// Converts a single Markdown file, with or without the page template.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagegen/core/blocks"
	"github.com/gaurav-prasanna/pagegen/core/page"
)

var (
	flagRenderTemplate string
	flagRenderBasePath string
	flagRenderOut      string
)

var renderCmd = &cobra.Command{
	Use:   "render <file.md>",
	Short: "Convert one Markdown file to HTML",
	Long: `Render converts a single Markdown file. Without --template the bare
converted body is printed; with it, the full page is produced.

Examples:
  pagegen render content/index.md
  pagegen render content/index.md --template template.html -o index.html`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVar(&flagRenderTemplate, "template", "", "Page template file")
	renderCmd.Flags().StringVar(&flagRenderBasePath, "base-path", "/", "URL prefix for root-relative links")
	renderCmd.Flags().StringVarP(&flagRenderOut, "output", "o", "", "Write to file instead of stdout")
}

func runRender(cmd *cobra.Command, args []string) error {
	markdown, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	html, err := renderFile(string(markdown), flagRenderTemplate, flagRenderBasePath)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if flagRenderOut == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
		return err
	}
	if err := os.WriteFile(flagRenderOut, []byte(html), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", flagRenderOut, err)
	}
	logger.Debug("page written", "source", args[0], "dest", flagRenderOut)
	return nil
}

// renderFile converts markdown, laying it out with the template at
// templatePath when one is given.
func renderFile(markdown, templatePath, basePath string) (string, error) {
	if templatePath == "" {
		tree, err := blocks.ToTree(markdown)
		if err != nil {
			return "", err
		}
		return tree.HTML()
	}

	tmpl, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("reading template: %w", err)
	}
	return page.Render(markdown, page.NewTemplate(string(tmpl)), basePath)
}
