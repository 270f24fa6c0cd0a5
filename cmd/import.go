// Package cmd — import command.
// Converts an existing HTML page into Markdown so it can join the content tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/pagegen/core/blocks"
	"github.com/gaurav-prasanna/pagegen/core/normalize"
)

var flagImportOut string

var importCmd = &cobra.Command{
	Use:   "import <file.html>",
	Short: "Convert an HTML page to Markdown",
	Long: `Import converts an HTML file into Markdown. Constructs the converter does not
support (nested lists, tables, nested emphasis) are kept as plain text.

Examples:
  pagegen import old/about.html -o content/about.md`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(importCmd)

	importCmd.Flags().StringVarP(&flagImportOut, "output", "o", "", "Write to file instead of stdout")
}

func runImport(cmd *cobra.Command, args []string) error {
	html, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	markdown, err := normalize.New().Normalize(string(html))
	if err != nil {
		return err
	}

	// The result must convert back cleanly to be usable as content.
	if _, err := blocks.ToTree(markdown); err != nil {
		logger.Warn("imported markdown will not build", "source", args[0], "err", err)
	}

	if flagImportOut == "" {
		_, err = fmt.Fprint(cmd.OutOrStdout(), markdown)
		return err
	}
	if err := os.WriteFile(flagImportOut, []byte(markdown), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", flagImportOut, err)
	}
	return nil
}
