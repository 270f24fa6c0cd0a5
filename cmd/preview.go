// Package cmd — preview command.
// Renders a Markdown page in the terminal with glamour.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var (
	flagPreviewStyle string
	flagPreviewWidth int
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.md>",
	Short: "Show a Markdown page in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVar(&flagPreviewStyle, "style", "dark", "glamour style (dark, light, dracula, notty)")
	previewCmd.Flags().IntVar(&flagPreviewWidth, "width", 80, "Word wrap width")
}

func runPreview(cmd *cobra.Command, args []string) error {
	markdown, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(flagPreviewStyle),
		glamour.WithWordWrap(flagPreviewWidth),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	out, err := r.Render(string(markdown))
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
