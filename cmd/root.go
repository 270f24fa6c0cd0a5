// Package cmd implements the CLI commands for PageGen using Cobra.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/pagegen/internal/config"
)

var (
	flagConfig  string
	flagVerbose bool

	// v holds the merged configuration for the running command.
	v = viper.New()

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:   "pagegen",
	Short: "PageGen — build a static site from Markdown",
	Long: `PageGen converts a tree of Markdown pages into HTML using a page template,
copies static assets alongside them, and writes the finished site to disk.

Usage:
  pagegen build [flags]
  pagegen render <file.md> [flags]`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (default: ./pagegen.{toml,yaml,json})")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every step at debug level")
}

// initConfig loads configuration and sets up the logger before any command runs.
func initConfig(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if flagConfig != "" {
		v.SetConfigFile(flagConfig)
	}
	if err := config.Load(v); err != nil {
		return err
	}
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", "file", used)
	}
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
