// Package config resolves PageGen settings from defaults, an optional
// config file, PAGEGEN_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ConfigOption is a known key with its default and meaning.
type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the default configuration options and their meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "content_dir", Default: "content", Comment: "Directory holding Markdown sources"},
		{Key: "static_dir", Default: "static", Comment: "Directory copied verbatim into dest_dir"},
		{Key: "template", Default: "template.html", Comment: "Page template with {{ Title }} and {{ Content }}"},
		{Key: "dest_dir", Default: "public", Comment: "Output directory for the generated site"},
		{Key: "base_path", Default: "/", Comment: "URL prefix the site is served under"},
		{Key: "jobs", Default: 4, Comment: "Pages rendered concurrently"},
		{Key: "clean", Default: true, Comment: "Remove dest_dir before building"},
		{Key: "manifest", Default: false, Comment: "Write manifest.json describing every page"},
		{Key: "pdf", Default: false, Comment: "Also write a PDF beside every page"},
	}
}

// Config is the resolved configuration.
type Config struct {
	ContentDir string
	StaticDir  string
	Template   string
	DestDir    string
	BasePath   string
	Jobs       int
	Clean      bool
	Manifest   bool
	PDF        bool
}

// applyDefaults seeds Viper with defaults defined in GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// Load resolves configuration with precedence: defaults < file < env.
// Flags bound with BindPFlag take precedence over all of them.
func Load(v *viper.Viper) error {
	if v.ConfigFileUsed() == "" {
		v.SetConfigName("pagegen")
		v.AddConfigPath(".")
	}

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix("pagegen")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return nil
}

// Resolve reads the merged settings into a Config.
func Resolve(v *viper.Viper) Config {
	c := Config{
		ContentDir: v.GetString("content_dir"),
		StaticDir:  v.GetString("static_dir"),
		Template:   v.GetString("template"),
		DestDir:    v.GetString("dest_dir"),
		BasePath:   v.GetString("base_path"),
		Jobs:       v.GetInt("jobs"),
		Clean:      v.GetBool("clean"),
		Manifest:   v.GetBool("manifest"),
		PDF:        v.GetBool("pdf"),
	}
	if c.Jobs <= 0 {
		c.Jobs = 1
	}
	if !strings.HasPrefix(c.BasePath, "/") {
		c.BasePath = "/" + c.BasePath
	}
	if !strings.HasSuffix(c.BasePath, "/") {
		c.BasePath += "/"
	}
	return c
}
