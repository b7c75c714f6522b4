package bundler

import (
	"github.com/gobokeh/gobokeh/internal/config"
	"github.com/spf13/pflag"
)

// Output formats accepted by --format.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatPage = "page"
)

// Config holds the configuration for the bundle command.
type Config struct {
	ConfigFile string `mapstructure:"config_file"`
	Mode       string `mapstructure:"mode"`
	Root       string `mapstructure:"root"`
	Format     string `mapstructure:"format"`
	Widgets    bool   `mapstructure:"widgets"`
	Custom     string `mapstructure:"custom"`
	ExtractTo  string `mapstructure:"extract_to"`
	Title      string `mapstructure:"title"`
}

func configDefaults() map[string]any {
	return map[string]any{
		"mode":       "cdn",
		"root":       "",
		"format":     FormatHTML,
		"widgets":    false,
		"custom":     "",
		"extract_to": "",
		"title":      "gobokeh document",
	}
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		Mode:   "cdn",
		Format: FormatHTML,
		Title:  "gobokeh document",
	}
}

// AddFlags adds pflag flags for the configuration.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", "", "Config file to use")
	fs.StringVar(&c.Mode, "mode", c.Mode, "Resource mode selector")
	fs.StringVar(&c.Root, "root", c.Root, "Extracted asset directory for local modes")
	fs.StringVar(&c.Format, "format", c.Format, "Output format: json, html, or page")
	fs.BoolVar(&c.Widgets, "widgets", c.Widgets, "Assume the document references widget models")
	fs.StringVar(&c.Custom, "custom", c.Custom, "Custom model kind referenced by the document: precompiled or compiled")
	fs.StringVar(&c.ExtractTo, "extract-to", c.ExtractTo, "Extract the bundled assets to this directory and exit")
	fs.StringVar(&c.Title, "title", c.Title, "Document title for page output")
}

// LoadConfig loads the configuration from a file and binds it to the
// Config struct.
func (c *Config) LoadConfig() error {
	return config.StandardConfigPattern(c, c.ConfigFile, configDefaults())
}

// LoadConfigWithFlagSet loads configuration using a custom flag set.
func (c *Config) LoadConfigWithFlagSet(fs *pflag.FlagSet) error {
	loader := config.NewConfigLoader()
	loader.SetConfigFile(c.ConfigFile)
	loader.SetDefaults(configDefaults())

	return loader.LoadConfigWithFlagSet(c, fs)
}
