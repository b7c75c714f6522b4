package preview

import (
	"github.com/gobokeh/gobokeh/internal/config"
	"github.com/spf13/pflag"
)

// Config holds the configuration for the preview server.
type Config struct {
	ListenAddress string `mapstructure:"listen_address"`
	ListenPort    int    `mapstructure:"listen_port"`
	ConfigFile    string `mapstructure:"config_file"`
	Mode          string `mapstructure:"mode"`
	ResourceRoot  string `mapstructure:"resource_root"`
	Title         string `mapstructure:"title"`
}

func configDefaults() map[string]any {
	return map[string]any{
		"listen_address": "",
		"listen_port":    5006,
		"mode":           "inline",
		"resource_root":  "",
		"title":          "gobokeh preview",
	}
}

// NewConfig creates a new Config instance with default values.
func NewConfig() *Config {
	return &Config{
		ListenPort: 5006,
		Mode:       "inline",
		Title:      "gobokeh preview",
	}
}

// AddFlags adds pflag flags for the configuration.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", "", "Config file to use")
	fs.StringVar(&c.ListenAddress, "listen-address", c.ListenAddress, "Listen address for preview server")
	fs.IntVar(&c.ListenPort, "listen-port", c.ListenPort, "Listen port for preview server")
	fs.StringVar(&c.Mode, "mode", c.Mode, "Resource mode used for the preview page")
	fs.StringVar(&c.ResourceRoot, "root", c.ResourceRoot, "Extracted asset directory for local modes")
	fs.StringVar(&c.Title, "title", c.Title, "Title of the preview page")
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

// GetListenAddress implements httpserver.Config interface
func (c *Config) GetListenAddress() string {
	return c.ListenAddress
}

// GetListenPort implements httpserver.Config interface
func (c *Config) GetListenPort() int {
	return c.ListenPort
}
