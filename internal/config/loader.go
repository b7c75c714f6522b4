package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configurable represents a type that can be configured via flags and
// config files.
type Configurable interface {
	// AddFlags should add command-line flags to the provided FlagSet
	AddFlags(fs *pflag.FlagSet)
}

// ConfigLoader provides common configuration loading functionality.
type ConfigLoader struct {
	configFile string
	defaults   map[string]any
}

// NewConfigLoader creates a new ConfigLoader instance.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{
		defaults: make(map[string]any),
	}
}

// SetConfigFile sets the configuration file path.
func (cl *ConfigLoader) SetConfigFile(configFile string) {
	cl.configFile = configFile
}

// SetDefault sets a default value for a configuration key.
func (cl *ConfigLoader) SetDefault(key string, value any) {
	cl.defaults[key] = value
}

// SetDefaults sets multiple default values at once.
func (cl *ConfigLoader) SetDefaults(defaults map[string]any) {
	for key, value := range defaults {
		cl.defaults[key] = value
	}
}

// LoadConfig loads configuration with proper precedence: defaults < config
// file < explicit flags. The config parameter should be a pointer to the
// configuration struct to populate.
func (cl *ConfigLoader) LoadConfig(config any) error {
	return cl.LoadConfigWithFlagSet(config, pflag.CommandLine)
}

// LoadConfigWithFlagSet loads configuration using a custom flag set.
func (cl *ConfigLoader) LoadConfigWithFlagSet(config any, fs *pflag.FlagSet) error {
	v := viper.New()

	for key, value := range cl.defaults {
		v.SetDefault(key, value)
	}

	if cl.configFile != "" {
		v.SetConfigFile(cl.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("%w %s: %v", ErrConfigFileRead, cl.configFile, err)
		}
	}

	// Only flags the user explicitly set override the config file, which
	// preserves the precedence: defaults < config file < explicit flags.
	fs.Visit(func(flag *pflag.Flag) {
		v.Set(viperKey(flag.Name), flagValue(flag))
	})

	if err := v.Unmarshal(config, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return fmt.Errorf("%w: %v", ErrConfigUnmarshal, err)
	}

	return nil
}

// viperKey converts a flag name to a viper key: hyphens become underscores,
// dots are preserved for nested sections.
func viperKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// flagValue extracts a properly typed value from a pflag flag rather than
// its string representation.
func flagValue(flag *pflag.Flag) any {
	s := flag.Value.String()

	switch flag.Value.Type() {
	case "bool":
		if val, err := strconv.ParseBool(s); err == nil {
			return val
		}
	case "int", "int8", "int16", "int32", "int64":
		if val, err := strconv.ParseInt(s, 10, 64); err == nil {
			return val
		}
	case "uint", "uint8", "uint16", "uint32", "uint64":
		if val, err := strconv.ParseUint(s, 10, 64); err == nil {
			return val
		}
	case "float32", "float64":
		if val, err := strconv.ParseFloat(s, 64); err == nil {
			return val
		}
	case "stringSlice":
		if sliceFlag, ok := flag.Value.(pflag.SliceValue); ok {
			return sliceFlag.GetSlice()
		}
	}

	return s
}

// StandardConfigPattern provides a convenient way to implement the standard
// config pattern.
func StandardConfigPattern(config Configurable, configFile string, defaults map[string]any) error {
	loader := NewConfigLoader()
	loader.SetConfigFile(configFile)
	if defaults != nil {
		loader.SetDefaults(defaults)
	}

	return loader.LoadConfig(config)
}
