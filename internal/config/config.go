// Package config loads settings for the shard CLI from defaults, an optional
// shard.yaml and SHARD_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SHARD_LOGGER_LEVEL.
const EnvPrefix = "SHARD"

// Config is the full configuration tree.
type Config struct {
	Logger LoggerConfig `mapstructure:"logger" yaml:"logger"`
	Render RenderConfig `mapstructure:"render" yaml:"render"`
	Loader LoaderConfig `mapstructure:"loader" yaml:"loader"`
}

// LoggerConfig configures the global zap logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig names the console color for each level.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// RenderConfig holds the viewport used when measuring. Zero width means the
// terminal width; zero height leaves the height unconstrained.
type RenderConfig struct {
	DefaultWidth  float64 `mapstructure:"default_width" yaml:"default_width"`
	DefaultHeight float64 `mapstructure:"default_height" yaml:"default_height"`
	Format        string  `mapstructure:"format" yaml:"format"`
	Concurrency   int     `mapstructure:"concurrency" yaml:"concurrency"`
}

// LoaderConfig bounds descriptor fetches.
type LoaderConfig struct {
	Timeout  time.Duration `mapstructure:"timeout" yaml:"timeout"`
	MaxBytes int64         `mapstructure:"max_bytes" yaml:"max_bytes"`
	Accept   string        `mapstructure:"accept" yaml:"accept"`
}

// NewDefaultConfig returns a Config holding only the defaults.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "shard")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Render --
	v.SetDefault("render.default_width", 0)
	v.SetDefault("render.default_height", 0)
	v.SetDefault("render.format", "tree")
	v.SetDefault("render.concurrency", 4)

	// -- Loader --
	v.SetDefault("loader.timeout", "10s")
	v.SetDefault("loader.max_bytes", 4<<20)
	v.SetDefault("loader.accept", "application/shard")
}

// Load reads configuration into v: defaults, then the config file (path, or
// shard.yaml in the working directory when path is empty), then environment.
// A missing shard.yaml is not an error; a missing explicit path is.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("shard")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates the settings held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	switch c.Logger.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logger.format must be console or json, got %q", c.Logger.Format)
	}
	if c.Render.DefaultWidth < 0 || c.Render.DefaultHeight < 0 {
		return fmt.Errorf("render.default_width and render.default_height must not be negative")
	}
	switch c.Render.Format {
	case "tree", "json":
	default:
		return fmt.Errorf("render.format must be tree or json, got %q", c.Render.Format)
	}
	if c.Render.Concurrency <= 0 {
		return fmt.Errorf("render.concurrency must be a positive integer")
	}
	if c.Loader.Timeout <= 0 {
		return fmt.Errorf("loader.timeout must be positive")
	}
	if c.Loader.MaxBytes <= 0 {
		return fmt.Errorf("loader.max_bytes must be positive")
	}
	return nil
}
