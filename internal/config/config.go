// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-studio/internal/templates"
)

const (
	// EnvPrefix prefixes every environment variable the CLI reads, e.g.
	// RESUME_STUDIO_DATA_DIR.
	EnvPrefix = "RESUME_STUDIO"
	// fileName is the config file looked up in the working directory when no
	// explicit path is given (resume_studio.yaml, .json or .toml).
	fileName = "resume_studio"
)

// Output formats understood by commands that print reports.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the CLI configuration. Values come from, in increasing order of
// precedence: defaults, the config file, RESUME_STUDIO_* environment variables and
// command-line flags.
type Config struct {
	DataDir         string `mapstructure:"data-dir"`         // Directory holding the storage file
	DefaultTemplate string `mapstructure:"default-template"` // Template for new résumés
	Format          string `mapstructure:"format"`           // text or json
	Debug           bool   `mapstructure:"debug"`            // Debug logging
	JSON            bool   `mapstructure:"json"`             // JSON log encoding
	AssumeYes       bool   `mapstructure:"yes"`              // Skip confirmation prompts
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	return Config{
		DataDir:         defaultDataDir(),
		DefaultTemplate: "minimalist",
		Format:          FormatText,
	}
}

func defaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".resume-studio"
	}
	return filepath.Join(dir, "resume-studio")
}

// Load reads the configuration. An empty path searches the working directory for
// resume_studio.{yaml,json,toml} and tolerates its absence; an explicit path must
// exist. flags, when non-nil, are bound so that flags the user set win over every
// other source.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	defaults := Defaults()
	v.SetDefault("data-dir", defaults.DataDir)
	v.SetDefault("default-template", defaults.DefaultTemplate)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("debug", false)
	v.SetDefault("json", false)
	v.SetDefault("yes", false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(fileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("config error: 'data-dir' must not be empty")
	}
	if c.DefaultTemplate != "" {
		if _, ok := templates.Lookup(c.DefaultTemplate); !ok {
			return fmt.Errorf("config error: unknown template %q", c.DefaultTemplate)
		}
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("config error: 'format' must be %q or %q, got %q", FormatText, FormatJSON, c.Format)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DefaultTemplate == "" {
		result.DefaultTemplate = defaults.DefaultTemplate
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
