// File: config.go
// Title: Configuration Loading
// Description: Typed configuration for the textx command line. Files are
//              TOML or YAML, detected from the extension; missing values
//              fall back to defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Typed textx schema, discovery without a mandatory file

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	txerror "github.com/msto63/textx/core/error"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/textx"
)

// EnvConfigPath names the environment variable holding an explicit config path
const EnvConfigPath = "TEXTX_CONFIG"

// DotEnvFile is read for EnvConfigPath when the variable is not set
const DotEnvFile = ".env"

const module = "config"

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Text    TextConfig    `toml:"text" yaml:"text"`

	// path the configuration was read from, empty for defaults
	source string
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// TextConfig holds defaults for the text operations
type TextConfig struct {
	Comparison textx.Comparison `toml:"comparison" yaml:"comparison"`
}

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Default returns the configuration used when no file is found
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	content, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, txerror.NotFound(module, "load", path)
	}
	if err != nil {
		return nil, txerror.Wrap(err, "failed to read config file").
			WithCode(txerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("path", path)
	}

	format := detectFormat(path)
	cfg, err := Parse(content, format)
	if err != nil {
		return nil, txerror.Wrap(err, "failed to parse config file").
			WithOperation("config.Load").
			WithDetail("path", path)
	}
	cfg.source = path

	return cfg, nil
}

// Parse decodes configuration content in the given format and applies defaults
func Parse(content []byte, format Format) (*Config, error) {
	var cfg Config

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, txerror.Wrap(err, "YAML parse error").
				WithCode(txerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	default:
		md, err := toml.Decode(string(content), &cfg)
		if err != nil {
			return nil, txerror.Wrap(err, "TOML parse error").
				WithCode(txerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, txerror.New("unknown configuration key: " + undecoded[0].String()).
				WithCode(txerror.CodeInvalidConfig).
				WithOperation("config.Parse")
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Discover loads the first configuration found. An explicit path must exist;
// without one, TEXTX_CONFIG (from the environment or .env) and the default
// locations are tried and the defaults are returned when none of them exists.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}

	if env := envConfigPath(); env != "" {
		return Load(env)
	}

	for _, p := range DefaultPaths() {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}

	return Default(), nil
}

// DefaultPaths lists the locations searched by Discover, in order
func DefaultPaths() []string {
	paths := []string{
		"./textx.toml",
		"./textx.yaml",
		"./textx.yml",
		"./configs/textx.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "textx", "config.toml"))
	}
	return paths
}

// Validate checks values that the decoders cannot
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return txerror.Wrap(err, "invalid configuration").WithOperation("config.validate")
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return txerror.Wrap(err, "invalid configuration").WithOperation("config.validate")
	}
	return nil
}

// Source returns the path the configuration was loaded from, or "" for defaults
func (c *Config) Source() string {
	return c.source
}

// Logger builds a logger from the general section
func (c *Config) Logger() *log.Logger {
	return c.LoggerTo(os.Stderr)
}

// LoggerTo is Logger with a caller-chosen output.
func (c *Config) LoggerTo(w io.Writer) *log.Logger {
	level, _ := log.ParseLevel(c.General.LogLevel)
	format, _ := log.ParseFormat(c.General.LogFormat)
	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: w,
		Name:   "textx",
	})
}

func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// envConfigPath returns EnvConfigPath from the environment, falling back to
// the .env file of the working directory
func envConfigPath() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	vars, err := godotenv.Read(DotEnvFile)
	if err != nil {
		return ""
	}
	return vars[EnvConfigPath]
}
