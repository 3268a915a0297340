// File: config_test.go
// Title: Configuration Tests
// Description: Tests for defaults, TOML/YAML parsing, validation and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial tests
// - 2026-10-16 v0.2.0: textx schema

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	txerror "github.com/msto63/textx/core/error"
	"github.com/msto63/textx/core/log"
	"github.com/msto63/textx/utils/textx"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.General.LogLevel != "warn" {
		t.Errorf("General.LogLevel = %v, want warn", cfg.General.LogLevel)
	}
	if cfg.General.LogFormat != "text" {
		t.Errorf("General.LogFormat = %v, want text", cfg.General.LogFormat)
	}
	if cfg.Text.Comparison != textx.IgnoreCase {
		t.Errorf("Text.Comparison = %v, want ignore_case", cfg.Text.Comparison)
	}
	if cfg.Source() != "" {
		t.Errorf("Source() = %q, want empty", cfg.Source())
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		format     Format
		wantLevel  string
		wantCmp    textx.Comparison
		wantErr    bool
		wantErrKey txerror.Code
	}{
		{
			name:      "toml full",
			content:   "[general]\nlog_level = \"debug\"\nlog_format = \"json\"\n\n[text]\ncomparison = \"ordinal\"\n",
			format:    FormatTOML,
			wantLevel: "debug",
			wantCmp:   textx.Ordinal,
		},
		{
			name:      "toml empty uses defaults",
			content:   "",
			format:    FormatTOML,
			wantLevel: "warn",
			wantCmp:   textx.IgnoreCase,
		},
		{
			name:      "yaml full",
			content:   "general:\n  log_level: info\ntext:\n  comparison: ignore_case\n",
			format:    FormatYAML,
			wantLevel: "info",
			wantCmp:   textx.IgnoreCase,
		},
		{
			name:      "yaml empty uses defaults",
			content:   "",
			format:    FormatYAML,
			wantLevel: "warn",
			wantCmp:   textx.IgnoreCase,
		},
		{
			name:       "toml bad comparison",
			content:    "[text]\ncomparison = \"fuzzy\"\n",
			format:     FormatTOML,
			wantErr:    true,
			wantErrKey: txerror.CodeInvalidConfig,
		},
		{
			name:       "yaml bad comparison",
			content:    "text:\n  comparison: fuzzy\n",
			format:     FormatYAML,
			wantErr:    true,
			wantErrKey: txerror.CodeInvalidConfig,
		},
		{
			name:       "toml unknown key",
			content:    "[text]\nlocale = \"de\"\n",
			format:     FormatTOML,
			wantErr:    true,
			wantErrKey: txerror.CodeInvalidConfig,
		},
		{
			name:       "bad log level",
			content:    "[general]\nlog_level = \"loud\"\n",
			format:     FormatTOML,
			wantErr:    true,
			wantErrKey: txerror.CodeInvalidConfig,
		},
		{
			name:       "bad log format",
			content:    "general:\n  log_format: xml\n",
			format:     FormatYAML,
			wantErr:    true,
			wantErrKey: txerror.CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.content), tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !txerror.HasCode(err, tt.wantErrKey) {
					t.Errorf("Parse() error code = %v, want %v", txerror.GetCode(err), tt.wantErrKey)
				}
				return
			}
			if cfg.General.LogLevel != tt.wantLevel {
				t.Errorf("LogLevel = %v, want %v", cfg.General.LogLevel, tt.wantLevel)
			}
			if cfg.Text.Comparison != tt.wantCmp {
				t.Errorf("Comparison = %v, want %v", cfg.Text.Comparison, tt.wantCmp)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("toml file", func(t *testing.T) {
		path := writeFile(t, dir, "a.toml", "[text]\ncomparison = \"ordinal\"\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Text.Comparison != textx.Ordinal {
			t.Errorf("Comparison = %v, want ordinal", cfg.Text.Comparison)
		}
		if cfg.Source() != path {
			t.Errorf("Source() = %q, want %q", cfg.Source(), path)
		}
	})

	t.Run("yml file", func(t *testing.T) {
		path := writeFile(t, dir, "b.yml", "text:\n  comparison: ordinal\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Text.Comparison != textx.Ordinal {
			t.Errorf("Comparison = %v, want ordinal", cfg.Text.Comparison)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "missing.toml"))
		if !txerror.HasCode(err, txerror.CodeNotFound) {
			t.Errorf("Load() error = %v, want NOT_FOUND", err)
		}
	})

	t.Run("broken file", func(t *testing.T) {
		path := writeFile(t, dir, "broken.toml", "[text\n")
		_, err := Load(path)
		if !txerror.HasCode(err, txerror.CodeInvalidConfig) {
			t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
		}
	})
}

func TestDiscover(t *testing.T) {
	t.Run("defaults when nothing exists", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("HOME", dir)
		t.Setenv(EnvConfigPath, "")

		cfg, err := Discover("")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Source() != "" {
			t.Errorf("Source() = %q, want defaults", cfg.Source())
		}
	})

	t.Run("working directory file", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("HOME", dir)
		t.Setenv(EnvConfigPath, "")
		writeFile(t, dir, "textx.yaml", "text:\n  comparison: ordinal\n")

		cfg, err := Discover("")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Text.Comparison != textx.Ordinal {
			t.Errorf("Comparison = %v, want ordinal", cfg.Text.Comparison)
		}
	})

	t.Run("environment wins over working directory", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("HOME", dir)
		writeFile(t, dir, "textx.toml", "[text]\ncomparison = \"ordinal\"\n")
		envPath := writeFile(t, dir, "env/custom.toml", "[general]\nlog_level = \"debug\"\n")
		t.Setenv(EnvConfigPath, envPath)

		cfg, err := Discover("")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Source() != envPath {
			t.Errorf("Source() = %q, want %q", cfg.Source(), envPath)
		}
		if cfg.Text.Comparison != textx.IgnoreCase {
			t.Errorf("Comparison = %v, want ignore_case", cfg.Text.Comparison)
		}
	})

	t.Run("dotenv names the file", func(t *testing.T) {
		dir := t.TempDir()
		chdir(t, dir)
		t.Setenv("HOME", dir)
		t.Setenv(EnvConfigPath, "")
		path := writeFile(t, dir, "conf/textx.toml", "[text]\ncomparison = \"ordinal\"\n")
		writeFile(t, dir, DotEnvFile, "# local settings\n"+EnvConfigPath+"="+path+"\n")

		cfg, err := Discover("")
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if cfg.Source() != path {
			t.Errorf("Source() = %q, want %q", cfg.Source(), path)
		}
		if cfg.Text.Comparison != textx.Ordinal {
			t.Errorf("Comparison = %v, want ordinal", cfg.Text.Comparison)
		}
	})

	t.Run("explicit path must exist", func(t *testing.T) {
		_, err := Discover(filepath.Join(t.TempDir(), "nope.toml"))
		if !txerror.HasCode(err, txerror.CodeNotFound) {
			t.Errorf("Discover() error = %v, want NOT_FOUND", err)
		}
	})
}

func TestConfigLogger(t *testing.T) {
	cfg := Default()
	cfg.General.LogLevel = "debug"

	logger := cfg.Logger()
	if logger.GetLevel() != log.LevelDebug {
		t.Errorf("Logger level = %v, want debug", logger.GetLevel())
	}
}

func TestFormatString(t *testing.T) {
	if FormatTOML.String() != "toml" || FormatYAML.String() != "yaml" || Format(9).String() != "unknown" {
		t.Error("Format.String() mismatch")
	}
	if detectFormat("x.YML") != FormatYAML || detectFormat("x.conf") != FormatTOML {
		t.Error("detectFormat() mismatch")
	}
}

func TestValidateReportsField(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Config)
		field string
	}{
		{"level", func(c *Config) { c.General.LogLevel = "loud" }, "general.log_level"},
		{"format", func(c *Config) { c.General.LogFormat = "xml" }, "general.log_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.edit(cfg)

			err := cfg.Validate()
			if !txerror.HasCode(err, txerror.CodeInvalidConfig) {
				t.Fatalf("Validate() = %v, want INVALID_CONFIG", err)
			}
			var e *txerror.Error
			if !errors.As(err, &e) {
				t.Fatalf("Validate() returned %T", err)
			}
			if got := e.Details()["field"]; got != tt.field {
				t.Errorf("Validate() field = %v, want %s", got, tt.field)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}
