// Package config loads the minic TOML configuration shared by the CLI and
// the language server.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/minic/format"
)

// DefaultPath is read when no --config flag is given and the file exists.
const DefaultPath = "minic.toml"

type Config struct {
	Input  InputConfig  `toml:"input"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type InputConfig struct {
	// MaxBytes caps the size of a source file. Zero means no limit.
	MaxBytes int64 `toml:"max_bytes"`
}

type OutputConfig struct {
	Format string `toml:"format"`
	Color  *bool  `toml:"color"`
}

type LogConfig struct {
	Verbosity int    `toml:"verbosity"`
	File      string `toml:"file"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads path and fills in defaults for unset keys. Keys that do not
// belong to the configuration are an error.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadOrDefault loads path when it is set. An empty path falls back to
// DefaultPath if that file exists and to Default otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if _, err := os.Stat(DefaultPath); err == nil {
		return Load(DefaultPath)
	}
	return Default(), nil
}

func (c *Config) applyDefaults() {
	if c.Input.MaxBytes == 0 {
		c.Input.MaxBytes = 4 << 20
	}
	if c.Output.Format == "" {
		c.Output.Format = string(format.Tree)
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Input.MaxBytes < 0 {
		errs = append(errs, fmt.Errorf("input.max_bytes must not be negative, got %d", c.Input.MaxBytes))
	}
	if _, err := format.ParseFormat(c.Output.Format); err != nil {
		errs = append(errs, fmt.Errorf("output.format: %w", err))
	}
	if c.Log.Verbosity < 0 || c.Log.Verbosity > 5 {
		errs = append(errs, fmt.Errorf("log.verbosity must be between 0 and 5, got %d", c.Log.Verbosity))
	}
	return errors.Join(errs...)
}

// UseColor reports whether diagnostics may be styled.
func (c *Config) UseColor() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// LogFile returns the log destination for commonlog, nil meaning stderr.
func (c *Config) LogFile() *string {
	if c.Log.File == "" {
		return nil
	}
	return &c.Log.File
}
