// Package config loads the optional reginno configuration file.
package config

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/joshuapare/reginno/internal/regtext"
)

//go:embed sample_config.toml
var sampleConfig string

// Substitution configures directory-to-placeholder replacement in text values.
type Substitution struct {
	// SourceDir is replaced wherever it appears in text values. Empty means
	// the directory containing the input .reg file.
	SourceDir   string `toml:"source_dir"`
	Placeholder string `toml:"placeholder"`
	// Disabled turns replacement off entirely.
	Disabled bool `toml:"disabled"`
}

// Input configures how the .reg file is read.
type Input struct {
	Encoding string `toml:"encoding"`
}

// Output configures the .iss file.
type Output struct {
	Suffix     string `toml:"suffix"`
	WithBOM    bool   `toml:"with_bom"`
	LineEnding string `toml:"line_ending"`
}

// Logging configures diagnostics on stderr.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values.
type Config struct {
	Substitution Substitution `toml:"substitution"`
	Input        Input        `toml:"input"`
	Output       Output       `toml:"output"`
	Logging      Logging      `toml:"logging"`
}

// Load reads path over the defaults and validates the result. An empty path
// returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		if err := Decode(file, &cfg); err != nil {
			return nil, err
		}
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Decode parses TOML from r into cfg. Unknown keys are an error so a typo
// does not silently fall back to a default.
func Decode(r io.Reader, cfg *Config) error {
	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// Encode writes cfg as TOML.
func (c *Config) Encode(w io.Writer) error {
	enc := toml.NewEncoder(w)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// SampleConfig returns the commented default configuration file.
func SampleConfig() string { return sampleConfig }

func (c *Config) normalize() {
	c.Input.Encoding = strings.ToLower(strings.TrimSpace(c.Input.Encoding))
	if name, err := regtext.NormalizeEncoding(c.Input.Encoding); err == nil {
		c.Input.Encoding = name
	}
	c.Output.LineEnding = strings.ToLower(strings.TrimSpace(c.Output.LineEnding))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Output.Suffix != "" && !strings.HasPrefix(c.Output.Suffix, ".") {
		c.Output.Suffix = "." + c.Output.Suffix
	}
}
