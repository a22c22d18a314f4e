package config

import (
	"errors"
	"fmt"

	"github.com/joshuapare/reginno/internal/logging"
	"github.com/joshuapare/reginno/internal/regtext"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSubstitution(); err != nil {
		return err
	}
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSubstitution() error {
	if !c.Substitution.Disabled && c.Substitution.Placeholder == "" {
		return errors.New("substitution.placeholder must be set (or set substitution.disabled)")
	}
	return nil
}

func (c *Config) validateInput() error {
	if _, err := regtext.NormalizeEncoding(c.Input.Encoding); err != nil {
		return fmt.Errorf("input.encoding %q is not one of auto, utf8, utf16le, windows1252", c.Input.Encoding)
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Suffix == "" {
		return errors.New("output.suffix must be set")
	}
	switch c.Output.LineEnding {
	case "crlf", "lf":
		return nil
	default:
		return fmt.Errorf("output.line_ending %q is not one of crlf, lf", c.Output.LineEnding)
	}
}

func (c *Config) validateLogging() error {
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case logging.FormatAuto, logging.FormatText, logging.FormatJSON:
		return nil
	default:
		return fmt.Errorf("logging.format %q is not one of auto, text, json", c.Logging.Format)
	}
}
