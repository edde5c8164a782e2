package config

import (
	"fmt"
	"unicode"

	"cuekit/internal/fileutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateInput(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateInput() error {
	if !fileutil.KnownEncoding(c.Input.Encoding) {
		return fmt.Errorf("input.encoding: unsupported value %q (use auto, utf-8, latin1, or gbk)", c.Input.Encoding)
	}
	return nil
}

func (c *Config) validateOutput() error {
	for _, r := range c.Output.Indent {
		if !unicode.IsSpace(r) {
			return fmt.Errorf("output.indent must contain only whitespace, got %q", c.Output.Indent)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q (use debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}
