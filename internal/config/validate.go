package config

import (
	"errors"
	"fmt"
)

var validLogFormats = map[string]struct{}{
	"console": {},
	"json":    {},
}

var validLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var validOutputFormats = map[string]struct{}{
	"srt":  {},
	"txt":  {},
	"pdf":  {},
	"docx": {},
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
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

func (c *Config) validatePaths() error {
	if c.Paths.WorkDir == "" {
		return errors.New("paths.work_dir must be set")
	}
	if c.Paths.LogDir == "" {
		return errors.New("paths.log_dir must be set")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if _, ok := validOutputFormats[c.Output.Format]; !ok {
		return fmt.Errorf("output.format: unsupported value %q (expected srt, txt, pdf, or docx)", c.Output.Format)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if _, ok := validLogFormats[c.Logging.Format]; !ok {
		return fmt.Errorf("logging.format: unsupported value %q (expected console or json)", c.Logging.Format)
	}
	if _, ok := validLogLevels[c.Logging.Level]; !ok {
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
