package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	c.normalizeWhisper()
	c.normalizeLogging()
	c.normalizeNotifications()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.WorkDir) == "" {
		c.Paths.WorkDir = defaultWorkDir
	}
	if c.Paths.WorkDir, err = expandPath(c.Paths.WorkDir); err != nil {
		return fmt.Errorf("paths.work_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return nil
	}
	var err error
	if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
		return fmt.Errorf("output.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeWhisper() {
	c.Whisper.Binary = strings.TrimSpace(c.Whisper.Binary)
	if c.Whisper.Binary == "" {
		c.Whisper.Binary = defaultWhisperBinary
	}
	c.Whisper.Model = strings.TrimSpace(c.Whisper.Model)
	if c.Whisper.Model == "" {
		c.Whisper.Model = defaultWhisperModel
	}
	c.Whisper.Language = strings.TrimSpace(c.Whisper.Language)
	if c.Whisper.Language == "" {
		c.Whisper.Language = defaultLanguage
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}

func (c *Config) normalizeNotifications() {
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultRequestTimeout
	}
}
