package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"cuekit/internal/config"
	"cuekit/internal/cue"
	"cuekit/internal/fileutil"
	"cuekit/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) configValue() *config.Config {
	cfg, _ := c.ensureConfig()
	return cfg
}

// log returns the shared CLI logger, falling back to a no-op logger when
// configuration failed to load.
func (c *commandContext) log() *slog.Logger {
	c.loggerOnce.Do(func() {
		logger, err := logging.NewFromConfig(c.configValue())
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// parseSheet reads and parses one cue sheet using the configured input
// encoding.
func (c *commandContext) parseSheet(path string) (*cue.CueSheet, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	text, err := fileutil.ReadTextFile(path, cfg.Input.Encoding)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return cue.ParseString(text), nil
}
