package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"purifier/internal/config"
	"purifier/internal/logging"
)

// skipConfigLoad marks commands that must run without a valid config.
const skipConfigLoad = "skipConfigLoad"

// commandContext carries the persistent flags and the lazily loaded config
// shared by every subcommand.
type commandContext struct {
	configPathFlag string
	logLevelFlag   string

	loadOnce     sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	loadErr      error
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.loadOnce.Do(func() {
		c.config, c.configPath, c.configExists, c.loadErr = config.Load(strings.TrimSpace(c.configPathFlag))
	})
	return c.config, c.loadErr
}

// newLogger builds the run logger on w from the [logging] section, honouring
// --log-level.
func (c *commandContext) newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	return logging.NewFromConfig(cfg, w, strings.TrimSpace(c.logLevelFlag))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for ; cmd != nil; cmd = cmd.Parent() {
		if cmd.Annotations[skipConfigLoad] == "true" {
			return true
		}
	}
	return false
}
