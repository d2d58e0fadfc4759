package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"healthgpt/internal/config"
	"healthgpt/internal/dashboard"
	"healthgpt/internal/healthapi"
	"healthgpt/internal/logging"
	"healthgpt/internal/services"
)

const defaultEnvFile = ".env"

type globalFlags struct {
	configPath string
	apiURL     string
	envFile    string
	verbose    bool
}

type commandContext struct {
	flags *globalFlags

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error

	loggerOnce  sync.Once
	logger      *slog.Logger
	closeLog    func() error
	loggerErr   error
	closeLogMux sync.Mutex
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		if err := loadEnvFile(c.flags.envFile); err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "cli", "load env file", "", err)
			return
		}
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.configPath))
		if err != nil {
			c.configErr = services.Wrap(services.ErrConfiguration, "cli", "load config", "", err)
			return
		}
		if override := strings.TrimSpace(c.flags.apiURL); override != "" {
			cfg.API.BaseURL = config.NormalizeBaseURL(override)
			if err := config.ValidateBaseURL(cfg.API.BaseURL); err != nil {
				c.configErr = services.Wrap(services.ErrConfiguration, "cli", "api-url flag", "", err)
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// loadEnvFile applies KEY=value pairs from path without overriding variables
// already set. With no explicit path a missing .env is not an error.
func loadEnvFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		if err := godotenv.Load(defaultEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%s: %w", defaultEnvFile, err)
		}
		return nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return err
	}
	return godotenv.Load(expanded)
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.closeLog, c.loggerErr = logging.NewFromConfig(cfg, c.flags.verbose)
	})
	return c.logger, c.loggerErr
}

// closeLogger releases the log file. Safe to call more than once.
func (c *commandContext) closeLogger() error {
	c.closeLogMux.Lock()
	defer c.closeLogMux.Unlock()
	if c.closeLog == nil {
		return nil
	}
	err := c.closeLog()
	c.closeLog = nil
	return err
}

// dispatcher wires the backend client into the dashboard views.
func (c *commandContext) dispatcher() (*dashboard.Dispatcher, *slog.Logger, error) {
	client, err := c.client()
	if err != nil {
		return nil, nil, err
	}
	return dashboard.NewDispatcher(client, c.logger), c.logger, nil
}

func (c *commandContext) client() (*healthapi.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	return healthapi.New(cfg.API.BaseURL, healthapi.WithLogger(logger)), nil
}

func (c *commandContext) console(cmd *cobra.Command) (*dashboard.Console, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()
	return dashboard.NewConsole(cmd.InOrStdin(), out, dashboard.ColorEnabled(cfg.UI.Color, out)), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

// phaseError turns a failed interaction into a command error. The details
// were already rendered inline.
func phaseError(action string, phase dashboard.Phase) error {
	if phase == dashboard.PhaseFailure {
		return fmt.Errorf("%s failed", action)
	}
	return nil
}
