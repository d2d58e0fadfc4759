package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"healthgpt/internal/dashboard"
	"healthgpt/internal/logging"
)

func newDashboardCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, ctx)
		},
	}
}

func runDashboard(cmd *cobra.Command, ctx *commandContext) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	release, err := dashboard.AcquireSessionLock(cfg.SessionLockPath())
	if err != nil {
		if errors.Is(err, dashboard.ErrSessionActive) {
			return fmt.Errorf("%w (lock %s)", err, cfg.SessionLockPath())
		}
		return err
	}
	defer release()

	dispatcher, logger, err := ctx.dispatcher()
	if err != nil {
		return err
	}
	defer ctx.closeLogger()
	con, err := ctx.console(cmd)
	if err != nil {
		return err
	}

	cliLogger := logging.NewComponentLogger(logger, "cli")
	cliLogger.Info("dashboard started", logging.String("api", cfg.API.BaseURL))
	defer cliLogger.Info("dashboard stopped")

	return dashboard.NewSession(dispatcher, con, logger).Run(cmd.Context())
}
