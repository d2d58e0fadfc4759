package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var flags globalFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:           "healthgpt",
		Short:         "Health GPT terminal dashboard",
		Long:          "Health GPT terminal dashboard.\n\nWithout a subcommand the interactive dashboard is opened.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.closeLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, ctx)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&flags.apiURL, "api-url", "", "Backend API base URL (overrides config and environment)")
	rootCmd.PersistentFlags().StringVar(&flags.envFile, "env-file", "", "Load environment overrides from this file (default: .env when present)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Mirror debug logs to stderr")

	rootCmd.AddCommand(newDashboardCommand(ctx))
	rootCmd.AddCommand(newPromptsCommand(ctx))
	rootCmd.AddCommand(newTranscribeCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
