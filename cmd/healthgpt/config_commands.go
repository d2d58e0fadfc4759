package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"healthgpt/internal/config"
	"healthgpt/internal/healthapi"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigValidateCommand(ctx))
	configCmd.AddCommand(newConfigInitCommand(ctx))

	return configCmd
}

// newConfigInitCommand writes the commented sample. A --api-url given on the
// command line is written into [api] base_url.
func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a sample configuration file",
		Example:     "  healthgpt --api-url https://health.example/api config init",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := sampleTarget(targetPath)
			if err != nil {
				return err
			}
			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			baseURL := strings.TrimSpace(ctx.flags.apiURL)
			if err := config.CreateSample(target, baseURL); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			if baseURL == "" {
				fmt.Fprintln(out, "Set [api] base_url (or export HEALTHGPT_API_BASE_URL) to point at your backend.")
			} else {
				fmt.Fprintf(out, "Backend: %s\n", config.NormalizeBaseURL(baseURL))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func sampleTarget(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		target, err := config.DefaultConfigPath()
		if err != nil {
			return "", fmt.Errorf("determine default config path: %w", err)
		}
		return target, nil
	}
	target, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return target, nil
}

// newConfigValidateCommand reports the effective settings after the env file,
// the config file and flags are applied. --ping also lists prompts once to
// prove the backend answers.
func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	var ping bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if !ctx.configExists {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintf(out, "API base URL: %s\n", cfg.API.BaseURL)
			fmt.Fprintf(out, "Session lock: %s\n", cfg.SessionLockPath())
			fmt.Fprintf(out, "Log file: %s\n", cfg.LogPath())
			fmt.Fprintf(out, "Colour: %s\n", cfg.UI.Color)
			if ping {
				if err := pingBackend(cmd, ctx); err != nil {
					return err
				}
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}

	cmd.Flags().BoolVar(&ping, "ping", false, "Fetch the prompt list once to check the backend is reachable")
	return cmd
}

func pingBackend(cmd *cobra.Command, ctx *commandContext) error {
	client, err := ctx.client()
	if err != nil {
		return err
	}
	result := client.ListPrompts(cmd.Context())
	if err := result.Failure(); err != nil {
		return fmt.Errorf("backend %s: %w", client.BaseURL(), withResponseBody(result, err))
	}
	records, err := healthapi.DecodeRecords(result)
	if err != nil {
		return fmt.Errorf("backend %s: %w", client.BaseURL(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Backend reachable: %s (%d prompts stored)\n", client.BaseURL(), len(records))
	return nil
}
