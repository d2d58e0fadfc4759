package main

import (
	"strings"

	"github.com/spf13/cobra"

	"healthgpt/internal/dashboard"
	"healthgpt/internal/healthapi"
)

func newPromptsCommand(ctx *commandContext) *cobra.Command {
	promptsCmd := &cobra.Command{
		Use:   "prompts",
		Short: "Create, list, and delete prompt records",
	}

	promptsCmd.AddCommand(newPromptsCreateCommand(ctx))
	promptsCmd.AddCommand(newPromptsListCommand(ctx))
	promptsCmd.AddCommand(newPromptsDeleteCommand(ctx))

	return promptsCmd
}

func newPromptsCreateCommand(ctx *commandContext) *cobra.Command {
	var form dashboard.Form
	var symptoms []string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Store a new prompt record",
		Example: `  healthgpt prompts create --prompt "headache since monday" \
    --medicines "paracetamol, ibuprofen" --symptom fever --symptom cough`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatcher, _, err := ctx.dispatcher()
			if err != nil {
				return err
			}
			con, err := ctx.console(cmd)
			if err != nil {
				return err
			}
			form.SymptomsText = strings.Join(symptoms, "\n")
			return phaseError("create prompt", dispatcher.Create.Submit(cmd.Context(), con, form))
		},
	}

	cmd.Flags().StringVarP(&form.UserPrompt, "prompt", "p", "", "Free-text description of the complaint")
	cmd.Flags().StringVarP(&form.MedicinesName, "medicines", "m", "", "Medicine names, comma separated")
	cmd.Flags().StringArrayVarP(&symptoms, "symptom", "s", nil, "Symptom name (repeatable; may contain newlines)")
	return cmd
}

func newPromptsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show every stored prompt record",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return listPromptsJSON(cmd, ctx)
			}
			dispatcher, _, err := ctx.dispatcher()
			if err != nil {
				return err
			}
			con, err := ctx.console(cmd)
			if err != nil {
				return err
			}
			return phaseError("list prompts", dispatcher.List.RenderAll(cmd.Context(), con))
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the decoded records as JSON")
	return cmd
}

func listPromptsJSON(cmd *cobra.Command, ctx *commandContext) error {
	client, err := ctx.client()
	if err != nil {
		return err
	}
	return printDecoded(cmd, client.ListPrompts(cmd.Context()), healthapi.DecodeRecords)
}

func newPromptsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a prompt record by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dispatcher, _, err := ctx.dispatcher()
			if err != nil {
				return err
			}
			con, err := ctx.console(cmd)
			if err != nil {
				return err
			}
			record := healthapi.PromptRecord{ID: args[0]}
			return phaseError("delete prompt", dispatcher.List.Delete(cmd.Context(), con, record))
		},
	}
}
