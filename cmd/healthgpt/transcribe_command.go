package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"healthgpt/internal/config"
	"healthgpt/internal/healthapi"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "transcribe <audio.mp3>",
		Short: "Upload an audio file for transcription and prescription",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return transcribeJSON(cmd, ctx, args[0])
			}
			dispatcher, _, err := ctx.dispatcher()
			if err != nil {
				return err
			}
			con, err := ctx.console(cmd)
			if err != nil {
				return err
			}
			return phaseError("transcribe audio", dispatcher.Transcribe.Transcribe(cmd.Context(), con, args[0]))
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the transcription result as JSON")
	return cmd
}

func transcribeJSON(cmd *cobra.Command, ctx *commandContext, path string) error {
	client, err := ctx.client()
	if err != nil {
		return err
	}
	path, err = config.ExpandPath(path)
	if err != nil {
		return err
	}
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open audio file: %w", err)
	}
	defer file.Close()

	return printDecoded(cmd, client.TranscribeAudio(cmd.Context(), filepath.Base(path), file), healthapi.DecodeTranscription)
}
