package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"healthgpt/internal/config"
	"healthgpt/internal/healthapi"
	"healthgpt/internal/logging"
)

// TranscribeView uploads one audio file and shows the transcript.
type TranscribeView struct {
	api    API
	logger *slog.Logger
}

// NewTranscribeView builds the Audio Transcription view.
func NewTranscribeView(api API, logger *slog.Logger) *TranscribeView {
	return &TranscribeView{api: api, logger: logging.NewComponentLogger(logger, "transcribe")}
}

// Item reports the menu entry this view renders.
func (v *TranscribeView) Item() MenuItem { return MenuAudioTranscription }

// Render asks for an audio path and uploads it. A blank path returns to the
// menu.
func (v *TranscribeView) Render(ctx context.Context, con *Console) error {
	con.Header("Upload Audio for Gemini Transcription & Prescription")
	path, err := con.Prompt(ctx, "MP3 file path (blank to return)")
	if err != nil {
		return err
	}
	if strings.TrimSpace(path) == "" {
		return nil
	}
	v.Transcribe(ctx, con, path)
	return nil
}

// Transcribe uploads the file at path. Picking a file is the submission.
func (v *TranscribeView) Transcribe(ctx context.Context, con *Console, path string) Phase {
	it := beginInteraction(ctx, v.logger, MenuAudioTranscription, "transcribe audio")
	path, err := config.ExpandPath(strings.TrimSpace(path))
	if err != nil {
		con.Error(fmt.Sprintf("Cannot open audio file: %v", err))
		return it.finish(false)
	}

	file, err := os.Open(path)
	if err != nil {
		con.Error(fmt.Sprintf("Cannot open audio file: %v", err))
		return it.finish(false)
	}
	defer file.Close()

	name := filepath.Base(path)
	if info, err := file.Stat(); err == nil {
		con.Info(fmt.Sprintf("Uploading %s (%s)", name, humanize.Bytes(uint64(info.Size()))))
	} else {
		con.Info("Uploading " + name)
	}
	if !strings.EqualFold(filepath.Ext(name), ".mp3") {
		con.Warn("file is not an .mp3; the backend decides whether it is accepted")
	}

	it.submit()
	result := v.api.TranscribeAudio(it.ctx, name, file)
	if !result.OK {
		renderFailure(con, result, "")
		return it.fail(result.Failure())
	}
	transcription, err := healthapi.DecodeTranscription(result)
	if err != nil {
		con.Block(result.RawText)
		return it.fail(err)
	}
	con.Success("Transcription & Prescription received!")
	con.Println("Output:")
	con.Block(transcription.Output)
	con.Println("Saved Record ID: " + transcription.RecordID)
	return it.finish(true)
}
