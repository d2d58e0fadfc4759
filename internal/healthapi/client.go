package healthapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"healthgpt/internal/logging"
	"healthgpt/internal/services"
)

const (
	promptsPath    = "/prompts"
	transcribePath = "/audio-transcribe"

	audioField       = "audio"
	audioContentType = "audio/mpeg"

	headerRequestID = "X-Request-ID"
)

// HTTPDoer describes the HTTP client used to reach the backend.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Health GPT backend.
type Client struct {
	baseURL string
	http    HTTPDoer
	logger  *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New constructs a client for the API rooted at baseURL (for example
// http://127.0.0.1:5000/api). The base URL cannot change afterwards.
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		// No timeout: a transcription can take as long as the backend needs.
		http: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	client.logger = logging.NewComponentLogger(client.logger, component)
	return client
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreatePrompt stores a new prompt record.
func (c *Client) CreatePrompt(ctx context.Context, userPrompt, medicinesName string, symptoms []Symptom) Result {
	if symptoms == nil {
		symptoms = []Symptom{}
	}
	body, err := json.Marshal(createPromptRequest{
		UserPrompt:    userPrompt,
		MedicinesName: medicinesName,
		Symptoms:      symptoms,
	})
	if err != nil {
		return transportFailure("create prompt", fmt.Errorf("encode payload: %w", err))
	}
	return c.do(ctx, "create prompt", http.MethodPost, promptsPath, bytes.NewReader(body), "application/json")
}

// ListPrompts fetches every stored prompt record.
func (c *Client) ListPrompts(ctx context.Context) Result {
	return c.do(ctx, "list prompts", http.MethodGet, promptsPath, nil, "")
}

// DeletePrompt removes the record with the given backend identifier.
func (c *Client) DeletePrompt(ctx context.Context, id string) Result {
	id = strings.TrimSpace(id)
	if id == "" {
		err := services.Wrap(services.ErrValidation, component, "delete prompt", "record id is required", nil)
		return Result{RawText: "record id is required", Err: err}
	}
	return c.do(ctx, "delete prompt", http.MethodDelete, promptsPath+"/"+url.PathEscape(id), nil, "")
}

// TranscribeAudio uploads an audio file for transcription. The filename is sent
// as-is (base name only); format and size are left for the backend to judge.
func (c *Client) TranscribeAudio(ctx context.Context, filename string, audio io.Reader) Result {
	if audio == nil {
		return transportFailure("transcribe audio", errors.New("no audio provided"))
	}
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, audioField, filepath.Base(filename)))
	header.Set("Content-Type", audioContentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return transportFailure("transcribe audio", fmt.Errorf("create audio part: %w", err))
	}
	if _, err := io.Copy(part, audio); err != nil {
		return transportFailure("transcribe audio", fmt.Errorf("read audio: %w", err))
	}
	if err := writer.Close(); err != nil {
		return transportFailure("transcribe audio", fmt.Errorf("close multipart writer: %w", err))
	}
	return c.do(ctx, "transcribe audio", http.MethodPost, transcribePath, body, writer.FormDataContentType())
}

func (c *Client) do(ctx context.Context, operation, method, path string, body io.Reader, contentType string) Result {
	ctx, requestID := services.EnsureRequestID(ctx)
	logger := logging.WithContext(ctx, c.logger)

	endpoint := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return transportFailure(operation, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		logger.Warn("backend request failed",
			logging.String(logging.FieldEventType, "request_failed"),
			logging.String("method", method),
			logging.String("endpoint", endpoint),
			logging.Error(err),
		)
		return transportFailure(operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportFailure(operation, fmt.Errorf("read response: %w", err))
	}

	result := Result{
		OK:         resp.StatusCode >= 200 && resp.StatusCode < 300,
		StatusCode: resp.StatusCode,
		RawText:    string(raw),
	}
	if json.Valid(raw) {
		result.Payload = json.RawMessage(raw)
	}

	logger.Debug("backend request complete",
		logging.String("method", method),
		logging.String("endpoint", endpoint),
		logging.Int("status", resp.StatusCode),
		logging.Bool("json", result.HasPayload()),
		logging.Int64("duration_ms", time.Since(started).Milliseconds()),
	)
	return result
}
