package healthapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"healthgpt/internal/services"
)

const component = "healthapi"

// Result is the uniform envelope returned by every Client operation.
//
// Payload holds the response body when it is valid JSON and is nil otherwise.
// StatusCode is zero when no response was received; in that case RawText holds
// the transport error text and Err the classified error.
type Result struct {
	OK         bool
	Payload    json.RawMessage
	StatusCode int
	RawText    string
	Err        error
}

// HasPayload reports whether the response body parsed as JSON.
func (r Result) HasPayload() bool {
	return len(r.Payload) > 0
}

// Failure returns nil for successful results and a classified error otherwise.
func (r Result) Failure() error {
	if r.OK {
		return nil
	}
	if r.Err != nil {
		return r.Err
	}
	return services.Wrap(services.ErrHTTPStatus, component, "", fmt.Sprintf("status %d", r.StatusCode), nil)
}

// IndentedPayload renders the JSON payload with two-space indentation while
// keeping key order and values exactly as received.
func (r Result) IndentedPayload() (string, bool) {
	if !r.HasPayload() {
		return "", false
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, r.Payload, "", "  "); err != nil {
		return "", false
	}
	return buf.String(), true
}

func transportFailure(operation string, err error) Result {
	wrapped := services.Wrap(services.ErrTransport, component, operation, "", err)
	return Result{
		OK:      false,
		RawText: err.Error(),
		Err:     wrapped,
	}
}

// DecodeRecords extracts the prompt records held in the payload's data field.
// Only a missing or non-array data field is an error; elements that are not
// objects are skipped.
func DecodeRecords(r Result) ([]PromptRecord, error) {
	data, err := dataField(r, "list prompts")
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, services.Wrap(services.ErrMalformedResponse, component, "list prompts", "decode records", err)
	}
	records := make([]PromptRecord, 0, len(items))
	for _, item := range items {
		var record PromptRecord
		if err := json.Unmarshal(item, &record); err != nil {
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

// DecodeTranscription extracts the transcription held in the payload's data field.
func DecodeTranscription(r Result) (TranscriptionResult, error) {
	data, err := dataField(r, "transcribe audio")
	if err != nil {
		return TranscriptionResult{}, err
	}
	var out TranscriptionResult
	if err := json.Unmarshal(data, &out); err != nil {
		return TranscriptionResult{}, services.Wrap(services.ErrMalformedResponse, component, "transcribe audio", "decode transcription", err)
	}
	return out, nil
}

func dataField(r Result, operation string) (json.RawMessage, error) {
	if !r.HasPayload() {
		return nil, services.Wrap(services.ErrMalformedResponse, component, operation, "response is not JSON", nil)
	}
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(r.Payload, &envelope); err != nil {
		return nil, services.Wrap(services.ErrMalformedResponse, component, operation, "decode envelope", err)
	}
	if len(envelope.Data) == 0 || bytes.Equal(envelope.Data, []byte("null")) {
		return nil, services.Wrap(services.ErrMalformedResponse, component, operation, "missing data field", nil)
	}
	return envelope.Data, nil
}
