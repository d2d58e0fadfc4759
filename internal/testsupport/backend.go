package testsupport

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"healthgpt/internal/healthapi"
)

// Route names one backend endpoint.
type Route string

const (
	RouteCreate     Route = "POST /api/prompts"
	RouteList       Route = "GET /api/prompts"
	RouteDelete     Route = "DELETE /api/prompts/{id}"
	RouteTranscribe Route = "POST /api/audio-transcribe"
)

type cannedResponse struct {
	status int
	body   string
}

// Upload records one audio upload received by the backend.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Backend is an in-memory Health GPT API served over httptest.
type Backend struct {
	// URL is the API base, including the /api prefix.
	URL string

	mu         sync.Mutex
	records    []healthapi.PromptRecord
	nextID     int
	calls      map[Route]int
	overrides  map[Route]cannedResponse
	uploads    []Upload
	transcript string
}

// NewBackend starts a backend that is shut down when the test ends.
func NewBackend(t testing.TB) *Backend {
	t.Helper()

	b := &Backend{
		calls:      map[Route]int{},
		overrides:  map[Route]cannedResponse{},
		transcript: "take rest",
	}
	mux := http.NewServeMux()
	mux.HandleFunc(string(RouteCreate), b.track(RouteCreate, b.handleCreate))
	mux.HandleFunc(string(RouteList), b.track(RouteList, b.handleList))
	mux.HandleFunc(string(RouteDelete), b.track(RouteDelete, b.handleDelete))
	mux.HandleFunc(string(RouteTranscribe), b.track(RouteTranscribe, b.handleTranscribe))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	b.URL = server.URL + "/api"
	return b
}

// Seed stores records as if they had been created earlier. Records without an
// id get one assigned.
func (b *Backend) Seed(records ...healthapi.PromptRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, record := range records {
		if record.ID == "" {
			record.ID = b.newIDLocked()
		}
		b.records = append(b.records, record)
	}
}

// Records returns a copy of the stored records.
func (b *Backend) Records() []healthapi.PromptRecord {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]healthapi.PromptRecord(nil), b.records...)
}

// Calls reports how many requests route has received.
func (b *Backend) Calls(route Route) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[route]
}

// Uploads returns the audio uploads received so far.
func (b *Backend) Uploads() []Upload {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Upload(nil), b.uploads...)
}

// SetTranscript sets the text returned for audio uploads.
func (b *Backend) SetTranscript(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.transcript = text
}

// Respond makes route answer with a fixed status and body until cleared with
// a zero status.
func (b *Backend) Respond(route Route, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if status == 0 {
		delete(b.overrides, route)
		return
	}
	b.overrides[route] = cannedResponse{status: status, body: body}
}

func (b *Backend) track(route Route, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.calls[route]++
		canned, ok := b.overrides[route]
		b.mu.Unlock()
		if ok {
			w.WriteHeader(canned.status)
			_, _ = io.WriteString(w, canned.body)
			return
		}
		next(w, r)
	}
}

func (b *Backend) handleCreate(w http.ResponseWriter, r *http.Request) {
	var record healthapi.PromptRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
		return
	}
	b.mu.Lock()
	record.ID = b.newIDLocked()
	b.records = append(b.records, record)
	b.mu.Unlock()
	writeJSON(w, http.StatusCreated, record)
}

func (b *Backend) handleList(w http.ResponseWriter, _ *http.Request) {
	records := b.Records()
	if records == nil {
		records = []healthapi.PromptRecord{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": records})
}

func (b *Backend) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, record := range b.records {
		if record.ID == id {
			b.records = append(b.records[:i], b.records[i+1:]...)
			writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "prompt not found"})
}

func (b *Backend) handleTranscribe(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("audio")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "audio file is required"})
		return
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable audio"})
		return
	}

	b.mu.Lock()
	b.uploads = append(b.uploads, Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	})
	record := healthapi.PromptRecord{ID: b.newIDLocked(), UserPrompt: b.transcript, Symptoms: []healthapi.Symptom{}}
	b.records = append(b.records, record)
	b.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"data": healthapi.TranscriptionResult{Output: record.UserPrompt, RecordID: record.ID},
	})
}

func (b *Backend) newIDLocked() string {
	b.nextID++
	return fmt.Sprintf("p%d", b.nextID)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
