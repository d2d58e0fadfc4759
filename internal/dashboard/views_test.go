package dashboard_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"healthgpt/internal/dashboard"
	"healthgpt/internal/healthapi"
	"healthgpt/internal/logging"
	"healthgpt/internal/testsupport"
)

func TestHomeRendersWelcome(t *testing.T) {
	con, out := newConsole("")
	if err := (dashboard.HomeView{}).Render(context.Background(), con); err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertContains(t, out.String(), "Welcome to Health GPT Dashboard")
	assertContains(t, out.String(), "Use Audio Transcription to upload audio")
}

func TestCreateSubmitRendersBodyVerbatim(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteCreate, http.StatusCreated, `{"_id":"abc","userPrompt":"x"}`)
	con, out := newConsole("")

	phase := dispatcher.Create.Submit(context.Background(), con, dashboard.Form{UserPrompt: "x"})
	if phase != dashboard.PhaseSuccess {
		t.Fatalf("expected success, got %v", phase)
	}
	assertContains(t, out.String(), "[OK] Prompt saved successfully!")
	assertContains(t, out.String(), `{"_id":"abc","userPrompt":"x"}`)
}

func TestCreateSubmitFallsBackToStatusText(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteCreate, http.StatusInternalServerError, "internal error")
	con, out := newConsole("")

	phase := dispatcher.Create.Submit(context.Background(), con, dashboard.Form{UserPrompt: "x"})
	if phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "Error 500: internal error")
	assertNotContains(t, out.String(), "saved successfully")
}

func TestCreateSubmitShowsJSONErrorBody(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteCreate, http.StatusUnprocessableEntity, `{"error":"userPrompt is required"}`)
	con, out := newConsole("")

	dispatcher.Create.Submit(context.Background(), con, dashboard.Form{})
	assertContains(t, out.String(), "[ERROR] Error 422:")
	assertContains(t, out.String(), `"error": "userPrompt is required"`)
}

func TestCreateSubmitReportsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	view := dashboard.NewCreateView(healthapi.New(base), logging.NewNop())
	con, out := newConsole("")

	if phase := view.Submit(context.Background(), con, dashboard.Form{UserPrompt: "x"}); phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "[ERROR] Request failed: ")
}

func TestCreateRenderCollectsFormAndSubmits(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	con, out := newConsole("headache since monday\nparacetamol, ibuprofen\nfever\n\n  cough \n.\ny\n")

	if err := dispatcher.Render(context.Background(), con, dashboard.MenuCreatePrompt); err != nil {
		t.Fatalf("Render: %v", err)
	}
	assertContains(t, out.String(), "Prompt saved successfully!")

	records := backend.Records()
	if len(records) != 1 {
		t.Fatalf("expected one stored record, got %d", len(records))
	}
	record := records[0]
	if record.UserPrompt != "headache since monday" || record.MedicinesName != "paracetamol, ibuprofen" {
		t.Fatalf("unexpected record %+v", record)
	}
	if len(record.Symptoms) != 2 || record.Symptoms[0].Name != "fever" || record.Symptoms[1].Name != "cough" {
		t.Fatalf("unexpected symptoms %+v", record.Symptoms)
	}
}

func TestCreateRenderWithoutConfirmationSendsNothing(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	con, out := newConsole("x\n\nfever\n.\nn\n")

	if err := dispatcher.Render(context.Background(), con, dashboard.MenuCreatePrompt); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if backend.Calls(testsupport.RouteCreate) != 0 {
		t.Fatal("expected no create request")
	}
	assertContains(t, out.String(), "Prompt not submitted")
}

func TestListEmptyRendersNoSections(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteList, http.StatusOK, `{"data":[]}`)
	con, out := newConsole("")

	if phase := dispatcher.List.RenderAll(context.Background(), con); phase != dashboard.PhaseSuccess {
		t.Fatalf("expected success, got %v", phase)
	}
	assertContains(t, out.String(), "No prompts stored")
	assertNotContains(t, out.String(), "Prompt ID:")
	assertNotContains(t, out.String(), "[ERROR]")
}

func TestListInvalidBodyRendersError(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteList, http.StatusOK, "<html>maintenance</html>")
	con, out := newConsole("")

	if phase := dispatcher.List.RenderAll(context.Background(), con); phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "[ERROR] Invalid JSON response from API")
	assertNotContains(t, out.String(), "Prompt ID:")
}

func TestListRendersSectionsWithDefaults(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteList, http.StatusOK,
		`{"data":[{"userPrompt":"tired","medicinesName":"iron","symptoms":[{"name":"fatigue"},{"name":"pallor","severity":"mild"}]}]}`)
	con, out := newConsole("")

	dispatcher.List.RenderAll(context.Background(), con)
	output := out.String()
	assertContains(t, output, "Prompt ID: N/A")
	assertContains(t, output, "User Prompt: tired")
	assertContains(t, output, "Medicines: iron")
	assertContains(t, output, "- fatigue (Severity: unknown)")
	assertContains(t, output, "- pallor (Severity: mild)")
}

func TestListSectionsStartCollapsed(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Seed(healthapi.PromptRecord{UserPrompt: "back pain", Symptoms: []healthapi.Symptom{healthapi.NewSymptom("stiffness")}})
	con, out := newConsole("1\n\n")

	if err := dispatcher.Render(context.Background(), con, dashboard.MenuViewPrompts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	output := out.String()
	assertContains(t, output, "[+] 1. Prompt ID: p1")
	assertContains(t, output, "[-] 1. Prompt ID: p1")
	if strings.Count(output, "User Prompt: back pain") != 1 {
		t.Fatalf("expected details once after toggling, got:\n%s", output)
	}
}

func TestListDeleteDoesNotRefetch(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Seed(
		healthapi.PromptRecord{UserPrompt: "first"},
		healthapi.PromptRecord{UserPrompt: "second"},
	)
	con, out := newConsole("d 1\n\n")

	if err := dispatcher.Render(context.Background(), con, dashboard.MenuViewPrompts); err != nil {
		t.Fatalf("Render: %v", err)
	}
	output := out.String()
	assertContains(t, output, "[OK] Deleted successfully!")
	if got := backend.Calls(testsupport.RouteList); got != 1 {
		t.Fatalf("expected a single list request, got %d", got)
	}
	if got := backend.Calls(testsupport.RouteDelete); got != 1 {
		t.Fatalf("expected a single delete request, got %d", got)
	}
	if strings.Count(output, "Prompt ID: p1") != 2 {
		t.Fatalf("expected the deleted record to remain listed until the next render, got:\n%s", output)
	}
	if len(backend.Records()) != 1 {
		t.Fatalf("expected backend to hold one record, got %d", len(backend.Records()))
	}
}

func TestDeleteFailureFallsBackToText(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteDelete, http.StatusInternalServerError, "boom")
	con, out := newConsole("")

	phase := dispatcher.List.Delete(context.Background(), con, healthapi.PromptRecord{ID: "p9"})
	if phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "[ERROR] Delete failed: boom")
}

func TestDeleteWithoutIDFailsLocally(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	con, out := newConsole("")

	phase := dispatcher.List.Delete(context.Background(), con, healthapi.PromptRecord{})
	if phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	if backend.Calls(testsupport.RouteDelete) != 0 {
		t.Fatal("expected no delete request")
	}
	assertContains(t, out.String(), "record id is required")
}

func TestTranscribeRendersOutputAndRecordID(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteTranscribe, http.StatusOK, `{"data":{"output":"take rest","record_id":"r1"}}`)
	path := testsupport.WriteAudio(t, t.TempDir(), "visit.mp3", nil)
	con, out := newConsole("")

	if phase := dispatcher.Transcribe.Transcribe(context.Background(), con, path); phase != dashboard.PhaseSuccess {
		t.Fatalf("expected success, got %v\n%s", phase, out.String())
	}
	output := out.String()
	assertContains(t, output, "Uploading visit.mp3 (")
	assertContains(t, output, "[OK] Transcription & Prescription received!")
	assertContains(t, output, "take rest")
	assertContains(t, output, "Saved Record ID: r1")
}

func TestTranscribeRenderUploadsSelectedFile(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	path := testsupport.WriteAudio(t, t.TempDir(), "clinic.mp3", []byte("ID3-audio"))
	con, out := newConsole(path + "\n")

	if err := dispatcher.Render(context.Background(), con, dashboard.MenuAudioTranscription); err != nil {
		t.Fatalf("Render: %v", err)
	}
	uploads := backend.Uploads()
	if len(uploads) != 1 {
		t.Fatalf("expected one upload, got %d", len(uploads))
	}
	if uploads[0].Filename != "clinic.mp3" || uploads[0].ContentType != "audio/mpeg" || string(uploads[0].Data) != "ID3-audio" {
		t.Fatalf("unexpected upload %+v", uploads[0])
	}
	assertContains(t, out.String(), "Saved Record ID: p1")
}

func TestTranscribeMalformedBodyShowsRawText(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteTranscribe, http.StatusOK, "transcriber offline")
	path := testsupport.WriteAudio(t, t.TempDir(), "visit.mp3", nil)
	con, out := newConsole("")

	if phase := dispatcher.Transcribe.Transcribe(context.Background(), con, path); phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "transcriber offline")
	assertNotContains(t, out.String(), "received!")
}

func TestTranscribeMissingFile(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	con, out := newConsole("")

	phase := dispatcher.Transcribe.Transcribe(context.Background(), con, t.TempDir()+"/missing.mp3")
	if phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	if backend.Calls(testsupport.RouteTranscribe) != 0 {
		t.Fatal("expected no upload")
	}
	assertContains(t, out.String(), "Cannot open audio file")
}

func TestListRendersGoodRecordBesideOffTypeRecord(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteList, http.StatusOK,
		`{"data":[{"_id":"a1","userPrompt":"tired","medicinesName":"iron","symptoms":[{"name":"fatigue","severity":"mild"}]},`+
			`{"_id":"b2","userPrompt":"cough","symptoms":[{"name":"cough","durationDays":2.5,"severity":3}]}]}`)
	con, out := newConsole("")

	if phase := dispatcher.List.RenderAll(context.Background(), con); phase != dashboard.PhaseSuccess {
		t.Fatalf("expected success, got %v\n%s", phase, out.String())
	}
	output := out.String()
	assertNotContains(t, output, "Invalid JSON")
	assertContains(t, output, "Prompt ID: a1")
	assertContains(t, output, "- fatigue (Severity: mild)")
	assertContains(t, output, "Prompt ID: b2")
	assertContains(t, output, "- cough (Severity: 3)")
}

func TestListMalformedBodyLogsTier(t *testing.T) {
	backend := testsupport.NewBackend(t)
	backend.Respond(testsupport.RouteList, http.StatusOK, `{"data":{"not":"a list"}}`)
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))
	view := dashboard.NewListView(healthapi.New(backend.URL), logger)
	con, out := newConsole("")

	if phase := view.RenderAll(context.Background(), con); phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "Invalid JSON response from API")
	assertContains(t, logs.String(), `"tier":"malformed"`)
	assertContains(t, logs.String(), "list prompts response not understood")
}

func TestTranscribeFallsBackToStatusText(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteTranscribe, http.StatusInternalServerError, "internal error")
	path := testsupport.WriteAudio(t, t.TempDir(), "visit.mp3", nil)
	con, out := newConsole("")

	if phase := dispatcher.Transcribe.Transcribe(context.Background(), con, path); phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "Error 500: internal error")
	assertNotContains(t, out.String(), "received!")
}

func TestTranscribeShowsJSONErrorBody(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond(testsupport.RouteTranscribe, http.StatusUnsupportedMediaType, `{"error":"unsupported audio"}`)
	path := testsupport.WriteAudio(t, t.TempDir(), "visit.mp3", nil)
	con, out := newConsole("")

	if phase := dispatcher.Transcribe.Transcribe(context.Background(), con, path); phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "[ERROR] Error 415:")
	assertContains(t, out.String(), `"error": "unsupported audio"`)
	assertNotContains(t, out.String(), "Saved Record ID")
}

func TestTranscribeReportsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()
	view := dashboard.NewTranscribeView(healthapi.New(base), logging.NewNop())
	path := testsupport.WriteAudio(t, t.TempDir(), "visit.mp3", nil)
	con, out := newConsole("")

	if phase := view.Transcribe(context.Background(), con, path); phase != dashboard.PhaseFailure {
		t.Fatalf("expected failure, got %v", phase)
	}
	assertContains(t, out.String(), "[ERROR] Request failed: ")
}
