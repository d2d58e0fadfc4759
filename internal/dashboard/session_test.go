package dashboard_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"healthgpt/internal/dashboard"
	"healthgpt/internal/healthapi"
	"healthgpt/internal/logging"
	"healthgpt/internal/testsupport"
)

func TestSessionDispatchesUntilQuit(t *testing.T) {
	dispatcher, _ := newDispatcher(t)
	con, out := newConsole("settings\nview prompts\n\nq\n2\n")

	session := dashboard.NewSession(dispatcher, con, logging.NewNop())
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	output := out.String()
	assertContains(t, output, "== Health GPT Dashboard ==")
	assertContains(t, output, `Unknown menu entry "settings"`)
	assertContains(t, output, "No prompts stored")
	assertNotContains(t, output, "Create Prompt Record")
}

func TestSessionEndsAtEndOfInput(t *testing.T) {
	dispatcher, _ := newDispatcher(t)
	con, _ := newConsole("2\nhalf typed")

	session := dashboard.NewSession(dispatcher, con, logging.NewNop())
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("expected clean exit at end of input, got %v", err)
	}
}

func TestSessionSurvivesBackendFailure(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	backend.Respond("GET /api/prompts", 503, "unavailable")
	con, out := newConsole("3\n1\nq\n")

	session := dashboard.NewSession(dispatcher, con, logging.NewNop())
	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	assertContains(t, out.String(), "Error 503: unavailable")
	if bytes.Count(out.Bytes(), []byte("Welcome to Health GPT Dashboard")) != 2 {
		t.Fatalf("expected home to render again after the failure:\n%s", out.String())
	}
}

func TestSessionStopsWhenCancelled(t *testing.T) {
	dispatcher, _ := newDispatcher(t)
	con, _ := newConsole("1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := dashboard.NewSession(dispatcher, con, logging.NewNop()).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

// promptWatcher records output and signals each time a menu prompt is shown.
type promptWatcher struct {
	mu       sync.Mutex
	buf      bytes.Buffer
	prompted chan struct{}
}

func (w *promptWatcher) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if bytes.Contains(p, []byte("Menu [")) {
		select {
		case w.prompted <- struct{}{}:
		default:
		}
	}
	return w.buf.Write(p)
}

func TestSessionReturnsWhenCancelledAtPrompt(t *testing.T) {
	dispatcher, _ := newDispatcher(t)
	stdin, stdinWriter := io.Pipe()
	t.Cleanup(func() { _ = stdinWriter.Close() })
	out := &promptWatcher{prompted: make(chan struct{}, 1)}
	con := dashboard.NewConsole(stdin, out, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		done <- dashboard.NewSession(dispatcher, con, logging.NewNop()).Run(ctx)
	}()

	select {
	case <-out.prompted:
	case <-time.After(5 * time.Second):
		t.Fatal("menu prompt never shown")
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("session still blocked on input after cancellation")
	}
}

func TestCreateFormAbandonedOnCancel(t *testing.T) {
	dispatcher, backend := newDispatcher(t)
	stdin, stdinWriter := io.Pipe()
	t.Cleanup(func() { _ = stdinWriter.Close() })
	con := dashboard.NewConsole(stdin, io.Discard, false)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- dispatcher.Render(ctx, con, dashboard.MenuCreatePrompt)
	}()

	// The write returns once the console has taken the line; the view then
	// waits on the medicines prompt.
	if _, err := io.WriteString(stdinWriter, "half a complaint\n"); err != nil {
		t.Fatalf("write stdin: %v", err)
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("create view still blocked on input after cancellation")
	}
	if backend.Calls(testsupport.RouteCreate) != 0 {
		t.Fatal("cancelled form must not be submitted")
	}
}

func TestAcquireSessionLockIsExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "dashboard.lock")

	release, err := dashboard.AcquireSessionLock(path)
	if err != nil {
		t.Fatalf("first lock: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected lock file: %v", err)
	}
	if _, err := dashboard.AcquireSessionLock(path); !errors.Is(err, dashboard.ErrSessionActive) {
		t.Fatalf("expected ErrSessionActive, got %v", err)
	}
	release()

	again, err := dashboard.AcquireSessionLock(path)
	if err != nil {
		t.Fatalf("lock after release: %v", err)
	}
	again()
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if dashboard.ColorEnabled("auto", &buf) {
		t.Fatal("auto mode must not colour a buffer")
	}
	if !dashboard.ColorEnabled("always", &buf) {
		t.Fatal("always mode must colour")
	}
	if dashboard.ColorEnabled("never", os.Stdout) {
		t.Fatal("never mode must not colour")
	}
}

func TestSummaryTableListsRecords(t *testing.T) {
	table := dashboard.SummaryTable([]healthapi.PromptRecord{
		{ID: "665f1c", MedicinesName: "aspirin", Symptoms: []healthapi.Symptom{healthapi.NewSymptom("fever"), healthapi.NewSymptom("cough")}},
		{MedicinesName: "zinc"},
	})
	for _, want := range []string{"Prompt ID", "Medicines", "665f1c", "aspirin", "N/A", "zinc", "2 records"} {
		assertContains(t, table, want)
	}
}

func TestConsolePromptHonoursCancelledContext(t *testing.T) {
	stdin, stdinWriter := io.Pipe()
	t.Cleanup(func() { _ = stdinWriter.Close() })
	con := dashboard.NewConsole(stdin, io.Discard, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := con.Prompt(ctx, "anything"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
