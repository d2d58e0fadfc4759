package dashboard_test

import (
	"bytes"
	"strings"
	"testing"

	"healthgpt/internal/dashboard"
	"healthgpt/internal/healthapi"
	"healthgpt/internal/logging"
	"healthgpt/internal/testsupport"
)

func newConsole(input string) (*dashboard.Console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return dashboard.NewConsole(strings.NewReader(input), out, false), out
}

func newDispatcher(t *testing.T) (*dashboard.Dispatcher, *testsupport.Backend) {
	t.Helper()
	backend := testsupport.NewBackend(t)
	client := healthapi.New(backend.URL)
	return dashboard.NewDispatcher(client, logging.NewNop()), backend
}

func assertContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func assertNotContains(t *testing.T, output, unwanted string) {
	t.Helper()
	if strings.Contains(output, unwanted) {
		t.Fatalf("expected output not to contain %q, got:\n%s", unwanted, output)
	}
}
