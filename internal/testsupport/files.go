package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteAudio writes an audio fixture named name under dir and returns its
// path. Empty data writes a minimal ID3 header.
func WriteAudio(t testing.TB, dir, name string, data []byte) string {
	t.Helper()

	if len(data) == 0 {
		data = []byte("ID3\x04\x00\x00\x00\x00\x00\x00")
	}
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
