package dashboard

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ErrSessionActive is returned when another dashboard holds the session lock.
var ErrSessionActive = errors.New("another dashboard session is already running")

// AcquireSessionLock takes the single-session lock at path. The returned
// function releases it.
func AcquireSessionLock(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("ensure lock directory: %w", err)
	}
	lock := flock.New(path)
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire session lock: %w", err)
	}
	if !locked {
		return nil, ErrSessionActive
	}
	return func() { _ = lock.Unlock() }, nil
}
