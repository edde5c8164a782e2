package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteCueSheet writes content to name inside a fresh temp directory and
// returns the full path.
func WriteCueSheet(t testing.TB, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write cue fixture: %v", err)
	}
	return path
}
