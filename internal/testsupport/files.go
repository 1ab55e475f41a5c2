package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Awesome-Austin/DataBrokerBreaker/internal/config"
)

// WriteFile writes content to path, creating parent directories.
func WriteFile(t testing.TB, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// WriteCaptured places a captured broker result where the captured-results
// collector looks for it and returns the file path.
func WriteCaptured(t testing.TB, cfg *config.Config, site, family, given, ext, content string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.ResultsDir, site, family+"_"+given+"."+ext)
	WriteFile(t, path, content)
	return path
}
