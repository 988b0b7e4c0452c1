package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes the given TOML content to a config file in a temp
// directory and returns its path.
func WriteConfig(t testing.TB, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
