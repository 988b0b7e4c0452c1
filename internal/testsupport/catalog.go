// Package testsupport provides shared fixtures for tests that need catalog
// files or configuration files on disk.
package testsupport

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CatalogHeader is the canonical CSV header the loader expects.
const CatalogHeader = "season,episode,title,air_date,imdb_id,imdb_rating,features_george_huang,heavy_finn_munch,heavy_trial,one_sentence_plot,one_sentence_reason"

// WriteCatalog writes a catalog CSV with the canonical header and the given
// data rows into a temp directory, returning its path.
func WriteCatalog(t testing.TB, rows ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.csv")
	body := CatalogHeader + "\n" + strings.Join(rows, "\n") + "\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}
	return path
}
