package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"svupick/internal/config"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("OMDB_API_KEY", "env-key")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Picker.SeasonFloor != 1 || cfg.Picker.SeasonCeiling != 12 {
		t.Fatalf("unexpected season bounds: %d..%d", cfg.Picker.SeasonFloor, cfg.Picker.SeasonCeiling)
	}
	if cfg.Picker.MinRating != 8.0 {
		t.Fatalf("unexpected min rating: %v", cfg.Picker.MinRating)
	}
	if cfg.Picker.ResultCount != 3 {
		t.Fatalf("unexpected result count: %d", cfg.Picker.ResultCount)
	}
	if cfg.OMDb.APIKey != "env-key" {
		t.Fatalf("expected OMDb key from env, got %q", cfg.OMDb.APIKey)
	}
	if cfg.OMDb.BaseURL != config.Default().OMDb.BaseURL {
		t.Fatalf("unexpected OMDb base url: %q", cfg.OMDb.BaseURL)
	}
	if cfg.RatingCache.Enabled {
		t.Fatal("expected rating cache disabled by default")
	}
	wantCache := filepath.Join(tempHome, ".cache", "svupick", "ratings.db")
	if cfg.RatingCache.Path != wantCache {
		t.Fatalf("unexpected cache path: got %q want %q", cfg.RatingCache.Path, wantCache)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	t.Setenv("OMDB_API_KEY", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := `
[catalog]
path = "` + filepath.Join(dir, "episodes.csv") + `"

[picker]
season_floor = 2
season_ceiling = 8
min_rating = 7.5
result_count = 5

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Picker.SeasonFloor != 2 || cfg.Picker.SeasonCeiling != 8 {
		t.Fatalf("unexpected season bounds: %d..%d", cfg.Picker.SeasonFloor, cfg.Picker.SeasonCeiling)
	}
	if cfg.Picker.MinRating != 7.5 {
		t.Fatalf("unexpected min rating: %v", cfg.Picker.MinRating)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestValidateRejectsBadPicker(t *testing.T) {
	cfg := config.Default()
	cfg.Picker.SeasonFloor = 6
	cfg.Picker.SeasonCeiling = 2
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for inverted season bounds")
	}

	cfg = config.Default()
	cfg.Picker.MinRating = 11
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for out-of-range min rating")
	}

	cfg = config.Default()
	cfg.Picker.ResultCount = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero result count")
	}
}

func TestValidateRejectsBadLoggingFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown logging format")
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	var cfg config.Config
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		t.Fatalf("sample config does not parse: %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	expanded, err := config.ExpandPath("~/episodes.csv")
	if err != nil {
		t.Fatalf("ExpandPath returned error: %v", err)
	}
	if expanded != filepath.Join(tempHome, "episodes.csv") {
		t.Fatalf("unexpected expansion: %q", expanded)
	}
}
