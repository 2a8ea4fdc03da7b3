package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_DefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.NotesPageSize != 6 {
		t.Errorf("NotesPageSize = %d, want 6", cfg.NotesPageSize)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir should default to a home subdirectory")
	}
	if cfg.Summarizer.Endpoint != "" {
		t.Errorf("summarizer should be unconfigured by default, got %q", cfg.Summarizer.Endpoint)
	}
}

func TestLoad_ReadsFileAndFillsGaps(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	configDir := filepath.Join(dir, "deskboard")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "data_dir: /tmp/boards\nsummarizer:\n  endpoint: https://api.example.com/summarize\n"
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/tmp/boards" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.Summarizer.Endpoint != "https://api.example.com/summarize" {
		t.Errorf("Endpoint = %q", cfg.Summarizer.Endpoint)
	}
	// Unset fields still get defaults.
	if cfg.NotesPageSize != 6 {
		t.Errorf("NotesPageSize = %d, want 6", cfg.NotesPageSize)
	}
}

func TestLoad_DataDirFromEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DESKBOARD_DATA_DIR", "/mnt/dashboards")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "/mnt/dashboards" {
		t.Errorf("DataDir = %q, want env value", cfg.DataDir)
	}
}

func TestLoad_TokenFromEnvironment(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("DESKBOARD_SUMMARIZER_TOKEN", "env-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Summarizer.Token != "env-secret" {
		t.Errorf("Token = %q, want env value", cfg.Summarizer.Token)
	}
}

func TestSave_NeverWritesToken(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := &Config{DataDir: "/tmp/boards", NotesPageSize: 6}
	cfg.Summarizer.Token = "secret"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "deskboard", "config.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "secret") {
		t.Error("token must not be persisted")
	}
}

func TestDatabasePath(t *testing.T) {
	cfg := &Config{DataDir: "/data/deskboard"}
	if got := cfg.DatabasePath(); got != filepath.Join("/data/deskboard", "deskboard.db") {
		t.Errorf("DatabasePath = %q", got)
	}
}
