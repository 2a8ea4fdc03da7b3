package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestLoad_MissingKey(t *testing.T) {
	s := openTestStore(t)

	var dest []string
	found, err := s.Load(context.Background(), KeyNotes, &dest)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if found {
		t.Error("expected found=false for missing key")
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	type entry struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	original := []entry{{ID: "a", Title: "first"}, {ID: "b", Title: "second"}}

	if err := s.Save(ctx, KeyNotes, original); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var loaded []entry
	found, err := s.Load(ctx, KeyNotes, &loaded)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("expected found=true after save")
	}
	if len(loaded) != 2 || loaded[0] != original[0] || loaded[1] != original[1] {
		t.Errorf("round trip mismatch: got %+v, want %+v", loaded, original)
	}
}

func TestSave_Overwrites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Save(ctx, KeyColumns, []string{"one"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := s.Save(ctx, KeyColumns, []string{"two", "three"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	var loaded []string
	found, err := s.Load(ctx, KeyColumns, &loaded)
	if err != nil || !found {
		t.Fatalf("Load failed: found=%v err=%v", found, err)
	}
	if len(loaded) != 2 || loaded[0] != "two" {
		t.Errorf("expected second save to win, got %v", loaded)
	}
}

func TestLoad_CorruptPayloadFailsOpen(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO collections (key, schema_version, payload) VALUES (?, ?, ?)",
		KeyNotes, SchemaVersion, "{not json")
	if err != nil {
		t.Fatalf("Failed to insert corrupt row: %v", err)
	}

	var dest []string
	found, err := s.Load(ctx, KeyNotes, &dest)
	if err != nil {
		t.Fatalf("corrupt payload must not surface an error, got: %v", err)
	}
	if found {
		t.Error("corrupt payload must be treated as absent")
	}
}

func TestLoad_NewerSchemaVersionTreatedAsAbsent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO collections (key, schema_version, payload) VALUES (?, ?, ?)",
		KeyNotes, SchemaVersion+1, `["valid"]`)
	if err != nil {
		t.Fatalf("Failed to insert row: %v", err)
	}

	var dest []string
	found, err := s.Load(ctx, KeyNotes, &dest)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if found {
		t.Error("forward-versioned payload must be treated as absent")
	}
}

func TestOpen_CreatesDataDirectory(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "deskboard.db")

	s, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer func() { _ = s.Close() }()

	if err := s.Save(context.Background(), KeyNotes, []string{"x"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
}
