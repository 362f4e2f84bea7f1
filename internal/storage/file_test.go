package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func setupTestFileMedium(t *testing.T) *FileMedium {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "studymood.json")

	m, err := OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open file medium: %v", err)
	}
	return m
}

func TestFileMediumRoundTrip(t *testing.T) {
	m := setupTestFileMedium(t)

	if err := m.Set(KeyLocale, []byte("id")); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}

	data, ok, err := m.Get(KeyLocale)
	if err != nil {
		t.Fatalf("failed to get key: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if string(data) != "id" {
		t.Errorf("expected value %q, got %q", "id", string(data))
	}
}

func TestFileMediumMissingKey(t *testing.T) {
	m := setupTestFileMedium(t)

	_, ok, err := m.Get("sm_missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected missing key to read as absent")
	}
}

func TestFileMediumDelete(t *testing.T) {
	m := setupTestFileMedium(t)

	if err := m.Set(KeyUser, []byte(`{"name":"Ana"}`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}
	if err := m.Delete(KeyUser); err != nil {
		t.Fatalf("failed to delete key: %v", err)
	}

	_, ok, err := m.Get(KeyUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected deleted key to read as absent")
	}

	// Deleting an absent key is a no-op, not an error.
	if err := m.Delete(KeyUser); err != nil {
		t.Errorf("unexpected error deleting absent key: %v", err)
	}
}

func TestFileMediumPersistsAcrossReopen(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "studymood.json")

	m, err := OpenFile(path)
	if err != nil {
		t.Fatalf("failed to open file medium: %v", err)
	}
	if err := m.Set(KeyLogs, []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("failed to close medium: %v", err)
	}

	reopened, err := OpenFile(path)
	if err != nil {
		t.Fatalf("failed to reopen file medium: %v", err)
	}
	data, ok, err := reopened.Get(KeyLogs)
	if err != nil {
		t.Fatalf("failed to get key after reopen: %v", err)
	}
	if !ok {
		t.Fatal("expected key to survive reopen")
	}
	if string(data) != `[{"id":"a"}]` {
		t.Errorf("unexpected value after reopen: %s", string(data))
	}
}

func TestFileMediumMissingFileIsEmpty(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "does-not-exist.json")

	m, err := OpenFile(path)
	if err != nil {
		t.Fatalf("expected missing file to open as empty, got: %v", err)
	}

	_, ok, err := m.Get(KeyUser)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected empty medium to hold no keys")
	}

	// The file itself is only created on first write.
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected no file before the first Set")
	}
}
