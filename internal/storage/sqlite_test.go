package storage

import (
	"path/filepath"
	"testing"
)

func setupTestSQLiteMedium(t *testing.T) *SQLiteMedium {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "studymood.db")

	m, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("failed to open sqlite medium: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestSQLiteMediumRoundTrip(t *testing.T) {
	m := setupTestSQLiteMedium(t)

	if err := m.Set(KeyUser, []byte(`{"name":"Ana"}`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}

	data, ok, err := m.Get(KeyUser)
	if err != nil {
		t.Fatalf("failed to get key: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if string(data) != `{"name":"Ana"}` {
		t.Errorf("unexpected value: %s", string(data))
	}
}

func TestSQLiteMediumUpsert(t *testing.T) {
	m := setupTestSQLiteMedium(t)

	if err := m.Set(KeyLocale, []byte("en")); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}
	if err := m.Set(KeyLocale, []byte("id")); err != nil {
		t.Fatalf("failed to overwrite key: %v", err)
	}

	data, ok, err := m.Get(KeyLocale)
	if err != nil {
		t.Fatalf("failed to get key: %v", err)
	}
	if !ok {
		t.Fatal("expected key to be present")
	}
	if string(data) != "id" {
		t.Errorf("expected overwritten value %q, got %q", "id", string(data))
	}
}

func TestSQLiteMediumDelete(t *testing.T) {
	m := setupTestSQLiteMedium(t)

	if err := m.Set(KeyPlans, []byte(`[]`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}
	if err := m.Delete(KeyPlans); err != nil {
		t.Fatalf("failed to delete key: %v", err)
	}

	_, ok, err := m.Get(KeyPlans)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("expected deleted key to read as absent")
	}
}

func TestSQLiteMediumPersistsAcrossReopen(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "studymood.db")

	m, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("failed to open sqlite medium: %v", err)
	}
	if err := m.Set(KeySubjects, []byte(`[{"id":"math"}]`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("failed to close medium: %v", err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("failed to reopen sqlite medium: %v", err)
	}
	defer reopened.Close()

	data, ok, err := reopened.Get(KeySubjects)
	if err != nil {
		t.Fatalf("failed to get key after reopen: %v", err)
	}
	if !ok {
		t.Fatal("expected key to survive reopen")
	}
	if string(data) != `[{"id":"math"}]` {
		t.Errorf("unexpected value after reopen: %s", string(data))
	}
}
