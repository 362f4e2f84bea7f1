package storage

import (
	"testing"

	"go.uber.org/zap"
)

type testRecord struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

func TestLoadRecord(t *testing.T) {
	m := setupTestFileMedium(t)
	log := zap.NewNop()

	if err := m.Set("sm_test", []byte(`{"id":"a","label":"Alpha"}`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}

	rec, ok := LoadRecord[testRecord](m, "sm_test", log)
	if !ok {
		t.Fatal("expected record to load")
	}
	if rec.ID != "a" || rec.Label != "Alpha" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestLoadRecordSoftFailures(t *testing.T) {
	m := setupTestFileMedium(t)
	log := zap.NewNop()

	// Absent key.
	if _, ok := LoadRecord[testRecord](m, "sm_absent", log); ok {
		t.Error("expected absent key to read as absent")
	}

	// Malformed JSON.
	if err := m.Set("sm_bad", []byte(`{not json`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}
	if _, ok := LoadRecord[testRecord](m, "sm_bad", log); ok {
		t.Error("expected malformed value to read as absent")
	}

	// Valid JSON but not an object.
	if err := m.Set("sm_array", []byte(`[1,2,3]`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}
	if _, ok := LoadRecord[testRecord](m, "sm_array", log); ok {
		t.Error("expected non-object value to read as absent")
	}
}

func TestLoadIntoKeepsDefaults(t *testing.T) {
	m := setupTestFileMedium(t)
	log := zap.NewNop()

	// The stored object omits "count"; the pre-populated default must
	// survive the decode.
	if err := m.Set("sm_test", []byte(`{"id":"b"}`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}

	rec := testRecord{ID: "default", Label: "Default", Count: 7}
	if !LoadInto(m, "sm_test", &rec, log) {
		t.Fatal("expected load to succeed")
	}
	if rec.ID != "b" {
		t.Errorf("expected stored id to win, got %q", rec.ID)
	}
	if rec.Count != 7 {
		t.Errorf("expected omitted field to keep its default, got %d", rec.Count)
	}
}

func TestLoadCollectionDropsNonObjects(t *testing.T) {
	m := setupTestFileMedium(t)
	log := zap.NewNop()

	if err := m.Set("sm_items", []byte(`[{"id":"a"},"garbage",42,null,{"id":"b"}]`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}

	items, ok := LoadCollection[testRecord](m, "sm_items", log)
	if !ok {
		t.Fatal("expected collection to load")
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 surviving elements, got %d", len(items))
	}
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Errorf("unexpected surviving elements: %+v", items)
	}
}

func TestLoadCollectionSoftFailures(t *testing.T) {
	m := setupTestFileMedium(t)
	log := zap.NewNop()

	if _, ok := LoadCollection[testRecord](m, "sm_absent", log); ok {
		t.Error("expected absent key to read as absent")
	}

	if err := m.Set("sm_bad", []byte(`not json at all`)); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}
	if _, ok := LoadCollection[testRecord](m, "sm_bad", log); ok {
		t.Error("expected malformed collection to read as absent")
	}
}

func TestSaveJSONRoundTrip(t *testing.T) {
	m := setupTestFileMedium(t)
	log := zap.NewNop()

	in := []testRecord{{ID: "a", Label: "Alpha", Count: 1}}
	if err := SaveJSON(m, "sm_items", in); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	out, ok := LoadCollection[testRecord](m, "sm_items", log)
	if !ok {
		t.Fatal("expected collection to load back")
	}
	if len(out) != 1 || out[0] != in[0] {
		t.Errorf("round trip mismatch: %+v", out)
	}
}

func TestGetString(t *testing.T) {
	m := setupTestFileMedium(t)
	log := zap.NewNop()

	if err := m.Set(KeyLocale, []byte("id")); err != nil {
		t.Fatalf("failed to set key: %v", err)
	}

	v, ok := GetString(m, KeyLocale, log)
	if !ok {
		t.Fatal("expected string to load")
	}
	if v != "id" {
		t.Errorf("expected %q, got %q", "id", v)
	}

	if _, ok := GetString(m, "sm_absent", log); ok {
		t.Error("expected absent key to read as absent")
	}
}
