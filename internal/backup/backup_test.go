package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func setupTestStorage(t *testing.T, name, content string) (string, *Manager) {
	tempDir := t.TempDir()
	storagePath := filepath.Join(tempDir, name)
	if err := os.WriteFile(storagePath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write storage file: %v", err)
	}
	return storagePath, NewManager(storagePath)
}

func TestCreateBackup(t *testing.T) {
	_, mgr := setupTestStorage(t, "studymood.db", "data-v1")

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	data, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("failed to read backup: %v", err)
	}
	if string(data) != "data-v1" {
		t.Errorf("backup content mismatch: %s", string(data))
	}

	// The backup keeps the storage file's extension so a restored file
	// reopens with the same medium.
	if filepath.Ext(backupPath) != ".db" {
		t.Errorf("expected .db extension, got %s", filepath.Ext(backupPath))
	}
}

func TestCreateBackupKeepsJSONExtension(t *testing.T) {
	_, mgr := setupTestStorage(t, "studymood.json", `{"sm_locale":"en"}`)

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}
	if filepath.Ext(backupPath) != ".json" {
		t.Errorf("expected .json extension, got %s", filepath.Ext(backupPath))
	}
}

func TestCreateBackupMissingStorage(t *testing.T) {
	tempDir := t.TempDir()
	mgr := NewManager(filepath.Join(tempDir, "absent.db"))

	if _, err := mgr.Create(); err == nil {
		t.Error("expected an error when the storage file does not exist")
	}
}

func TestListBackups(t *testing.T) {
	_, mgr := setupTestStorage(t, "studymood.db", "data")

	// Empty directory lists as empty, not as an error.
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if _, err := mgr.Create(); err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	backups, err = mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Size == 0 {
		t.Error("expected a non-zero backup size")
	}
}

func TestListIgnoresForeignFiles(t *testing.T) {
	_, mgr := setupTestStorage(t, "studymood.db", "data")

	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	foreign := filepath.Join(mgr.BackupDir(), "notes.txt")
	if err := os.WriteFile(foreign, []byte("not a backup"), 0600); err != nil {
		t.Fatalf("failed to write foreign file: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected foreign files to be ignored, got %d entries", len(backups))
	}
}

func TestRotation(t *testing.T) {
	_, mgr := setupTestStorage(t, "studymood.db", "data")

	// Seed more than MaxBackups files with distinct parseable
	// timestamps.
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatalf("failed to create backup dir: %v", err)
	}
	for i := 0; i < MaxBackups+5; i++ {
		name := fmt.Sprintf("%s202601%02d-1200.db", BackupFilePrefix, i+1)
		path := filepath.Join(mgr.BackupDir(), name)
		if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
			t.Fatalf("failed to seed backup: %v", err)
		}
	}

	if err := mgr.rotate(); err != nil {
		t.Fatalf("failed to rotate: %v", err)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("expected rotation down to %d backups, got %d", MaxBackups, len(backups))
	}

	// The newest files survive.
	latest := backups[0].Timestamp
	for _, b := range backups[1:] {
		if b.Timestamp.After(latest) {
			t.Error("expected backups sorted newest first")
		}
	}
}

func TestRestore(t *testing.T) {
	storagePath, mgr := setupTestStorage(t, "studymood.db", "data-v1")

	backupPath, err := mgr.Create()
	if err != nil {
		t.Fatalf("failed to create backup: %v", err)
	}

	// Change the live file, then restore the snapshot.
	if err := os.WriteFile(storagePath, []byte("data-v2"), 0600); err != nil {
		t.Fatalf("failed to modify storage: %v", err)
	}
	if err := mgr.Restore(backupPath); err != nil {
		t.Fatalf("failed to restore: %v", err)
	}

	data, err := os.ReadFile(storagePath)
	if err != nil {
		t.Fatalf("failed to read storage: %v", err)
	}
	if string(data) != "data-v1" {
		t.Errorf("expected restored content, got %s", string(data))
	}

	// Restore snapshots the pre-restore state first, so both versions
	// exist as backups.
	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	if len(backups) < 2 {
		t.Errorf("expected a pre-restore snapshot in addition to the original, got %d", len(backups))
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	_, mgr := setupTestStorage(t, "studymood.db", "data")

	if err := mgr.Restore(filepath.Join(mgr.BackupDir(), "studymood-20260101-0000.db")); err == nil {
		t.Error("expected an error for a missing backup file")
	}
}
