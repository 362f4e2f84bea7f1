package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const (
	// MaxBackups is the maximum number of backups to keep.
	MaxBackups = 14
	// BackupDirName is the name of the backup directory.
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files.
	BackupFilePrefix = "studymood-"
)

// Info describes a single backup file.
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// Manager snapshots and restores the storage file. It works at the
// file level and is agnostic to whether the medium is JSON or SQLite;
// the backup keeps the source file's extension so a restored file
// reopens with the same medium.
type Manager struct {
	storagePath string
	backupDir   string
	suffix      string
}

func NewManager(storagePath string) *Manager {
	configDir := filepath.Dir(storagePath)
	suffix := filepath.Ext(storagePath)
	if suffix == "" {
		suffix = ".db"
	}
	return &Manager{
		storagePath: storagePath,
		backupDir:   filepath.Join(configDir, BackupDirName),
		suffix:      suffix,
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create snapshots the storage file into the backup directory and
// rotates old backups past the retention limit.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	if _, err := os.Stat(m.storagePath); os.IsNotExist(err) {
		return "", fmt.Errorf("storage does not exist: %s", m.storagePath)
	}

	backupPath, err := m.nextBackupPath()
	if err != nil {
		return "", err
	}

	if err := copyFile(m.storagePath, backupPath); err != nil {
		return "", fmt.Errorf("failed to copy storage file: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			// Rotation failure should not fail the backup itself.
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// nextBackupPath generates a timestamped filename, adding seconds and
// then a counter when a backup from the same minute already exists.
func (m *Manager) nextBackupPath() (string, error) {
	timestamp := time.Now().Format("20060102-1504")
	path := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+m.suffix)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	timestamp = time.Now().Format("20060102-150405")
	path = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+m.suffix)
	counter := 1
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
		path = filepath.Join(m.backupDir, fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, m.suffix))
		counter++
		if counter > 100 {
			return "", fmt.Errorf("failed to generate unique backup filename")
		}
	}
}

// List returns all backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, m.suffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, m.suffix)
		timestampStr = trimCounter(timestampStr)

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		backups = append(backups, Info{
			Path:      path,
			Timestamp: timestamp,
			Size:      info.Size(),
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})

	return backups, nil
}

// trimCounter strips the "-N" disambiguation suffix if present. Time
// segments are 4 or 6 digits, so anything else all-digit is a counter.
func trimCounter(timestampStr string) string {
	parts := strings.Split(timestampStr, "-")
	if len(parts) <= 2 {
		return timestampStr
	}
	last := parts[len(parts)-1]
	if len(last) == 4 || len(last) == 6 {
		return timestampStr
	}
	for _, c := range last {
		if c < '0' || c > '9' {
			return timestampStr
		}
	}
	return strings.Join(parts[:len(parts)-1], "-")
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}

	if len(backups) <= MaxBackups {
		return nil
	}

	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}

	return nil
}

// Restore replaces the storage file with a backup, snapshotting the
// current file first. The write goes through a temp file and an atomic
// rename.
func (m *Manager) Restore(backupPath string) error {
	if _, err := os.Stat(backupPath); os.IsNotExist(err) {
		return fmt.Errorf("backup file does not exist: %s", backupPath)
	}

	if _, err := os.Stat(m.storagePath); err == nil {
		currentBackup, err := m.create(true)
		if err != nil {
			return fmt.Errorf("failed to back up current storage before restore: %w", err)
		}
		fmt.Printf("Created backup of current storage: %s\n", filepath.Base(currentBackup))
	}

	tempPath := m.storagePath + ".restore.tmp"
	if err := copyFile(backupPath, tempPath); err != nil {
		return fmt.Errorf("failed to copy backup file: %w", err)
	}

	if err := os.Rename(tempPath, m.storagePath); err != nil {
		if removeErr := os.Remove(tempPath); removeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to remove temporary file %s: %v\n", tempPath, removeErr)
		}
		return fmt.Errorf("failed to restore storage: %w", err)
	}

	return nil
}

func copyFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destFile.Close()

	if _, err := destFile.ReadFrom(sourceFile); err != nil {
		return err
	}

	return destFile.Sync()
}
