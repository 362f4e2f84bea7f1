package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileMedium keeps all keys in a single JSON document of string values,
// written in full after every Set. Every value is stored as a string,
// including values that are themselves JSON.
type FileMedium struct {
	path string
	doc  map[string]string
}

func OpenFile(path string) (*FileMedium, error) {
	m := &FileMedium{
		path: path,
		doc:  make(map[string]string),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: the file is created on the first Set.
			return m, nil
		}
		return nil, fmt.Errorf("failed to read storage: %w", err)
	}

	if err := json.Unmarshal(data, &m.doc); err != nil {
		return nil, fmt.Errorf("failed to parse storage: %w", err)
	}
	if m.doc == nil {
		m.doc = make(map[string]string)
	}

	return m, nil
}

func (m *FileMedium) Get(key string) ([]byte, bool, error) {
	v, ok := m.doc[key]
	if !ok {
		return nil, false, nil
	}
	return []byte(v), true, nil
}

func (m *FileMedium) Set(key string, value []byte) error {
	m.doc[key] = string(value)
	return m.flush()
}

func (m *FileMedium) Delete(key string) error {
	if _, ok := m.doc[key]; !ok {
		return nil
	}
	delete(m.doc, key)
	return m.flush()
}

func (m *FileMedium) Close() error {
	return nil
}

func (m *FileMedium) Path() string {
	return m.path
}

func (m *FileMedium) flush() error {
	dir := filepath.Dir(m.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(m.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}
