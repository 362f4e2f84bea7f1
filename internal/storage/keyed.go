package storage

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"
)

// Load helpers fail softly: a missing key reads as absent, malformed
// content is logged and reads as absent, and non-object collection
// elements are dropped. No read path ever surfaces an error to the
// caller; the in-memory defaults win.

// LoadRecord reads a single JSON object from key. The second return is
// false when the key is absent or the value is unusable.
func LoadRecord[T any](m Medium, key string, log *zap.Logger) (*T, bool) {
	data, ok, err := m.Get(key)
	if err != nil {
		log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	if !isObject(data) {
		log.Warn("stored value is not an object", zap.String("key", key))
		return nil, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		log.Warn("failed to parse stored value", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return &v, true
}

// LoadInto decodes a JSON object from key over v, leaving fields the
// stored object omits at their current values. Used where defaults are
// pre-populated and stored data only overrides what it carries.
func LoadInto(m Medium, key string, v any, log *zap.Logger) bool {
	data, ok, err := m.Get(key)
	if err != nil {
		log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	if !isObject(data) {
		log.Warn("stored value is not an object", zap.String("key", key))
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Warn("failed to parse stored value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// LoadCollection reads a JSON array from key, keeping only elements
// that are JSON objects decoding into T.
func LoadCollection[T any](m Medium, key string, log *zap.Logger) ([]T, bool) {
	data, ok, err := m.Get(key)
	if err != nil {
		log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Warn("failed to parse stored collection", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	out := make([]T, 0, len(raw))
	for _, el := range raw {
		if !isObject(el) {
			continue
		}
		var v T
		if err := json.Unmarshal(el, &v); err != nil {
			log.Debug("dropping malformed element", zap.String("key", key), zap.Error(err))
			continue
		}
		out = append(out, v)
	}
	return out, true
}

// SaveJSON marshals v and writes it through. Unlike reads, write
// failures are reported so callers can surface them.
func SaveJSON(m Medium, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return m.Set(key, data)
}

// GetString reads a plain (non-JSON) string value such as sm_locale or
// the legacy profile keys.
func GetString(m Medium, key string, log *zap.Logger) (string, bool) {
	data, ok, err := m.Get(key)
	if err != nil {
		log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		return "", false
	}
	if !ok {
		return "", false
	}
	return string(data), true
}

func isObject(data []byte) bool {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '{'
}
