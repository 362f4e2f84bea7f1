package store

import (
	"testing"

	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/storage"
)

func setupTestLocaleStore(t *testing.T, m storage.Medium) *LocaleStore {
	s := NewLocaleStore(m, zap.NewNop())
	if err := s.Init(); err != nil {
		t.Fatalf("failed to initialize locale store: %v", err)
	}
	return s
}

func TestLocaleDefaultsToEnglish(t *testing.T) {
	s := setupTestLocaleStore(t, setupTestMedium(t))

	if s.Locale() != "en" {
		t.Errorf("expected default locale en, got %q", s.Locale())
	}
}

func TestSetLocalePersistsBareString(t *testing.T) {
	m := setupTestMedium(t)
	s := setupTestLocaleStore(t, m)

	if err := s.SetLocale("id"); err != nil {
		t.Fatalf("failed to set locale: %v", err)
	}
	if s.Locale() != "id" {
		t.Errorf("expected locale id, got %q", s.Locale())
	}

	// The value is a bare code, not JSON.
	data, ok, err := m.Get(storage.KeyLocale)
	if err != nil || !ok {
		t.Fatalf("expected stored locale (ok=%v, err=%v)", ok, err)
	}
	if string(data) != "id" {
		t.Errorf("expected bare string %q, got %q", "id", string(data))
	}

	reloaded := setupTestLocaleStore(t, m)
	if reloaded.Locale() != "id" {
		t.Errorf("expected locale to survive reload, got %q", reloaded.Locale())
	}
}

func TestSetLocaleIgnoresUnknownCodes(t *testing.T) {
	s := setupTestLocaleStore(t, setupTestMedium(t))

	if err := s.SetLocale("xx"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Locale() != "en" {
		t.Errorf("expected unknown code to be ignored, got %q", s.Locale())
	}
}

func TestLocaleInitIgnoresUnknownStoredCode(t *testing.T) {
	m := setupTestMedium(t)
	if err := m.Set(storage.KeyLocale, []byte("xx")); err != nil {
		t.Fatalf("failed to seed locale: %v", err)
	}

	s := setupTestLocaleStore(t, m)
	if s.Locale() != "en" {
		t.Errorf("expected unknown stored code to fall back to en, got %q", s.Locale())
	}
}

func TestTranslationTable(t *testing.T) {
	s := setupTestLocaleStore(t, setupTestMedium(t))

	en := s.T().Get("greeting.morning")
	if en != "Good Morning" {
		t.Errorf("expected the English greeting, got %q", en)
	}

	if err := s.SetLocale("id"); err != nil {
		t.Fatalf("failed to set locale: %v", err)
	}
	id := s.T().Get("greeting.morning")
	if id == "" || id == en {
		t.Errorf("expected a distinct Indonesian translation, got %q", id)
	}
}
