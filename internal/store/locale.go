package store

import (
	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/locale"
	"github.com/studymoodapp/studymood/internal/storage"
)

// LocaleStore owns the sm_locale key, a plain string rather than JSON.
type LocaleStore struct {
	medium storage.Medium
	log    *zap.Logger

	code string
}

func NewLocaleStore(medium storage.Medium, logger *zap.Logger) *LocaleStore {
	return &LocaleStore{
		medium: medium,
		log:    logger,
		code:   locale.Default,
	}
}

func (s *LocaleStore) Init() error {
	if code, ok := storage.GetString(s.medium, storage.KeyLocale, s.log); ok && locale.Known(code) {
		s.code = code
	}
	return nil
}

func (s *LocaleStore) Locale() string {
	return s.code
}

// SetLocale switches to a known locale code; unknown codes are
// ignored.
func (s *LocaleStore) SetLocale(code string) error {
	if !locale.Known(code) {
		return nil
	}
	s.code = code
	return s.medium.Set(storage.KeyLocale, []byte(code))
}

// T returns the translation table for the active locale.
func (s *LocaleStore) T() locale.Table {
	return locale.For(s.code)
}
