package store

import (
	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/models"
	"github.com/studymoodapp/studymood/internal/storage"
)

// ThemeApplier is invoked whenever the theme preference flips, so the
// presentation layer can switch palettes immediately. It may be nil.
type ThemeApplier func(light bool)

// ProfileStore owns the single user record under sm_user. The Locked
// flag is session-only: it starts true whenever a PIN is present and
// is never persisted.
type ProfileStore struct {
	medium     storage.Medium
	log        *zap.Logger
	applyTheme ThemeApplier

	profile models.Profile
}

func NewProfileStore(medium storage.Medium, logger *zap.Logger, applyTheme ThemeApplier) *ProfileStore {
	return &ProfileStore{
		medium:     medium,
		log:        logger,
		applyTheme: applyTheme,
	}
}

// Init loads the stored profile over the defaults. Stored fields that
// are empty strings fall back to the defaults too, matching how the
// record has always been read. A present PIN forces the session to
// start locked.
func (s *ProfileStore) Init() error {
	s.profile = models.DefaultProfile()
	storage.LoadInto(s.medium, storage.KeyUser, &s.profile, s.log)
	s.fillEmptyFields()

	if s.profile.PIN != nil && *s.profile.PIN != "" {
		s.profile.Locked = true
	} else {
		s.profile.PIN = nil
		s.profile.Locked = false
	}

	if err := s.migrateLegacy(); err != nil {
		return err
	}

	if s.applyTheme != nil {
		s.applyTheme(s.profile.Preferences.Theme)
	}
	return nil
}

// migrateLegacy adopts the old plain-string name/avatar keys. Unlike
// the collection migrations these legacy keys are deleted once
// consumed, and the merged profile is persisted immediately.
func (s *ProfileStore) migrateLegacy() error {
	migrated := false

	if name, ok := storage.GetString(s.medium, storage.LegacyKeyUserName, s.log); ok {
		s.profile.Name = name
		if err := s.medium.Delete(storage.LegacyKeyUserName); err != nil {
			return err
		}
		migrated = true
	}
	if avatar, ok := storage.GetString(s.medium, storage.LegacyKeyUserAvatar, s.log); ok {
		s.profile.AvatarURL = avatar
		if err := s.medium.Delete(storage.LegacyKeyUserAvatar); err != nil {
			return err
		}
		migrated = true
	}

	if migrated {
		return s.persist()
	}
	return nil
}

func (s *ProfileStore) fillEmptyFields() {
	defaults := models.DefaultProfile()
	if s.profile.Name == "" {
		s.profile.Name = defaults.Name
	}
	if s.profile.AvatarURL == "" {
		s.profile.AvatarURL = defaults.AvatarURL
	}
	if s.profile.Age == "" {
		s.profile.Age = defaults.Age
	}
	if s.profile.Hobby == "" {
		s.profile.Hobby = defaults.Hobby
	}
	if s.profile.Motto == "" {
		s.profile.Motto = defaults.Motto
	}
	if s.profile.EducationStage == "" {
		s.profile.EducationStage = defaults.EducationStage
	}
}

// Profile returns a copy of the current record.
func (s *ProfileStore) Profile() models.Profile {
	return s.profile
}

// UpdateProfile applies the non-nil fields of the patch. Preferences
// are shallow-merged, not replaced.
func (s *ProfileStore) UpdateProfile(patch models.ProfilePatch) error {
	if patch.Name != nil {
		s.profile.Name = *patch.Name
	}
	if patch.AvatarURL != nil {
		s.profile.AvatarURL = *patch.AvatarURL
	}
	if patch.Age != nil {
		s.profile.Age = *patch.Age
	}
	if patch.Hobby != nil {
		s.profile.Hobby = *patch.Hobby
	}
	if patch.Motto != nil {
		s.profile.Motto = *patch.Motto
	}
	if patch.EducationStage != nil {
		s.profile.EducationStage = *patch.EducationStage
	}
	if patch.IsOnboarded != nil {
		s.profile.IsOnboarded = *patch.IsOnboarded
	}
	if patch.Preferences != nil {
		if patch.Preferences.Theme != nil {
			s.profile.Preferences.Theme = *patch.Preferences.Theme
		}
		if patch.Preferences.Notifications != nil {
			s.profile.Preferences.Notifications = *patch.Preferences.Notifications
		}
	}
	return s.persist()
}

func (s *ProfileStore) SetOnboarded(status bool) error {
	s.profile.IsOnboarded = status
	return s.persist()
}

func (s *ProfileStore) CompleteTutorial() error {
	s.profile.HasSeenTutorial = true
	return s.persist()
}

func (s *ProfileStore) ResetTutorial() error {
	s.profile.HasSeenTutorial = false
	return s.persist()
}

// ToggleTheme flips the theme preference, reapplies the palette, and
// persists.
func (s *ProfileStore) ToggleTheme() error {
	s.profile.Preferences.Theme = !s.profile.Preferences.Theme
	if s.applyTheme != nil {
		s.applyTheme(s.profile.Preferences.Theme)
	}
	return s.persist()
}

// SetPin stores a new lock secret. It does not lock the session.
func (s *ProfileStore) SetPin(pin string) error {
	s.profile.PIN = &pin
	return s.persist()
}

// RemovePin clears the lock secret. It does not unlock the session.
func (s *ProfileStore) RemovePin() error {
	s.profile.PIN = nil
	return s.persist()
}

func (s *ProfileStore) HasPin() bool {
	return s.profile.PIN != nil && *s.profile.PIN != ""
}

// CheckPin reports whether candidate matches the stored PIN. The store
// never unlocks by itself; callers verify and then call Unlock.
func (s *ProfileStore) CheckPin(candidate string) bool {
	return s.HasPin() && *s.profile.PIN == candidate
}

// Lock engages the session lock, a no-op without a PIN.
func (s *ProfileStore) Lock() {
	if s.HasPin() {
		s.profile.Locked = true
	}
}

// Unlock clears the session lock unconditionally. PIN verification is
// the caller's job, before calling this.
func (s *ProfileStore) Unlock() {
	s.profile.Locked = false
}

func (s *ProfileStore) IsLocked() bool {
	return s.profile.Locked
}

func (s *ProfileStore) persist() error {
	return storage.SaveJSON(s.medium, storage.KeyUser, s.profile)
}
