package store

import (
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/models"
	"github.com/studymoodapp/studymood/internal/storage"
)

// DefaultSubjects seeds a fresh install when storage holds no subjects
// and no legacy data migrates.
func DefaultSubjects() []models.Subject {
	return []models.Subject{
		{ID: "math", Label: "Math", Emoji: "📐", Color: "#3b82f6", Ring: "#bfdbfe"},
		{ID: "science", Label: "Science", Emoji: "🧬", Color: "#22c55e", Ring: "#bbf7d0"},
		{ID: "history", Label: "History", Emoji: "🏛️", Color: "#eab308", Ring: "#fef08a"},
		{ID: "literature", Label: "Literature", Emoji: "📚", Color: "#ec4899", Ring: "#fbcfe8"},
	}
}

// DefaultSubjectStyle is returned for keys that match no subject.
func DefaultSubjectStyle() models.SubjectStyle {
	return models.SubjectStyle{Emoji: "📚", Color: "#94a3b8", Ring: "#e2e8f0"}
}

// SubjectStore owns the user's subject tags.
type SubjectStore struct {
	medium storage.Medium
	log    *zap.Logger

	subjects []models.Subject
}

func NewSubjectStore(medium storage.Medium, logger *zap.Logger) *SubjectStore {
	return &SubjectStore{
		medium: medium,
		log:    logger,
	}
}

// Init loads subjects from the current key, otherwise attempts the
// two-key legacy migration: the old full subject list is filtered down
// to the ids named by the old selected-ids list, and a non-empty
// result is adopted and persisted under the current key. With neither,
// the defaults stand.
func (s *SubjectStore) Init() error {
	s.subjects = DefaultSubjects()

	if subjects, ok := storage.LoadCollection[models.Subject](s.medium, storage.KeySubjects, s.log); ok {
		s.subjects = subjects
		return nil
	}

	legacy, ok := storage.LoadCollection[models.Subject](s.medium, storage.LegacyKeySubjects, s.log)
	if !ok {
		return nil
	}
	rawSelected, ok := storage.GetString(s.medium, storage.LegacyKeySelectedSubjects, s.log)
	if !ok {
		return nil
	}
	var selected []string
	if err := json.Unmarshal([]byte(rawSelected), &selected); err != nil {
		s.log.Warn("failed to parse legacy selected subjects", zap.Error(err))
		return nil
	}

	selectedSet := make(map[string]struct{}, len(selected))
	for _, id := range selected {
		selectedSet[id] = struct{}{}
	}

	var migrated []models.Subject
	for _, sub := range legacy {
		if _, ok := selectedSet[sub.ID]; ok {
			migrated = append(migrated, sub)
		}
	}
	if len(migrated) == 0 {
		return nil
	}

	s.subjects = migrated
	return s.persist()
}

func (s *SubjectStore) Subjects() []models.Subject {
	return s.subjects
}

// SetSubjects replaces the whole collection.
func (s *SubjectStore) SetSubjects(subjects []models.Subject) error {
	s.subjects = subjects
	return s.persist()
}

// AddSubject appends a subject unless its id is already taken
// (first write wins).
func (s *SubjectStore) AddSubject(subject models.Subject) error {
	for _, existing := range s.subjects {
		if existing.ID == subject.ID {
			return nil
		}
	}
	s.subjects = append(s.subjects, subject)
	return s.persist()
}

func (s *SubjectStore) RemoveSubject(id string) error {
	kept := s.subjects[:0]
	for _, sub := range s.subjects {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	s.subjects = kept
	return s.persist()
}

// SubjectPatch is a partial subject update; nil fields are untouched.
type SubjectPatch struct {
	Label *string
	Emoji *string
	Color *string
	Ring  *string
}

// UpdateSubject shallow-merges the patch into the subject with the
// given id. Unknown ids are a silent no-op.
func (s *SubjectStore) UpdateSubject(id string, patch SubjectPatch) error {
	for i := range s.subjects {
		if s.subjects[i].ID != id {
			continue
		}
		if patch.Label != nil {
			s.subjects[i].Label = *patch.Label
		}
		if patch.Emoji != nil {
			s.subjects[i].Emoji = *patch.Emoji
		}
		if patch.Color != nil {
			s.subjects[i].Color = *patch.Color
		}
		if patch.Ring != nil {
			s.subjects[i].Ring = *patch.Ring
		}
		return s.persist()
	}
	return nil
}

// Style resolves a display style for key, matching the subject id
// first and the label case-insensitively second. Unknown keys get the
// default style; Style never fails.
func (s *SubjectStore) Style(key string) models.SubjectStyle {
	if key == "" {
		return DefaultSubjectStyle()
	}

	k := strings.ToLower(key)
	for _, sub := range s.subjects {
		if sub.ID == k || strings.ToLower(sub.Label) == k {
			return models.SubjectStyle{Emoji: sub.Emoji, Color: sub.Color, Ring: sub.Ring}
		}
	}
	return DefaultSubjectStyle()
}

func (s *SubjectStore) persist() error {
	return storage.SaveJSON(s.medium, storage.KeySubjects, s.subjects)
}
