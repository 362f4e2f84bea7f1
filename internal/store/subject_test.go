package store

import (
	"testing"

	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/models"
	"github.com/studymoodapp/studymood/internal/storage"
)

func setupTestSubjectStore(t *testing.T, m storage.Medium) *SubjectStore {
	s := NewSubjectStore(m, zap.NewNop())
	if err := s.Init(); err != nil {
		t.Fatalf("failed to initialize subject store: %v", err)
	}
	return s
}

func TestSubjectDefaultsOnFreshStore(t *testing.T) {
	s := setupTestSubjectStore(t, setupTestMedium(t))

	subjects := s.Subjects()
	if len(subjects) != 4 {
		t.Fatalf("expected 4 default subjects, got %d", len(subjects))
	}
	if subjects[0].ID != "math" {
		t.Errorf("unexpected first default subject: %+v", subjects[0])
	}
}

func TestLegacySubjectsJoinMigration(t *testing.T) {
	m := setupTestMedium(t)

	// The old schema kept the full list and the selected ids separately;
	// migration joins them.
	if err := m.Set(storage.LegacyKeySubjects, []byte(`[{"id":"math","label":"Math"},{"id":"science","label":"Science"}]`)); err != nil {
		t.Fatalf("failed to seed legacy subjects: %v", err)
	}
	if err := m.Set(storage.LegacyKeySelectedSubjects, []byte(`["math"]`)); err != nil {
		t.Fatalf("failed to seed legacy selection: %v", err)
	}

	s := setupTestSubjectStore(t, m)
	subjects := s.Subjects()
	if len(subjects) != 1 || subjects[0].ID != "math" {
		t.Fatalf("expected only the selected subject to migrate, got %+v", subjects)
	}

	if _, ok, _ := m.Get(storage.KeySubjects); !ok {
		t.Error("expected migrated subjects to be persisted under the current key")
	}
}

func TestLegacyMigrationEmptyJoinKeepsDefaults(t *testing.T) {
	m := setupTestMedium(t)

	// The selection names no id from the list, so the join is empty and
	// the defaults stand.
	if err := m.Set(storage.LegacyKeySubjects, []byte(`[{"id":"math","label":"Math"}]`)); err != nil {
		t.Fatalf("failed to seed legacy subjects: %v", err)
	}
	if err := m.Set(storage.LegacyKeySelectedSubjects, []byte(`["chemistry"]`)); err != nil {
		t.Fatalf("failed to seed legacy selection: %v", err)
	}

	s := setupTestSubjectStore(t, m)
	if len(s.Subjects()) != 4 {
		t.Errorf("expected defaults when the join is empty, got %+v", s.Subjects())
	}
	if _, ok, _ := m.Get(storage.KeySubjects); ok {
		t.Error("expected nothing to be persisted for an empty join")
	}
}

func TestAddSubjectFirstWriteWins(t *testing.T) {
	s := setupTestSubjectStore(t, setupTestMedium(t))

	if err := s.AddSubject(models.Subject{ID: "art", Label: "Art"}); err != nil {
		t.Fatalf("failed to add subject: %v", err)
	}
	if err := s.AddSubject(models.Subject{ID: "art", Label: "Art History"}); err != nil {
		t.Fatalf("failed to add duplicate subject: %v", err)
	}

	var found models.Subject
	count := 0
	for _, sub := range s.Subjects() {
		if sub.ID == "art" {
			found = sub
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected a single art subject, got %d", count)
	}
	if found.Label != "Art" {
		t.Errorf("expected the first write to win, got label %q", found.Label)
	}
}

func TestUpdateSubject(t *testing.T) {
	s := setupTestSubjectStore(t, setupTestMedium(t))

	label := "Mathematics"
	color := "#000000"
	if err := s.UpdateSubject("math", SubjectPatch{Label: &label, Color: &color}); err != nil {
		t.Fatalf("failed to update subject: %v", err)
	}

	for _, sub := range s.Subjects() {
		if sub.ID != "math" {
			continue
		}
		if sub.Label != "Mathematics" || sub.Color != "#000000" {
			t.Errorf("patch not applied: %+v", sub)
		}
		if sub.Emoji == "" {
			t.Error("expected unpatched fields to be untouched")
		}
		return
	}
	t.Fatal("math subject missing")
}

func TestUpdateSubjectUnknownID(t *testing.T) {
	s := setupTestSubjectStore(t, setupTestMedium(t))

	label := "Nothing"
	if err := s.UpdateSubject("no-such-id", SubjectPatch{Label: &label}); err != nil {
		t.Errorf("expected unknown id to be a silent no-op, got: %v", err)
	}
}

func TestRemoveSubject(t *testing.T) {
	s := setupTestSubjectStore(t, setupTestMedium(t))

	if err := s.RemoveSubject("math"); err != nil {
		t.Fatalf("failed to remove subject: %v", err)
	}
	for _, sub := range s.Subjects() {
		if sub.ID == "math" {
			t.Error("expected math to be removed")
		}
	}
}

func TestStyleResolution(t *testing.T) {
	s := setupTestSubjectStore(t, setupTestMedium(t))

	byID := s.Style("math")
	if byID == DefaultSubjectStyle() {
		t.Error("expected an id match to resolve a non-default style")
	}

	// Label matching is case-insensitive and must agree with the id
	// match.
	if s.Style("MATH") != byID {
		t.Error("expected the label match to agree with the id match")
	}
	if s.Style("Math") != byID {
		t.Error("expected mixed-case label to resolve the same style")
	}

	if s.Style("underwater basket weaving") != DefaultSubjectStyle() {
		t.Error("expected an unknown key to get the default style")
	}
	if s.Style("") != DefaultSubjectStyle() {
		t.Error("expected the empty key to get the default style")
	}
}
