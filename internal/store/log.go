package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/isoweek"
	"github.com/studymoodapp/studymood/internal/models"
	"github.com/studymoodapp/studymood/internal/storage"
)

// LogStore owns the daily mood-log and weekly-survey collections.
// Daily logs are newest-first, weekly logs oldest-first; both orders
// are load-bearing, the derived queries rely on them instead of
// re-sorting.
type LogStore struct {
	medium storage.Medium
	log    *zap.Logger
	now    func() time.Time

	logs   []models.MoodLog
	weekly []models.WeeklyLog
}

func NewLogStore(medium storage.Medium, logger *zap.Logger) *LogStore {
	return &LogStore{
		medium: medium,
		log:    logger,
		now:    time.Now,
	}
}

// Init loads both collections, falling back to the legacy keys when
// the current ones are absent. An adopted legacy value is persisted
// under the current key right away; the legacy key is left in place.
func (s *LogStore) Init() error {
	if logs, ok := storage.LoadCollection[models.MoodLog](s.medium, storage.KeyLogs, s.log); ok {
		s.logs = logs
	} else if legacy, ok := storage.LoadCollection[models.MoodLog](s.medium, storage.LegacyKeyLogs, s.log); ok {
		s.logs = legacy
		if err := s.persistDaily(); err != nil {
			return err
		}
	}

	if weekly, ok := storage.LoadCollection[models.WeeklyLog](s.medium, storage.KeyWeeklyLogs, s.log); ok {
		s.weekly = weekly
	} else if legacy, ok := storage.LoadCollection[models.WeeklyLog](s.medium, storage.LegacyKeyWeeklyLogs, s.log); ok {
		s.weekly = legacy
		if err := s.persistWeekly(); err != nil {
			return err
		}
	}

	return nil
}

// AddLog records a daily check-in at the head of the collection. The
// id and timestamp are always generated here; caller fields are taken
// as given, unvalidated.
func (s *LogStore) AddLog(fields models.MoodLog) (models.MoodLog, error) {
	entry := fields
	entry.ID = uuid.NewString()
	entry.Timestamp = s.now().Format(time.RFC3339)

	s.logs = append([]models.MoodLog{entry}, s.logs...)
	return entry, s.persistDaily()
}

// AddWeeklyLog appends a weekly survey submission. Nothing stops a
// second submission within the same ISO week; every submission is
// kept.
func (s *LogStore) AddWeeklyLog(fields models.WeeklyLog) (models.WeeklyLog, error) {
	entry := fields
	entry.ID = uuid.NewString()
	entry.Date = s.now().Format(time.RFC3339)

	s.weekly = append(s.weekly, entry)
	return entry, s.persistWeekly()
}

// Logs returns the daily collection, newest first.
func (s *LogStore) Logs() []models.MoodLog {
	return s.logs
}

// WeeklyLogs returns the weekly collection, oldest first.
func (s *LogStore) WeeklyLogs() []models.WeeklyLog {
	return s.weekly
}

// RecentLogs returns up to n of the newest daily logs.
func (s *LogStore) RecentLogs(n int) []models.MoodLog {
	if n > len(s.logs) {
		n = len(s.logs)
	}
	return s.logs[:n]
}

// TodayLog returns the newest daily log iff it was recorded on the
// current local calendar date. Only the head entry is considered.
func (s *LogStore) TodayLog() *models.MoodLog {
	if len(s.logs) == 0 {
		return nil
	}
	latest := s.logs[0]
	t, ok := latest.When()
	if !ok {
		return nil
	}
	if localDay(t) != localDay(s.now()) {
		return nil
	}
	return &latest
}

// DistinctDayCount counts the distinct local calendar dates across all
// daily logs. Display layers label this a "streak" but it is a
// lifetime count, not a consecutive-day run.
func (s *LogStore) DistinctDayCount() int {
	days := make(map[string]struct{})
	for _, l := range s.logs {
		t, ok := l.When()
		if !ok {
			continue
		}
		days[localDay(t)] = struct{}{}
	}
	return len(days)
}

// Streak is an alias for DistinctDayCount, matching the name the
// display layer uses.
func (s *LogStore) Streak() int {
	return s.DistinctDayCount()
}

// HasLoggedThisWeek reports whether any weekly survey falls in the
// current week (ISO week number plus calendar year).
func (s *LogStore) HasLoggedThisWeek() bool {
	now := s.now()
	for _, l := range s.weekly {
		t, ok := l.When()
		if !ok {
			continue
		}
		if isoweek.Same(t, now) {
			return true
		}
	}
	return false
}

// WeeklyStressCounts tallies stressor tags across this week's daily
// logs, for the "top stressors" analytics view.
func (s *LogStore) WeeklyStressCounts() map[string]int {
	now := s.now()
	counts := make(map[string]int)
	for _, l := range s.logs {
		t, ok := l.When()
		if !ok || !isoweek.Same(t, now) {
			continue
		}
		for _, tag := range l.Stressors {
			counts[tag]++
		}
	}
	return counts
}

func (s *LogStore) persistDaily() error {
	return storage.SaveJSON(s.medium, storage.KeyLogs, s.logs)
}

func (s *LogStore) persistWeekly() error {
	return storage.SaveJSON(s.medium, storage.KeyWeeklyLogs, s.weekly)
}

func localDay(t time.Time) string {
	return t.Local().Format("2006-01-02")
}
