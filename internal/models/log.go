package models

import "time"

// MoodLog is a single daily mood/stress check-in.
// Daily logs use "timestamp" as their temporal key; weekly logs use
// "date" and plans use "createdAt". The stored field names predate this
// implementation and must stay as-is so existing data keeps loading.
type MoodLog struct {
	ID         string   `json:"id"`
	Timestamp  string   `json:"timestamp"` // RFC3339
	Category   string   `json:"category,omitempty"`
	Stress     string   `json:"stressLevel,omitempty"` // high, sad, okay, happy, calm
	Confidence int      `json:"confidence,omitempty"`  // 1-5
	Stressors  []string `json:"stressors,omitempty"`
	Journal    string   `json:"journal,omitempty"`
}

// When returns the log's temporal key as a time, or false if it does
// not parse.
func (l MoodLog) When() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, l.Timestamp)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// WeeklyLog is one weekly self-assessment survey submission.
type WeeklyLog struct {
	ID           string `json:"id"`
	Date         string `json:"date"` // RFC3339
	StudyLoad    int    `json:"studyLoad,omitempty"`
	Confidence   int    `json:"confidence,omitempty"`
	HobbyTime    int    `json:"hobbyTime,omitempty"`
	SleepQuality int    `json:"sleepQuality,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

func (l WeeklyLog) When() (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, l.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
