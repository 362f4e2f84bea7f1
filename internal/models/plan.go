package models

// StudyPlan is a user-defined planned study session.
type StudyPlan struct {
	ID          string `json:"id"`
	CreatedAt   string `json:"createdAt"` // RFC3339
	Completed   bool   `json:"completed"`
	Title       string `json:"title"`
	Subject     string `json:"subject,omitempty"`
	DurationMin int    `json:"duration,omitempty"`
	Notes       string `json:"notes,omitempty"`
}
