package storage

// Current-schema storage keys. Each store exclusively owns its keys.
const (
	KeyUser       = "sm_user"
	KeyLogs       = "sm_logs"
	KeyWeeklyLogs = "sm_weekly_logs"
	KeyPlans      = "sm_plans"
	KeySubjects   = "sm_subjects"
	KeyLocale     = "sm_locale"
)

// Legacy keys consulted once for migration.
const (
	LegacyKeyUserName         = "studyMood_userName"
	LegacyKeyUserAvatar       = "studyMood_userAvatar"
	LegacyKeyLogs             = "studyMood_logs"
	LegacyKeyWeeklyLogs       = "studyMood_weekly_logs"
	LegacyKeyPlans            = "studyMood_plans"
	LegacyKeySubjects         = "studyMood_subjects"
	LegacyKeySelectedSubjects = "studyMood_selectedSubjects"
)

// Medium is a string-keyed byte store. Mediums never interpret values;
// decoding and validation happen in the load helpers.
//
// A medium is not safe for concurrent use by multiple goroutines, and
// running multiple studymood processes against the same storage path is
// not supported.
type Medium interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error

	// Path returns the location of the underlying storage file.
	Path() string
}
