package locale

// Mood describes how a stress level renders in the terminal.
type Mood struct {
	Key   string
	Label string
	Emoji string
	Color string
}

// Moods lists the daily-log stress levels, highest stress first. The
// keys are the values stored in MoodLog.Stress.
var Moods = []Mood{
	{Key: "high", Label: "High Stress", Emoji: "🤯", Color: "#ef4444"},
	{Key: "sad", Label: "Stressed", Emoji: "😓", Color: "#f97316"},
	{Key: "okay", Label: "Okay", Emoji: "😐", Color: "#eab308"},
	{Key: "happy", Label: "Good", Emoji: "🙂", Color: "#84cc16"},
	{Key: "calm", Label: "Calm", Emoji: "😌", Color: "#22c55e"},
}

// MoodByKey resolves a stored stress level, defaulting to "okay" for
// unknown keys so rendering never fails.
func MoodByKey(key string) Mood {
	for _, m := range Moods {
		if m.Key == key {
			return m
		}
	}
	return Moods[2]
}

// Stressors are the selectable stressor tags for a daily check-in.
var Stressors = []string{
	"deadlines", "exams", "peers", "sleep", "focus", "health", "financial", "family",
}
