package models

// Preferences are the user's app-level toggles. Theme true means the
// light palette, false means dark.
type Preferences struct {
	Theme         bool `json:"theme"`
	Notifications bool `json:"notifications"`
}

// Profile is the single user record. Locked is session state only and
// is never written to storage; it is forced on at load time whenever a
// PIN is present.
type Profile struct {
	Name            string      `json:"name"`
	AvatarURL       string      `json:"avatar"`
	Age             string      `json:"age"`
	Hobby           string      `json:"hobby"`
	Motto           string      `json:"motto"`
	IsOnboarded     bool        `json:"isOnboarded"`
	EducationStage  string      `json:"educationStage"`
	HasSeenTutorial bool        `json:"hasSeenTutorial"`
	Preferences     Preferences `json:"preferences"`
	PIN             *string     `json:"pin"`

	Locked bool `json:"-"`
}

// ProfilePatch is a partial profile update. Nil fields are left
// untouched; PreferencesPatch is shallow-merged rather than replacing
// the whole Preferences struct.
type ProfilePatch struct {
	Name           *string
	AvatarURL      *string
	Age            *string
	Hobby          *string
	Motto          *string
	EducationStage *string
	IsOnboarded    *bool
	Preferences    *PreferencesPatch
}

type PreferencesPatch struct {
	Theme         *bool
	Notifications *bool
}

// DefaultProfile is the state of a fresh install before onboarding.
func DefaultProfile() Profile {
	return Profile{
		Name:           "Student",
		AvatarURL:      "https://api.dicebear.com/7.x/avataaars/svg?seed=Felix",
		Age:            "18",
		Hobby:          "Reading",
		Motto:          "Focus on progress, not perfection.",
		EducationStage: "High School",
		Preferences: Preferences{
			Theme:         true,
			Notifications: true,
		},
	}
}
