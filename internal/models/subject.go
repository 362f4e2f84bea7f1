package models

// Subject is a user-defined study subject tag. Color and Ring are
// opaque style descriptors owned by the presentation layer; entries
// migrated from older installs may carry values the terminal renderer
// does not recognize, which it maps to the default style.
type Subject struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Emoji string `json:"emoji,omitempty"`
	Color string `json:"color,omitempty"`
	Ring  string `json:"ring,omitempty"`
}

// SubjectStyle is the resolved display style for a subject key.
type SubjectStyle struct {
	Emoji string
	Color string
	Ring  string
}
