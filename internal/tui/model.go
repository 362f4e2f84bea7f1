package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/studymoodapp/studymood/internal/locale"
	"github.com/studymoodapp/studymood/internal/store"
	"github.com/studymoodapp/studymood/internal/tui/components/planlist"
)

type SessionState int

const (
	StateToday SessionState = iota
	StatePlans
	StateSubjects
	StateLocked
	StateCheckin
	StateAddPlan
	StateConfirmRemove
)

// tabCount is the number of cycleable tabs; the remaining states are
// modal.
const tabCount = 3

type CheckinFormModel struct {
	Stress     string
	Confidence int
	Stressors  []string
	Journal    string
}

type PlanFormModel struct {
	Title    string
	Subject  string
	Duration string
	Notes    string
}

type Model struct {
	app           *store.App
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	planList      planlist.Model
	form          *huh.Form
	checkinForm   *CheckinFormModel
	planForm      *PlanFormModel
	pinAttempt    string
	planToRemove  string
	status        string
	quitting      bool
	width         int
	height        int
}

func NewModel(app *store.App) Model {
	m := Model{
		app:      app,
		state:    StateToday,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		planList: planlist.New(app.Plans.Plans(), 0, 0),
	}

	// A stored PIN means the session starts locked.
	if app.Profile.IsLocked() {
		m.state = StateLocked
		m.form = m.newLockForm()
	}

	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Checkin)
	case StatePlans:
		keys = append(keys, m.keys.Add, m.keys.Toggle, m.keys.Remove)
	}
	if m.app.Profile.HasPin() {
		keys = append(keys, m.keys.Lock)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Lock}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Checkin}
	case StatePlans:
		actions = []key.Binding{m.keys.Add, m.keys.Toggle, m.keys.Remove}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

func (m *Model) newLockForm() *huh.Form {
	m.pinAttempt = ""
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter PIN").
				EchoMode(huh.EchoModePassword).
				Value(&m.pinAttempt),
		),
	)
}

func (m *Model) newCheckinForm() *huh.Form {
	t := m.app.Locale.T()
	m.checkinForm = &CheckinFormModel{Confidence: 3}

	var moodOptions []huh.Option[string]
	for _, mood := range locale.Moods {
		moodOptions = append(moodOptions, huh.NewOption(mood.Emoji+" "+mood.Label, mood.Key))
	}
	var stressorOptions []huh.Option[string]
	for _, tag := range locale.Stressors {
		stressorOptions = append(stressorOptions, huh.NewOption(tag, tag))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(t.Get("daily.current_stress")).
				Options(moodOptions...).
				Value(&m.checkinForm.Stress),
			huh.NewSelect[int]().
				Title(t.Get("daily.confidence")).
				Options(
					huh.NewOption("1", 1),
					huh.NewOption("2", 2),
					huh.NewOption("3", 3),
					huh.NewOption("4", 4),
					huh.NewOption("5", 5),
				).
				Value(&m.checkinForm.Confidence),
			huh.NewMultiSelect[string]().
				Title(t.Get("daily.main_stressors")).
				Options(stressorOptions...).
				Value(&m.checkinForm.Stressors),
			huh.NewText().
				Title(t.Get("daily.journal")).
				Value(&m.checkinForm.Journal),
		).Title(t.Get("daily.stress_check")),
	)
}

func (m *Model) newPlanForm() *huh.Form {
	m.planForm = &PlanFormModel{Duration: "30"}

	var subjectOptions []huh.Option[string]
	subjectOptions = append(subjectOptions, huh.NewOption("(none)", ""))
	for _, sub := range m.app.Subjects.Subjects() {
		subjectOptions = append(subjectOptions, huh.NewOption(sub.Emoji+" "+sub.Label, sub.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you studying?").
				Value(&m.planForm.Title),
			huh.NewSelect[string]().
				Title("Subject").
				Options(subjectOptions...).
				Value(&m.planForm.Subject),
			huh.NewInput().
				Title("Duration (minutes)").
				Value(&m.planForm.Duration),
			huh.NewText().
				Title("Goals & topics").
				Value(&m.planForm.Notes),
		),
	)
}
