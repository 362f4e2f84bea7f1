package planlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studymoodapp/studymood/internal/models"
)

type AddPlanMsg struct{}

type TogglePlanMsg struct {
	ID string
}

type RemovePlanMsg struct {
	ID string
}

type Item struct {
	Plan models.StudyPlan
}

func (i Item) Title() string {
	if i.Plan.Completed {
		return "✓ " + i.Plan.Title
	}
	return i.Plan.Title
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d min", i.Plan.DurationMin)
	if i.Plan.Subject != "" {
		desc += " | " + i.Plan.Subject
	}
	if i.Plan.Notes != "" {
		desc += " | " + i.Plan.Notes
	}
	return desc
}

func (i Item) FilterValue() string { return i.Plan.Title }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Remove key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle done"),
		),
		Remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "remove"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(plans []models.StudyPlan, width, height int) Model {
	items := make([]list.Item, len(plans))
	for i, p := range plans {
		items[i] = Item{Plan: p}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Study Plans"
	l.SetShowTitle(false)
	l.SetShowHelp(false) // help is handled globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Remove}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Remove}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetPlans(plans []models.StudyPlan) {
	items := make([]list.Item, len(plans))
	for i, p := range plans {
		items[i] = Item{Plan: p}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddPlanMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return TogglePlanMsg{ID: i.Plan.ID} }
			}
		case key.Matches(msg, m.keys.Remove):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return RemovePlanMsg{ID: i.Plan.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No study plans yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
