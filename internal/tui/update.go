package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/studymoodapp/studymood/internal/models"
	"github.com/studymoodapp/studymood/internal/tui/components/planlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.planList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case planlist.AddPlanMsg:
		m.previousState = m.state
		m.state = StateAddPlan
		m.form = m.newPlanForm()
		return m, m.form.Init()

	case planlist.TogglePlanMsg:
		if err := m.app.Plans.TogglePlan(msg.ID); err != nil {
			m.status = err.Error()
		}
		m.planList.SetPlans(m.app.Plans.Plans())
		return m, nil

	case planlist.RemovePlanMsg:
		m.previousState = m.state
		m.state = StateConfirmRemove
		m.planToRemove = msg.ID
		return m, nil
	}

	switch m.state {
	case StateLocked:
		return m.updateLocked(msg)
	case StateCheckin, StateAddPlan:
		return m.updateForm(msg)
	case StateConfirmRemove:
		return m.updateConfirmRemove(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			m.status = ""
			return m, nil
		case key.Matches(msg, m.keys.Lock):
			m.app.Profile.Lock()
			if m.app.Profile.IsLocked() {
				m.state = StateLocked
				m.form = m.newLockForm()
				return m, m.form.Init()
			}
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		if m.state == StateToday && key.Matches(msg, m.keys.Checkin) {
			m.previousState = m.state
			m.state = StateCheckin
			m.form = m.newCheckinForm()
			return m, m.form.Init()
		}
	}

	if m.state == StatePlans {
		var cmd tea.Cmd
		m.planList, cmd = m.planList.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) updateLocked(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		// Verification happens here; Unlock itself is unconditional.
		if m.app.Profile.CheckPin(m.pinAttempt) {
			m.app.Profile.Unlock()
			m.state = StateToday
			m.form = nil
			m.status = ""
			return m, nil
		}
		m.status = "Incorrect PIN"
		m.form = m.newLockForm()
		return m, m.form.Init()
	}

	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.state = m.previousState
		m.form = nil
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	switch m.state {
	case StateCheckin:
		_, err := m.app.Logs.AddLog(models.MoodLog{
			Category:   "general",
			Stress:     m.checkinForm.Stress,
			Confidence: m.checkinForm.Confidence,
			Stressors:  m.checkinForm.Stressors,
			Journal:    m.checkinForm.Journal,
		})
		if err != nil {
			m.status = err.Error()
		} else {
			m.status = m.app.Locale.T().Get("dashboard.streak_msg")
		}

	case StateAddPlan:
		duration, err := strconv.Atoi(m.planForm.Duration)
		if err != nil || duration <= 0 {
			duration = 30
		}
		if m.planForm.Title != "" {
			if _, err := m.app.Plans.AddPlan(models.StudyPlan{
				Title:       m.planForm.Title,
				Subject:     m.planForm.Subject,
				DurationMin: duration,
				Notes:       m.planForm.Notes,
			}); err != nil {
				m.status = err.Error()
			}
		}
		m.planList.SetPlans(m.app.Plans.Plans())
	}

	m.state = m.previousState
	m.form = nil
	return m, nil
}

func (m Model) updateConfirmRemove(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.app.Plans.RemovePlan(m.planToRemove); err != nil {
			m.status = err.Error()
		}
		m.planList.SetPlans(m.app.Plans.Plans())
		m.planToRemove = ""
		m.state = m.previousState
	case "n", "N", "esc":
		m.planToRemove = ""
		m.state = m.previousState
	}

	return m, nil
}
