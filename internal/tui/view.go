package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/studymoodapp/studymood/internal/locale"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateLocked:
		return m.viewLocked()
	case StateCheckin, StateAddPlan:
		return docStyle.Render(m.form.View())
	case StateConfirmRemove:
		return m.viewConfirmRemove()
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StatePlans:
		content = docStyle.Render(m.planList.View())
	case StateSubjects:
		content = m.viewSubjects()
	}

	sections := []string{m.viewTabs(), content}
	if m.status != "" {
		sections = append(sections, statusStyle.Render(m.status))
	}
	sections = append(sections, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Today", "Plans", "Subjects"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewLocked() string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("🔒 Study Mood"),
		"",
		m.form.View(),
	)
	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Center, content, dangerStyle.Render(m.status))
	}
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

func (m Model) viewConfirmRemove() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Remove this study plan?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewToday() string {
	t := m.app.Locale.T()
	profile := m.app.Profile.Profile()

	var b strings.Builder

	b.WriteString(titleStyle.Render(greeting(t, time.Now()) + ", " + profile.Name))
	b.WriteString("\n\n")

	if entry := m.app.Logs.TodayLog(); entry != nil {
		mood := locale.MoodByKey(entry.Stress)
		moodLine := lipgloss.NewStyle().Foreground(lipgloss.Color(mood.Color)).
			Render(mood.Emoji + " " + mood.Label)
		b.WriteString(t.Get("dashboard.mood_title") + ": " + moodLine + "\n")
	} else {
		b.WriteString(t.Get("dashboard.mood_title") + ": " + faintStyle.Render(t.Get("dashboard.no_data")) +
			"  · " + t.Get("dashboard.check_in") + " (c)\n")
	}

	b.WriteString(fmt.Sprintf("%s: %d %s\n", t.Get("dashboard.streak_title"), m.app.Logs.Streak(), t.Get("dashboard.streak_unit")))

	if m.app.Logs.HasLoggedThisWeek() {
		b.WriteString(t.Get("weekly.completed") + "\n")
	} else {
		b.WriteString(faintStyle.Render(t.Get("analytics.log_week")) + "\n")
	}

	b.WriteString("\n" + titleStyle.Render(t.Get("dashboard.recent_logs")) + "\n")
	recent := m.app.Logs.RecentLogs(5)
	if len(recent) == 0 {
		b.WriteString(faintStyle.Render(t.Get("dashboard.no_logs")) + "\n")
	}
	for _, l := range recent {
		mood := locale.MoodByKey(l.Stress)
		when := l.Timestamp
		if parsed, ok := l.When(); ok {
			when = parsed.Local().Format("Mon 15:04")
		}
		b.WriteString(fmt.Sprintf("  %s  %s %s\n", faintStyle.Render(when), mood.Emoji, mood.Label))
	}

	return docStyle.Render(b.String())
}

func (m Model) viewSubjects() string {
	t := m.app.Locale.T()

	var b strings.Builder
	b.WriteString(titleStyle.Render(t.Get("subjects.title")) + "\n\n")
	for _, sub := range m.app.Subjects.Subjects() {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(sub.Color)).Render(sub.Label)
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", sub.Emoji, label, faintStyle.Render(sub.ID)))
	}
	return docStyle.Render(b.String())
}

func greeting(t locale.Table, now time.Time) string {
	switch hour := now.Hour(); {
	case hour < 12:
		return t.Get("greeting.morning")
	case hour < 18:
		return t.Get("greeting.afternoon")
	default:
		return t.Get("greeting.evening")
	}
}
