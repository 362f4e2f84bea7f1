package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/studymoodapp/studymood/internal/locale"
	"github.com/studymoodapp/studymood/internal/models"
)

type LogAddCmd struct {
	Stress     string   `help:"Stress level (high, sad, okay, happy, calm). Prompts when omitted."`
	Confidence int      `help:"Confidence in the material (1-5)." default:"0"`
	Stressors  []string `help:"Stressor tags (comma-separated)."`
	Journal    string   `help:"Journal text."`
	Category   string   `help:"Log category." default:"general"`
}

func (c *LogAddCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	fields := models.MoodLog{
		Category:   c.Category,
		Stress:     c.Stress,
		Confidence: c.Confidence,
		Stressors:  c.Stressors,
		Journal:    c.Journal,
	}

	if fields.Stress == "" {
		if err := promptCheckin(ctx, &fields); err != nil {
			return err
		}
	}

	entry, err := ctx.App.Logs.AddLog(fields)
	if err != nil {
		return err
	}

	mood := locale.MoodByKey(entry.Stress)
	fmt.Printf("%s  Logged %s (%s)\n", mood.Emoji, mood.Label, formatWhen(entry.Timestamp))
	fmt.Printf("Total check-in days: %d\n", ctx.App.Logs.DistinctDayCount())
	return nil
}

// promptCheckin runs the interactive daily check-in form.
func promptCheckin(ctx *Context, fields *models.MoodLog) error {
	t := ctx.App.Locale.T()

	var moodOptions []huh.Option[string]
	for _, m := range locale.Moods {
		moodOptions = append(moodOptions, huh.NewOption(m.Emoji+" "+m.Label, m.Key))
	}
	var stressorOptions []huh.Option[string]
	for _, tag := range locale.Stressors {
		stressorOptions = append(stressorOptions, huh.NewOption(tag, tag))
	}

	confidence := "3"
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(t.Get("daily.current_stress")).
				Options(moodOptions...).
				Value(&fields.Stress),
			huh.NewSelect[string]().
				Title(t.Get("daily.confidence")).
				Options(huh.NewOptions("1", "2", "3", "4", "5")...).
				Value(&confidence),
			huh.NewMultiSelect[string]().
				Title(t.Get("daily.main_stressors")).
				Options(stressorOptions...).
				Value(&fields.Stressors),
			huh.NewText().
				Title(t.Get("daily.journal")).
				Value(&fields.Journal),
		).Title(t.Get("daily.stress_check")),
	)
	if err := form.Run(); err != nil {
		return err
	}

	fields.Confidence = int(confidence[0] - '0')
	return nil
}

type LogListCmd struct {
	Limit int `help:"Maximum entries to show." default:"10"`
}

func (c *LogListCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	logs := ctx.App.Logs.RecentLogs(c.Limit)
	if len(logs) == 0 {
		fmt.Println(ctx.App.Locale.T().Get("dashboard.no_logs"))
		return nil
	}

	for _, l := range logs {
		mood := locale.MoodByKey(l.Stress)
		badge := lipgloss.NewStyle().Foreground(lipgloss.Color(mood.Color)).Render(mood.Emoji + " " + mood.Label)
		line := fmt.Sprintf("%s  %s", formatWhen(l.Timestamp), badge)
		if len(l.Stressors) > 0 {
			line += "  [" + strings.Join(l.Stressors, ", ") + "]"
		}
		fmt.Println(line)
		if l.Journal != "" {
			fmt.Printf("    %s\n", l.Journal)
		}
	}
	return nil
}

type LogTodayCmd struct{}

func (c *LogTodayCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	t := ctx.App.Locale.T()
	entry := ctx.App.Logs.TodayLog()
	if entry == nil {
		fmt.Printf("%s · %s\n", t.Get("dashboard.no_data"), t.Get("dashboard.check_in"))
		return nil
	}

	mood := locale.MoodByKey(entry.Stress)
	fmt.Printf("%s: %s %s (%s)\n", t.Get("dashboard.mood_title"), mood.Emoji, mood.Label, formatWhen(entry.Timestamp))
	if entry.Journal != "" {
		fmt.Println(entry.Journal)
	}
	return nil
}

type LogStreakCmd struct{}

func (c *LogStreakCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	t := ctx.App.Locale.T()
	fmt.Printf("%s: %d %s\n", t.Get("dashboard.streak_title"), ctx.App.Logs.Streak(), t.Get("dashboard.streak_unit"))
	return nil
}
