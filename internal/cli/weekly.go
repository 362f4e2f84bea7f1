package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/studymoodapp/studymood/internal/models"
)

type WeeklyAddCmd struct {
	Load       int    `help:"Study load this week (1-5). Prompts when omitted." default:"0"`
	Confidence int    `help:"Confidence this week (1-5)." default:"0"`
	Hobby      int    `help:"Time for hobbies (1-5)." default:"0"`
	Sleep      int    `help:"Sleep quality (1-5)." default:"0"`
	Notes      string `help:"Free-form notes."`
}

func (c *WeeklyAddCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	fields := models.WeeklyLog{
		StudyLoad:    c.Load,
		Confidence:   c.Confidence,
		HobbyTime:    c.Hobby,
		SleepQuality: c.Sleep,
		Notes:        c.Notes,
	}

	if fields.StudyLoad == 0 {
		if err := promptSurvey(ctx, &fields); err != nil {
			return err
		}
	}

	// A second submission in the same week is allowed and kept; the
	// store does not enforce one entry per week.
	if ctx.App.Logs.HasLoggedThisWeek() {
		fmt.Println("Note: you already have a weekly check-in for this week.")
	}

	if _, err := ctx.App.Logs.AddWeeklyLog(fields); err != nil {
		return err
	}

	fmt.Println(ctx.App.Locale.T().Get("weekly.completed"))
	return nil
}

func promptSurvey(ctx *Context, fields *models.WeeklyLog) error {
	t := ctx.App.Locale.T()

	ratings := []huh.Option[int]{
		huh.NewOption("1", 1),
		huh.NewOption("2", 2),
		huh.NewOption("3", 3),
		huh.NewOption("4", 4),
		huh.NewOption("5", 5),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title(t.Get("weekly.q_load")).
				Options(ratings...).
				Value(&fields.StudyLoad),
			huh.NewSelect[int]().
				Title(t.Get("weekly.q_confidence")).
				Options(ratings...).
				Value(&fields.Confidence),
			huh.NewSelect[int]().
				Title(t.Get("weekly.q_hobby")).
				Options(ratings...).
				Value(&fields.HobbyTime),
			huh.NewSelect[int]().
				Title(t.Get("weekly.q_sleep")).
				Options(ratings...).
				Value(&fields.SleepQuality),
		).Title(t.Get("weekly.title")),
	)
	return form.Run()
}

type WeeklyListCmd struct{}

func (c *WeeklyListCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	logs := ctx.App.Logs.WeeklyLogs()
	if len(logs) == 0 {
		fmt.Println(ctx.App.Locale.T().Get("analytics.no_data"))
		return nil
	}

	for _, l := range logs {
		fmt.Printf("%s  load %d, confidence %d, hobbies %d, sleep %d\n",
			formatWhen(l.Date), l.StudyLoad, l.Confidence, l.HobbyTime, l.SleepQuality)
		if l.Notes != "" {
			fmt.Printf("    %s\n", l.Notes)
		}
	}
	return nil
}

type WeeklyStatusCmd struct{}

func (c *WeeklyStatusCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	t := ctx.App.Locale.T()
	if ctx.App.Logs.HasLoggedThisWeek() {
		fmt.Println(t.Get("weekly.completed"))
	} else {
		fmt.Println(t.Get("analytics.log_week"))
	}

	counts := ctx.App.Logs.WeeklyStressCounts()
	if len(counts) > 0 {
		fmt.Printf("\n%s:\n", t.Get("analytics.top_stressors"))
		for tag, n := range counts {
			fmt.Printf("  %-12s %d\n", tag, n)
		}
	}
	return nil
}
