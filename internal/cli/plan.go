package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/studymoodapp/studymood/internal/models"
)

type PlanAddCmd struct {
	Title    string `arg:"" help:"What to study."`
	Subject  string `help:"Subject id or label."`
	Duration int    `help:"Planned duration in minutes." default:"30"`
	Notes    string `help:"Goals or topics for the session."`
}

func (c *PlanAddCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	plan, err := ctx.App.Plans.AddPlan(models.StudyPlan{
		Title:       c.Title,
		Subject:     c.Subject,
		DurationMin: c.Duration,
		Notes:       c.Notes,
	})
	if err != nil {
		return err
	}

	style := ctx.App.Subjects.Style(plan.Subject)
	fmt.Printf("%s  Added plan: %s (%dm)\n", style.Emoji, plan.Title, plan.DurationMin)
	return nil
}

type PlanListCmd struct {
	All bool `help:"Include completed plans."`
}

func (c *PlanListCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	plans := ctx.App.Plans.Plans()
	if len(plans) == 0 {
		fmt.Println("No study plans yet. Add one with 'studymood plan add'.")
		return nil
	}

	fmt.Println(ctx.App.Locale.T().Get("dashboard.study_plan") + ":")
	for _, p := range plans {
		if p.Completed && !c.All {
			continue
		}

		check := "[ ]"
		if p.Completed {
			check = "[x]"
		}
		style := ctx.App.Subjects.Style(p.Subject)
		title := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Color)).Render(p.Title)
		fmt.Printf("  %s %s %s  %dm  (%s)\n", check, style.Emoji, title, p.DurationMin, shortID(p.ID))
		if p.Notes != "" {
			fmt.Printf("        %s\n", p.Notes)
		}
	}
	return nil
}

type PlanDoneCmd struct {
	ID string `arg:"" help:"Plan id (a unique prefix is enough)."`
}

func (c *PlanDoneCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	id, err := resolvePlanID(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.App.Plans.TogglePlan(id); err != nil {
		return err
	}
	fmt.Println("Toggled.")
	return nil
}

type PlanRemoveCmd struct {
	ID string `arg:"" help:"Plan id (a unique prefix is enough)."`
}

func (c *PlanRemoveCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	id, err := resolvePlanID(ctx, c.ID)
	if err != nil {
		return err
	}
	if err := ctx.App.Plans.RemovePlan(id); err != nil {
		return err
	}
	fmt.Println("Removed.")
	return nil
}

// resolvePlanID expands a unique id prefix to the full uuid, so users
// can paste the short form shown by 'plan list'.
func resolvePlanID(ctx *Context, prefix string) (string, error) {
	var match string
	for _, p := range ctx.App.Plans.Plans() {
		if p.ID == prefix {
			return p.ID, nil
		}
		if len(prefix) >= 4 && len(p.ID) >= len(prefix) && p.ID[:len(prefix)] == prefix {
			if match != "" {
				return "", fmt.Errorf("ambiguous plan id prefix: %s", prefix)
			}
			match = p.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("plan not found: %s", prefix)
	}
	return match, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
