package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/studymoodapp/studymood/internal/models"
	"github.com/studymoodapp/studymood/internal/store"
)

type SubjectListCmd struct{}

func (c *SubjectListCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	fmt.Println(ctx.App.Locale.T().Get("subjects.title") + ":")
	for _, sub := range ctx.App.Subjects.Subjects() {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(sub.Color)).Render(sub.Label)
		fmt.Printf("  %s %s  (%s)\n", sub.Emoji, label, sub.ID)
	}
	return nil
}

type SubjectAddCmd struct {
	ID    string `arg:"" help:"Subject id (lowercase key)."`
	Label string `arg:"" help:"Display label."`
	Emoji string `help:"Display emoji." default:"📚"`
	Color string `help:"Display color (hex)." default:"#94a3b8"`
	Ring  string `help:"Accent color (hex)." default:"#e2e8f0"`
}

func (c *SubjectAddCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	if err := ctx.App.Subjects.AddSubject(models.Subject{
		ID:    c.ID,
		Label: c.Label,
		Emoji: c.Emoji,
		Color: c.Color,
		Ring:  c.Ring,
	}); err != nil {
		return err
	}
	fmt.Printf("%s %s added.\n", c.Emoji, c.Label)
	return nil
}

type SubjectRemoveCmd struct {
	ID string `arg:"" help:"Subject id."`
}

func (c *SubjectRemoveCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	if err := ctx.App.Subjects.RemoveSubject(c.ID); err != nil {
		return err
	}
	fmt.Println("Removed.")
	return nil
}

type SubjectEditCmd struct {
	ID    string  `arg:"" help:"Subject id."`
	Label *string `help:"New display label."`
	Emoji *string `help:"New display emoji."`
	Color *string `help:"New display color (hex)."`
	Ring  *string `help:"New accent color (hex)."`
}

func (c *SubjectEditCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	if err := ctx.App.Subjects.UpdateSubject(c.ID, store.SubjectPatch{
		Label: c.Label,
		Emoji: c.Emoji,
		Color: c.Color,
		Ring:  c.Ring,
	}); err != nil {
		return err
	}
	fmt.Println("Updated.")
	return nil
}

type SubjectStyleCmd struct {
	Key string `arg:"" help:"Subject id or label (case-insensitive)."`
}

func (c *SubjectStyleCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	style := ctx.App.Subjects.Style(c.Key)
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(style.Color)).Render("●")
	fmt.Printf("%s %s  color=%s ring=%s\n", style.Emoji, swatch, style.Color, style.Ring)
	return nil
}
