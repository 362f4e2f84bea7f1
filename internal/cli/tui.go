package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studymoodapp/studymood/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	if !ctx.App.Profile.Profile().IsOnboarded {
		return fmt.Errorf("not set up yet, run 'studymood init' first")
	}

	p := tea.NewProgram(tui.NewModel(ctx.App), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
