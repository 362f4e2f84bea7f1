package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/storage"
	"github.com/studymoodapp/studymood/internal/store"
)

type Context struct {
	App         *store.App
	Medium      storage.Medium
	Logger      *zap.Logger
	StoragePath string
}

// ensureUnlocked prompts for the PIN when the session starts locked.
// Verification happens here, not in the profile store; Unlock itself
// is unconditional.
func ensureUnlocked(ctx *Context) error {
	if !ctx.App.Profile.IsLocked() {
		return nil
	}

	var pin string
	prompt := huh.NewInput().
		Title("Enter PIN").
		EchoMode(huh.EchoModePassword).
		Value(&pin)
	if err := prompt.Run(); err != nil {
		return err
	}

	if !ctx.App.Profile.CheckPin(pin) {
		return fmt.Errorf("incorrect PIN")
	}
	ctx.App.Profile.Unlock()
	return nil
}

// ensureOnboarded gates data commands: everything except the setup
// wizard requires a completed profile.
func ensureOnboarded(ctx *Context) error {
	if !ctx.App.Profile.Profile().IsOnboarded {
		return fmt.Errorf("not set up yet, run 'studymood init' first")
	}
	return ensureUnlocked(ctx)
}

func parseDay(s string) (time.Time, error) {
	if s == "today" || s == "" {
		return time.Now(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or 'today': %w", err)
	}
	return t, nil
}

func formatWhen(rfc3339 string) string {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return t.Local().Format("2006-01-02 15:04")
}
