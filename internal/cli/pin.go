package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type PinSetCmd struct{}

func (c *PinSetCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	var pin, confirm string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("New PIN").
				EchoMode(huh.EchoModePassword).
				Value(&pin),
			huh.NewInput().
				Title("Confirm PIN").
				EchoMode(huh.EchoModePassword).
				Value(&confirm),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	if pin == "" {
		return fmt.Errorf("PIN cannot be empty")
	}
	if pin != confirm {
		return fmt.Errorf("PINs do not match")
	}

	if err := ctx.App.Profile.SetPin(pin); err != nil {
		return err
	}
	fmt.Println("PIN set. You will be asked for it on the next start.")
	return nil
}

type PinRemoveCmd struct{}

func (c *PinRemoveCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	if !ctx.App.Profile.HasPin() {
		fmt.Println("No PIN is set.")
		return nil
	}

	if err := ctx.App.Profile.RemovePin(); err != nil {
		return err
	}
	fmt.Println("PIN removed.")
	return nil
}

type PinStatusCmd struct{}

func (c *PinStatusCmd) Run(ctx *Context) error {
	if ctx.App.Profile.HasPin() {
		fmt.Println("PIN: set")
	} else {
		fmt.Println("PIN: not set")
	}
	return nil
}
