package cli

import (
	"fmt"

	"github.com/studymoodapp/studymood/internal/models"
)

type ProfileShowCmd struct{}

func (c *ProfileShowCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	t := ctx.App.Locale.T()
	p := ctx.App.Profile.Profile()

	fmt.Println(t.Get("profile.title") + ":")
	fmt.Printf("  Name:       %s\n", p.Name)
	fmt.Printf("  Age:        %s\n", p.Age)
	fmt.Printf("  Stage:      %s\n", p.EducationStage)
	fmt.Printf("  Hobby:      %s\n", p.Hobby)
	fmt.Printf("  Motto:      %s\n", p.Motto)
	fmt.Printf("  Avatar:     %s\n", p.AvatarURL)
	fmt.Printf("  %s: %s\n", t.Get("profile.language"), ctx.App.Locale.Locale())
	fmt.Printf("  %s: %v\n", t.Get("profile.dark_mode"), !p.Preferences.Theme)
	fmt.Printf("  %s: %v\n", t.Get("profile.notifications"), p.Preferences.Notifications)
	if ctx.App.Profile.HasPin() {
		fmt.Println("  PIN:        set")
	}
	return nil
}

type ProfileEditCmd struct {
	Name          *string `help:"Display name."`
	Age           *string `help:"Age."`
	Hobby         *string `help:"Hobby."`
	Motto         *string `help:"Motto."`
	Avatar        *string `help:"Avatar URL."`
	Stage         *string `help:"Education stage."`
	Notifications *bool   `help:"Enable or disable notifications."`
}

func (c *ProfileEditCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	patch := models.ProfilePatch{
		Name:           c.Name,
		Age:            c.Age,
		Hobby:          c.Hobby,
		Motto:          c.Motto,
		AvatarURL:      c.Avatar,
		EducationStage: c.Stage,
	}
	if c.Notifications != nil {
		patch.Preferences = &models.PreferencesPatch{Notifications: c.Notifications}
	}

	if err := ctx.App.Profile.UpdateProfile(patch); err != nil {
		return err
	}
	fmt.Println("Profile updated.")
	return nil
}

type ProfileThemeCmd struct{}

func (c *ProfileThemeCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	if err := ctx.App.Profile.ToggleTheme(); err != nil {
		return err
	}

	if ctx.App.Profile.Profile().Preferences.Theme {
		fmt.Println("Switched to the light palette.")
	} else {
		fmt.Println("Switched to the dark palette.")
	}
	return nil
}

type ProfileTutorialCmd struct {
	Reset bool `help:"Mark the tutorial as unseen so it plays again."`
}

func (c *ProfileTutorialCmd) Run(ctx *Context) error {
	if err := ensureOnboarded(ctx); err != nil {
		return err
	}

	if c.Reset {
		if err := ctx.App.Profile.ResetTutorial(); err != nil {
			return err
		}
		fmt.Println("Tutorial reset.")
		return nil
	}

	if err := ctx.App.Profile.CompleteTutorial(); err != nil {
		return err
	}
	fmt.Println("Tutorial marked as seen.")
	return nil
}
