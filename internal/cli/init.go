package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/studymoodapp/studymood/internal/models"
)

type InitCmd struct{}

// Run walks the onboarding wizard and marks the profile onboarded.
// Re-running on an onboarded profile is refused.
func (c *InitCmd) Run(ctx *Context) error {
	profile := ctx.App.Profile.Profile()
	if profile.IsOnboarded {
		fmt.Println("Already set up. Use 'studymood profile edit' to change your details.")
		return nil
	}

	name := profile.Name
	age := profile.Age
	stage := profile.EducationStage
	hobby := profile.Hobby

	var subjectIDs []string
	var subjectOptions []huh.Option[string]
	for _, sub := range ctx.App.Subjects.Subjects() {
		subjectOptions = append(subjectOptions, huh.NewOption(sub.Emoji+" "+sub.Label, sub.ID))
		subjectIDs = append(subjectIDs, sub.ID)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				Value(&name),
			huh.NewInput().
				Title("How old are you?").
				Value(&age),
			huh.NewSelect[string]().
				Title("Where are you studying?").
				Options(
					huh.NewOption("Middle School", "Middle School"),
					huh.NewOption("High School", "High School"),
					huh.NewOption("University", "University"),
					huh.NewOption("Self-taught", "Self-taught"),
				).
				Value(&stage),
			huh.NewInput().
				Title("A hobby that helps you unwind?").
				Value(&hobby),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which subjects are you tracking?").
				Options(subjectOptions...).
				Value(&subjectIDs),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	onboarded := true
	patch := models.ProfilePatch{
		Name:           &name,
		Age:            &age,
		EducationStage: &stage,
		Hobby:          &hobby,
		IsOnboarded:    &onboarded,
	}
	if err := ctx.App.Profile.UpdateProfile(patch); err != nil {
		return err
	}

	selected := make(map[string]struct{}, len(subjectIDs))
	for _, id := range subjectIDs {
		selected[id] = struct{}{}
	}
	var subjects []models.Subject
	for _, sub := range ctx.App.Subjects.Subjects() {
		if _, ok := selected[sub.ID]; ok {
			subjects = append(subjects, sub)
		}
	}
	if len(subjects) > 0 {
		if err := ctx.App.Subjects.SetSubjects(subjects); err != nil {
			return err
		}
	}

	fmt.Printf("Welcome, %s! Storage lives at: %s\n", name, ctx.StoragePath)
	fmt.Println("Run 'studymood' to open the dashboard, or 'studymood log add' for your first check-in.")
	return nil
}
