package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/cli"
	"github.com/studymoodapp/studymood/internal/storage"
	"github.com/studymoodapp/studymood/internal/store"
)

var CLI struct {
	Version kong.VersionFlag
	Storage string           `help:"Storage file path." type:"path" default:"~/.config/studymood/studymood.db"`
	Debug   bool             `help:"Enable debug logging."`

	Init cli.InitCmd `cmd:"" help:"Set up your profile."`
	Tui  cli.TuiCmd  `cmd:"" help:"Open the interactive dashboard." default:"1"`
	Log  struct {
		Add    cli.LogAddCmd    `cmd:"" help:"Record a daily check-in."`
		List   cli.LogListCmd   `cmd:"" help:"Show recent check-ins."`
		Today  cli.LogTodayCmd  `cmd:"" help:"Show today's mood."`
		Streak cli.LogStreakCmd `cmd:"" help:"Show total check-in days."`
	} `cmd:"" help:"Daily mood logs."`
	Weekly struct {
		Add    cli.WeeklyAddCmd    `cmd:"" help:"Submit the weekly check-in."`
		List   cli.WeeklyListCmd   `cmd:"" help:"Show weekly check-ins."`
		Status cli.WeeklyStatusCmd `cmd:"" help:"Show this week's status."`
	} `cmd:"" help:"Weekly check-ins."`
	Plan struct {
		Add    cli.PlanAddCmd    `cmd:"" help:"Add a study plan."`
		List   cli.PlanListCmd   `cmd:"" help:"List study plans."`
		Done   cli.PlanDoneCmd   `cmd:"" help:"Toggle a plan's completion."`
		Remove cli.PlanRemoveCmd `cmd:"" help:"Remove a study plan."`
	} `cmd:"" help:"Study plans."`
	Subject struct {
		List   cli.SubjectListCmd   `cmd:"" help:"List subjects."`
		Add    cli.SubjectAddCmd    `cmd:"" help:"Add a subject."`
		Remove cli.SubjectRemoveCmd `cmd:"" help:"Remove a subject."`
		Edit   cli.SubjectEditCmd   `cmd:"" help:"Edit a subject."`
		Style  cli.SubjectStyleCmd  `cmd:"" help:"Resolve a subject's display style."`
	} `cmd:"" help:"Manage subjects."`
	Profile struct {
		Show     cli.ProfileShowCmd     `cmd:"" help:"Show the profile."`
		Edit     cli.ProfileEditCmd     `cmd:"" help:"Edit profile fields."`
		Theme    cli.ProfileThemeCmd    `cmd:"" help:"Toggle light/dark theme."`
		Tutorial cli.ProfileTutorialCmd `cmd:"" help:"Mark or reset the tutorial."`
	} `cmd:"" help:"Profile and preferences."`
	Pin struct {
		Set    cli.PinSetCmd    `cmd:"" help:"Set the lock PIN."`
		Remove cli.PinRemoveCmd `cmd:"" help:"Remove the lock PIN."`
		Status cli.PinStatusCmd `cmd:"" help:"Show whether a PIN is set."`
	} `cmd:"" help:"Session lock."`
	Locale struct {
		Get cli.LocaleGetCmd `cmd:"" help:"Show the active locale."`
		Set cli.LocaleSetCmd `cmd:"" help:"Switch locale (en, id)."`
	} `cmd:"" help:"Language settings."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run diagnostics."`
	Dbg    cli.DebugCmd  `cmd:"" name:"debug" help:"Debugging helpers."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("studymood"),
		kong.Description("Study mood tracker: daily check-ins, weekly reflections, and study plans"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	logger := zap.NewNop()
	if CLI.Debug {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Determine storage type based on extension.
	var medium storage.Medium
	var err error
	if strings.HasSuffix(CLI.Storage, ".json") {
		medium, err = storage.OpenFile(CLI.Storage)
	} else {
		medium, err = storage.OpenSQLite(CLI.Storage)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer medium.Close()

	applyTheme := func(light bool) {
		lipgloss.SetHasDarkBackground(!light)
	}

	app, err := store.NewApp(medium, logger, applyTheme)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	appCtx := &cli.Context{
		App:         app,
		Medium:      medium,
		Logger:      logger,
		StoragePath: CLI.Storage,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
