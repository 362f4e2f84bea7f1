package store

import (
	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/storage"
)

// App bundles the five stores over one shared medium. Exactly one App
// is constructed per process; consumers receive it explicitly rather
// than reaching for globals.
type App struct {
	Profile  *ProfileStore
	Logs     *LogStore
	Plans    *PlanStore
	Subjects *SubjectStore
	Locale   *LocaleStore
}

// NewApp constructs and initializes all stores. Each store's Init
// performs its own load and legacy migration exactly once.
func NewApp(medium storage.Medium, logger *zap.Logger, applyTheme ThemeApplier) (*App, error) {
	app := &App{
		Profile:  NewProfileStore(medium, logger, applyTheme),
		Logs:     NewLogStore(medium, logger),
		Plans:    NewPlanStore(medium, logger),
		Subjects: NewSubjectStore(medium, logger),
		Locale:   NewLocaleStore(medium, logger),
	}

	if err := app.Profile.Init(); err != nil {
		return nil, err
	}
	if err := app.Logs.Init(); err != nil {
		return nil, err
	}
	if err := app.Plans.Init(); err != nil {
		return nil, err
	}
	if err := app.Subjects.Init(); err != nil {
		return nil, err
	}
	if err := app.Locale.Init(); err != nil {
		return nil, err
	}

	return app, nil
}
