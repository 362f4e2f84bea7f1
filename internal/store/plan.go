package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studymoodapp/studymood/internal/models"
	"github.com/studymoodapp/studymood/internal/storage"
)

// PlanStore owns the study-plan collection, newest first.
type PlanStore struct {
	medium storage.Medium
	log    *zap.Logger
	now    func() time.Time

	plans []models.StudyPlan
}

func NewPlanStore(medium storage.Medium, logger *zap.Logger) *PlanStore {
	return &PlanStore{
		medium: medium,
		log:    logger,
		now:    time.Now,
	}
}

func (s *PlanStore) Init() error {
	if plans, ok := storage.LoadCollection[models.StudyPlan](s.medium, storage.KeyPlans, s.log); ok {
		s.plans = plans
	} else if legacy, ok := storage.LoadCollection[models.StudyPlan](s.medium, storage.LegacyKeyPlans, s.log); ok {
		s.plans = legacy
		if err := s.persist(); err != nil {
			return err
		}
	}
	return nil
}

func (s *PlanStore) Plans() []models.StudyPlan {
	return s.plans
}

// AddPlan prepends a new plan with a generated id and creation time,
// starting incomplete.
func (s *PlanStore) AddPlan(fields models.StudyPlan) (models.StudyPlan, error) {
	plan := fields
	plan.ID = uuid.NewString()
	plan.CreatedAt = s.now().Format(time.RFC3339)
	plan.Completed = false

	s.plans = append([]models.StudyPlan{plan}, s.plans...)
	return plan, s.persist()
}

// TogglePlan flips the completion flag of the plan with the given id.
// Unknown ids are a silent no-op.
func (s *PlanStore) TogglePlan(id string) error {
	for i := range s.plans {
		if s.plans[i].ID == id {
			s.plans[i].Completed = !s.plans[i].Completed
			return s.persist()
		}
	}
	return nil
}

// RemovePlan drops the plan with the given id, if present.
func (s *PlanStore) RemovePlan(id string) error {
	kept := s.plans[:0]
	for _, p := range s.plans {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.plans = kept
	return s.persist()
}

func (s *PlanStore) persist() error {
	return storage.SaveJSON(s.medium, storage.KeyPlans, s.plans)
}
