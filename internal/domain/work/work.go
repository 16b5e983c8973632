// Package work holds work experience entries, their ordered description
// bullets and the skills those bullets reference.
package work

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type WorkType string

const (
	FullTime WorkType = "Full Time"
	PartTime WorkType = "Part Time"
	Contract WorkType = "Contract"
)

type WorkExperience struct {
	ID              uuid.UUID  `json:"id"`
	Role            string     `json:"role"`
	Company         string     `json:"company"`
	CompanyLocation string     `json:"company_location"`
	WorkType        WorkType   `json:"work_type"`
	StartDate       time.Time  `json:"start_date"`
	// EndDate is nil while the position is still held.
	EndDate *time.Time `json:"end_date"`
}

var (
	ErrEndBeforeStart = errors.New("end date is before start date")
	ErrUnknownType    = errors.New("unknown work type")
)

func (w *WorkExperience) Validate() error {
	switch w.WorkType {
	case FullTime, PartTime, Contract:
	default:
		return ErrUnknownType
	}
	if w.EndDate != nil && w.EndDate.Before(w.StartDate) {
		return ErrEndBeforeStart
	}
	return nil
}

// Description is one display-ordered bullet under a work experience.
type Description struct {
	ID               uuid.UUID `json:"id"`
	WorkExperienceID uuid.UUID `json:"work_experience_id"`
	Description      string    `json:"description"`
	Order            int       `json:"order"`
}

type Skill struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Degree int       `json:"degree"`
	Order  int       `json:"order"`
}

type Repository interface {
	Save(ctx context.Context, w *WorkExperience) error
	Update(ctx context.Context, w *WorkExperience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*WorkExperience, error)
	// ListByResume returns the résumé's work history ordered by end_date
	// ascending, open-ended entries last per the store's null ordering.
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*WorkExperience, error)
	// EarliestStartDate is nil when the résumé has no work history.
	EarliestStartDate(ctx context.Context, resumeID uuid.UUID) (*time.Time, error)

	SaveDescription(ctx context.Context, d *Description) error
	DeleteDescription(ctx context.Context, id uuid.UUID) error
	// DescriptionsFor returns bullets ordered by their display order.
	DescriptionsFor(ctx context.Context, workID uuid.UUID) ([]Description, error)
	LinkSkill(ctx context.Context, descriptionID, skillID uuid.UUID) error
	UnlinkSkill(ctx context.Context, descriptionID, skillID uuid.UUID) error

	// SkillsFor returns the deduplicated skills referenced by any bullet
	// of the work experience, highest degree first.
	SkillsFor(ctx context.Context, workID uuid.UUID) ([]Skill, error)
	// SkillsForResume unions SkillsFor over the résumé's whole work
	// history, again deduplicated and ordered by degree descending.
	SkillsForResume(ctx context.Context, resumeID uuid.UUID) ([]Skill, error)
}

type SkillRepository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	List(ctx context.Context) ([]Skill, error)
}
