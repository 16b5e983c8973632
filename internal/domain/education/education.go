package education

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID           uuid.UUID  `json:"id"`
	FieldOfStudy string     `json:"field_of_study"`
	Degree       string     `json:"degree"`
	Grade        string     `json:"grade"`
	Institution  string     `json:"institution"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date"`
}

type Repository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	// ListByResume returns the résumé's education history ordered by
	// end_date ascending, ongoing entries last.
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*Education, error)
}
