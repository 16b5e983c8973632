package referee

import (
	"context"

	"github.com/google/uuid"

	"github.com/resumee-hq/resumee-api/internal/domain/referee"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

type ManageRefereeUseCase struct {
	refereeRepo referee.Repository
}

func NewManageRefereeUseCase(repo referee.Repository) *ManageRefereeUseCase {
	return &ManageRefereeUseCase{refereeRepo: repo}
}

type RefereeFields struct {
	Name    string
	Role    string
	Email   string
	Contact string
	// At most one of these may be set; a referee can also be created
	// detached, which display code tolerates.
	WorkExperienceID *uuid.UUID
	EducationID      *uuid.UUID
}

func attachment(fields RefereeFields) (referee.Attachment, error) {
	switch {
	case fields.WorkExperienceID != nil && fields.EducationID != nil:
		return referee.Attachment{}, apperror.NewInvalidInput("a referee attaches to a work experience or an education entry, not both", nil)
	case fields.WorkExperienceID != nil:
		return referee.AttachToWork(*fields.WorkExperienceID), nil
	case fields.EducationID != nil:
		return referee.AttachToEducation(*fields.EducationID), nil
	default:
		return referee.Detached(), nil
	}
}

func (uc *ManageRefereeUseCase) Create(ctx context.Context, fields RefereeFields) (*referee.Referee, error) {
	if fields.Name == "" {
		return nil, apperror.NewInvalidInput("referee name is required", nil)
	}
	att, err := attachment(fields)
	if err != nil {
		return nil, err
	}
	r := &referee.Referee{
		ID:         uuid.New(),
		Name:       fields.Name,
		Role:       fields.Role,
		Email:      fields.Email,
		Contact:    fields.Contact,
		Attachment: att,
	}
	if err := uc.refereeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ManageRefereeUseCase) Update(ctx context.Context, id uuid.UUID, fields RefereeFields) (*referee.Referee, error) {
	r, err := uc.refereeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	att, err := attachment(fields)
	if err != nil {
		return nil, err
	}
	r.Name = fields.Name
	r.Role = fields.Role
	r.Email = fields.Email
	r.Contact = fields.Contact
	r.Attachment = att
	if err := uc.refereeRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ManageRefereeUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.refereeRepo.Delete(ctx, id)
}

func (uc *ManageRefereeUseCase) Get(ctx context.Context, id uuid.UUID) (*referee.Referee, error) {
	return uc.refereeRepo.FindByID(ctx, id)
}

// ListForResume exposes the aggregated referee view used on the CV:
// every referee attached to the résumé's work or education history,
// ordered by name, without double-counting.
func (uc *ManageRefereeUseCase) ListForResume(ctx context.Context, resumeID uuid.UUID) ([]*referee.Referee, error) {
	return uc.refereeRepo.ListByResume(ctx, resumeID)
}
