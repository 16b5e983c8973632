package education

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/resumee-hq/resumee-api/internal/domain/education"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

type ManageEducationUseCase struct {
	educationRepo education.Repository
}

func NewManageEducationUseCase(repo education.Repository) *ManageEducationUseCase {
	return &ManageEducationUseCase{educationRepo: repo}
}

type EducationFields struct {
	FieldOfStudy string
	Degree       string
	Grade        string
	Institution  string
	StartDate    time.Time
	EndDate      *time.Time
}

func (uc *ManageEducationUseCase) Create(ctx context.Context, fields EducationFields) (*education.Education, error) {
	if fields.Institution == "" || fields.FieldOfStudy == "" {
		return nil, apperror.NewInvalidInput("institution and field_of_study are required", nil)
	}
	e := &education.Education{
		ID:           uuid.New(),
		FieldOfStudy: fields.FieldOfStudy,
		Degree:       fields.Degree,
		Grade:        fields.Grade,
		Institution:  fields.Institution,
		StartDate:    fields.StartDate,
		EndDate:      fields.EndDate,
	}
	if err := uc.educationRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ManageEducationUseCase) Update(ctx context.Context, id uuid.UUID, fields EducationFields) (*education.Education, error) {
	e, err := uc.educationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.FieldOfStudy = fields.FieldOfStudy
	e.Degree = fields.Degree
	e.Grade = fields.Grade
	e.Institution = fields.Institution
	e.StartDate = fields.StartDate
	e.EndDate = fields.EndDate
	if err := uc.educationRepo.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ManageEducationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.educationRepo.Delete(ctx, id)
}

func (uc *ManageEducationUseCase) Get(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return uc.educationRepo.FindByID(ctx, id)
}
