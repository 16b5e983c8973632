package work

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/resumee-hq/resumee-api/internal/domain/work"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type ManageWorkUseCase struct {
	workRepo  work.Repository
	skillRepo work.SkillRepository
	logger    logger.Logger
}

func NewManageWorkUseCase(wRepo work.Repository, sRepo work.SkillRepository, log logger.Logger) *ManageWorkUseCase {
	return &ManageWorkUseCase{
		workRepo:  wRepo,
		skillRepo: sRepo,
		logger:    log,
	}
}

type WorkExperienceFields struct {
	Role            string
	Company         string
	CompanyLocation string
	WorkType        work.WorkType
	StartDate       time.Time
	EndDate         *time.Time
}

func (uc *ManageWorkUseCase) Create(ctx context.Context, fields WorkExperienceFields) (*work.WorkExperience, error) {
	if fields.WorkType == "" {
		fields.WorkType = work.FullTime
	}
	w := &work.WorkExperience{
		ID:              uuid.New(),
		Role:            fields.Role,
		Company:         fields.Company,
		CompanyLocation: fields.CompanyLocation,
		WorkType:        fields.WorkType,
		StartDate:       fields.StartDate,
		EndDate:         fields.EndDate,
	}
	if err := w.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("work experience validation failed", err)
	}
	if err := uc.workRepo.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (uc *ManageWorkUseCase) Update(ctx context.Context, id uuid.UUID, fields WorkExperienceFields) (*work.WorkExperience, error) {
	w, err := uc.workRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	w.Role = fields.Role
	w.Company = fields.Company
	w.CompanyLocation = fields.CompanyLocation
	w.WorkType = fields.WorkType
	w.StartDate = fields.StartDate
	w.EndDate = fields.EndDate

	if err := w.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("work experience validation failed", err)
	}
	if err := uc.workRepo.Update(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (uc *ManageWorkUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.workRepo.Delete(ctx, id)
}

func (uc *ManageWorkUseCase) Get(ctx context.Context, id uuid.UUID) (*work.WorkExperience, error) {
	return uc.workRepo.FindByID(ctx, id)
}

func (uc *ManageWorkUseCase) AddDescription(ctx context.Context, workID uuid.UUID, text string, order int) (*work.Description, error) {
	if text == "" {
		return nil, apperror.NewInvalidInput("description text is required", nil)
	}
	if _, err := uc.workRepo.FindByID(ctx, workID); err != nil {
		return nil, err
	}
	d := &work.Description{
		ID:               uuid.New(),
		WorkExperienceID: workID,
		Description:      text,
		Order:            order,
	}
	if err := uc.workRepo.SaveDescription(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (uc *ManageWorkUseCase) DeleteDescription(ctx context.Context, id uuid.UUID) error {
	return uc.workRepo.DeleteDescription(ctx, id)
}

func (uc *ManageWorkUseCase) LinkSkill(ctx context.Context, descriptionID, skillID uuid.UUID) error {
	return uc.workRepo.LinkSkill(ctx, descriptionID, skillID)
}

func (uc *ManageWorkUseCase) UnlinkSkill(ctx context.Context, descriptionID, skillID uuid.UUID) error {
	return uc.workRepo.UnlinkSkill(ctx, descriptionID, skillID)
}

type SkillFields struct {
	Name   string
	Degree int
	Order  int
}

func (uc *ManageWorkUseCase) CreateSkill(ctx context.Context, fields SkillFields) (*work.Skill, error) {
	if fields.Name == "" {
		return nil, apperror.NewInvalidInput("skill name is required", nil)
	}
	if fields.Degree < 0 || fields.Degree > 100 {
		return nil, apperror.NewInvalidInput("skill degree must be between 0 and 100", nil)
	}
	s := &work.Skill{
		ID:     uuid.New(),
		Name:   fields.Name,
		Degree: fields.Degree,
		Order:  fields.Order,
	}
	if err := uc.skillRepo.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ManageWorkUseCase) UpdateSkill(ctx context.Context, id uuid.UUID, fields SkillFields) (*work.Skill, error) {
	s, err := uc.skillRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fields.Degree < 0 || fields.Degree > 100 {
		return nil, apperror.NewInvalidInput("skill degree must be between 0 and 100", nil)
	}
	s.Name = fields.Name
	s.Degree = fields.Degree
	s.Order = fields.Order
	if err := uc.skillRepo.Update(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *ManageWorkUseCase) DeleteSkill(ctx context.Context, id uuid.UUID) error {
	return uc.skillRepo.Delete(ctx, id)
}

func (uc *ManageWorkUseCase) ListSkills(ctx context.Context) ([]work.Skill, error) {
	return uc.skillRepo.List(ctx)
}
