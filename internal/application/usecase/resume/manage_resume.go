package resume

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumee-hq/resumee-api/internal/application/service"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type ManageResumeUseCase struct {
	resumeRepo resume.Repository
	uploader   service.Uploader
	cache      DocumentCache
	logger     logger.Logger
}

func NewManageResumeUseCase(repo resume.Repository, uploader service.Uploader, cache DocumentCache, log logger.Logger) *ManageResumeUseCase {
	return &ManageResumeUseCase{
		resumeRepo: repo,
		uploader:   uploader,
		cache:      cache,
		logger:     log,
	}
}

type ResumeFields struct {
	Title        *string
	FirstName    string
	MiddleName   string
	Surname      string
	Contact      string
	Roles        string
	Email        string
	Website      string
	State        string
	Country      string
	GithubLink   string
	LinkedinLink string
	Objective    string
	TemplateID   *uuid.UUID
}

func (uc *ManageResumeUseCase) Create(ctx context.Context, fields ResumeFields) (*resume.Resume, error) {
	now := time.Now().UTC()
	r := &resume.Resume{
		ID:           uuid.New(),
		Title:        fields.Title,
		FirstName:    fields.FirstName,
		MiddleName:   fields.MiddleName,
		Surname:      fields.Surname,
		Contact:      fields.Contact,
		Roles:        fields.Roles,
		Email:        fields.Email,
		Website:      fields.Website,
		State:        fields.State,
		Country:      fields.Country,
		GithubLink:   fields.GithubLink,
		LinkedinLink: fields.LinkedinLink,
		Objective:    fields.Objective,
		TemplateID:   fields.TemplateID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if r.FirstName == "" || r.Surname == "" || r.Email == "" {
		return nil, apperror.NewInvalidInput("first_name, surname and email are required", nil)
	}
	if err := uc.resumeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ManageResumeUseCase) Update(ctx context.Context, id uuid.UUID, fields ResumeFields) (*resume.Resume, error) {
	r, err := uc.resumeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Title = fields.Title
	r.FirstName = fields.FirstName
	r.MiddleName = fields.MiddleName
	r.Surname = fields.Surname
	r.Contact = fields.Contact
	r.Roles = fields.Roles
	r.Email = fields.Email
	r.Website = fields.Website
	r.State = fields.State
	r.Country = fields.Country
	r.GithubLink = fields.GithubLink
	r.LinkedinLink = fields.LinkedinLink
	r.Objective = fields.Objective
	r.TemplateID = fields.TemplateID
	r.UpdatedAt = time.Now().UTC()

	if err := uc.resumeRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return r, nil
}

func (uc *ManageResumeUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := uc.resumeRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *ManageResumeUseCase) Get(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	return uc.resumeRepo.FindByID(ctx, id)
}

func (uc *ManageResumeUseCase) List(ctx context.Context, page, limit int) ([]*resume.Resume, error) {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	offset := (page - 1) * limit
	return uc.resumeRepo.List(ctx, limit, offset)
}

// UploadProfilePicture stores the picture and records its relative path
// on the résumé; the base URL is prepended when the document is built.
func (uc *ManageResumeUseCase) UploadProfilePicture(ctx context.Context, id uuid.UUID, file io.Reader) (*resume.Resume, error) {
	r, err := uc.resumeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	publicID := r.ID.String()
	url, err := uc.uploader.Upload(ctx, file, "resumee", publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload profile picture", err)
	}
	uc.logger.Info("uploaded profile picture", zap.String("resume_id", id.String()), zap.String("url", url))

	path := fmt.Sprintf("/resumee/%s", publicID)
	r.ProfilePicPath = &path
	r.UpdatedAt = time.Now().UTC()
	if err := uc.resumeRepo.Update(ctx, r); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return r, nil
}

// Relation kinds accepted by Link and Unlink.
const (
	RelationWork      = "work"
	RelationEducation = "education"
	RelationPortfolio = "portfolio"
	RelationLanguage  = "language"
)

func (uc *ManageResumeUseCase) Link(ctx context.Context, resumeID uuid.UUID, relation string, targetID uuid.UUID) error {
	var err error
	switch relation {
	case RelationWork:
		err = uc.resumeRepo.AddWorkExperience(ctx, resumeID, targetID)
	case RelationEducation:
		err = uc.resumeRepo.AddEducation(ctx, resumeID, targetID)
	case RelationPortfolio:
		err = uc.resumeRepo.AddPortfolio(ctx, resumeID, targetID)
	case RelationLanguage:
		err = uc.resumeRepo.AddLanguage(ctx, resumeID, targetID)
	default:
		return apperror.NewInvalidInput(fmt.Sprintf("unknown relation '%s'", relation), nil)
	}
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *ManageResumeUseCase) Unlink(ctx context.Context, resumeID uuid.UUID, relation string, targetID uuid.UUID) error {
	var err error
	switch relation {
	case RelationWork:
		err = uc.resumeRepo.RemoveWorkExperience(ctx, resumeID, targetID)
	case RelationEducation:
		err = uc.resumeRepo.RemoveEducation(ctx, resumeID, targetID)
	case RelationPortfolio:
		err = uc.resumeRepo.RemovePortfolio(ctx, resumeID, targetID)
	case RelationLanguage:
		err = uc.resumeRepo.RemoveLanguage(ctx, resumeID, targetID)
	default:
		return apperror.NewInvalidInput(fmt.Sprintf("unknown relation '%s'", relation), nil)
	}
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *ManageResumeUseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.InvalidateActiveDocument(ctx); err != nil {
		uc.logger.Warn("failed to invalidate active document cache", zap.Error(err))
	}
}
