package resume

import (
	"context"

	"github.com/google/uuid"

	"github.com/resumee-hq/resumee-api/internal/domain/job"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

// ManageCatalogUseCase covers the small lookup entities around a résumé:
// rendering templates, spoken languages and job-board postings.
type ManageCatalogUseCase struct {
	templateRepo resume.TemplateRepository
	languageRepo resume.LanguageRepository
	jobRepo      job.Repository
}

func NewManageCatalogUseCase(tRepo resume.TemplateRepository, lRepo resume.LanguageRepository, jRepo job.Repository) *ManageCatalogUseCase {
	return &ManageCatalogUseCase{
		templateRepo: tRepo,
		languageRepo: lRepo,
		jobRepo:      jRepo,
	}
}

func (uc *ManageCatalogUseCase) CreateTemplate(ctx context.Context, name string) (*resume.Template, error) {
	if name == "" {
		return nil, apperror.NewInvalidInput("template name is required", nil)
	}
	t := &resume.Template{ID: uuid.New(), Name: name}
	if err := uc.templateRepo.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (uc *ManageCatalogUseCase) ListTemplates(ctx context.Context) ([]resume.Template, error) {
	return uc.templateRepo.List(ctx)
}

func (uc *ManageCatalogUseCase) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	return uc.templateRepo.Delete(ctx, id)
}

func (uc *ManageCatalogUseCase) CreateLanguage(ctx context.Context, name string, level resume.LanguageLevel) (*resume.Language, error) {
	if name == "" {
		return nil, apperror.NewInvalidInput("language name is required", nil)
	}
	if level == "" {
		level = resume.LevelConversational
	}
	l := &resume.Language{ID: uuid.New(), Name: name, Level: level}
	if err := uc.languageRepo.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (uc *ManageCatalogUseCase) ListLanguages(ctx context.Context) ([]resume.Language, error) {
	return uc.languageRepo.List(ctx)
}

func (uc *ManageCatalogUseCase) DeleteLanguage(ctx context.Context, id uuid.UUID) error {
	return uc.languageRepo.Delete(ctx, id)
}

func (uc *ManageCatalogUseCase) CreateJob(ctx context.Context, name, country string, foreign bool) (*job.Job, error) {
	if name == "" {
		return nil, apperror.NewInvalidInput("job name is required", nil)
	}
	j := &job.Job{ID: uuid.New(), Name: name, Country: country, Foreign: foreign}
	if err := uc.jobRepo.Save(ctx, j); err != nil {
		return nil, err
	}
	return j, nil
}

func (uc *ManageCatalogUseCase) ListJobs(ctx context.Context) ([]job.Job, error) {
	return uc.jobRepo.List(ctx)
}

func (uc *ManageCatalogUseCase) DeleteJob(ctx context.Context, id uuid.UUID) error {
	return uc.jobRepo.Delete(ctx, id)
}

func (uc *ManageCatalogUseCase) LinkJobResume(ctx context.Context, jobID, resumeID uuid.UUID) error {
	return uc.jobRepo.LinkResume(ctx, jobID, resumeID)
}

func (uc *ManageCatalogUseCase) UnlinkJobResume(ctx context.Context, jobID, resumeID uuid.UUID) error {
	return uc.jobRepo.UnlinkResume(ctx, jobID, resumeID)
}
