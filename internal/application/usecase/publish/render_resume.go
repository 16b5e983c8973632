// Package publish turns a résumé and its related records into the
// nested document the public site renders and the JSON API returns.
package publish

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/resumee-hq/resumee-api/internal/domain/education"
	"github.com/resumee-hq/resumee-api/internal/domain/portfolio"
	"github.com/resumee-hq/resumee-api/internal/domain/referee"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/internal/domain/work"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

// Picker selects an index in [0, n). Production wires rand.Intn; tests
// substitute a fixed source to make the portfolio image pick
// deterministic.
type Picker func(n int) int

// DocumentCache holds the rendered document of the active résumé for a
// short while between requests.
type DocumentCache interface {
	GetActiveDocument(ctx context.Context) (*ResumeDocument, error)
	SetActiveDocument(ctx context.Context, doc *ResumeDocument) error
	InvalidateActiveDocument(ctx context.Context) error
}

// DefaultTemplate is rendered when the active résumé has no template
// assigned.
const DefaultTemplate = "default.html"

var tracer = otel.Tracer("publish_usecase")

type RenderResumeUseCase struct {
	resumeRepo    resume.Repository
	templateRepo  resume.TemplateRepository
	workRepo      work.Repository
	educationRepo education.Repository
	refereeRepo   referee.Repository
	portfolioRepo portfolio.Repository
	cache         DocumentCache
	baseURL       string
	pick          Picker
	logger        logger.Logger
}

func NewRenderResumeUseCase(
	resumeRepo resume.Repository,
	templateRepo resume.TemplateRepository,
	workRepo work.Repository,
	educationRepo education.Repository,
	refereeRepo referee.Repository,
	portfolioRepo portfolio.Repository,
	cache DocumentCache,
	baseURL string,
	pick Picker,
	log logger.Logger,
) *RenderResumeUseCase {
	return &RenderResumeUseCase{
		resumeRepo:    resumeRepo,
		templateRepo:  templateRepo,
		workRepo:      workRepo,
		educationRepo: educationRepo,
		refereeRepo:   refereeRepo,
		portfolioRepo: portfolioRepo,
		cache:         cache,
		baseURL:       baseURL,
		pick:          pick,
		logger:        log,
	}
}

// ExecuteActive renders the active résumé. When no résumé is active the
// repository's not-found error surfaces to the caller as a 404 instead
// of the historical crash.
func (uc *RenderResumeUseCase) ExecuteActive(ctx context.Context) (*ResumeDocument, error) {
	ctx, span := tracer.Start(ctx, "RenderActiveResume")
	defer span.End()

	if uc.cache != nil {
		if doc, err := uc.cache.GetActiveDocument(ctx); err != nil {
			uc.logger.Warn("document cache read failed", zap.Error(err))
		} else if doc != nil {
			return doc, nil
		}
	}

	r, err := uc.resumeRepo.FindActive(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	doc, err := uc.buildDocument(ctx, r)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetActiveDocument(ctx, doc); err != nil {
			uc.logger.Warn("document cache write failed", zap.Error(err))
		}
	}
	return doc, nil
}

func (uc *RenderResumeUseCase) ExecuteByID(ctx context.Context, id uuid.UUID) (*ResumeDocument, error) {
	r, err := uc.resumeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.buildDocument(ctx, r)
}

// TemplateName resolves the CV template file the résumé renders with,
// falling back to DefaultTemplate when none is assigned.
func (uc *RenderResumeUseCase) TemplateName(ctx context.Context, doc *ResumeDocument) string {
	if doc.Template == nil || *doc.Template == "" {
		return DefaultTemplate
	}
	return *doc.Template
}

func (uc *RenderResumeUseCase) buildDocument(ctx context.Context, r *resume.Resume) (*ResumeDocument, error) {
	doc := &ResumeDocument{
		ID:           r.ID,
		Title:        r.Title,
		FirstName:    r.FirstName,
		MiddleName:   r.MiddleName,
		Surname:      r.Surname,
		Contact:      r.Contact,
		Roles:        r.Roles,
		Email:        r.Email,
		Website:      r.Website,
		State:        r.State,
		Country:      r.Country,
		GithubLink:   r.GithubLink,
		LinkedinLink: r.LinkedinLink,
		Objective:    r.Objective,
		Active:       r.Active,
		ProfilePic:   absolutize(uc.baseURL, r.ProfilePicPath),
	}

	if r.TemplateID != nil {
		tpl, err := uc.templateRepo.FindByID(ctx, *r.TemplateID)
		if err != nil {
			uc.logger.Warn("resume references missing template", zap.String("resume_id", r.ID.String()), zap.Error(err))
		} else {
			doc.Template = &tpl.Name
		}
	}

	skills, err := uc.workRepo.SkillsForResume(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	doc.Skills = toSkillDocuments(skills)

	workHistory, err := uc.workRepo.ListByResume(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	doc.WorkHistory = make([]WorkDocument, 0, len(workHistory))
	for _, w := range workHistory {
		wSkills, err := uc.workRepo.SkillsFor(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		descriptions, err := uc.workRepo.DescriptionsFor(ctx, w.ID)
		if err != nil {
			return nil, err
		}
		doc.WorkHistory = append(doc.WorkHistory, toWorkDocument(w, wSkills, descriptions))
	}

	educationHistory, err := uc.educationRepo.ListByResume(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	doc.EducationHistory = make([]EducationDocument, 0, len(educationHistory))
	for _, e := range educationHistory {
		doc.EducationHistory = append(doc.EducationHistory, toEducationDocument(e))
	}

	referees, err := uc.refereeRepo.ListByResume(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	doc.Referees = toRefereeDocuments(referees)

	portfolios, err := uc.portfolioRepo.ListByResume(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	doc.Portfolios = make([]PortfolioDocument, 0, len(portfolios))
	for _, p := range portfolios {
		images, err := uc.portfolioRepo.ImagesFor(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		doc.Portfolios = append(doc.Portfolios, toPortfolioDocument(p, imageURLs(uc.baseURL, images), uc.pick))
	}
	doc.WorkCompleted = len(portfolios)

	languages, err := uc.resumeRepo.LanguagesFor(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	doc.Languages = toLanguageDocuments(languages)

	earliest, err := uc.workRepo.EarliestStartDate(ctx, r.ID)
	if err != nil {
		return nil, err
	}
	doc.YearsOfExp = yearsSince(earliest)

	doc.TotalClients, err = uc.portfolioRepo.DistinctClientCount(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// yearsSince keeps the historical days/365 arithmetic.
func yearsSince(start *time.Time) float64 {
	if start == nil {
		return 0
	}
	days := int(time.Since(*start).Hours() / 24)
	return float64(days) / 365
}

func absolutize(baseURL string, path *string) *string {
	if path == nil || *path == "" {
		return nil
	}
	url := baseURL + *path
	return &url
}

func imageURLs(baseURL string, images []portfolio.Image) []string {
	urls := make([]string, len(images))
	for i, img := range images {
		urls[i] = baseURL + img.Path
	}
	return urls
}
