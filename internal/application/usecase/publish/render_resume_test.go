package publish

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumee-hq/resumee-api/internal/domain/education"
	"github.com/resumee-hq/resumee-api/internal/domain/portfolio"
	"github.com/resumee-hq/resumee-api/internal/domain/referee"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/internal/domain/work"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type fakeResumeRepo struct {
	active    *resume.Resume
	languages []resume.Language
}

func (f *fakeResumeRepo) Save(ctx context.Context, r *resume.Resume) error   { return nil }
func (f *fakeResumeRepo) Update(ctx context.Context, r *resume.Resume) error { return nil }
func (f *fakeResumeRepo) Delete(ctx context.Context, id uuid.UUID) error     { return nil }
func (f *fakeResumeRepo) FindByID(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	if f.active != nil && f.active.ID == id {
		return f.active, nil
	}
	return nil, apperror.NewNotFound("resume", id.String())
}
func (f *fakeResumeRepo) FindActive(ctx context.Context) (*resume.Resume, error) {
	if f.active == nil {
		return nil, apperror.NewNotFound("resume", "active")
	}
	return f.active, nil
}
func (f *fakeResumeRepo) List(ctx context.Context, limit, offset int) ([]*resume.Resume, error) {
	return nil, nil
}
func (f *fakeResumeRepo) Activate(ctx context.Context, id uuid.UUID) error { return nil }
func (f *fakeResumeRepo) Duplicate(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	return nil, nil
}
func (f *fakeResumeRepo) AddWorkExperience(ctx context.Context, resumeID, workID uuid.UUID) error {
	return nil
}
func (f *fakeResumeRepo) RemoveWorkExperience(ctx context.Context, resumeID, workID uuid.UUID) error {
	return nil
}
func (f *fakeResumeRepo) AddEducation(ctx context.Context, resumeID, educationID uuid.UUID) error {
	return nil
}
func (f *fakeResumeRepo) RemoveEducation(ctx context.Context, resumeID, educationID uuid.UUID) error {
	return nil
}
func (f *fakeResumeRepo) AddPortfolio(ctx context.Context, resumeID, portfolioID uuid.UUID) error {
	return nil
}
func (f *fakeResumeRepo) RemovePortfolio(ctx context.Context, resumeID, portfolioID uuid.UUID) error {
	return nil
}
func (f *fakeResumeRepo) AddLanguage(ctx context.Context, resumeID, languageID uuid.UUID) error {
	return nil
}
func (f *fakeResumeRepo) RemoveLanguage(ctx context.Context, resumeID, languageID uuid.UUID) error {
	return nil
}
func (f *fakeResumeRepo) LanguagesFor(ctx context.Context, resumeID uuid.UUID) ([]resume.Language, error) {
	return f.languages, nil
}

type fakeTemplateRepo struct {
	templates map[uuid.UUID]*resume.Template
}

func (f *fakeTemplateRepo) Save(ctx context.Context, t *resume.Template) error { return nil }
func (f *fakeTemplateRepo) FindByID(ctx context.Context, id uuid.UUID) (*resume.Template, error) {
	if t, ok := f.templates[id]; ok {
		return t, nil
	}
	return nil, apperror.NewNotFound("template", id.String())
}
func (f *fakeTemplateRepo) List(ctx context.Context) ([]resume.Template, error) { return nil, nil }
func (f *fakeTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

type fakeWorkRepo struct {
	history      []*work.WorkExperience
	skills       map[uuid.UUID][]work.Skill
	resumeSkills []work.Skill
	descriptions map[uuid.UUID][]work.Description
	earliest     *time.Time
}

func (f *fakeWorkRepo) Save(ctx context.Context, w *work.WorkExperience) error   { return nil }
func (f *fakeWorkRepo) Update(ctx context.Context, w *work.WorkExperience) error { return nil }
func (f *fakeWorkRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (f *fakeWorkRepo) FindByID(ctx context.Context, id uuid.UUID) (*work.WorkExperience, error) {
	return nil, apperror.NewNotFound("work experience", id.String())
}
func (f *fakeWorkRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*work.WorkExperience, error) {
	return f.history, nil
}
func (f *fakeWorkRepo) EarliestStartDate(ctx context.Context, resumeID uuid.UUID) (*time.Time, error) {
	return f.earliest, nil
}
func (f *fakeWorkRepo) SaveDescription(ctx context.Context, d *work.Description) error { return nil }
func (f *fakeWorkRepo) DeleteDescription(ctx context.Context, id uuid.UUID) error      { return nil }
func (f *fakeWorkRepo) DescriptionsFor(ctx context.Context, workID uuid.UUID) ([]work.Description, error) {
	return f.descriptions[workID], nil
}
func (f *fakeWorkRepo) LinkSkill(ctx context.Context, descriptionID, skillID uuid.UUID) error {
	return nil
}
func (f *fakeWorkRepo) UnlinkSkill(ctx context.Context, descriptionID, skillID uuid.UUID) error {
	return nil
}
func (f *fakeWorkRepo) SkillsFor(ctx context.Context, workID uuid.UUID) ([]work.Skill, error) {
	return f.skills[workID], nil
}
func (f *fakeWorkRepo) SkillsForResume(ctx context.Context, resumeID uuid.UUID) ([]work.Skill, error) {
	return f.resumeSkills, nil
}

type fakeEducationRepo struct {
	history []*education.Education
}

func (f *fakeEducationRepo) Save(ctx context.Context, e *education.Education) error   { return nil }
func (f *fakeEducationRepo) Update(ctx context.Context, e *education.Education) error { return nil }
func (f *fakeEducationRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (f *fakeEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return nil, apperror.NewNotFound("education", id.String())
}
func (f *fakeEducationRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*education.Education, error) {
	return f.history, nil
}

type fakeRefereeRepo struct {
	referees []*referee.Referee
}

func (f *fakeRefereeRepo) Save(ctx context.Context, r *referee.Referee) error   { return nil }
func (f *fakeRefereeRepo) Update(ctx context.Context, r *referee.Referee) error { return nil }
func (f *fakeRefereeRepo) Delete(ctx context.Context, id uuid.UUID) error       { return nil }
func (f *fakeRefereeRepo) FindByID(ctx context.Context, id uuid.UUID) (*referee.Referee, error) {
	return nil, apperror.NewNotFound("referee", id.String())
}
func (f *fakeRefereeRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*referee.Referee, error) {
	return f.referees, nil
}

type fakePortfolioRepo struct {
	portfolios []*portfolio.Portfolio
	images     map[uuid.UUID][]portfolio.Image
	clients    int
}

func (f *fakePortfolioRepo) Save(ctx context.Context, p *portfolio.Portfolio) error   { return nil }
func (f *fakePortfolioRepo) Update(ctx context.Context, p *portfolio.Portfolio) error { return nil }
func (f *fakePortfolioRepo) Delete(ctx context.Context, id uuid.UUID) error           { return nil }
func (f *fakePortfolioRepo) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.Portfolio, error) {
	for _, p := range f.portfolios {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, apperror.NewNotFound("portfolio", id.String())
}
func (f *fakePortfolioRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*portfolio.Portfolio, error) {
	return f.portfolios, nil
}
func (f *fakePortfolioRepo) CountByResume(ctx context.Context, resumeID uuid.UUID) (int, error) {
	return len(f.portfolios), nil
}
func (f *fakePortfolioRepo) DistinctClientCount(ctx context.Context, resumeID uuid.UUID) (int, error) {
	return f.clients, nil
}
func (f *fakePortfolioRepo) AddImage(ctx context.Context, img *portfolio.Image) error { return nil }
func (f *fakePortfolioRepo) DeleteImage(ctx context.Context, id uuid.UUID) error      { return nil }
func (f *fakePortfolioRepo) ImagesFor(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Image, error) {
	return f.images[portfolioID], nil
}

func firstIndex(n int) int { return 0 }

func newTestUseCase(resumeRepo *fakeResumeRepo, templateRepo *fakeTemplateRepo, workRepo *fakeWorkRepo, educationRepo *fakeEducationRepo, refereeRepo *fakeRefereeRepo, portfolioRepo *fakePortfolioRepo) *RenderResumeUseCase {
	return NewRenderResumeUseCase(
		resumeRepo, templateRepo, workRepo, educationRepo, refereeRepo, portfolioRepo,
		nil, "https://cdn.example.com", firstIndex, logger.NewNop(),
	)
}

func Test_ExecuteActive_NoActiveResume(t *testing.T) {
	uc := newTestUseCase(
		&fakeResumeRepo{},
		&fakeTemplateRepo{},
		&fakeWorkRepo{},
		&fakeEducationRepo{},
		&fakeRefereeRepo{},
		&fakePortfolioRepo{},
	)

	_, err := uc.ExecuteActive(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func Test_ExecuteActive_BuildsFullDocument(t *testing.T) {
	resumeID := uuid.New()
	workID := uuid.New()
	portfolioID := uuid.New()
	templateID := uuid.New()

	start := time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC)
	picPath := "/resumee/" + resumeID.String()

	resumeRepo := &fakeResumeRepo{
		active: &resume.Resume{
			ID:             resumeID,
			FirstName:      "Ada",
			Surname:        "Lovelace",
			Email:          "ada@example.com",
			TemplateID:     &templateID,
			ProfilePicPath: &picPath,
			Active:         true,
		},
		languages: []resume.Language{{ID: uuid.New(), Name: "English", Level: resume.LevelConversational}},
	}
	templateRepo := &fakeTemplateRepo{
		templates: map[uuid.UUID]*resume.Template{templateID: {ID: templateID, Name: "modern.html"}},
	}
	workRepo := &fakeWorkRepo{
		history: []*work.WorkExperience{{
			ID: workID, Role: "Engineer", Company: "Analytical Engines",
			WorkType: work.FullTime, StartDate: start, EndDate: &end,
		}},
		resumeSkills: []work.Skill{{ID: uuid.New(), Name: "Go", Degree: 90}},
		skills:       map[uuid.UUID][]work.Skill{workID: {{ID: uuid.New(), Name: "Go", Degree: 90}}},
		descriptions: map[uuid.UUID][]work.Description{workID: {
			{ID: uuid.New(), WorkExperienceID: workID, Description: "Built the engine", Order: 1},
		}},
		earliest: &start,
	}
	refereeRepo := &fakeRefereeRepo{referees: []*referee.Referee{
		{ID: uuid.New(), Name: "Charles", Role: "Director", Employer: "Analytical Engines", Attachment: referee.AttachToWork(workID)},
	}}
	portfolioRepo := &fakePortfolioRepo{
		portfolios: []*portfolio.Portfolio{{
			ID: portfolioID, Name: "Engine Site",
			DateStarted: start, DateEnded: end,
		}},
		images: map[uuid.UUID][]portfolio.Image{portfolioID: {
			{ID: uuid.New(), PortfolioID: portfolioID, Path: "/portfolio/a"},
			{ID: uuid.New(), PortfolioID: portfolioID, Path: "/portfolio/b"},
		}},
		clients: 2,
	}

	uc := newTestUseCase(resumeRepo, templateRepo, workRepo, &fakeEducationRepo{}, refereeRepo, portfolioRepo)

	doc, err := uc.ExecuteActive(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ada", doc.FirstName)
	require.NotNil(t, doc.Template)
	assert.Equal(t, "modern.html", *doc.Template)
	require.NotNil(t, doc.ProfilePic)
	assert.Equal(t, "https://cdn.example.com/resumee/"+resumeID.String(), *doc.ProfilePic)

	require.Len(t, doc.WorkHistory, 1)
	assert.Equal(t, "Mar 2020", doc.WorkHistory[0].StartDate)
	assert.Equal(t, "Mar 2021", doc.WorkHistory[0].EndDate)
	assert.Equal(t, "1 year ", doc.WorkHistory[0].Duration)
	assert.Equal(t, []string{"Built the engine"}, doc.WorkHistory[0].Descriptions)

	require.Len(t, doc.Referees, 1)
	assert.Equal(t, "Director at Analytical Engines", doc.Referees[0].Title)

	require.Len(t, doc.Portfolios, 1)
	require.NotNil(t, doc.Portfolios[0].Image)
	// firstIndex always picks the first image.
	assert.Equal(t, "https://cdn.example.com/portfolio/a", *doc.Portfolios[0].Image)
	assert.Len(t, doc.Portfolios[0].Images, 2)

	assert.Equal(t, 1, doc.WorkCompleted)
	assert.Equal(t, 2, doc.TotalClients)
	assert.InDelta(t, time.Since(start).Hours()/24/365, doc.YearsOfExp, 0.01)

	require.Len(t, doc.Languages, 1)
	assert.Equal(t, "Conversational", doc.Languages[0].Level)
}

func Test_ExecuteActive_OngoingWorkShowsPresent(t *testing.T) {
	resumeID := uuid.New()
	workID := uuid.New()
	start := time.Now().UTC().AddDate(0, -2, 0)

	resumeRepo := &fakeResumeRepo{active: &resume.Resume{ID: resumeID, FirstName: "Ada", Surname: "Lovelace"}}
	workRepo := &fakeWorkRepo{
		history: []*work.WorkExperience{{
			ID: workID, Role: "Engineer", Company: "Acme",
			WorkType: work.FullTime, StartDate: start,
		}},
		earliest: &start,
	}

	uc := newTestUseCase(resumeRepo, &fakeTemplateRepo{}, workRepo, &fakeEducationRepo{}, &fakeRefereeRepo{}, &fakePortfolioRepo{})

	doc, err := uc.ExecuteActive(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.WorkHistory, 1)
	assert.Equal(t, "Present", doc.WorkHistory[0].EndDate)
}

func Test_ExecuteActive_PortfolioWithoutImages(t *testing.T) {
	resumeID := uuid.New()
	portfolioID := uuid.New()

	resumeRepo := &fakeResumeRepo{active: &resume.Resume{ID: resumeID, FirstName: "Ada", Surname: "Lovelace"}}
	portfolioRepo := &fakePortfolioRepo{
		portfolios: []*portfolio.Portfolio{{
			ID: portfolioID, Name: "No pictures",
			DateStarted: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DateEnded:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		}},
	}

	uc := newTestUseCase(resumeRepo, &fakeTemplateRepo{}, &fakeWorkRepo{}, &fakeEducationRepo{}, &fakeRefereeRepo{}, portfolioRepo)

	doc, err := uc.ExecuteActive(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Portfolios, 1)
	assert.Nil(t, doc.Portfolios[0].Image)
	assert.Empty(t, doc.Portfolios[0].Images)
}

func Test_TemplateName_FallsBackToDefault(t *testing.T) {
	uc := newTestUseCase(&fakeResumeRepo{}, &fakeTemplateRepo{}, &fakeWorkRepo{}, &fakeEducationRepo{}, &fakeRefereeRepo{}, &fakePortfolioRepo{})

	assert.Equal(t, DefaultTemplate, uc.TemplateName(context.Background(), &ResumeDocument{}))

	name := "modern.html"
	assert.Equal(t, "modern.html", uc.TemplateName(context.Background(), &ResumeDocument{Template: &name}))
}

func Test_ExecuteActive_MissingTemplateDegrades(t *testing.T) {
	resumeID := uuid.New()
	danglingTemplate := uuid.New()

	resumeRepo := &fakeResumeRepo{active: &resume.Resume{
		ID: resumeID, FirstName: "Ada", Surname: "Lovelace", TemplateID: &danglingTemplate,
	}}

	uc := newTestUseCase(resumeRepo, &fakeTemplateRepo{}, &fakeWorkRepo{}, &fakeEducationRepo{}, &fakeRefereeRepo{}, &fakePortfolioRepo{})

	doc, err := uc.ExecuteActive(context.Background())
	require.NoError(t, err)
	assert.Nil(t, doc.Template)
	assert.Equal(t, DefaultTemplate, uc.TemplateName(context.Background(), doc))
}
