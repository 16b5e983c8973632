package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/resumee-hq/resumee-api/internal/domain/education"
	"github.com/resumee-hq/resumee-api/internal/domain/portfolio"
	"github.com/resumee-hq/resumee-api/internal/domain/referee"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/internal/domain/work"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type ResumeRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool        *pgxpool.Pool
	pgContainer   *postgres.PostgresContainer
	testLogger    logger.Logger
	resumeRepo    resume.Repository
	workRepo      work.Repository
	educationRepo education.Repository
	refereeRepo   referee.Repository
	portfolioRepo portfolio.Repository
}

func (s *ResumeRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNop()
	s.resumeRepo = NewPostgresResumeRepo(s.dbPool, s.testLogger)
	s.workRepo = NewPostgresWorkRepo(s.dbPool)
	s.educationRepo = NewPostgresEducationRepo(s.dbPool)
	s.refereeRepo = NewPostgresRefereeRepo(s.dbPool)
	s.portfolioRepo = NewPostgresPortfolioRepo(s.dbPool)
}

func (s *ResumeRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestResumeRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ResumeRepoIntegrationTestSuite))
}

func (s *ResumeRepoIntegrationTestSuite) newResume(firstName string) *resume.Resume {
	return &resume.Resume{
		ID:        uuid.New(),
		FirstName: firstName,
		Surname:   "Tester",
		Email:     firstName + "@example.com",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
}

func (s *ResumeRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()

	r := s.newResume("save")
	s.NoError(s.resumeRepo.Save(ctx, r))

	found, err := s.resumeRepo.FindByID(ctx, r.ID)
	s.NoError(err)
	s.Equal(r.FirstName, found.FirstName)
	s.False(found.Active)
}

func (s *ResumeRepoIntegrationTestSuite) Test_Activate_MovesTheFlag() {
	ctx := context.Background()

	first := s.newResume("first")
	second := s.newResume("second")
	s.NoError(s.resumeRepo.Save(ctx, first))
	s.NoError(s.resumeRepo.Save(ctx, second))

	s.NoError(s.resumeRepo.Activate(ctx, first.ID))
	active, err := s.resumeRepo.FindActive(ctx)
	s.NoError(err)
	s.Equal(first.ID, active.ID)

	s.NoError(s.resumeRepo.Activate(ctx, second.ID))
	active, err = s.resumeRepo.FindActive(ctx)
	s.NoError(err)
	s.Equal(second.ID, active.ID)

	old, err := s.resumeRepo.FindByID(ctx, first.ID)
	s.NoError(err)
	s.False(old.Active)
}

func (s *ResumeRepoIntegrationTestSuite) Test_Activate_UnknownID() {
	err := s.resumeRepo.Activate(context.Background(), uuid.New())
	s.Error(err)
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ResumeRepoIntegrationTestSuite) Test_Duplicate_RelinksHistory() {
	ctx := context.Background()

	original := s.newResume("dup")
	title := "v1"
	original.Title = &title
	s.NoError(s.resumeRepo.Save(ctx, original))

	w := &work.WorkExperience{
		ID: uuid.New(), Role: "Engineer", Company: "Acme",
		WorkType: work.FullTime, StartDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.NoError(s.workRepo.Save(ctx, w))
	s.NoError(s.resumeRepo.AddWorkExperience(ctx, original.ID, w.ID))

	copied, err := s.resumeRepo.Duplicate(ctx, original.ID)
	s.NoError(err)
	s.NotEqual(original.ID, copied.ID)
	s.Nil(copied.Title)
	s.False(copied.Active)
	s.Equal(original.Email, copied.Email)

	history, err := s.workRepo.ListByResume(ctx, copied.ID)
	s.NoError(err)
	s.Len(history, 1)
	s.Equal(w.ID, history[0].ID)
}

func (s *ResumeRepoIntegrationTestSuite) Test_WorkHistory_OpenEndedLast() {
	ctx := context.Background()

	r := s.newResume("history")
	s.NoError(s.resumeRepo.Save(ctx, r))

	ended := time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	past := &work.WorkExperience{
		ID: uuid.New(), Role: "Junior", Company: "OldCo",
		WorkType: work.FullTime,
		StartDate: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC), EndDate: &ended,
	}
	current := &work.WorkExperience{
		ID: uuid.New(), Role: "Senior", Company: "NowCo",
		WorkType: work.FullTime,
		StartDate: time.Date(2021, 7, 1, 0, 0, 0, 0, time.UTC),
	}
	s.NoError(s.workRepo.Save(ctx, current))
	s.NoError(s.workRepo.Save(ctx, past))
	s.NoError(s.resumeRepo.AddWorkExperience(ctx, r.ID, current.ID))
	s.NoError(s.resumeRepo.AddWorkExperience(ctx, r.ID, past.ID))

	history, err := s.workRepo.ListByResume(ctx, r.ID)
	s.NoError(err)
	s.Len(history, 2)
	s.Equal(past.ID, history[0].ID)
	s.Equal(current.ID, history[1].ID)
	s.Nil(history[1].EndDate)
}

func (s *ResumeRepoIntegrationTestSuite) Test_SkillsForResume_Deduplicated() {
	ctx := context.Background()

	r := s.newResume("skills")
	s.NoError(s.resumeRepo.Save(ctx, r))

	w := &work.WorkExperience{
		ID: uuid.New(), Role: "Dev", Company: "Acme",
		WorkType: work.Contract, StartDate: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.NoError(s.workRepo.Save(ctx, w))
	s.NoError(s.resumeRepo.AddWorkExperience(ctx, r.ID, w.ID))

	d1 := &work.Description{ID: uuid.New(), WorkExperienceID: w.ID, Description: "Built things", Order: 1}
	d2 := &work.Description{ID: uuid.New(), WorkExperienceID: w.ID, Description: "Shipped things", Order: 2}
	s.NoError(s.workRepo.SaveDescription(ctx, d1))
	s.NoError(s.workRepo.SaveDescription(ctx, d2))

	skillRepo := NewPostgresSkillRepo(s.dbPool)
	golang := &work.Skill{ID: uuid.New(), Name: "Go", Degree: 90}
	sql := &work.Skill{ID: uuid.New(), Name: "SQL", Degree: 70}
	s.NoError(skillRepo.Save(ctx, golang))
	s.NoError(skillRepo.Save(ctx, sql))

	// Go is referenced from both bullets; it must come back once.
	s.NoError(s.workRepo.LinkSkill(ctx, d1.ID, golang.ID))
	s.NoError(s.workRepo.LinkSkill(ctx, d2.ID, golang.ID))
	s.NoError(s.workRepo.LinkSkill(ctx, d2.ID, sql.ID))

	skills, err := s.workRepo.SkillsForResume(ctx, r.ID)
	s.NoError(err)
	s.Len(skills, 2)
	s.Equal("Go", skills[0].Name)
	s.Equal("SQL", skills[1].Name)
}

func (s *ResumeRepoIntegrationTestSuite) Test_Referee_SurvivesParentDelete() {
	ctx := context.Background()

	w := &work.WorkExperience{
		ID: uuid.New(), Role: "Manager", Company: "RefCo",
		WorkType: work.FullTime, StartDate: time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.NoError(s.workRepo.Save(ctx, w))

	ref := &referee.Referee{
		ID: uuid.New(), Name: "Jordan", Role: "CTO",
		Attachment: referee.AttachToWork(w.ID),
	}
	s.NoError(s.refereeRepo.Save(ctx, ref))

	s.NoError(s.workRepo.Delete(ctx, w.ID))

	found, err := s.refereeRepo.FindByID(ctx, ref.ID)
	s.NoError(err)
	s.Equal(referee.AttachedToNothing, found.Attachment.Kind)
	s.Equal("CTO", found.DisplayTitle())
}

func (s *ResumeRepoIntegrationTestSuite) Test_RefereesByResume_UnionOfBothPaths() {
	ctx := context.Background()

	r := s.newResume("referees")
	s.NoError(s.resumeRepo.Save(ctx, r))

	linkedWork := &work.WorkExperience{
		ID: uuid.New(), Role: "Lead", Company: "LinkedCo",
		WorkType: work.FullTime, StartDate: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	otherWork := &work.WorkExperience{
		ID: uuid.New(), Role: "Lead", Company: "ElsewhereCo",
		WorkType: work.FullTime, StartDate: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	s.NoError(s.workRepo.Save(ctx, linkedWork))
	s.NoError(s.workRepo.Save(ctx, otherWork))
	s.NoError(s.resumeRepo.AddWorkExperience(ctx, r.ID, linkedWork.ID))

	edu := &education.Education{
		ID: uuid.New(), FieldOfStudy: "CS", Degree: "BSc",
		Institution: "State University",
		StartDate:   time.Date(2014, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	s.NoError(s.educationRepo.Save(ctx, edu))
	s.NoError(s.resumeRepo.AddEducation(ctx, r.ID, edu.ID))

	// Inserted out of name order on purpose.
	viaWork := &referee.Referee{
		ID: uuid.New(), Name: "Nia", Role: "VP",
		Attachment: referee.AttachToWork(linkedWork.ID),
	}
	viaEducation := &referee.Referee{
		ID: uuid.New(), Name: "Ama", Role: "Professor",
		Attachment: referee.AttachToEducation(edu.ID),
	}
	unrelated := &referee.Referee{
		ID: uuid.New(), Name: "Zoe", Role: "VP",
		Attachment: referee.AttachToWork(otherWork.ID),
	}
	detached := &referee.Referee{
		ID: uuid.New(), Name: "Drift", Role: "Mentor",
		Attachment: referee.Detached(),
	}
	for _, ref := range []*referee.Referee{viaWork, viaEducation, unrelated, detached} {
		s.NoError(s.refereeRepo.Save(ctx, ref))
	}

	listed, err := s.refereeRepo.ListByResume(ctx, r.ID)
	s.NoError(err)
	s.Len(listed, 2)
	s.Equal("Ama", listed[0].Name)
	s.Equal("State University", listed[0].Employer)
	s.Equal("Nia", listed[1].Name)
	s.Equal("LinkedCo", listed[1].Employer)

	seen := make(map[uuid.UUID]int)
	for _, ref := range listed {
		seen[ref.ID]++
	}
	for id, n := range seen {
		s.Equalf(1, n, "referee %s listed %d times", id, n)
	}
}

func (s *ResumeRepoIntegrationTestSuite) Test_DistinctClientCount_IgnoresNulls() {
	ctx := context.Background()

	r := s.newResume("clients")
	s.NoError(s.resumeRepo.Save(ctx, r))

	client := "BigCorp"
	withClient := &portfolio.Portfolio{
		ID: uuid.New(), Name: "Site A", Client: &client,
		DateStarted: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		DateEnded:   time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	sameClient := &portfolio.Portfolio{
		ID: uuid.New(), Name: "Site B", Client: &client,
		DateStarted: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		DateEnded:   time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	noClient := &portfolio.Portfolio{
		ID: uuid.New(), Name: "Side project",
		DateStarted: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		DateEnded:   time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, p := range []*portfolio.Portfolio{withClient, sameClient, noClient} {
		s.NoError(s.portfolioRepo.Save(ctx, p))
		s.NoError(s.resumeRepo.AddPortfolio(ctx, r.ID, p.ID))
	}

	count, err := s.portfolioRepo.DistinctClientCount(ctx, r.ID)
	s.NoError(err)
	s.Equal(1, count)

	total, err := s.portfolioRepo.CountByResume(ctx, r.ID)
	s.NoError(err)
	s.Equal(3, total)
}
