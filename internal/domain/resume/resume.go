// Package resume holds the résumé aggregate: the Resume record itself,
// its rendering Template and the spoken Language entries attached to it.
package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// LanguageLevel is a spoken language proficiency.
type LanguageLevel string

const (
	LevelConversational LanguageLevel = "Conversational"
)

// Resume is one version of the CV. Any number of versions can exist but
// at most one is active, i.e. publicly served.
type Resume struct {
	ID             uuid.UUID  `json:"id"`
	Title          *string    `json:"title"`
	FirstName      string     `json:"first_name"`
	MiddleName     string     `json:"middle_name"`
	Surname        string     `json:"surname"`
	Contact        string     `json:"contact"`
	Roles          string     `json:"roles"`
	Email          string     `json:"email"`
	Website        string     `json:"website"`
	State          string     `json:"state"`
	Country        string     `json:"country"`
	GithubLink     string     `json:"github_link"`
	LinkedinLink   string     `json:"linkedin_link"`
	ProfilePicPath *string    `json:"-"`
	Objective      string     `json:"objective"`
	TemplateID     *uuid.UUID `json:"template_id"`
	Active         bool       `json:"active"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Template names an HTML template the site renders a résumé with.
type Template struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Language struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}

type Repository interface {
	Save(ctx context.Context, r *Resume) error
	Update(ctx context.Context, r *Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Resume, error)
	// FindActive returns the single active résumé, or a not-found error
	// when none has been activated yet.
	FindActive(ctx context.Context) (*Resume, error)
	List(ctx context.Context, limit, offset int) ([]*Resume, error)

	// Activate flips the target active and every other résumé inactive
	// inside one transaction, so two concurrent calls cannot leave two
	// active rows behind.
	Activate(ctx context.Context, id uuid.UUID) error
	// Duplicate inserts a copy of the résumé's scalar fields and re-links
	// the same work and education history rows. Portfolios, languages,
	// the profile picture and the active flag are not carried over.
	Duplicate(ctx context.Context, id uuid.UUID) (*Resume, error)

	AddWorkExperience(ctx context.Context, resumeID, workID uuid.UUID) error
	RemoveWorkExperience(ctx context.Context, resumeID, workID uuid.UUID) error
	AddEducation(ctx context.Context, resumeID, educationID uuid.UUID) error
	RemoveEducation(ctx context.Context, resumeID, educationID uuid.UUID) error
	AddPortfolio(ctx context.Context, resumeID, portfolioID uuid.UUID) error
	RemovePortfolio(ctx context.Context, resumeID, portfolioID uuid.UUID) error
	AddLanguage(ctx context.Context, resumeID, languageID uuid.UUID) error
	RemoveLanguage(ctx context.Context, resumeID, languageID uuid.UUID) error
	LanguagesFor(ctx context.Context, resumeID uuid.UUID) ([]Language, error)
}

type TemplateRepository interface {
	Save(ctx context.Context, t *Template) error
	FindByID(ctx context.Context, id uuid.UUID) (*Template, error)
	List(ctx context.Context) ([]Template, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type LanguageRepository interface {
	Save(ctx context.Context, l *Language) error
	List(ctx context.Context) ([]Language, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
