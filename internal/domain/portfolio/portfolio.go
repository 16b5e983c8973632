package portfolio

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Portfolio struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Company     string    `json:"company"`
	Client      *string   `json:"client"`
	Category    string    `json:"category"`
	DateStarted time.Time `json:"date_started"`
	DateEnded   time.Time `json:"date_ended"`
	Description string    `json:"description"`
	Link        string    `json:"link"`
}

// Image is one showcase picture of a portfolio project. Path is the
// stored relative path; it is absolutized against the configured base
// URL when served.
type Image struct {
	ID          uuid.UUID `json:"id"`
	PortfolioID uuid.UUID `json:"portfolio_id"`
	Path        string    `json:"path"`
}

type Repository interface {
	Save(ctx context.Context, p *Portfolio) error
	Update(ctx context.Context, p *Portfolio) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Portfolio, error)
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*Portfolio, error)
	CountByResume(ctx context.Context, resumeID uuid.UUID) (int, error)
	// DistinctClientCount counts distinct non-null client names across
	// the résumé's portfolios.
	DistinctClientCount(ctx context.Context, resumeID uuid.UUID) (int, error)

	AddImage(ctx context.Context, img *Image) error
	DeleteImage(ctx context.Context, id uuid.UUID) error
	// ImagesFor returns a portfolio's images in insertion order.
	ImagesFor(ctx context.Context, portfolioID uuid.UUID) ([]Image, error)
}
