package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumee-hq/resumee-api/internal/domain/portfolio"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

type postgresPortfolioRepo struct {
	db *pgxpool.Pool
}

func NewPostgresPortfolioRepo(db *pgxpool.Pool) portfolio.Repository {
	return &postgresPortfolioRepo{db: db}
}

func (r *postgresPortfolioRepo) Save(ctx context.Context, p *portfolio.Portfolio) error {
	query := `
		INSERT INTO portfolios (id, name, company, client, category, date_started, date_ended, description, link)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Company, p.Client, p.Category, p.DateStarted, p.DateEnded, p.Description, p.Link,
	)
	if err != nil {
		return apperror.NewInternal("failed to save portfolio", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) Update(ctx context.Context, p *portfolio.Portfolio) error {
	query := `
		UPDATE portfolios SET
			name = $2, company = $3, client = $4, category = $5, date_started = $6,
			date_ended = $7, description = $8, link = $9
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Name, p.Company, p.Client, p.Category, p.DateStarted, p.DateEnded, p.Description, p.Link,
	)
	if err != nil {
		return apperror.NewInternal("failed to update portfolio", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio", p.ID.String())
	}
	return nil
}

func (r *postgresPortfolioRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete portfolio", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio", id.String())
	}
	return nil
}

func (r *postgresPortfolioRepo) FindByID(ctx context.Context, id uuid.UUID) (*portfolio.Portfolio, error) {
	query := `
		SELECT id, name, company, client, category, date_started, date_ended, description, link
		FROM portfolios
		WHERE id = $1
	`
	p := &portfolio.Portfolio{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Company, &p.Client, &p.Category, &p.DateStarted, &p.DateEnded, &p.Description, &p.Link,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("portfolio", id.String())
		}
		return nil, apperror.NewInternal("failed to query portfolio", err)
	}
	return p, nil
}

func (r *postgresPortfolioRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*portfolio.Portfolio, error) {
	query := `
		SELECT p.id, p.name, p.company, p.client, p.category, p.date_started, p.date_ended, p.description, p.link
		FROM portfolios p
		JOIN resume_portfolios rp ON rp.portfolio_id = p.id
		WHERE rp.resume_id = $1
		ORDER BY p.date_ended DESC
	`
	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resume portfolios", err)
	}
	defer rows.Close()

	portfolios := make([]*portfolio.Portfolio, 0)
	for rows.Next() {
		p := &portfolio.Portfolio{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Company, &p.Client, &p.Category, &p.DateStarted, &p.DateEnded, &p.Description, &p.Link); err != nil {
			return nil, apperror.NewInternal("failed to scan portfolio row", err)
		}
		portfolios = append(portfolios, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating portfolio rows", err)
	}
	return portfolios, nil
}

func (r *postgresPortfolioRepo) CountByResume(ctx context.Context, resumeID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM resume_portfolios WHERE resume_id = $1`, resumeID,
	).Scan(&count)
	if err != nil {
		return 0, apperror.NewInternal("failed to count resume portfolios", err)
	}
	return count, nil
}

func (r *postgresPortfolioRepo) DistinctClientCount(ctx context.Context, resumeID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(DISTINCT p.client)
		FROM portfolios p
		JOIN resume_portfolios rp ON rp.portfolio_id = p.id
		WHERE rp.resume_id = $1 AND p.client IS NOT NULL
	`
	var count int
	if err := r.db.QueryRow(ctx, query, resumeID).Scan(&count); err != nil {
		return 0, apperror.NewInternal("failed to count distinct clients", err)
	}
	return count, nil
}

func (r *postgresPortfolioRepo) AddImage(ctx context.Context, img *portfolio.Image) error {
	query := `INSERT INTO portfolio_images (id, portfolio_id, path) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, query, img.ID, img.PortfolioID, img.Path); err != nil {
		return apperror.NewInternal("failed to save portfolio image", err)
	}
	return nil
}

func (r *postgresPortfolioRepo) DeleteImage(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM portfolio_images WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete portfolio image", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("portfolio image", id.String())
	}
	return nil
}

func (r *postgresPortfolioRepo) ImagesFor(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Image, error) {
	query := `
		SELECT id, portfolio_id, path
		FROM portfolio_images
		WHERE portfolio_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, portfolioID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query portfolio images", err)
	}
	defer rows.Close()

	images := make([]portfolio.Image, 0)
	for rows.Next() {
		var img portfolio.Image
		if err := rows.Scan(&img.ID, &img.PortfolioID, &img.Path); err != nil {
			return nil, apperror.NewInternal("failed to scan portfolio image row", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating portfolio image rows", err)
	}
	return images, nil
}
