package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumee-hq/resumee-api/internal/domain/education"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

type postgresEducationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresEducationRepo(db *pgxpool.Pool) education.Repository {
	return &postgresEducationRepo{db: db}
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO educations (id, field_of_study, degree, grade, institution, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, e.ID, e.FieldOfStudy, e.Degree, e.Grade, e.Institution, e.StartDate, e.EndDate)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE educations SET
			field_of_study = $2, degree = $3, grade = $4, institution = $5, start_date = $6, end_date = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, e.ID, e.FieldOfStudy, e.Degree, e.Grade, e.Institution, e.StartDate, e.EndDate)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM educations WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	query := `
		SELECT id, field_of_study, degree, grade, institution, start_date, end_date
		FROM educations
		WHERE id = $1
	`
	e := &education.Education{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.FieldOfStudy, &e.Degree, &e.Grade, &e.Institution, &e.StartDate, &e.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", id.String())
		}
		return nil, apperror.NewInternal("failed to query education", err)
	}
	return e, nil
}

func (r *postgresEducationRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*education.Education, error) {
	query := `
		SELECT e.id, e.field_of_study, e.degree, e.grade, e.institution, e.start_date, e.end_date
		FROM educations e
		JOIN resume_education_history re ON re.education_id = e.id
		WHERE re.resume_id = $1
		ORDER BY e.end_date ASC
	`
	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resume education history", err)
	}
	defer rows.Close()

	entries := make([]*education.Education, 0)
	for rows.Next() {
		e := &education.Education{}
		if err := rows.Scan(&e.ID, &e.FieldOfStudy, &e.Degree, &e.Grade, &e.Institution, &e.StartDate, &e.EndDate); err != nil {
			return nil, apperror.NewInternal("failed to scan education row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}
