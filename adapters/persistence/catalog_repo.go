package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumee-hq/resumee-api/internal/domain/job"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

type postgresTemplateRepo struct {
	db *pgxpool.Pool
}

func NewPostgresTemplateRepo(db *pgxpool.Pool) resume.TemplateRepository {
	return &postgresTemplateRepo{db: db}
}

func (r *postgresTemplateRepo) Save(ctx context.Context, t *resume.Template) error {
	if _, err := r.db.Exec(ctx, `INSERT INTO templates (id, name) VALUES ($1, $2)`, t.ID, t.Name); err != nil {
		return apperror.NewInternal("failed to save template", err)
	}
	return nil
}

func (r *postgresTemplateRepo) FindByID(ctx context.Context, id uuid.UUID) (*resume.Template, error) {
	t := &resume.Template{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM templates WHERE id = $1`, id).Scan(&t.ID, &t.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("template", id.String())
		}
		return nil, apperror.NewInternal("failed to query template", err)
	}
	return t, nil
}

func (r *postgresTemplateRepo) List(ctx context.Context) ([]resume.Template, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM templates ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query templates", err)
	}
	defer rows.Close()

	templates := make([]resume.Template, 0)
	for rows.Next() {
		var t resume.Template
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, apperror.NewInternal("failed to scan template row", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating template rows", err)
	}
	return templates, nil
}

func (r *postgresTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM templates WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete template", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("template", id.String())
	}
	return nil
}

type postgresLanguageRepo struct {
	db *pgxpool.Pool
}

func NewPostgresLanguageRepo(db *pgxpool.Pool) resume.LanguageRepository {
	return &postgresLanguageRepo{db: db}
}

func (r *postgresLanguageRepo) Save(ctx context.Context, l *resume.Language) error {
	if _, err := r.db.Exec(ctx, `INSERT INTO languages (id, name, level) VALUES ($1, $2, $3)`, l.ID, l.Name, l.Level); err != nil {
		return apperror.NewInternal("failed to save language", err)
	}
	return nil
}

func (r *postgresLanguageRepo) List(ctx context.Context) ([]resume.Language, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, level FROM languages ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query languages", err)
	}
	defer rows.Close()

	languages := make([]resume.Language, 0)
	for rows.Next() {
		var l resume.Language
		if err := rows.Scan(&l.ID, &l.Name, &l.Level); err != nil {
			return nil, apperror.NewInternal("failed to scan language row", err)
		}
		languages = append(languages, l)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating language rows", err)
	}
	return languages, nil
}

func (r *postgresLanguageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete language", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("language", id.String())
	}
	return nil
}

type postgresJobRepo struct {
	db *pgxpool.Pool
}

func NewPostgresJobRepo(db *pgxpool.Pool) job.Repository {
	return &postgresJobRepo{db: db}
}

func (r *postgresJobRepo) Save(ctx context.Context, j *job.Job) error {
	query := `INSERT INTO jobs (id, name, foreign_job, country) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, query, j.ID, j.Name, j.Foreign, j.Country); err != nil {
		return apperror.NewInternal("failed to save job", err)
	}
	return nil
}

func (r *postgresJobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete job", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("job", id.String())
	}
	return nil
}

func (r *postgresJobRepo) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, foreign_job, country FROM jobs ORDER BY name ASC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query jobs", err)
	}
	defer rows.Close()

	jobs := make([]job.Job, 0)
	for rows.Next() {
		var j job.Job
		if err := rows.Scan(&j.ID, &j.Name, &j.Foreign, &j.Country); err != nil {
			return nil, apperror.NewInternal("failed to scan job row", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating job rows", err)
	}
	return jobs, nil
}

func (r *postgresJobRepo) LinkResume(ctx context.Context, jobID, resumeID uuid.UUID) error {
	builder := psql.Insert("job_resumes").
		Columns("job_id", "resume_id").
		Values(jobID, resumeID).
		Suffix("ON CONFLICT DO NOTHING")
	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build link job query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to link job to resume", err)
	}
	return nil
}

func (r *postgresJobRepo) UnlinkResume(ctx context.Context, jobID, resumeID uuid.UUID) error {
	builder := psql.Delete("job_resumes").
		Where(sq.Eq{"job_id": jobID, "resume_id": resumeID})
	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build unlink job query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to unlink job from resume", err)
	}
	return nil
}
