package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumee-hq/resumee-api/internal/domain/work"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

type postgresWorkRepo struct {
	db *pgxpool.Pool
}

func NewPostgresWorkRepo(db *pgxpool.Pool) work.Repository {
	return &postgresWorkRepo{db: db}
}

func (r *postgresWorkRepo) Save(ctx context.Context, w *work.WorkExperience) error {
	query := `
		INSERT INTO work_experiences (id, role, company, company_location, work_type, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, w.ID, w.Role, w.Company, w.CompanyLocation, w.WorkType, w.StartDate, w.EndDate)
	if err != nil {
		return apperror.NewInternal("failed to save work experience", err)
	}
	return nil
}

func (r *postgresWorkRepo) Update(ctx context.Context, w *work.WorkExperience) error {
	query := `
		UPDATE work_experiences SET
			role = $2, company = $3, company_location = $4, work_type = $5, start_date = $6, end_date = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, w.ID, w.Role, w.Company, w.CompanyLocation, w.WorkType, w.StartDate, w.EndDate)
	if err != nil {
		return apperror.NewInternal("failed to update work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", w.ID.String())
	}
	return nil
}

func (r *postgresWorkRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM work_experiences WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete work experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work experience", id.String())
	}
	return nil
}

func (r *postgresWorkRepo) FindByID(ctx context.Context, id uuid.UUID) (*work.WorkExperience, error) {
	query := `
		SELECT id, role, company, company_location, work_type, start_date, end_date
		FROM work_experiences
		WHERE id = $1
	`
	w := &work.WorkExperience{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&w.ID, &w.Role, &w.Company, &w.CompanyLocation, &w.WorkType, &w.StartDate, &w.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("work experience", id.String())
		}
		return nil, apperror.NewInternal("failed to query work experience", err)
	}
	return w, nil
}

// ListByResume orders by end_date ascending; NULL end dates sort last
// under Postgres' default ASC ordering, which puts current positions at
// the bottom of the history.
func (r *postgresWorkRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*work.WorkExperience, error) {
	query := `
		SELECT w.id, w.role, w.company, w.company_location, w.work_type, w.start_date, w.end_date
		FROM work_experiences w
		JOIN resume_work_history rw ON rw.work_experience_id = w.id
		WHERE rw.resume_id = $1
		ORDER BY w.end_date ASC
	`
	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resume work history", err)
	}
	defer rows.Close()

	experiences := make([]*work.WorkExperience, 0)
	for rows.Next() {
		w := &work.WorkExperience{}
		if err := rows.Scan(&w.ID, &w.Role, &w.Company, &w.CompanyLocation, &w.WorkType, &w.StartDate, &w.EndDate); err != nil {
			return nil, apperror.NewInternal("failed to scan work experience row", err)
		}
		experiences = append(experiences, w)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work experience rows", err)
	}
	return experiences, nil
}

func (r *postgresWorkRepo) EarliestStartDate(ctx context.Context, resumeID uuid.UUID) (*time.Time, error) {
	query := `
		SELECT MIN(w.start_date)
		FROM work_experiences w
		JOIN resume_work_history rw ON rw.work_experience_id = w.id
		WHERE rw.resume_id = $1
	`
	var earliest *time.Time
	if err := r.db.QueryRow(ctx, query, resumeID).Scan(&earliest); err != nil {
		return nil, apperror.NewInternal("failed to query earliest start date", err)
	}
	return earliest, nil
}

func (r *postgresWorkRepo) SaveDescription(ctx context.Context, d *work.Description) error {
	query := `
		INSERT INTO work_experience_descriptions (id, work_experience_id, description, sort_order)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET description = $3, sort_order = $4
	`
	_, err := r.db.Exec(ctx, query, d.ID, d.WorkExperienceID, d.Description, d.Order)
	if err != nil {
		return apperror.NewInternal("failed to save work description", err)
	}
	return nil
}

func (r *postgresWorkRepo) DeleteDescription(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM work_experience_descriptions WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete work description", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("work description", id.String())
	}
	return nil
}

func (r *postgresWorkRepo) DescriptionsFor(ctx context.Context, workID uuid.UUID) ([]work.Description, error) {
	query := `
		SELECT id, work_experience_id, description, sort_order
		FROM work_experience_descriptions
		WHERE work_experience_id = $1
		ORDER BY sort_order ASC
	`
	rows, err := r.db.Query(ctx, query, workID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work descriptions", err)
	}
	defer rows.Close()

	descriptions := make([]work.Description, 0)
	for rows.Next() {
		var d work.Description
		if err := rows.Scan(&d.ID, &d.WorkExperienceID, &d.Description, &d.Order); err != nil {
			return nil, apperror.NewInternal("failed to scan work description row", err)
		}
		descriptions = append(descriptions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating work description rows", err)
	}
	return descriptions, nil
}

func (r *postgresWorkRepo) LinkSkill(ctx context.Context, descriptionID, skillID uuid.UUID) error {
	builder := psql.Insert("description_skills").
		Columns("description_id", "skill_id").
		Values(descriptionID, skillID).
		Suffix("ON CONFLICT DO NOTHING")
	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build link skill query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to link skill", err)
	}
	return nil
}

func (r *postgresWorkRepo) UnlinkSkill(ctx context.Context, descriptionID, skillID uuid.UUID) error {
	builder := psql.Delete("description_skills").
		Where(sq.Eq{"description_id": descriptionID, "skill_id": skillID})
	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build unlink skill query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to unlink skill", err)
	}
	return nil
}

func (r *postgresWorkRepo) scanSkills(rows pgx.Rows) ([]work.Skill, error) {
	defer rows.Close()
	skills := make([]work.Skill, 0)
	for rows.Next() {
		var s work.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Degree, &s.Order); err != nil {
			return nil, apperror.NewInternal("failed to scan skill row", err)
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

// SkillsFor deduplicates at the query level: a skill linked from three
// bullets of the same position still comes back once.
func (r *postgresWorkRepo) SkillsFor(ctx context.Context, workID uuid.UUID) ([]work.Skill, error) {
	query := `
		SELECT DISTINCT s.id, s.name, s.degree, s.sort_order
		FROM skills s
		JOIN description_skills ds ON ds.skill_id = s.id
		JOIN work_experience_descriptions d ON d.id = ds.description_id
		WHERE d.work_experience_id = $1
		ORDER BY s.degree DESC
	`
	rows, err := r.db.Query(ctx, query, workID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query work skills", err)
	}
	return r.scanSkills(rows)
}

func (r *postgresWorkRepo) SkillsForResume(ctx context.Context, resumeID uuid.UUID) ([]work.Skill, error) {
	query := `
		SELECT DISTINCT s.id, s.name, s.degree, s.sort_order
		FROM skills s
		JOIN description_skills ds ON ds.skill_id = s.id
		JOIN work_experience_descriptions d ON d.id = ds.description_id
		JOIN resume_work_history rw ON rw.work_experience_id = d.work_experience_id
		WHERE rw.resume_id = $1
		ORDER BY s.degree DESC
	`
	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resume skills", err)
	}
	return r.scanSkills(rows)
}
