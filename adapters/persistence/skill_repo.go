package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumee-hq/resumee-api/internal/domain/work"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

type postgresSkillRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSkillRepo(db *pgxpool.Pool) work.SkillRepository {
	return &postgresSkillRepo{db: db}
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *work.Skill) error {
	query := `INSERT INTO skills (id, name, degree, sort_order) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Degree, s.Order); err != nil {
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *work.Skill) error {
	query := `UPDATE skills SET name = $2, degree = $3, sort_order = $4 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Degree, s.Order)
	if err != nil {
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", id.String())
	}
	return nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id uuid.UUID) (*work.Skill, error) {
	s := &work.Skill{}
	err := r.db.QueryRow(ctx, `SELECT id, name, degree, sort_order FROM skills WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Degree, &s.Order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", id.String())
		}
		return nil, apperror.NewInternal("failed to query skill", err)
	}
	return s, nil
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]work.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, degree, sort_order FROM skills ORDER BY degree DESC`)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
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
