package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const resumeColumns = `id, title, first_name, middle_name, surname, contact, roles, email, website,
	state, country, github_link, linkedin_link, profile_pic_path, objective, template_id, active,
	created_at, updated_at`

type postgresResumeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresResumeRepo(db *pgxpool.Pool, log logger.Logger) resume.Repository {
	return &postgresResumeRepo{db: db, logger: log}
}

func scanResume(row pgx.Row) (*resume.Resume, error) {
	r := &resume.Resume{}
	err := row.Scan(
		&r.ID, &r.Title, &r.FirstName, &r.MiddleName, &r.Surname, &r.Contact, &r.Roles,
		&r.Email, &r.Website, &r.State, &r.Country, &r.GithubLink, &r.LinkedinLink,
		&r.ProfilePicPath, &r.Objective, &r.TemplateID, &r.Active, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (r *postgresResumeRepo) Save(ctx context.Context, res *resume.Resume) error {
	query := `
		INSERT INTO resumes (` + resumeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`
	_, err := r.db.Exec(ctx, query,
		res.ID, res.Title, res.FirstName, res.MiddleName, res.Surname, res.Contact, res.Roles,
		res.Email, res.Website, res.State, res.Country, res.GithubLink, res.LinkedinLink,
		res.ProfilePicPath, res.Objective, res.TemplateID, res.Active, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save resume", err)
	}
	return nil
}

func (r *postgresResumeRepo) Update(ctx context.Context, res *resume.Resume) error {
	query := `
		UPDATE resumes SET
			title = $2, first_name = $3, middle_name = $4, surname = $5, contact = $6, roles = $7,
			email = $8, website = $9, state = $10, country = $11, github_link = $12,
			linkedin_link = $13, profile_pic_path = $14, objective = $15, template_id = $16,
			updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		res.ID, res.Title, res.FirstName, res.MiddleName, res.Surname, res.Contact, res.Roles,
		res.Email, res.Website, res.State, res.Country, res.GithubLink, res.LinkedinLink,
		res.ProfilePicPath, res.Objective, res.TemplateID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", res.ID.String())
	}
	return nil
}

func (r *postgresResumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", id.String())
	}
	return nil
}

func (r *postgresResumeRepo) FindByID(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	res, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("resume", id.String())
		}
		return nil, apperror.NewInternal("failed to scan resume row", err)
	}
	return res, nil
}

func (r *postgresResumeRepo) FindActive(ctx context.Context) (*resume.Resume, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE active = true LIMIT 1`)
	res, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("resume", "active")
		}
		return nil, apperror.NewInternal("failed to scan resume row", err)
	}
	return res, nil
}

func (r *postgresResumeRepo) List(ctx context.Context, limit, offset int) ([]*resume.Resume, error) {
	builder := psql.Select(resumeColumns).
		From("resumes").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list resumes query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resumes", err)
	}
	defer rows.Close()

	resumes := make([]*resume.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan resume row", err)
		}
		resumes = append(resumes, res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating resume rows", err)
	}
	return resumes, nil
}

// Activate flips the target on and everything else off in one
// transaction, which is what keeps "at most one active" true even under
// two racing activations.
func (r *postgresResumeRepo) Activate(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin activate transaction", err)
	}
	defer tx.Rollback(ctx)

	cmdTag, err := tx.Exec(ctx, `UPDATE resumes SET active = true, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to activate resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", id.String())
	}

	if _, err := tx.Exec(ctx, `UPDATE resumes SET active = false WHERE id <> $1 AND active = true`, id); err != nil {
		return apperror.NewInternal("failed to deactivate other resumes", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit activate transaction", err)
	}
	return nil
}

// Duplicate copies the scalar fields the old admin action copied and
// re-links (not deep-copies) the work and education history. Title,
// contact details beyond email, portfolios, languages, the profile
// picture and the active flag all start fresh.
func (r *postgresResumeRepo) Duplicate(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin duplicate transaction", err)
	}
	defer tx.Rollback(ctx)

	newID := uuid.New()
	row := tx.QueryRow(ctx, `
		INSERT INTO resumes (id, first_name, middle_name, surname, email, website, github_link,
			linkedin_link, objective, template_id)
		SELECT $1, first_name, middle_name, surname, email, website, github_link,
			linkedin_link, objective, template_id
		FROM resumes WHERE id = $2
		RETURNING `+resumeColumns, newID, id)

	copied, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("resume", id.String())
		}
		return nil, apperror.NewInternal("failed to insert duplicated resume", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO resume_work_history (resume_id, work_experience_id)
		SELECT $1, work_experience_id FROM resume_work_history WHERE resume_id = $2
	`, newID, id); err != nil {
		return nil, apperror.NewInternal("failed to copy work history links", err)
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO resume_education_history (resume_id, education_id)
		SELECT $1, education_id FROM resume_education_history WHERE resume_id = $2
	`, newID, id); err != nil {
		return nil, apperror.NewInternal("failed to copy education history links", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit duplicate transaction", err)
	}
	return copied, nil
}

func (r *postgresResumeRepo) link(ctx context.Context, table, column string, resumeID, targetID uuid.UUID) error {
	builder := psql.Insert(table).
		Columns("resume_id", column).
		Values(resumeID, targetID).
		Suffix("ON CONFLICT DO NOTHING")
	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build link query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to link "+column, err)
	}
	return nil
}

func (r *postgresResumeRepo) unlink(ctx context.Context, table, column string, resumeID, targetID uuid.UUID) error {
	builder := psql.Delete(table).
		Where(sq.Eq{"resume_id": resumeID, column: targetID})
	sql, args, err := builder.ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build unlink query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to unlink "+column, err)
	}
	return nil
}

func (r *postgresResumeRepo) AddWorkExperience(ctx context.Context, resumeID, workID uuid.UUID) error {
	return r.link(ctx, "resume_work_history", "work_experience_id", resumeID, workID)
}

func (r *postgresResumeRepo) RemoveWorkExperience(ctx context.Context, resumeID, workID uuid.UUID) error {
	return r.unlink(ctx, "resume_work_history", "work_experience_id", resumeID, workID)
}

func (r *postgresResumeRepo) AddEducation(ctx context.Context, resumeID, educationID uuid.UUID) error {
	return r.link(ctx, "resume_education_history", "education_id", resumeID, educationID)
}

func (r *postgresResumeRepo) RemoveEducation(ctx context.Context, resumeID, educationID uuid.UUID) error {
	return r.unlink(ctx, "resume_education_history", "education_id", resumeID, educationID)
}

func (r *postgresResumeRepo) AddPortfolio(ctx context.Context, resumeID, portfolioID uuid.UUID) error {
	return r.link(ctx, "resume_portfolios", "portfolio_id", resumeID, portfolioID)
}

func (r *postgresResumeRepo) RemovePortfolio(ctx context.Context, resumeID, portfolioID uuid.UUID) error {
	return r.unlink(ctx, "resume_portfolios", "portfolio_id", resumeID, portfolioID)
}

func (r *postgresResumeRepo) AddLanguage(ctx context.Context, resumeID, languageID uuid.UUID) error {
	return r.link(ctx, "resume_languages", "language_id", resumeID, languageID)
}

func (r *postgresResumeRepo) RemoveLanguage(ctx context.Context, resumeID, languageID uuid.UUID) error {
	return r.unlink(ctx, "resume_languages", "language_id", resumeID, languageID)
}

func (r *postgresResumeRepo) LanguagesFor(ctx context.Context, resumeID uuid.UUID) ([]resume.Language, error) {
	query := `
		SELECT l.id, l.name, l.level
		FROM languages l
		JOIN resume_languages rl ON rl.language_id = l.id
		WHERE rl.resume_id = $1
		ORDER BY l.name ASC
	`
	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resume languages", err)
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
