package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/resumee-hq/resumee-api/internal/domain/referee"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
)

type postgresRefereeRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRefereeRepo(db *pgxpool.Pool) referee.Repository {
	return &postgresRefereeRepo{db: db}
}

// attachmentColumns maps the tagged Attachment onto the two nullable
// foreign keys the table carries.
func attachmentColumns(a referee.Attachment) (workID, educationID *uuid.UUID) {
	switch a.Kind {
	case referee.AttachedToWork:
		id := a.ParentID
		return &id, nil
	case referee.AttachedToEducation:
		id := a.ParentID
		return nil, &id
	default:
		return nil, nil
	}
}

func attachmentFromColumns(workID, educationID *uuid.UUID) referee.Attachment {
	switch {
	case workID != nil:
		return referee.AttachToWork(*workID)
	case educationID != nil:
		return referee.AttachToEducation(*educationID)
	default:
		return referee.Detached()
	}
}

func (r *postgresRefereeRepo) Save(ctx context.Context, ref *referee.Referee) error {
	workID, educationID := attachmentColumns(ref.Attachment)
	query := `
		INSERT INTO referees (id, name, role, email, contact, work_experience_id, education_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, ref.ID, ref.Name, ref.Role, ref.Email, ref.Contact, workID, educationID)
	if err != nil {
		return apperror.NewInternal("failed to save referee", err)
	}
	return nil
}

func (r *postgresRefereeRepo) Update(ctx context.Context, ref *referee.Referee) error {
	workID, educationID := attachmentColumns(ref.Attachment)
	query := `
		UPDATE referees SET
			name = $2, role = $3, email = $4, contact = $5, work_experience_id = $6, education_id = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, ref.ID, ref.Name, ref.Role, ref.Email, ref.Contact, workID, educationID)
	if err != nil {
		return apperror.NewInternal("failed to update referee", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("referee", ref.ID.String())
	}
	return nil
}

func (r *postgresRefereeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM referees WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete referee", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("referee", id.String())
	}
	return nil
}

func (r *postgresRefereeRepo) FindByID(ctx context.Context, id uuid.UUID) (*referee.Referee, error) {
	query := `
		SELECT r.id, r.name, r.role, r.email, r.contact, r.work_experience_id, r.education_id,
			COALESCE(w.company, e.institution, '')
		FROM referees r
		LEFT JOIN work_experiences w ON w.id = r.work_experience_id
		LEFT JOIN educations e ON e.id = r.education_id
		WHERE r.id = $1
	`
	ref, err := scanReferee(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("referee", id.String())
		}
		return nil, apperror.NewInternal("failed to query referee", err)
	}
	return ref, nil
}

func scanReferee(row pgx.Row) (*referee.Referee, error) {
	ref := &referee.Referee{}
	var workID, educationID *uuid.UUID
	err := row.Scan(&ref.ID, &ref.Name, &ref.Role, &ref.Email, &ref.Contact, &workID, &educationID, &ref.Employer)
	if err != nil {
		return nil, err
	}
	ref.Attachment = attachmentFromColumns(workID, educationID)
	return ref, nil
}

// ListByResume unions the two attachment paths with DISTINCT so a
// referee reachable through both a work entry and an education entry
// still lists once.
func (r *postgresRefereeRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*referee.Referee, error) {
	query := `
		SELECT DISTINCT r.id, r.name, r.role, r.email, r.contact, r.work_experience_id, r.education_id,
			COALESCE(w.company, e.institution, '')
		FROM referees r
		LEFT JOIN work_experiences w ON w.id = r.work_experience_id
		LEFT JOIN educations e ON e.id = r.education_id
		LEFT JOIN resume_work_history rw ON rw.work_experience_id = r.work_experience_id
		LEFT JOIN resume_education_history re ON re.education_id = r.education_id
		WHERE rw.resume_id = $1 OR re.resume_id = $1
		ORDER BY r.name ASC
	`
	rows, err := r.db.Query(ctx, query, resumeID)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resume referees", err)
	}
	defer rows.Close()

	referees := make([]*referee.Referee, 0)
	for rows.Next() {
		ref, err := scanReferee(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan referee row", err)
		}
		referees = append(referees, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating referee rows", err)
	}
	return referees, nil
}
