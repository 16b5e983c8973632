// Package job mirrors external job-board postings a résumé version was
// submitted to. Nothing in the public rendering reads these; they exist
// for the admin's bookkeeping.
package job

import (
	"context"

	"github.com/google/uuid"
)

type Job struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Foreign bool      `json:"foreign"`
	Country string    `json:"country"`
}

type Repository interface {
	Save(ctx context.Context, j *Job) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]Job, error)
	LinkResume(ctx context.Context, jobID, resumeID uuid.UUID) error
	UnlinkResume(ctx context.Context, jobID, resumeID uuid.UUID) error
}
