// Package referee holds reference-check contacts. A referee hangs off a
// work experience or an education entry through a weak link: deleting
// the parent clears the link instead of cascading, so a referee can end
// up attached to nothing and display code has to cope with that.
package referee

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type AttachmentKind int

const (
	AttachedToNothing AttachmentKind = iota
	AttachedToWork
	AttachedToEducation
)

// Attachment is the tagged parent reference. Modelling it as a variant
// instead of two nullable foreign keys forces callers through the
// detached case explicitly.
type Attachment struct {
	Kind     AttachmentKind
	ParentID uuid.UUID
}

func AttachToWork(id uuid.UUID) Attachment {
	return Attachment{Kind: AttachedToWork, ParentID: id}
}

func AttachToEducation(id uuid.UUID) Attachment {
	return Attachment{Kind: AttachedToEducation, ParentID: id}
}

func Detached() Attachment {
	return Attachment{Kind: AttachedToNothing}
}

type Referee struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Role       string     `json:"role"`
	Email      string     `json:"email"`
	Contact    string     `json:"contact"`
	Attachment Attachment `json:"-"`
	// Employer is the parent's company or institution name, resolved by
	// the store when listing. Empty for detached referees.
	Employer string `json:"employer"`
}

// DisplayTitle degrades to the bare role when the referee has lost its
// parent, instead of blowing up on a missing employer.
func (r *Referee) DisplayTitle() string {
	if r.Attachment.Kind == AttachedToNothing || r.Employer == "" {
		return r.Role
	}
	return fmt.Sprintf("%s at %s", r.Role, r.Employer)
}

type Repository interface {
	Save(ctx context.Context, r *Referee) error
	Update(ctx context.Context, r *Referee) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Referee, error)
	// ListByResume unions referees attached to any of the résumé's work
	// experiences or education entries, ordered by name ascending. A
	// referee matching through both links appears once.
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*Referee, error)
}
