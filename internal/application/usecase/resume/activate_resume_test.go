package resume

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type fakeResumeRepo struct {
	resume.Repository
	activated   []uuid.UUID
	activateErr error
	duplicated  *resume.Resume
}

func (f *fakeResumeRepo) Activate(ctx context.Context, id uuid.UUID) error {
	if f.activateErr != nil {
		return f.activateErr
	}
	f.activated = append(f.activated, id)
	return nil
}

type fakeCache struct {
	invalidations int
}

func (f *fakeCache) InvalidateActiveDocument(ctx context.Context) error {
	f.invalidations++
	return nil
}

func Test_Activate_RequiresExactlyOneSelection(t *testing.T) {
	repo := &fakeResumeRepo{}
	uc := NewActivateResumeUseCase(repo, nil, nil, logger.NewNop())

	err := uc.Execute(context.Background(), ActivateResumeInput{SelectedIDs: nil})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidSelection)

	err = uc.Execute(context.Background(), ActivateResumeInput{SelectedIDs: []uuid.UUID{uuid.New(), uuid.New()}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrInvalidSelection)

	assert.Empty(t, repo.activated)
}

func Test_Activate_SingleSelection(t *testing.T) {
	repo := &fakeResumeRepo{}
	cache := &fakeCache{}
	uc := NewActivateResumeUseCase(repo, nil, cache, logger.NewNop())

	id := uuid.New()
	err := uc.Execute(context.Background(), ActivateResumeInput{SelectedIDs: []uuid.UUID{id}})
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{id}, repo.activated)
	assert.Equal(t, 1, cache.invalidations)
}

func Test_Activate_UnknownResume(t *testing.T) {
	repo := &fakeResumeRepo{activateErr: apperror.NewNotFound("resume", "x")}
	cache := &fakeCache{}
	uc := NewActivateResumeUseCase(repo, nil, cache, logger.NewNop())

	err := uc.Execute(context.Background(), ActivateResumeInput{SelectedIDs: []uuid.UUID{uuid.New()}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	// The cache stays intact when nothing changed.
	assert.Zero(t, cache.invalidations)
}
