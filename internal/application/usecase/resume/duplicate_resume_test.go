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

func (f *fakeResumeRepo) Duplicate(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	if f.duplicated == nil {
		return nil, apperror.NewNotFound("resume", id.String())
	}
	return f.duplicated, nil
}

func Test_Duplicate_ReturnsTheCopy(t *testing.T) {
	copied := &resume.Resume{ID: uuid.New(), FirstName: "Ada", Surname: "Lovelace"}
	repo := &fakeResumeRepo{duplicated: copied}
	uc := NewDuplicateResumeUseCase(repo, nil, logger.NewNop())

	output, err := uc.Execute(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, copied.ID, output.Resume.ID)
	assert.False(t, output.Resume.Active)
}

func Test_Duplicate_UnknownResume(t *testing.T) {
	repo := &fakeResumeRepo{}
	uc := NewDuplicateResumeUseCase(repo, nil, logger.NewNop())

	_, err := uc.Execute(context.Background(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
