// Package resume carries the administrative operations over résumé
// versions: activation, duplication and plain CRUD.
package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumee-hq/resumee-api/adapters/event"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

// DocumentCache is the slice of the published-document cache the admin
// operations need: dropping the cached active document after a change.
type DocumentCache interface {
	InvalidateActiveDocument(ctx context.Context) error
}

type ActivateResumeUseCase struct {
	resumeRepo  resume.Repository
	kafkaClient *event.KafkaProducerClient
	cache       DocumentCache
	logger      logger.Logger
}

func NewActivateResumeUseCase(repo resume.Repository, kClient *event.KafkaProducerClient, cache DocumentCache, log logger.Logger) *ActivateResumeUseCase {
	return &ActivateResumeUseCase{
		resumeRepo:  repo,
		kafkaClient: kClient,
		cache:       cache,
		logger:      log,
	}
}

type ActivateResumeInput struct {
	// SelectedIDs is the admin's selection. The action applies to exactly
	// one résumé; any other selection size is rejected rather than
	// silently ignored the way the old admin did it.
	SelectedIDs []uuid.UUID
}

func (uc *ActivateResumeUseCase) Execute(ctx context.Context, input ActivateResumeInput) error {
	if len(input.SelectedIDs) != 1 {
		return apperror.NewInvalidSelection("activate", len(input.SelectedIDs))
	}
	id := input.SelectedIDs[0]

	if err := uc.resumeRepo.Activate(ctx, id); err != nil {
		return err
	}

	if uc.cache != nil {
		if err := uc.cache.InvalidateActiveDocument(ctx); err != nil {
			uc.logger.Warn("failed to invalidate active document cache", zap.Error(err))
		}
	}

	if uc.kafkaClient != nil {
		go func() {
			err := uc.kafkaClient.PublishResumeEvent(context.Background(), event.ResumeEventPayload{
				EventType: event.ResumeEventTypeActivated,
				ResumeID:  id,
				At:        time.Now().UTC(),
			})
			if err != nil {
				uc.logger.Error("Failed to publish Kafka 'activated' event", err, zap.String("resume_id", id.String()))
			}
		}()
	}

	return nil
}
