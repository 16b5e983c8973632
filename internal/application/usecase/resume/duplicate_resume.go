package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumee-hq/resumee-api/adapters/event"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type DuplicateResumeUseCase struct {
	resumeRepo  resume.Repository
	kafkaClient *event.KafkaProducerClient
	logger      logger.Logger
}

func NewDuplicateResumeUseCase(repo resume.Repository, kClient *event.KafkaProducerClient, log logger.Logger) *DuplicateResumeUseCase {
	return &DuplicateResumeUseCase{
		resumeRepo:  repo,
		kafkaClient: kClient,
		logger:      log,
	}
}

type DuplicateResumeOutput struct {
	Resume *resume.Resume
}

// Execute copies the résumé's scalar fields and re-links its work and
// education history. The copy starts inactive, with no portfolios,
// languages or profile picture.
func (uc *DuplicateResumeUseCase) Execute(ctx context.Context, id uuid.UUID) (*DuplicateResumeOutput, error) {
	copied, err := uc.resumeRepo.Duplicate(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.kafkaClient != nil {
		go func() {
			sourceID := id
			err := uc.kafkaClient.PublishResumeEvent(context.Background(), event.ResumeEventPayload{
				EventType: event.ResumeEventTypeDuplicated,
				ResumeID:  copied.ID,
				SourceID:  &sourceID,
				At:        time.Now().UTC(),
			})
			if err != nil {
				uc.logger.Error("Failed to publish Kafka 'duplicated' event", err, zap.String("resume_id", copied.ID.String()))
			}
		}()
	}

	return &DuplicateResumeOutput{Resume: copied}, nil
}
