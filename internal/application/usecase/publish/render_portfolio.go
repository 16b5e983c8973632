package publish

import (
	"context"

	"github.com/google/uuid"

	"github.com/resumee-hq/resumee-api/internal/domain/portfolio"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type RenderPortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	baseURL       string
	pick          Picker
	logger        logger.Logger
}

func NewRenderPortfolioUseCase(repo portfolio.Repository, baseURL string, pick Picker, log logger.Logger) *RenderPortfolioUseCase {
	return &RenderPortfolioUseCase{
		portfolioRepo: repo,
		baseURL:       baseURL,
		pick:          pick,
		logger:        log,
	}
}

// Execute renders one portfolio project for the detail page.
func (uc *RenderPortfolioUseCase) Execute(ctx context.Context, id uuid.UUID) (*PortfolioDocument, error) {
	p, err := uc.portfolioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	images, err := uc.portfolioRepo.ImagesFor(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	doc := toPortfolioDocument(p, imageURLs(uc.baseURL, images), uc.pick)
	return &doc, nil
}
