package portfolio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumee-hq/resumee-api/internal/application/service"
	"github.com/resumee-hq/resumee-api/internal/domain/portfolio"
	"github.com/resumee-hq/resumee-api/pkg/apperror"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type ManagePortfolioUseCase struct {
	portfolioRepo portfolio.Repository
	uploader      service.Uploader
	logger        logger.Logger
}

func NewManagePortfolioUseCase(repo portfolio.Repository, uploader service.Uploader, log logger.Logger) *ManagePortfolioUseCase {
	return &ManagePortfolioUseCase{
		portfolioRepo: repo,
		uploader:      uploader,
		logger:        log,
	}
}

type PortfolioFields struct {
	Name        string
	Company     string
	Client      *string
	Category    string
	DateStarted time.Time
	DateEnded   time.Time
	Description string
	Link        string
}

func (uc *ManagePortfolioUseCase) Create(ctx context.Context, fields PortfolioFields) (*portfolio.Portfolio, error) {
	if fields.Name == "" {
		return nil, apperror.NewInvalidInput("portfolio name is required", nil)
	}
	if fields.DateEnded.Before(fields.DateStarted) {
		return nil, apperror.NewInvalidInput("date_ended is before date_started", nil)
	}
	p := &portfolio.Portfolio{
		ID:          uuid.New(),
		Name:        fields.Name,
		Company:     fields.Company,
		Client:      fields.Client,
		Category:    fields.Category,
		DateStarted: fields.DateStarted,
		DateEnded:   fields.DateEnded,
		Description: fields.Description,
		Link:        fields.Link,
	}
	if err := uc.portfolioRepo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ManagePortfolioUseCase) Update(ctx context.Context, id uuid.UUID, fields PortfolioFields) (*portfolio.Portfolio, error) {
	p, err := uc.portfolioRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if fields.DateEnded.Before(fields.DateStarted) {
		return nil, apperror.NewInvalidInput("date_ended is before date_started", nil)
	}
	p.Name = fields.Name
	p.Company = fields.Company
	p.Client = fields.Client
	p.Category = fields.Category
	p.DateStarted = fields.DateStarted
	p.DateEnded = fields.DateEnded
	p.Description = fields.Description
	p.Link = fields.Link
	if err := uc.portfolioRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ManagePortfolioUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.portfolioRepo.Delete(ctx, id)
}

func (uc *ManagePortfolioUseCase) Get(ctx context.Context, id uuid.UUID) (*portfolio.Portfolio, error) {
	return uc.portfolioRepo.FindByID(ctx, id)
}

// AddImage uploads the picture and appends it to the portfolio's image
// set. Stored as a relative path, absolutized when served.
func (uc *ManagePortfolioUseCase) AddImage(ctx context.Context, portfolioID uuid.UUID, file io.Reader) (*portfolio.Image, error) {
	if _, err := uc.portfolioRepo.FindByID(ctx, portfolioID); err != nil {
		return nil, err
	}

	img := &portfolio.Image{
		ID:          uuid.New(),
		PortfolioID: portfolioID,
	}
	url, err := uc.uploader.Upload(ctx, file, "portfolio", img.ID.String())
	if err != nil {
		return nil, apperror.NewInternal("failed to upload portfolio image", err)
	}
	uc.logger.Info("uploaded portfolio image", zap.String("portfolio_id", portfolioID.String()), zap.String("url", url))

	img.Path = fmt.Sprintf("/portfolio/%s", img.ID.String())
	if err := uc.portfolioRepo.AddImage(ctx, img); err != nil {
		go uc.uploader.Delete(context.Background(), img.ID.String())
		return nil, err
	}
	return img, nil
}

func (uc *ManagePortfolioUseCase) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return uc.portfolioRepo.DeleteImage(ctx, id)
}

func (uc *ManagePortfolioUseCase) Images(ctx context.Context, portfolioID uuid.UUID) ([]portfolio.Image, error) {
	return uc.portfolioRepo.ImagesFor(ctx, portfolioID)
}
