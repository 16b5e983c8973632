package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resumee-hq/resumee-api/adapters/event"
	"github.com/resumee-hq/resumee-api/internal/application/usecase/publish"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

// SiteHandler serves the public pages: the landing page, the CV page and
// the portfolio detail page, plus their JSON equivalents.
type SiteHandler struct {
	renderResumeUseCase    *publish.RenderResumeUseCase
	renderPortfolioUseCase *publish.RenderPortfolioUseCase
	kafkaClient            *event.KafkaProducerClient
	logger                 logger.Logger
}

func NewSiteHandler(
	renderUC *publish.RenderResumeUseCase,
	portfolioUC *publish.RenderPortfolioUseCase,
	kClient *event.KafkaProducerClient,
	log logger.Logger,
) *SiteHandler {
	return &SiteHandler{
		renderResumeUseCase:    renderUC,
		renderPortfolioUseCase: portfolioUC,
		kafkaClient:            kClient,
		logger:                 log,
	}
}

func (h *SiteHandler) recordView(page string, resumeID *uuid.UUID) {
	if h.kafkaClient == nil {
		return
	}
	go func() {
		err := h.kafkaClient.PublishViewEvent(context.Background(), event.ViewEventPayload{
			Page:     page,
			ResumeID: resumeID,
			At:       time.Now().UTC(),
		})
		if err != nil {
			h.logger.Warn("Failed to publish view event", zap.String("page", page), zap.Error(err))
		}
	}()
}

// Index renders the landing page from the active résumé.
func (h *SiteHandler) Index(c *gin.Context) {
	doc, err := h.renderResumeUseCase.ExecuteActive(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.recordView("home", &doc.ID)
	c.HTML(http.StatusOK, "index.html", gin.H{"resume": doc})
}

// CV renders the active résumé with its assigned CV template, falling
// back to the default one when none is set.
func (h *SiteHandler) CV(c *gin.Context) {
	doc, err := h.renderResumeUseCase.ExecuteActive(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.recordView("cv", &doc.ID)
	tpl := h.renderResumeUseCase.TemplateName(c.Request.Context(), doc)
	c.HTML(http.StatusOK, tpl, gin.H{"resume": doc})
}

// PortfolioDetails renders the detail page of one portfolio project.
func (h *SiteHandler) PortfolioDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	doc, err := h.renderPortfolioUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	h.recordView("portfolio", nil)
	c.HTML(http.StatusOK, "portfolio-details.html", gin.H{"portfolio": doc})
}

// GetActiveResume is the JSON equivalent of the public pages.
func (h *SiteHandler) GetActiveResume(c *gin.Context) {
	doc, err := h.renderResumeUseCase.ExecuteActive(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *SiteHandler) GetPortfolio(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid portfolio ID"})
		return
	}

	doc, err := h.renderPortfolioUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}
