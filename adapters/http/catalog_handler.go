package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resumeUC "github.com/resumee-hq/resumee-api/internal/application/usecase/resume"
	"github.com/resumee-hq/resumee-api/internal/domain/resume"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

// CatalogHandler exposes the lookup entities: CV templates, spoken
// languages and job-board postings.
type CatalogHandler struct {
	manageCatalogUseCase *resumeUC.ManageCatalogUseCase
	logger               logger.Logger
}

func NewCatalogHandler(manageUC *resumeUC.ManageCatalogUseCase, log logger.Logger) *CatalogHandler {
	return &CatalogHandler{
		manageCatalogUseCase: manageUC,
		logger:               log,
	}
}

func (h *CatalogHandler) CreateTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	t, err := h.manageCatalogUseCase.CreateTemplate(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *CatalogHandler) ListTemplates(c *gin.Context) {
	templates, err := h.manageCatalogUseCase.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, templates)
}

func (h *CatalogHandler) DeleteTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid template ID"})
		return
	}

	if err := h.manageCatalogUseCase.DeleteTemplate(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateLanguage(c *gin.Context) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	l, err := h.manageCatalogUseCase.CreateLanguage(c.Request.Context(), req.Name, resume.LanguageLevel(req.Level))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (h *CatalogHandler) ListLanguages(c *gin.Context) {
	languages, err := h.manageCatalogUseCase.ListLanguages(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, languages)
}

func (h *CatalogHandler) DeleteLanguage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid language ID"})
		return
	}

	if err := h.manageCatalogUseCase.DeleteLanguage(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateJob(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	j, err := h.manageCatalogUseCase.CreateJob(c.Request.Context(), req.Name, req.Country, req.Foreign)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, j)
}

func (h *CatalogHandler) ListJobs(c *gin.Context) {
	jobs, err := h.manageCatalogUseCase.ListJobs(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

func (h *CatalogHandler) DeleteJob(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job ID"})
		return
	}

	if err := h.manageCatalogUseCase.DeleteJob(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) LinkJobResume(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job ID"})
		return
	}

	var req JobResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.manageCatalogUseCase.LinkJobResume(c.Request.Context(), jobID, req.ResumeID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "linked"})
}

func (h *CatalogHandler) UnlinkJobResume(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job ID"})
		return
	}

	var req JobResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.manageCatalogUseCase.UnlinkJobResume(c.Request.Context(), jobID, req.ResumeID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unlinked"})
}
