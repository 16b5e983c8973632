package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	educationUC "github.com/resumee-hq/resumee-api/internal/application/usecase/education"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type EducationHandler struct {
	manageEducationUseCase *educationUC.ManageEducationUseCase
	logger                 logger.Logger
}

func NewEducationHandler(manageUC *educationUC.ManageEducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{
		manageEducationUseCase: manageUC,
		logger:                 log,
	}
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	e, err := h.manageEducationUseCase.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EducationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid education ID"})
		return
	}

	e, err := h.manageEducationUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid education ID"})
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	e, err := h.manageEducationUseCase.Update(c.Request.Context(), id, req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid education ID"})
		return
	}

	if err := h.manageEducationUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
