package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	refereeUC "github.com/resumee-hq/resumee-api/internal/application/usecase/referee"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type RefereeHandler struct {
	manageRefereeUseCase *refereeUC.ManageRefereeUseCase
	logger               logger.Logger
}

func NewRefereeHandler(manageUC *refereeUC.ManageRefereeUseCase, log logger.Logger) *RefereeHandler {
	return &RefereeHandler{
		manageRefereeUseCase: manageUC,
		logger:               log,
	}
}

func (h *RefereeHandler) Create(c *gin.Context) {
	var req RefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	r, err := h.manageRefereeUseCase.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *RefereeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
		return
	}

	r, err := h.manageRefereeUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RefereeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
		return
	}

	var req RefereeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	r, err := h.manageRefereeUseCase.Update(c.Request.Context(), id, req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RefereeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid referee ID"})
		return
	}

	if err := h.manageRefereeUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListForResume returns the aggregated referee view of one résumé.
func (h *RefereeHandler) ListForResume(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	referees, err := h.manageRefereeUseCase.ListForResume(c.Request.Context(), resumeID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, referees)
}
