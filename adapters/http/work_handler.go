package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	workUC "github.com/resumee-hq/resumee-api/internal/application/usecase/work"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type WorkHandler struct {
	manageWorkUseCase *workUC.ManageWorkUseCase
	logger            logger.Logger
}

func NewWorkHandler(manageUC *workUC.ManageWorkUseCase, log logger.Logger) *WorkHandler {
	return &WorkHandler{
		manageWorkUseCase: manageUC,
		logger:            log,
	}
}

func (h *WorkHandler) Create(c *gin.Context) {
	var req WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	w, err := h.manageWorkUseCase.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, w)
}

func (h *WorkHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work experience ID"})
		return
	}

	w, err := h.manageWorkUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work experience ID"})
		return
	}

	var req WorkExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	w, err := h.manageWorkUseCase.Update(c.Request.Context(), id, req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WorkHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work experience ID"})
		return
	}

	if err := h.manageWorkUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkHandler) AddDescription(c *gin.Context) {
	workID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid work experience ID"})
		return
	}

	var req DescriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	d, err := h.manageWorkUseCase.AddDescription(c.Request.Context(), workID, req.Description, req.Order)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

func (h *WorkHandler) DeleteDescription(c *gin.Context) {
	id, err := uuid.Parse(c.Param("descriptionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid description ID"})
		return
	}

	if err := h.manageWorkUseCase.DeleteDescription(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkHandler) LinkSkill(c *gin.Context) {
	descriptionID, err := uuid.Parse(c.Param("descriptionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid description ID"})
		return
	}
	skillID, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skill ID"})
		return
	}

	if err := h.manageWorkUseCase.LinkSkill(c.Request.Context(), descriptionID, skillID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "linked"})
}

func (h *WorkHandler) UnlinkSkill(c *gin.Context) {
	descriptionID, err := uuid.Parse(c.Param("descriptionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid description ID"})
		return
	}
	skillID, err := uuid.Parse(c.Param("skillId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skill ID"})
		return
	}

	if err := h.manageWorkUseCase.UnlinkSkill(c.Request.Context(), descriptionID, skillID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unlinked"})
}

func (h *WorkHandler) CreateSkill(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	s, err := h.manageWorkUseCase.CreateSkill(c.Request.Context(), req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *WorkHandler) UpdateSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skill ID"})
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	s, err := h.manageWorkUseCase.UpdateSkill(c.Request.Context(), id, req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *WorkHandler) DeleteSkill(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid skill ID"})
		return
	}

	if err := h.manageWorkUseCase.DeleteSkill(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WorkHandler) ListSkills(c *gin.Context) {
	skills, err := h.manageWorkUseCase.ListSkills(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}
