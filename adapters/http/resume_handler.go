package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resumee-hq/resumee-api/internal/application/usecase/publish"
	resumeUC "github.com/resumee-hq/resumee-api/internal/application/usecase/resume"
	"github.com/resumee-hq/resumee-api/pkg/logger"
)

type ResumeHandler struct {
	manageResumeUseCase    *resumeUC.ManageResumeUseCase
	activateResumeUseCase  *resumeUC.ActivateResumeUseCase
	duplicateResumeUseCase *resumeUC.DuplicateResumeUseCase
	renderResumeUseCase    *publish.RenderResumeUseCase
	logger                 logger.Logger
}

func NewResumeHandler(
	manageUC *resumeUC.ManageResumeUseCase,
	activateUC *resumeUC.ActivateResumeUseCase,
	duplicateUC *resumeUC.DuplicateResumeUseCase,
	renderUC *publish.RenderResumeUseCase,
	log logger.Logger,
) *ResumeHandler {
	return &ResumeHandler{
		manageResumeUseCase:    manageUC,
		activateResumeUseCase:  activateUC,
		duplicateResumeUseCase: duplicateUC,
		renderResumeUseCase:    renderUC,
		logger:                 log,
	}
}

func (h *ResumeHandler) Create(c *gin.Context) {
	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	r, err := h.manageResumeUseCase.Create(c.Request.Context(), req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ResumeHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	resumes, err := h.manageResumeUseCase.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, resumes)
}

func (h *ResumeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	r, err := h.manageResumeUseCase.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetDocument returns the fully rendered document of one résumé, the
// same shape the public API serves for the active one.
func (h *ResumeHandler) GetDocument(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	doc, err := h.renderResumeUseCase.ExecuteByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *ResumeHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	var req ResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	r, err := h.manageResumeUseCase.Update(c.Request.Context(), id, req.ToFields())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	if err := h.manageResumeUseCase.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Activate applies the activate action to an admin selection. Exactly
// one selected id is required; anything else is a 400.
func (h *ResumeHandler) Activate(c *gin.Context) {
	var req ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	input := resumeUC.ActivateResumeInput{SelectedIDs: req.SelectedIDs}
	if err := h.activateResumeUseCase.Execute(c.Request.Context(), input); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "resume activated"})
}

func (h *ResumeHandler) Duplicate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	output, err := h.duplicateResumeUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, output.Resume)
}

func (h *ResumeHandler) UploadProfilePicture(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'file' is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "file cannot open"})
		return
	}
	defer file.Close()

	r, err := h.manageResumeUseCase.UploadProfilePicture(c.Request.Context(), id, file)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ResumeHandler) Link(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.manageResumeUseCase.Link(c.Request.Context(), id, req.Relation, req.TargetID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "linked"})
}

func (h *ResumeHandler) Unlink(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume ID"})
		return
	}

	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request data", "details": err.Error()})
		return
	}

	if err := h.manageResumeUseCase.Unlink(c.Request.Context(), id, req.Relation, req.TargetID); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unlinked"})
}
