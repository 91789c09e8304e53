package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/auth"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/service"
)

// PipelineHandler handles HTTP requests for pipeline entries
type PipelineHandler struct {
	service service.PipelineServiceInterface
}

// NewPipelineHandler creates a new pipeline handler
func NewPipelineHandler(service service.PipelineServiceInterface) *PipelineHandler {
	return &PipelineHandler{service: service}
}

// CreatePipelineEntry handles POST /api/v1/pipeline
// @Summary Create a new pipeline entry
// @Description Create a pipeline entry under a contact; the lead number is allocated per contact
// @Tags pipeline
// @Accept json
// @Produce json
// @Param entry body service.CreatePipelineEntryRequest true "Pipeline entry data"
// @Success 201 {object} service.PipelineEntryResponse "Successfully created entry"
// @Failure 400 {object} ErrorResponse "Invalid request body or status"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 409 {object} ErrorResponse "Number allocation conflict"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /pipeline [post]
func (h *PipelineHandler) CreatePipelineEntry(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreatePipelineEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.Create(principal, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsInvalidStatus(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAllocationConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pipeline entry", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GetPipelineEntry handles GET /api/v1/pipeline/:id
// @Summary Get pipeline entry by ID
// @Description Get a pipeline entry visible to the caller
// @Tags pipeline
// @Produce json
// @Param id path string true "Pipeline entry ID (UUID)"
// @Success 200 {object} service.PipelineEntryResponse "Successfully retrieved entry"
// @Failure 400 {object} ErrorResponse "Invalid entry ID"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /pipeline/{id} [get]
func (h *PipelineHandler) GetPipelineEntry(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pipeline entry ID: invalid UUID format"})
		return
	}

	entry, err := h.service.GetByID(principal, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPipelineEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get pipeline entry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// ListPipelineEntries handles GET /api/v1/pipeline
// @Summary List pipeline entries
// @Description List the pipeline entries visible to the caller with pagination
// @Tags pipeline
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.PipelineEntryListResponse "Successfully retrieved entries"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /pipeline [get]
func (h *PipelineHandler) ListPipelineEntries(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, pageSize := paginationParams(c)

	entries, err := h.service.List(principal, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pipeline entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}

// UpdateStatus handles PATCH /api/v1/pipeline/:id/status
// @Summary Move an entry to a new status
// @Description Update an entry's pipeline status; only recognized statuses are accepted
// @Tags pipeline
// @Accept json
// @Produce json
// @Param id path string true "Pipeline entry ID (UUID)"
// @Param request body service.UpdateStatusRequest true "Target status"
// @Success 200 {object} service.PipelineEntryResponse "Successfully updated status"
// @Failure 400 {object} ErrorResponse "Invalid or unrecognized status"
// @Failure 403 {object} ErrorResponse "Row access denied"
// @Failure 404 {object} ErrorResponse "Entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /pipeline/{id}/status [patch]
func (h *PipelineHandler) UpdateStatus(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pipeline entry ID: invalid UUID format"})
		return
	}

	var req service.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	entry, err := h.service.UpdateStatus(principal, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPipelineEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsInvalidStatus(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, entry)
}

// NormalizeStatuses handles POST /api/v1/pipeline/normalize-statuses
// @Summary Normalize out-of-band statuses
// @Description Reset every entry of the current tenant whose status fell outside the recognized set (admin or above)
// @Tags pipeline
// @Produce json
// @Success 200 {object} service.NormalizeStatusesResponse "Normalization report"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /pipeline/normalize-statuses [post]
func (h *PipelineHandler) NormalizeStatuses(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	report, err := h.service.NormalizeStatuses(principal)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to normalize statuses", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

// RefreshLabels handles POST /api/v1/pipeline/refresh-labels
// @Summary Refresh composite labels
// @Description Recompute the stored C-L-J labels of the current tenant after out-of-band number corrections (admin or above)
// @Tags pipeline
// @Produce json
// @Success 200 {object} service.RefreshLabelsResponse "Refresh report"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /pipeline/refresh-labels [post]
func (h *PipelineHandler) RefreshLabels(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	report, err := h.service.RefreshLabels(principal)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh labels", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}
