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

// JobHandler handles HTTP requests for jobs
type JobHandler struct {
	service service.JobServiceInterface
}

// NewJobHandler creates a new job handler
func NewJobHandler(service service.JobServiceInterface) *JobHandler {
	return &JobHandler{service: service}
}

// CreateJob handles POST /api/v1/jobs
// @Summary Create a new job
// @Description Create a job under a pipeline entry; the job number comes from the fallback ladder
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body service.CreateJobRequest true "Job data"
// @Success 201 {object} service.JobResponse "Successfully created job"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Pipeline entry not found"
// @Failure 409 {object} ErrorResponse "Number allocation conflict"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	job, err := h.service.Create(principal, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPipelineEntryNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAllocationConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, job)
}

// GetJob handles GET /api/v1/jobs/:id
// @Summary Get job by ID
// @Description Get a job visible to the caller
// @Tags jobs
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Success 200 {object} service.JobResponse "Successfully retrieved job"
// @Failure 400 {object} ErrorResponse "Invalid job ID"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID: invalid UUID format"})
		return
	}

	job, err := h.service.GetByID(principal, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get job", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, job)
}

// ListJobs handles GET /api/v1/jobs
// @Summary List jobs
// @Description List the jobs visible to the caller with pagination
// @Tags jobs
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.JobListResponse "Successfully retrieved jobs"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, pageSize := paginationParams(c)

	jobs, err := h.service.List(principal, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// UpdateJob handles PUT /api/v1/jobs/:id
// @Summary Update a job
// @Description Update a job; writing to a row outside the caller's access is rejected explicitly
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path string true "Job ID (UUID)"
// @Param job body service.UpdateJobRequest true "Job data"
// @Success 200 {object} service.JobResponse "Successfully updated job"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Row access denied"
// @Failure 404 {object} ErrorResponse "Job not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID: invalid UUID format"})
		return
	}

	var req service.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	job, err := h.service.Update(principal, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrJobNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update job", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, job)
}
