package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/logger"
	"github.com/chriso789/pitch-1-sub003/internal/repository"
)

// JobService handles business logic for jobs
type JobService struct {
	repo      repository.JobRepositoryInterface
	entries   repository.PipelineEntryRepositoryInterface
	audit     AuditServiceInterface
	validator *validator.Validate
}

// NewJobService creates a new job service
func NewJobService(
	repo repository.JobRepositoryInterface,
	entries repository.PipelineEntryRepositoryInterface,
	audit AuditServiceInterface,
	validator *validator.Validate,
) *JobService {
	return &JobService{
		repo:      repo,
		entries:   entries,
		audit:     audit,
		validator: validator,
	}
}

// CreateJobRequest represents the request to create a job
type CreateJobRequest struct {
	PipelineEntryID uuid.UUID  `json:"pipeline_entry_id" validate:"required"`
	Name            string     `json:"name" validate:"max=200"`
	ContractValue   float64    `json:"contract_value" validate:"gte=0"`
	AssignedUserID  *uuid.UUID `json:"assigned_user_id,omitempty"`
	LocationID      *uuid.UUID `json:"location_id,omitempty"`
}

// UpdateJobRequest represents the request to update a job
type UpdateJobRequest struct {
	Name           string     `json:"name" validate:"max=200"`
	ContractValue  float64    `json:"contract_value" validate:"gte=0"`
	AssignedUserID *uuid.UUID `json:"assigned_user_id,omitempty"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
}

// JobResponse represents the response for job operations
type JobResponse struct {
	ID              uuid.UUID  `json:"id"`
	TenantID        uuid.UUID  `json:"tenant_id"`
	PipelineEntryID uuid.UUID  `json:"pipeline_entry_id"`
	Name            string     `json:"name"`
	JobNumber       *int       `json:"job_number"`
	ContactNumber   *int       `json:"contact_number"`
	LeadNumber      *int       `json:"lead_number"`
	CompositeLabel  string     `json:"composite_label"`
	NumberSource    string     `json:"number_source"`
	ContractValue   float64    `json:"contract_value"`
	AssignedUserID  *uuid.UUID `json:"assigned_user_id"`
	LocationID      *uuid.UUID `json:"location_id"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}

// JobListResponse represents a paginated list of jobs
type JobListResponse struct {
	Jobs     []JobResponse `json:"jobs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// Create creates a job under a pipeline entry visible to the principal. The
// job number comes from the fallback ladder inside the repository.
func (s *JobService) Create(p access.Principal, req *CreateJobRequest) (*JobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.entries.GetByID(p, req.PipelineEntryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineEntryNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline entry: %w", err)
	}

	job := &models.Job{
		TenantScoped:    models.TenantScoped{TenantID: access.CurrentTenant(p)},
		PipelineEntryID: req.PipelineEntryID,
		Name:            req.Name,
		ContractValue:   req.ContractValue,
		AssignedUserID:  req.AssignedUserID,
		LocationID:      req.LocationID,
		CreatedBy:       p.UserID,
	}

	if err := s.repo.Create(job); err != nil {
		if apperrors.IsAllocationConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := s.audit.Record(p, "job", job.ID, models.AuditActionCreate, nil); err != nil {
		logger.New().WithError(err).Warn("job created but audit append failed")
	}

	return s.toResponse(job), nil
}

// GetByID retrieves a job visible to the principal
func (s *JobService) GetByID(p access.Principal, id uuid.UUID) (*JobResponse, error) {
	job, err := s.repo.GetByID(p, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return s.toResponse(job), nil
}

// List retrieves the jobs visible to the principal with pagination
func (s *JobService) List(p access.Principal, page, pageSize int) (*JobListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	jobs, total, err := s.repo.List(p, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get jobs: %w", err)
	}

	responses := make([]JobResponse, len(jobs))
	for i, job := range jobs {
		responses[i] = *s.toResponse(&job)
	}

	return &JobListResponse{
		Jobs:     responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a job. Writes against rows outside the principal's access
// are rejected explicitly.
func (s *JobService) Update(p access.Principal, id uuid.UUID, req *UpdateJobRequest) (*JobResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	job, err := s.repo.GetByID(p, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if !access.CanMutate(p, access.RowMeta{
		TenantID:       job.TenantID,
		AssignedUserID: job.AssignedUserID,
		CreatedBy:      job.CreatedBy,
		LocationID:     job.LocationID,
	}) {
		return nil, apperrors.ErrRowAccessDenied
	}

	job.Name = req.Name
	job.ContractValue = req.ContractValue
	job.AssignedUserID = req.AssignedUserID
	job.LocationID = req.LocationID

	if err := s.repo.Update(job); err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}

	if err := s.audit.Record(p, "job", job.ID, models.AuditActionUpdate, nil); err != nil {
		logger.New().WithError(err).Warn("job updated but audit append failed")
	}

	return s.toResponse(job), nil
}

// toResponse converts a job model to a response
func (s *JobService) toResponse(job *models.Job) *JobResponse {
	return &JobResponse{
		ID:              job.ID,
		TenantID:        job.TenantID,
		PipelineEntryID: job.PipelineEntryID,
		Name:            job.Name,
		JobNumber:       job.JobNumber,
		ContactNumber:   job.ContactNumber,
		LeadNumber:      job.LeadNumber,
		CompositeLabel:  job.CompositeLabel,
		NumberSource:    job.NumberSource,
		ContractValue:   job.ContractValue,
		AssignedUserID:  job.AssignedUserID,
		LocationID:      job.LocationID,
		CreatedAt:       job.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       job.UpdatedAt.Format(time.RFC3339),
	}
}
