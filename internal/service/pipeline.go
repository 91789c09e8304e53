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

// PipelineService handles business logic for pipeline entries, including the
// explicit status normalization pass
type PipelineService struct {
	repo      repository.PipelineEntryRepositoryInterface
	contacts  repository.ContactRepositoryInterface
	audit     AuditServiceInterface
	validator *validator.Validate
}

// NewPipelineService creates a new pipeline service
func NewPipelineService(
	repo repository.PipelineEntryRepositoryInterface,
	contacts repository.ContactRepositoryInterface,
	audit AuditServiceInterface,
	validator *validator.Validate,
) *PipelineService {
	return &PipelineService{
		repo:      repo,
		contacts:  contacts,
		audit:     audit,
		validator: validator,
	}
}

// CreatePipelineEntryRequest represents the request to create a pipeline entry
type CreatePipelineEntryRequest struct {
	ContactID      uuid.UUID  `json:"contact_id" validate:"required"`
	Title          string     `json:"title" validate:"max=200"`
	Status         string     `json:"status"`
	EstimatedValue float64    `json:"estimated_value" validate:"gte=0"`
	AssignedUserID *uuid.UUID `json:"assigned_user_id,omitempty"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
}

// UpdateStatusRequest represents the request to move an entry to a new status
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// PipelineEntryResponse represents the response for pipeline entry operations
type PipelineEntryResponse struct {
	ID             uuid.UUID             `json:"id"`
	TenantID       uuid.UUID             `json:"tenant_id"`
	ContactID      uuid.UUID             `json:"contact_id"`
	Title          string                `json:"title"`
	Status         models.PipelineStatus `json:"status"`
	LeadNumber     *int                  `json:"lead_number"`
	ContactNumber  *int                  `json:"contact_number"`
	CompositeLabel string                `json:"composite_label"`
	EstimatedValue float64               `json:"estimated_value"`
	AssignedUserID *uuid.UUID            `json:"assigned_user_id"`
	LocationID     *uuid.UUID            `json:"location_id"`
	CreatedAt      string                `json:"created_at"`
	UpdatedAt      string                `json:"updated_at"`
}

// PipelineEntryListResponse represents a paginated list of pipeline entries
type PipelineEntryListResponse struct {
	Entries  []PipelineEntryResponse `json:"entries"`
	Total    int64                   `json:"total"`
	Page     int                     `json:"page"`
	PageSize int                     `json:"page_size"`
}

// NormalizedEntry records one repaired row of a normalization pass
type NormalizedEntry struct {
	EntryID   uuid.UUID `json:"entry_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
}

// NormalizeStatusesResponse reports the outcome of a normalization pass
type NormalizeStatusesResponse struct {
	Normalized []NormalizedEntry `json:"normalized"`
	Count      int               `json:"count"`
}

// RefreshLabelsResponse reports how many rows a label refresh repaired per
// table
type RefreshLabelsResponse struct {
	Contacts int64 `json:"contacts"`
	Entries  int64 `json:"entries"`
	Jobs     int64 `json:"jobs"`
}

// Create creates a pipeline entry under a contact visible to the principal
func (s *PipelineService) Create(p access.Principal, req *CreatePipelineEntryRequest) (*PipelineEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.PipelineStatus(req.Status)
	if req.Status == "" {
		status = models.DefaultPipelineStatus
	} else if !status.IsValid() {
		return nil, &apperrors.InvalidStatusError{Status: req.Status}
	}

	// The contact lookup runs scoped: creating an entry under a contact the
	// principal cannot see fails the same way as a missing contact.
	if _, err := s.contacts.GetByID(p, req.ContactID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	entry := &models.PipelineEntry{
		TenantScoped:   models.TenantScoped{TenantID: access.CurrentTenant(p)},
		ContactID:      req.ContactID,
		Title:          req.Title,
		Status:         status,
		EstimatedValue: req.EstimatedValue,
		AssignedUserID: req.AssignedUserID,
		LocationID:     req.LocationID,
		CreatedBy:      p.UserID,
	}

	if err := s.repo.Create(entry); err != nil {
		if apperrors.IsAllocationConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create pipeline entry: %w", err)
	}

	if err := s.audit.Record(p, "pipeline_entry", entry.ID, models.AuditActionCreate, nil); err != nil {
		logger.New().WithError(err).Warn("pipeline entry created but audit append failed")
	}

	return s.toResponse(entry), nil
}

// GetByID retrieves a pipeline entry visible to the principal
func (s *PipelineService) GetByID(p access.Principal, id uuid.UUID) (*PipelineEntryResponse, error) {
	entry, err := s.repo.GetByID(p, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineEntryNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline entry: %w", err)
	}

	return s.toResponse(entry), nil
}

// List retrieves the pipeline entries visible to the principal with pagination
func (s *PipelineService) List(p access.Principal, page, pageSize int) (*PipelineEntryListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.List(p, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline entries: %w", err)
	}

	responses := make([]PipelineEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *s.toResponse(&entry)
	}

	return &PipelineEntryListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// ListByContact retrieves a contact's entries visible to the principal
func (s *PipelineService) ListByContact(p access.Principal, contactID uuid.UUID) ([]PipelineEntryResponse, error) {
	entries, err := s.repo.ListByContact(p, contactID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline entries: %w", err)
	}

	responses := make([]PipelineEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = *s.toResponse(&entry)
	}
	return responses, nil
}

// UpdateStatus moves an entry to a new status. The target must be a member
// of the recognized set; arbitrary strings are rejected at this boundary so
// invalid values can only enter the column out of band.
func (s *PipelineService) UpdateStatus(p access.Principal, id uuid.UUID, req *UpdateStatusRequest) (*PipelineEntryResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status := models.PipelineStatus(req.Status)
	if !status.IsValid() {
		return nil, &apperrors.InvalidStatusError{Status: req.Status}
	}

	entry, err := s.repo.GetByID(p, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPipelineEntryNotFound
		}
		return nil, fmt.Errorf("failed to get pipeline entry: %w", err)
	}

	if !access.CanMutate(p, access.RowMeta{
		TenantID:       entry.TenantID,
		AssignedUserID: entry.AssignedUserID,
		CreatedBy:      entry.CreatedBy,
		LocationID:     entry.LocationID,
	}) {
		return nil, apperrors.ErrRowAccessDenied
	}

	oldStatus := entry.Status
	entry.Status = status

	if err := s.repo.Update(entry); err != nil {
		return nil, fmt.Errorf("failed to update pipeline entry: %w", err)
	}

	if err := s.audit.Record(p, "pipeline_entry", entry.ID, models.AuditActionStatusChange, map[string]string{
		"old_status": string(oldStatus),
		"new_status": string(status),
	}); err != nil {
		logger.New().WithError(err).Warn("status changed but audit append failed")
	}

	return s.toResponse(entry), nil
}

// NormalizeStatuses repairs every entry of the principal's tenant whose
// status fell outside the recognized set, resetting each to the default
// stage with an audit row per repaired entry. This is the only path that
// rewrites statuses; reads always surface the stored value untouched.
func (s *PipelineService) NormalizeStatuses(p access.Principal) (*NormalizeStatusesResponse, error) {
	if !access.HasRole(p, models.RoleAdmin) {
		return nil, apperrors.NewAuthorizationError("status normalization requires admin role")
	}

	tenantID := access.CurrentTenant(p)
	invalid, err := s.repo.FindInvalidStatuses(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invalid statuses: %w", err)
	}

	normalized := make([]NormalizedEntry, 0, len(invalid))
	for i := range invalid {
		entry := &invalid[i]
		oldStatus := entry.Status
		entry.Status = models.DefaultPipelineStatus

		if err := s.repo.Update(entry); err != nil {
			return nil, fmt.Errorf("failed to normalize entry %s: %w", entry.ID, err)
		}

		if err := s.audit.Record(p, "pipeline_entry", entry.ID, models.AuditActionStatusNormalize, map[string]string{
			"old_status": string(oldStatus),
			"new_status": string(models.DefaultPipelineStatus),
		}); err != nil {
			logger.New().WithError(err).Warn("entry normalized but audit append failed")
		}

		normalized = append(normalized, NormalizedEntry{
			EntryID:   entry.ID,
			OldStatus: string(oldStatus),
			NewStatus: string(models.DefaultPipelineStatus),
		})
	}

	if len(normalized) > 0 {
		logger.New().WithFields(map[string]interface{}{
			"tenant_id": tenantID,
			"count":     len(normalized),
		}).Info("normalized pipeline statuses")
	}

	return &NormalizeStatusesResponse{
		Normalized: normalized,
		Count:      len(normalized),
	}, nil
}

// RefreshLabels recomputes the stored composite labels of the principal's
// tenant after out-of-band number corrections, re-syncing the ancestor
// number copies on entries and jobs along the way.
func (s *PipelineService) RefreshLabels(p access.Principal) (*RefreshLabelsResponse, error) {
	if !access.HasRole(p, models.RoleAdmin) {
		return nil, apperrors.NewAuthorizationError("label refresh requires admin role")
	}

	tenantID := access.CurrentTenant(p)
	result, err := s.repo.RefreshLabels(tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh composite labels: %w", err)
	}

	repaired := result.Contacts + result.Entries + result.Jobs
	if repaired > 0 {
		if err := s.audit.Record(p, "tenant", tenantID, models.AuditActionLabelRefresh, map[string]int64{
			"contacts": result.Contacts,
			"entries":  result.Entries,
			"jobs":     result.Jobs,
		}); err != nil {
			logger.New().WithError(err).Warn("labels refreshed but audit append failed")
		}

		logger.New().WithFields(map[string]interface{}{
			"tenant_id": tenantID,
			"repaired":  repaired,
		}).Info("refreshed composite labels")
	}

	return &RefreshLabelsResponse{
		Contacts: result.Contacts,
		Entries:  result.Entries,
		Jobs:     result.Jobs,
	}, nil
}

// toResponse converts a pipeline entry model to a response
func (s *PipelineService) toResponse(entry *models.PipelineEntry) *PipelineEntryResponse {
	return &PipelineEntryResponse{
		ID:             entry.ID,
		TenantID:       entry.TenantID,
		ContactID:      entry.ContactID,
		Title:          entry.Title,
		Status:         entry.Status,
		LeadNumber:     entry.LeadNumber,
		ContactNumber:  entry.ContactNumber,
		CompositeLabel: entry.CompositeLabel,
		EstimatedValue: entry.EstimatedValue,
		AssignedUserID: entry.AssignedUserID,
		LocationID:     entry.LocationID,
		CreatedAt:      entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      entry.UpdatedAt.Format(time.RFC3339),
	}
}
