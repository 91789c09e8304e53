package service

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/logger"
	"github.com/chriso789/pitch-1-sub003/internal/repository"
)

// AuditService handles the append-only change trail. There is no update or
// delete anywhere in this type; callers that need to amend history append a
// new row instead.
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo}
}

// AuditLogResponse represents the response for audit log reads
type AuditLogResponse struct {
	ID          uuid.UUID          `json:"id"`
	TenantID    uuid.UUID          `json:"tenant_id"`
	ActorUserID uuid.UUID          `json:"actor_user_id"`
	EntityType  string             `json:"entity_type"`
	EntityID    uuid.UUID          `json:"entity_id"`
	Action      models.AuditAction `json:"action"`
	Detail      json.RawMessage    `json:"detail,omitempty"`
	CreatedAt   string             `json:"created_at"`
}

// AuditListResponse represents a paginated list of audit rows
type AuditListResponse struct {
	Entries  []AuditLogResponse `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// List retrieves audit rows visible to the principal, newest first
func (s *AuditService) List(p access.Principal, page, pageSize int) (*AuditListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.List(p, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entries: %w", err)
	}

	responses := make([]AuditLogResponse, len(entries))
	for i, entry := range entries {
		responses[i] = AuditLogResponse{
			ID:          entry.ID,
			TenantID:    entry.TenantID,
			ActorUserID: entry.ActorUserID,
			EntityType:  entry.EntityType,
			EntityID:    entry.EntityID,
			Action:      entry.Action,
			Detail:      entry.Detail,
			CreatedAt:   entry.CreatedAt.Format(time.RFC3339),
		}
	}

	return &AuditListResponse{
		Entries:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Record appends an audit row for a mutation performed by the principal. A
// failed append is logged but never fails the mutation it describes.
func (s *AuditService) Record(p access.Principal, entityType string, entityID uuid.UUID, action models.AuditAction, detail interface{}) error {
	var raw json.RawMessage
	if detail != nil {
		encoded, err := json.Marshal(detail)
		if err != nil {
			return fmt.Errorf("failed to encode audit detail: %w", err)
		}
		raw = encoded
	}

	entry := &models.AuditLog{
		TenantScoped: models.TenantScoped{TenantID: access.CurrentTenant(p)},
		ActorUserID:  p.UserID,
		EntityType:   entityType,
		EntityID:     entityID,
		Action:       action,
		Detail:       raw,
	}

	if err := s.repo.Create(entry); err != nil {
		logger.New().WithError(err).WithFields(map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityID,
			"action":      action,
		}).Error("failed to append audit row")
		return fmt.Errorf("failed to append audit row: %w", err)
	}

	return nil
}
