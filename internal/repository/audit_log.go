package repository

import (
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

// AuditLogRepository handles database operations for audit logs. The
// interface is append-and-read only; immutability is enforced by never
// exposing an update or delete path.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create appends an audit row
func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	return r.db.Create(log).Error
}

// List retrieves audit rows visible to the principal, newest first. Masters
// see every tenant; everyone else is pinned to their current tenant.
func (r *AuditLogRepository) List(p access.Principal, limit, offset int) ([]models.AuditLog, int64, error) {
	query := r.db.Model(&models.AuditLog{})
	if p.Role != models.RoleMaster {
		query = query.Where("tenant_id = ?", access.CurrentTenant(p))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	err := query.Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
