package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditLog is an append-only record of entity mutations. Rows are written by
// the service layer inside the same transaction as the change they describe;
// updating or deleting audit rows is rejected for every role.
type AuditLog struct {
	BaseModel
	TenantScoped
	ActorUserID uuid.UUID       `json:"actor_user_id" gorm:"type:uuid;not null;index"`
	EntityType  string          `json:"entity_type" gorm:"not null;size:50;index"`
	EntityID    uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index"`
	Action      AuditAction     `json:"action" gorm:"type:varchar(30);not null"`
	Detail      json.RawMessage `json:"detail" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
