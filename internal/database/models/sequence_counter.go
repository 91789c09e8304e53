package models

import (
	"github.com/google/uuid"
)

// SequenceCounter is a per-tenant monotonic cursor for one entity kind.
// Primary allocation works off max+1 scans so that manually corrected
// numbers are respected; the counter rows back the job-number fallback for
// entries with an incomplete numbering chain.
type SequenceCounter struct {
	BaseModel
	TenantID  uuid.UUID   `json:"tenant_id" gorm:"type:uuid;not null;index;uniqueIndex:uk_counters_tenant_kind" validate:"required"`
	Kind      CounterKind `json:"kind" gorm:"type:varchar(20);not null;uniqueIndex:uk_counters_tenant_kind" validate:"required"`
	LastValue int         `json:"last_value" gorm:"not null;default:0"`
}

// TableName returns the table name for SequenceCounter
func (SequenceCounter) TableName() string {
	return "sequence_counters"
}
