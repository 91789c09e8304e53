package models

import (
	"github.com/google/uuid"
)

// Job represents contracted work resulting from a won pipeline entry.
// JobNumber is scoped per pipeline entry; the contact and lead numbers are
// denormalized so the full C-L-J label survives ancestor repair.
type Job struct {
	BaseModel
	TenantScoped
	PipelineEntryID uuid.UUID `json:"pipeline_entry_id" gorm:"type:uuid;not null;index;uniqueIndex:uk_jobs_entry_number" validate:"required"`
	Name            string    `json:"name" gorm:"size:200" validate:"max=200"`
	JobNumber       *int      `json:"job_number" gorm:"uniqueIndex:uk_jobs_entry_number"`
	ContactNumber   *int      `json:"contact_number"`
	LeadNumber      *int      `json:"lead_number"`
	CompositeLabel  string    `json:"composite_label" gorm:"size:40"`
	NumberSource    string    `json:"number_source" gorm:"size:20;default:'lead_scope'"`
	ContractValue   float64   `json:"contract_value" gorm:"type:numeric(12,2);default:0"`

	AssignedUserID *uuid.UUID `json:"assigned_user_id" gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID  `json:"created_by" gorm:"type:uuid;index"`
	LocationID     *uuid.UUID `json:"location_id" gorm:"type:uuid;index"`

	// Relationships
	PipelineEntry *PipelineEntry `json:"pipeline_entry,omitempty" gorm:"foreignKey:PipelineEntryID"`
}

// TableName returns the table name for Job
func (Job) TableName() string {
	return "jobs"
}
