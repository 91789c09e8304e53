package models

import (
	"github.com/google/uuid"
)

// PipelineEntry represents a sales opportunity tied to exactly one contact.
// LeadNumber is scoped per contact: two different contacts may both hold
// lead number 1. ContactNumber is a denormalized copy of the parent's number
// so the composite label can be rebuilt without a join.
type PipelineEntry struct {
	BaseModel
	TenantScoped
	ContactID      uuid.UUID      `json:"contact_id" gorm:"type:uuid;not null;index;uniqueIndex:uk_entries_contact_lead" validate:"required"`
	Title          string         `json:"title" gorm:"size:200" validate:"max=200"`
	Status         PipelineStatus `json:"status" gorm:"type:varchar(30);not null;default:'lead';index"`
	LeadNumber     *int           `json:"lead_number" gorm:"uniqueIndex:uk_entries_contact_lead"`
	ContactNumber  *int           `json:"contact_number"`
	CompositeLabel string         `json:"composite_label" gorm:"size:40"`
	EstimatedValue float64        `json:"estimated_value" gorm:"type:numeric(12,2);default:0"`

	AssignedUserID *uuid.UUID `json:"assigned_user_id" gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID  `json:"created_by" gorm:"type:uuid;index"`
	LocationID     *uuid.UUID `json:"location_id" gorm:"type:uuid;index"`

	// Relationships
	Contact *Contact `json:"contact,omitempty" gorm:"foreignKey:ContactID"`
	Jobs    []Job    `json:"jobs,omitempty" gorm:"foreignKey:PipelineEntryID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for PipelineEntry
func (PipelineEntry) TableName() string {
	return "pipeline_entries"
}
