package models

import (
	"github.com/google/uuid"
)

// Contact represents a prospective or existing customer of a tenant.
// ContactNumber is allocated once at creation and never changes; the unique
// index on (tenant_id, contact_number) is what turns an allocation race into
// a retryable conflict.
type Contact struct {
	BaseModel
	TenantID       uuid.UUID `json:"tenant_id" gorm:"type:uuid;not null;index;uniqueIndex:uk_contacts_tenant_number" validate:"required"`
	FirstName      string    `json:"first_name" gorm:"size:100" validate:"max=100"`
	LastName       string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email          string    `json:"email" gorm:"size:200" validate:"omitempty,email,max=200"`
	PhoneNumber    string    `json:"phone_number" gorm:"size:20" validate:"max=20"`
	AddressLine    string    `json:"address_line" gorm:"size:200" validate:"max=200"`
	City           string    `json:"city" gorm:"size:100" validate:"max=100"`
	State          string    `json:"state" gorm:"size:50" validate:"max=50"`
	PostalCode     string    `json:"postal_code" gorm:"size:20" validate:"max=20"`
	LeadSource     string    `json:"lead_source" gorm:"size:100" validate:"max=100"`
	ContactNumber  *int      `json:"contact_number" gorm:"uniqueIndex:uk_contacts_tenant_number"`
	CompositeLabel string    `json:"composite_label" gorm:"size:40"`

	AssignedUserID *uuid.UUID `json:"assigned_user_id" gorm:"type:uuid;index"`
	CreatedBy      uuid.UUID  `json:"created_by" gorm:"type:uuid;index"`
	LocationID     *uuid.UUID `json:"location_id" gorm:"type:uuid;index"`

	// Relationships
	PipelineEntries []PipelineEntry `json:"pipeline_entries,omitempty" gorm:"foreignKey:ContactID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}
