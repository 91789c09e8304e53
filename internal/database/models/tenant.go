package models

import (
	"gorm.io/gorm"
)

// Tenant represents an isolated contracting company account.
// Tenants are only ever soft-deleted; DeletedAt doubles as the active flag.
type Tenant struct {
	BaseModel
	Name         string         `json:"name" gorm:"uniqueIndex;not null;size:100" validate:"required,min=1,max=100"`
	DisplayName  string         `json:"display_name" gorm:"not null;size:200" validate:"required,max=200"`
	OverheadRate float64        `json:"overhead_rate" gorm:"type:numeric(5,4);not null;default:0"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	// Relationships
	Locations   []Location         `json:"locations,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Memberships []TenantMembership `json:"memberships,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
	Contacts    []Contact          `json:"contacts,omitempty" gorm:"foreignKey:TenantID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Tenant
func (Tenant) TableName() string {
	return "tenants"
}

// IsActive reports whether the tenant has not been soft-deleted
func (t *Tenant) IsActive() bool {
	return !t.DeletedAt.Valid
}
