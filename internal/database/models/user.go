package models

import (
	"github.com/google/uuid"
)

// User represents a platform principal. A user belongs to a home tenant and
// may hold memberships in additional tenants; exactly one membership is
// active at a time.
type User struct {
	BaseModel
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:200" validate:"required,email,max=200"`
	FullName     string    `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	PhoneNumber  string    `json:"phone_number" gorm:"size:20" validate:"max=20"`
	HomeTenantID uuid.UUID `json:"home_tenant_id" gorm:"type:uuid;not null;index" validate:"required"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	Memberships []TenantMembership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
