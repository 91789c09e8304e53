package models

import (
	"github.com/google/uuid"
)

// TenantMembership associates a user with a tenant and a role. A user has at
// most one membership per tenant; the one flagged active is the tenant the
// user is currently operating in.
type TenantMembership struct {
	BaseModel
	TenantScoped
	UserID uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index;uniqueIndex:uk_memberships_user_tenant" validate:"required"`
	Role   Role      `json:"role" gorm:"type:varchar(30);not null" validate:"required"`
	// IsActive marks the user's currently selected tenant.
	IsActive bool `json:"is_active" gorm:"default:false;index"`

	// Relationships
	User      *User                `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Tenant    *Tenant              `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	Locations []MembershipLocation `json:"locations,omitempty" gorm:"foreignKey:MembershipID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TenantMembership
func (TenantMembership) TableName() string {
	return "tenant_memberships"
}

// LocationIDs returns the ids of the locations assigned to this membership
func (m *TenantMembership) LocationIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(m.Locations))
	for _, loc := range m.Locations {
		ids = append(ids, loc.LocationID)
	}
	return ids
}

// MembershipLocation assigns a membership to a branch location
type MembershipLocation struct {
	BaseModel
	MembershipID uuid.UUID `json:"membership_id" gorm:"type:uuid;not null;index;uniqueIndex:uk_membership_location" validate:"required"`
	LocationID   uuid.UUID `json:"location_id" gorm:"type:uuid;not null;index;uniqueIndex:uk_membership_location" validate:"required"`
}

// TableName returns the table name for MembershipLocation
func (MembershipLocation) TableName() string {
	return "membership_locations"
}
