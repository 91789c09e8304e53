package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

// MembershipRepository handles database operations for tenant memberships.
// Every query here runs directly against the membership table with no access
// scope applied: this table is what the row predicates resolve roles from,
// and filtering it through those predicates would recurse.
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.TenantMembership) error {
	return r.db.Create(membership).Error
}

// GetActiveByUser retrieves the user's currently active membership
func (r *MembershipRepository) GetActiveByUser(userID uuid.UUID) (*models.TenantMembership, error) {
	var membership models.TenantMembership
	err := r.db.Preload("Locations").
		First(&membership, "user_id = ? AND is_active = true", userID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByUserAndTenant retrieves the membership linking a user to a tenant
func (r *MembershipRepository) GetByUserAndTenant(userID, tenantID uuid.UUID) (*models.TenantMembership, error) {
	var membership models.TenantMembership
	err := r.db.Preload("Locations").
		First(&membership, "user_id = ? AND tenant_id = ?", userID, tenantID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetByTenant retrieves all memberships of a tenant with pagination
func (r *MembershipRepository) GetByTenant(tenantID uuid.UUID, limit, offset int) ([]models.TenantMembership, int64, error) {
	var memberships []models.TenantMembership
	var total int64

	if err := r.db.Model(&models.TenantMembership{}).Where("tenant_id = ?", tenantID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").Preload("Locations").
		Where("tenant_id = ?", tenantID).
		Limit(limit).Offset(offset).Find(&memberships).Error
	if err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}

// SetActive marks the (user, tenant) membership active and deactivates the
// user's other memberships in one transaction, preserving the one-active
// invariant.
func (r *MembershipRepository) SetActive(userID, tenantID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.TenantMembership{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		result := tx.Model(&models.TenantMembership{}).
			Where("user_id = ? AND tenant_id = ?", userID, tenantID).
			Update("is_active", true)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// AssignLocation adds a location assignment to a membership
func (r *MembershipRepository) AssignLocation(membershipID, locationID uuid.UUID) error {
	return r.db.Create(&models.MembershipLocation{
		MembershipID: membershipID,
		LocationID:   locationID,
	}).Error
}
