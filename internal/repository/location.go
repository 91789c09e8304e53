package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

// LocationRepository handles database operations for locations
type LocationRepository struct {
	db *gorm.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Create creates a new location
func (r *LocationRepository) Create(location *models.Location) error {
	return r.db.Create(location).Error
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(id uuid.UUID) (*models.Location, error) {
	var location models.Location
	err := r.db.First(&location, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

// GetByTenant retrieves all locations of a tenant
func (r *LocationRepository) GetByTenant(tenantID uuid.UUID) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Where("tenant_id = ?", tenantID).Order("name").Find(&locations).Error
	if err != nil {
		return nil, err
	}
	return locations, nil
}
