package service

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/repository"
)

// LocationService handles business logic for branch locations
type LocationService struct {
	repo      repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewLocationService creates a new location service
func NewLocationService(repo repository.LocationRepositoryInterface, validator *validator.Validate) *LocationService {
	return &LocationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name   string `json:"name" validate:"required,min=1,max=100"`
	Region string `json:"region" validate:"max=100"`
}

// LocationResponse represents the response for location operations
type LocationResponse struct {
	ID        uuid.UUID `json:"id"`
	TenantID  uuid.UUID `json:"tenant_id"`
	Name      string    `json:"name"`
	Region    string    `json:"region"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
}

// Create creates a location in the principal's current tenant. Admin-tier
// roles only.
func (s *LocationService) Create(p access.Principal, req *CreateLocationRequest) (*LocationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if !access.HasRole(p, models.RoleAdmin) {
		return nil, apperrors.NewAuthorizationError("managing locations requires admin role")
	}

	location := &models.Location{
		TenantScoped: models.TenantScoped{TenantID: access.CurrentTenant(p)},
		Name:         req.Name,
		Region:       req.Region,
		IsActive:     true,
	}

	if err := s.repo.Create(location); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return s.toResponse(location), nil
}

// GetByTenant lists the locations of the principal's current tenant
func (s *LocationService) GetByTenant(p access.Principal) ([]LocationResponse, error) {
	locations, err := s.repo.GetByTenant(access.CurrentTenant(p))
	if err != nil {
		return nil, fmt.Errorf("failed to get locations: %w", err)
	}

	responses := make([]LocationResponse, len(locations))
	for i, location := range locations {
		responses[i] = *s.toResponse(&location)
	}
	return responses, nil
}

// toResponse converts a location model to a response
func (s *LocationService) toResponse(location *models.Location) *LocationResponse {
	return &LocationResponse{
		ID:        location.ID,
		TenantID:  location.TenantID,
		Name:      location.Name,
		Region:    location.Region,
		IsActive:  location.IsActive,
		CreatedAt: location.CreatedAt.Format(time.RFC3339),
	}
}
