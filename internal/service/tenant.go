package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/repository"
)

// TenantService handles business logic for tenants
type TenantService struct {
	repo      repository.TenantRepositoryInterface
	validator *validator.Validate
}

// NewTenantService creates a new tenant service
func NewTenantService(repo repository.TenantRepositoryInterface, validator *validator.Validate) *TenantService {
	return &TenantService{
		repo:      repo,
		validator: validator,
	}
}

// CreateTenantRequest represents the request to create a tenant
type CreateTenantRequest struct {
	Name         string  `json:"name" validate:"required,min=1,max=100"`
	DisplayName  string  `json:"display_name" validate:"required,max=200"`
	OverheadRate float64 `json:"overhead_rate" validate:"gte=0,lte=1"`
}

// UpdateTenantRequest represents the request to update a tenant
type UpdateTenantRequest struct {
	DisplayName  string  `json:"display_name" validate:"required,max=200"`
	OverheadRate float64 `json:"overhead_rate" validate:"gte=0,lte=1"`
}

// TenantResponse represents the response for tenant operations
type TenantResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	DisplayName  string    `json:"display_name"`
	OverheadRate float64   `json:"overhead_rate"`
	CreatedAt    string    `json:"created_at"`
	UpdatedAt    string    `json:"updated_at"`
}

// TenantListResponse represents a paginated list of tenants
type TenantListResponse struct {
	Tenants  []TenantResponse `json:"tenants"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new tenant
func (s *TenantService) Create(req *CreateTenantRequest) (*TenantResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	// Check if tenant with same name exists
	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing tenant by name: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrTenantExists
	}

	tenant := &models.Tenant{
		Name:         req.Name,
		DisplayName:  req.DisplayName,
		OverheadRate: req.OverheadRate,
	}

	if err := s.repo.Create(tenant); err != nil {
		return nil, fmt.Errorf("failed to create tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetByID retrieves a tenant by ID
func (s *TenantService) GetByID(id uuid.UUID) (*TenantResponse, error) {
	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// GetAll retrieves all tenants with pagination
func (s *TenantService) GetAll(page, pageSize int) (*TenantListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	tenants, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get tenants: %w", err)
	}

	responses := make([]TenantResponse, len(tenants))
	for i, tenant := range tenants {
		responses[i] = *s.toResponse(&tenant)
	}

	return &TenantListResponse{
		Tenants:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a tenant
func (s *TenantService) Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	tenant, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	tenant.DisplayName = req.DisplayName
	tenant.OverheadRate = req.OverheadRate

	if err := s.repo.Update(tenant); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	return s.toResponse(tenant), nil
}

// Deactivate soft-deletes a tenant. Rows scoped to the tenant stay in place;
// the tenant simply stops resolving.
func (s *TenantService) Deactivate(id uuid.UUID) error {
	_, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTenantNotFound
		}
		return fmt.Errorf("failed to get tenant: %w", err)
	}

	if err := s.repo.SoftDelete(id); err != nil {
		return fmt.Errorf("failed to deactivate tenant: %w", err)
	}

	return nil
}

// toResponse converts a tenant model to a response
func (s *TenantService) toResponse(tenant *models.Tenant) *TenantResponse {
	return &TenantResponse{
		ID:           tenant.ID,
		Name:         tenant.Name,
		DisplayName:  tenant.DisplayName,
		OverheadRate: tenant.OverheadRate,
		CreatedAt:    tenant.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    tenant.UpdatedAt.Format(time.RFC3339),
	}
}
