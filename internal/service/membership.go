package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/repository"
)

// MembershipService handles business logic for tenant memberships
type MembershipService struct {
	repo      repository.MembershipRepositoryInterface
	locations repository.LocationRepositoryInterface
	validator *validator.Validate
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	repo repository.MembershipRepositoryInterface,
	locations repository.LocationRepositoryInterface,
	validator *validator.Validate,
) *MembershipService {
	return &MembershipService{
		repo:      repo,
		locations: locations,
		validator: validator,
	}
}

// CreateMembershipRequest represents the request to add a user to a tenant
type CreateMembershipRequest struct {
	UserID uuid.UUID   `json:"user_id" validate:"required"`
	Role   models.Role `json:"role" validate:"required"`
}

// MembershipResponse represents the response for membership operations
type MembershipResponse struct {
	ID          uuid.UUID   `json:"id"`
	TenantID    uuid.UUID   `json:"tenant_id"`
	UserID      uuid.UUID   `json:"user_id"`
	Role        models.Role `json:"role"`
	IsActive    bool        `json:"is_active"`
	LocationIDs []uuid.UUID `json:"location_ids"`
	CreatedAt   string      `json:"created_at"`
}

// MembershipListResponse represents a paginated list of memberships
type MembershipListResponse struct {
	Memberships []MembershipResponse `json:"memberships"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create adds a user to the principal's current tenant. Granting a role at or
// above your own is rejected; only a master can mint masters.
func (s *MembershipService) Create(p access.Principal, req *CreateMembershipRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Role.IsValid() {
		return nil, apperrors.ErrInvalidRole
	}
	if !access.HasRole(p, models.RoleAdmin) {
		return nil, apperrors.NewAuthorizationError("managing memberships requires admin role")
	}
	if access.RoleRank(req.Role) >= access.RoleRank(p.Role) && p.Role != models.RoleMaster {
		return nil, apperrors.NewAuthorizationError("cannot grant a role at or above your own")
	}

	tenantID := access.CurrentTenant(p)
	existing, err := s.repo.GetByUserAndTenant(req.UserID, tenantID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrMembershipExists
	}

	membership := &models.TenantMembership{
		TenantScoped: models.TenantScoped{TenantID: tenantID},
		UserID:       req.UserID,
		Role:         req.Role,
	}

	if err := s.repo.Create(membership); err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}

	return s.toResponse(membership), nil
}

// GetByTenant lists the memberships of the principal's current tenant
func (s *MembershipService) GetByTenant(p access.Principal, page, pageSize int) (*MembershipListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	memberships, total, err := s.repo.GetByTenant(access.CurrentTenant(p), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get memberships: %w", err)
	}

	responses := make([]MembershipResponse, len(memberships))
	for i, membership := range memberships {
		responses[i] = *s.toResponse(&membership)
	}

	return &MembershipListResponse{
		Memberships: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// AssignLocation restricts a membership to a branch location. The location
// must belong to the same tenant as the membership.
func (s *MembershipService) AssignLocation(p access.Principal, membershipID, locationID uuid.UUID) error {
	if !access.HasRole(p, models.RoleAdmin) {
		return apperrors.NewAuthorizationError("managing memberships requires admin role")
	}

	location, err := s.locations.GetByID(locationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrLocationNotFound
		}
		return fmt.Errorf("failed to get location: %w", err)
	}
	if location.TenantID != access.CurrentTenant(p) && p.Role != models.RoleMaster {
		return apperrors.ErrTenantMismatch
	}

	if err := s.repo.AssignLocation(membershipID, locationID); err != nil {
		return fmt.Errorf("failed to assign location: %w", err)
	}

	return nil
}

// toResponse converts a membership model to a response
func (s *MembershipService) toResponse(membership *models.TenantMembership) *MembershipResponse {
	return &MembershipResponse{
		ID:          membership.ID,
		TenantID:    membership.TenantID,
		UserID:      membership.UserID,
		Role:        membership.Role,
		IsActive:    membership.IsActive,
		LocationIDs: membership.LocationIDs(),
		CreatedAt:   membership.CreatedAt.Format(time.RFC3339),
	}
}
