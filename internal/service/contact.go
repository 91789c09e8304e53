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
	"github.com/chriso789/pitch-1-sub003/internal/logger"
	"github.com/chriso789/pitch-1-sub003/internal/repository"
)

// ContactService handles business logic for contacts
type ContactService struct {
	repo      repository.ContactRepositoryInterface
	audit     AuditServiceInterface
	validator *validator.Validate
}

// NewContactService creates a new contact service
func NewContactService(
	repo repository.ContactRepositoryInterface,
	audit AuditServiceInterface,
	validator *validator.Validate,
) *ContactService {
	return &ContactService{
		repo:      repo,
		audit:     audit,
		validator: validator,
	}
}

// CreateContactRequest represents the request to create a contact
type CreateContactRequest struct {
	FirstName      string     `json:"first_name" validate:"max=100"`
	LastName       string     `json:"last_name" validate:"required,max=100"`
	Email          string     `json:"email" validate:"omitempty,email,max=200"`
	PhoneNumber    string     `json:"phone_number" validate:"max=20"`
	AddressLine    string     `json:"address_line" validate:"max=200"`
	City           string     `json:"city" validate:"max=100"`
	State          string     `json:"state" validate:"max=50"`
	PostalCode     string     `json:"postal_code" validate:"max=20"`
	LeadSource     string     `json:"lead_source" validate:"max=100"`
	AssignedUserID *uuid.UUID `json:"assigned_user_id,omitempty"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
}

// UpdateContactRequest represents the request to update a contact
type UpdateContactRequest struct {
	FirstName      string     `json:"first_name" validate:"max=100"`
	LastName       string     `json:"last_name" validate:"required,max=100"`
	Email          string     `json:"email" validate:"omitempty,email,max=200"`
	PhoneNumber    string     `json:"phone_number" validate:"max=20"`
	AddressLine    string     `json:"address_line" validate:"max=200"`
	City           string     `json:"city" validate:"max=100"`
	State          string     `json:"state" validate:"max=50"`
	PostalCode     string     `json:"postal_code" validate:"max=20"`
	AssignedUserID *uuid.UUID `json:"assigned_user_id,omitempty"`
	LocationID     *uuid.UUID `json:"location_id,omitempty"`
}

// ContactResponse represents the response for contact operations
type ContactResponse struct {
	ID             uuid.UUID  `json:"id"`
	TenantID       uuid.UUID  `json:"tenant_id"`
	FirstName      string     `json:"first_name"`
	LastName       string     `json:"last_name"`
	Email          string     `json:"email"`
	PhoneNumber    string     `json:"phone_number"`
	AddressLine    string     `json:"address_line"`
	City           string     `json:"city"`
	State          string     `json:"state"`
	PostalCode     string     `json:"postal_code"`
	LeadSource     string     `json:"lead_source"`
	ContactNumber  *int       `json:"contact_number"`
	CompositeLabel string     `json:"composite_label"`
	AssignedUserID *uuid.UUID `json:"assigned_user_id"`
	LocationID     *uuid.UUID `json:"location_id"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// ContactListResponse represents a paginated list of contacts
type ContactListResponse struct {
	Contacts []ContactResponse `json:"contacts"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// Create creates a contact in the principal's current tenant. The contact
// number is allocated inside the repository transaction.
func (s *ContactService) Create(p access.Principal, req *CreateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact := &models.Contact{
		TenantID:       access.CurrentTenant(p),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		AddressLine:    req.AddressLine,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		LeadSource:     req.LeadSource,
		AssignedUserID: req.AssignedUserID,
		LocationID:     req.LocationID,
		CreatedBy:      p.UserID,
	}

	if err := s.repo.Create(contact); err != nil {
		if apperrors.IsAllocationConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	if err := s.audit.Record(p, "contact", contact.ID, models.AuditActionCreate, nil); err != nil {
		logger.New().WithError(err).Warn("contact created but audit append failed")
	}

	return s.toResponse(contact), nil
}

// GetByID retrieves a contact visible to the principal
func (s *ContactService) GetByID(p access.Principal, id uuid.UUID) (*ContactResponse, error) {
	contact, err := s.repo.GetByID(p, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return s.toResponse(contact), nil
}

// List retrieves the contacts visible to the principal with pagination
func (s *ContactService) List(p access.Principal, page, pageSize int) (*ContactListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	contacts, total, err := s.repo.List(p, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts: %w", err)
	}

	responses := make([]ContactResponse, len(contacts))
	for i, contact := range contacts {
		responses[i] = *s.toResponse(&contact)
	}

	return &ContactListResponse{
		Contacts: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update updates a contact. Unlike reads, a write against a row the
// principal cannot access is rejected explicitly.
func (s *ContactService) Update(p access.Principal, id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	contact, err := s.repo.GetByID(p, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	if !access.CanMutate(p, access.RowMeta{
		TenantID:       contact.TenantID,
		AssignedUserID: contact.AssignedUserID,
		CreatedBy:      contact.CreatedBy,
		LocationID:     contact.LocationID,
	}) {
		return nil, apperrors.ErrRowAccessDenied
	}

	contact.FirstName = req.FirstName
	contact.LastName = req.LastName
	contact.Email = req.Email
	contact.PhoneNumber = req.PhoneNumber
	contact.AddressLine = req.AddressLine
	contact.City = req.City
	contact.State = req.State
	contact.PostalCode = req.PostalCode
	contact.AssignedUserID = req.AssignedUserID
	contact.LocationID = req.LocationID

	if err := s.repo.Update(contact); err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	if err := s.audit.Record(p, "contact", contact.ID, models.AuditActionUpdate, nil); err != nil {
		logger.New().WithError(err).Warn("contact updated but audit append failed")
	}

	return s.toResponse(contact), nil
}

// toResponse converts a contact model to a response
func (s *ContactService) toResponse(contact *models.Contact) *ContactResponse {
	return &ContactResponse{
		ID:             contact.ID,
		TenantID:       contact.TenantID,
		FirstName:      contact.FirstName,
		LastName:       contact.LastName,
		Email:          contact.Email,
		PhoneNumber:    contact.PhoneNumber,
		AddressLine:    contact.AddressLine,
		City:           contact.City,
		State:          contact.State,
		PostalCode:     contact.PostalCode,
		LeadSource:     contact.LeadSource,
		ContactNumber:  contact.ContactNumber,
		CompositeLabel: contact.CompositeLabel,
		AssignedUserID: contact.AssignedUserID,
		LocationID:     contact.LocationID,
		CreatedAt:      contact.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      contact.UpdatedAt.Format(time.RFC3339),
	}
}
