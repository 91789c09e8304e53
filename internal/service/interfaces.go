package service

import (
	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TenantServiceInterface defines the interface for tenant service
type TenantServiceInterface interface {
	Create(req *CreateTenantRequest) (*TenantResponse, error)
	GetByID(id uuid.UUID) (*TenantResponse, error)
	GetAll(page, pageSize int) (*TenantListResponse, error)
	Update(id uuid.UUID, req *UpdateTenantRequest) (*TenantResponse, error)
	Deactivate(id uuid.UUID) error
}

// LocationServiceInterface defines the interface for location service
type LocationServiceInterface interface {
	Create(p access.Principal, req *CreateLocationRequest) (*LocationResponse, error)
	GetByTenant(p access.Principal) ([]LocationResponse, error)
}

// MembershipServiceInterface defines the interface for membership service
type MembershipServiceInterface interface {
	Create(p access.Principal, req *CreateMembershipRequest) (*MembershipResponse, error)
	GetByTenant(p access.Principal, page, pageSize int) (*MembershipListResponse, error)
	AssignLocation(p access.Principal, membershipID, locationID uuid.UUID) error
}

// ContactServiceInterface defines the interface for contact service
type ContactServiceInterface interface {
	Create(p access.Principal, req *CreateContactRequest) (*ContactResponse, error)
	GetByID(p access.Principal, id uuid.UUID) (*ContactResponse, error)
	List(p access.Principal, page, pageSize int) (*ContactListResponse, error)
	Update(p access.Principal, id uuid.UUID, req *UpdateContactRequest) (*ContactResponse, error)
}

// PipelineServiceInterface defines the interface for pipeline service
type PipelineServiceInterface interface {
	Create(p access.Principal, req *CreatePipelineEntryRequest) (*PipelineEntryResponse, error)
	GetByID(p access.Principal, id uuid.UUID) (*PipelineEntryResponse, error)
	List(p access.Principal, page, pageSize int) (*PipelineEntryListResponse, error)
	ListByContact(p access.Principal, contactID uuid.UUID) ([]PipelineEntryResponse, error)
	UpdateStatus(p access.Principal, id uuid.UUID, req *UpdateStatusRequest) (*PipelineEntryResponse, error)
	NormalizeStatuses(p access.Principal) (*NormalizeStatusesResponse, error)
	RefreshLabels(p access.Principal) (*RefreshLabelsResponse, error)
}

// JobServiceInterface defines the interface for job service
type JobServiceInterface interface {
	Create(p access.Principal, req *CreateJobRequest) (*JobResponse, error)
	GetByID(p access.Principal, id uuid.UUID) (*JobResponse, error)
	List(p access.Principal, page, pageSize int) (*JobListResponse, error)
	Update(p access.Principal, id uuid.UUID, req *UpdateJobRequest) (*JobResponse, error)
}

// AuditServiceInterface defines the interface for audit log service
type AuditServiceInterface interface {
	List(p access.Principal, page, pageSize int) (*AuditListResponse, error)
	Record(p access.Principal, entityType string, entityID uuid.UUID, action models.AuditAction, detail interface{}) error
}
