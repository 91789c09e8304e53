package repository

import (
	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/numbering"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TenantRepositoryInterface defines the interface for tenant repository operations
type TenantRepositoryInterface interface {
	Create(tenant *models.Tenant) error
	GetByID(id uuid.UUID) (*models.Tenant, error)
	GetByName(name string) (*models.Tenant, error)
	GetAll(limit, offset int) ([]models.Tenant, int64, error)
	Update(tenant *models.Tenant) error
	SoftDelete(id uuid.UUID) error
}

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetByTenant(tenantID uuid.UUID) ([]models.Location, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

// MembershipRepositoryInterface defines the interface for tenant membership
// repository operations. Lookups run on the raw DB handle, never through an
// access scope: the membership table is the source row predicates resolve
// against, so filtering it through those predicates would recurse.
type MembershipRepositoryInterface interface {
	Create(membership *models.TenantMembership) error
	GetActiveByUser(userID uuid.UUID) (*models.TenantMembership, error)
	GetByUserAndTenant(userID, tenantID uuid.UUID) (*models.TenantMembership, error)
	GetByTenant(tenantID uuid.UUID, limit, offset int) ([]models.TenantMembership, int64, error)
	SetActive(userID, tenantID uuid.UUID) error
	AssignLocation(membershipID, locationID uuid.UUID) error
}

// ContactRepositoryInterface defines the interface for contact repository operations
type ContactRepositoryInterface interface {
	Create(contact *models.Contact) error
	GetByID(p access.Principal, id uuid.UUID) (*models.Contact, error)
	List(p access.Principal, limit, offset int) ([]models.Contact, int64, error)
	Update(contact *models.Contact) error
}

// PipelineEntryRepositoryInterface defines the interface for pipeline entry repository operations
type PipelineEntryRepositoryInterface interface {
	Create(entry *models.PipelineEntry) error
	GetByID(p access.Principal, id uuid.UUID) (*models.PipelineEntry, error)
	List(p access.Principal, limit, offset int) ([]models.PipelineEntry, int64, error)
	ListByContact(p access.Principal, contactID uuid.UUID) ([]models.PipelineEntry, error)
	Update(entry *models.PipelineEntry) error
	FindInvalidStatuses(tenantID uuid.UUID) ([]models.PipelineEntry, error)
	RefreshLabels(tenantID uuid.UUID) (numbering.RefreshResult, error)
}

// JobRepositoryInterface defines the interface for job repository operations
type JobRepositoryInterface interface {
	Create(job *models.Job) error
	GetByID(p access.Principal, id uuid.UUID) (*models.Job, error)
	List(p access.Principal, limit, offset int) ([]models.Job, int64, error)
	Update(job *models.Job) error
}

// SequenceCounterRepositoryInterface defines the interface for sequence counter lookups
type SequenceCounterRepositoryInterface interface {
	Get(tenantID uuid.UUID, kind models.CounterKind) (*models.SequenceCounter, error)
}

// AuditLogRepositoryInterface defines the interface for audit log operations.
// Append and read only: the type deliberately has no update or delete.
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
	List(p access.Principal, limit, offset int) ([]models.AuditLog, int64, error)
}
