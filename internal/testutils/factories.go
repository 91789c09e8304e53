package testutils

import (
	"fmt"
	"time"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"

	"github.com/google/uuid"
)

// TenantFactory provides methods to create test Tenant data
type TenantFactory struct{}

// NewTenantFactory creates a new TenantFactory
func NewTenantFactory() *TenantFactory {
	return &TenantFactory{}
}

// Create creates a test Tenant with default values
func (f *TenantFactory) Create() *models.Tenant {
	id := uuid.New()
	return &models.Tenant{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique name using part of UUID to avoid collisions across tests
		Name:         "test-roofing-" + id.String()[:8],
		DisplayName:  "Test Roofing Co",
		OverheadRate: 0.15,
	}
}

// WithName sets a custom name for the tenant
func (f *TenantFactory) WithName(name string) *models.Tenant {
	tenant := f.Create()
	tenant.Name = name
	tenant.DisplayName = name + " Display Name"
	return tenant
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test Location with default values
func (f *LocationFactory) Create() *models.Location {
	return &models.Location{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantScoped: models.TenantScoped{TenantID: uuid.New()},
		Name:         "Test Branch",
		Region:       "Midwest",
		IsActive:     true,
	}
}

// WithTenant sets the tenant ID for the location
func (f *LocationFactory) WithTenant(tenantID uuid.UUID) *models.Location {
	location := f.Create()
	location.TenantID = tenantID
	return location
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		// Unique email using part of UUID to avoid conflicts
		Email:        fmt.Sprintf("user-%s@test.com", id.String()[:8]),
		FullName:     "Jane Doe",
		PhoneNumber:  "+1-555-0123",
		HomeTenantID: uuid.New(),
		IsActive:     true,
	}
}

// WithTenant sets the home tenant ID for the user
func (f *UserFactory) WithTenant(tenantID uuid.UUID) *models.User {
	user := f.Create()
	user.HomeTenantID = tenantID
	return user
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// MembershipFactory provides methods to create test TenantMembership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test TenantMembership with default values
func (f *MembershipFactory) Create() *models.TenantMembership {
	return &models.TenantMembership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantScoped: models.TenantScoped{TenantID: uuid.New()},
		UserID:       uuid.New(),
		Role:         models.RoleSalesRep,
		IsActive:     true,
	}
}

// ForUser sets the user and tenant on the membership
func (f *MembershipFactory) ForUser(userID, tenantID uuid.UUID) *models.TenantMembership {
	membership := f.Create()
	membership.UserID = userID
	membership.TenantID = tenantID
	return membership
}

// WithRole sets a custom role for the membership
func (f *MembershipFactory) WithRole(role models.Role) *models.TenantMembership {
	membership := f.Create()
	membership.Role = role
	return membership
}

// ContactFactory provides methods to create test Contact data
type ContactFactory struct{}

// NewContactFactory creates a new ContactFactory
func NewContactFactory() *ContactFactory {
	return &ContactFactory{}
}

// Create creates a test Contact with default values. ContactNumber is left
// nil so repository-level allocation kicks in.
func (f *ContactFactory) Create() *models.Contact {
	id := uuid.New()
	return &models.Contact{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantID:    uuid.New(),
		FirstName:   "Pat",
		LastName:    "Homeowner",
		Email:       fmt.Sprintf("contact-%s@test.com", id.String()[:8]),
		PhoneNumber: "+1-555-0199",
		AddressLine: "42 Shingle Street",
		City:        "Springfield",
		State:       "IL",
		PostalCode:  "62701",
		LeadSource:  "door_knock",
		CreatedBy:   uuid.New(),
	}
}

// WithTenant sets the tenant ID for the contact
func (f *ContactFactory) WithTenant(tenantID uuid.UUID) *models.Contact {
	contact := f.Create()
	contact.TenantID = tenantID
	return contact
}

// WithNumber pre-assigns a contact number, bypassing allocation
func (f *ContactFactory) WithNumber(tenantID uuid.UUID, number int) *models.Contact {
	contact := f.WithTenant(tenantID)
	contact.ContactNumber = &number
	return contact
}

// PipelineEntryFactory provides methods to create test PipelineEntry data
type PipelineEntryFactory struct{}

// NewPipelineEntryFactory creates a new PipelineEntryFactory
func NewPipelineEntryFactory() *PipelineEntryFactory {
	return &PipelineEntryFactory{}
}

// Create creates a test PipelineEntry with default values. LeadNumber is
// left nil so repository-level allocation kicks in.
func (f *PipelineEntryFactory) Create() *models.PipelineEntry {
	return &models.PipelineEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantScoped:   models.TenantScoped{TenantID: uuid.New()},
		ContactID:      uuid.New(),
		Title:          "Hail damage re-roof",
		Status:         models.StatusLead,
		EstimatedValue: 18500,
		CreatedBy:      uuid.New(),
	}
}

// ForContact sets the tenant and parent contact on the entry
func (f *PipelineEntryFactory) ForContact(contact *models.Contact) *models.PipelineEntry {
	entry := f.Create()
	entry.TenantID = contact.TenantID
	entry.ContactID = contact.ID
	return entry
}

// WithStatus sets a custom status for the entry
func (f *PipelineEntryFactory) WithStatus(status models.PipelineStatus) *models.PipelineEntry {
	entry := f.Create()
	entry.Status = status
	return entry
}

// JobFactory provides methods to create test Job data
type JobFactory struct{}

// NewJobFactory creates a new JobFactory
func NewJobFactory() *JobFactory {
	return &JobFactory{}
}

// Create creates a test Job with default values. JobNumber is left nil so
// repository-level allocation kicks in.
func (f *JobFactory) Create() *models.Job {
	return &models.Job{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantScoped:    models.TenantScoped{TenantID: uuid.New()},
		PipelineEntryID: uuid.New(),
		Name:            "Full tear-off and replacement",
		ContractValue:   21000,
		CreatedBy:       uuid.New(),
	}
}

// ForEntry sets the tenant and parent pipeline entry on the job
func (f *JobFactory) ForEntry(entry *models.PipelineEntry) *models.Job {
	job := f.Create()
	job.TenantID = entry.TenantID
	job.PipelineEntryID = entry.ID
	return job
}

// AuditLogFactory provides methods to create test AuditLog data
type AuditLogFactory struct{}

// NewAuditLogFactory creates a new AuditLogFactory
func NewAuditLogFactory() *AuditLogFactory {
	return &AuditLogFactory{}
}

// Create creates a test AuditLog with default values
func (f *AuditLogFactory) Create() *models.AuditLog {
	return &models.AuditLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TenantScoped: models.TenantScoped{TenantID: uuid.New()},
		ActorUserID:  uuid.New(),
		EntityType:   "contact",
		EntityID:     uuid.New(),
		Action:       models.AuditActionCreate,
	}
}

// WithTenant sets the tenant ID for the audit log
func (f *AuditLogFactory) WithTenant(tenantID uuid.UUID) *models.AuditLog {
	log := f.Create()
	log.TenantID = tenantID
	return log
}

// FactorySet bundles every factory for convenient test setup
type FactorySet struct {
	Tenant        *TenantFactory
	Location      *LocationFactory
	User          *UserFactory
	Membership    *MembershipFactory
	Contact       *ContactFactory
	PipelineEntry *PipelineEntryFactory
	Job           *JobFactory
	AuditLog      *AuditLogFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Tenant:        NewTenantFactory(),
		Location:      NewLocationFactory(),
		User:          NewUserFactory(),
		Membership:    NewMembershipFactory(),
		Contact:       NewContactFactory(),
		PipelineEntry: NewPipelineEntryFactory(),
		Job:           NewJobFactory(),
		AuditLog:      NewAuditLogFactory(),
	}
}

// CreateFullTenantHierarchy creates a tenant with a location, a user, and an
// active sales_rep membership assigned to that location
func (fs *FactorySet) CreateFullTenantHierarchy() (*models.Tenant, *models.Location, *models.User, *models.TenantMembership) {
	tenant := fs.Tenant.Create()

	location := fs.Location.WithTenant(tenant.ID)

	user := fs.User.WithTenant(tenant.ID)

	membership := fs.Membership.ForUser(user.ID, tenant.ID)
	membership.Locations = []models.MembershipLocation{
		{MembershipID: membership.ID, LocationID: location.ID},
	}

	return tenant, location, user, membership
}
