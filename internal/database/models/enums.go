package models

// PipelineStatus defines the stages a pipeline entry moves through
type PipelineStatus string

const (
	StatusLead              PipelineStatus = "lead"
	StatusLegalReview       PipelineStatus = "legal_review"
	StatusContingencySigned PipelineStatus = "contingency_signed"
	StatusProject           PipelineStatus = "project"
	StatusCompleted         PipelineStatus = "completed"
	StatusClosed            PipelineStatus = "closed"
	StatusLost              PipelineStatus = "lost"
	StatusCanceled          PipelineStatus = "canceled"
	StatusDuplicate         PipelineStatus = "duplicate"
)

// DefaultPipelineStatus is the stage new entries start in and the target of
// status normalization for unrecognized legacy values.
const DefaultPipelineStatus = StatusLead

// IsValid checks if the PipelineStatus is a member of the recognized set
func (s PipelineStatus) IsValid() bool {
	switch s {
	case StatusLead, StatusLegalReview, StatusContingencySigned, StatusProject,
		StatusCompleted, StatusClosed, StatusLost, StatusCanceled, StatusDuplicate:
		return true
	}
	return false
}

// AllPipelineStatuses returns the recognized status set in pipeline order
func AllPipelineStatuses() []PipelineStatus {
	return []PipelineStatus{
		StatusLead, StatusLegalReview, StatusContingencySigned, StatusProject,
		StatusCompleted, StatusClosed, StatusLost, StatusCanceled, StatusDuplicate,
	}
}

// Role defines the permission tiers within a tenant
type Role string

const (
	RoleSalesRep          Role = "sales_rep"
	RoleCanvasser         Role = "canvasser"
	RoleOfficeStaff       Role = "office_staff"
	RoleSalesManager      Role = "sales_manager"
	RoleProductionManager Role = "production_manager"
	RoleAdmin             Role = "admin"
	RoleOwner             Role = "owner"
	// RoleMaster is the platform-level role; it is the only role with
	// cross-tenant visibility.
	RoleMaster Role = "master"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleSalesRep, RoleCanvasser, RoleOfficeStaff, RoleSalesManager,
		RoleProductionManager, RoleAdmin, RoleOwner, RoleMaster:
		return true
	}
	return false
}

// CounterKind identifies which entity sequence a counter row tracks
type CounterKind string

const (
	CounterKindContact CounterKind = "contact"
	CounterKindLead    CounterKind = "lead"
	CounterKindJob     CounterKind = "job"
)

// IsValid checks if the CounterKind is valid
func (k CounterKind) IsValid() bool {
	switch k {
	case CounterKindContact, CounterKindLead, CounterKindJob:
		return true
	}
	return false
}

// AuditAction identifies what an audit log row records
type AuditAction string

const (
	AuditActionCreate          AuditAction = "create"
	AuditActionUpdate          AuditAction = "update"
	AuditActionDelete          AuditAction = "delete"
	AuditActionStatusChange    AuditAction = "status_change"
	AuditActionStatusNormalize AuditAction = "status_normalize"
	AuditActionLabelRefresh    AuditAction = "label_refresh"
)
