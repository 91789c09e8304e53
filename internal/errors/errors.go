package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in tenant"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors. Read paths
// never produce it (denied rows are silently filtered out); write paths
// surface it to the caller synchronously.
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// AllocationConflictError is returned when a number allocation keeps losing
// the max+1 race after the bounded retries are exhausted.
type AllocationConflictError struct {
	Kind     string
	Attempts int
}

func (e *AllocationConflictError) Error() string {
	return fmt.Sprintf("%s number allocation failed after %d attempts", e.Kind, e.Attempts)
}

// Is enables errors.Is() comparison for AllocationConflictError
func (e *AllocationConflictError) Is(target error) bool {
	_, ok := target.(*AllocationConflictError)
	return ok
}

// InvalidStatusError represents a pipeline status outside the recognized
// set. Corrective action is an explicit normalization pass, never a silent
// rewrite during reads.
type InvalidStatusError struct {
	Status string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid pipeline status %q", e.Status)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTenantNotFound        = &NotFoundError{Entity: "tenant"}
	ErrLocationNotFound      = &NotFoundError{Entity: "location"}
	ErrUserNotFound          = &NotFoundError{Entity: "user"}
	ErrMembershipNotFound    = &NotFoundError{Entity: "tenant membership"}
	ErrContactNotFound       = &NotFoundError{Entity: "contact"}
	ErrPipelineEntryNotFound = &NotFoundError{Entity: "pipeline entry"}
	ErrJobNotFound           = &NotFoundError{Entity: "job"}
	ErrCounterNotFound       = &NotFoundError{Entity: "sequence counter"}
)

// Already Exists Errors
var (
	ErrTenantExists     = &AlreadyExistsError{Entity: "tenant", Context: "with this name"}
	ErrUserExists       = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	ErrMembershipExists = &AlreadyExistsError{Entity: "tenant membership", Context: "for this user and tenant"}
	ErrLocationExists   = &AlreadyExistsError{Entity: "location", Context: "with this name in the tenant"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid pipeline status")
	ErrInvalidRole             = errors.New("invalid role")
	ErrNumberAlreadyAssigned   = errors.New("number already assigned")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrTenantDeleted           = errors.New("tenant has been deactivated")
)

// Authentication and Authorization Errors
var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrNoActiveMembership = &AuthenticationError{Message: "no active tenant membership for user"}
	ErrTenantMismatch     = &AuthorizationError{Message: "row belongs to a different tenant"}
	ErrRowAccessDenied    = &AuthorizationError{Message: "not allowed to act on this row"}
	ErrAuditImmutable     = &AuthorizationError{Message: "audit log rows cannot be modified"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsAllocationConflict checks if an error is an AllocationConflictError
func IsAllocationConflict(err error) bool {
	var allocErr *AllocationConflictError
	return errors.As(err, &allocErr)
}

// IsInvalidStatus checks if an error is an InvalidStatusError
func IsInvalidStatus(err error) bool {
	var statusErr *InvalidStatusError
	return errors.As(err, &statusErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
