package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "contact"}
		assert.Equal(t, "contact not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "contact"}
		err2 := &NotFoundError{Entity: "contact"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "contact"}
		err2 := &NotFoundError{Entity: "job"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrContactNotFound, ErrContactNotFound))
		assert.False(t, errors.Is(ErrContactNotFound, ErrJobNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrContactNotFound))
		assert.False(t, IsNotFound(ErrTenantMismatch))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tenant", Context: "with this name"}
		assert.Equal(t, "tenant already exists with this name", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "tenant"}
		assert.Equal(t, "tenant already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "tenant", Context: "with this name"}
		err2 := &AlreadyExistsError{Entity: "tenant", Context: "with this name"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrTenantExists))
		assert.False(t, IsAlreadyExists(ErrTenantNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrContactNotFound))
	})
}

func TestAllocationConflictError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &AllocationConflictError{Kind: "contact", Attempts: 3}
		assert.Equal(t, "contact number allocation failed after 3 attempts", err.Error())
	})

	t.Run("errors.Is matches any allocation conflict", func(t *testing.T) {
		err := &AllocationConflictError{Kind: "job", Attempts: 3}
		assert.True(t, errors.Is(err, &AllocationConflictError{}))
	})

	t.Run("IsAllocationConflict helper", func(t *testing.T) {
		assert.True(t, IsAllocationConflict(&AllocationConflictError{Kind: "lead", Attempts: 2}))
		assert.False(t, IsAllocationConflict(ErrContactNotFound))
	})

	t.Run("survives wrapping", func(t *testing.T) {
		wrapped := errors.Join(errors.New("outer"), &AllocationConflictError{Kind: "contact", Attempts: 3})
		assert.True(t, IsAllocationConflict(wrapped))
	})
}

func TestInvalidStatusError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &InvalidStatusError{Status: "negotiation"}
		assert.Equal(t, `invalid pipeline status "negotiation"`, err.Error())
	})

	t.Run("IsInvalidStatus helper", func(t *testing.T) {
		assert.True(t, IsInvalidStatus(&InvalidStatusError{Status: "x"}))
		assert.False(t, IsInvalidStatus(ErrInvalidStatus))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewValidationError", func(t *testing.T) {
		err := NewValidationError("field", "message")
		assert.Equal(t, "validation error: field - message", err.Error())
		assert.True(t, IsValidation(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.True(t, IsAuthorization(err))
		assert.False(t, IsAuthorization(ErrNoActiveMembership))
	})
}

func TestAuthorizationSentinels(t *testing.T) {
	t.Run("sentinels are errors", func(t *testing.T) {
		assert.Error(t, ErrTenantMismatch)
		assert.Error(t, ErrRowAccessDenied)
		assert.Error(t, ErrAuditImmutable)
	})

	t.Run("authentication vs authorization", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrNoActiveMembership))
		assert.True(t, IsAuthorization(ErrAuditImmutable))
		assert.False(t, IsAuthorization(ErrNoActiveMembership))
	})
}
