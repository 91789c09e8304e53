package access

import (
	"context"

	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

type contextKey string

const principalKey contextKey = "access_principal"

// Principal is the resolved identity every access decision is made against.
// It is built once per request (JWT claims plus one membership lookup on the
// raw DB handle) and then carried in the context. Resolution deliberately
// never goes through ScopeFor: reading the membership table through its own
// row filter is how the historical recursion defect happened.
type Principal struct {
	UserID         uuid.UUID
	Email          string
	HomeTenantID   uuid.UUID
	ActiveTenantID uuid.UUID
	Role           models.Role
	LocationIDs    []uuid.UUID
}

// WithPrincipal returns a context carrying the principal
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext extracts the principal set by the auth middleware
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}

// AssignedTo reports whether the principal is assigned to the given location
func (p Principal) AssignedTo(locationID uuid.UUID) bool {
	for _, id := range p.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}
