package access

import (
	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

// roleRanks orders the permission tiers. Higher ranks include every
// capability of the tiers below them.
var roleRanks = map[models.Role]int{
	models.RoleSalesRep:          1,
	models.RoleCanvasser:         1,
	models.RoleOfficeStaff:       2,
	models.RoleSalesManager:      3,
	models.RoleProductionManager: 3,
	models.RoleAdmin:             4,
	models.RoleOwner:             5,
	models.RoleMaster:            6,
}

// RoleRank returns the hierarchy rank of a role; unknown roles rank zero
func RoleRank(r models.Role) int {
	return roleRanks[r]
}

// CurrentTenant resolves the tenant the principal is operating in: the
// explicitly active tenant if set, else the home tenant. Pure, so it is safe
// to call from inside any row predicate.
func CurrentTenant(p Principal) uuid.UUID {
	if p.ActiveTenantID != uuid.Nil {
		return p.ActiveTenantID
	}
	return p.HomeTenantID
}

// HasRole reports whether the principal's role is a member of the given set,
// where membership is hierarchical: holding a role above every role in the
// set counts ("manager-or-above" includes admin and owner).
func HasRole(p Principal, roles ...models.Role) bool {
	if len(roles) == 0 {
		return false
	}
	minRank := 0
	for _, r := range roles {
		if p.Role == r {
			return true
		}
		rank := RoleRank(r)
		if minRank == 0 || rank < minRank {
			minRank = rank
		}
	}
	return RoleRank(p.Role) >= minRank && RoleRank(p.Role) > 0
}

// HasFullTenantAccess reports whether the role sees every row in its tenant
// regardless of assignment or location
func HasFullTenantAccess(p Principal) bool {
	return HasRole(p, models.RoleSalesManager, models.RoleProductionManager)
}

// RowMeta is the per-row access metadata shared by all tenant-scoped tables
type RowMeta struct {
	TenantID       uuid.UUID
	AssignedUserID *uuid.UUID
	CreatedBy      uuid.UUID
	LocationID     *uuid.UUID
}

// CanAccessRow is the composite row predicate: tenant match AND (full-access
// role OR assigned to the principal OR created by the principal OR the row's
// location is among the principal's locations OR the row carries no location
// restriction). Tenant isolation is absolute for every role except master.
// The ownership checks run before any location comparison so the common case
// never touches the location list.
func CanAccessRow(p Principal, row RowMeta) bool {
	if p.Role == models.RoleMaster {
		return true
	}
	if row.TenantID != CurrentTenant(p) {
		return false
	}
	if HasFullTenantAccess(p) {
		return true
	}
	if row.AssignedUserID != nil && *row.AssignedUserID == p.UserID {
		return true
	}
	if row.CreatedBy == p.UserID {
		return true
	}
	if row.LocationID == nil {
		return true
	}
	return p.AssignedTo(*row.LocationID)
}

// CanMutate gates writes. Same predicate as reads, but the caller gets an
// explicit rejection instead of a silently filtered result.
func CanMutate(p Principal, row RowMeta) bool {
	return CanAccessRow(p, row)
}
