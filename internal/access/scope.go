package access

import (
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

// ScopeFor returns the gorm read filter implementing CanAccessRow in SQL.
// Reads never error on denial: rows outside the predicate simply do not
// appear. The scope references only columns of the filtered table itself, so
// applying it can never recurse into another scoped query.
func ScopeFor(p Principal) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Role == models.RoleMaster {
			return db
		}
		db = db.Where("tenant_id = ?", CurrentTenant(p))
		if HasFullTenantAccess(p) {
			return db
		}
		if len(p.LocationIDs) > 0 {
			return db.Where(
				"assigned_user_id = ? OR created_by = ? OR location_id IS NULL OR location_id IN ?",
				p.UserID, p.UserID, p.LocationIDs,
			)
		}
		return db.Where(
			"assigned_user_id = ? OR created_by = ? OR location_id IS NULL",
			p.UserID, p.UserID,
		)
	}
}

// TenantScope filters by tenant only, for tables without per-row assignment
// or location columns (locations, memberships, counters).
func TenantScope(p Principal) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if p.Role == models.RoleMaster {
			return db
		}
		return db.Where("tenant_id = ?", CurrentTenant(p))
	}
}
