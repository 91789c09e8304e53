package access

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

func principalWith(role models.Role) Principal {
	return Principal{
		UserID:         uuid.New(),
		Email:          "rep@example.com",
		HomeTenantID:   uuid.New(),
		ActiveTenantID: uuid.Nil,
		Role:           role,
	}
}

func TestCurrentTenant(t *testing.T) {
	t.Run("active tenant wins when set", func(t *testing.T) {
		p := principalWith(models.RoleSalesRep)
		p.ActiveTenantID = uuid.New()
		assert.Equal(t, p.ActiveTenantID, CurrentTenant(p))
	})

	t.Run("falls back to home tenant", func(t *testing.T) {
		p := principalWith(models.RoleSalesRep)
		assert.Equal(t, p.HomeTenantID, CurrentTenant(p))
	})

	t.Run("pure and repeatable", func(t *testing.T) {
		// Resolution must terminate without any data-dependent lookups;
		// calling it repeatedly from within a predicate cannot recurse.
		p := principalWith(models.RoleSalesRep)
		for i := 0; i < 1000; i++ {
			assert.Equal(t, p.HomeTenantID, CurrentTenant(p))
		}
	})
}

func TestHasRole(t *testing.T) {
	t.Run("exact membership", func(t *testing.T) {
		p := principalWith(models.RoleOfficeStaff)
		assert.True(t, HasRole(p, models.RoleOfficeStaff))
	})

	t.Run("higher tiers satisfy manager-or-above sets", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleSalesManager, models.RoleProductionManager, models.RoleAdmin, models.RoleOwner, models.RoleMaster} {
			p := principalWith(role)
			assert.True(t, HasRole(p, models.RoleSalesManager), "role %s should satisfy manager-or-above", role)
		}
	})

	t.Run("lower tiers do not", func(t *testing.T) {
		for _, role := range []models.Role{models.RoleSalesRep, models.RoleCanvasser, models.RoleOfficeStaff} {
			p := principalWith(role)
			assert.False(t, HasRole(p, models.RoleSalesManager), "role %s should not satisfy manager-or-above", role)
		}
	})

	t.Run("empty set is never satisfied", func(t *testing.T) {
		p := principalWith(models.RoleOwner)
		assert.False(t, HasRole(p))
	})

	t.Run("unknown role never qualifies", func(t *testing.T) {
		p := principalWith(models.Role("intern"))
		assert.False(t, HasRole(p, models.RoleSalesRep))
	})
}

func TestCanAccessRowTenantIsolation(t *testing.T) {
	// Tenant isolation is absolute: no role other than master may see a row
	// belonging to a different tenant, whatever the row-level grants say.
	foreignRow := func(p Principal) RowMeta {
		return RowMeta{
			TenantID:       uuid.New(),
			AssignedUserID: &p.UserID,
			CreatedBy:      p.UserID,
		}
	}

	for role := range roleRanks {
		if role == models.RoleMaster {
			continue
		}
		t.Run(string(role), func(t *testing.T) {
			p := principalWith(role)
			assert.False(t, CanAccessRow(p, foreignRow(p)))
		})
	}
}

func TestCanAccessRowMaster(t *testing.T) {
	// The platform role is the one sanctioned exception to tenant isolation.
	p := principalWith(models.RoleMaster)
	row := RowMeta{TenantID: uuid.New(), CreatedBy: uuid.New()}
	assert.True(t, CanAccessRow(p, row))
}

func TestCanAccessRowWithinTenant(t *testing.T) {
	tenant := uuid.New()
	somebody := uuid.New()

	newPrincipal := func(role models.Role) Principal {
		return Principal{UserID: uuid.New(), HomeTenantID: tenant, Role: role}
	}

	t.Run("full-access roles see everything in tenant", func(t *testing.T) {
		p := newPrincipal(models.RoleSalesManager)
		row := RowMeta{TenantID: tenant, AssignedUserID: &somebody, CreatedBy: somebody}
		assert.True(t, CanAccessRow(p, row))
	})

	t.Run("assignment grants access", func(t *testing.T) {
		p := newPrincipal(models.RoleSalesRep)
		row := RowMeta{TenantID: tenant, AssignedUserID: &p.UserID, CreatedBy: somebody}
		assert.True(t, CanAccessRow(p, row))
	})

	t.Run("creator keeps access", func(t *testing.T) {
		p := newPrincipal(models.RoleSalesRep)
		row := RowMeta{TenantID: tenant, CreatedBy: p.UserID}
		assert.True(t, CanAccessRow(p, row))
	})

	t.Run("unrestricted rows visible to all tenant members", func(t *testing.T) {
		p := newPrincipal(models.RoleCanvasser)
		row := RowMeta{TenantID: tenant, CreatedBy: somebody}
		assert.True(t, CanAccessRow(p, row))
	})

	t.Run("location restriction honored", func(t *testing.T) {
		loc := uuid.New()
		p := newPrincipal(models.RoleSalesRep)
		row := RowMeta{TenantID: tenant, CreatedBy: somebody, LocationID: &loc}
		assert.False(t, CanAccessRow(p, row))

		p.LocationIDs = []uuid.UUID{loc}
		assert.True(t, CanAccessRow(p, row))
	})

	t.Run("mutation uses the same predicate", func(t *testing.T) {
		p := newPrincipal(models.RoleSalesRep)
		row := RowMeta{TenantID: tenant, CreatedBy: p.UserID}
		assert.True(t, CanMutate(p, row))

		other := RowMeta{TenantID: uuid.New(), CreatedBy: p.UserID}
		assert.False(t, CanMutate(p, other))
	})
}

func TestPrincipalContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		p := principalWith(models.RoleAdmin)
		ctx := WithPrincipal(context.Background(), p)
		got, ok := FromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, p, got)
	})

	t.Run("absent principal", func(t *testing.T) {
		_, ok := FromContext(context.Background())
		assert.False(t, ok)
	})
}
