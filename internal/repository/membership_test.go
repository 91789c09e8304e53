//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MembershipRepositoryTestSuite tests the MembershipRepository
type MembershipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MembershipRepository
	factories     *testutils.FactorySet
	user          *models.User
	tenantA       *models.Tenant
	tenantB       *models.Tenant
}

// SetupSuite runs before all tests in the suite
func (suite *MembershipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewMembershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MembershipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MembershipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenantA = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenantA).Error)
	suite.tenantB = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenantB).Error)

	suite.user = suite.factories.User.WithTenant(suite.tenantA.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.user).Error)
}

// TearDownTest runs after each test
func (suite *MembershipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MembershipRepositoryTestSuite) createMembership(tenantID uuid.UUID, active bool) *models.TenantMembership {
	membership := suite.factories.Membership.ForUser(suite.user.ID, tenantID)
	membership.IsActive = active
	suite.NoError(suite.repo.Create(membership))
	return membership
}

// TestCreateDuplicatePerTenantFails tests the one-membership-per-tenant rule
func (suite *MembershipRepositoryTestSuite) TestCreateDuplicatePerTenantFails() {
	suite.createMembership(suite.tenantA.ID, true)

	dup := suite.factories.Membership.ForUser(suite.user.ID, suite.tenantA.ID)
	err := suite.repo.Create(dup)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetActiveByUser tests retrieving the single active membership
func (suite *MembershipRepositoryTestSuite) TestGetActiveByUser() {
	suite.createMembership(suite.tenantA.ID, true)
	suite.createMembership(suite.tenantB.ID, false)

	active, err := suite.repo.GetActiveByUser(suite.user.ID)

	suite.NoError(err)
	suite.Equal(suite.tenantA.ID, active.TenantID)
}

// TestSetActiveSwitchesTenant tests that activating one membership
// deactivates the rest
func (suite *MembershipRepositoryTestSuite) TestSetActiveSwitchesTenant() {
	suite.createMembership(suite.tenantA.ID, true)
	suite.createMembership(suite.tenantB.ID, false)

	err := suite.repo.SetActive(suite.user.ID, suite.tenantB.ID)
	suite.NoError(err)

	active, err := suite.repo.GetActiveByUser(suite.user.ID)
	suite.NoError(err)
	suite.Equal(suite.tenantB.ID, active.TenantID)

	var activeCount int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.TenantMembership{}).
		Where("user_id = ? AND is_active = true", suite.user.ID).
		Count(&activeCount).Error)
	suite.Equal(int64(1), activeCount)
}

// TestSetActiveUnknownTenant tests switching to a tenant with no membership
func (suite *MembershipRepositoryTestSuite) TestSetActiveUnknownTenant() {
	suite.createMembership(suite.tenantA.ID, true)

	err := suite.repo.SetActive(suite.user.ID, uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestAssignLocation tests location assignments surface through lookups
func (suite *MembershipRepositoryTestSuite) TestAssignLocation() {
	membership := suite.createMembership(suite.tenantA.ID, true)

	location := suite.factories.Location.WithTenant(suite.tenantA.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(location).Error)

	err := suite.repo.AssignLocation(membership.ID, location.ID)
	suite.NoError(err)

	active, err := suite.repo.GetActiveByUser(suite.user.ID)
	suite.NoError(err)
	suite.Equal([]uuid.UUID{location.ID}, active.LocationIDs())
}

// TestMembershipRepositoryTestSuite runs the test suite
func TestMembershipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipRepositoryTestSuite))
}
