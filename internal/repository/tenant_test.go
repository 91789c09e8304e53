//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/chriso789/pitch-1-sub003/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TenantRepositoryTestSuite tests the TenantRepository
type TenantRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TenantRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TenantRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewTenantRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TenantRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TenantRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TenantRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new tenant
func (suite *TenantRepositoryTestSuite) TestCreate() {
	tenant := suite.factories.Tenant.Create()

	err := suite.repo.Create(tenant)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, tenant.ID)
	suite.NotZero(tenant.CreatedAt)
	suite.True(tenant.IsActive())
}

// TestCreateDuplicateName tests creating a tenant with duplicate name
func (suite *TenantRepositoryTestSuite) TestCreateDuplicateName() {
	tenant1 := suite.factories.Tenant.WithName("apex-roofing")
	err := suite.repo.Create(tenant1)
	suite.NoError(err)

	tenant2 := suite.factories.Tenant.WithName("apex-roofing")
	err = suite.repo.Create(tenant2)
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving a tenant by ID
func (suite *TenantRepositoryTestSuite) TestGetByID() {
	tenant := suite.factories.Tenant.Create()
	err := suite.repo.Create(tenant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(tenant.ID)

	suite.NoError(err)
	suite.Equal(tenant.ID, retrieved.ID)
	suite.Equal(tenant.Name, retrieved.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent tenant
func (suite *TenantRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests listing tenants with pagination
func (suite *TenantRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.Tenant.Create()))
	}

	tenants, total, err := suite.repo.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(tenants, 2)
}

// TestUpdate tests updating a tenant
func (suite *TenantRepositoryTestSuite) TestUpdate() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	tenant.DisplayName = "Renamed Roofing"
	tenant.OverheadRate = 0.22
	err := suite.repo.Update(tenant)
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(tenant.ID)
	suite.NoError(err)
	suite.Equal("Renamed Roofing", retrieved.DisplayName)
	suite.InDelta(0.22, retrieved.OverheadRate, 0.0001)
}

// TestSoftDelete tests that deleted tenants disappear from reads but keep their row
func (suite *TenantRepositoryTestSuite) TestSoftDelete() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.repo.Create(tenant))

	err := suite.repo.SoftDelete(tenant.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(tenant.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	// Row survives under the soft delete
	var count int64
	suite.baseTestSuite.DB.Unscoped().Model(tenant).Where("id = ?", tenant.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestTenantRepositoryTestSuite runs the test suite
func TestTenantRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TenantRepositoryTestSuite))
}
