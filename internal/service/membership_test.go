package service_test

import (
	"testing"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/mocks"
	"github.com/chriso789/pitch-1-sub003/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MembershipServiceTestSuite defines the test suite for MembershipService
type MembershipServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRepo          *mocks.MockMembershipRepositoryInterface
	mockLocations     *mocks.MockLocationRepositoryInterface
	membershipService *service.MembershipService
	validator         *validator.Validate

	tenantID uuid.UUID
	owner    access.Principal
}

// SetupTest sets up the test suite
func (suite *MembershipServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockMembershipRepositoryInterface(suite.ctrl)
	suite.mockLocations = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.membershipService = service.NewMembershipService(
		suite.mockRepo, suite.mockLocations, suite.validator)

	suite.tenantID = uuid.New()
	suite.owner = access.Principal{
		UserID:         uuid.New(),
		Email:          "owner@example.com",
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleOwner,
	}
}

// TearDownTest cleans up after each test
func (suite *MembershipServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMembership tests adding a user to the current tenant
func (suite *MembershipServiceTestSuite) TestCreateMembership() {
	userID := uuid.New()
	req := &service.CreateMembershipRequest{
		UserID: userID,
		Role:   models.RoleSalesRep,
	}

	suite.mockRepo.EXPECT().
		GetByUserAndTenant(userID, suite.tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(m *models.TenantMembership) error {
			assert.Equal(suite.T(), suite.tenantID, m.TenantID)
			assert.Equal(suite.T(), models.RoleSalesRep, m.Role)
			m.ID = uuid.New()
			return nil
		}).
		Times(1)

	response, err := suite.membershipService.Create(suite.owner, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), userID, response.UserID)
	assert.Equal(suite.T(), models.RoleSalesRep, response.Role)
}

// TestCreateMembershipInvalidRole tests that unknown roles are rejected
func (suite *MembershipServiceTestSuite) TestCreateMembershipInvalidRole() {
	req := &service.CreateMembershipRequest{
		UserID: uuid.New(),
		Role:   models.Role("superuser"),
	}

	response, err := suite.membershipService.Create(suite.owner, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidRole)
}

// TestCreateMembershipRequiresAdmin tests that below-admin roles cannot
// manage memberships
func (suite *MembershipServiceTestSuite) TestCreateMembershipRequiresAdmin() {
	manager := access.Principal{
		UserID:         uuid.New(),
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleSalesManager,
	}

	req := &service.CreateMembershipRequest{
		UserID: uuid.New(),
		Role:   models.RoleSalesRep,
	}

	response, err := suite.membershipService.Create(manager, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestCreateMembershipCannotGrantAtOrAboveOwnRank tests the grant ceiling:
// an admin cannot mint another admin or an owner
func (suite *MembershipServiceTestSuite) TestCreateMembershipCannotGrantAtOrAboveOwnRank() {
	admin := access.Principal{
		UserID:         uuid.New(),
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleAdmin,
	}

	req := &service.CreateMembershipRequest{
		UserID: uuid.New(),
		Role:   models.RoleAdmin,
	}

	response, err := suite.membershipService.Create(admin, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
	assert.Contains(suite.T(), err.Error(), "at or above your own")
}

// TestCreateMembershipMasterCanGrantAnyRole tests that the platform role is
// exempt from the grant ceiling
func (suite *MembershipServiceTestSuite) TestCreateMembershipMasterCanGrantAnyRole() {
	master := access.Principal{
		UserID:         uuid.New(),
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleMaster,
	}

	userID := uuid.New()
	req := &service.CreateMembershipRequest{
		UserID: userID,
		Role:   models.RoleOwner,
	}

	suite.mockRepo.EXPECT().
		GetByUserAndTenant(userID, suite.tenantID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	response, err := suite.membershipService.Create(master, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.RoleOwner, response.Role)
}

// TestCreateMembershipDuplicate tests adding a user who is already a member
func (suite *MembershipServiceTestSuite) TestCreateMembershipDuplicate() {
	userID := uuid.New()
	req := &service.CreateMembershipRequest{
		UserID: userID,
		Role:   models.RoleSalesRep,
	}

	existing := &models.TenantMembership{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		TenantScoped: models.TenantScoped{TenantID: suite.tenantID},
		UserID:       userID,
		Role:         models.RoleCanvasser,
	}

	suite.mockRepo.EXPECT().
		GetByUserAndTenant(userID, suite.tenantID).
		Return(existing, nil).
		Times(1)

	response, err := suite.membershipService.Create(suite.owner, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMembershipExists)
}

// TestAssignLocation tests restricting a membership to a branch location
func (suite *MembershipServiceTestSuite) TestAssignLocation() {
	membershipID := uuid.New()
	locationID := uuid.New()

	suite.mockLocations.EXPECT().
		GetByID(locationID).
		Return(&models.Location{
			BaseModel:    models.BaseModel{ID: locationID},
			TenantScoped: models.TenantScoped{TenantID: suite.tenantID},
		}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		AssignLocation(membershipID, locationID).
		Return(nil).
		Times(1)

	err := suite.membershipService.AssignLocation(suite.owner, membershipID, locationID)

	assert.NoError(suite.T(), err)
}

// TestAssignLocationTenantMismatch tests that a location of another tenant
// cannot be attached to a membership of this one
func (suite *MembershipServiceTestSuite) TestAssignLocationTenantMismatch() {
	membershipID := uuid.New()
	locationID := uuid.New()

	suite.mockLocations.EXPECT().
		GetByID(locationID).
		Return(&models.Location{
			BaseModel:    models.BaseModel{ID: locationID},
			TenantScoped: models.TenantScoped{TenantID: uuid.New()},
		}, nil).
		Times(1)

	err := suite.membershipService.AssignLocation(suite.owner, membershipID, locationID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTenantMismatch)
}

// TestAssignLocationNotFound tests assigning a location that does not exist
func (suite *MembershipServiceTestSuite) TestAssignLocationNotFound() {
	membershipID := uuid.New()
	locationID := uuid.New()

	suite.mockLocations.EXPECT().
		GetByID(locationID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.membershipService.AssignLocation(suite.owner, membershipID, locationID)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrLocationNotFound)
}

// TestMembershipServiceTestSuite runs the test suite
func TestMembershipServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MembershipServiceTestSuite))
}
