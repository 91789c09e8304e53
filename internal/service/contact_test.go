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

// ContactServiceTestSuite defines the test suite for ContactService
type ContactServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockContactRepositoryInterface
	mockAudit      *mocks.MockAuditServiceInterface
	contactService *service.ContactService
	validator      *validator.Validate

	tenantID  uuid.UUID
	principal access.Principal
}

// SetupTest sets up the test suite
func (suite *ContactServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditServiceInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.contactService = service.NewContactService(suite.mockRepo, suite.mockAudit, suite.validator)

	suite.tenantID = uuid.New()
	suite.principal = access.Principal{
		UserID:         uuid.New(),
		Email:          "manager@example.com",
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleSalesManager,
	}
}

// TearDownTest cleans up after each test
func (suite *ContactServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateContact tests creating a contact
func (suite *ContactServiceTestSuite) TestCreateContact() {
	req := &service.CreateContactRequest{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     "dana@example.com",
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(contact *models.Contact) error {
			// The repository allocates the number inside its transaction.
			assert.Equal(suite.T(), suite.tenantID, contact.TenantID)
			assert.Equal(suite.T(), suite.principal.UserID, contact.CreatedBy)
			n := 1
			contact.ID = uuid.New()
			contact.ContactNumber = &n
			contact.CompositeLabel = "1-0-0"
			return nil
		}).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(suite.principal, "contact", gomock.Any(), models.AuditActionCreate, nil).
		Return(nil).
		Times(1)

	response, err := suite.contactService.Create(suite.principal, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), suite.tenantID, response.TenantID)
	assert.Equal(suite.T(), req.LastName, response.LastName)
	assert.Equal(suite.T(), 1, *response.ContactNumber)
	assert.Equal(suite.T(), "1-0-0", response.CompositeLabel)
}

// TestCreateContactValidationError tests creating a contact with validation error
func (suite *ContactServiceTestSuite) TestCreateContactValidationError() {
	req := &service.CreateContactRequest{
		FirstName: "Dana",
		LastName:  "", // Empty last name should fail validation
	}

	response, err := suite.contactService.Create(suite.principal, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestCreateContactAllocationConflict tests that an exhausted allocation
// surfaces as a conflict rather than a generic failure
func (suite *ContactServiceTestSuite) TestCreateContactAllocationConflict() {
	req := &service.CreateContactRequest{
		LastName: "Whitfield",
	}

	conflict := &apperrors.AllocationConflictError{Kind: "contact", Attempts: 3}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(conflict).
		Times(1)

	response, err := suite.contactService.Create(suite.principal, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAllocationConflict(err))
}

// TestCreateContactAuditFailureDoesNotFail tests that an audit append failure
// does not roll back the created contact
func (suite *ContactServiceTestSuite) TestCreateContactAuditFailureDoesNotFail() {
	req := &service.CreateContactRequest{
		LastName: "Whitfield",
	}

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(suite.principal, "contact", gomock.Any(), models.AuditActionCreate, nil).
		Return(assert.AnError).
		Times(1)

	response, err := suite.contactService.Create(suite.principal, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
}

// TestGetContactByID tests getting a contact by ID
func (suite *ContactServiceTestSuite) TestGetContactByID() {
	contactID := uuid.New()
	n := 7
	expected := &models.Contact{
		BaseModel:      models.BaseModel{ID: contactID},
		TenantID:       suite.tenantID,
		LastName:       "Whitfield",
		ContactNumber:  &n,
		CompositeLabel: "7-0-0",
	}

	suite.mockRepo.EXPECT().
		GetByID(suite.principal, contactID).
		Return(expected, nil).
		Times(1)

	response, err := suite.contactService.GetByID(suite.principal, contactID)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), contactID, response.ID)
	assert.Equal(suite.T(), "7-0-0", response.CompositeLabel)
}

// TestGetContactByIDNotFound tests that a row outside the principal's scope
// looks identical to a missing row
func (suite *ContactServiceTestSuite) TestGetContactByIDNotFound() {
	contactID := uuid.New()

	suite.mockRepo.EXPECT().
		GetByID(suite.principal, contactID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.contactService.GetByID(suite.principal, contactID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContactNotFound)
}

// TestListContacts tests listing contacts with pagination
func (suite *ContactServiceTestSuite) TestListContacts() {
	contacts := []models.Contact{
		{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: suite.tenantID, LastName: "Whitfield"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, TenantID: suite.tenantID, LastName: "Okafor"},
	}

	suite.mockRepo.EXPECT().
		List(suite.principal, 20, 0).
		Return(contacts, int64(2), nil).
		Times(1)

	response, err := suite.contactService.List(suite.principal, 1, 20)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Contacts, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
}

// TestUpdateContact tests updating a contact the principal can mutate
func (suite *ContactServiceTestSuite) TestUpdateContact() {
	contactID := uuid.New()
	existing := &models.Contact{
		BaseModel: models.BaseModel{ID: contactID},
		TenantID:  suite.tenantID,
		LastName:  "Whitfield",
		CreatedBy: suite.principal.UserID,
	}

	req := &service.UpdateContactRequest{
		FirstName: "Dana",
		LastName:  "Whitfield-Ames",
	}

	suite.mockRepo.EXPECT().
		GetByID(suite.principal, contactID).
		Return(existing, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(suite.principal, "contact", contactID, models.AuditActionUpdate, nil).
		Return(nil).
		Times(1)

	response, err := suite.contactService.Update(suite.principal, contactID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.LastName, response.LastName)
}

// TestUpdateContactRowAccessDenied tests that a restricted role writing to a
// row it is not attached to gets an explicit rejection, not a silent filter
func (suite *ContactServiceTestSuite) TestUpdateContactRowAccessDenied() {
	rep := access.Principal{
		UserID:         uuid.New(),
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleSalesRep,
	}

	contactID := uuid.New()
	otherUser := uuid.New()
	locationID := uuid.New()
	existing := &models.Contact{
		BaseModel:      models.BaseModel{ID: contactID},
		TenantID:       suite.tenantID,
		LastName:       "Whitfield",
		AssignedUserID: &otherUser,
		CreatedBy:      otherUser,
		LocationID:     &locationID,
	}

	req := &service.UpdateContactRequest{
		LastName: "Whitfield-Ames",
	}

	suite.mockRepo.EXPECT().
		GetByID(rep, contactID).
		Return(existing, nil).
		Times(1)

	response, err := suite.contactService.Update(rep, contactID, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRowAccessDenied)
}

// TestContactServiceTestSuite runs the test suite
func TestContactServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ContactServiceTestSuite))
}
