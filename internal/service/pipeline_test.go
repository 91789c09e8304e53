package service_test

import (
	"testing"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/mocks"
	"github.com/chriso789/pitch-1-sub003/internal/numbering"
	"github.com/chriso789/pitch-1-sub003/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// PipelineServiceTestSuite defines the test suite for PipelineService
type PipelineServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockPipelineEntryRepositoryInterface
	mockContacts    *mocks.MockContactRepositoryInterface
	mockAudit       *mocks.MockAuditServiceInterface
	pipelineService *service.PipelineService
	validator       *validator.Validate

	tenantID uuid.UUID
	admin    access.Principal
}

// SetupTest sets up the test suite
func (suite *PipelineServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPipelineEntryRepositoryInterface(suite.ctrl)
	suite.mockContacts = mocks.NewMockContactRepositoryInterface(suite.ctrl)
	suite.mockAudit = mocks.NewMockAuditServiceInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.pipelineService = service.NewPipelineService(
		suite.mockRepo, suite.mockContacts, suite.mockAudit, suite.validator)

	suite.tenantID = uuid.New()
	suite.admin = access.Principal{
		UserID:         uuid.New(),
		Email:          "admin@example.com",
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleAdmin,
	}
}

// TearDownTest cleans up after each test
func (suite *PipelineServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePipelineEntry tests creating a pipeline entry
func (suite *PipelineServiceTestSuite) TestCreatePipelineEntry() {
	contactID := uuid.New()
	req := &service.CreatePipelineEntryRequest{
		ContactID: contactID,
		Title:     "Hail damage estimate",
		Status:    "legal_review",
	}

	suite.mockContacts.EXPECT().
		GetByID(suite.admin, contactID).
		Return(&models.Contact{BaseModel: models.BaseModel{ID: contactID}, TenantID: suite.tenantID}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.PipelineEntry) error {
			assert.Equal(suite.T(), suite.tenantID, entry.TenantID)
			assert.Equal(suite.T(), models.StatusLegalReview, entry.Status)
			one := 1
			entry.ID = uuid.New()
			entry.LeadNumber = &one
			entry.ContactNumber = &one
			entry.CompositeLabel = "1-1-0"
			return nil
		}).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(suite.admin, "pipeline_entry", gomock.Any(), models.AuditActionCreate, nil).
		Return(nil).
		Times(1)

	response, err := suite.pipelineService.Create(suite.admin, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), models.StatusLegalReview, response.Status)
	assert.Equal(suite.T(), "1-1-0", response.CompositeLabel)
}

// TestCreatePipelineEntryDefaultsStatus tests that an omitted status starts
// at the first stage
func (suite *PipelineServiceTestSuite) TestCreatePipelineEntryDefaultsStatus() {
	contactID := uuid.New()
	req := &service.CreatePipelineEntryRequest{
		ContactID: contactID,
	}

	suite.mockContacts.EXPECT().
		GetByID(suite.admin, contactID).
		Return(&models.Contact{BaseModel: models.BaseModel{ID: contactID}, TenantID: suite.tenantID}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(entry *models.PipelineEntry) error {
			assert.Equal(suite.T(), models.DefaultPipelineStatus, entry.Status)
			return nil
		}).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(suite.admin, "pipeline_entry", gomock.Any(), models.AuditActionCreate, nil).
		Return(nil).
		Times(1)

	response, err := suite.pipelineService.Create(suite.admin, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusLead, response.Status)
}

// TestCreatePipelineEntryInvalidStatus tests that an unrecognized status is
// rejected before any repository call
func (suite *PipelineServiceTestSuite) TestCreatePipelineEntryInvalidStatus() {
	req := &service.CreatePipelineEntryRequest{
		ContactID: uuid.New(),
		Status:    "follow_up",
	}

	response, err := suite.pipelineService.Create(suite.admin, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidStatus(err))
	assert.Contains(suite.T(), err.Error(), "follow_up")
}

// TestCreatePipelineEntryContactNotVisible tests that a contact outside the
// principal's scope fails the same way as a missing contact
func (suite *PipelineServiceTestSuite) TestCreatePipelineEntryContactNotVisible() {
	contactID := uuid.New()
	req := &service.CreatePipelineEntryRequest{
		ContactID: contactID,
	}

	suite.mockContacts.EXPECT().
		GetByID(suite.admin, contactID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.pipelineService.Create(suite.admin, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrContactNotFound)
}

// TestUpdateStatus tests moving an entry to a new status with an audit row
func (suite *PipelineServiceTestSuite) TestUpdateStatus() {
	entryID := uuid.New()
	existing := &models.PipelineEntry{
		BaseModel:    models.BaseModel{ID: entryID},
		TenantScoped: models.TenantScoped{TenantID: suite.tenantID},
		ContactID:    uuid.New(),
		Status:       models.StatusLead,
	}

	req := &service.UpdateStatusRequest{Status: "contingency_signed"}

	suite.mockRepo.EXPECT().
		GetByID(suite.admin, entryID).
		Return(existing, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		Return(nil).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(suite.admin, "pipeline_entry", entryID, models.AuditActionStatusChange, map[string]string{
			"old_status": "lead",
			"new_status": "contingency_signed",
		}).
		Return(nil).
		Times(1)

	response, err := suite.pipelineService.UpdateStatus(suite.admin, entryID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StatusContingencySigned, response.Status)
}

// TestUpdateStatusInvalid tests that arbitrary strings cannot enter the
// status column through this boundary
func (suite *PipelineServiceTestSuite) TestUpdateStatusInvalid() {
	req := &service.UpdateStatusRequest{Status: "archived"}

	response, err := suite.pipelineService.UpdateStatus(suite.admin, uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidStatus(err))
}

// TestUpdateStatusRowAccessDenied tests that a restricted role cannot move
// an entry it is not attached to
func (suite *PipelineServiceTestSuite) TestUpdateStatusRowAccessDenied() {
	rep := access.Principal{
		UserID:         uuid.New(),
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleCanvasser,
	}

	entryID := uuid.New()
	otherUser := uuid.New()
	locationID := uuid.New()
	existing := &models.PipelineEntry{
		BaseModel:      models.BaseModel{ID: entryID},
		TenantScoped:   models.TenantScoped{TenantID: suite.tenantID},
		ContactID:      uuid.New(),
		Status:         models.StatusLead,
		AssignedUserID: &otherUser,
		CreatedBy:      otherUser,
		LocationID:     &locationID,
	}

	suite.mockRepo.EXPECT().
		GetByID(rep, entryID).
		Return(existing, nil).
		Times(1)

	response, err := suite.pipelineService.UpdateStatus(rep, entryID, &service.UpdateStatusRequest{Status: "closed"})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRowAccessDenied)
}

// TestNormalizeStatuses tests repairing out-of-band statuses with one audit
// row per repaired entry
func (suite *PipelineServiceTestSuite) TestNormalizeStatuses() {
	first := models.PipelineEntry{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		TenantScoped: models.TenantScoped{TenantID: suite.tenantID},
		ContactID:    uuid.New(),
		Status:       "follow_up",
	}
	second := models.PipelineEntry{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		TenantScoped: models.TenantScoped{TenantID: suite.tenantID},
		ContactID:    uuid.New(),
		Status:       "estimate_sent",
	}

	suite.mockRepo.EXPECT().
		FindInvalidStatuses(suite.tenantID).
		Return([]models.PipelineEntry{first, second}, nil).
		Times(1)

	suite.mockRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(entry *models.PipelineEntry) error {
			assert.Equal(suite.T(), models.DefaultPipelineStatus, entry.Status)
			return nil
		}).
		Times(2)

	suite.mockAudit.EXPECT().
		Record(suite.admin, "pipeline_entry", first.ID, models.AuditActionStatusNormalize, map[string]string{
			"old_status": "follow_up",
			"new_status": "lead",
		}).
		Return(nil).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(suite.admin, "pipeline_entry", second.ID, models.AuditActionStatusNormalize, map[string]string{
			"old_status": "estimate_sent",
			"new_status": "lead",
		}).
		Return(nil).
		Times(1)

	response, err := suite.pipelineService.NormalizeStatuses(suite.admin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, response.Count)
	assert.Equal(suite.T(), "follow_up", response.Normalized[0].OldStatus)
	assert.Equal(suite.T(), "lead", response.Normalized[0].NewStatus)
}

// TestNormalizeStatusesRequiresAdmin tests that non-admin roles cannot run
// a normalization pass
func (suite *PipelineServiceTestSuite) TestNormalizeStatusesRequiresAdmin() {
	manager := access.Principal{
		UserID:         uuid.New(),
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleSalesManager,
	}

	response, err := suite.pipelineService.NormalizeStatuses(manager)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestNormalizeStatusesNothingToRepair tests a clean tenant
func (suite *PipelineServiceTestSuite) TestNormalizeStatusesNothingToRepair() {
	suite.mockRepo.EXPECT().
		FindInvalidStatuses(suite.tenantID).
		Return([]models.PipelineEntry{}, nil).
		Times(1)

	response, err := suite.pipelineService.NormalizeStatuses(suite.admin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, response.Count)
	assert.Empty(suite.T(), response.Normalized)
}

// TestRefreshLabels tests the composite label repair pass
func (suite *PipelineServiceTestSuite) TestRefreshLabels() {
	suite.mockRepo.EXPECT().
		RefreshLabels(suite.tenantID).
		Return(numbering.RefreshResult{Contacts: 1, Entries: 2, Jobs: 3}, nil).
		Times(1)

	suite.mockAudit.EXPECT().
		Record(suite.admin, "tenant", suite.tenantID, models.AuditActionLabelRefresh, map[string]int64{
			"contacts": 1,
			"entries":  2,
			"jobs":     3,
		}).
		Return(nil).
		Times(1)

	response, err := suite.pipelineService.RefreshLabels(suite.admin)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), response.Contacts)
	assert.Equal(suite.T(), int64(2), response.Entries)
	assert.Equal(suite.T(), int64(3), response.Jobs)
}

// TestRefreshLabelsRequiresAdmin tests that non-admin roles cannot run the
// label repair
func (suite *PipelineServiceTestSuite) TestRefreshLabelsRequiresAdmin() {
	manager := access.Principal{
		UserID:         uuid.New(),
		Email:          "manager@example.com",
		HomeTenantID:   suite.tenantID,
		ActiveTenantID: suite.tenantID,
		Role:           models.RoleSalesManager,
	}

	response, err := suite.pipelineService.RefreshLabels(manager)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsAuthorization(err))
}

// TestRefreshLabelsNothingToRepair tests that a clean tenant produces no
// audit row
func (suite *PipelineServiceTestSuite) TestRefreshLabelsNothingToRepair() {
	suite.mockRepo.EXPECT().
		RefreshLabels(suite.tenantID).
		Return(numbering.RefreshResult{}, nil).
		Times(1)

	response, err := suite.pipelineService.RefreshLabels(suite.admin)

	assert.NoError(suite.T(), err)
	assert.Zero(suite.T(), response.Contacts)
	assert.Zero(suite.T(), response.Entries)
	assert.Zero(suite.T(), response.Jobs)
}

// TestPipelineServiceTestSuite runs the test suite
func TestPipelineServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineServiceTestSuite))
}
