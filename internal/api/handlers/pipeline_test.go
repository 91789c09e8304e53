package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/mocks"
	"github.com/chriso789/pitch-1-sub003/internal/service"
	"github.com/chriso789/pitch-1-sub003/internal/testutils"
)

// PipelineHandlerTestSuite defines the test suite for PipelineHandler
type PipelineHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockPipelineService *mocks.MockPipelineServiceInterface
	handler             *PipelineHandler
	httpSuite           *testutils.HTTPTestSuite
	principal           access.Principal
}

// SetupTest sets up the test suite
func (suite *PipelineHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPipelineService = mocks.NewMockPipelineServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewPipelineHandler(suite.mockPipelineService)

	// Setup HTTP test suite with an authenticated principal
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.principal = access.Principal{
		UserID:       uuid.New(),
		Email:        "admin@acme-roofing.test",
		HomeTenantID: uuid.New(),
		Role:         models.RoleAdmin,
	}
	suite.httpSuite.WithPrincipal(suite.principal)

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	pipeline := v1.Group("/pipeline")
	{
		pipeline.GET("", suite.handler.ListPipelineEntries)
		pipeline.POST("", suite.handler.CreatePipelineEntry)
		pipeline.POST("/normalize-statuses", suite.handler.NormalizeStatuses)
		pipeline.POST("/refresh-labels", suite.handler.RefreshLabels)
		pipeline.GET("/:id", suite.handler.GetPipelineEntry)
		pipeline.PATCH("/:id/status", suite.handler.UpdateStatus)
	}
}

// TearDownTest cleans up after each test
func (suite *PipelineHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreatePipelineEntry tests creating a pipeline entry
func (suite *PipelineHandlerTestSuite) TestCreatePipelineEntry() {
	contactID := uuid.New()
	leadNumber := 1
	contactNumber := 4
	requestBody := map[string]interface{}{
		"contact_id": contactID.String(),
		"title":      "Hail damage estimate",
	}

	expectedResponse := &service.PipelineEntryResponse{
		ID:             uuid.New(),
		TenantID:       suite.principal.HomeTenantID,
		ContactID:      contactID,
		Title:          "Hail damage estimate",
		Status:         models.StatusLead,
		LeadNumber:     &leadNumber,
		ContactNumber:  &contactNumber,
		CompositeLabel: "4-1-0",
	}

	suite.mockPipelineService.EXPECT().
		Create(suite.principal, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pipeline", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.PipelineEntryResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.StatusLead, response.Status)
	assert.Equal(suite.T(), "4-1-0", response.CompositeLabel)
}

// TestCreatePipelineEntryContactNotFound tests creating an entry under an
// invisible contact
func (suite *PipelineHandlerTestSuite) TestCreatePipelineEntryContactNotFound() {
	requestBody := map[string]interface{}{
		"contact_id": uuid.New().String(),
	}

	suite.mockPipelineService.EXPECT().
		Create(suite.principal, gomock.Any()).
		Return(nil, apperrors.ErrContactNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pipeline", requestBody)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestCreatePipelineEntryInvalidStatus tests the 400 mapping for an
// unrecognized status
func (suite *PipelineHandlerTestSuite) TestCreatePipelineEntryInvalidStatus() {
	requestBody := map[string]interface{}{
		"contact_id": uuid.New().String(),
		"status":     "follow_up",
	}

	suite.mockPipelineService.EXPECT().
		Create(suite.principal, gomock.Any()).
		Return(nil, &apperrors.InvalidStatusError{Status: "follow_up"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pipeline", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestGetPipelineEntryNotFound tests getting an invisible entry
func (suite *PipelineHandlerTestSuite) TestGetPipelineEntryNotFound() {
	entryID := uuid.New()

	suite.mockPipelineService.EXPECT().
		GetByID(suite.principal, entryID).
		Return(nil, apperrors.ErrPipelineEntryNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/pipeline/"+entryID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestUpdateStatus tests moving an entry to a new status
func (suite *PipelineHandlerTestSuite) TestUpdateStatus() {
	entryID := uuid.New()
	requestBody := map[string]interface{}{
		"status": "contingency_signed",
	}

	expectedResponse := &service.PipelineEntryResponse{
		ID:     entryID,
		Status: models.StatusContingencySigned,
	}

	suite.mockPipelineService.EXPECT().
		UpdateStatus(suite.principal, entryID, gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/pipeline/"+entryID.String()+"/status", requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.PipelineEntryResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.StatusContingencySigned, response.Status)
}

// TestUpdateStatusRowAccessDenied tests the 403 mapping on a denied write
func (suite *PipelineHandlerTestSuite) TestUpdateStatusRowAccessDenied() {
	entryID := uuid.New()
	requestBody := map[string]interface{}{
		"status": "project",
	}

	suite.mockPipelineService.EXPECT().
		UpdateStatus(suite.principal, entryID, gomock.Any()).
		Return(nil, apperrors.ErrRowAccessDenied).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PATCH", "/api/v1/pipeline/"+entryID.String()+"/status", requestBody)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestNormalizeStatuses tests the normalization report endpoint
func (suite *PipelineHandlerTestSuite) TestNormalizeStatuses() {
	expectedResponse := &service.NormalizeStatusesResponse{
		Normalized: []service.NormalizedEntry{
			{EntryID: uuid.New(), OldStatus: "follow_up", NewStatus: string(models.DefaultPipelineStatus)},
		},
		Count: 1,
	}

	suite.mockPipelineService.EXPECT().
		NormalizeStatuses(suite.principal).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pipeline/normalize-statuses", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.NormalizeStatusesResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), 1, response.Count)
}

// TestNormalizeStatusesForbidden tests the 403 mapping below the admin gate
func (suite *PipelineHandlerTestSuite) TestNormalizeStatusesForbidden() {
	suite.mockPipelineService.EXPECT().
		NormalizeStatuses(suite.principal).
		Return(nil, &apperrors.AuthorizationError{Message: "status normalization requires the admin role"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pipeline/normalize-statuses", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestRefreshLabels tests the label repair endpoint
func (suite *PipelineHandlerTestSuite) TestRefreshLabels() {
	expectedResponse := &service.RefreshLabelsResponse{
		Contacts: 1,
		Entries:  1,
		Jobs:     2,
	}

	suite.mockPipelineService.EXPECT().
		RefreshLabels(suite.principal).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pipeline/refresh-labels", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.RefreshLabelsResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Contacts)
	assert.Equal(suite.T(), int64(2), response.Jobs)
}

// TestRefreshLabelsForbidden tests the 403 mapping below the admin gate
func (suite *PipelineHandlerTestSuite) TestRefreshLabelsForbidden() {
	suite.mockPipelineService.EXPECT().
		RefreshLabels(suite.principal).
		Return(nil, &apperrors.AuthorizationError{Message: "label refresh requires admin role"}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/pipeline/refresh-labels", nil)

	assert.Equal(suite.T(), http.StatusForbidden, recorder.Code)
}

// TestPipelineHandlerTestSuite runs the test suite
func TestPipelineHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineHandlerTestSuite))
}
