//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/numbering"
	"github.com/chriso789/pitch-1-sub003/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// PipelineEntryRepositoryTestSuite tests the PipelineEntryRepository and the
// per-contact lead number allocation
type PipelineEntryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PipelineEntryRepository
	contactRepo   *ContactRepository
	factories     *testutils.FactorySet
	tenant        *models.Tenant
	contact       *models.Contact
}

// SetupSuite runs before all tests in the suite
func (suite *PipelineEntryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	allocator := numbering.NewAllocator(3)
	suite.repo = NewPipelineEntryRepository(suite.baseTestSuite.DB, allocator)
	suite.contactRepo = NewContactRepository(suite.baseTestSuite.DB, allocator)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PipelineEntryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PipelineEntryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenant = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)

	suite.contact = suite.factories.Contact.WithTenant(suite.tenant.ID)
	suite.NoError(suite.contactRepo.Create(suite.contact))
}

// TearDownTest runs after each test
func (suite *PipelineEntryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *PipelineEntryRepositoryTestSuite) managerPrincipal() access.Principal {
	return access.Principal{
		UserID:         uuid.New(),
		Email:          "manager@test.com",
		HomeTenantID:   suite.tenant.ID,
		ActiveTenantID: suite.tenant.ID,
		Role:           models.RoleSalesManager,
	}
}

// TestCreateAllocatesPerContact tests that lead numbers count up within one
// contact
func (suite *PipelineEntryRepositoryTestSuite) TestCreateAllocatesPerContact() {
	for want := 1; want <= 3; want++ {
		entry := suite.factories.PipelineEntry.ForContact(suite.contact)
		err := suite.repo.Create(entry)

		suite.NoError(err)
		suite.Require().NotNil(entry.LeadNumber)
		suite.Equal(want, *entry.LeadNumber)
	}
}

// TestLeadNumbersIndependentPerContact tests that two contacts each start
// their lead numbering at 1
func (suite *PipelineEntryRepositoryTestSuite) TestLeadNumbersIndependentPerContact() {
	other := suite.factories.Contact.WithTenant(suite.tenant.ID)
	suite.NoError(suite.contactRepo.Create(other))

	first := suite.factories.PipelineEntry.ForContact(suite.contact)
	suite.NoError(suite.repo.Create(first))

	otherFirst := suite.factories.PipelineEntry.ForContact(other)
	suite.NoError(suite.repo.Create(otherFirst))

	suite.Equal(1, *first.LeadNumber)
	suite.Equal(1, *otherFirst.LeadNumber)
}

// TestCreateInheritsContactNumber tests the denormalized ancestor number and
// the resulting label
func (suite *PipelineEntryRepositoryTestSuite) TestCreateInheritsContactNumber() {
	entry := suite.factories.PipelineEntry.ForContact(suite.contact)
	suite.NoError(suite.repo.Create(entry))

	suite.Require().NotNil(entry.ContactNumber)
	suite.Equal(*suite.contact.ContactNumber, *entry.ContactNumber)
	suite.Equal("1-1-0", entry.CompositeLabel)
}

// TestCreateDefaultsStatus tests that an empty status lands on the default
func (suite *PipelineEntryRepositoryTestSuite) TestCreateDefaultsStatus() {
	entry := suite.factories.PipelineEntry.ForContact(suite.contact)
	entry.Status = ""
	suite.NoError(suite.repo.Create(entry))

	suite.Equal(models.StatusLead, entry.Status)
}

// TestCreateToleratesMissingContact tests that an entry pointing at a
// nonexistent contact still commits, with a degraded label
func (suite *PipelineEntryRepositoryTestSuite) TestCreateToleratesMissingContact() {
	entry := suite.factories.PipelineEntry.Create()
	entry.TenantID = suite.tenant.ID
	entry.ContactID = uuid.New()

	err := suite.repo.Create(entry)

	suite.NoError(err)
	suite.Nil(entry.ContactNumber)
	suite.Require().NotNil(entry.LeadNumber)
	suite.Equal(1, *entry.LeadNumber)
	suite.Equal("0-1-0", entry.CompositeLabel)
}

// TestFindInvalidStatuses tests that rows with unrecognized statuses are
// surfaced, and only those
func (suite *PipelineEntryRepositoryTestSuite) TestFindInvalidStatuses() {
	good := suite.factories.PipelineEntry.ForContact(suite.contact)
	suite.NoError(suite.repo.Create(good))

	bad := suite.factories.PipelineEntry.ForContact(suite.contact)
	suite.NoError(suite.repo.Create(bad))

	// Corrupt the status below the model layer, the way legacy imports did
	suite.NoError(suite.baseTestSuite.DB.Model(&models.PipelineEntry{}).
		Where("id = ?", bad.ID).
		Update("status", "follow_up").Error)

	invalid, err := suite.repo.FindInvalidStatuses(suite.tenant.ID)

	suite.NoError(err)
	suite.Require().Len(invalid, 1)
	suite.Equal(bad.ID, invalid[0].ID)
	suite.Equal(models.PipelineStatus("follow_up"), invalid[0].Status)
}

// TestListByContact tests scoped listing ordered by lead number
func (suite *PipelineEntryRepositoryTestSuite) TestListByContact() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.PipelineEntry.ForContact(suite.contact)))
	}

	entries, err := suite.repo.ListByContact(suite.managerPrincipal(), suite.contact.ID)

	suite.NoError(err)
	suite.Require().Len(entries, 3)
	for i, entry := range entries {
		suite.Equal(i+1, *entry.LeadNumber)
	}
}

// TestRefreshLabelsPropagatesCorrectedNumber tests that an out-of-band
// contact number correction flows into the denormalized copies and the
// stored labels of the whole chain
func (suite *PipelineEntryRepositoryTestSuite) TestRefreshLabelsPropagatesCorrectedNumber() {
	entry := suite.factories.PipelineEntry.ForContact(suite.contact)
	suite.NoError(suite.repo.Create(entry))

	jobRepo := NewJobRepository(suite.baseTestSuite.DB, numbering.NewAllocator(3))
	job := suite.factories.Job.ForEntry(entry)
	suite.NoError(jobRepo.Create(job))

	// Correct the contact number below the model layer, the way a manual
	// data fix lands
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Contact{}).
		Where("id = ?", suite.contact.ID).
		Update("contact_number", 7).Error)

	result, err := suite.repo.RefreshLabels(suite.tenant.ID)

	suite.NoError(err)
	suite.Equal(int64(1), result.Contacts)
	suite.Equal(int64(1), result.Entries)
	suite.Equal(int64(1), result.Jobs)

	var refreshedContact models.Contact
	suite.NoError(suite.baseTestSuite.DB.First(&refreshedContact, "id = ?", suite.contact.ID).Error)
	suite.Equal("7-0-0", refreshedContact.CompositeLabel)

	var refreshedEntry models.PipelineEntry
	suite.NoError(suite.baseTestSuite.DB.First(&refreshedEntry, "id = ?", entry.ID).Error)
	suite.Require().NotNil(refreshedEntry.ContactNumber)
	suite.Equal(7, *refreshedEntry.ContactNumber)
	suite.Equal("7-1-0", refreshedEntry.CompositeLabel)

	var refreshedJob models.Job
	suite.NoError(suite.baseTestSuite.DB.First(&refreshedJob, "id = ?", job.ID).Error)
	suite.Require().NotNil(refreshedJob.ContactNumber)
	suite.Equal(7, *refreshedJob.ContactNumber)
	suite.Equal("7-1-1", refreshedJob.CompositeLabel)
}

// TestRefreshLabelsLeavesConsistentRowsAlone tests that a clean tenant
// reports zero repairs
func (suite *PipelineEntryRepositoryTestSuite) TestRefreshLabelsLeavesConsistentRowsAlone() {
	entry := suite.factories.PipelineEntry.ForContact(suite.contact)
	suite.NoError(suite.repo.Create(entry))

	result, err := suite.repo.RefreshLabels(suite.tenant.ID)

	suite.NoError(err)
	suite.Zero(result.Contacts)
	suite.Zero(result.Entries)
	suite.Zero(result.Jobs)
}

// TestPipelineEntryRepositoryTestSuite runs the test suite
func TestPipelineEntryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineEntryRepositoryTestSuite))
}
