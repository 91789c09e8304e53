//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/numbering"
	"github.com/chriso789/pitch-1-sub003/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// JobRepositoryTestSuite tests the JobRepository and the job number fallback
// ladder
type JobRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *JobRepository
	entryRepo     *PipelineEntryRepository
	contactRepo   *ContactRepository
	factories     *testutils.FactorySet
	tenant        *models.Tenant
	contact       *models.Contact
	entry         *models.PipelineEntry
}

// SetupSuite runs before all tests in the suite
func (suite *JobRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	allocator := numbering.NewAllocator(3)
	suite.repo = NewJobRepository(suite.baseTestSuite.DB, allocator)
	suite.entryRepo = NewPipelineEntryRepository(suite.baseTestSuite.DB, allocator)
	suite.contactRepo = NewContactRepository(suite.baseTestSuite.DB, allocator)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *JobRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *JobRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.tenant = suite.factories.Tenant.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.tenant).Error)

	suite.contact = suite.factories.Contact.WithTenant(suite.tenant.ID)
	suite.NoError(suite.contactRepo.Create(suite.contact))

	suite.entry = suite.factories.PipelineEntry.ForContact(suite.contact)
	suite.NoError(suite.entryRepo.Create(suite.entry))
}

// TearDownTest runs after each test
func (suite *JobRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateUsesLeadScopeWhenChainIntact tests the first ladder rung: the
// entry carries both ancestor numbers, so jobs count up within the entry
func (suite *JobRepositoryTestSuite) TestCreateUsesLeadScopeWhenChainIntact() {
	for want := 1; want <= 2; want++ {
		job := suite.factories.Job.ForEntry(suite.entry)
		err := suite.repo.Create(job)

		suite.NoError(err)
		suite.Require().NotNil(job.JobNumber)
		suite.Equal(want, *job.JobNumber)
		suite.Equal(string(numbering.SourceLeadScope), job.NumberSource)
	}
}

// TestCreateBuildsFullLabel tests the complete C-L-J label on an intact chain
func (suite *JobRepositoryTestSuite) TestCreateBuildsFullLabel() {
	job := suite.factories.Job.ForEntry(suite.entry)
	suite.NoError(suite.repo.Create(job))

	suite.Equal("1-1-1", job.CompositeLabel)
}

// TestCreateFallsBackToTenantCounter tests the second ladder rung: the entry
// exists but its numbering chain is broken, so the tenant counter steps in
func (suite *JobRepositoryTestSuite) TestCreateFallsBackToTenantCounter() {
	// Break the chain below the model layer
	suite.NoError(suite.baseTestSuite.DB.Model(&models.PipelineEntry{}).
		Where("id = ?", suite.entry.ID).
		Update("contact_number", nil).Error)

	job := suite.factories.Job.ForEntry(suite.entry)
	suite.NoError(suite.repo.Create(job))

	suite.Equal(string(numbering.SourceTenantCounter), job.NumberSource)
	suite.Require().NotNil(job.JobNumber)
	suite.Equal(1, *job.JobNumber)

	// Counter is monotonic across degraded allocations
	second := suite.factories.Job.ForEntry(suite.entry)
	suite.NoError(suite.repo.Create(second))
	suite.Equal(2, *second.JobNumber)

	counters := NewSequenceCounterRepository(suite.baseTestSuite.DB)
	counter, err := counters.Get(suite.tenant.ID, models.CounterKindJob)
	suite.NoError(err)
	suite.Equal(2, counter.LastValue)
}

// TestCreateFallsBackToRandomWithoutEntry tests the last ladder rung: no
// resolvable entry at all still yields a numbered job
func (suite *JobRepositoryTestSuite) TestCreateFallsBackToRandomWithoutEntry() {
	job := suite.factories.Job.Create()
	job.TenantID = suite.tenant.ID
	job.PipelineEntryID = uuid.New()

	err := suite.repo.Create(job)

	suite.NoError(err)
	suite.Equal(string(numbering.SourceRandom), job.NumberSource)
	suite.Require().NotNil(job.JobNumber)
	suite.Positive(*job.JobNumber)
	suite.Nil(job.ContactNumber)
	suite.Nil(job.LeadNumber)
}

// TestCreatePreAssignedNumberRespected tests that a manually assigned job
// number bypasses the ladder entirely
func (suite *JobRepositoryTestSuite) TestCreatePreAssignedNumberRespected() {
	nine := 9
	job := suite.factories.Job.ForEntry(suite.entry)
	job.JobNumber = &nine
	job.ContactNumber = suite.entry.ContactNumber
	job.LeadNumber = suite.entry.LeadNumber

	suite.NoError(suite.repo.Create(job))

	suite.Equal(9, *job.JobNumber)
	suite.Equal("1-1-9", job.CompositeLabel)
}

// TestJobRepositoryTestSuite runs the test suite
func TestJobRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(JobRepositoryTestSuite))
}
