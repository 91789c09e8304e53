package repository

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/logger"
	"github.com/chriso789/pitch-1-sub003/internal/numbering"
)

// JobRepository handles database operations for jobs
type JobRepository struct {
	db        *gorm.DB
	allocator *numbering.Allocator
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB, allocator *numbering.Allocator) *JobRepository {
	return &JobRepository{db: db, allocator: allocator}
}

// Create inserts a job, allocating its number from the pipeline entry's scope
// when the numbering chain is intact and falling back down the ladder when it
// is not. The chosen source is recorded on the row.
func (r *JobRepository) Create(job *models.Job) error {
	if job.JobNumber != nil {
		job.CompositeLabel = numbering.FormatComposite(job.ContactNumber, job.LeadNumber, job.JobNumber)
		return r.db.Create(job).Error
	}

	return r.allocator.WithRetry("job", func(attempt int) error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			var entryRef *models.PipelineEntry
			var entry models.PipelineEntry
			err := tx.First(&entry, "id = ?", job.PipelineEntryID).Error
			switch {
			case err == nil:
				entryRef = &entry
				job.ContactNumber = entry.ContactNumber
				job.LeadNumber = entry.LeadNumber
			case errors.Is(err, gorm.ErrRecordNotFound):
				logger.New().WithField("pipeline_entry_id", job.PipelineEntryID).
					Warn("creating job without resolvable pipeline entry")
			default:
				return err
			}

			next, source, allocErr := r.allocator.NextJobNumber(tx, entryRef)
			if allocErr != nil {
				return allocErr
			}
			num := next.Int()
			job.JobNumber = &num
			job.NumberSource = string(source)
			job.CompositeLabel = numbering.FormatComposite(job.ContactNumber, job.LeadNumber, job.JobNumber)
			return tx.Create(job).Error
		})
	})
}

// GetByID retrieves a job visible to the principal
func (r *JobRepository) GetByID(p access.Principal, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	err := r.db.Scopes(access.ScopeFor(p)).First(&job, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// List retrieves the jobs visible to the principal with pagination
func (r *JobRepository) List(p access.Principal, limit, offset int) ([]models.Job, int64, error) {
	var jobs []models.Job
	var total int64

	if err := r.db.Model(&models.Job{}).Scopes(access.ScopeFor(p)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Scopes(access.ScopeFor(p)).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// Update updates a job and refreshes its composite label
func (r *JobRepository) Update(job *models.Job) error {
	job.CompositeLabel = numbering.FormatComposite(job.ContactNumber, job.LeadNumber, job.JobNumber)
	return r.db.Save(job).Error
}
