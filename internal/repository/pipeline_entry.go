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

// PipelineEntryRepository handles database operations for pipeline entries
type PipelineEntryRepository struct {
	db        *gorm.DB
	allocator *numbering.Allocator
}

// NewPipelineEntryRepository creates a new pipeline entry repository
func NewPipelineEntryRepository(db *gorm.DB, allocator *numbering.Allocator) *PipelineEntryRepository {
	return &PipelineEntryRepository{db: db, allocator: allocator}
}

// Create inserts a pipeline entry, allocating its per-contact lead number
// and inheriting the parent's contact number. A missing parent contact is
// tolerated: the entry still commits with a degraded label and is repaired
// once the ancestor data is fixed.
func (r *PipelineEntryRepository) Create(entry *models.PipelineEntry) error {
	if entry.Status == "" {
		entry.Status = models.DefaultPipelineStatus
	}

	return r.allocator.WithRetry("lead", func(attempt int) error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			var contact models.Contact
			err := tx.First(&contact, "id = ?", entry.ContactID).Error
			switch {
			case err == nil:
				entry.ContactNumber = contact.ContactNumber
			case errors.Is(err, gorm.ErrRecordNotFound):
				entry.ContactNumber = nil
				logger.New().WithField("contact_id", entry.ContactID).
					Warn("creating pipeline entry without resolvable contact")
			default:
				return err
			}

			if entry.LeadNumber == nil {
				next, allocErr := r.allocator.NextLeadNumber(tx, entry.ContactID)
				if allocErr != nil {
					return allocErr
				}
				num := next.Int()
				entry.LeadNumber = &num
			}

			entry.CompositeLabel = numbering.FormatComposite(entry.ContactNumber, entry.LeadNumber, nil)
			return tx.Create(entry).Error
		})
	})
}

// GetByID retrieves a pipeline entry visible to the principal
func (r *PipelineEntryRepository) GetByID(p access.Principal, id uuid.UUID) (*models.PipelineEntry, error) {
	var entry models.PipelineEntry
	err := r.db.Scopes(access.ScopeFor(p)).First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List retrieves the pipeline entries visible to the principal with pagination
func (r *PipelineEntryRepository) List(p access.Principal, limit, offset int) ([]models.PipelineEntry, int64, error) {
	var entries []models.PipelineEntry
	var total int64

	if err := r.db.Model(&models.PipelineEntry{}).Scopes(access.ScopeFor(p)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Scopes(access.ScopeFor(p)).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// ListByContact retrieves the contact's entries visible to the principal
func (r *PipelineEntryRepository) ListByContact(p access.Principal, contactID uuid.UUID) ([]models.PipelineEntry, error) {
	var entries []models.PipelineEntry
	err := r.db.Scopes(access.ScopeFor(p)).
		Where("contact_id = ?", contactID).
		Order("lead_number").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Update updates a pipeline entry and refreshes its composite label
func (r *PipelineEntryRepository) Update(entry *models.PipelineEntry) error {
	entry.CompositeLabel = numbering.FormatComposite(entry.ContactNumber, entry.LeadNumber, nil)
	return r.db.Save(entry).Error
}

// RefreshLabels re-syncs ancestor number copies and recomputes every stored
// composite label of the tenant. The whole pass runs in one transaction so a
// reader never sees half-repaired labels.
func (r *PipelineEntryRepository) RefreshLabels(tenantID uuid.UUID) (numbering.RefreshResult, error) {
	var result numbering.RefreshResult
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var refreshErr error
		result, refreshErr = numbering.RefreshCompositeLabels(tx, tenantID)
		return refreshErr
	})
	return result, err
}

// FindInvalidStatuses returns the tenant's entries whose status is outside
// the recognized set. Scans raw rows on purpose: reads must surface the
// corruption, not mask it.
func (r *PipelineEntryRepository) FindInvalidStatuses(tenantID uuid.UUID) ([]models.PipelineEntry, error) {
	valid := models.AllPipelineStatuses()
	statuses := make([]string, 0, len(valid))
	for _, s := range valid {
		statuses = append(statuses, string(s))
	}

	var entries []models.PipelineEntry
	err := r.db.Where("tenant_id = ? AND status NOT IN ?", tenantID, statuses).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
