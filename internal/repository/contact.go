package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/numbering"
)

// ContactRepository handles database operations for contacts. Creation is
// the write-interceptor for contact numbering: the number is allocated and
// the row inserted in one transaction, so a row never commits unnumbered.
type ContactRepository struct {
	db        *gorm.DB
	allocator *numbering.Allocator
}

// NewContactRepository creates a new contact repository
func NewContactRepository(db *gorm.DB, allocator *numbering.Allocator) *ContactRepository {
	return &ContactRepository{db: db, allocator: allocator}
}

// Create inserts a contact, allocating its tenant-scoped contact number if
// unset. A lost max+1 race shows up as a unique violation on the insert and
// is retried with a fresh read, up to the allocator's budget.
func (r *ContactRepository) Create(contact *models.Contact) error {
	if contact.ContactNumber != nil {
		// Number assigned out of band (admin correction); respect it.
		contact.CompositeLabel = numbering.FormatComposite(contact.ContactNumber, nil, nil)
		return r.db.Create(contact).Error
	}

	return r.allocator.WithRetry("contact", func(attempt int) error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			next, err := r.allocator.NextContactNumber(tx, contact.TenantID)
			if err != nil {
				return err
			}
			num := next.Int()
			contact.ContactNumber = &num
			contact.CompositeLabel = numbering.FormatComposite(num, nil, nil)
			return tx.Create(contact).Error
		})
	})
}

// GetByID retrieves a contact visible to the principal
func (r *ContactRepository) GetByID(p access.Principal, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Scopes(access.ScopeFor(p)).First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// List retrieves the contacts visible to the principal with pagination
func (r *ContactRepository) List(p access.Principal, limit, offset int) ([]models.Contact, int64, error) {
	var contacts []models.Contact
	var total int64

	if err := r.db.Model(&models.Contact{}).Scopes(access.ScopeFor(p)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Scopes(access.ScopeFor(p)).
		Limit(limit).Offset(offset).
		Order("contact_number").
		Find(&contacts).Error
	if err != nil {
		return nil, 0, err
	}

	return contacts, total, nil
}

// Update updates a contact. The contact number is immutable once assigned;
// the label is refreshed from whatever number the row carries.
func (r *ContactRepository) Update(contact *models.Contact) error {
	contact.CompositeLabel = numbering.FormatComposite(contact.ContactNumber, nil, nil)
	return r.db.Save(contact).Error
}
