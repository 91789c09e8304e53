package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
)

// SequenceCounterRepository reads the per-tenant fallback counter rows.
// Advancing a counter happens only inside an allocation transaction, so the
// repository exposes no write path.
type SequenceCounterRepository struct {
	db *gorm.DB
}

// NewSequenceCounterRepository creates a new sequence counter repository
func NewSequenceCounterRepository(db *gorm.DB) *SequenceCounterRepository {
	return &SequenceCounterRepository{db: db}
}

// Get retrieves the tenant's counter row for the kind
func (r *SequenceCounterRepository) Get(tenantID uuid.UUID, kind models.CounterKind) (*models.SequenceCounter, error) {
	var counter models.SequenceCounter
	err := r.db.First(&counter, "tenant_id = ? AND kind = ?", tenantID, string(kind)).Error
	if err != nil {
		return nil, err
	}
	return &counter, nil
}
