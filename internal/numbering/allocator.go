package numbering

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/logger"
)

// JobNumberSource records which rung of the fallback ladder produced a job
// number. Anything other than SourceLeadScope means the numbering chain was
// degraded at allocation time.
type JobNumberSource string

const (
	SourceLeadScope     JobNumberSource = "lead_scope"
	SourceTenantCounter JobNumberSource = "tenant_counter"
	SourceRandom        JobNumberSource = "random"
)

const uniqueViolationCode = "23505"

// Allocator produces tenant-scoped C-L-J numbers. Numbers come from max+1
// scans over the live rows rather than a sequence table so that manually
// corrected numbers are respected by the next automatic allocation. Every
// method must run inside the same transaction as the row write it numbers.
type Allocator struct {
	maxAttempts int
	randInt     func() int
}

// NewAllocator creates an allocator with the given retry budget for max+1
// races. Budget is clamped to at least one attempt.
func NewAllocator(maxAttempts int) *Allocator {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Allocator{
		maxAttempts: maxAttempts,
		randInt:     func() int { return int(rand.Int31()) },
	}
}

// MaxAttempts returns the retry budget
func (a *Allocator) MaxAttempts() int {
	return a.maxAttempts
}

// NextContactNumber returns 1 + max(contact numbers) for the tenant
func (a *Allocator) NextContactNumber(tx *gorm.DB, tenantID uuid.UUID) (Number, error) {
	var max int
	err := tx.Model(&models.Contact{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(MAX(contact_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return Number(max + 1), nil
}

// NextLeadNumber returns 1 + max(lead numbers) for the contact. Lead numbers
// are scoped per contact: two different contacts may both hold lead 1.
func (a *Allocator) NextLeadNumber(tx *gorm.DB, contactID uuid.UUID) (Number, error) {
	var max int
	err := tx.Model(&models.PipelineEntry{}).
		Where("contact_id = ?", contactID).
		Select("COALESCE(MAX(lead_number), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return Number(max + 1), nil
}

// NextJobNumber walks the fallback ladder for a job number:
//
//  1. the parent entry resolves and carries both ancestor numbers: 1 + max
//     over the entry's jobs;
//  2. the entry resolves but its numbering chain is incomplete: the tenant's
//     job counter row;
//  3. no entry at all: a random positive number, so allocation stays live
//     with no counter context.
//
// Degraded allocations are warn-logged for later repair.
func (a *Allocator) NextJobNumber(tx *gorm.DB, entry *models.PipelineEntry) (Number, JobNumberSource, error) {
	if entry == nil {
		n := Number(a.randInt())
		logger.New().WithField("job_number", n.Int()).
			Warn("allocating random job number: no pipeline entry context")
		countJobSource(SourceRandom)
		return n, SourceRandom, nil
	}

	if entry.ContactNumber != nil && entry.LeadNumber != nil {
		var max int
		err := tx.Model(&models.Job{}).
			Where("pipeline_entry_id = ?", entry.ID).
			Select("COALESCE(MAX(job_number), 0)").
			Scan(&max).Error
		if err != nil {
			return 0, SourceLeadScope, err
		}
		countJobSource(SourceLeadScope)
		return Number(max + 1), SourceLeadScope, nil
	}

	n, err := a.nextCounterValue(tx, entry.TenantID, models.CounterKindJob)
	if err != nil {
		return 0, SourceTenantCounter, err
	}
	logger.New().WithFields(map[string]interface{}{
		"pipeline_entry_id": entry.ID,
		"job_number":        n.Int(),
	}).Warn("allocating job number from tenant counter: numbering chain incomplete")
	countJobSource(SourceTenantCounter)
	return n, SourceTenantCounter, nil
}

// nextCounterValue atomically advances the per-tenant counter row for the
// kind, creating it on first use. The upsert keeps concurrent writers from
// racing on read-modify-write.
func (a *Allocator) nextCounterValue(tx *gorm.DB, tenantID uuid.UUID, kind models.CounterKind) (Number, error) {
	var value int
	err := tx.Raw(`
		INSERT INTO sequence_counters (id, tenant_id, kind, last_value, created_at, updated_at)
		VALUES (?, ?, ?, 1, NOW(), NOW())
		ON CONFLICT (tenant_id, kind)
		DO UPDATE SET last_value = sequence_counters.last_value + 1, updated_at = NOW()
		RETURNING last_value`,
		uuid.New(), tenantID, string(kind)).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return Number(value), nil
}

// WithRetry runs fn until it succeeds, retrying only on unique-constraint
// violations (two writers computing the same max+1). fn must re-read the
// current maximum on each attempt. After the budget is spent the caller gets
// an AllocationConflictError.
func (a *Allocator) WithRetry(kind string, fn func(attempt int) error) error {
	var err error
	for attempt := 1; attempt <= a.maxAttempts; attempt++ {
		err = fn(attempt)
		if err == nil {
			return nil
		}
		if !IsUniqueViolation(err) {
			return err
		}
		allocationRetryCounter.WithLabelValues(kind).Inc()
	}
	allocationConflictCounter.WithLabelValues(kind).Inc()
	return &apperrors.AllocationConflictError{Kind: kind, Attempts: a.maxAttempts}
}

// IsUniqueViolation reports whether err is a Postgres duplicate-key failure
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolationCode
	}
	return strings.Contains(err.Error(), "duplicate key value")
}

// RefreshResult counts the rows whose stored label was recomputed by a
// refresh pass, per table.
type RefreshResult struct {
	Contacts int64
	Entries  int64
	Jobs     int64
}

// RefreshCompositeLabels re-syncs the ancestor number copies held by a
// tenant's pipeline entries and jobs, then recomputes each stored C-L-J
// label from the numbers on the row. Run after out-of-band number
// corrections; labels are materialized, not live. Only rows whose label no
// longer matches its numbers count toward the result.
func RefreshCompositeLabels(tx *gorm.DB, tenantID uuid.UUID) (RefreshResult, error) {
	var result RefreshResult

	// Ancestor copies first, so the label pass below sees corrected numbers
	if err := tx.Exec(`
		UPDATE pipeline_entries e
		SET contact_number = c.contact_number
		FROM contacts c
		WHERE e.tenant_id = ? AND c.id = e.contact_id
		  AND e.contact_number IS DISTINCT FROM c.contact_number`, tenantID).Error; err != nil {
		return result, err
	}
	if err := tx.Exec(`
		UPDATE jobs j
		SET contact_number = e.contact_number, lead_number = e.lead_number
		FROM pipeline_entries e
		WHERE j.tenant_id = ? AND e.id = j.pipeline_entry_id
		  AND (j.contact_number IS DISTINCT FROM e.contact_number
		    OR j.lead_number IS DISTINCT FROM e.lead_number)`, tenantID).Error; err != nil {
		return result, err
	}

	res := tx.Exec(`
		UPDATE contacts
		SET composite_label = COALESCE(contact_number, 0)::text || '-0-0', updated_at = NOW()
		WHERE tenant_id = ?
		  AND composite_label IS DISTINCT FROM COALESCE(contact_number, 0)::text || '-0-0'`, tenantID)
	if res.Error != nil {
		return result, res.Error
	}
	result.Contacts = res.RowsAffected

	res = tx.Exec(`
		UPDATE pipeline_entries
		SET composite_label = COALESCE(contact_number, 0)::text || '-' || COALESCE(lead_number, 0)::text || '-0', updated_at = NOW()
		WHERE tenant_id = ?
		  AND composite_label IS DISTINCT FROM COALESCE(contact_number, 0)::text || '-' || COALESCE(lead_number, 0)::text || '-0'`, tenantID)
	if res.Error != nil {
		return result, res.Error
	}
	result.Entries = res.RowsAffected

	res = tx.Exec(`
		UPDATE jobs
		SET composite_label = COALESCE(contact_number, 0)::text || '-' || COALESCE(lead_number, 0)::text || '-' || COALESCE(job_number, 0)::text, updated_at = NOW()
		WHERE tenant_id = ?
		  AND composite_label IS DISTINCT FROM COALESCE(contact_number, 0)::text || '-' || COALESCE(lead_number, 0)::text || '-' || COALESCE(job_number, 0)::text`, tenantID)
	if res.Error != nil {
		return result, res.Error
	}
	result.Jobs = res.RowsAffected

	return result, nil
}
