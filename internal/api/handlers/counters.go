package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/auth"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	"github.com/chriso789/pitch-1-sub003/internal/repository"
)

// CounterHandler exposes the tenant's fallback sequence counters. Counters
// only advance during degraded job allocations, so a non-zero value here is
// an operator signal that numbering chains need repair. Like the health
// handler it reads storage directly; there is no mutation surface.
type CounterHandler struct {
	counters repository.SequenceCounterRepositoryInterface
}

// NewCounterHandler creates a new counter handler
func NewCounterHandler(counters repository.SequenceCounterRepositoryInterface) *CounterHandler {
	return &CounterHandler{counters: counters}
}

// CounterState reports one counter row of the tenant
type CounterState struct {
	Kind      string `json:"kind"`
	LastValue int    `json:"last_value"`
}

// ListCounters handles GET /api/v1/counters
// @Summary List fallback sequence counters
// @Description Report the current tenant's per-kind fallback counter values; kinds that never fell back are omitted (admin or above)
// @Tags counters
// @Produce json
// @Success 200 {array} CounterState "Counter states"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /counters [get]
func (h *CounterHandler) ListCounters(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	tenantID := access.CurrentTenant(principal)
	kinds := []models.CounterKind{models.CounterKindContact, models.CounterKindLead, models.CounterKindJob}

	states := make([]CounterState, 0, len(kinds))
	for _, kind := range kinds {
		counter, err := h.counters.Get(tenantID, kind)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read counters", "details": err.Error()})
			return
		}
		states = append(states, CounterState{Kind: string(kind), LastValue: counter.LastValue})
	}

	c.JSON(http.StatusOK, states)
}
