package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chriso789/pitch-1-sub003/internal/auth"
	"github.com/chriso789/pitch-1-sub003/internal/service"
)

// AuditHandler handles HTTP requests for the audit log. Read only: the
// audit log has no mutation endpoints anywhere in the API.
type AuditHandler struct {
	service service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{service: service}
}

// ListAuditLogs handles GET /api/v1/audit-logs
// @Summary List audit log entries
// @Description List the audit log of the current tenant, newest first (masters see all tenants)
// @Tags audit
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.AuditListResponse "Successfully retrieved audit log"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, pageSize := paginationParams(c)

	logs, err := h.service.List(principal, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list audit logs", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, logs)
}
