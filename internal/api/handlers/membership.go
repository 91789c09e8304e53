package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/auth"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/service"
)

// MembershipHandler handles HTTP requests for tenant memberships
type MembershipHandler struct {
	service service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(service service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// AssignLocationRequest represents the location assignment request body
type AssignLocationRequest struct {
	LocationID string `json:"location_id" binding:"required,uuid"`
}

// CreateMembership handles POST /api/v1/memberships
// @Summary Add a user to the current tenant
// @Description Create a membership with a role below the caller's own
// @Tags memberships
// @Accept json
// @Produce json
// @Param membership body service.CreateMembershipRequest true "Membership data"
// @Success 201 {object} service.MembershipResponse "Successfully created membership"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient role or grant above own rank"
// @Failure 409 {object} ErrorResponse "Membership already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /memberships [post]
func (h *MembershipHandler) CreateMembership(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	membership, err := h.service.Create(principal, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrMembershipExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create membership", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// ListMemberships handles GET /api/v1/memberships
// @Summary List memberships
// @Description List the memberships of the current tenant with pagination
// @Tags memberships
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.MembershipListResponse "Successfully retrieved memberships"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /memberships [get]
func (h *MembershipHandler) ListMemberships(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, pageSize := paginationParams(c)

	memberships, err := h.service.GetByTenant(principal, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list memberships", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// AssignLocation handles POST /api/v1/memberships/:id/locations
// @Summary Assign a location to a membership
// @Description Restrict a membership to a branch location of the same tenant
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Membership ID (UUID)"
// @Param request body AssignLocationRequest true "Location to assign"
// @Success 204 "Location assigned"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Insufficient role or cross-tenant location"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /memberships/{id}/locations [post]
func (h *MembershipHandler) AssignLocation(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	membershipID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid membership ID: invalid UUID format"})
		return
	}

	var req AssignLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	locationID, err := uuid.Parse(req.LocationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location ID: invalid UUID format"})
		return
	}

	if err := h.service.AssignLocation(principal, membershipID, locationID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrLocationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign location", "details": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
