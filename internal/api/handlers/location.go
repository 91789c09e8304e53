package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chriso789/pitch-1-sub003/internal/auth"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
	"github.com/chriso789/pitch-1-sub003/internal/service"
)

// LocationHandler handles HTTP requests for branch locations
type LocationHandler struct {
	service service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(service service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{service: service}
}

// CreateLocation handles POST /api/v1/locations
// @Summary Create a new location
// @Description Create a branch location in the current tenant (admin or above)
// @Tags locations
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} service.LocationResponse "Successfully created location"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Insufficient role"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	location, err := h.service.Create(principal, &req)
	if err != nil {
		if apperrors.IsAuthorization(err) {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}
		if isValidationFailure(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create location", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, location)
}

// ListLocations handles GET /api/v1/locations
// @Summary List locations
// @Description List the branch locations of the current tenant
// @Tags locations
// @Produce json
// @Success 200 {array} service.LocationResponse "Successfully retrieved locations"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	locations, err := h.service.GetByTenant(principal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list locations", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, locations)
}
