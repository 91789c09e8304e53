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

// ContactHandler handles HTTP requests for contacts
type ContactHandler struct {
	contacts service.ContactServiceInterface
	pipeline service.PipelineServiceInterface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts service.ContactServiceInterface, pipeline service.PipelineServiceInterface) *ContactHandler {
	return &ContactHandler{contacts: contacts, pipeline: pipeline}
}

// CreateContact handles POST /api/v1/contacts
// @Summary Create a new contact
// @Description Create a contact in the current tenant; the contact number is allocated atomically with the insert
// @Tags contacts
// @Accept json
// @Produce json
// @Param contact body service.CreateContactRequest true "Contact data"
// @Success 201 {object} service.ContactResponse "Successfully created contact"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Number allocation conflict"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.contacts.Create(principal, &req)
	if err != nil {
		switch {
		case apperrors.IsAllocationConflict(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create contact", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContact handles GET /api/v1/contacts/:id
// @Summary Get contact by ID
// @Description Get a contact visible to the caller; rows outside the caller's scope read as not found
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {object} service.ContactResponse "Successfully retrieved contact"
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [get]
func (h *ContactHandler) GetContact(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID: invalid UUID format"})
		return
	}

	contact, err := h.contacts.GetByID(principal, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrContactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get contact", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// ListContacts handles GET /api/v1/contacts
// @Summary List contacts
// @Description List the contacts visible to the caller with pagination
// @Tags contacts
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.ContactListResponse "Successfully retrieved contacts"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	page, pageSize := paginationParams(c)

	contacts, err := h.contacts.List(principal, page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list contacts", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// UpdateContact handles PUT /api/v1/contacts/:id
// @Summary Update a contact
// @Description Update a contact; writing to a row outside the caller's access is rejected explicitly
// @Tags contacts
// @Accept json
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Param contact body service.UpdateContactRequest true "Contact data"
// @Success 200 {object} service.ContactResponse "Successfully updated contact"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Row access denied"
// @Failure 404 {object} ErrorResponse "Contact not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID: invalid UUID format"})
		return
	}

	var req service.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	contact, err := h.contacts.Update(principal, id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrContactNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case isValidationFailure(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, contact)
}

// ListContactPipeline handles GET /api/v1/contacts/:id/pipeline
// @Summary List a contact's pipeline entries
// @Description List the pipeline entries under a contact, ordered by lead number
// @Tags contacts
// @Produce json
// @Param id path string true "Contact ID (UUID)"
// @Success 200 {array} service.PipelineEntryResponse "Successfully retrieved entries"
// @Failure 400 {object} ErrorResponse "Invalid contact ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /contacts/{id}/pipeline [get]
func (h *ContactHandler) ListContactPipeline(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID: invalid UUID format"})
		return
	}

	entries, err := h.pipeline.ListByContact(principal, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list pipeline entries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, entries)
}
