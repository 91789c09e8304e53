package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/auth"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
)

// AuthHandler handles HTTP requests for authentication and tenant switching
type AuthHandler struct {
	service *auth.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// LoginResponse represents the login response
type LoginResponse struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// SwitchTenantRequest represents the tenant switch request body
type SwitchTenantRequest struct {
	TenantID string `json:"tenant_id" binding:"required,uuid"`
}

// Login handles POST /api/auth/login
// @Summary Login by email
// @Description Issue a JWT for the user's active tenant membership
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Token issued"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unknown user or no active membership"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	token, user, err := h.service.Login(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var resp LoginResponse
	resp.Token = token
	resp.User.ID = user.ID.String()
	resp.User.Email = user.Email
	resp.User.Name = user.FullName

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/v1/auth/me
// @Summary Current principal
// @Description Return the resolved principal for the presented token
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Resolved principal"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":      principal.UserID,
		"email":        principal.Email,
		"tenant_id":    access.CurrentTenant(principal),
		"role":         principal.Role,
		"location_ids": principal.LocationIDs,
	})
}

// SwitchTenant handles POST /api/v1/auth/switch-tenant
// @Summary Switch active tenant
// @Description Activate another membership of the current user and issue a fresh token for it
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SwitchTenantRequest true "Target tenant"
// @Success 200 {object} map[string]string "New token"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 404 {object} ErrorResponse "No membership in the target tenant"
// @Security BearerAuth
// @Router /auth/switch-tenant [post]
func (h *AuthHandler) SwitchTenant(c *gin.Context) {
	principal, ok := auth.PrincipalFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req SwitchTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid tenant ID: invalid UUID format"})
		return
	}

	token, err := h.service.SwitchTenant(principal.UserID, tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrMembershipNotFound) || errors.Is(err, apperrors.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to switch tenant", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
