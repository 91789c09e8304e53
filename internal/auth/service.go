package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/chriso789/pitch-1-sub003/internal/access"
	"github.com/chriso789/pitch-1-sub003/internal/config"
	"github.com/chriso789/pitch-1-sub003/internal/database/models"
	apperrors "github.com/chriso789/pitch-1-sub003/internal/errors"
)

// UserReader is the narrow user lookup the auth service needs
type UserReader interface {
	GetByEmail(email string) (*models.User, error)
	GetByID(id uuid.UUID) (*models.User, error)
}

// MembershipReader resolves a user's memberships. Implementations must query
// the membership table directly on the raw DB handle: resolving the
// principal through an access-scoped query would recurse into the very
// predicate being built.
type MembershipReader interface {
	GetActiveByUser(userID uuid.UUID) (*models.TenantMembership, error)
	GetByUserAndTenant(userID, tenantID uuid.UUID) (*models.TenantMembership, error)
	SetActive(userID, tenantID uuid.UUID) error
}

// AuthService provides token issuance and validation. Identity is asserted
// by the surrounding platform (SSO in production, the login endpoint for
// seeded/dev environments); this service turns an identity into claims
// carrying the active tenant and role.
type AuthService struct {
	config      *config.Config
	users       UserReader
	memberships MembershipReader
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID   string `json:"user_id" example:"7d9f28cc-7d52-4f2b-a4b7-7f4e2f0b6c2a"`
	Email    string `json:"email" example:"rep@acmeroofing.com"`
	TenantID string `json:"tenant_id" example:"a81bc81b-dead-4e5d-abff-90865d1e13b1"`
	Role     string `json:"role" example:"sales_rep"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(cfg *config.Config, users UserReader, memberships MembershipReader) *AuthService {
	return &AuthService{
		config:      cfg,
		users:       users,
		memberships: memberships,
	}
}

// Login resolves the user by email and issues a token for their active
// membership
func (s *AuthService) Login(email string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", nil, apperrors.ErrUserNotFound
	}
	if !user.IsActive {
		return "", nil, apperrors.NewAuthenticationError("user is deactivated")
	}

	membership, err := s.memberships.GetActiveByUser(user.ID)
	if err != nil {
		return "", nil, apperrors.ErrNoActiveMembership
	}

	token, err := s.GenerateJWT(user, membership)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// SwitchTenant moves the user's active membership to another tenant they
// belong to and issues a fresh token for it
func (s *AuthService) SwitchTenant(userID, tenantID uuid.UUID) (string, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return "", apperrors.ErrUserNotFound
	}

	membership, err := s.memberships.GetByUserAndTenant(userID, tenantID)
	if err != nil {
		return "", apperrors.ErrMembershipNotFound
	}

	if err := s.memberships.SetActive(userID, tenantID); err != nil {
		return "", fmt.Errorf("failed to activate membership: %w", err)
	}

	token, err := s.GenerateJWT(user, membership)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// GenerateJWT issues a signed token for the user acting under the membership
func (s *AuthService) GenerateJWT(user *models.User, membership *models.TenantMembership) (string, error) {
	now := time.Now()
	expiry := time.Duration(s.config.JWTExpiryHours) * time.Hour
	claims := &AuthClaims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		TenantID: membership.TenantID.String(),
		Role:     string(membership.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "pitch-crm-backend",
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Verify signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// ResolvePrincipal turns validated claims into the access principal. One
// direct membership read picks up the current role and location assignments;
// the claims only pin the user and tenant.
func (s *AuthService) ResolvePrincipal(claims *AuthClaims) (access.Principal, error) {
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return access.Principal{}, apperrors.ErrInvalidToken
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return access.Principal{}, apperrors.ErrUserNotFound
	}

	membership, err := s.memberships.GetActiveByUser(userID)
	if err != nil {
		return access.Principal{}, apperrors.ErrNoActiveMembership
	}

	return access.Principal{
		UserID:         user.ID,
		Email:          user.Email,
		HomeTenantID:   user.HomeTenantID,
		ActiveTenantID: membership.TenantID,
		Role:           membership.Role,
		LocationIDs:    membership.LocationIDs(),
	}, nil
}
