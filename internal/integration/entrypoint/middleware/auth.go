// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
	"github.com/goals-manager/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// ProviderKey is the context key for the caller's identity provider.
	ProviderKey ContextKey = "provider"
	// ProviderIDKey is the context key for the caller's provider-scoped ID.
	ProviderIDKey ContextKey = "provider_id"
	// UsernameKey is the context key for the caller's username.
	UsernameKey ContextKey = "username"
)

// AuthMiddleware enforces bearer token authentication. Tokens are issued by
// the external OAuth frontend; this service only verifies them.
type AuthMiddleware struct {
	verifier adapter.TokenVerifier
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(verifier adapter.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
	}
}

// Authenticate returns a Gin middleware handler that enforces authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Authorization header is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid authorization header format",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Token is required",
				Code:  string(domainerror.ErrCodeMissingToken),
			})
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error: "Invalid or expired token",
				Code:  string(domainerror.ErrCodeInvalidToken),
			})
			c.Abort()
			return
		}

		c.Set(string(ProviderKey), claims.Provider)
		c.Set(string(ProviderIDKey), claims.ProviderID)
		c.Set(string(UsernameKey), claims.Username)

		c.Next()
	}
}

// GetIdentityFromContext extracts the caller's provider identity from the Gin
// context.
func GetIdentityFromContext(c *gin.Context) (provider, providerID string, ok bool) {
	p, exists := c.Get(string(ProviderKey))
	if !exists {
		return "", "", false
	}
	pid, exists := c.Get(string(ProviderIDKey))
	if !exists {
		return "", "", false
	}
	provider, pOK := p.(string)
	providerID, pidOK := pid.(string)
	return provider, providerID, pOK && pidOK
}

// GetUsernameFromContext extracts the caller's username from the Gin context.
func GetUsernameFromContext(c *gin.Context) (string, bool) {
	username, exists := c.Get(string(UsernameKey))
	if !exists {
		return "", false
	}
	usernameStr, ok := username.(string)
	return usernameStr, ok
}
