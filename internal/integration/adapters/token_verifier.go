// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/goals-manager/backend/internal/application/adapter"
	domainerror "github.com/goals-manager/backend/internal/domain/error"
)

// IdentityClaims represents the claims carried by tokens the external
// OAuth/JWT frontend issues for this service.
type IdentityClaims struct {
	Provider   string `json:"provider"`
	ProviderID string `json:"provider_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

// tokenVerifier implements the adapter.TokenVerifier interface. It only
// validates tokens; issuing them is the frontend's job.
type tokenVerifier struct {
	secret []byte
}

// NewTokenVerifier creates a new token verifier instance.
func NewTokenVerifier(secret string) adapter.TokenVerifier {
	return &tokenVerifier{
		secret: []byte(secret),
	}
}

// Verify checks the token signature and expiry and returns its claims.
func (v *tokenVerifier) Verify(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token",
			err,
		)
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"invalid token claims",
			domainerror.ErrInvalidToken,
		)
	}

	if claims.Provider == "" || claims.ProviderID == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidToken,
			"token is missing the provider identity",
			domainerror.ErrInvalidToken,
		)
	}

	return &adapter.TokenClaims{
		Provider:   claims.Provider,
		ProviderID: claims.ProviderID,
		Username:   claims.Username,
		Email:      claims.Email,
	}, nil
}
