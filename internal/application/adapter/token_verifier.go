package adapter

import "context"

// TokenClaims holds the identity carried by an externally issued access token.
type TokenClaims struct {
	Provider   string
	ProviderID string
	Username   string
	Email      string
}

// TokenVerifier validates bearer tokens issued by the external OAuth/JWT
// frontend. This service never issues tokens itself.
type TokenVerifier interface {
	// Verify checks the token signature and expiry and returns its claims.
	Verify(ctx context.Context, token string) (*TokenClaims, error)
}
