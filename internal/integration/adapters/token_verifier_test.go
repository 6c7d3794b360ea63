package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const verifierSecret = "test-jwt-secret-key-for-testing-purposes"

func signToken(t *testing.T, secret string, claims IdentityClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestTokenVerifier(t *testing.T) {
	ctx := context.Background()
	verifier := NewTokenVerifier(verifierSecret)

	fullClaims := IdentityClaims{
		Provider:   "github",
		ProviderID: "gh-1",
		Username:   "alice",
		Email:      "alice@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}

	t.Run("accepts a valid token and returns its claims", func(t *testing.T) {
		claims, err := verifier.Verify(ctx, signToken(t, verifierSecret, fullClaims))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if claims.Provider != "github" || claims.ProviderID != "gh-1" {
			t.Errorf("unexpected provider identity: %s/%s", claims.Provider, claims.ProviderID)
		}
		if claims.Username != "alice" {
			t.Errorf("expected username alice, got %q", claims.Username)
		}
		if claims.Email != "alice@example.com" {
			t.Errorf("expected email alice@example.com, got %q", claims.Email)
		}
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		if _, err := verifier.Verify(ctx, signToken(t, "some-other-secret", fullClaims)); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := fullClaims
		expired.RegisteredClaims = jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}
		if _, err := verifier.Verify(ctx, signToken(t, verifierSecret, expired)); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("rejects a token without a provider identity", func(t *testing.T) {
		anonymous := fullClaims
		anonymous.Provider = ""
		anonymous.ProviderID = ""
		if _, err := verifier.Verify(ctx, signToken(t, verifierSecret, anonymous)); err == nil {
			t.Error("expected an error")
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		if _, err := verifier.Verify(ctx, "not.a.token"); err == nil {
			t.Error("expected an error")
		}
	})
}
