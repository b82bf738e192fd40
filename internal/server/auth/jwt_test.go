package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndVerify_Success(t *testing.T) {
	t.Parallel()

	a := NewTokenAuthority([]byte("super-secret"), "waterbill", "clients", time.Hour)

	tok, err := a.Issue("user-123", "a@x.io", access.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	scope, err := a.Verify(tok)
	if err != nil {
		t.Fatalf("Verify error: %v", err)
	}
	want := access.Scope{UserID: "user-123", Email: "a@x.io", Role: access.RoleAdmin}
	if scope != want {
		t.Fatalf("scope mismatch: got %+v want %+v", scope, want)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	a := NewTokenAuthority([]byte("secret"), "waterbill", "", time.Minute)
	a.now = func() time.Time { return time.Now().Add(-time.Hour) }
	tok, err := a.Issue("u1", "", access.RoleUser)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	a.now = time.Now
	if _, err := a.Verify(tok); !errors.Is(err, common.ErrTokenExpired) {
		t.Fatalf("expected common.ErrTokenExpired, got %v", err)
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := NewTokenAuthority([]byte("right"), "", "", time.Hour).Issue("u2", "", access.RoleUser)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	_, err = NewTokenAuthority([]byte("wrong"), "", "", time.Hour).Verify(tok)
	if !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_WrongIssuerOrAudience(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := NewTokenAuthority(secret, "other", "clients", time.Hour).Issue("u", "", access.RoleUser)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}
	if _, err := NewTokenAuthority(secret, "waterbill", "clients", time.Hour).Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("issuer: expected ErrInvalidToken, got %v", err)
	}
	if _, err := NewTokenAuthority(secret, "other", "web", time.Hour).Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("audience: expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_UnknownRole(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		UserID:           "u",
		Role:             "root",
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := NewTokenAuthority(secret, "", "", time.Hour).Verify(tok); !errors.Is(err, common.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestVerify_Malformed(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenAuthority([]byte("k"), "", "", time.Hour).Verify("not.a.jwt"); err == nil {
		t.Fatalf("expected error for malformed token, got nil")
	}
}
