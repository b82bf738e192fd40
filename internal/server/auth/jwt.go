// Package auth issues and verifies access tokens and hashes passwords.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard claims plus the caller's identity and role.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// TokenAuthority signs and verifies HS256 access tokens.
type TokenAuthority struct {
	secret   []byte
	issuer   string
	audience string
	validity time.Duration
	now      func() time.Time
}

func NewTokenAuthority(secret []byte, issuer, audience string, validity time.Duration) *TokenAuthority {
	return &TokenAuthority{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		validity: validity,
		now:      time.Now,
	}
}

// Issue returns a signed token for the given identity.
func (a *TokenAuthority) Issue(userID, email string, role access.Role) (string, error) {
	now := a.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    a.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.validity)),
		},
		UserID: userID,
		Email:  email,
		Role:   string(role),
	}
	if a.audience != "" {
		claims.Audience = jwt.ClaimStrings{a.audience}
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Verify parses tokenString and resolves it to an access.Scope. Expired
// tokens yield common.ErrTokenExpired, everything else common.ErrInvalidToken.
func (a *TokenAuthority) Verify(tokenString string) (access.Scope, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}
	if a.audience != "" {
		opts = append(opts, jwt.WithAudience(a.audience))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return access.Scope{}, common.ErrTokenExpired
		}
		return access.Scope{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	if !token.Valid {
		return access.Scope{}, common.ErrInvalidToken
	}

	scope, err := access.NewScope(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return access.Scope{}, fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
	return scope, nil
}
