// Package access decides whether a caller may touch a resource.
//
// A Scope is resolved once per request from the verified token and is then
// passed down to every service call that reads or mutates readings.
package access

import (
	"fmt"

	"github.com/dmitrijs2005/waterbill/internal/common"
)

// Role is the caller's role. Only RoleUser and RoleAdmin exist.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole validates a role string coming from storage or a token.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("%w: unknown role %q", common.ErrorValidation, s)
	}
}

func (r Role) String() string { return string(r) }

// Scope identifies who is asking.
type Scope struct {
	UserID string
	Email  string
	Role   Role
}

// NewScope builds a Scope from verified token claims.
func NewScope(userID, email, role string) (Scope, error) {
	r, err := ParseRole(role)
	if err != nil {
		return Scope{}, err
	}
	if userID == "" {
		return Scope{}, common.ErrInvalidToken
	}
	return Scope{UserID: userID, Email: email, Role: r}, nil
}

// IsAdmin reports whether the scope carries the admin role.
func (s Scope) IsAdmin() bool { return s.Role == RoleAdmin }

// OwnerFilter returns the user id a query must be restricted to,
// or "" when the scope sees everything.
func (s Scope) OwnerFilter() string {
	if s.IsAdmin() {
		return ""
	}
	return s.UserID
}

// Decision is the outcome of Resolve.
type Decision int

const (
	Denied Decision = iota
	Allowed
)

// Resolve allows admins unconditionally and everyone else only for their own
// resources.
func Resolve(s Scope, ownerID string) Decision {
	if s.IsAdmin() || (s.UserID != "" && s.UserID == ownerID) {
		return Allowed
	}
	return Denied
}

// Authorize is Resolve expressed as an error: nil or common.ErrorForbidden.
func Authorize(s Scope, ownerID string) error {
	if Resolve(s, ownerID) == Allowed {
		return nil
	}
	return common.ErrorForbidden
}

// RequireAdmin fails with common.ErrorForbidden unless s is an admin.
func RequireAdmin(s Scope) error {
	if !s.IsAdmin() {
		return common.ErrorForbidden
	}
	return nil
}
