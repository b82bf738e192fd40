// Package models defines server-side data models persisted by the repositories.
package models

import (
	"time"

	"github.com/dmitrijs2005/waterbill/internal/server/access"
)

// User is a registered resident or administrator.
type User struct {
	ID              string
	Email           string
	PasswordHash    string
	Name            string
	ApartmentNumber string
	Role            access.Role
	CreatedAt       time.Time
}

// UserPatch lists profile fields to change. Nil fields are left untouched.
type UserPatch struct {
	Name            *string
	ApartmentNumber *string
	Email           *string
	PasswordHash    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Name == nil && p.ApartmentNumber == nil && p.Email == nil && p.PasswordHash == nil
}
