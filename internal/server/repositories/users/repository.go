// Package users persists User accounts. PostgreSQL, MongoDB and in-memory
// implementations share the Repository contract.
package users

import (
	"context"

	"github.com/dmitrijs2005/waterbill/internal/server/models"
)

// Repository is the user store.
//
// Lookups return common.ErrorNotFound for absent users; Create and Update
// return common.ErrorConflict when the email is already taken.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}
