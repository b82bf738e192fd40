// Package readings persists meter readings.
package readings

import (
	"context"

	"github.com/dmitrijs2005/waterbill/internal/server/models"
)

// Repository is the reading store. Single-document mutations are
// last-write-wins; there is no optimistic locking.
type Repository interface {
	Create(ctx context.Context, r *models.Reading) (*models.Reading, error)
	GetByID(ctx context.Context, id string) (*models.Reading, error)
	// Find returns readings matching filter ordered by date. Date bounds are
	// inclusive.
	Find(ctx context.Context, filter models.ReadingFilter, order models.SortOrder) ([]models.Reading, error)
	Update(ctx context.Context, id string, patch models.ReadingPatch) (*models.Reading, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every reading owned by userID and reports how many
	// were removed.
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
