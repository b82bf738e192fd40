package readings

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/google/uuid"
)

type MemoryRepository struct {
	mu   sync.RWMutex
	data map[string]models.Reading
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[string]models.Reading), now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, rd *models.Reading) (*models.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rd.ID = uuid.NewString()
	rd.CreatedAt = r.now().UTC()
	r.data[rd.ID] = *rd

	out := *rd
	return &out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rd, ok := r.data[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return &rd, nil
}

func (r *MemoryRepository) Find(_ context.Context, filter models.ReadingFilter, order models.SortOrder) ([]models.Reading, error) {
	r.mu.RLock()
	result := []models.Reading{}
	for _, rd := range r.data {
		if matches(rd, filter) {
			result = append(result, rd)
		}
	}
	r.mu.RUnlock()

	sort.SliceStable(result, func(i, j int) bool {
		a, b := result[i], result[j]
		if !a.Date.Equal(b.Date) {
			if order == models.DateAsc {
				return a.Date.Before(b.Date)
			}
			return a.Date.After(b.Date)
		}
		if order == models.DateAsc {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return result, nil
}

func matches(rd models.Reading, f models.ReadingFilter) bool {
	if f.UserID != "" && rd.UserID != f.UserID {
		return false
	}
	if f.From != nil && rd.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && rd.Date.After(*f.To) {
		return false
	}
	if f.IsPaid != nil && rd.IsPaid != *f.IsPaid {
		return false
	}
	return true
}

func (r *MemoryRepository) Update(_ context.Context, id string, patch models.ReadingPatch) (*models.Reading, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rd, ok := r.data[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if patch.ColdWater != nil {
		rd.ColdWater = *patch.ColdWater
	}
	if patch.HotWater != nil {
		rd.HotWater = *patch.HotWater
	}
	if patch.Amount != nil {
		rd.Amount = *patch.Amount
	}
	if patch.IsPaid != nil {
		rd.IsPaid = *patch.IsPaid
	}
	r.data[id] = rd
	return &rd, nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.data[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.data, id)
	return nil
}

func (r *MemoryRepository) DeleteByUser(_ context.Context, userID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for id, rd := range r.data {
		if rd.UserID == userID {
			delete(r.data, id)
			n++
		}
	}
	return n, nil
}
