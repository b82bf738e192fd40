package repomanager

import (
	"context"

	"github.com/dmitrijs2005/waterbill/internal/server/repositories/readings"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/users"
)

// MemoryRepositoryManager keeps everything in process memory.
type MemoryRepositoryManager struct {
	users    *users.MemoryRepository
	readings *readings.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		readings: readings.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Users() users.Repository { return m.users }
func (m *MemoryRepositoryManager) Readings() readings.Repository { return m.readings }
func (m *MemoryRepositoryManager) Ping(context.Context) error { return nil }
func (m *MemoryRepositoryManager) Close(context.Context) error { return nil }

func (m *MemoryRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	return fn(ctx, m)
}
