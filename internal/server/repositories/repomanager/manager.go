// Package repomanager bundles the user and reading repositories of one
// storage backend and owns that backend's connection lifecycle.
package repomanager

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/waterbill/internal/server/repositories/readings"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/users"
)

// RepositoryManager vends the repositories of a single backend.
type RepositoryManager interface {
	// RunMigrations prepares the schema (SQL migrations or Mongo indexes).
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Readings() readings.Repository
	// WithinTx runs fn with a manager whose repositories share one unit of
	// work. Backends without multi-document transactions run fn directly.
	WithinTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// Open selects a backend by DSN scheme: mongodb:// (and mongodb+srv://),
// postgres:// (and postgresql://), sqlite:// or memory://. dbName is used by
// MongoDB only.
func Open(ctx context.Context, dsn, dbName string) (RepositoryManager, error) {
	switch {
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return OpenMongo(ctx, dsn, dbName)
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return OpenPostgres(ctx, dsn)
	case strings.HasPrefix(dsn, "sqlite://"):
		return OpenSQLite(ctx, dsn)
	case strings.HasPrefix(dsn, "memory://"):
		return NewMemoryRepositoryManager(), nil
	default:
		return nil, fmt.Errorf("unsupported database dsn scheme: %q", schemeOf(dsn))
	}
}

func schemeOf(dsn string) string {
	if i := strings.Index(dsn, "://"); i >= 0 {
		return dsn[:i]
	}
	return dsn
}
