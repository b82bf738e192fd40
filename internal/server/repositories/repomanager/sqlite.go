package repomanager

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/waterbill/internal/dbx"
	"github.com/dmitrijs2005/waterbill/internal/server/migrations"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/readings"
	"github.com/dmitrijs2005/waterbill/internal/server/repositories/users"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const sqlitePragmas = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// SQLiteRepositoryManager vends SQLite-backed repositories for single-node
// deployments and local development.
type SQLiteRepositoryManager struct {
	db   *sql.DB
	conn dbx.DBTX
}

func NewSQLiteRepositoryManager(db *sql.DB) *SQLiteRepositoryManager {
	return &SQLiteRepositoryManager{db: db, conn: db}
}

// OpenSQLite opens the database file named by a sqlite:// DSN.
// "sqlite://:memory:" opens a private in-memory database.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteRepositoryManager, error) {
	path := strings.TrimPrefix(dsn, "sqlite://")
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("open sqlite: database path is required")
	}
	if path != ":memory:" {
		path = filepath.Clean(path)
	}

	db, err := sql.Open("sqlite", path+sqlitePragmas)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// one writer; also keeps a :memory: database alive across calls
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return NewSQLiteRepositoryManager(db), nil
}

func (m *SQLiteRepositoryManager) Users() users.Repository {
	return users.NewSQLiteRepository(m.conn)
}

func (m *SQLiteRepositoryManager) Readings() readings.Repository {
	return readings.NewSQLiteRepository(m.conn)
}

// RunMigrations applies the embedded SQLite goose migrations.
func (m *SQLiteRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.SQLite)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, "sqlite")
}

func (m *SQLiteRepositoryManager) WithinTx(ctx context.Context, fn func(ctx context.Context, m RepositoryManager) error) error {
	if _, nested := m.conn.(*sql.Tx); nested {
		return fn(ctx, m)
	}
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, &SQLiteRepositoryManager{db: m.db, conn: tx})
	})
}

func (m *SQLiteRepositoryManager) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *SQLiteRepositoryManager) Close(context.Context) error {
	return m.db.Close()
}
