package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/dbx"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/google/uuid"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// SQLiteRepository implements Repository over a dbx.DBTX opened with the
// modernc.org/sqlite driver. Timestamps are stored as Unix milliseconds.
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	id := uuid.NewString()
	created := r.now().UTC().Truncate(time.Millisecond)

	query :=
		`INSERT INTO users (id, email, password, name, apartment_number, role, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		id, user.Email, user.PasswordHash, user.Name, user.ApartmentNumber, string(user.Role), created.UnixMilli())
	if err != nil {
		return nil, translateSQLiteError(err)
	}
	user.ID = id
	user.CreatedAt = created
	return user, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	return scanSQLiteUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return scanSQLiteUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, v any) {
		sets = append(sets, column+" = ?")
		args = append(args, v)
	}
	if patch.Email != nil {
		set("email", *patch.Email)
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.ApartmentNumber != nil {
		set("apartment_number", *patch.ApartmentNumber)
	}
	if patch.PasswordHash != nil {
		set("password", *patch.PasswordHash)
	}
	args = append(args, id)

	query := `UPDATE users SET ` + strings.Join(sets, ", ") + ` WHERE id = ? RETURNING ` + userColumns
	return scanSQLiteUser(r.db.QueryRowContext(ctx, query, args...))
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func scanSQLiteUser(row *sql.Row) (*models.User, error) {
	var (
		u       models.User
		role    string
		created int64
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.ApartmentNumber, &role, &created)
	if err != nil {
		return nil, translateSQLiteError(err)
	}
	if u.Role, err = access.ParseRole(role); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	u.CreatedAt = time.UnixMilli(created).UTC()
	return &u, nil
}

func translateSQLiteError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE {
		return fmt.Errorf("%w: email already registered", common.ErrorConflict)
	}
	return fmt.Errorf("db error: %w", err)
}
