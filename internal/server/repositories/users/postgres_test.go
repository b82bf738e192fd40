package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/server/access"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
)

const testID = "7f1c2c1e-8e7a-4b8e-9d59-2f4a9d0e6a11"

var userCols = []string{"id", "email", "password", "name", "apartment_number", "role", "created_at"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(email,\s*password,\s*name,\s*apartment_number,\s*role\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5\)\s*RETURNING\s+id,\s*created_at\s*$`

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery(q).
		WithArgs("a@x.io", "hash", "Alice", "12", "user").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(testID, now))

	u := &models.User{Email: "a@x.io", PasswordHash: "hash", Name: "Alice", ApartmentNumber: "12", Role: access.RoleUser}
	got, err := repo.Create(context.Background(), u)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != testID || !got.CreatedAt.Equal(now) {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Create(context.Background(), &models.User{Email: "a@x.io", Role: access.RoleUser})
	if !errors.Is(err, common.ErrorConflict) {
		t.Fatalf("expected ErrorConflict, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT\s+INTO\s+users`).
		WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.User{Email: "a@x.io", Role: access.RoleUser})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByEmail_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+id,\s*email,\s*password,\s*name,\s*apartment_number,\s*role,\s*created_at\s+FROM\s+users\s+WHERE\s+email\s*=\s*\$1\s*$`
	mock.ExpectQuery(q).
		WithArgs("admin@gmail.com").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(testID, "admin@gmail.com", "hash", "Administrator", "", "admin", time.Now()))

	got, err := repo.GetByEmail(context.Background(), "admin@gmail.com")
	if err != nil {
		t.Fatalf("GetByEmail error: %v", err)
	}
	if got.Role != access.RoleAdmin || got.Name != "Administrator" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+email`).
		WithArgs("nobody@x.io").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "nobody@x.io")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}

func TestGetByID_InvalidIDIsNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	_, err := repo.GetByID(context.Background(), "not-a-uuid")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no query expected: %v", err)
	}
}

func TestGetByID_UnknownRole(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM\s+users\s+WHERE\s+id`).
		WithArgs(testID).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(testID, "a@x.io", "hash", "Alice", "12", "superuser", time.Now()))

	_, err := repo.GetByID(context.Background(), testID)
	if err == nil || !regexp.MustCompile(`db error`).MatchString(err.Error()) {
		t.Fatalf("expected db error for unknown role, got %v", err)
	}
}

func TestUpdate_BuildsSetClause(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$1,\s*apartment_number\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$3\s+RETURNING\s+id,`
	mock.ExpectQuery(q).
		WithArgs("Bob", "7", testID).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(testID, "a@x.io", "hash", "Bob", "7", "user", time.Now()))

	name, apt := "Bob", "7"
	got, err := repo.Update(context.Background(), testID, models.UserPatch{Name: &name, ApartmentNumber: &apt})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Bob" || got.ApartmentNumber != "7" {
		t.Fatalf("unexpected user: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdate_EmptyPatchReads(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`^SELECT\s+.+FROM\s+users\s+WHERE\s+id`).
		WithArgs(testID).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(testID, "a@x.io", "hash", "Alice", "12", "user", time.Now()))

	got, err := repo.Update(context.Background(), testID, models.UserPatch{})
	if err != nil || got.Name != "Alice" {
		t.Fatalf("unexpected result: %+v, %v", got, err)
	}
}

func TestDelete(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^DELETE\s+FROM\s+users\s+WHERE\s+id\s*=\s*\$1\s*$`
	mock.ExpectExec(q).WithArgs(testID).WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(context.Background(), testID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	mock.ExpectExec(q).WithArgs(testID).WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(context.Background(), testID); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
