package readings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/dbx"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/google/uuid"
)

// SQLiteRepository implements Repository over a dbx.DBTX opened with the
// modernc.org/sqlite driver. Dates are stored as Unix milliseconds and
// amounts as decimal text.
type SQLiteRepository struct {
	db  dbx.DBTX
	now func() time.Time
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db, now: time.Now}
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(v int64) time.Time { return time.UnixMilli(v).UTC() }

func (r *SQLiteRepository) Create(ctx context.Context, rd *models.Reading) (*models.Reading, error) {
	id := uuid.NewString()
	created := r.now().UTC().Truncate(time.Millisecond)

	query :=
		`INSERT INTO readings (id, apartment_number, user_id, user_name, date, cold_water, hot_water, amount, is_paid, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		id, rd.ApartmentNumber, rd.UserID, rd.UserName, toMillis(rd.Date),
		rd.ColdWater, rd.HotWater, rd.Amount.String(), rd.IsPaid, toMillis(created))
	if err != nil {
		return nil, translateError(err)
	}
	rd.ID = id
	rd.Date = rd.Date.UTC().Truncate(time.Millisecond)
	rd.CreatedAt = created
	return rd, nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Reading, error) {
	query := `SELECT ` + readingColumns + ` FROM readings WHERE id = ?`
	return scanSQLiteReading(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteRepository) Find(ctx context.Context, filter models.ReadingFilter, order models.SortOrder) ([]models.Reading, error) {
	var (
		where []string
		args  []any
	)
	cond := func(expr string, v any) {
		where = append(where, expr)
		args = append(args, v)
	}
	if filter.UserID != "" {
		cond("user_id = ?", filter.UserID)
	}
	if filter.From != nil {
		cond("date >= ?", toMillis(*filter.From))
	}
	if filter.To != nil {
		cond("date <= ?", toMillis(*filter.To))
	}
	if filter.IsPaid != nil {
		cond("is_paid = ?", *filter.IsPaid)
	}

	query := `SELECT ` + readingColumns + ` FROM readings`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	if order == models.DateAsc {
		query += ` ORDER BY date ASC, created_at ASC`
	} else {
		query += ` ORDER BY date DESC, created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []models.Reading{}
	for rows.Next() {
		rd, err := scanSQLiteReading(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *rd)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, id string, patch models.ReadingPatch) (*models.Reading, error) {
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
	if patch.ColdWater != nil {
		set("cold_water", *patch.ColdWater)
	}
	if patch.HotWater != nil {
		set("hot_water", *patch.HotWater)
	}
	if patch.Amount != nil {
		set("amount", patch.Amount.String())
	}
	if patch.IsPaid != nil {
		set("is_paid", *patch.IsPaid)
	}
	args = append(args, id)

	query := `UPDATE readings SET ` + strings.Join(sets, ", ") + ` WHERE id = ? RETURNING ` + readingColumns
	return scanSQLiteReading(r.db.QueryRowContext(ctx, query, args...))
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM readings WHERE id = ?`, id)
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

func (r *SQLiteRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM readings WHERE user_id = ?`, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

func scanSQLiteReading(s scanner) (*models.Reading, error) {
	var (
		rd            models.Reading
		date, created int64
	)
	err := s.Scan(&rd.ID, &rd.ApartmentNumber, &rd.UserID, &rd.UserName, &date,
		&rd.ColdWater, &rd.HotWater, &rd.Amount, &rd.IsPaid, &created)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	rd.Date = fromMillis(date)
	rd.CreatedAt = fromMillis(created)
	return &rd, nil
}
