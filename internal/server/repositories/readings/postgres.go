package readings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/dbx"
	"github.com/dmitrijs2005/waterbill/internal/server/models"
	"github.com/google/uuid"
)

const readingColumns = `id, apartment_number, user_id, user_name, date, cold_water, hot_water, amount, is_paid, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, rd *models.Reading) (*models.Reading, error) {
	query :=
		`INSERT INTO readings (apartment_number, user_id, user_name, date, cold_water, hot_water, amount, is_paid)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		rd.ApartmentNumber, rd.UserID, rd.UserName, rd.Date, rd.ColdWater, rd.HotWater, rd.Amount, rd.IsPaid).
		Scan(&rd.ID, &rd.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return rd, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Reading, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}
	query := `SELECT ` + readingColumns + ` FROM readings WHERE id = $1`
	return scanReading(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) Find(ctx context.Context, filter models.ReadingFilter, order models.SortOrder) ([]models.Reading, error) {
	var (
		where []string
		args  []any
	)
	cond := func(expr string, v any) {
		args = append(args, v)
		where = append(where, fmt.Sprintf(expr, len(args)))
	}
	if filter.UserID != "" {
		if _, err := uuid.Parse(filter.UserID); err != nil {
			return []models.Reading{}, nil
		}
		cond("user_id = $%d", filter.UserID)
	}
	if filter.From != nil {
		cond("date >= $%d", *filter.From)
	}
	if filter.To != nil {
		cond("date <= $%d", *filter.To)
	}
	if filter.IsPaid != nil {
		cond("is_paid = $%d", *filter.IsPaid)
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
		rd, err := scanReading(rows)
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

func (r *PostgresRepository) Update(ctx context.Context, id string, patch models.ReadingPatch) (*models.Reading, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, common.ErrorNotFound
	}

	var (
		sets []string
		args []any
	)
	set := func(column string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if patch.ColdWater != nil {
		set("cold_water", *patch.ColdWater)
	}
	if patch.HotWater != nil {
		set("hot_water", *patch.HotWater)
	}
	if patch.Amount != nil {
		set("amount", *patch.Amount)
	}
	if patch.IsPaid != nil {
		set("is_paid", *patch.IsPaid)
	}
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE readings SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), readingColumns)

	return scanReading(r.db.QueryRowContext(ctx, query, args...))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return common.ErrorNotFound
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM readings WHERE id = $1`, id)
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

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return 0, nil
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM readings WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReading(s scanner) (*models.Reading, error) {
	var rd models.Reading
	err := s.Scan(&rd.ID, &rd.ApartmentNumber, &rd.UserID, &rd.UserName, &rd.Date,
		&rd.ColdWater, &rd.HotWater, &rd.Amount, &rd.IsPaid, &rd.CreatedAt)
	if err != nil {
		return nil, translateError(err)
	}
	return &rd, nil
}

func translateError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return common.ErrorNotFound
	}
	return fmt.Errorf("db error: %w", err)
}
